package catalog

import "github.com/gnolang/refit/config"

const (
	nsPHP72    = `Rector\Php72\Rector\`
	nsPHP80    = `Rector\Php80\Rector\`
	nsQuality  = `Rector\CodeQuality\Rector\`
	nsDeadCode = `Rector\DeadCode\Rector\`
	nsTypes    = `Rector\TypeDeclaration\Rector\`
	nsEarly    = `Rector\EarlyReturn\Rector\`
)

var defaultRules = []Rule{
	{
		ID:          config.RuleCreateFunctionToAnonymousFunction,
		Class:       nsPHP72 + `FuncCall\CreateFunctionToAnonymousFunctionRector`,
		Description: "Use anonymous functions instead of create_function()",
	},

	// php80
	{ID: "class-property-assign-to-constructor-promotion", Class: nsPHP80 + `Class_\ClassPropertyAssignToConstructorPromotionRector`, Description: "Promote assigned properties to constructor parameters"},
	{ID: "union-types", Class: nsPHP80 + `FunctionLike\UnionTypesRector`, Description: "Turn @param and @return union docblocks into native union types"},
	{ID: "change-switch-to-match", Class: nsPHP80 + `Switch_\ChangeSwitchToMatchRector`, Description: "Replace simple switch statements with match"},
	{ID: "str-contains", Class: nsPHP80 + `NotIdentical\StrContainsRector`, Description: "Replace strpos() !== false with str_contains()"},
	{ID: "str-starts-with", Class: nsPHP80 + `Identical\StrStartsWithRector`, Description: "Replace substr() prefix checks with str_starts_with()"},
	{ID: "get-debug-type", Class: nsPHP80 + `Ternary\GetDebugTypeRector`, Description: "Replace is_object() ? get_class() : gettype() with get_debug_type()"},
	{ID: "remove-unused-variable-in-catch", Class: nsPHP80 + `Catch_\RemoveUnusedVariableInCatchRector`, Description: "Drop unused exception variables from catch clauses"},

	// code-quality
	{ID: "combined-assign", Class: nsQuality + `Assign\CombinedAssignRector`, Description: "Use combined assignment operators"},
	{ID: "simplify-if-return-bool", Class: nsQuality + `If_\SimplifyIfReturnBoolRector`, Description: "Return the condition instead of if/return true/return false"},
	{ID: "simplify-empty-array-check", Class: nsQuality + `BooleanAnd\SimplifyEmptyArrayCheckRector`, Description: "Simplify is_array() && empty() checks"},
	{ID: "inline-constructor-default-to-property", Class: nsQuality + `Class_\InlineConstructorDefaultToPropertyRector`, Description: "Move constant constructor assignments to property defaults"},

	// dead-code
	{ID: "remove-unused-private-method", Class: nsDeadCode + `ClassMethod\RemoveUnusedPrivateMethodRector`, Description: "Remove private methods nothing calls"},
	{ID: "remove-unused-private-property", Class: nsDeadCode + `Property\RemoveUnusedPrivatePropertyRector`, Description: "Remove private properties nothing reads"},
	{ID: "remove-dead-return", Class: nsDeadCode + `FunctionLike\RemoveDeadReturnRector`, Description: "Remove a bare return at the end of a function"},
	{ID: "remove-unreachable-statement", Class: nsDeadCode + `Stmt\RemoveUnreachableStatementRector`, Description: "Remove statements after return or throw"},

	// type-declaration
	{ID: "return-type-from-strict-typed-call", Class: nsTypes + `ClassMethod\ReturnTypeFromStrictTypedCallRector`, Description: "Add return types inferred from typed calls"},
	{ID: "typed-property-from-strict-constructor", Class: nsTypes + `Property\TypedPropertyFromStrictConstructorRector`, Description: "Type properties assigned from typed constructor parameters"},
	{ID: "add-void-return-type-where-no-return", Class: nsTypes + `ClassMethod\AddVoidReturnTypeWhereNoReturnRector`, Description: "Add void return types to functions without return"},

	// early-return
	{ID: "change-and-if-to-early-return", Class: nsEarly + `If_\ChangeAndIfToEarlyReturnRector`, Description: "Split && conditions into early returns"},
	{ID: "remove-always-else", Class: nsEarly + `If_\RemoveAlwaysElseRector`, Description: "Drop else after a branch that always leaves"},
	{ID: "return-binary-or-to-early-return", Class: nsEarly + `Return_\ReturnBinaryOrToEarlyReturnRector`, Description: "Split returned || expressions into early returns"},
}

var defaultSets = []Set{
	{
		ID:          config.SetPHP80,
		Constant:    "PHP_80",
		Description: "Upgrade code to PHP 8.0",
		Rules: []string{
			"class-property-assign-to-constructor-promotion",
			"union-types",
			"change-switch-to-match",
			"str-contains",
			"str-starts-with",
			"get-debug-type",
			"remove-unused-variable-in-catch",
		},
	},
	{
		ID:          config.SetCodeQuality,
		Constant:    "CODE_QUALITY",
		Description: "General code quality normalization",
		Rules: []string{
			"combined-assign",
			"simplify-if-return-bool",
			"simplify-empty-array-check",
			"inline-constructor-default-to-property",
		},
	},
	{
		ID:          config.SetDeadCode,
		Constant:    "DEAD_CODE",
		Description: "Remove dead code",
		Rules: []string{
			"remove-unused-private-method",
			"remove-unused-private-property",
			"remove-dead-return",
			"remove-unreachable-statement",
		},
	},
	{
		ID:          config.SetTypeDeclaration,
		Constant:    "TYPE_DECLARATION",
		Description: "Infer and add type declarations",
		Rules: []string{
			"return-type-from-strict-typed-call",
			"typed-property-from-strict-constructor",
			"add-void-return-type-where-no-return",
		},
	},
	{
		ID:          config.SetEarlyReturn,
		Constant:    "EARLY_RETURN",
		Description: "Prefer early returns over nested conditions",
		Rules: []string{
			"change-and-if-to-early-return",
			"remove-always-else",
			"return-binary-or-to-early-return",
		},
	},
}

// Default returns the catalog of the bundled engine version.
func Default() *Catalog {
	return New(defaultRules, defaultSets)
}
