package engine

import (
	"errors"
	"testing"

	"github.com/gnolang/refit/config"
	"github.com/gnolang/refit/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, cfg config.RewriteConfiguration) *Engine {
	t.Helper()
	eng := New(catalog.Default(), nil)
	cfg.Register(eng)
	return eng
}

func TestBuildRegistersDefault(t *testing.T) {
	t.Parallel()
	eng := New(catalog.Default(), nil)
	config.Build("/project", eng)

	registered, err := eng.Configuration()
	require.NoError(t, err)
	assert.True(t, registered.Equal(config.Default("/project")))
	assert.NoError(t, eng.Validate())
}

func TestRegisterReplaces(t *testing.T) {
	t.Parallel()
	eng := New(catalog.Default(), nil)
	config.Build("/one", eng)
	config.Build("/two", eng)

	registered, err := eng.Configuration()
	require.NoError(t, err)
	assert.Equal(t, config.Default("/two").Paths(), registered.Paths())
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		rules   []string
		sets    []string
		unknown []Unknown
	}{
		{
			name:  "all known",
			rules: []string{config.RuleCreateFunctionToAnonymousFunction},
			sets:  []string{config.SetPHP80, config.SetEarlyReturn},
		},
		{
			name:  "unknown rule and set",
			rules: []string{"create-function-to-anonymus-function", "nope"},
			sets:  []string{"php-80"},
			unknown: []Unknown{
				{Kind: KindRule, ID: "create-function-to-anonymus-function", Suggestion: config.RuleCreateFunctionToAnonymousFunction},
				{Kind: KindRule, ID: "nope"},
				{Kind: KindSet, ID: "php-80", Suggestion: config.SetPHP80},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := config.New([]string{"src"}, tt.rules, tt.sets, nil)
			require.NoError(t, err)

			err = newTestEngine(t, cfg).Validate()
			if tt.unknown == nil {
				assert.NoError(t, err)
				return
			}

			var unknownErr *UnknownIdentifierError
			require.True(t, errors.As(err, &unknownErr))
			assert.Equal(t, tt.unknown, unknownErr.Unknown)
			assert.Contains(t, err.Error(), `did you mean "php80"?`)
		})
	}
}

func TestValidateWithoutPaths(t *testing.T) {
	t.Parallel()
	eng := New(catalog.Default(), nil)
	eng.Sets([]string{config.SetPHP80})
	assert.ErrorIs(t, eng.Validate(), config.ErrNoPaths)
}

func TestResolveRules(t *testing.T) {
	t.Parallel()
	cat := catalog.New(
		[]catalog.Rule{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}},
		[]catalog.Set{
			{ID: "one", Rules: []string{"b", "c"}},
			{ID: "two", Rules: []string{"c", "d"}},
		},
	)
	eng := New(cat, nil)
	eng.Paths([]string{"src"})
	eng.Rules([]string{"a", "c"})
	eng.Sets([]string{"one", "two"})

	resolved, err := eng.ResolveRules()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, resolved)
}

func TestResolveRulesDefault(t *testing.T) {
	t.Parallel()
	eng := newTestEngine(t, config.Default("."))

	resolved, err := eng.ResolveRules()
	require.NoError(t, err)
	assert.Contains(t, resolved, config.RuleCreateFunctionToAnonymousFunction)
	assert.Contains(t, resolved, "change-switch-to-match")
	assert.NotContains(t, resolved, "remove-always-else")
	assert.Len(t, resolved, 1+7+4+4+3)
}

func TestResolveRulesUnknown(t *testing.T) {
	t.Parallel()
	cfg, err := config.New([]string{"src"}, nil, []string{"bogus"}, nil)
	require.NoError(t, err)

	_, err = newTestEngine(t, cfg).ResolveRules()
	var unknownErr *UnknownIdentifierError
	assert.ErrorAs(t, err, &unknownErr)
}
