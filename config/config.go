package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultSourceDir is the directory, relative to the project root, that the
// default configuration hands to the engine.
const DefaultSourceDir = "src"

// Rule identifiers enabled by the default configuration.
const (
	// RuleCreateFunctionToAnonymousFunction rewrites create_function() calls
	// into anonymous functions.
	RuleCreateFunctionToAnonymousFunction = "create-function-to-anonymous-function"
)

// Set identifiers known to the default engine catalog.
const (
	SetPHP80           = "php80"
	SetCodeQuality     = "code-quality"
	SetDeadCode        = "dead-code"
	SetTypeDeclaration = "type-declaration"
	SetEarlyReturn     = "early-return"
)

var (
	ErrNoPaths    = errors.New("configuration has no paths")
	ErrBlankEntry = errors.New("configuration has a blank entry")
)

// Handle is the registration interface an engine hands out at startup.
// Each call replaces what was previously registered for that field.
type Handle interface {
	Paths(paths []string)
	Rules(rules []string)
	Sets(sets []string)
}

// Skipper is implemented by handles that accept paths to leave untouched.
type Skipper interface {
	Skip(paths []string)
}

// RewriteConfiguration describes what the engine scans and which rules and
// sets it applies. The zero value has no paths and is not useful.
//
// A RewriteConfiguration is immutable: accessors return copies.
type RewriteConfiguration struct {
	paths []string
	rules []string
	sets  []string
	skip  []string
}

// Default returns the project's configuration: root/src is scanned, the
// create_function() conversion is enabled, and the php80, code-quality,
// dead-code and type-declaration sets are enabled.
func Default(root string) RewriteConfiguration {
	return RewriteConfiguration{
		paths: []string{filepath.Join(root, DefaultSourceDir)},
		rules: []string{RuleCreateFunctionToAnonymousFunction},
		sets: []string{
			SetCodeQuality,
			SetDeadCode,
			SetPHP80,
			SetTypeDeclaration,
		},
	}
}

// Build registers the default configuration for root with h.
func Build(root string, h Handle) {
	Default(root).Register(h)
}

// New builds a configuration from explicit values. Paths keep their order
// with duplicates dropped; rules, sets and skip entries are sorted and
// de-duplicated. Identifiers are not checked against any engine.
func New(paths, rules, sets, skip []string) (RewriteConfiguration, error) {
	if len(paths) == 0 {
		return RewriteConfiguration{}, ErrNoPaths
	}

	var cfg RewriteConfiguration
	var err error
	if cfg.paths, err = normalize("path", paths, false); err != nil {
		return RewriteConfiguration{}, err
	}
	if cfg.rules, err = normalize("rule", rules, true); err != nil {
		return RewriteConfiguration{}, err
	}
	if cfg.sets, err = normalize("set", sets, true); err != nil {
		return RewriteConfiguration{}, err
	}
	if cfg.skip, err = normalize("skip", skip, true); err != nil {
		return RewriteConfiguration{}, err
	}

	return cfg, nil
}

func normalize(kind string, entries []string, sorted bool) ([]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))
	for i, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			return nil, fmt.Errorf("%w: %s #%d", ErrBlankEntry, kind, i+1)
		}
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		out = append(out, entry)
	}

	if sorted {
		slices.Sort(out)
	}
	return out, nil
}

// Paths returns the paths to scan, in order.
func (c RewriteConfiguration) Paths() []string { return slices.Clone(c.paths) }

// Rules returns the enabled rule identifiers, sorted.
func (c RewriteConfiguration) Rules() []string { return slices.Clone(c.rules) }

// Sets returns the enabled set identifiers, sorted.
func (c RewriteConfiguration) Sets() []string { return slices.Clone(c.sets) }

// Skip returns the paths excluded from scanning, sorted.
func (c RewriteConfiguration) Skip() []string { return slices.Clone(c.skip) }

// Equal reports whether c and other describe the same configuration.
func (c RewriteConfiguration) Equal(other RewriteConfiguration) bool {
	return slices.Equal(c.paths, other.paths) &&
		slices.Equal(c.rules, other.rules) &&
		slices.Equal(c.sets, other.sets) &&
		slices.Equal(c.skip, other.skip)
}

// Register hands the configuration to h. Skip entries are only passed on
// when h implements Skipper.
func (c RewriteConfiguration) Register(h Handle) {
	h.Paths(c.Paths())
	h.Rules(c.Rules())
	h.Sets(c.Sets())

	if s, ok := h.(Skipper); ok && len(c.skip) > 0 {
		s.Skip(c.Skip())
	}
}
