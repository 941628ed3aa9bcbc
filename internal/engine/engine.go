package engine

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/gnolang/refit/config"
	"github.com/gnolang/refit/internal/catalog"
	"github.com/gnolang/refit/internal/trie"
	"go.uber.org/zap"
)

var (
	_ config.Handle  = (*Engine)(nil)
	_ config.Skipper = (*Engine)(nil)
)

// Engine is the in-process side of the rewrite engine. A configuration
// registers into it; identifiers are only checked once the engine runs.
type Engine struct {
	catalog *catalog.Catalog
	logger  *zap.Logger

	paths []string
	rules []string
	sets  []string

	skipped  []string
	skipTrie *trie.PathTrie

	progress io.Writer
}

// New creates an engine backed by cat. A nil logger disables logging.
func New(cat *catalog.Catalog, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		catalog:  cat,
		logger:   logger,
		skipTrie: trie.NewPathTrie(),
	}
}

// Paths replaces the paths to scan.
func (e *Engine) Paths(paths []string) { e.paths = slices.Clone(paths) }

// Rules replaces the enabled rules.
func (e *Engine) Rules(rules []string) { e.rules = slices.Clone(rules) }

// Sets replaces the enabled sets.
func (e *Engine) Sets(sets []string) { e.sets = slices.Clone(sets) }

// Skip adds paths to leave untouched.
func (e *Engine) Skip(paths []string) {
	for _, p := range paths {
		e.IgnorePath(p)
	}
}

// IgnorePath excludes path, and everything beneath it, from discovery.
func (e *Engine) IgnorePath(path string) {
	e.skipped = append(e.skipped, path)
	e.skipTrie.Insert(absPath(path))
}

// SetProgressOutput enables a progress bar written to w during discovery.
func (e *Engine) SetProgressOutput(w io.Writer) { e.progress = w }

// Configuration returns what has been registered so far.
func (e *Engine) Configuration() (config.RewriteConfiguration, error) {
	return config.New(e.paths, e.rules, e.sets, e.skipped)
}

func (e *Engine) isSkipped(path string) bool {
	return e.skipTrie.Match(absPath(path))
}

// Validate checks the registered configuration against the catalog. Every
// unknown identifier is reported in a single *UnknownIdentifierError.
func (e *Engine) Validate() error {
	if len(e.paths) == 0 {
		return config.ErrNoPaths
	}

	var unknown []Unknown
	for _, id := range e.rules {
		if _, ok := e.catalog.Rule(id); !ok {
			unknown = append(unknown, Unknown{Kind: KindRule, ID: id, Suggestion: e.catalog.SuggestRule(id)})
		}
	}
	for _, id := range e.sets {
		if _, ok := e.catalog.Set(id); !ok {
			unknown = append(unknown, Unknown{Kind: KindSet, ID: id, Suggestion: e.catalog.SuggestSet(id)})
		}
	}

	if len(unknown) > 0 {
		e.logger.Debug("unknown identifiers", zap.Int("count", len(unknown)))
		return &UnknownIdentifierError{Unknown: unknown}
	}
	return nil
}

// ResolveRules expands the enabled sets and returns every rule the engine
// would apply, sorted and without duplicates.
func (e *Engine) ResolveRules() ([]string, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, id := range e.rules {
		seen[id] = struct{}{}
	}
	for _, id := range e.sets {
		set, _ := e.catalog.Set(id)
		for _, rule := range set.Rules {
			seen[rule] = struct{}{}
		}
	}

	resolved := make([]string, 0, len(seen))
	for id := range seen {
		resolved = append(resolved, id)
	}
	slices.Sort(resolved)

	e.logger.Debug("resolved rules",
		zap.Int("rules", len(e.rules)),
		zap.Int("sets", len(e.sets)),
		zap.Int("resolved", len(resolved)))
	return resolved, nil
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

func (e *Engine) String() string {
	return fmt.Sprintf("engine(paths=%d rules=%d sets=%d skip=%d)",
		len(e.paths), len(e.rules), len(e.sets), len(e.skipped))
}
