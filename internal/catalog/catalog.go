// Package catalog lists the rules and sets the rewrite engine knows about,
// along with the names the engine itself uses for them.
package catalog

import (
	"slices"
	"strings"

	"github.com/agext/levenshtein"
)

// Rule is a single transformation understood by the engine.
type Rule struct {
	ID          string
	Class       string // fully qualified engine class
	Description string
}

// ShortName returns the unqualified class name.
func (r Rule) ShortName() string {
	if i := strings.LastIndex(r.Class, `\`); i >= 0 {
		return r.Class[i+1:]
	}
	return r.Class
}

// Set is a named bundle of rules.
type Set struct {
	ID          string
	Constant    string // SetList constant
	Description string
	Rules       []string
}

// Catalog indexes rules and sets by identifier.
type Catalog struct {
	rules map[string]Rule
	sets  map[string]Set
}

// New builds a catalog. Later entries replace earlier ones with the same ID.
func New(rules []Rule, sets []Set) *Catalog {
	c := &Catalog{
		rules: make(map[string]Rule, len(rules)),
		sets:  make(map[string]Set, len(sets)),
	}
	for _, r := range rules {
		c.rules[r.ID] = r
	}
	for _, s := range sets {
		s.Rules = slices.Clone(s.Rules)
		c.sets[s.ID] = s
	}
	return c
}

// Rule returns the rule registered under id.
func (c *Catalog) Rule(id string) (Rule, bool) {
	r, ok := c.rules[id]
	return r, ok
}

// Set returns the set registered under id.
func (c *Catalog) Set(id string) (Set, bool) {
	s, ok := c.sets[id]
	if ok {
		s.Rules = slices.Clone(s.Rules)
	}
	return s, ok
}

// Rules returns every rule, sorted by ID.
func (c *Catalog) Rules() []Rule {
	out := make([]Rule, 0, len(c.rules))
	for _, r := range c.rules {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b Rule) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Sets returns every set, sorted by ID.
func (c *Catalog) Sets() []Set {
	out := make([]Set, 0, len(c.sets))
	for _, s := range c.sets {
		s.Rules = slices.Clone(s.Rules)
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b Set) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// SuggestRule returns the known rule ID closest to id, or "" if nothing is
// close enough to be a likely typo.
func (c *Catalog) SuggestRule(id string) string {
	return suggest(id, keys(c.rules))
}

// SuggestSet is SuggestRule for sets.
func (c *Catalog) SuggestSet(id string) string {
	return suggest(id, keys(c.sets))
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

func suggest(id string, candidates []string) string {
	limit := max(2, len(id)/3)

	best, bestDist := "", limit+1
	for _, candidate := range candidates {
		d := levenshtein.Distance(strings.ToLower(id), candidate, nil)
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}
