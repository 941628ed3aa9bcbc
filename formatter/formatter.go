package formatter

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gnolang/refit/config"
	"github.com/gnolang/refit/internal/catalog"
	"github.com/gnolang/refit/internal/engine"
)

var (
	errorStyle      = color.New(color.FgRed, color.Bold)
	headerStyle     = color.New(color.FgCyan, color.Bold)
	ruleStyle       = color.New(color.FgYellow, color.Bold)
	setStyle        = color.New(color.FgGreen, color.Bold)
	pathStyle       = color.New(color.FgHiBlue, color.Bold)
	suggestionStyle = color.New(color.FgGreen, color.Bold)
	noStyle         = color.New(color.FgWhite)
)

// FormatConfiguration renders cfg for humans. resolved, when non-nil, is the
// list of rules the engine would apply after expanding sets.
func FormatConfiguration(cfg config.RewriteConfiguration, resolved []string) string {
	var b strings.Builder

	section(&b, "paths", cfg.Paths(), pathStyle)
	section(&b, "rules", cfg.Rules(), ruleStyle)
	section(&b, "sets", cfg.Sets(), setStyle)
	if skip := cfg.Skip(); len(skip) > 0 {
		section(&b, "skip", skip, noStyle)
	}
	if resolved != nil {
		fmt.Fprintf(&b, "%s %d\n", headerStyle.Sprint("resolved rules:"), len(resolved))
	}

	return b.String()
}

func section(b *strings.Builder, name string, items []string, style *color.Color) {
	fmt.Fprintf(b, "%s\n", headerStyle.Sprintf("%s (%d):", name, len(items)))
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", style.Sprint(item))
	}
}

// FormatPlan lists files grouped by directory. Paths under base are shown
// relative to it.
func FormatPlan(files []string, base string) string {
	byDir := make(map[string][]string)
	for _, f := range files {
		rel := f
		if r, err := filepath.Rel(base, f); err == nil && !strings.HasPrefix(r, "..") {
			rel = r
		}
		dir := filepath.ToSlash(filepath.Dir(rel))
		byDir[dir] = append(byDir[dir], filepath.Base(rel))
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	var b strings.Builder
	for _, dir := range dirs {
		names := byDir[dir]
		sort.Strings(names)
		fmt.Fprintf(&b, "%s %s\n", pathStyle.Sprint(dir+"/"), noStyle.Sprintf("(%s)", plural(len(names), "file")))
		for _, name := range names {
			fmt.Fprintf(&b, "  %s\n", name)
		}
	}
	fmt.Fprintf(&b, "\n%s\n", headerStyle.Sprint(plural(len(files), "file")+" to process"))
	return b.String()
}

// FormatUnknown renders every unknown identifier with its suggestion.
func FormatUnknown(err *engine.UnknownIdentifierError) string {
	var b strings.Builder
	for _, u := range err.Unknown {
		fmt.Fprintf(&b, "%s %s\n", errorStyle.Sprintf("error: unknown %s", u.Kind), ruleStyle.Sprint(u.ID))
		if u.Suggestion != "" {
			fmt.Fprintf(&b, "  = %s\n", suggestionStyle.Sprintf("did you mean %q?", u.Suggestion))
		}
	}
	return b.String()
}

// FormatRules lists catalog rules with their descriptions.
func FormatRules(rules []catalog.Rule) string {
	width := 0
	for _, r := range rules {
		width = max(width, len(r.ID))
	}

	var b strings.Builder
	for _, r := range rules {
		fmt.Fprintf(&b, "%s  %s\n", ruleStyle.Sprintf("%-*s", width, r.ID), r.Description)
	}
	return b.String()
}

// FormatSets lists catalog sets with their descriptions and members.
func FormatSets(sets []catalog.Set) string {
	var b strings.Builder
	for i, s := range sets {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %s\n", setStyle.Sprint(s.ID), s.Description)
		for _, r := range s.Rules {
			fmt.Fprintf(&b, "  - %s\n", r)
		}
	}
	return b.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
