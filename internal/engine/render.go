package engine

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"text/template"
)

const (
	rectorConfigClass = `Rector\Config\RectorConfig`
	setListClass      = `Rector\Set\ValueObject\SetList`
)

const configTemplate = `<?php

declare(strict_types=1);
{{range .Uses}}
use {{.}};
{{- end}}

return static function (RectorConfig $rectorConfig): void {
    $rectorConfig->paths([
{{- range .Paths}}
        {{.}},
{{- end}}
    ]);
{{- if .Skip}}

    $rectorConfig->skip([
{{- range .Skip}}
        {{.}},
{{- end}}
    ]);
{{- end}}
{{- if .Rules}}

    $rectorConfig->rules([
{{- range .Rules}}
        {{.}},
{{- end}}
    ]);
{{- end}}
{{- if .Sets}}

    $rectorConfig->sets([
{{- range .Sets}}
        {{.}},
{{- end}}
    ]);
{{- end}}
};
`

var configTmpl = template.Must(template.New("rector").Parse(configTemplate))

type renderData struct {
	Uses  []string
	Paths []string
	Skip  []string
	Rules []string
	Sets  []string
}

// Render writes the engine's native configuration file for the registered
// configuration. Paths under baseDir, the directory the file will live in,
// are written relative to __DIR__.
func (e *Engine) Render(w io.Writer, baseDir string) error {
	if err := e.Validate(); err != nil {
		return err
	}

	data := renderData{
		Uses:  []string{rectorConfigClass},
		Paths: phpPaths(baseDir, e.paths),
		Skip:  phpPaths(baseDir, e.skipped),
	}

	shortNames := make(map[string]int)
	for _, id := range e.rules {
		r, _ := e.catalog.Rule(id)
		shortNames[r.ShortName()]++
	}
	for _, id := range e.rules {
		r, _ := e.catalog.Rule(id)
		if shortNames[r.ShortName()] > 1 {
			data.Rules = append(data.Rules, `\`+r.Class+"::class")
			continue
		}
		data.Uses = append(data.Uses, r.Class)
		data.Rules = append(data.Rules, r.ShortName()+"::class")
	}

	if len(e.sets) > 0 {
		data.Uses = append(data.Uses, setListClass)
	}
	for _, id := range e.sets {
		s, _ := e.catalog.Set(id)
		data.Sets = append(data.Sets, "SetList::"+s.Constant)
	}

	slices.Sort(data.Uses)
	data.Uses = slices.Compact(data.Uses)

	if err := configTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("error rendering engine configuration: %w", err)
	}
	return nil
}

func phpPaths(baseDir string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}

	base := absPath(baseDir)
	out := make([]string, len(paths))
	for i, p := range paths {
		abs := absPath(p)
		rel, err := filepath.Rel(base, abs)
		switch {
		case err != nil, rel == "..", strings.HasPrefix(rel, ".."+string(filepath.Separator)):
			out[i] = phpQuote(filepath.ToSlash(abs))
		case rel == ".":
			out[i] = "__DIR__"
		default:
			out[i] = "__DIR__ . " + phpQuote("/"+filepath.ToSlash(rel))
		}
	}
	return out
}

// phpQuote returns s as a single-quoted PHP string literal.
func phpQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
