package formatter

import (
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/gnolang/refit/config"
	"github.com/gnolang/refit/internal/catalog"
	"github.com/gnolang/refit/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestFormatConfiguration(t *testing.T) {
	t.Parallel()
	cfg, err := config.New(
		[]string{"/project/src"},
		[]string{config.RuleCreateFunctionToAnonymousFunction},
		[]string{config.SetPHP80, config.SetDeadCode},
		[]string{"/project/src/cache"},
	)
	require.NoError(t, err)

	expected := `paths (1):
  - /project/src
rules (1):
  - create-function-to-anonymous-function
sets (2):
  - dead-code
  - php80
skip (1):
  - /project/src/cache
resolved rules: 12
`
	assert.Equal(t, expected, FormatConfiguration(cfg, make([]string, 12)))
}

func TestFormatConfigurationWithoutResolved(t *testing.T) {
	t.Parallel()
	out := FormatConfiguration(config.Default("/project"), nil)

	assert.Contains(t, out, "sets (4):")
	assert.NotContains(t, out, "skip")
	assert.NotContains(t, out, "resolved")
}

func TestFormatPlan(t *testing.T) {
	t.Parallel()
	files := []string{
		"/project/src/b.php",
		"/project/src/a.php",
		"/project/src/nested/c.php",
		"/elsewhere/d.php",
	}

	expected := `/elsewhere/ (1 file)
  d.php
src/ (2 files)
  a.php
  b.php
src/nested/ (1 file)
  c.php

4 files to process
`
	assert.Equal(t, expected, FormatPlan(files, "/project"))
}

func TestFormatPlanEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "\n0 files to process\n", FormatPlan(nil, "/project"))
}

func TestFormatUnknown(t *testing.T) {
	t.Parallel()
	err := &engine.UnknownIdentifierError{Unknown: []engine.Unknown{
		{Kind: engine.KindSet, ID: "php-80", Suggestion: "php80"},
		{Kind: engine.KindRule, ID: "nope"},
	}}

	expected := `error: unknown set php-80
  = did you mean "php80"?
error: unknown rule nope
`
	assert.Equal(t, expected, FormatUnknown(err))
}

func TestFormatRules(t *testing.T) {
	t.Parallel()
	rules := []catalog.Rule{
		{ID: "a", Description: "first"},
		{ID: "longer", Description: "second"},
	}

	expected := "a       first\nlonger  second\n"
	assert.Equal(t, expected, FormatRules(rules))
}

func TestFormatSets(t *testing.T) {
	t.Parallel()
	sets := []catalog.Set{
		{ID: "one", Description: "First", Rules: []string{"a", "b"}},
		{ID: "two", Description: "Second", Rules: []string{"c"}},
	}

	expected := `one  First
  - a
  - b

two  Second
  - c
`
	assert.Equal(t, expected, FormatSets(sets))
}
