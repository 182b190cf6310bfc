package security

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/intentdesk/internal/domain"
)

func newTestSanitizer(t *testing.T) *Sanitizer {
	t.Helper()
	s, err := NewSanitizer("/nonexistent/sanitizer.yaml", nil)
	require.NoError(t, err)
	return s
}

func TestSanitizeStripsScriptTags(t *testing.T) {
	s := newTestSanitizer(t)
	out := s.Sanitize(`<div>hello<script>alert(1)</script>world</div>`)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert(1)")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "world")
}

func TestSanitizeStripsNestedScriptPayload(t *testing.T) {
	s := newTestSanitizer(t)
	out := s.Sanitize(`<scr<script>ipt>alert(1)</scr</script>ipt>`)
	assert.NotContains(t, out, "<script")
}

func TestSanitizeStripsInlineHandlers(t *testing.T) {
	s := newTestSanitizer(t)
	cases := []string{
		`<button onclick="alert(1)">go</button>`,
		`<button onclick='alert(1)'>go</button>`,
		`<img src="x" onerror=alert(1)>`,
	}
	for _, input := range cases {
		out := s.Sanitize(input)
		assert.NotContains(t, out, "onclick", "input: %s", input)
		assert.NotContains(t, out, "onerror", "input: %s", input)
	}
}

func TestSanitizeNeutralizesJavascriptURLs(t *testing.T) {
	s := newTestSanitizer(t)
	out := s.Sanitize(`<a href="javascript:alert(1)">x</a>`)
	assert.NotContains(t, out, "javascript:")
}

func TestSanitizeDisablesEvalAndFunction(t *testing.T) {
	s := newTestSanitizer(t)
	assert.NotContains(t, s.Sanitize(`eval("alert(1)")`), "eval(")
	assert.NotContains(t, s.Sanitize(`new Function("return 1")()`), "Function(")
}

func TestSanitizePassesCleanMarkup(t *testing.T) {
	s := newTestSanitizer(t)
	clean := `<Card><Heading>Timer</Heading><Button>Start</Button></Card>`
	assert.Equal(t, clean, s.Sanitize(clean))
}

func TestCheckImportsAllowsKnownComponents(t *testing.T) {
	s := newTestSanitizer(t)
	assert.NoError(t, s.CheckImports(`<Card><Chart type="line" /><Button>Go</Button></Card>`))
}

func TestCheckImportsRejectsUnknownModule(t *testing.T) {
	s := newTestSanitizer(t)
	err := s.CheckImports(`import fs from "fs"; <Card />`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDisallowedImport))
}

func TestCheckImportsRejectsRequire(t *testing.T) {
	s := newTestSanitizer(t)
	err := s.CheckImports(`const cp = require("child_process")`)
	assert.True(t, errors.Is(err, domain.ErrDisallowedImport))
}

func TestCheckImportsRejectsUnknownComponent(t *testing.T) {
	s := newTestSanitizer(t)
	err := s.CheckImports(`<Card><FileSystemBrowser path="/" /></Card>`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FileSystemBrowser")
}

func TestCheckImportsAllowsConfiguredExtras(t *testing.T) {
	s, err := NewSanitizer("/nonexistent/sanitizer.yaml", []string{"lodash"})
	require.NoError(t, err)
	assert.NoError(t, s.CheckImports(`import _ from "lodash"`))
}
