package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/intentdesk/internal/domain"
)

func TestExtractJSONObjectPlain(t *testing.T) {
	blob, err := extractJSONObject(`{"layout": "Dashboard"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"layout": "Dashboard"}`, blob)
}

func TestExtractJSONObjectWithProse(t *testing.T) {
	blob, err := extractJSONObject(`Sure! Here is my pick: {"layout": "SplitView", "confidence": 0.8} hope that helps`)
	require.NoError(t, err)
	assert.Equal(t, `{"layout": "SplitView", "confidence": 0.8}`, blob)
}

func TestExtractJSONObjectWithCodeFence(t *testing.T) {
	blob, err := extractJSONObject("```json\n{\"layout\": \"FocusMode\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, `{"layout": "FocusMode"}`, blob)
}

func TestExtractJSONObjectNestedAndStrings(t *testing.T) {
	raw := `{"slots": [{"id": "main", "props": {"text": "braces } in { strings \" stay"}}]}`
	blob, err := extractJSONObject(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, blob)
}

func TestExtractJSONObjectErrors(t *testing.T) {
	_, err := extractJSONObject("no json here")
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)

	_, err = extractJSONObject(`{"unterminated": true`)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}
