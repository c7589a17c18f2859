package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javiermolinar/weekgrid/internal/tui/input"
)

func TestPromptLinesIncludesSuggestions(t *testing.T) {
	lines := PromptLines("/go", "_", 60, input.Commands)
	require.Len(t, lines, 2)
	assert.Equal(t, "> /go_", lines[0])
	assert.Equal(t, "  /goto DATE  Jump to the week containing DATE", lines[1])
}

func TestPromptLinesWithoutSlash(t *testing.T) {
	lines := PromptLines("hello", "", 60, input.Commands)
	assert.Equal(t, []string{"> hello"}, lines)
}

func TestClampLinesAddsEllipsis(t *testing.T) {
	clamped := ClampLines([]string{"one", "two", "three"}, 2, 8)
	require.Len(t, clamped, 2)
	assert.Equal(t, "two...", clamped[1])
	assert.Nil(t, ClampLines([]string{"x"}, 0, 8))
}

func TestWrapTextToWidths(t *testing.T) {
	lines := WrapTextToWidths("review the weekly plan", 10, 8)
	assert.Equal(t, []string{"review the", "weekly", "plan"}, lines)

	assert.Equal(t, []string{"abcd", "efgh"}, WrapTextToWidths("abcdefgh", 4, 4))
	assert.Equal(t, []string{""}, WrapTextToWidths("", 4, 4))
}

func TestSuggestionLines(t *testing.T) {
	lines := SuggestionLines("/", 80, input.Commands)
	assert.Len(t, lines, len(input.Commands))
	assert.Empty(t, SuggestionLines("/nope", 80, input.Commands))
}
