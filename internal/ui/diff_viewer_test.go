package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitwatch/internal/domain"
)

func testChanges() []domain.FileChange {
	return []domain.FileChange{
		{
			Path:       "main.go",
			ChangeType: domain.ChangeModified,
			Additions:  1,
			Deletions:  1,
			Patch:      "diff --git a/main.go b/main.go\n@@ -1 +1 @@\n-old line\n+new line\n",
		},
		{Path: "logo.png", ChangeType: domain.ChangeAdded, IsBinary: true},
		{Path: "new.txt", OldPath: "old.txt", ChangeType: domain.ChangeRenamed},
	}
}

func newTestViewer(t *testing.T) *DiffViewer {
	t.Helper()
	m := NewDiffViewer("alpha: feature → main", testChanges(), NewKeyMap(nil))
	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestDiffViewer_ListsFilesCollapsed(t *testing.T) {
	m := newTestViewer(t)

	view := m.View()
	assert.Contains(t, view, "main.go")
	assert.Contains(t, view, "logo.png")
	assert.Contains(t, view, "old.txt -> new.txt")
	assert.NotContains(t, view, "new line")
}

func TestDiffViewer_ToggleShowsPatch(t *testing.T) {
	m := newTestViewer(t)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Expanded(0))
	assert.Contains(t, m.View(), "new line")

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Expanded(0))
	assert.NotContains(t, m.View(), "new line")
}

func TestDiffViewer_Navigation(t *testing.T) {
	m := newTestViewer(t)

	_, _ = m.Update(runeKey("j"))
	_, _ = m.Update(runeKey("j"))
	_, _ = m.Update(runeKey("j"))
	assert.Equal(t, 2, m.Cursor(), "cursor stops at the last file")

	_, _ = m.Update(runeKey("k"))
	assert.Equal(t, 1, m.Cursor())

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Expanded(1))
	assert.Contains(t, m.View(), "Binary file not shown")
}

func TestDiffViewer_ExpandAndCollapseAll(t *testing.T) {
	m := newTestViewer(t)

	_, _ = m.Update(runeKey("e"))
	for i := range testChanges() {
		assert.True(t, m.Expanded(i))
	}

	_, _ = m.Update(runeKey("c"))
	for i := range testChanges() {
		assert.False(t, m.Expanded(i))
	}
}

func TestDiffViewer_Quit(t *testing.T) {
	m := newTestViewer(t)

	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestDiffViewer_NoChanges(t *testing.T) {
	m := NewDiffViewer("empty", nil, NewKeyMap(nil))
	_, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, _ = m.Update(runeKey("j"))

	assert.Contains(t, m.View(), "No changes found.")
}
