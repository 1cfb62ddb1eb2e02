package app

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"closeguard/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewSimHostLayout(t *testing.T) {
	h := NewSimHost(3, 2, testLogger())

	require.Len(t, h.Tabs, 3)
	assert.Equal(t, 1, h.FocusedTab(), "the second tab starts focused")

	for _, tab := range h.Tabs {
		require.Len(t, tab.Panes, 2)
		assert.True(t, tab.Panes[0].Focused)
		assert.False(t, tab.Panes[0].Plugin)
		assert.True(t, tab.Panes[1].Plugin, "last pane of each tab is plugin-backed")
	}

	// Pane ids are unique across the workspace.
	seen := map[uint32]bool{}
	for _, tab := range h.Tabs {
		for _, pane := range tab.Panes {
			assert.False(t, seen[pane.ID], "duplicate pane id %d", pane.ID)
			seen[pane.ID] = true
		}
	}
}

func TestNewSimHostClampsToMinimums(t *testing.T) {
	h := NewSimHost(0, 0, testLogger())

	require.Len(t, h.Tabs, 1)
	assert.Equal(t, 0, h.FocusedTab())
	require.Len(t, h.Tabs[0].Panes, 1)
}

func TestClosePaneMatchesIDAndKind(t *testing.T) {
	h := NewSimHost(2, 2, testLogger())
	target := h.Tabs[1].Panes[0] // terminal pane

	h.ClosePane(domain.PaneID{Kind: domain.PaneTerminal, ID: target.ID})
	require.Len(t, h.Tabs[1].Panes, 1)

	// A plugin-tagged id from the terminal id space must not match.
	remaining := h.Tabs[1].Panes[0]
	require.True(t, remaining.Plugin)
	h.ClosePane(domain.PaneID{Kind: domain.PaneTerminal, ID: remaining.ID})
	assert.Len(t, h.Tabs[1].Panes, 1)

	h.ClosePane(domain.PaneID{Kind: domain.PanePlugin, ID: remaining.ID})
	assert.Len(t, h.Tabs[1].Panes, 0)
}

func TestCloseFocusedPane(t *testing.T) {
	h := NewSimHost(2, 2, testLogger())
	focusedID := h.Tabs[1].Panes[0].ID

	h.CloseFocusedPane()

	require.Len(t, h.Tabs[1].Panes, 1)
	assert.NotEqual(t, focusedID, h.Tabs[1].Panes[0].ID)
}

func TestCloseFocusedTabRefocusesNeighbor(t *testing.T) {
	h := NewSimHost(3, 1, testLogger())
	require.Equal(t, 1, h.FocusedTab())

	h.CloseFocusedTab()

	require.Len(t, h.Tabs, 2)
	assert.Equal(t, 0, h.FocusedTab())
	assert.Equal(t, "Tab 1", h.Tabs[0].Name)
}

func TestQuitAndHideFlags(t *testing.T) {
	h := NewSimHost(1, 1, testLogger())

	assert.False(t, h.SessionEnded)
	h.QuitSession()
	assert.True(t, h.SessionEnded)

	assert.False(t, h.OverlayHidden)
	h.HideSelf()
	assert.True(t, h.OverlayHidden)
}

func TestTabNotification(t *testing.T) {
	h := NewSimHost(3, 1, testLogger())

	transient := h.TabNotification(false)
	require.Len(t, transient, 3)
	for _, tab := range transient {
		assert.False(t, tab.Focused, "transient updates carry no focus")
	}

	settled := h.TabNotification(true)
	assert.False(t, settled[0].Focused)
	assert.True(t, settled[1].Focused)
	assert.Equal(t, 1, settled[1].Position)
}

func TestPaneNotification(t *testing.T) {
	h := NewSimHost(2, 2, testLogger())

	manifest := h.PaneNotification()

	require.Len(t, manifest, 2)
	panes := manifest[1]
	require.Len(t, panes, 2)
	assert.True(t, panes[0].Focused)
	assert.False(t, panes[0].IsPlugin)
	assert.True(t, panes[1].IsPlugin)
	assert.Equal(t, h.Tabs[1].Panes[0].ID, panes[0].ID)
}
