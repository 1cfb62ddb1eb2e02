package target

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"closeguard/internal/domain"
)

func TestResolverInitiallyUnresolved(t *testing.T) {
	r := New()

	_, ok := r.TabIndex()
	assert.False(t, ok)
	_, ok = r.Pane()
	assert.False(t, ok)
	assert.False(t, r.PaneInfoReceived())
}

func TestObserveTabsRetriesUntilFocusedTabAppears(t *testing.T) {
	r := New()

	// Transient notifications without a focused tab leave the field open.
	r.ObserveTabs(nil)
	r.ObserveTabs([]domain.TabInfo{{Position: 0}, {Position: 1}})
	_, ok := r.TabIndex()
	require.False(t, ok)

	r.ObserveTabs([]domain.TabInfo{{Position: 0}, {Position: 2, Focused: true}})
	idx, ok := r.TabIndex()
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestObserveTabsLatchesFirstFocusedTab(t *testing.T) {
	r := New()

	r.ObserveTabs([]domain.TabInfo{{Position: 1, Focused: true}})

	// A later notification naming a different focused tab must not move it.
	r.ObserveTabs([]domain.TabInfo{{Position: 4, Focused: true}})

	idx, ok := r.TabIndex()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestObservePanesIsNoopBeforeTabResolved(t *testing.T) {
	r := New()

	r.ObservePanes(domain.ClosePane, domain.PaneManifest{
		0: {{ID: 7, Focused: true}},
	})

	_, ok := r.Pane()
	assert.False(t, ok)
	assert.False(t, r.PaneInfoReceived(), "the one-shot must not be consumed before the tab is known")
}

func TestObservePanesIsNoopForOtherActions(t *testing.T) {
	for _, action := range []domain.Action{domain.QuitSession, domain.CloseTab} {
		r := New()
		r.ObserveTabs([]domain.TabInfo{{Position: 0, Focused: true}})

		r.ObservePanes(action, domain.PaneManifest{
			0: {{ID: 7, Focused: true}},
		})

		_, ok := r.Pane()
		assert.False(t, ok, "action %v must not resolve a pane", action)
		assert.False(t, r.PaneInfoReceived())
	}
}

func TestObservePanesLatchesFocusedPaneOfResolvedTab(t *testing.T) {
	r := New()
	r.ObserveTabs([]domain.TabInfo{{Position: 1, Focused: true}})

	r.ObservePanes(domain.ClosePane, domain.PaneManifest{
		0: {{ID: 1, Focused: true}},
		1: {{ID: 6}, {ID: 7, Focused: true}},
	})

	id, ok := r.Pane()
	require.True(t, ok)
	assert.Equal(t, domain.PaneID{Kind: domain.PaneTerminal, ID: 7}, id)
	assert.True(t, r.PaneInfoReceived())
}

func TestObservePanesTagsPluginPanes(t *testing.T) {
	r := New()
	r.ObserveTabs([]domain.TabInfo{{Position: 0, Focused: true}})

	r.ObservePanes(domain.ClosePane, domain.PaneManifest{
		0: {{ID: 9, Focused: true, IsPlugin: true}},
	})

	id, ok := r.Pane()
	require.True(t, ok)
	assert.Equal(t, domain.PanePlugin, id.Kind)
	assert.Equal(t, uint32(9), id.ID)
}

func TestObservePanesConsumesExactlyOneNotification(t *testing.T) {
	r := New()
	r.ObserveTabs([]domain.TabInfo{{Position: 0, Focused: true}})

	r.ObservePanes(domain.ClosePane, domain.PaneManifest{
		0: {{ID: 7, Focused: true}},
	})
	// A second manifest with a different focused pane must be ignored.
	r.ObservePanes(domain.ClosePane, domain.PaneManifest{
		0: {{ID: 42, Focused: true}},
	})

	id, ok := r.Pane()
	require.True(t, ok)
	assert.Equal(t, uint32(7), id.ID)
}

func TestObservePanesFreezesEvenWithoutFocusedPane(t *testing.T) {
	r := New()
	r.ObserveTabs([]domain.TabInfo{{Position: 0, Focused: true}})

	// No focused pane in the resolved tab: the one-shot is still consumed,
	// there is deliberately no retry for pane resolution.
	r.ObservePanes(domain.ClosePane, domain.PaneManifest{
		0: {{ID: 5}, {ID: 6}},
	})
	assert.True(t, r.PaneInfoReceived())

	r.ObservePanes(domain.ClosePane, domain.PaneManifest{
		0: {{ID: 6, Focused: true}},
	})

	_, ok := r.Pane()
	assert.False(t, ok)
}
