package app

import (
	"fmt"
	"log/slog"

	"closeguard/internal/domain"
	"closeguard/internal/host"
)

// Pane is one surface in the simulated workspace.
type Pane struct {
	ID      uint32
	Title   string
	Plugin  bool
	Focused bool
}

// Tab is an ordered container of panes.
type Tab struct {
	Name    string
	Focused bool
	Panes   []Pane
}

// SimHost implements host.Host against an in-memory tab/pane registry. It
// stands in for the workspace compositor so the overlay can be exercised end
// to end: close/quit primitives mutate the registry, and the notification
// builders report it the way a real host would.
type SimHost struct {
	Tabs          []Tab
	OverlayHidden bool
	SessionEnded  bool

	permissions []host.Permission
	events      []host.EventType
	logger      *slog.Logger
}

// NewSimHost builds a workspace with the given number of tabs and panes per
// tab. The second tab (or the first, if only one) is focused; the last pane
// of each tab is plugin-backed, the first is focused.
func NewSimHost(tabs, panesPerTab int, logger *slog.Logger) *SimHost {
	if tabs < 1 {
		tabs = 1
	}
	if panesPerTab < 1 {
		panesPerTab = 1
	}
	focused := 0
	if tabs > 1 {
		focused = 1
	}

	h := &SimHost{logger: logger}
	var nextID uint32 = 1
	for t := 0; t < tabs; t++ {
		tab := Tab{Name: fmt.Sprintf("Tab %d", t+1), Focused: t == focused}
		for p := 0; p < panesPerTab; p++ {
			tab.Panes = append(tab.Panes, Pane{
				ID:      nextID,
				Title:   fmt.Sprintf("pane-%d", nextID),
				Plugin:  panesPerTab > 1 && p == panesPerTab-1,
				Focused: p == 0,
			})
			nextID++
		}
		h.Tabs = append(h.Tabs, tab)
	}
	return h
}

// RequestPermissions records the requested capabilities. The simulated host
// grants everything.
func (h *SimHost) RequestPermissions(perms ...host.Permission) {
	h.permissions = append(h.permissions, perms...)
	h.logger.Info("permissions granted", "count", len(perms))
}

// Subscribe records the notification categories the overlay wants.
func (h *SimHost) Subscribe(events ...host.EventType) {
	h.events = append(h.events, events...)
	h.logger.Info("subscribed", "events", len(events))
}

// QuitSession terminates the simulated session.
func (h *SimHost) QuitSession() {
	h.SessionEnded = true
	h.logger.Info("session terminated")
}

// ClosePane removes the pane with the given tagged id from whichever tab
// holds it. A miss is logged and ignored.
func (h *SimHost) ClosePane(id domain.PaneID) {
	for t := range h.Tabs {
		for p, pane := range h.Tabs[t].Panes {
			if pane.ID == id.ID && pane.Plugin == (id.Kind == domain.PanePlugin) {
				h.Tabs[t].Panes = append(h.Tabs[t].Panes[:p], h.Tabs[t].Panes[p+1:]...)
				h.logger.Info("pane closed", "pane", id.String())
				return
			}
		}
	}
	h.logger.Warn("close requested for unknown pane", "pane", id.String())
}

// CloseFocusedPane removes the focused pane of the focused tab.
func (h *SimHost) CloseFocusedPane() {
	t := h.FocusedTab()
	if t < 0 {
		return
	}
	for p, pane := range h.Tabs[t].Panes {
		if pane.Focused {
			h.Tabs[t].Panes = append(h.Tabs[t].Panes[:p], h.Tabs[t].Panes[p+1:]...)
			h.logger.Info("focused pane closed", "tab", t)
			return
		}
	}
}

// CloseFocusedTab removes the focused tab and refocuses its left neighbor.
func (h *SimHost) CloseFocusedTab() {
	t := h.FocusedTab()
	if t < 0 {
		return
	}
	h.Tabs = append(h.Tabs[:t], h.Tabs[t+1:]...)
	if len(h.Tabs) > 0 {
		if t > 0 {
			t--
		}
		h.Tabs[t].Focused = true
	}
	h.logger.Info("focused tab closed", "remaining", len(h.Tabs))
}

// HideSelf hides the overlay.
func (h *SimHost) HideSelf() {
	h.OverlayHidden = true
	h.logger.Info("overlay hidden")
}

// FocusedTab returns the position of the focused tab, or -1.
func (h *SimHost) FocusedTab() int {
	for t, tab := range h.Tabs {
		if tab.Focused {
			return t
		}
	}
	return -1
}

// TabNotification builds a tab-update the way the host reports it. With
// settled false the focus flags are cleared, mimicking the transient updates
// a host emits while the overlay is still launching.
func (h *SimHost) TabNotification(settled bool) host.TabUpdateMsg {
	msg := make(host.TabUpdateMsg, 0, len(h.Tabs))
	for t, tab := range h.Tabs {
		msg = append(msg, domain.TabInfo{
			Position: t,
			Focused:  settled && tab.Focused,
		})
	}
	return msg
}

// PaneNotification builds a pane-manifest notification from the registry.
func (h *SimHost) PaneNotification() host.PaneUpdateMsg {
	msg := make(host.PaneUpdateMsg, len(h.Tabs))
	for t, tab := range h.Tabs {
		panes := make([]domain.PaneInfo, 0, len(tab.Panes))
		for _, pane := range tab.Panes {
			panes = append(panes, domain.PaneInfo{
				ID:       pane.ID,
				Focused:  pane.Focused,
				IsPlugin: pane.Plugin,
			})
		}
		msg[t] = panes
	}
	return msg
}
