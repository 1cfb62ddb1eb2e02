// Package target reconstructs the identity of the pane/tab that was focused
// before the overlay opened, from asynchronous host notifications.
package target

import "closeguard/internal/domain"

// Resolver latches the pre-overlay focus target. Each field accepts exactly
// one write; once resolved it ignores every later notification, so the
// confirmed action can never drift to a pane or tab that gained focus after
// the overlay appeared.
type Resolver struct {
	tabIndex         *int
	paneID           *domain.PaneID
	paneInfoReceived bool
}

// New returns a fully unresolved Resolver.
func New() *Resolver { return &Resolver{} }

// ObserveTabs consumes a tab-update notification. The first notification
// that names a focused tab latches its position. Notifications without a
// focused tab leave the field unresolved for the next retry; the host may
// send several transient updates while the overlay is launching.
func (r *Resolver) ObserveTabs(tabs []domain.TabInfo) {
	if r.tabIndex != nil {
		return
	}
	for _, tab := range tabs {
		if tab.Focused {
			pos := tab.Position
			r.tabIndex = &pos
			return
		}
	}
}

// ObservePanes consumes a pane-manifest notification. It runs only for the
// ClosePane action, at most once, and only after the tab is resolved. The
// one-shot flag is set whether or not a focused pane was found: pane
// resolution deliberately trades a retry for bounded latency.
func (r *Resolver) ObservePanes(action domain.Action, manifest domain.PaneManifest) {
	if action != domain.ClosePane || r.paneInfoReceived || r.tabIndex == nil {
		return
	}
	for _, pane := range manifest[*r.tabIndex] {
		if pane.Focused {
			id := domain.PaneID{Kind: domain.PaneTerminal, ID: pane.ID}
			if pane.IsPlugin {
				id.Kind = domain.PanePlugin
			}
			r.paneID = &id
			break
		}
	}
	r.paneInfoReceived = true
}

// TabIndex reports the latched tab position.
func (r *Resolver) TabIndex() (int, bool) {
	if r.tabIndex == nil {
		return 0, false
	}
	return *r.tabIndex, true
}

// Pane reports the latched pane identity.
func (r *Resolver) Pane() (domain.PaneID, bool) {
	if r.paneID == nil {
		return domain.PaneID{}, false
	}
	return *r.paneID, true
}

// PaneInfoReceived reports whether the one-shot pane notification has been
// consumed.
func (r *Resolver) PaneInfoReceived() bool { return r.paneInfoReceived }
