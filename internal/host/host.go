// Package host defines the boundary between the overlay and the surrounding
// workspace application.
package host

import "closeguard/internal/domain"

// Permission is a capability the overlay requests from the host at load
// time. Both are preconditions for the close/quit primitives; if the host
// denies them it unloads the overlay, so denial is not handled here.
type Permission int

const (
	// ReadApplicationState allows receiving tab and pane notifications.
	ReadApplicationState Permission = iota
	// ChangeApplicationState allows the close and quit primitives.
	ChangeApplicationState
)

func (p Permission) String() string {
	return [...]string{"read_application_state", "change_application_state"}[p]
}

// EventType is a notification category the overlay can subscribe to.
type EventType int

const (
	EventKey EventType = iota
	EventTabUpdate
	EventPaneUpdate
)

func (e EventType) String() string {
	return [...]string{"key", "tab_update", "pane_update"}[e]
}

// Host exposes the primitives the overlay may invoke. All calls are
// fire-and-forget signals. The host serializes event delivery, so
// implementations are never called concurrently.
type Host interface {
	// RequestPermissions asks the host for capabilities at load time.
	RequestPermissions(perms ...Permission)
	// Subscribe registers for notification categories.
	Subscribe(events ...EventType)
	// QuitSession terminates the whole workspace session.
	QuitSession()
	// ClosePane closes the pane with the given tagged id.
	ClosePane(id domain.PaneID)
	// CloseFocusedPane closes whatever pane the host considers focused.
	// Fallback only: it may hit the overlay's own pane.
	CloseFocusedPane()
	// CloseFocusedTab closes the host's current tab.
	CloseFocusedTab()
	// HideSelf asks the host to hide the overlay.
	HideSelf()
}

// TabUpdateMsg is an asynchronous tab-state notification from the host.
type TabUpdateMsg []domain.TabInfo

// PaneUpdateMsg is an asynchronous pane-manifest notification from the host.
type PaneUpdateMsg domain.PaneManifest
