// Package domain contains core types for the closeguard overlay.
package domain

import "strings"

// Action is the operation the overlay asks the user to confirm.
type Action int

const (
	// QuitSession terminates the entire workspace session.
	QuitSession Action = iota
	// ClosePane closes the pane that was focused when the overlay opened.
	ClosePane
	// CloseTab closes the focused tab.
	CloseTab
)

func (a Action) String() string {
	return [...]string{"quit_session", "close_pane", "close_tab"}[a]
}

// ActionFromConfig maps a configuration string to an Action. Matching is
// case-insensitive; anything unrecognized (including the empty string) falls
// back to QuitSession, the safest default.
func ActionFromConfig(raw string) Action {
	switch strings.ToLower(raw) {
	case "close_pane", "closepane", "pane":
		return ClosePane
	case "close_tab", "closetab", "tab":
		return CloseTab
	default:
		return QuitSession
	}
}

// ConfirmationText returns the prompt shown in the overlay body.
func (a Action) ConfirmationText() string {
	switch a {
	case ClosePane:
		return "Are you sure you want to close this pane?"
	case CloseTab:
		return "Are you sure you want to close this tab?"
	default:
		return "Are you sure you want to quit this session?"
	}
}

// DisplayName returns the human-readable action name for the overlay title.
func (a Action) DisplayName() string {
	switch a {
	case ClosePane:
		return "Close Pane"
	case CloseTab:
		return "Close Tab"
	default:
		return "Quit Session"
	}
}
