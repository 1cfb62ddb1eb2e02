// Package overlay implements the confirmation dialog that the workspace
// host composites over the focused tab.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
}
