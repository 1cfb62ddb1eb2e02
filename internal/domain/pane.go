package domain

import "fmt"

// PaneKind distinguishes the host's two disjoint pane id spaces. The kind
// matters: the host's close primitive dispatches on it.
type PaneKind int

const (
	PaneTerminal PaneKind = iota
	PanePlugin
)

func (k PaneKind) String() string {
	return [...]string{"terminal", "plugin"}[k]
}

// PaneID identifies a pane together with the id space it belongs to.
type PaneID struct {
	Kind PaneKind
	ID   uint32
}

func (p PaneID) String() string {
	if p.Kind == PanePlugin {
		return fmt.Sprintf("Plugin pane #%d", p.ID)
	}
	return fmt.Sprintf("Terminal pane #%d", p.ID)
}

// TabInfo describes one tab in a tab-update notification.
type TabInfo struct {
	Position int
	Focused  bool
}

// PaneInfo describes one pane in a pane-manifest notification.
type PaneInfo struct {
	ID       uint32
	Focused  bool
	IsPlugin bool
}

// PaneManifest maps tab positions to the panes they contain.
type PaneManifest map[int][]PaneInfo
