// Package app contains the simulated workspace model that embeds the
// confirmation overlay.
package app

import (
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"closeguard/internal/config"
	"closeguard/internal/overlay"
	"closeguard/internal/ui/styles"
)

// chromeRows is the number of rows the workspace keeps for itself above the
// overlay: the tab strip and the pane line.
const chromeRows = 2

// Model is the root TEA model: a minimal workspace with the confirmation
// overlay composited over it. It owns the SimHost and replays the host's
// asynchronous notification sequence after the overlay opens.
type Model struct {
	host   *SimHost
	dialog overlay.Overlay
	logger *slog.Logger

	tabStyle        lipgloss.Style
	tabFocusedStyle lipgloss.Style
	paneStyle       lipgloss.Style

	width  int
	height int
}

// NewModel wires the overlay into a simulated workspace.
func NewModel(cfg config.Config, h *SimHost, logger *slog.Logger) *Model {
	return &Model{
		host:   h,
		dialog: overlay.NewConfirm(cfg, h),
		logger: logger,

		tabStyle:        lipgloss.NewStyle().Foreground(styles.Subtext0).Padding(0, 1),
		tabFocusedStyle: lipgloss.NewStyle().Foreground(styles.Blue).Bold(true).Padding(0, 1),
		paneStyle:       lipgloss.NewStyle().Foreground(styles.Subtext1),
	}
}

// Init schedules the host's notification sequence: a transient tab update
// with no focus settled yet, the real tab update, then the pane manifest.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		notifyAfter(40*time.Millisecond, func() tea.Msg { return m.host.TabNotification(false) }),
		notifyAfter(120*time.Millisecond, func() tea.Msg { return m.host.TabNotification(true) }),
		notifyAfter(200*time.Millisecond, func() tea.Msg { return m.host.PaneNotification() }),
	)
}

func notifyAfter(d time.Duration, fn func() tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return fn() })
}

// Update forwards events to the overlay and ends the program once the host
// reports the session terminated or the overlay hidden.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		msg.Height -= chromeRows
		m.dialog.Update(msg)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	_, cmd := m.dialog.Update(msg)
	if m.host.SessionEnded || m.host.OverlayHidden {
		m.logger.Info("overlay finished",
			"session_ended", m.host.SessionEnded,
			"tabs_left", len(m.host.Tabs))
		return m, tea.Quit
	}
	return m, cmd
}

// View renders the tab strip, the focused tab's panes and the overlay.
func (m *Model) View() string {
	if m.host.SessionEnded || m.host.OverlayHidden {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.renderTabStrip())
	b.WriteString("\n")
	b.WriteString(m.renderPaneLine())
	b.WriteString("\n")
	b.WriteString(m.dialog.View())
	return b.String()
}

func (m *Model) renderTabStrip() string {
	cells := make([]string, 0, len(m.host.Tabs))
	for _, tab := range m.host.Tabs {
		if tab.Focused {
			cells = append(cells, m.tabFocusedStyle.Render(tab.Name))
		} else {
			cells = append(cells, m.tabStyle.Render(tab.Name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *Model) renderPaneLine() string {
	t := m.host.FocusedTab()
	if t < 0 {
		return ""
	}
	parts := make([]string, 0, len(m.host.Tabs[t].Panes))
	for _, pane := range m.host.Tabs[t].Panes {
		label := pane.Title
		if pane.Plugin {
			label += " [plugin]"
		}
		if pane.Focused {
			label += "*"
		}
		parts = append(parts, label)
	}
	return m.paneStyle.Render("  " + strings.Join(parts, "  "))
}
