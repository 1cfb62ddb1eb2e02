package overlay

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"closeguard/internal/config"
	"closeguard/internal/domain"
	"closeguard/internal/host"
	"closeguard/internal/keybind"
	"closeguard/internal/target"
)

// Confirm is the confirmation overlay. It owns the configured action, the
// confirm/cancel bindings and the target resolver, and executes the action
// against the host once the user confirms.
type Confirm struct {
	action     domain.Action
	confirmKey keybind.Binding
	cancelKey  keybind.Binding
	resolver   *target.Resolver
	host       host.Host
	styles     *Styles

	width  int
	height int
}

// NewConfirm builds the overlay from configuration, requests the permissions
// the close/quit primitives need and subscribes to the events the resolver
// consumes. An unrecognized action falls back to quit_session; unparsable
// key bindings silently keep their defaults.
func NewConfirm(cfg config.Config, h host.Host) *Confirm {
	h.RequestPermissions(host.ChangeApplicationState, host.ReadApplicationState)
	h.Subscribe(host.EventKey, host.EventTabUpdate, host.EventPaneUpdate)

	return &Confirm{
		action:     domain.ActionFromConfig(cfg.Action),
		confirmKey: keybind.ParseOr(cfg.ConfirmKey, keybind.DefaultConfirm()),
		cancelKey:  keybind.ParseOr(cfg.CancelKey, keybind.DefaultCancel()),
		resolver:   target.New(),
		host:       h,
		styles:     NewStyles(),
	}
}

// Init implements tea.Model.
func (c *Confirm) Init() tea.Cmd { return nil }

// Update handles key presses and host notifications. Keys other than the
// confirm/cancel bindings are ignored; every event falls through to a
// re-render, which is cheap and idempotent.
func (c *Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
	case tea.KeyMsg:
		switch {
		case c.confirmKey.Matches(msg):
			c.executeAction()
		case c.cancelKey.Matches(msg):
			c.host.HideSelf()
		}
	case host.TabUpdateMsg:
		c.resolver.ObserveTabs(msg)
	case host.PaneUpdateMsg:
		c.resolver.ObservePanes(c.action, domain.PaneManifest(msg))
	}
	return c, nil
}

// executeAction performs the confirmed operation. The close actions hide the
// overlay before issuing the close so the dialog never outlives its target.
func (c *Confirm) executeAction() {
	switch c.action {
	case domain.QuitSession:
		c.host.QuitSession()
	case domain.ClosePane:
		c.host.HideSelf()
		if id, ok := c.resolver.Pane(); ok {
			c.host.ClosePane(id)
		} else {
			// Could not identify the original pane; close whatever is
			// focused. This may hit the overlay's own pane.
			c.host.CloseFocusedPane()
		}
	case domain.CloseTab:
		// The resolved tab index is display only: the close targets the
		// host's notion of the current tab at call time.
		c.host.HideSelf()
		c.host.CloseFocusedTab()
	}
}

// Title implements Overlay.
func (c *Confirm) Title() string { return c.action.DisplayName() }

// TargetLine returns the target status line, or "" when the action needs no
// target. Tab positions are displayed 1-indexed.
func (c *Confirm) TargetLine() string {
	switch c.action {
	case domain.ClosePane:
		if id, ok := c.resolver.Pane(); ok {
			return id.String()
		}
		return "(detecting...)"
	case domain.CloseTab:
		if idx, ok := c.resolver.TabIndex(); ok {
			return fmt.Sprintf("Tab #%d", idx+1)
		}
		return "(detecting...)"
	default:
		return ""
	}
}

// View renders the dialog: title, prompt, target status and help line,
// centered in the last known window size. It is a pure function of state.
func (c *Confirm) View() string {
	lines := []string{
		c.styles.Title.Render(fmt.Sprintf("[ %s ]", c.action.DisplayName())),
		"",
		c.styles.Prompt.Render(c.action.ConfirmationText()),
	}
	if t := c.TargetLine(); t != "" {
		lines = append(lines, "",
			c.styles.TargetLabel.Render("Target: ")+c.styles.Target.Render(t))
	}
	body := lipgloss.JoinVertical(lipgloss.Center, lines...)

	help := c.styles.Help.Render("Help: ") +
		c.styles.HelpKey.Render(fmt.Sprintf("<%s>", c.confirmKey)) +
		c.styles.Help.Render(" - Confirm, ") +
		c.styles.HelpKey.Render(fmt.Sprintf("<%s>", c.cancelKey)) +
		c.styles.Help.Render(" - Cancel")

	if c.width <= 0 || c.height <= 1 {
		return body + "\n\n" + help
	}
	centered := lipgloss.Place(c.width, c.height-1, lipgloss.Center, lipgloss.Center, body)
	return centered + "\n" + lipgloss.PlaceHorizontal(c.width, lipgloss.Center, help)
}
