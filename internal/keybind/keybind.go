// Package keybind parses configured key-binding strings and matches them
// against incoming key presses.
//
// The grammar is a bare key name ("Enter", "Esc", a single printable
// character) optionally prefixed by modifier tokens joined with "+", e.g.
// "Ctrl+c" or "Alt+Shift+Tab". Unknown tokens fail the parse.
package keybind

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Binding is a single confirm/cancel key binding. A press matches only on
// exact key identity plus the full modifier set.
type Binding struct {
	kb    key.Binding
	label string
}

// ParseError describes a key-binding string that could not be parsed.
type ParseError struct {
	Raw   string
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("keybind: unknown token %q in %q", e.Token, e.Raw)
}

// namedKeys maps lowercase key names from the config grammar to the
// canonical key string bubbletea reports and a display label.
var namedKeys = map[string]struct{ canon, label string }{
	"enter":     {"enter", "Enter"},
	"esc":       {"esc", "Esc"},
	"escape":    {"esc", "Esc"},
	"space":     {" ", "Space"},
	"tab":       {"tab", "Tab"},
	"backspace": {"backspace", "Backspace"},
	"delete":    {"delete", "Delete"},
	"del":       {"delete", "Delete"},
	"insert":    {"insert", "Insert"},
	"ins":       {"insert", "Insert"},
	"up":        {"up", "Up"},
	"down":      {"down", "Down"},
	"left":      {"left", "Left"},
	"right":     {"right", "Right"},
	"home":      {"home", "Home"},
	"end":       {"end", "End"},
	"pgup":      {"pgup", "PageUp"},
	"pageup":    {"pgup", "PageUp"},
	"pgdown":    {"pgdown", "PageDown"},
	"pagedown":  {"pgdown", "PageDown"},
}

// Parse converts a key-binding string into a Binding.
func Parse(raw string) (Binding, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Binding{}, &ParseError{Raw: raw, Token: raw}
	}

	tokens := strings.Split(trimmed, "+")
	keyToken := tokens[len(tokens)-1]
	if keyToken == "" && len(tokens) == 2 && tokens[0] == "" {
		// The string "+" binds the plus key itself.
		keyToken, tokens = "+", tokens[:0]
	} else {
		tokens = tokens[:len(tokens)-1]
	}

	var ctrl, alt, shift bool
	for _, tok := range tokens {
		switch strings.ToLower(strings.TrimSpace(tok)) {
		case "ctrl", "control":
			ctrl = true
		case "alt", "meta":
			alt = true
		case "shift":
			shift = true
		default:
			return Binding{}, &ParseError{Raw: raw, Token: tok}
		}
	}

	canon, keyLabel, isRune, err := parseKeyToken(raw, keyToken)
	if err != nil {
		return Binding{}, err
	}

	// Assemble the canonical name the way bubbletea reports modified keys:
	// "alt+" outermost, then "ctrl+", then "shift+" for named keys. A
	// shifted printable rune arrives as its uppercase form with no modifier.
	if isRune {
		if shift {
			canon = strings.ToUpper(canon)
		}
		if ctrl {
			canon = "ctrl+" + strings.ToLower(canon)
		}
	} else {
		if shift {
			canon = "shift+" + canon
		}
		if ctrl {
			canon = "ctrl+" + canon
		}
	}
	if alt {
		canon = "alt+" + canon
	}

	var labelParts []string
	if ctrl {
		labelParts = append(labelParts, "Ctrl")
	}
	if alt {
		labelParts = append(labelParts, "Alt")
	}
	if shift {
		labelParts = append(labelParts, "Shift")
	}
	labelParts = append(labelParts, keyLabel)

	return newBinding(canon, strings.Join(labelParts, "+")), nil
}

func parseKeyToken(raw, token string) (canon, label string, isRune bool, err error) {
	t := strings.TrimSpace(token)
	if n, ok := namedKeys[strings.ToLower(t)]; ok {
		return n.canon, n.label, false, nil
	}
	if len(t) >= 2 && (t[0] == 'f' || t[0] == 'F') {
		if num, convErr := strconv.Atoi(t[1:]); convErr == nil && num >= 1 && num <= 20 {
			return fmt.Sprintf("f%d", num), fmt.Sprintf("F%d", num), false, nil
		}
	}
	runes := []rune(t)
	if len(runes) == 1 && unicode.IsPrint(runes[0]) && runes[0] != ' ' {
		return string(runes), string(runes), true, nil
	}
	return "", "", false, &ParseError{Raw: raw, Token: token}
}

// ParseOr parses raw and falls back to prior when raw is empty or invalid.
// Configuration errors must never leave the overlay unusable.
func ParseOr(raw string, prior Binding) Binding {
	if strings.TrimSpace(raw) == "" {
		return prior
	}
	b, err := Parse(raw)
	if err != nil {
		return prior
	}
	return b
}

// DefaultConfirm is the Enter key.
func DefaultConfirm() Binding { return newBinding("enter", "Enter") }

// DefaultCancel is the Esc key.
func DefaultCancel() Binding { return newBinding("esc", "Esc") }

func newBinding(canonical, label string) Binding {
	return Binding{
		kb:    key.NewBinding(key.WithKeys(canonical), key.WithHelp(label, "")),
		label: label,
	}
}

// Matches reports whether the pressed key is exactly this binding.
func (b Binding) Matches(msg tea.KeyMsg) bool {
	return key.Matches(msg, b.kb)
}

func (b Binding) String() string { return b.label }
