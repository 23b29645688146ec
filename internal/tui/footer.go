package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ClearActiveCmdMsg ends the highlight of the last pressed shortcut.
type ClearActiveCmdMsg struct{}

// ShortcutEntry is one key hint in the shelf footer, e.g. "a add" or "ctrl+s save".
type ShortcutEntry struct {
	Key   string // key that lights the hint; empty never lights
	Label string
}

// HighlightCmd fires ClearActiveCmdMsg after 500ms, so a list action such as
// add or delete stays lit briefly after its key is pressed.
func HighlightCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return ClearActiveCmdMsg{}
	})
}

// RenderFooterBar joins the key hints under the list or dialog. The hint for
// activeCmd is bracketed in StyleHighlight.
func RenderFooterBar(shortcuts []ShortcutEntry, activeCmd string) string {
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	parts := make([]string, len(shortcuts))
	for i, sc := range shortcuts {
		if activeCmd != "" && sc.Key == activeCmd {
			parts[i] = StyleHighlight.Render("[ " + sc.Label + " ]")
		} else {
			parts[i] = dimStyle.Render(sc.Label)
		}
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, dimStyle.Render(" • ")))
}
