package tui

import (
	"strings"

	"github.com/blackwell-systems/bookshelf/internal/store"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case m.notice != "":
		body = m.renderNotice()
	case m.store.PendingRemoval() != nil:
		body = m.renderConfirm()
	case m.store.Dialog().IsForm():
		body = m.form.View()
	case m.store.Dialog() == store.DialogView:
		body = m.renderViewDialog()
	default:
		return StyleBorder.Render(m.renderList() + "\n" + m.renderFooter())
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

func (m Model) renderList() string {
	if m.store.Len() == 0 {
		return StyleHeader.Render("MY BOOKSHELF") + "\n\n" +
			StyleHelp.Render("  No books yet. Press a to add one.") + "\n"
	}
	return m.list.View()
}

func (m Model) renderFooter() string {
	return RenderFooterBar([]ShortcutEntry{
		{Key: "", Label: "↑/↓ navigate"},
		{Key: "", Label: "enter view"},
		{Key: "a", Label: "a add"},
		{Key: "e", Label: "e edit"},
		{Key: "d", Label: "d delete"},
		{Key: "", Label: "q quit"},
	}, m.activeCmd)
}

// renderViewDialog shows the staged draft read-only.
func (m Model) renderViewDialog() string {
	d := m.store.Draft()

	description := d.Description
	if description == "" {
		description = StyleHelp.Italic(true).Render(m.placeholder)
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render(d.Title))
	b.WriteString("\n")
	b.WriteString(StyleMeta.Render(d.Author + " • " + d.Year))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(48).Render(description))
	b.WriteString("\n\n")
	b.WriteString(RenderFooterBar([]ShortcutEntry{
		{Key: "", Label: "esc close"},
		{Key: "", Label: "e edit"},
	}, ""))

	return StyleDialog.Render(b.String())
}

func (m Model) renderConfirm() string {
	c := m.store.PendingRemoval()

	var b strings.Builder
	b.WriteString(StyleDanger.Render("Delete book"))
	b.WriteString("\n\n")
	b.WriteString("Are you sure you want to delete this book?\n")
	b.WriteString(StyleHelp.Render(c.Book.Title))
	b.WriteString("\n\n")
	b.WriteString(StyleHelp.Render("n cancel") + "  " + StyleDanger.Render("y delete"))

	return StyleDialog.BorderForeground(ColorRed).Render(b.String())
}

func (m Model) renderNotice() string {
	return StyleDialog.BorderForeground(ColorYellow).Render(
		StyleNotice.Render(m.notice) + "\n\n" + StyleHelp.Render("enter ok"),
	)
}
