package tui

import (
	"strings"

	"github.com/blackwell-systems/bookshelf/internal/catalog"
	"github.com/blackwell-systems/bookshelf/internal/store"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldTitle = iota
	fieldAuthor
	fieldYear
	fieldDescription
	fieldCount
)

const descCharLimit = 2000

var fieldLabels = [fieldCount]string{"Title", "Author", "Year", "About"}

// formModel is the create/edit dialog. It only stages input; the store
// decides what a submit means.
type formModel struct {
	inputs  []textinput.Model // title, author, year
	desc    textarea.Model
	focused int
	mode    store.Dialog
}

func newForm(d catalog.Draft, mode store.Dialog) formModel {
	m := formModel{
		inputs: make([]textinput.Model, fieldDescription),
		mode:   mode,
	}

	const fieldWidth = 42

	m.inputs[fieldTitle] = textinput.New()
	m.inputs[fieldTitle].Placeholder = "Book title"
	m.inputs[fieldTitle].SetValue(d.Title)
	m.inputs[fieldTitle].CharLimit = 200
	m.inputs[fieldTitle].Width = fieldWidth
	m.inputs[fieldTitle].Prompt = "│ "

	m.inputs[fieldAuthor] = textinput.New()
	m.inputs[fieldAuthor].Placeholder = "Author"
	m.inputs[fieldAuthor].SetValue(d.Author)
	m.inputs[fieldAuthor].CharLimit = 100
	m.inputs[fieldAuthor].Width = fieldWidth
	m.inputs[fieldAuthor].Prompt = "│ "

	// Year accepts digits only; see filterDigits.
	m.inputs[fieldYear] = textinput.New()
	m.inputs[fieldYear].Placeholder = "1965"
	m.inputs[fieldYear].SetValue(d.Year)
	m.inputs[fieldYear].CharLimit = 4
	m.inputs[fieldYear].Width = 8
	m.inputs[fieldYear].Prompt = "│ "

	m.desc = textarea.New()
	m.desc.Placeholder = "Description"
	m.desc.ShowLineNumbers = false
	// SetValue truncates to CharLimit, so a longer stored description raises it.
	m.desc.CharLimit = max(descCharLimit, len([]rune(d.Description)))
	m.desc.SetWidth(fieldWidth + 2)
	m.desc.SetHeight(3)
	m.desc.SetValue(d.Description)
	m.desc.Blur()

	m.inputs[fieldTitle].Focus()
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

// Draft returns the current field values.
func (m formModel) Draft() catalog.Draft {
	return catalog.Draft{
		Title:       m.inputs[fieldTitle].Value(),
		Author:      m.inputs[fieldAuthor].Value(),
		Year:        m.inputs[fieldYear].Value(),
		Description: m.desc.Value(),
	}
}

// Focused returns the index of the active field.
func (m formModel) Focused() int {
	return m.focused
}

// Update handles field navigation and typing. Submit and cancel are the
// caller's business.
func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, formKeyMap.Next):
			return m.focus(m.focused + 1)
		case key.Matches(msg, formKeyMap.Prev):
			return m.focus(m.focused - 1)
		case msg.Type == tea.KeyEnter && m.focused != fieldDescription:
			return m.focus(m.focused + 1)
		}

		if m.focused == fieldYear {
			var keep bool
			if msg, keep = filterDigits(msg); !keep {
				return m, nil
			}
			var cmd tea.Cmd
			m.inputs[fieldYear], cmd = m.inputs[fieldYear].Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	if m.focused == fieldDescription {
		m.desc, cmd = m.desc.Update(msg)
	} else {
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	}
	return m, cmd
}

func (m formModel) focus(i int) (formModel, tea.Cmd) {
	if i < 0 {
		i = fieldCount - 1
	} else if i >= fieldCount {
		i = 0
	}
	m.focused = i

	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	if i == fieldDescription {
		cmd = m.desc.Focus()
	} else {
		m.desc.Blur()
	}
	return m, cmd
}

// filterDigits strips everything but ASCII digits from typed or pasted
// input. Control keys pass through. Returns false when nothing is left to
// deliver.
func filterDigits(msg tea.KeyMsg) (tea.KeyMsg, bool) {
	if msg.Type != tea.KeyRunes {
		return msg, msg.Type != tea.KeySpace
	}
	digits := make([]rune, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return msg, false
	}
	msg.Runes = digits
	return msg, true
}

func (m formModel) title() string {
	if m.mode == store.DialogEdit {
		return "Edit Book"
	}
	return "New Book"
}

func (m formModel) submitLabel() string {
	if m.mode == store.DialogEdit {
		return "ctrl+s save"
	}
	return "ctrl+s create"
}

func (m formModel) View() string {
	formLabel := lipgloss.NewStyle().
		Foreground(ColorGray).
		Width(10).
		Align(lipgloss.Right).
		PaddingRight(1)
	formLabelActive := formLabel.
		Foreground(ColorYellow).
		Bold(true)

	var b strings.Builder
	b.WriteString(StyleHeader.Render(m.title()))
	b.WriteString("\n\n")

	for i, label := range fieldLabels {
		if i == m.focused {
			b.WriteString(formLabelActive.Render("› " + label))
		} else {
			b.WriteString(formLabel.Render(label))
		}
		if i == fieldDescription {
			b.WriteString("\n")
			b.WriteString(m.desc.View())
		} else {
			b.WriteString(m.inputs[i].View())
		}
		b.WriteString("\n\n")
	}

	b.WriteString(RenderFooterBar([]ShortcutEntry{
		{Key: "", Label: "tab navigate"},
		{Key: "ctrl+s", Label: m.submitLabel()},
		{Key: "", Label: "esc cancel"},
	}, ""))

	return StyleDialog.Render(b.String())
}
