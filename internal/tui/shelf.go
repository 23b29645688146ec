package tui

import (
	"errors"

	"github.com/blackwell-systems/bookshelf/internal/catalog"
	"github.com/blackwell-systems/bookshelf/internal/config"
	"github.com/blackwell-systems/bookshelf/internal/store"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Options configures the shelf screen.
type Options struct {
	AltScreen bool

	// Placeholder is shown in the view dialog for an empty description.
	Placeholder string

	Logger *zap.Logger
}

// Model is the single bookshelf screen. It owns the store and is the only
// thing that mutates it.
type Model struct {
	store       *store.Store
	list        list.Model
	form        formModel
	notice      string // blocking validation notice
	placeholder string
	width       int
	height      int
	activeCmd   string
	quitting    bool
	log         *zap.Logger
}

// New builds the screen around s.
func New(s *store.Store, opts Options) Model {
	l := list.New(bookItems(s.Books()), newBookDelegate(), 80, 20)
	l.Title = "MY BOOKSHELF"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp

	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = config.DefaultEmptyDescription
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return Model{
		store:       s,
		list:        l,
		placeholder: placeholder,
		log:         logger,
	}
}

// Notice returns the blocking notice currently shown, if any.
func (m Model) Notice() string {
	return m.notice
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := StyleBorder.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-2)
		return m, nil

	case ClearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.notice != "" {
			if key.Matches(msg, dismissKey) {
				m.notice = ""
			}
			return m, nil
		}
		if m.store.PendingRemoval() != nil {
			return m.updateConfirm(msg)
		}
		switch m.store.Dialog() {
		case store.DialogCreate, store.DialogEdit:
			return m.updateForm(msg)
		case store.DialogView:
			return m.updateView(msg)
		default:
			return m.updateList(msg)
		}
	}

	// Non-key messages (cursor blink and the like)
	var cmd tea.Cmd
	if m.store.Dialog().IsForm() {
		m.form, cmd = m.form.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, listKeyMap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, listKeyMap.Add):
		m.store.BeginCreate()
		m.form = newForm(m.store.Draft(), store.DialogCreate)
		m.activeCmd = "a"
		return m, tea.Batch(m.form.Init(), HighlightCmd())

	case key.Matches(msg, listKeyMap.Edit):
		if item, ok := m.list.SelectedItem().(BookItem); ok {
			m.store.BeginEdit(item.Book)
			m.form = newForm(m.store.Draft(), store.DialogEdit)
			m.activeCmd = "e"
			return m, tea.Batch(m.form.Init(), HighlightCmd())
		}
		return m, nil

	case key.Matches(msg, listKeyMap.Delete):
		if item, ok := m.list.SelectedItem().(BookItem); ok {
			m.store.RequestRemove(item.Book.ID)
			m.activeCmd = "d"
			return m, HighlightCmd()
		}
		return m, nil

	case key.Matches(msg, listKeyMap.View):
		if item, ok := m.list.SelectedItem().(BookItem); ok {
			m.store.View(item.Book.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, formKeyMap.Cancel):
		m.store.CloseDialog()
		return m, nil

	case key.Matches(msg, formKeyMap.Submit):
		creating := m.store.Dialog() == store.DialogCreate
		m.store.SetDraft(m.form.Draft())
		b, ok, err := m.store.Submit()
		if err != nil {
			var ve *catalog.ValidationError
			if errors.As(err, &ve) {
				m.notice = ve.Message
				return m, nil
			}
			m.log.Error("submit failed", zap.Error(err))
			return m, nil
		}
		if !ok {
			m.log.Debug("submit had no target")
		}
		cmd := m.refresh()
		if creating && ok {
			m.list.Select(0)
			m.log.Info("book created", zap.String("id", b.ID))
		} else if ok {
			m.log.Info("book updated", zap.String("id", b.ID))
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, viewKeyMap.Edit):
		if m.store.EditFromView() {
			m.form = newForm(m.store.Draft(), store.DialogEdit)
			return m, m.form.Init()
		}
	case key.Matches(msg, viewKeyMap.Close):
		m.store.CloseDialog()
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.store.PendingRemoval()
	switch {
	case key.Matches(msg, confirmKeyMap.Yes):
		if c.Confirm() {
			m.log.Info("book removed", zap.String("id", c.Book.ID))
		}
		return m, m.refresh()
	case key.Matches(msg, confirmKeyMap.No):
		c.Cancel()
	}
	return m, nil
}

// refresh reloads list rows from the store, keeping the cursor in range.
func (m *Model) refresh() tea.Cmd {
	cmd := m.list.SetItems(bookItems(m.store.Books()))
	if n := len(m.list.Items()); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	return cmd
}
