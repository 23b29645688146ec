package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/blackwell-systems/bookshelf/internal/catalog"
	"github.com/blackwell-systems/bookshelf/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySave  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func seqStore(books ...catalog.Book) *store.Store {
	n := 0
	s := store.New(store.WithIDFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))
	_ = s.Seed(books)
	return s
}

func TestAddBook(t *testing.T) {
	m := New(seqStore(), Options{})
	m = send(t, m, runes("a")...)
	if m.store.Dialog() != store.DialogCreate {
		t.Fatalf("Dialog = %v, want create", m.store.Dialog())
	}
	m = send(t, m, runes("Dune")...)
	m = send(t, m, keySave)

	books := m.store.Books()
	if len(books) != 1 || books[0].Title != "Dune" {
		t.Fatalf("books = %+v", books)
	}
	if m.store.Dialog() != store.DialogNone {
		t.Errorf("Dialog = %v after create", m.store.Dialog())
	}
	if len(m.list.Items()) != 1 {
		t.Errorf("list rows = %d, want 1", len(m.list.Items()))
	}
}

func TestAddBook_NewestFirst(t *testing.T) {
	m := New(seqStore(catalog.Book{ID: "dune", Title: "Dune"}), Options{})
	m = send(t, m, runes("a")...)
	m = send(t, m, runes("Foundation")...)
	m = send(t, m, keySave)

	item, ok := m.list.SelectedItem().(BookItem)
	if !ok || item.Book.Title != "Foundation" {
		t.Errorf("selected = %+v, want Foundation", item)
	}
	if got := m.store.Books()[1].Title; got != "Dune" {
		t.Errorf("books[1] = %q, want Dune", got)
	}
}

func TestAddBook_EmptyTitleShowsNotice(t *testing.T) {
	m := New(seqStore(), Options{})
	m = send(t, m, runes("a")...)
	m = send(t, m, runes("   ")...)
	m = send(t, m, keySave)

	if m.Notice() == "" {
		t.Fatal("no notice for empty title")
	}
	if m.store.Len() != 0 {
		t.Errorf("Len = %d, want 0", m.store.Len())
	}
	if !strings.Contains(m.View(), m.Notice()) {
		t.Error("notice not rendered")
	}

	// Keys other than dismiss are swallowed while the notice is up.
	m = send(t, m, runes("x")...)
	if m.Notice() == "" {
		t.Error("notice dismissed by unrelated key")
	}

	m = send(t, m, keyEnter)
	if m.Notice() != "" {
		t.Error("notice not dismissed")
	}
	if m.store.Dialog() != store.DialogCreate {
		t.Errorf("Dialog = %v, want form still open", m.store.Dialog())
	}
}

func TestCancelCreate(t *testing.T) {
	m := New(seqStore(), Options{})
	m = send(t, m, runes("a")...)
	m = send(t, m, runes("Dune")...)
	m = send(t, m, keyEsc)
	if m.store.Len() != 0 || m.store.Dialog() != store.DialogNone {
		t.Errorf("Len=%d Dialog=%v", m.store.Len(), m.store.Dialog())
	}
}

func TestEditBook(t *testing.T) {
	m := New(seqStore(catalog.Book{ID: "dune", Title: "Dune", Year: "1965"}), Options{})
	m = send(t, m, runes("e")...)
	if m.store.Dialog() != store.DialogEdit || m.store.Focus() != "dune" {
		t.Fatalf("Dialog=%v Focus=%q", m.store.Dialog(), m.store.Focus())
	}
	if got := m.form.Draft().Title; got != "Dune" {
		t.Errorf("form title = %q, want prefilled", got)
	}

	m = send(t, m, keyTab)
	m = send(t, m, runes("Herbert")...)
	m = send(t, m, keySave)

	b, _ := m.store.Get("dune")
	if b.Author != "Herbert" || b.Title != "Dune" || b.Year != "1965" {
		t.Errorf("book = %+v", b)
	}
	if m.store.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.store.Len())
	}
}

func TestEditKeepsLongDescription(t *testing.T) {
	orig := catalog.Book{
		ID:          "dune",
		Title:       "Dune",
		Description: strings.Repeat("word ", 500) + "\n" + strings.Repeat("line\n", 120) + "end",
	}
	m := New(seqStore(orig), Options{})
	m = send(t, m, runes("e")...)
	m = send(t, m, keySave)

	if m.store.Dialog() != store.DialogNone {
		t.Fatalf("Dialog = %v, want closed", m.store.Dialog())
	}
	got, _ := m.store.Get("dune")
	if got != orig {
		t.Errorf("description changed: len %d, want %d", len(got.Description), len(orig.Description))
	}
}

func TestViewThenEdit(t *testing.T) {
	m := New(seqStore(catalog.Book{ID: "dune", Title: "Dune"}), Options{})
	m = send(t, m, keyEnter)
	if m.store.Dialog() != store.DialogView {
		t.Fatalf("Dialog = %v, want view", m.store.Dialog())
	}
	if !strings.Contains(m.View(), "(no description)") {
		t.Error("view dialog missing placeholder")
	}

	m = send(t, m, runes("e")...)
	if m.store.Dialog() != store.DialogEdit || m.store.Focus() != "dune" {
		t.Fatalf("Dialog=%v Focus=%q", m.store.Dialog(), m.store.Focus())
	}
	m = send(t, m, keyTab, keyTab, keyTab)
	m = send(t, m, runes("Spice")...)
	m = send(t, m, keySave)

	b, _ := m.store.Get("dune")
	if b.Description != "Spice" {
		t.Errorf("Description = %q, want %q", b.Description, "Spice")
	}
}

func TestViewPlaceholderOption(t *testing.T) {
	m := New(seqStore(catalog.Book{ID: "dune", Title: "Dune"}), Options{Placeholder: "nothing yet"})
	m = send(t, m, keyEnter)
	if !strings.Contains(m.View(), "nothing yet") {
		t.Error("custom placeholder not rendered")
	}
	m = send(t, m, keyEsc)
	if m.store.Dialog() != store.DialogNone {
		t.Errorf("Dialog = %v after close", m.store.Dialog())
	}
}

func TestDeleteBook(t *testing.T) {
	m := New(seqStore(
		catalog.Book{ID: "dune", Title: "Dune"},
		catalog.Book{ID: "emma", Title: "Emma"},
	), Options{})

	m = send(t, m, runes("d")...)
	if m.store.PendingRemoval() == nil {
		t.Fatal("no pending removal after d")
	}
	if !strings.Contains(m.View(), "Dune") {
		t.Error("prompt does not name the book")
	}
	m = send(t, m, runes("n")...)
	if m.store.Len() != 2 || m.store.PendingRemoval() != nil {
		t.Fatalf("cancel: Len=%d pending=%v", m.store.Len(), m.store.PendingRemoval())
	}

	m = send(t, m, runes("dy")...)
	if m.store.Len() != 1 {
		t.Fatalf("Len = %d after confirm, want 1", m.store.Len())
	}
	if _, ok := m.store.Get("dune"); ok {
		t.Error("wrong book removed")
	}
	if len(m.list.Items()) != 1 {
		t.Errorf("list rows = %d, want 1", len(m.list.Items()))
	}
}

func TestDeleteLastBookKeepsCursorValid(t *testing.T) {
	m := New(seqStore(
		catalog.Book{ID: "a", Title: "A"},
		catalog.Book{ID: "b", Title: "B"},
	), Options{})
	m.list.Select(1)
	m = send(t, m, runes("dy")...)
	if m.list.Index() != 0 {
		t.Errorf("Index = %d, want 0", m.list.Index())
	}
}

func TestEmptyListActionsAreNoops(t *testing.T) {
	m := New(seqStore(), Options{})
	m = send(t, m, runes("ed")...)
	m = send(t, m, keyEnter)
	if m.store.Dialog() != store.DialogNone || m.store.PendingRemoval() != nil {
		t.Errorf("Dialog=%v pending=%v", m.store.Dialog(), m.store.PendingRemoval())
	}
	if !strings.Contains(m.View(), "No books yet") {
		t.Error("empty state not rendered")
	}
}

func TestYearAcceptsDigitsOnly(t *testing.T) {
	m := New(seqStore(), Options{})
	m = send(t, m, runes("a")...)
	m = send(t, m, keyTab, keyTab)
	if m.form.Focused() != fieldYear {
		t.Fatalf("focused = %d, want year", m.form.Focused())
	}
	m = send(t, m, runes("19a6 5x")...)
	if got := m.form.Draft().Year; got != "1965" {
		t.Errorf("Year = %q, want %q", got, "1965")
	}
}

func TestQuit(t *testing.T) {
	m := New(seqStore(), Options{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if !next.(Model).quitting {
		t.Error("quitting not set")
	}
	if next.(Model).View() != "" {
		t.Error("View not empty after quit")
	}
}

func TestQKeyTypesInForm(t *testing.T) {
	m := New(seqStore(), Options{})
	m = send(t, m, runes("a")...)
	m = send(t, m, runes("quiet")...)
	if m.quitting {
		t.Fatal("q quit from inside the form")
	}
	if got := m.form.Draft().Title; got != "quiet" {
		t.Errorf("title = %q, want %q", got, "quiet")
	}
}

func TestFilterDigits(t *testing.T) {
	cases := []struct {
		name     string
		msg      tea.KeyMsg
		wantKeep bool
		want     string
	}{
		{"digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("7")}, true, "7"},
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, false, ""},
		{"paste mixed", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1a9b"), Paste: true}, true, "19"},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, false, ""},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, true, ""},
		{"arabic-indic digits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("١٩٦٥")}, false, ""},
		{"fullwidth mixed", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("１9"), Paste: true}, true, "9"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, keep := filterDigits(c.msg)
			if keep != c.wantKeep {
				t.Fatalf("keep = %v, want %v", keep, c.wantKeep)
			}
			if keep && c.msg.Type == tea.KeyRunes && string(got.Runes) != c.want {
				t.Errorf("runes = %q, want %q", string(got.Runes), c.want)
			}
		})
	}
}

func TestRenderFooterBar_Highlight(t *testing.T) {
	out := RenderFooterBar([]ShortcutEntry{{Key: "a", Label: "a add"}, {Key: "", Label: "q quit"}}, "a")
	if !strings.Contains(out, "[ a add ]") {
		t.Errorf("active shortcut not bracketed: %q", out)
	}
	if strings.Contains(out, "[ q quit ]") {
		t.Errorf("inactive shortcut bracketed: %q", out)
	}
}
