// Package store holds the in-memory bookshelf and the dialog state layered on
// top of it. A Store is owned by a single event loop and is not safe for
// concurrent use.
package store

import (
	"fmt"

	"github.com/blackwell-systems/bookshelf/internal/catalog"
	"github.com/blackwell-systems/bookshelf/internal/util"
	"go.uber.org/zap"
)

// Dialog identifies which dialog, if any, is open.
type Dialog int

const (
	DialogNone   Dialog = iota // List only
	DialogCreate               // Form staging a new book
	DialogEdit                 // Form staging changes to the focused book
	DialogView                 // Read-only view of the focused book
)

func (d Dialog) String() string {
	switch d {
	case DialogCreate:
		return "create"
	case DialogEdit:
		return "edit"
	case DialogView:
		return "view"
	default:
		return "none"
	}
}

// IsForm reports whether d is the create/edit form.
func (d Dialog) IsForm() bool {
	return d == DialogCreate || d == DialogEdit
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc replaces the id generator used by Create and Seed.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithLogger sets the logger mutations are reported to.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Store is the bookshelf: an ordered book list (most recent first), the
// draft being edited, the focused book and the open dialog.
type Store struct {
	books   []catalog.Book
	draft   catalog.Draft
	focus   string
	dialog  Dialog
	pending *Confirmation

	newID func() string
	log   *zap.Logger
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		books: []catalog.Book{},
		newID: util.NewID,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed appends books in the given order. Books without an ID get one.
// Fails without modifying the store if a title is blank or an ID would be
// duplicated.
func (s *Store) Seed(books []catalog.Book) error {
	seen := make(map[string]bool, len(s.books)+len(books))
	for _, b := range s.books {
		seen[b.ID] = true
	}
	add := make([]catalog.Book, 0, len(books))
	for i, b := range books {
		if err := catalog.DraftFrom(b).Validate(); err != nil {
			return fmt.Errorf("seeding book %d: %w", i+1, err)
		}
		if b.ID == "" {
			b.ID = s.newID()
		}
		if seen[b.ID] {
			return fmt.Errorf("seeding: duplicate book id %q", b.ID)
		}
		seen[b.ID] = true
		add = append(add, b)
	}
	s.books = append(s.books, add...)
	s.log.Debug("seeded books", zap.Int("count", len(add)))
	return nil
}

// Books returns a copy of the collection in display order.
func (s *Store) Books() []catalog.Book {
	out := make([]catalog.Book, len(s.books))
	copy(out, s.books)
	return out
}

// Len returns the number of books.
func (s *Store) Len() int {
	return len(s.books)
}

// Get returns the book with the given ID.
func (s *Store) Get(id string) (catalog.Book, bool) {
	if b := catalog.ByID(s.books, id); b != nil {
		return *b, true
	}
	return catalog.Book{}, false
}

// Dialog returns the open dialog.
func (s *Store) Dialog() Dialog {
	return s.dialog
}

// Focus returns the ID of the book being edited or viewed, or "".
func (s *Store) Focus() string {
	return s.focus
}

// Draft returns the staged form fields.
func (s *Store) Draft() catalog.Draft {
	return s.draft
}

// SetDraft replaces the staged form fields.
func (s *Store) SetDraft(d catalog.Draft) {
	s.draft = d
}

// BeginCreate opens the form with empty fields and no target.
func (s *Store) BeginCreate() {
	s.focus = ""
	s.draft = catalog.Draft{}
	s.dialog = DialogCreate
}

// BeginEdit opens the form targeting b, loaded with its fields.
func (s *Store) BeginEdit(b catalog.Book) {
	s.focus = b.ID
	s.draft = catalog.DraftFrom(b)
	s.dialog = DialogEdit
}

// View opens the read-only dialog for the book with the given ID.
// Returns false and changes nothing if no such book exists.
func (s *Store) View(id string) bool {
	b, ok := s.Get(id)
	if !ok {
		s.log.Debug("view: no such book", zap.String("id", id))
		return false
	}
	s.focus = id
	s.draft = catalog.DraftFrom(b)
	s.dialog = DialogView
	return true
}

// EditFromView switches from the view dialog to the form, targeting the
// viewed book with the fields currently shown.
func (s *Store) EditFromView() bool {
	if s.dialog != DialogView {
		return false
	}
	s.BeginEdit(s.draft.Book(s.focus))
	return true
}

// CloseDialog cancels whatever dialog is open.
func (s *Store) CloseDialog() {
	s.dialog = DialogNone
	s.focus = ""
	s.draft = catalog.Draft{}
}

// Create validates d, prepends a new book built from it and closes the form.
// On a validation failure nothing changes.
func (s *Store) Create(d catalog.Draft) (catalog.Book, error) {
	if err := d.Validate(); err != nil {
		s.log.Debug("create rejected", zap.Error(err))
		return catalog.Book{}, err
	}
	b := d.Book(s.newID())
	s.books = catalog.Prepend(s.books, b)
	s.CloseDialog()
	s.log.Debug("book created", zap.String("id", b.ID), zap.String("title", b.Title))
	return b, nil
}

// Update merges d onto the book with targetID, keeping its position, and
// closes the form. A missing target is a silent no-op (ok is false).
func (s *Store) Update(targetID string, d catalog.Draft) (b catalog.Book, ok bool, err error) {
	if targetID == "" {
		s.log.Debug("update: no target")
		return catalog.Book{}, false, nil
	}
	existing, found := s.Get(targetID)
	if !found {
		s.log.Debug("update: no such book", zap.String("id", targetID))
		return catalog.Book{}, false, nil
	}
	if err := d.Validate(); err != nil {
		s.log.Debug("update rejected", zap.String("id", targetID), zap.Error(err))
		return catalog.Book{}, false, err
	}
	b = d.Apply(existing)
	s.books, _ = catalog.Replace(s.books, b)
	s.CloseDialog()
	s.log.Debug("book updated", zap.String("id", b.ID))
	return b, true, nil
}

// Submit commits the form: Create in DialogCreate, Update of the focused
// book in DialogEdit. With no form open it does nothing.
func (s *Store) Submit() (catalog.Book, bool, error) {
	switch s.dialog {
	case DialogCreate:
		b, err := s.Create(s.draft)
		if err != nil {
			return catalog.Book{}, false, err
		}
		return b, true, nil
	case DialogEdit:
		return s.Update(s.focus, s.draft)
	default:
		return catalog.Book{}, false, nil
	}
}
