package store

import (
	"github.com/blackwell-systems/bookshelf/internal/catalog"
	"go.uber.org/zap"
)

// Confirmation is a pending request to remove one book. Nothing is removed
// until Confirm is called.
type Confirmation struct {
	store *Store
	Book  catalog.Book
}

// RequestRemove starts the removal of the book with the given ID and returns
// the prompt to resolve. It replaces any earlier pending request. Returns nil
// if no such book exists.
func (s *Store) RequestRemove(id string) *Confirmation {
	b, ok := s.Get(id)
	if !ok {
		s.log.Debug("remove: no such book", zap.String("id", id))
		return nil
	}
	s.pending = &Confirmation{store: s, Book: b}
	return s.pending
}

// PendingRemoval returns the unresolved removal request, or nil.
func (s *Store) PendingRemoval() *Confirmation {
	return s.pending
}

// Confirm removes the book. Returns false if the request was already
// resolved, superseded, or the book is gone.
func (c *Confirmation) Confirm() bool {
	s := c.store
	if s.pending != c {
		return false
	}
	s.pending = nil
	var removed bool
	s.books, removed = catalog.Remove(s.books, c.Book.ID)
	if removed {
		s.log.Debug("book removed", zap.String("id", c.Book.ID))
		if s.focus == c.Book.ID {
			s.CloseDialog()
		}
	}
	return removed
}

// Cancel drops the request without touching the collection.
func (c *Confirmation) Cancel() {
	if c.store.pending == c {
		c.store.pending = nil
	}
}
