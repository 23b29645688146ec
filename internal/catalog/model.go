package catalog

import "strings"

// Book is one entry on the shelf.
type Book struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Author      string `yaml:"author,omitempty"`
	Year        string `yaml:"year,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Draft holds form input staged before it is committed as a Book.
// A draft never carries an ID; the store tracks the target separately.
type Draft struct {
	Title       string
	Author      string
	Year        string
	Description string
}

// DraftFrom projects a book's editable fields into a draft.
func DraftFrom(b Book) Draft {
	return Draft{
		Title:       b.Title,
		Author:      b.Author,
		Year:        b.Year,
		Description: b.Description,
	}
}

// Validate reports a ValidationError when the trimmed title is empty.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: "title", Message: "Please enter a book title"}
	}
	return nil
}

// Apply merges the draft onto b. The ID is never touched.
func (d Draft) Apply(b Book) Book {
	b.Title = d.Title
	b.Author = d.Author
	b.Year = d.Year
	b.Description = d.Description
	return b
}

// Book builds a new book with the given id from the draft.
func (d Draft) Book(id string) Book {
	return d.Apply(Book{ID: id})
}

// IsZero reports whether every field is empty.
func (d Draft) IsZero() bool {
	return d == Draft{}
}

// Meta returns the "author • year" line shown under a title.
func (b Book) Meta() string {
	return b.Author + " • " + b.Year
}
