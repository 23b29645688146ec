package catalog

// Prepend returns a new slice with b as the first element.
func Prepend(books []Book, b Book) []Book {
	out := make([]Book, 0, len(books)+1)
	out = append(out, b)
	return append(out, books...)
}

// Replace swaps in b for the book with the same ID, keeping its position.
// Returns the slice and whether a book was replaced.
func Replace(books []Book, b Book) ([]Book, bool) {
	i := IndexOf(books, b.ID)
	if i < 0 {
		return books, false
	}
	books[i] = b
	return books, true
}

// Remove removes a book by ID. Returns the updated slice and whether a book
// was actually removed.
func Remove(books []Book, id string) ([]Book, bool) {
	for i, b := range books {
		if b.ID == id {
			return append(books[:i], books[i+1:]...), true
		}
	}
	return books, false
}
