package catalog

// ByID returns the first book with the given ID, or nil.
func ByID(books []Book, id string) *Book {
	if i := IndexOf(books, id); i >= 0 {
		return &books[i]
	}
	return nil
}

// IndexOf returns the position of the book with the given ID, or -1.
func IndexOf(books []Book, id string) int {
	for i := range books {
		if books[i].ID == id {
			return i
		}
	}
	return -1
}
