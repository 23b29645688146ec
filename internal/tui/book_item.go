package tui

import (
	"fmt"
	"io"

	"github.com/blackwell-systems/bookshelf/internal/catalog"
	"github.com/blackwell-systems/bookshelf/internal/tui/delegate"
	"github.com/charmbracelet/bubbles/list"
	xansi "github.com/charmbracelet/x/ansi"
)

// BookItem is one row of the shelf list.
type BookItem struct {
	Book catalog.Book
}

// FilterValue implements list.Item. Filtering is disabled; the title is
// returned so the list still has a stable key.
func (b BookItem) FilterValue() string {
	return b.Book.Title
}

func bookItems(books []catalog.Book) []list.Item {
	items := make([]list.Item, len(books))
	for i, b := range books {
		items[i] = BookItem{Book: b}
	}
	return items
}

// newBookDelegate draws two-line rows: title, then "author • year".
func newBookDelegate() delegate.Base {
	return delegate.New(renderBookItem, 2, 1)
}

func renderBookItem(w io.Writer, m list.Model, index int, item list.Item) {
	bookItem, ok := item.(BookItem)
	if !ok {
		return
	}

	width := m.Width()
	if width <= 0 {
		width = 80
	}
	inner := width - 2
	if inner < 8 {
		inner = 8
	}

	title := xansi.Truncate(bookItem.Book.Title, inner, "…")
	meta := xansi.Truncate(bookItem.Book.Meta(), inner, "…")

	var line1, line2 string
	if index == m.Index() {
		line1 = StyleHighlight.Render("› " + title)
		line2 = "  " + StyleMeta.Render(meta)
	} else {
		line1 = "  " + StyleNormal.Render(title)
		line2 = "  " + StyleMeta.Faint(true).Render(meta)
	}

	_, _ = fmt.Fprint(w, line1+"\n"+line2)
}
