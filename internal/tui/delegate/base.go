package delegate

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders a list item.
type RenderFunc func(w io.Writer, m list.Model, index int, item list.Item)

// Base is a list.ItemDelegate whose rows are drawn by a RenderFunc.
type Base struct {
	height   int
	spacing  int
	renderFn RenderFunc
}

// New creates a delegate for rows that are height lines tall, separated by
// spacing blank lines.
func New(renderFn RenderFunc, height, spacing int) Base {
	if height < 1 {
		height = 1
	}
	if spacing < 0 {
		spacing = 0
	}
	return Base{
		height:   height,
		spacing:  spacing,
		renderFn: renderFn,
	}
}

// Height implements list.ItemDelegate
func (d Base) Height() int {
	return d.height
}

// Spacing implements list.ItemDelegate
func (d Base) Spacing() int {
	return d.spacing
}

// Update implements list.ItemDelegate
func (d Base) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate
func (d Base) Render(w io.Writer, m list.Model, index int, item list.Item) {
	if d.renderFn != nil {
		d.renderFn(w, m, index, item)
	}
}
