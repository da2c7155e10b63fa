// Package views provides the individual views for the unified TUI.
package views

import "github.com/f3rmion/unichar/internal/ucd"

// AppendCharMsg asks the inspector to append a character picked in the grid.
type AppendCharMsg struct {
	Char rune
}

// CategorySelectedMsg asks the explorer to show a single category.
type CategorySelectedMsg struct {
	Category ucd.Category
}

// FileSelectedMsg is sent when a dataset file is picked.
type FileSelectedMsg struct {
	Path string
}
