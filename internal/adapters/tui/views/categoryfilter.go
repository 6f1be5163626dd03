package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"linkdir/internal/adapters/tui/styles"
	"linkdir/internal/domain"
)

// CategoriesChangedMsg carries the full selection after a toggle
type CategoriesChangedMsg struct {
	Selected []string
}

// CategoryFilter is a row of checkboxes, one per category.
// Checked state is always derived from the selection handed in by the
// parent. A toggle is reported through a command; until the parent calls
// Ack, further toggles are dropped.
type CategoryFilter struct {
	categories []domain.Category
	selected   []string
	cursor     int
	focused    bool
	inFlight   bool
}

// NewCategoryFilter creates a widget for the given categories
func NewCategoryFilter(categories []domain.Category) *CategoryFilter {
	return &CategoryFilter{categories: categories}
}

// SetCategories replaces the category list, keeping the cursor in range
func (f *CategoryFilter) SetCategories(categories []domain.Category) {
	f.categories = categories
	f.cursor = min(f.cursor, max(len(categories)-1, 0))
}

// SetSelected sets the selection the checkboxes reflect
func (f *CategoryFilter) SetSelected(ids []string) {
	f.selected = append([]string(nil), ids...)
}

// Checked reports whether a category is in the current selection
func (f *CategoryFilter) Checked(id string) bool {
	for _, s := range f.selected {
		if s == id {
			return true
		}
	}
	return false
}

// InFlight reports whether a change is waiting for Ack
func (f *CategoryFilter) InFlight() bool {
	return f.inFlight
}

// Ack marks the last reported change as handled
func (f *CategoryFilter) Ack() {
	f.inFlight = false
}

// Toggle flips the category under the cursor. It returns nil while a
// previous change is in flight.
func (f *CategoryFilter) Toggle() tea.Cmd {
	if f.inFlight || len(f.categories) == 0 {
		return nil
	}

	id := f.categories[f.cursor].ID
	next := make([]string, 0, len(f.selected)+1)
	found := false
	for _, s := range f.selected {
		if s == id {
			found = true
			continue
		}
		next = append(next, s)
	}
	if !found {
		next = append(next, id)
	}

	f.inFlight = true
	return func() tea.Msg {
		return CategoriesChangedMsg{Selected: next}
	}
}

// Cursor returns the index of the highlighted category
func (f *CategoryFilter) Cursor() int { return f.cursor }

// Left moves the cursor to the previous category
func (f *CategoryFilter) Left() {
	if f.cursor > 0 {
		f.cursor--
	}
}

// Right moves the cursor to the next category
func (f *CategoryFilter) Right() {
	if f.cursor < len(f.categories)-1 {
		f.cursor++
	}
}

// Focus and Blur control whether the cursor is drawn
func (f *CategoryFilter) Focus() { f.focused = true }

func (f *CategoryFilter) Blur() { f.focused = false }

// View renders the checkboxes, wrapping to width
func (f *CategoryFilter) View(width int) string {
	if len(f.categories) == 0 {
		return styles.MutedText.Render("No categories")
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	for i, c := range f.categories {
		box := "[ ] "
		style := styles.Checkbox
		if f.Checked(c.ID) {
			box = "[x] "
			style = styles.CheckboxChecked
		}
		if f.inFlight {
			style = styles.CheckboxPending
		}

		item := style.Render(box + c.Name)
		if f.focused && i == f.cursor {
			item = styles.CheckboxCursor.Inherit(style).Render(box + c.Name)
		}

		w := lipgloss.Width(item)
		if lineWidth > 0 && lineWidth+2+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteString("  ")
			lineWidth += 2
		}
		line.WriteString(item)
		lineWidth += w
	}
	lines = append(lines, line.String())

	return strings.Join(lines, "\n")
}
