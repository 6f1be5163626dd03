package views

// Window tracks the cursor and scroll offset over a grid of cards that
// grows at the end. Offsets are in card rows.
type Window struct {
	cols   int
	rows   int // card rows that fit in the viewport
	offset int // first visible card row
	cursor int // absolute card index
	total  int
}

// NewWindow creates a one-column, one-row window
func NewWindow() *Window {
	return &Window{cols: 1, rows: 1}
}

// SetLayout updates the grid shape, keeping the cursor in view
func (w *Window) SetLayout(cols, rows int) {
	w.cols = max(cols, 1)
	w.rows = max(rows, 1)
	w.clampOffset()
	w.ensureCursorVisible()
}

// SetTotal sets the number of cards. Growing keeps the cursor where it is.
func (w *Window) SetTotal(total int) {
	w.total = max(total, 0)
	if w.cursor >= w.total {
		w.cursor = max(w.total-1, 0)
	}
	w.clampOffset()
	w.ensureCursorVisible()
}

// Reset moves to the top
func (w *Window) Reset(total int) {
	w.cursor = 0
	w.offset = 0
	w.SetTotal(total)
}

// Cols returns the number of grid columns
func (w *Window) Cols() int { return w.cols }

// Cursor returns the selected card index
func (w *Window) Cursor() int { return w.cursor }

// Offset returns the first visible card row
func (w *Window) Offset() int { return w.offset }

// TotalRows returns the number of card rows
func (w *Window) TotalRows() int {
	return (w.total + w.cols - 1) / w.cols
}

// VisibleRange returns the card indices rendered in the viewport
func (w *Window) VisibleRange() (start, end int) {
	start = min(w.offset*w.cols, w.total)
	end = min((w.offset+w.rows)*w.cols, w.total)
	return
}

// Up moves the cursor one row up
func (w *Window) Up() bool {
	return w.move(-w.cols)
}

// Down moves the cursor one row down, landing on the last card when the
// row below is shorter
func (w *Window) Down() bool {
	if w.cursor/w.cols >= w.TotalRows()-1 {
		return false
	}
	return w.moveTo(min(w.cursor+w.cols, w.total-1))
}

// Left moves the cursor one card back
func (w *Window) Left() bool {
	return w.move(-1)
}

// Right moves the cursor one card forward
func (w *Window) Right() bool {
	return w.move(1)
}

// PageDown moves the cursor a viewport down
func (w *Window) PageDown() bool {
	return w.moveTo(min(w.cursor+w.rows*w.cols, w.total-1))
}

// PageUp moves the cursor a viewport up
func (w *Window) PageUp() bool {
	return w.moveTo(max(w.cursor-w.rows*w.cols, 0))
}

// ScrollBy moves the viewport by delta rows and pulls the cursor along
func (w *Window) ScrollBy(delta int) bool {
	before := w.offset
	w.offset += delta
	w.clampOffset()
	if w.offset == before {
		return false
	}
	row := w.cursor / w.cols
	switch {
	case row < w.offset:
		w.cursor = min(w.offset*w.cols+w.cursor%w.cols, w.total-1)
	case row >= w.offset+w.rows:
		w.cursor = min((w.offset+w.rows-1)*w.cols+w.cursor%w.cols, w.total-1)
	}
	return true
}

// SentinelVisible reports whether the line after the last card row lies
// within the viewport extended by margin lines. rowHeight and viewLines
// are in terminal lines.
func (w *Window) SentinelVisible(rowHeight, viewLines, margin int) bool {
	top := (w.TotalRows() - w.offset) * rowHeight
	return top < viewLines+margin
}

func (w *Window) move(delta int) bool {
	return w.moveTo(w.cursor + delta)
}

func (w *Window) moveTo(pos int) bool {
	if pos < 0 || pos >= w.total || pos == w.cursor {
		return false
	}
	w.cursor = pos
	w.ensureCursorVisible()
	return true
}

// clampOffset stops scrolling once the last row reaches the bottom of the viewport
func (w *Window) clampOffset() {
	w.offset = min(w.offset, max(w.TotalRows()-w.rows, 0))
	w.offset = max(w.offset, 0)
}

func (w *Window) ensureCursorVisible() {
	row := w.cursor / w.cols
	if row < w.offset {
		w.offset = row
	} else if row >= w.offset+w.rows {
		w.offset = row - w.rows + 1
	}
}
