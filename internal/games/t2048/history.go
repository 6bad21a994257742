package t2048

import "github.com/vovakirdan/tui-2048/internal/games/t2048/grid"

// History is a bounded stack of previous grids for undo.
// When full, the oldest grid is dropped to make room.
type History struct {
	limit int
	grids []grid.Grid
}

// NewHistory creates a history holding at most limit grids.
// A limit of zero or less disables undo.
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Push records a grid. Grids are immutable values, so no copy is needed.
func (h *History) Push(g grid.Grid) {
	if h.limit == 0 {
		return
	}
	if len(h.grids) == h.limit {
		copy(h.grids, h.grids[1:])
		h.grids = h.grids[:len(h.grids)-1]
	}
	h.grids = append(h.grids, g)
}

// Pop removes and returns the most recent grid.
func (h *History) Pop() (grid.Grid, bool) {
	if len(h.grids) == 0 {
		return grid.Grid{}, false
	}
	last := h.grids[len(h.grids)-1]
	h.grids[len(h.grids)-1] = grid.Grid{}
	h.grids = h.grids[:len(h.grids)-1]
	return last, true
}

// Len returns the number of grids available to undo.
func (h *History) Len() int { return len(h.grids) }

// Limit returns the maximum depth.
func (h *History) Limit() int { return h.limit }

// Clear drops all recorded grids.
func (h *History) Clear() {
	h.grids = nil
}
