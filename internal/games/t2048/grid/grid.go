package grid

// DefaultSize is the board dimension used by the game.
const DefaultSize = 4

// DefaultRankOneProb is the chance that a spawned tile is rank 1 (a "2")
// rather than rank 2 (a "4").
const DefaultRankOneProb = 0.9

// Rand is the random source consumed by spawning.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Grid is an N×N board of tiles stored in row-major order, plus the score.
// A Grid is a value: no method modifies its receiver, and tile storage is
// never shared between two Grids.
type Grid struct {
	size  int
	tiles []Tile
	score int
}

// New returns an empty grid with a zero score.
// Sizes below 1 fall back to DefaultSize.
func New(size int) Grid {
	if size < 1 {
		size = DefaultSize
	}
	return Grid{
		size:  size,
		tiles: make([]Tile, size*size),
	}
}

// FromRanks builds a grid from row-major ranks, where 0 means empty.
// Missing trailing cells are empty; extra values are ignored.
func FromRanks(size int, ranks []int, score int) Grid {
	g := New(size)
	for i := 0; i < len(g.tiles) && i < len(ranks); i++ {
		g.tiles[i] = Occupied(ranks[i])
	}
	if score > 0 {
		g.score = score
	}
	return g
}

// Size returns the board dimension N.
func (g Grid) Size() int {
	return g.size
}

// Len returns the number of cells (N×N).
func (g Grid) Len() int {
	return len(g.tiles)
}

// Score returns the accumulated merge score.
func (g Grid) Score() int {
	return g.score
}

// At returns the tile at the given row and column.
// Out-of-bounds coordinates return an empty tile.
func (g Grid) At(row, col int) Tile {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return Empty()
	}
	return g.tiles[row*g.size+col]
}

// Tile returns the tile at a row-major index.
// Out-of-range indices return an empty tile.
func (g Grid) Tile(i int) Tile {
	if i < 0 || i >= len(g.tiles) {
		return Empty()
	}
	return g.tiles[i]
}

// Tiles returns a copy of all tiles in row-major order.
func (g Grid) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Ranks returns the rank of every cell in row-major order, 0 for empty.
func (g Grid) Ranks() []int {
	out := make([]int, len(g.tiles))
	for i, t := range g.tiles {
		out[i] = t.Rank()
	}
	return out
}

// Equal reports whether two grids have the same size, tiles and score.
func (g Grid) Equal(other Grid) bool {
	if g.size != other.size || g.score != other.score || len(g.tiles) != len(other.tiles) {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// MaxRank returns the highest rank on the board, 0 if the board is empty.
func (g Grid) MaxRank() int {
	maxRank := 0
	for _, t := range g.tiles {
		if r := t.Rank(); r > maxRank {
			maxRank = r
		}
	}
	return maxRank
}

// OccupiedCount returns the number of non-empty cells.
func (g Grid) OccupiedCount() int {
	n := 0
	for _, t := range g.tiles {
		if !t.IsEmpty() {
			n++
		}
	}
	return n
}

// EmptyCellPositions returns the indices of all empty cells in row-major order.
func (g Grid) EmptyCellPositions() []int {
	var cells []int
	for i, t := range g.tiles {
		if t.IsEmpty() {
			cells = append(cells, i)
		}
	}
	return cells
}

// Move slides and merges every tile toward dir.
// Returns the resulting grid and true, or the unchanged grid and false when
// no tile could move. The receiver is never modified.
func (g Grid) Move(dir Direction) (Grid, bool) {
	next := g.clone()
	moved := false

	n := len(next.tiles)
	if dir.towardStart() {
		for i := 0; i < n; i++ {
			if next.moveTile(dir, i) {
				moved = true
			}
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			if next.moveTile(dir, i) {
				moved = true
			}
		}
	}

	if !moved {
		return g, false
	}

	next.finalize()
	return next, true
}

// CanMove returns true if Move(dir) would change the grid.
func (g Grid) CanMove(dir Direction) bool {
	_, ok := g.Move(dir)
	return ok
}

// HasPossibleMoves returns true while the game is not over: some cell is empty
// or some direction moves.
func (g Grid) HasPossibleMoves() bool {
	for _, t := range g.tiles {
		if t.IsEmpty() {
			return true
		}
	}
	for _, d := range Directions {
		if g.CanMove(d) {
			return true
		}
	}
	return false
}

// SpawnRandomTile places a new tile on a uniformly chosen empty cell using the
// default 90/10 split between rank 1 and rank 2.
// Returns false and the unchanged grid when the board is full.
func (g Grid) SpawnRandomTile(r Rand) (Grid, bool) {
	return g.SpawnRandomTileWithProb(r, DefaultRankOneProb)
}

// SpawnRandomTileWithProb is SpawnRandomTile with an explicit probability of
// spawning rank 1. Exactly one Intn and one Float64 are drawn per spawn.
func (g Grid) SpawnRandomTileWithProb(r Rand, rankOneProb float64) (Grid, bool) {
	empty := g.EmptyCellPositions()
	if len(empty) == 0 {
		return g, false
	}

	pos := empty[r.Intn(len(empty))]

	rank := 1
	if r.Float64() >= rankOneProb {
		rank = 2
	}

	next := g.clone()
	next.tiles[pos] = Occupied(rank)
	return next, true
}

// clone returns a copy with its own tile storage.
func (g Grid) clone() Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return Grid{size: g.size, tiles: tiles, score: g.score}
}

// moveTile slides the tile at index i as far as it can toward dir, merging
// into an equal settled tile if one blocks it. Returns true if the tile moved.
// Must only be called on a grid owned by the current move.
func (g *Grid) moveTile(dir Direction, i int) bool {
	t := g.tiles[i]
	if t.IsEmpty() {
		return false
	}

	pos := i
	// At most size-1 steps fit in a row or column.
	for step := 0; step < g.size; step++ {
		n, ok := g.neighbor(dir, pos)
		if !ok {
			break
		}
		other := g.tiles[n]
		if other.IsEmpty() {
			pos = n
			continue
		}
		if t.CanMergeWith(other) {
			pos = n
			t = t.next()
		}
		break
	}

	if pos == i {
		return false
	}

	g.tiles[i] = Empty()
	g.tiles[pos] = t
	return true
}

// finalize settles pending merges and adds their value to the score.
func (g *Grid) finalize() {
	gained := 0
	for i, t := range g.tiles {
		gained += t.mergeScore()
		g.tiles[i] = t.finalize()
	}
	g.score += gained
}

// neighbor returns the index one step from i toward dir.
// Returns false at the board edge; steps never wrap across rows.
func (g Grid) neighbor(dir Direction, i int) (int, bool) {
	row, col := i/g.size, i%g.size
	dRow, dCol := dir.Delta()
	row += dRow
	col += dCol
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return 0, false
	}
	return row*g.size + col, true
}
