package grid

// tileKind distinguishes the three tile states.
type tileKind uint8

const (
	kindEmpty tileKind = iota
	kindOccupied
	kindPending // merged during the current move, settled by finalize
)

// Tile is the content of a single grid cell.
// The zero value is an empty tile.
type Tile struct {
	kind tileKind
	rank int
}

// Empty returns an empty tile.
func Empty() Tile {
	return Tile{}
}

// Occupied returns a settled tile with the given rank (value 2^rank).
// Ranks below 1 produce an empty tile.
func Occupied(rank int) Tile {
	if rank < 1 {
		return Tile{}
	}
	return Tile{kind: kindOccupied, rank: rank}
}

// pendingMerge returns the transient tile produced by a merge.
func pendingMerge(rank int) Tile {
	return Tile{kind: kindPending, rank: rank}
}

// IsEmpty returns true if the cell holds no tile.
func (t Tile) IsEmpty() bool {
	return t.kind == kindEmpty
}

// Rank returns the tile's exponent, or 0 for an empty tile.
func (t Tile) Rank() int {
	if t.kind == kindEmpty {
		return 0
	}
	return t.rank
}

// Value returns the numeric face value 2^rank, or 0 for an empty tile.
func (t Tile) Value() int {
	if t.kind == kindEmpty {
		return 0
	}
	return pow2(t.rank)
}

// CanMergeWith returns true only when both tiles are settled and share a rank.
// A tile that already merged this move is pending and never matches.
func (t Tile) CanMergeWith(other Tile) bool {
	return t.kind == kindOccupied && other.kind == kindOccupied && t.rank == other.rank
}

// next returns the merge result for a settled tile; other states are unchanged.
func (t Tile) next() Tile {
	if t.kind == kindOccupied {
		return pendingMerge(t.rank + 1)
	}
	return t
}

// finalize settles a pending tile; other states are unchanged.
func (t Tile) finalize() Tile {
	if t.kind == kindPending {
		return Occupied(t.rank)
	}
	return t
}

// mergeScore returns the points a pending tile earns when settled.
func (t Tile) mergeScore() int {
	if t.kind == kindPending {
		return pow2(t.rank)
	}
	return 0
}

// pow2 returns 2^n for the ranks a board can actually hold.
func pow2(n int) int {
	if n <= 0 {
		return 1
	}
	if n >= 62 {
		n = 62
	}
	return 1 << uint(n)
}
