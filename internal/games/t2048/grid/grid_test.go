package grid_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/grid"
)

// board parses letter notation: "o" is empty, "A" is rank 1, "B" rank 2, ...
func board(score int, cells string) grid.Grid {
	fields := strings.FieldsFunc(cells, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t'
	})
	ranks := make([]int, len(fields))
	for i, f := range fields {
		if f != "o" {
			ranks[i] = int(f[0]-'A') + 1
		}
	}
	return grid.FromRanks(4, ranks, score)
}

func assertMove(t *testing.T, d grid.Direction, before, after grid.Grid) {
	t.Helper()
	got, ok := before.Move(d)
	if !ok {
		t.Fatalf("Move(%v) reported no change", d)
	}
	if !got.Equal(after) {
		t.Errorf("Move(%v):\n got ranks %v score %d\nwant ranks %v score %d",
			d, got.Ranks(), got.Score(), after.Ranks(), after.Score())
	}
}

func TestNewGrid(t *testing.T) {
	g := grid.New(4)

	if g.Len() != 16 {
		t.Errorf("Len() = %d, want 16", g.Len())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, want 0", g.Score())
	}
	if n := len(g.EmptyCellPositions()); n != 16 {
		t.Errorf("EmptyCellPositions() count = %d, want 16", n)
	}
}

func TestNewGridInvalidSize(t *testing.T) {
	g := grid.New(0)
	if g.Size() != grid.DefaultSize {
		t.Errorf("New(0).Size() = %d, want %d", g.Size(), grid.DefaultSize)
	}
}

func TestSimpleSlide(t *testing.T) {
	assertMove(t, grid.Right,
		board(0, `o,o,o,o,
		          A,B,C,o,
		          C,A,o,B,
		          A,o,o,o`),
		board(0, `o,o,o,o,
		          o,A,B,C,
		          o,C,A,B,
		          o,o,o,A`),
	)
}

func TestSimpleMerge(t *testing.T) {
	assertMove(t, grid.Right,
		board(0, `o,o,o,o,
		          A,B,C,C,
		          C,A,A,B,
		          A,o,o,A`),
		board(16+4+4, `o,o,o,o,
		               o,A,B,D,
		               o,C,B,B,
		               o,o,o,B`),
	)
}

func TestTrickyMergeRight(t *testing.T) {
	assertMove(t, grid.Right,
		board(0, `A,A,B,B,
		          A,B,A,B,
		          A,A,A,A,
		          A,B,B,A`),
		board(4+8+4+4+8, `o,o,B,C,
		                  A,B,A,B,
		                  o,o,B,B,
		                  o,A,C,A`),
	)
}

func TestTrickyMergeLeft(t *testing.T) {
	assertMove(t, grid.Left,
		board(0, `A,A,B,B,
		          A,B,A,B,
		          A,A,A,A,
		          A,B,B,A`),
		board(4+8+4+4+8, `B,C,o,o,
		                  A,B,A,B,
		                  B,B,o,o,
		                  A,C,A,o`),
	)
}

func TestUpAndDown(t *testing.T) {
	start := board(0, `A,A,B,B,
	                   A,B,A,B,
	                   A,A,A,A,
	                   A,B,B,A`)

	assertMove(t, grid.Up, start,
		board(4+4+4+8+4, `B,A,B,C,
		                  B,B,B,B,
		                  o,A,B,o,
		                  o,B,o,o`),
	)

	assertMove(t, grid.Down, start,
		board(4+4+4+8+4, `o,A,o,o,
		                  o,B,B,o,
		                  B,A,B,C,
		                  B,B,B,B`),
	)
}

func TestMergeScoreAddsToExistingScore(t *testing.T) {
	assertMove(t, grid.Right,
		board(100, `A,B,C,C,
		            o,o,o,o,
		            o,o,o,o,
		            o,o,o,o`),
		board(116, `o,A,B,D,
		            o,o,o,o,
		            o,o,o,o,
		            o,o,o,o`),
	)
}

func TestCanMove(t *testing.T) {
	tests := []struct {
		name  string
		g     grid.Grid
		moves map[grid.Direction]bool
	}{
		{
			name: "single tile top-left",
			g: board(0, `A,o,o,o,
			             o,o,o,o,
			             o,o,o,o,
			             o,o,o,o`),
			moves: map[grid.Direction]bool{
				grid.Up: false, grid.Down: true, grid.Left: false, grid.Right: true,
			},
		},
		{
			name: "pair top-left",
			g: board(0, `A,A,o,o,
			             o,o,o,o,
			             o,o,o,o,
			             o,o,o,o`),
			moves: map[grid.Direction]bool{
				grid.Up: false, grid.Down: true, grid.Left: true, grid.Right: true,
			},
		},
		{
			name: "full with horizontal pair",
			g: board(0, `A,A,B,C,
			             D,E,F,G,
			             H,I,J,K,
			             J,K,I,H`),
			moves: map[grid.Direction]bool{
				grid.Up: false, grid.Down: false, grid.Left: true, grid.Right: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for d, want := range tt.moves {
				if got := tt.g.CanMove(d); got != want {
					t.Errorf("CanMove(%v) = %v, want %v", d, got, want)
				}
			}
		})
	}
}

func TestNoOpMoveLeavesGridUnchanged(t *testing.T) {
	g := board(12, `A,o,o,o,
	                B,o,o,o,
	                o,o,o,o,
	                o,o,o,o`)
	before := g.Ranks()

	next, ok := g.Move(grid.Left)
	if ok {
		t.Fatal("Move(Left) should be a no-op")
	}
	if !next.Equal(g) {
		t.Error("no-op Move should return the original grid")
	}
	for i, r := range g.Ranks() {
		if r != before[i] {
			t.Fatalf("receiver changed at %d", i)
		}
	}
}

func TestMoveDoesNotMutateReceiver(t *testing.T) {
	g := board(0, `A,A,B,B,
	               o,o,o,o,
	               o,o,o,o,
	               o,o,o,o`)
	before := g.Ranks()

	if _, ok := g.Move(grid.Left); !ok {
		t.Fatal("Move(Left) should succeed")
	}

	after := g.Ranks()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("receiver mutated: before %v after %v", before, after)
		}
	}
	if g.Score() != 0 {
		t.Errorf("receiver score changed to %d", g.Score())
	}
}

func TestNoChainMerge(t *testing.T) {
	// B,A,A,o moved left: the two A's form a B that must not join the first B.
	assertMove(t, grid.Left,
		board(0, `B,A,A,o,
		          o,o,o,o,
		          o,o,o,o,
		          o,o,o,o`),
		board(4, `B,B,o,o,
		          o,o,o,o,
		          o,o,o,o,
		          o,o,o,o`),
	)
}

func TestHasPossibleMoves(t *testing.T) {
	tests := []struct {
		name     string
		g        grid.Grid
		expected bool
	}{
		{
			name: "empty cell",
			g: board(0, `A,B,C,D,
			             E,F,G,H,
			             I,J,K,J,
			             H,I,J,o`),
			expected: true,
		},
		{
			name: "full with merge",
			g: board(0, `A,B,C,D,
			             E,F,G,H,
			             I,J,K,J,
			             H,I,A,A`),
			expected: true,
		},
		{
			name: "terminal",
			g: board(0, `A,B,C,D,
			             E,F,G,H,
			             I,J,K,J,
			             H,I,B,A`),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.HasPossibleMoves(); got != tt.expected {
				t.Errorf("HasPossibleMoves() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTerminalDetectionMatchesDirections(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 200 {
		ranks := make([]int, 16)
		for i := range ranks {
			ranks[i] = rng.Intn(5)
		}
		g := grid.FromRanks(4, ranks, 0)

		anyDir := false
		for _, d := range grid.Directions {
			if g.CanMove(d) {
				anyDir = true
			}
		}
		full := len(g.EmptyCellPositions()) == 0
		want := !full || anyDir

		if got := g.HasPossibleMoves(); got != want {
			t.Fatalf("HasPossibleMoves() = %v, want %v for %v", got, want, ranks)
		}
	}
}

func TestEmptyCellPositions(t *testing.T) {
	g := board(0, `A,o,B,o,
	               o,C,o,D,
	               E,o,F,o,
	               o,G,o,H`)

	expected := []int{1, 3, 4, 6, 9, 11, 12, 14}
	got := g.EmptyCellPositions()
	if len(got) != len(expected) {
		t.Fatalf("EmptyCellPositions() = %v, want %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("EmptyCellPositions()[%d] = %d, want %d", i, got[i], expected[i])
		}
	}
}

// scriptedRand replays fixed values so spawn placement is predictable.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func TestSpawnRandomTileScripted(t *testing.T) {
	g := board(0, `A,o,o,o,
	               o,o,o,o,
	               o,o,o,o,
	               o,o,o,B`)

	r := &scriptedRand{ints: []int{2, 0}, floats: []float64{0.5, 0.95}}

	g1, ok := g.SpawnRandomTile(r)
	if !ok {
		t.Fatal("SpawnRandomTile should succeed")
	}
	// Empty cells start at 1,2,3 so the third one is index 3.
	if tile := g1.Tile(3); tile != grid.Occupied(1) {
		t.Errorf("spawned tile at 3 = rank %d, want rank 1", tile.Rank())
	}

	g2, ok := g1.SpawnRandomTile(r)
	if !ok {
		t.Fatal("SpawnRandomTile should succeed")
	}
	if tile := g2.Tile(1); tile != grid.Occupied(2) {
		t.Errorf("spawned tile at 1 = rank %d, want rank 2", tile.Rank())
	}

	if g.OccupiedCount() != 2 {
		t.Error("receiver should not change after spawn")
	}
}

func TestSpawnOnEmptyGrid(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g, ok := grid.New(4).SpawnRandomTile(rng)
		if !ok {
			t.Fatalf("seed %d: spawn on empty grid failed", seed)
		}
		if n := g.OccupiedCount(); n != 1 {
			t.Fatalf("seed %d: spawned %d tiles, want 1", seed, n)
		}
		if r := g.MaxRank(); r != 1 && r != 2 {
			t.Fatalf("seed %d: spawned rank %d, want 1 or 2", seed, r)
		}
	}
}

func TestSpawnUntilFull(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := grid.New(4)

	for expected := 16; expected >= 0; expected-- {
		if n := len(g.EmptyCellPositions()); n != expected {
			t.Fatalf("empty cells = %d, want %d", n, expected)
		}
		if g.Score() != 0 {
			t.Fatalf("spawning changed score to %d", g.Score())
		}

		next, ok := g.SpawnRandomTile(rng)
		if expected > 0 {
			if !ok {
				t.Fatalf("spawn failed with %d empty cells", expected)
			}
			g = next
			continue
		}
		if ok {
			t.Fatal("spawn on a full grid should fail")
		}
		if !next.Equal(g) {
			t.Error("failed spawn should return the grid unchanged")
		}
	}
}

func TestSpawnProbabilitySplit(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	twos := 0
	const runs = 10000
	for range runs {
		g, _ := grid.New(4).SpawnRandomTile(rng)
		if g.MaxRank() == 2 {
			twos++
		}
	}
	ratio := float64(twos) / runs
	if ratio < 0.08 || ratio > 0.12 {
		t.Errorf("rank 2 ratio = %.3f, want about 0.10", ratio)
	}
}

// referenceSlideRow is the row-array slide used as an oracle: slide left,
// merging each pair at most once.
func referenceSlideRow(row []int) (out []int, score int) {
	out = make([]int, len(row))
	merged := make([]bool, len(row))
	w := 0
	for _, v := range row {
		if v == 0 {
			continue
		}
		if w > 0 && out[w-1] == v && !merged[w-1] {
			out[w-1]++
			merged[w-1] = true
			score += 1 << uint(out[w-1])
			continue
		}
		out[w] = v
		w++
	}
	return out, score
}

// referenceMove applies referenceSlideRow along every line of the board.
func referenceMove(ranks []int, size int, d grid.Direction) ([]int, int) {
	out := make([]int, len(ranks))
	total := 0
	for line := range size {
		idx := make([]int, size)
		for k := range size {
			switch d {
			case grid.Left:
				idx[k] = line*size + k
			case grid.Right:
				idx[k] = line*size + (size - 1 - k)
			case grid.Up:
				idx[k] = k*size + line
			case grid.Down:
				idx[k] = (size-1-k)*size + line
			}
		}
		row := make([]int, size)
		for k, i := range idx {
			row[k] = ranks[i]
		}
		slid, score := referenceSlideRow(row)
		total += score
		for k, i := range idx {
			out[i] = slid[k]
		}
	}
	return out, total
}

func TestMoveMatchesReferenceDuringPlay(t *testing.T) {
	rng := rand.New(rand.NewSource(2048))

	for game := 0; game < 20; game++ {
		g, _ := grid.New(4).SpawnRandomTile(rng)

		for step := 0; step < 500 && g.HasPossibleMoves(); step++ {
			d := grid.Directions[rng.Intn(len(grid.Directions))]
			before := g.Ranks()
			expected, gained := referenceMove(before, 4, d)

			next, ok := g.Move(d)

			changed := false
			for i := range before {
				if before[i] != expected[i] {
					changed = true
				}
			}
			if ok != changed {
				t.Fatalf("Move(%v) ok=%v, reference changed=%v for %v", d, ok, changed, before)
			}
			if !ok {
				continue
			}

			got := next.Ranks()
			for i := range got {
				if got[i] != expected[i] {
					t.Fatalf("Move(%v) on %v = %v, want %v", d, before, got, expected)
				}
			}
			if next.Score()-g.Score() != gained {
				t.Fatalf("Move(%v) score delta = %d, want %d", d, next.Score()-g.Score(), gained)
			}
			if next.OccupiedCount() > g.OccupiedCount() {
				t.Fatalf("Move(%v) increased tile count", d)
			}
			if next.Score() < g.Score() {
				t.Fatalf("Move(%v) decreased score", d)
			}

			g, ok = next.SpawnRandomTile(rng)
			if !ok {
				t.Fatal("a real move must leave an empty cell")
			}
		}
	}
}
