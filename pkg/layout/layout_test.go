package layout

import (
	"strings"
	"testing"

	"github.com/tilework/wordgrid/pkg/board"
	"github.com/tilework/wordgrid/pkg/errors"
)

func mustEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	eng, err := New(opts)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return eng
}

func gridString(res *Result) string {
	return strings.Join(res.Board.Rows(), "\n")
}

func TestNewDefaults(t *testing.T) {
	eng := mustEngine(t, Options{})
	res := eng.Layout(nil)
	if res.Board.Size() != board.DefaultSize {
		t.Errorf("default board size = %d, want %d", res.Board.Size(), board.DefaultSize)
	}
	if res.Board.Empty() != board.DefaultEmpty {
		t.Errorf("default empty marker = %q, want %q", res.Board.Empty(), board.DefaultEmpty)
	}
}

func TestNewInvalidSize(t *testing.T) {
	if _, err := New(Options{Size: -5}); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("New(Size: -5) error = %v, want INVALID_CONFIG", err)
	}
}

func TestSeedCenteredHorizontal(t *testing.T) {
	eng := mustEngine(t, Options{Size: 5, Empty: '.'})
	res := eng.Layout([]string{"CAT"})

	if len(res.Placed) != 1 {
		t.Fatalf("Placed = %v, want one word", res.Placed)
	}
	pw := res.Placed[0]
	want := board.PlacedWord{Word: "CAT", Row: 2, Col: 1, Dir: board.Horizontal}
	if pw != want {
		t.Errorf("Placed[0] = %+v, want %+v", pw, want)
	}
	if got := res.Board.Rows()[2]; got != ".CAT." {
		t.Errorf("row 2 = %q, want \".CAT.\"", got)
	}
}

func TestSeedFallbackOrder(t *testing.T) {
	// A word exactly as long as the board still fits horizontally centered
	// at column 0.
	eng := mustEngine(t, Options{Size: 5, Empty: '.'})
	res := eng.Layout([]string{"GRIDS"})

	want := board.PlacedWord{Word: "GRIDS", Row: 2, Col: 0, Dir: board.Horizontal}
	if len(res.Placed) != 1 || res.Placed[0] != want {
		t.Fatalf("Placed = %+v, want [%+v]", res.Placed, want)
	}
}

func TestScenarioCatCar(t *testing.T) {
	eng := mustEngine(t, Options{Size: 5, Empty: '.'})
	res := eng.Layout([]string{"CAT", "CAR"})

	if len(res.Placed) != 2 {
		t.Fatalf("Placed = %+v, want two words", res.Placed)
	}
	if len(res.Unplaced) != 0 {
		t.Fatalf("Unplaced = %v, want none", res.Unplaced)
	}

	// CAT is seeded centered; CAR must cross at the shared C: horizontal
	// reuse of the C anchor conflicts at T/R, so the search commits CAR
	// vertically below it.
	want := strings.Join([]string{
		".....",
		".....",
		".CAT.",
		".A...",
		".R...",
	}, "\n")
	if got := gridString(res); got != want {
		t.Errorf("grid:\n%s\nwant:\n%s", got, want)
	}

	checkInvariants(t, res)
}

func TestScenarioOversizedWord(t *testing.T) {
	eng := mustEngine(t, Options{Size: 5, Empty: '.'})
	res := eng.Layout([]string{"AAAAAAAAAAAAAAAAAAAA"})

	if len(res.Placed) != 0 {
		t.Errorf("Placed = %+v, want none", res.Placed)
	}
	if len(res.Unplaced) != 1 || res.Unplaced[0] != "AAAAAAAAAAAAAAAAAAAA" {
		t.Errorf("Unplaced = %v", res.Unplaced)
	}
	for _, row := range res.Board.Rows() {
		if row != "....." {
			t.Fatalf("board not untouched: %q", row)
		}
	}
}

func TestScenarioEmptyStringDropped(t *testing.T) {
	eng := mustEngine(t, Options{Size: 10, Empty: '.'})
	res := eng.Layout([]string{"", "HELLO"})

	if len(res.Placed) != 1 || res.Placed[0].Word != "HELLO" {
		t.Fatalf("Placed = %+v, want exactly HELLO", res.Placed)
	}
	if len(res.Unplaced) != 0 {
		t.Errorf("Unplaced = %v, want none", res.Unplaced)
	}
}

func TestScenarioNoSharedLetters(t *testing.T) {
	eng := mustEngine(t, Options{Size: 7, Empty: '.'})
	res := eng.Layout([]string{"RUN", "FAST"})

	if len(res.Placed) != 1 || res.Placed[0].Word != "RUN" {
		t.Fatalf("Placed = %+v, want only RUN", res.Placed)
	}
	if len(res.Unplaced) != 1 || res.Unplaced[0] != "FAST" {
		t.Errorf("Unplaced = %v, want [FAST]", res.Unplaced)
	}

	joined := strings.Join(res.Board.Rows(), "")
	for _, ch := range "FAST" {
		if ch == 'R' || ch == 'U' || ch == 'N' {
			continue
		}
		if strings.ContainsRune(joined, ch) {
			t.Errorf("board contains %q from unplaced word", ch)
		}
	}
}

func TestSeedRestartDropsUnplaceableFirstWord(t *testing.T) {
	eng := mustEngine(t, Options{Size: 5, Empty: '.'})
	res := eng.Layout([]string{"IMPOSSIBLYLONG", "CAT", "CAR"})

	if len(res.Unplaced) != 1 || res.Unplaced[0] != "IMPOSSIBLYLONG" {
		t.Fatalf("Unplaced = %v, want the dropped first word", res.Unplaced)
	}
	if len(res.Placed) != 2 || res.Placed[0].Word != "CAT" || res.Placed[1].Word != "CAR" {
		t.Fatalf("Placed = %+v, want CAT then CAR", res.Placed)
	}
	// CAT must be seeded as if it had been the first word all along.
	if res.Placed[0] != (board.PlacedWord{Word: "CAT", Row: 2, Col: 1, Dir: board.Horizontal}) {
		t.Errorf("seed after restart = %+v", res.Placed[0])
	}
}

func TestQueueExhaustedReturnsEmptyBoard(t *testing.T) {
	eng := mustEngine(t, Options{Size: 3, Empty: '.'})
	res := eng.Layout([]string{"LONGWORD", "ANOTHERLONGONE"})

	if len(res.Placed) != 0 {
		t.Errorf("Placed = %+v, want none", res.Placed)
	}
	if len(res.Unplaced) != 2 {
		t.Errorf("Unplaced = %v, want both words", res.Unplaced)
	}
	if gridString(res) != "...\n...\n..." {
		t.Errorf("board not empty:\n%s", gridString(res))
	}
}

func TestNormalizationUppercases(t *testing.T) {
	eng := mustEngine(t, Options{Size: 5, Empty: '.'})
	res := eng.Layout([]string{"cat", "car"})

	if len(res.Placed) != 2 || res.Placed[0].Word != "CAT" || res.Placed[1].Word != "CAR" {
		t.Fatalf("Placed = %+v, want uppercased CAT and CAR", res.Placed)
	}
}

func TestGreedyOrderPrefersHorizontalAndEarliestAnchor(t *testing.T) {
	eng := mustEngine(t, Options{Size: 5, Empty: '.'})
	res := eng.Layout([]string{"DOG", "GOD"})

	// GOD's first letter G anchors at the G of DOG; horizontal overflows
	// the board so the vertical candidate at that same anchor commits.
	want := board.PlacedWord{Word: "GOD", Row: 2, Col: 3, Dir: board.Vertical}
	if len(res.Placed) != 2 || res.Placed[1] != want {
		t.Fatalf("Placed = %+v, want GOD at %+v", res.Placed, want)
	}
}

func TestFullOverlapPlacementIsLegal(t *testing.T) {
	// A word laid entirely over matching letters is a valid placement: every
	// cell is an occupied match, so the walk records connections and no
	// conflicts.
	eng := mustEngine(t, Options{Size: 5, Empty: '.'})
	res := eng.Layout([]string{"CAT", "AT"})

	want := board.PlacedWord{Word: "AT", Row: 2, Col: 2, Dir: board.Horizontal}
	if len(res.Placed) != 2 || res.Placed[1] != want {
		t.Fatalf("Placed = %+v, want AT at %+v", res.Placed, want)
	}
}

func TestDeterminism(t *testing.T) {
	words := []string{"SCRABBLE", "LETTER", "TILE", "BOARD", "WORD", "PLAY"}
	eng := mustEngine(t, Options{Size: 15, Empty: '.'})

	first := eng.Layout(words)
	second := eng.Layout(words)

	if gridString(first) != gridString(second) {
		t.Error("identical input produced different grids")
	}
	if len(first.Placed) != len(second.Placed) {
		t.Fatalf("placement logs differ in length: %d vs %d", len(first.Placed), len(second.Placed))
	}
	for i := range first.Placed {
		if first.Placed[i] != second.Placed[i] {
			t.Errorf("placement %d differs: %+v vs %+v", i, first.Placed[i], second.Placed[i])
		}
	}
}

func TestInvariantsOnLargerLayout(t *testing.T) {
	words := []string{"PYTHON", "JAVA", "SCRIPT", "HTML", "CSS", "RUST", "KOTLIN"}
	eng := mustEngine(t, Options{Size: 15, Empty: '.'})
	res := eng.Layout(words)

	if len(res.Placed) < 2 {
		t.Fatalf("expected several placements, got %+v", res.Placed)
	}
	checkInvariants(t, res)
}

func TestLayoutConvenience(t *testing.T) {
	res, err := Layout([]string{"HELLO"}, Options{Size: 9, Empty: '.'})
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}
	if len(res.Placed) != 1 {
		t.Errorf("Placed = %+v", res.Placed)
	}

	if _, err := Layout(nil, Options{Size: -1}); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Layout with bad size: error = %v, want INVALID_CONFIG", err)
	}
}

// checkInvariants verifies the structural properties every finished layout
// must satisfy: the grid matches the placement log exactly, every word after
// the first connects to an earlier word, and letters only touch at shared
// cells.
func checkInvariants(t *testing.T, res *Result) {
	t.Helper()
	b := res.Board

	// Rebuild the expected grid from the log; each cell must agree with
	// every word that covers it.
	expected := make(map[[2]int]rune)
	coverage := make(map[[2]int][]int)
	for wi, pw := range res.Placed {
		for i, ch := range pw.Word {
			r, c := pw.Row, pw.Col
			if pw.Dir == board.Horizontal {
				c += i
			} else {
				r += i
			}
			key := [2]int{r, c}
			if prev, ok := expected[key]; ok && prev != ch {
				t.Errorf("words disagree on cell (%d, %d): %q vs %q", r, c, prev, ch)
			}
			expected[key] = ch
			coverage[key] = append(coverage[key], wi)
		}
	}

	// Grid and log stay consistent: no stray letters, no missing letters.
	for r := 0; r < b.Size(); r++ {
		for c := 0; c < b.Size(); c++ {
			got, err := b.Cell(r, c)
			if err != nil {
				t.Fatalf("Cell(%d, %d) error: %v", r, c, err)
			}
			want, ok := expected[[2]int{r, c}]
			if !ok {
				if got != b.Empty() {
					t.Errorf("cell (%d, %d) = %q but no placed word covers it", r, c, got)
				}
				continue
			}
			if got != want {
				t.Errorf("cell (%d, %d) = %q, want %q from placement log", r, c, got, want)
			}
		}
	}

	// Connectivity: every word after the first shares a cell with an
	// earlier word.
	for wi := 1; wi < len(res.Placed); wi++ {
		pw := res.Placed[wi]
		connected := false
		for i := range []rune(pw.Word) {
			r, c := pw.Row, pw.Col
			if pw.Dir == board.Horizontal {
				c += i
			} else {
				r += i
			}
			for _, other := range coverage[[2]int{r, c}] {
				if other < wi {
					connected = true
				}
			}
		}
		if !connected {
			t.Errorf("placed word %d (%s) shares no cell with an earlier word", wi, pw.Word)
		}
	}
}
