// Package board implements the square letter grid that words are laid out on.
//
// A Board is a size × size grid of cells, each holding a single uppercase
// letter or a designated empty marker. The board only knows about bounds and
// raw cell access; all placement rules live in pkg/layout. A board is owned
// exclusively by one layout attempt and is mutated only when a word is
// committed.
package board

import (
	"strings"
	"unicode/utf8"

	"github.com/tilework/wordgrid/pkg/errors"
)

// Direction is the orientation of a placed word.
type Direction string

// Word orientations.
const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// PlacedWord records a committed word placement. It is immutable once
// appended to the placement log: a restart resets the whole log, it never
// edits individual entries.
type PlacedWord struct {
	Word string    `json:"word"`
	Row  int       `json:"row"`
	Col  int       `json:"col"`
	Dir  Direction `json:"direction"`
}

// DefaultSize is the classic board width and height in cells.
const DefaultSize = 15

// DefaultEmpty is the default marker for unoccupied cells.
const DefaultEmpty = '.'

// Board is a square grid of rune cells. The grid never changes size after
// construction.
type Board struct {
	size  int
	empty rune
	cells [][]rune
}

// New creates an empty size × size board using empty as the unoccupied-cell
// marker. It returns an INVALID_CONFIG error if size is not positive.
func New(size int, empty rune) (*Board, error) {
	if size <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "board size must be a positive integer, got %d", size)
	}
	cells := make([][]rune, size)
	for r := range cells {
		cells[r] = make([]rune, size)
		for c := range cells[r] {
			cells[r][c] = empty
		}
	}
	return &Board{size: size, empty: empty, cells: cells}, nil
}

// ParseMarker converts a marker string to a rune. It returns an
// INVALID_CONFIG error unless s is exactly one character.
func ParseMarker(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "empty marker must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Size returns the board's width and height in cells.
func (b *Board) Size() int { return b.size }

// Empty returns the marker used for unoccupied cells.
func (b *Board) Empty() rune { return b.empty }

// InBounds reports whether (r, c) lies on the board.
func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.size && c >= 0 && c < b.size
}

// Cell returns the letter stored at (r, c), or the empty marker for an
// unoccupied cell. It returns an OUT_OF_BOUNDS error for coordinates outside
// the grid.
func (b *Board) Cell(r, c int) (rune, error) {
	if !b.InBounds(r, c) {
		return 0, errors.New(errors.ErrCodeOutOfBounds, "cell (%d, %d) outside %dx%d board", r, c, b.size, b.size)
	}
	return b.cells[r][c], nil
}

// Occupied reports whether the in-bounds cell (r, c) holds a letter.
// Out-of-bounds coordinates are reported as unoccupied.
func (b *Board) Occupied(r, c int) bool {
	if !b.InBounds(r, c) {
		return false
	}
	return b.cells[r][c] != b.empty
}

// SetCell writes letter at (r, c). It is only ever invoked when committing a
// word whose placement was already validated: writing a different letter over
// an occupied cell is a logic error upstream, not a condition handled here.
func (b *Board) SetCell(r, c int, letter rune) {
	b.cells[r][c] = letter
}

// Reset clears every cell back to the empty marker.
func (b *Board) Reset() {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = b.empty
		}
	}
}

// Cells returns a deep copy of the grid. Mutating the copy does not affect
// the board.
func (b *Board) Cells() [][]rune {
	out := make([][]rune, b.size)
	for r := range b.cells {
		out[r] = make([]rune, b.size)
		copy(out[r], b.cells[r])
	}
	return out
}

// Rows returns the grid as one string per row, suitable for JSON output and
// downstream renderers.
func (b *Board) Rows() []string {
	rows := make([]string, b.size)
	for r := range b.cells {
		rows[r] = string(b.cells[r])
	}
	return rows
}

// String renders the grid with cells separated by spaces, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(cell)
		}
	}
	return sb.String()
}
