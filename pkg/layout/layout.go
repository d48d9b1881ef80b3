// Package layout implements the crossword-style word placement engine.
//
// The engine arranges a list of words on a board.Board following
// Scrabble-like rules: the first word seeds the board, every later word must
// cross an already-placed letter, letters never conflict, and new letters may
// not touch existing ones except at a true intersection.
//
// # Pipeline
//
// A layout run has two phases:
//
//  1. Seeding: the first word is tried at a fixed sequence of anchor
//     positions (centered horizontal, centered vertical, then origin). If it
//     cannot be seeded the board is discarded and seeding restarts with the
//     next word.
//  2. Placing: each remaining word is searched greedily for its first valid
//     crossing. Words with no valid crossing are reported as unplaced and the
//     run continues.
//
// The search order is fixed and the engine is fully deterministic: the same
// input list and options always produce the same grid.
//
// # Usage
//
//	eng, err := layout.New(layout.Options{Size: 15, Empty: '.'})
//	if err != nil {
//	    return err
//	}
//	res := eng.Layout([]string{"CAT", "CAR"})
//	fmt.Println(res.Board)
package layout

import (
	"strings"

	"github.com/tilework/wordgrid/pkg/board"
	"github.com/tilework/wordgrid/pkg/errors"
)

// Options configures a layout engine.
type Options struct {
	// Size is the board width and height in cells. Zero means
	// board.DefaultSize; negative values are rejected.
	Size int `json:"size,omitempty"`

	// Empty is the marker for unoccupied cells. Zero means
	// board.DefaultEmpty.
	Empty rune `json:"-"`
}

// Result holds the outcome of one layout run.
type Result struct {
	// Board is the final grid. Never nil.
	Board *board.Board

	// Placed is the ordered placement log. Every word after the first
	// crosses at least one earlier word.
	Placed []board.PlacedWord

	// Unplaced lists the normalized words that could not be placed, in the
	// order they were attempted.
	Unplaced []string
}

// Engine lays out word lists on fresh boards. An Engine is stateless between
// calls: each Layout call owns its own board.
type Engine struct {
	size  int
	empty rune
}

// New creates a layout engine. It returns an INVALID_CONFIG error if the
// options describe an impossible board.
func New(opts Options) (*Engine, error) {
	size := opts.Size
	if size == 0 {
		size = board.DefaultSize
	}
	if size < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "board size must be a positive integer, got %d", size)
	}
	empty := opts.Empty
	if empty == 0 {
		empty = board.DefaultEmpty
	}
	return &Engine{size: size, empty: empty}, nil
}

// Layout arranges words on a fresh board and returns the final grid together
// with the placement log. Unplaceable words are reported in the result, not
// as errors.
func (e *Engine) Layout(words []string) *Result {
	// Size was validated in New, so board construction cannot fail.
	b, err := board.New(e.size, e.empty)
	if err != nil {
		panic(err)
	}
	res := &Result{Board: b}

	queue := normalize(words)

	// Seeding phase. A first word that cannot be seeded is dropped for good
	// and the next word becomes the new first word. Nothing has been
	// committed at this point, so the board and log need no reset.
	seeded := false
	for len(queue) > 0 && !seeded {
		first := queue[0]
		queue = queue[1:]
		if pw, ok := seed(b, first); ok {
			res.Placed = append(res.Placed, pw)
			seeded = true
		} else {
			res.Unplaced = append(res.Unplaced, first)
		}
	}
	if !seeded {
		return res // queue exhausted, untouched empty board
	}

	// Placing phase. Failures are recorded and the loop continues.
	for _, w := range queue {
		if pw, ok := connect(b, w); ok {
			res.Placed = append(res.Placed, pw)
		} else {
			res.Unplaced = append(res.Unplaced, w)
		}
	}
	return res
}

// Layout is a convenience wrapper that builds an engine and runs a single
// layout.
func Layout(words []string, opts Options) (*Result, error) {
	eng, err := New(opts)
	if err != nil {
		return nil, err
	}
	return eng.Layout(words), nil
}

// normalize uppercases words and drops empty strings before any placement
// attempt.
func normalize(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		out = append(out, strings.ToUpper(w))
	}
	return out
}
