package layout

import "github.com/tilework/wordgrid/pkg/board"

// seed places the first word of a layout attempt. It tries, in order:
// horizontal centered, vertical centered, horizontal at the origin, vertical
// at the origin. The first accepted candidate is committed.
func seed(b *board.Board, word string) (board.PlacedWord, bool) {
	letters := []rune(word)
	size := b.Size()

	candidates := []struct {
		r, c int
		dir  board.Direction
	}{
		{size / 2, (size - len(letters)) / 2, board.Horizontal},
		{(size - len(letters)) / 2, size / 2, board.Vertical},
		{0, 0, board.Horizontal},
		{0, 0, board.Vertical},
	}

	for _, cand := range candidates {
		if ok, _ := evaluate(b, letters, cand.r, cand.c, cand.dir, true); ok {
			commit(b, letters, cand.r, cand.c, cand.dir)
			return board.PlacedWord{Word: word, Row: cand.r, Col: cand.c, Dir: cand.dir}, true
		}
	}
	return board.PlacedWord{}, false
}

// connect places a subsequent word by scanning for an anchor letter it can
// cross. The nested order is load-bearing for output compatibility: letter
// index ascending, then board rows, then columns, horizontal before
// vertical. The first accepted connecting candidate wins; there is no
// backtracking and no search for a better placement.
func connect(b *board.Board, word string) (board.PlacedWord, bool) {
	letters := []rune(word)
	size := b.Size()

	for i, ch := range letters {
		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				cur, _ := b.Cell(r, c)
				if cur != ch {
					continue
				}

				// Anchor found: letter i of the word could align with (r, c).
				if ok, connected := evaluate(b, letters, r, c-i, board.Horizontal, false); ok && connected {
					commit(b, letters, r, c-i, board.Horizontal)
					return board.PlacedWord{Word: word, Row: r, Col: c - i, Dir: board.Horizontal}, true
				}
				if ok, connected := evaluate(b, letters, r-i, c, board.Vertical, false); ok && connected {
					commit(b, letters, r-i, c, board.Vertical)
					return board.PlacedWord{Word: word, Row: r - i, Col: c, Dir: board.Vertical}, true
				}
			}
		}
	}
	return board.PlacedWord{}, false
}
