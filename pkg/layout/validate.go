package layout

import "github.com/tilework/wordgrid/pkg/board"

// evaluate decides whether word can be placed at (r, c) in direction dir.
// It returns (ok, connected): ok means the placement is legal, connected
// means at least one cell overlaps a matching letter already on the board.
//
// Rules, in walk order over the word's cells:
//   - the whole span must be in bounds
//   - an occupied cell must hold the same letter (a mismatch rejects the
//     placement outright, it is never skipped)
//   - an empty cell of a non-first word must have no occupied perpendicular
//     neighbors, which keeps words from running side by side without a true
//     crossing
//
// The first word is accepted after a clean walk. Every other word must have
// made at least one connection.
func evaluate(b *board.Board, word []rune, r, c int, dir board.Direction, first bool) (ok, connected bool) {
	if len(word) == 0 {
		return false, false
	}

	endR, endC := r, c
	if dir == board.Horizontal {
		endC = c + len(word) - 1
	} else {
		endR = r + len(word) - 1
	}
	if !b.InBounds(r, c) || !b.InBounds(endR, endC) {
		return false, false
	}

	for i, ch := range word {
		rr, cc := r, c
		if dir == board.Horizontal {
			cc += i
		} else {
			rr += i
		}

		cur, _ := b.Cell(rr, cc)
		if cur != b.Empty() {
			if cur != ch {
				return false, false // letter conflict
			}
			connected = true
			continue
		}

		if first {
			continue
		}
		if dir == board.Horizontal {
			if b.Occupied(rr-1, cc) || b.Occupied(rr+1, cc) {
				return false, false
			}
		} else {
			if b.Occupied(rr, cc-1) || b.Occupied(rr, cc+1) {
				return false, false
			}
		}
	}

	if first {
		// Every cell walked was empty or matching, and no connection is
		// required for the seed word.
		return true, false
	}
	return connected, connected
}

// commit writes word onto the board. Callers must have accepted the
// placement via evaluate first.
func commit(b *board.Board, word []rune, r, c int, dir board.Direction) {
	for i, ch := range word {
		if dir == board.Horizontal {
			b.SetCell(r, c+i, ch)
		} else {
			b.SetCell(r+i, c, ch)
		}
	}
}
