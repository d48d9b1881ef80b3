// Package pkg provides the core libraries for wordgrid word placement.
//
// # Overview
//
// Wordgrid arranges lists of words on a crossword-style grid, connecting
// them through shared letters. The pkg directory is organized into:
//
//  1. [board] - Grid primitives (board, cells, placements, directions)
//  2. [layout] - Placement engine (seeding, greedy search, validation)
//  3. [dictionary] - Word list loading and validation
//  4. [cache] - Layout result caching (file, Redis, null backends)
//  5. [suggest] - Themed word generation via Vertex AI
//  6. [errors] - Structured errors with machine-readable codes
//
// # Architecture
//
// The typical data flow through wordgrid:
//
//	Word list
//	     ↓
//	[dictionary] package (optional filtering)
//	     ↓
//	[layout] package (seed first word, connect the rest)
//	     ↓
//	[board] package (committed placements)
//	     ↓
//	Grid rows / JSON output
//
// # Quick Start
//
// Place a list of words on a grid:
//
//	import "github.com/tilework/wordgrid/pkg/layout"
//
//	res, err := layout.Layout([]string{"cat", "car", "rat"}, layout.Options{})
//	if err != nil {
//	    return err
//	}
//	for _, row := range res.Board.Rows() {
//	    fmt.Println(row)
//	}
//	fmt.Println("unplaced:", res.Unplaced)
//
// # Main Packages
//
// [board] - The grid itself: bounds checking, cell access, and the
// PlacedWord record kept for every committed word.
//
// [layout] - The placement engine. The first word seeds the grid near the
// center; every later word is connected to an existing word through a
// shared letter by a deterministic greedy search.
//
// [dictionary] - Word list handling with an embedded fallback list.
// Capitalized entries are treated as proper nouns and rejected.
//
// [cache] - Content-addressed caching of layout results keyed by the word
// list and grid settings. File backend for the CLI, Redis for the API,
// null to disable.
//
// [suggest] - Gemini-backed word suggestions for a theme, used by the
// suggest command.
//
// [errors] - Error construction and inspection shared by every package.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Specific package
//
// Integration tests that call Vertex AI are skipped unless GCP_PROJECT_ID
// is set.
//
// [board]: https://pkg.go.dev/github.com/tilework/wordgrid/pkg/board
// [layout]: https://pkg.go.dev/github.com/tilework/wordgrid/pkg/layout
// [dictionary]: https://pkg.go.dev/github.com/tilework/wordgrid/pkg/dictionary
// [cache]: https://pkg.go.dev/github.com/tilework/wordgrid/pkg/cache
// [suggest]: https://pkg.go.dev/github.com/tilework/wordgrid/pkg/suggest
// [errors]: https://pkg.go.dev/github.com/tilework/wordgrid/pkg/errors
package pkg
