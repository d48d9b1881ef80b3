package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tilework/wordgrid/pkg/board"
	"github.com/tilework/wordgrid/pkg/cache"
	"github.com/tilework/wordgrid/pkg/layout"
)

// layoutResult is the cached and JSON-printed form of a computed layout.
type layoutResult struct {
	Grid     []string           `json:"grid"`
	Placed   []board.PlacedWord `json:"placed"`
	Unplaced []string           `json:"unplaced"`
}

// layoutCommand creates the layout command for placing words on a grid.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		size    int
		empty   string
		file    string
		output  string
		asJSON  bool
		filter  bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "layout [words...]",
		Short: "Place words on a grid and print the result",
		Long: `Place words on a crossword-style grid and print the result.

Words are taken from the arguments, from a file (one word per line) via
--file, or from both. The first placeable word seeds the grid near the
center; every later word must cross an already placed word through a
shared letter. Words that cannot be connected are reported as unplaced.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, args, size, empty, file, output, asJSON, filter, noCache)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 0, "grid size (default: from config, 15)")
	cmd.Flags().StringVarP(&empty, "empty", "e", "", "empty cell marker (default: from config, \".\")")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read words from file, one per line")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result as JSON to a file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&filter, "filter", false, "drop words not in the dictionary before placing")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runLayout gathers the word list, computes or retrieves the layout, and prints it.
func (c *CLI) runLayout(cmd *cobra.Command, args []string, size int, empty, file, output string, asJSON, filter, noCache bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if size == 0 {
		size = cfg.Board.Size
	}
	if empty == "" {
		empty = cfg.Board.Empty
	}

	words := append([]string(nil), args...)
	if file != "" {
		fromFile, err := readWordsFile(file)
		if err != nil {
			return err
		}
		words = append(words, fromFile...)
	}
	if len(words) == 0 {
		return fmt.Errorf("no words given: pass them as arguments or via --file")
	}

	if filter {
		d, err := c.loadDictionary(cfg.Dictionary.Path)
		if err != nil {
			return err
		}
		valid, invalid := d.Filter(words)
		for _, w := range invalid {
			printWarning("not in dictionary: %s", w)
		}
		if len(valid) == 0 {
			return fmt.Errorf("no valid words after dictionary filtering")
		}
		words = valid
	}

	marker, err := board.ParseMarker(empty)
	if err != nil {
		return err
	}
	engine, err := layout.New(layout.Options{Size: size, Empty: marker})
	if err != nil {
		return err
	}

	store := c.newCache(cmd, cfg, noCache)
	defer store.Close()

	ctx := cmd.Context()
	key := cache.LayoutKey(words, size, marker)

	var res layoutResult
	cached := false
	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		cached = json.Unmarshal(data, &res) == nil
	}

	if !cached {
		prog := newProgress(c.Logger)
		out := engine.Layout(words)
		res = layoutResult{
			Grid:     out.Board.Rows(),
			Placed:   out.Placed,
			Unplaced: out.Unplaced,
		}
		prog.done(fmt.Sprintf("Placed %d of %d words", len(res.Placed), len(res.Placed)+len(res.Unplaced)))

		if data, err := json.Marshal(res); err == nil {
			if err := store.Set(ctx, key, data, cache.DefaultTTL); err != nil {
				c.Logger.Debug("cache write failed", "err", err)
			}
		}
	}

	if output != "" {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", output, err)
		}
		printSuccess("Layout written")
		printInfo("%s", output)
		return nil
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	printGrid(res.Grid, marker)
	printNewline()
	printPlacements(res.Placed)
	for _, w := range res.Unplaced {
		printWarning("could not place %s", w)
	}
	printStats(len(res.Placed), len(res.Unplaced), cached)
	return nil
}

// readWordsFile reads one word per line, skipping blanks and # comments.
func readWordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read words %s: %w", path, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read words %s: %w", path, err)
	}
	return words, nil
}
