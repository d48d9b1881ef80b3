package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tilework/wordgrid/pkg/board"
	"github.com/tilework/wordgrid/pkg/layout"
	"github.com/tilework/wordgrid/pkg/suggest"
)

// defaultSuggestCount is how many words to request when --count is not given.
const defaultSuggestCount = 10

// suggestCommand creates the suggest command for AI-generated word lists.
func (c *CLI) suggestCommand() *cobra.Command {
	var (
		count   int
		project string
		region  string
		place   bool
	)

	cmd := &cobra.Command{
		Use:   "suggest <theme>",
		Short: "Generate themed words via Vertex AI",
		Long: `Generate themed words via Vertex AI.

Requests a list of words related to the given theme from the Gemini
model. Requires a Google Cloud project with the Vertex AI API enabled;
set the project in the config file, the --project flag, or the
GCP_PROJECT_ID environment variable.

With --place, the suggested words are immediately placed on a grid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSuggest(cmd, args[0], count, project, region, place)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", defaultSuggestCount, "number of words to request")
	cmd.Flags().StringVar(&project, "project", "", "Google Cloud project ID")
	cmd.Flags().StringVar(&region, "region", "", "Vertex AI region (default: europe-west1)")
	cmd.Flags().BoolVar(&place, "place", false, "place the suggested words on a grid")

	return cmd
}

func (c *CLI) runSuggest(cmd *cobra.Command, theme string, count int, project, region string, place bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if project == "" {
		project = cfg.Suggest.Project
	}
	if region == "" {
		region = cfg.Suggest.Region
	}
	if project == "" {
		return fmt.Errorf("no Google Cloud project configured: use --project or set [suggest] project in the config file")
	}

	ctx := cmd.Context()
	client, err := suggest.NewClient(ctx, project, region)
	if err != nil {
		return err
	}
	defer client.Close()

	prog := newProgress(c.Logger)
	words, err := client.Suggest(ctx, theme, count)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Suggested %d words for %q", len(words), theme))

	if !place {
		for _, w := range words {
			fmt.Println(w)
		}
		return nil
	}

	engine, err := layout.New(layout.Options{Size: cfg.Board.Size, Empty: firstRune(cfg.Board.Empty)})
	if err != nil {
		return err
	}
	res := engine.Layout(words)

	printGrid(res.Board.Rows(), res.Board.Empty())
	printNewline()
	printPlacements(res.Placed)
	for _, w := range res.Unplaced {
		printWarning("could not place %s", w)
	}
	printStats(len(res.Placed), len(res.Unplaced), false)
	return nil
}

// firstRune returns the marker rune for a validated config value.
func firstRune(s string) rune {
	r, err := board.ParseMarker(s)
	if err != nil {
		return board.DefaultEmpty
	}
	return r
}
