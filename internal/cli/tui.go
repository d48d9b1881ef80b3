package cli

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tilework/wordgrid/pkg/board"
	"github.com/tilework/wordgrid/pkg/layout"
)

// List styles
var (
	listPlacedStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	listUnplacedStyle = lipgloss.NewStyle().Foreground(colorYellow)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// playCommand creates the play command for building grids interactively.
func (c *CLI) playCommand() *cobra.Command {
	var (
		size  int
		empty string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Build a grid interactively in the terminal",
		Long: `Build a grid interactively in the terminal.

Type a word and press enter to place it. The grid is recomputed after
every word, so words that cannot be connected yet may attach later once
a crossing word arrives. Ctrl+D removes the last word, Esc quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlay(size, empty)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 0, "grid size (default: from config, 15)")
	cmd.Flags().StringVarP(&empty, "empty", "e", "", "empty cell marker (default: from config, \".\")")

	return cmd
}

func (c *CLI) runPlay(size int, empty string) error {
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

	marker, err := board.ParseMarker(empty)
	if err != nil {
		return err
	}
	engine, err := layout.New(layout.Options{Size: size, Empty: marker})
	if err != nil {
		return err
	}

	m := NewPlayModel(engine, marker)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// =============================================================================
// PlayModel - Interactive grid building
// =============================================================================

// PlayModel is the bubbletea model for interactive grid building.
type PlayModel struct {
	engine *layout.Engine
	empty  rune

	input  string
	words  []string
	result *layout.Result
}

// NewPlayModel creates a play model with an empty word list.
func NewPlayModel(engine *layout.Engine, empty rune) PlayModel {
	return PlayModel{
		engine: engine,
		empty:  empty,
		result: engine.Layout(nil),
	}
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.input != "" {
				m.words = append(m.words, m.input)
				m.input = ""
				m.result = m.engine.Layout(m.words)
			}
		case "backspace":
			if m.input != "" {
				m.input = m.input[:len(m.input)-1]
			}
		case "ctrl+u":
			m.input = ""
		case "ctrl+d":
			if len(m.words) > 0 {
				m.words = m.words[:len(m.words)-1]
				m.result = m.engine.Layout(m.words)
			}
		default:
			for _, r := range msg.Runes {
				if unicode.IsLetter(r) {
					m.input += string(unicode.ToUpper(r))
				}
			}
		}
	}
	return m, nil
}

func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Wordgrid"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("type a word  ⏎ place  ctrl+d undo  esc quit"))
	b.WriteString("\n\n")

	b.WriteString(renderGrid(m.result.Board.Rows(), m.empty))
	b.WriteString("\n\n")

	placed := make(map[string]bool, len(m.result.Placed))
	for _, p := range m.result.Placed {
		placed[p.Word] = true
	}
	for _, w := range m.words {
		upper := strings.ToUpper(w)
		if placed[upper] {
			b.WriteString("  " + listPlacedStyle.Render(upper))
		} else {
			b.WriteString("  " + listUnplacedStyle.Render(upper+" (unplaced)"))
		}
		b.WriteString("\n")
	}
	if len(m.words) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("  %s %s█\n", listDimStyle.Render(">"), m.input))

	return b.String()
}
