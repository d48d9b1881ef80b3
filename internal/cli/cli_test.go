package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tilework/wordgrid/pkg/board"
	"github.com/tilework/wordgrid/pkg/layout"
)

func testCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := testCLI().RootCommand()

	want := []string{"layout", "serve", "words", "suggest", "play", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestRootCommandUse(t *testing.T) {
	root := testCLI().RootCommand()
	if root.Use != "wordgrid" {
		t.Errorf("Use = %q, want %q", root.Use, "wordgrid")
	}
	if !root.SilenceUsage {
		t.Error("SilenceUsage should be set")
	}
}

func TestSetLogLevel(t *testing.T) {
	c := testCLI()
	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want %v", c.Logger.GetLevel(), LogDebug)
	}
}

func TestReadWordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "cat\n\n# comment\n  dog  \nbird\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	words, err := readWordsFile(path)
	if err != nil {
		t.Fatalf("readWordsFile: %v", err)
	}
	want := []string{"cat", "dog", "bird"}
	if len(words) != len(want) {
		t.Fatalf("got %d words, want %d: %v", len(words), len(want), words)
	}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("words[%d] = %q, want %q", i, words[i], w)
		}
	}
}

func TestReadWordsFileMissing(t *testing.T) {
	if _, err := readWordsFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRenderGridLineCount(t *testing.T) {
	rows := []string{"..A", ".AB", "ABC"}
	out := renderGrid(rows, '.')
	if got := len(strings.Split(out, "\n")); got != len(rows) {
		t.Errorf("rendered %d lines, want %d", got, len(rows))
	}
}

func newTestPlayModel(t *testing.T) PlayModel {
	t.Helper()
	engine, err := layout.New(layout.Options{Size: 7, Empty: board.DefaultEmpty})
	if err != nil {
		t.Fatal(err)
	}
	return NewPlayModel(engine, board.DefaultEmpty)
}

func TestPlayModelTypingUppercases(t *testing.T) {
	m := newTestPlayModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("cat")})
	m = next.(PlayModel)

	if m.input != "CAT" {
		t.Errorf("input = %q, want %q", m.input, "CAT")
	}
}

func TestPlayModelEnterPlacesWord(t *testing.T) {
	m := newTestPlayModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("cat")})
	m = next.(PlayModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(PlayModel)

	if m.input != "" {
		t.Errorf("input should be cleared, got %q", m.input)
	}
	if len(m.words) != 1 || m.words[0] != "CAT" {
		t.Errorf("words = %v, want [CAT]", m.words)
	}
	if len(m.result.Placed) != 1 {
		t.Errorf("placed = %d, want 1", len(m.result.Placed))
	}
}

func TestPlayModelUndoRemovesLastWord(t *testing.T) {
	m := newTestPlayModel(t)

	for _, word := range []string{"cat", "car"} {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(word)})
		m = next.(PlayModel)
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = next.(PlayModel)
	}
	if len(m.words) != 2 {
		t.Fatalf("words = %v, want 2 entries", m.words)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	m = next.(PlayModel)

	if len(m.words) != 1 || m.words[0] != "CAT" {
		t.Errorf("words = %v, want [CAT]", m.words)
	}
	if len(m.result.Placed) != 1 {
		t.Errorf("placed = %d, want 1", len(m.result.Placed))
	}
}

func TestPlayModelQuit(t *testing.T) {
	m := newTestPlayModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestPlayModelViewContainsGrid(t *testing.T) {
	m := newTestPlayModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("cat")})
	m = next.(PlayModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(PlayModel)

	view := m.View()
	for _, letter := range []string{"C", "A", "T"} {
		if !strings.Contains(view, letter) {
			t.Errorf("view missing letter %q", letter)
		}
	}
}
