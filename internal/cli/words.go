package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// wordsCommand creates the words command for dictionary filtering.
func (c *CLI) wordsCommand() *cobra.Command {
	var (
		file string
		dict string
	)

	cmd := &cobra.Command{
		Use:   "words [words...]",
		Short: "Filter words against the dictionary",
		Long: `Filter words against the dictionary.

Each word is checked against the configured word list (or the built-in
fallback list when none is configured). Capitalized words are treated as
proper nouns and rejected. Valid words are printed one per line; words
missing from the dictionary are reported separately.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWords(args, file, dict)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read words from file, one per line")
	cmd.Flags().StringVar(&dict, "dict", "", "word list file (default: from config, embedded list)")

	return cmd
}

func (c *CLI) runWords(args []string, file, dictPath string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if dictPath == "" {
		dictPath = cfg.Dictionary.Path
	}

	d, err := c.loadDictionary(dictPath)
	if err != nil {
		return err
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

	valid, invalid := d.Filter(words)
	for _, w := range valid {
		fmt.Println(w)
	}
	for _, w := range invalid {
		printWarning("not in dictionary: %s", w)
	}
	if len(valid) == 0 {
		return fmt.Errorf("no valid words")
	}
	return nil
}
