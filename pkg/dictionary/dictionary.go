// Package dictionary provides word-validity lookups for layout input.
//
// A Dictionary answers membership queries against an English word list. It
// mirrors common word-game rules: a word is valid when its lowercase form is
// in the list and it is not a proper noun (capitalized input is rejected).
// The engine itself never consults a dictionary — validity filtering is an
// optional preprocessing step for CLI and API input.
package dictionary

import (
	"bufio"
	_ "embed"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tilework/wordgrid/pkg/errors"
)

//go:embed words.txt
var embeddedWords string

// Dictionary is an immutable word set. Lookups are case-insensitive; the
// proper-noun rule applies to the query, not the stored form.
type Dictionary struct {
	words map[string]struct{}
}

// FromWords builds a dictionary from a word list. Entries are lowercased;
// empty strings are ignored.
func FromWords(words []string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		d.words[strings.ToLower(w)] = struct{}{}
	}
	return d
}

// Load reads a newline-delimited word list from path. It returns a NOT_FOUND
// error if the file does not exist.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeNotFound, "word list %s does not exist", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open word list %s", path)
	}
	defer f.Close()

	d := &Dictionary{words: make(map[string]struct{})}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		d.words[strings.ToLower(w)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read word list %s", path)
	}
	return d, nil
}

// Embedded returns the built-in fallback word list, used when no word list
// file is configured.
func Embedded() *Dictionary {
	return FromWords(strings.Split(embeddedWords, "\n"))
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int { return len(d.words) }

// Valid reports whether word is a playable dictionary word: present in the
// list and not capitalized (proper nouns are excluded).
func (d *Dictionary) Valid(word string) bool {
	if word == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(word)
	if unicode.IsUpper(first) {
		return false
	}
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// Filter splits words into valid and invalid per Valid, preserving input
// order.
func (d *Dictionary) Filter(words []string) (valid, invalid []string) {
	for _, w := range words {
		if d.Valid(w) {
			valid = append(valid, w)
		} else {
			invalid = append(invalid, w)
		}
	}
	return valid, invalid
}
