// internal/words/words.go
//
// Word list management for the solver.
//
// Responsibilities:
//   - Dictionary: an immutable, ordered, deduplicated collection of valid words
//     with O(1) membership lookups.
//   - Loaders: build a Dictionary from a raw list, an io.Reader, a file, or the
//     embedded default list.
//
// Constraints:
//   - Words must be 5 alphabetic letters (a-z); other lines are dropped silently.
//   - Words are normalized to lowercase; duplicates keep their first position.
//   - Loading an empty list is an error; every consumer needs at least one word.
//
// The Dictionary is an explicit constructed value passed to whoever needs it,
// so tests can inject small synthetic lists.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Nadock/wordle-solver/assets"
)

// Dictionary is the universe of words a game is played over.
// The zero value is not usable; construct one with New, FromReader, FromFile,
// or Embedded.
type Dictionary struct {
	words []string       // valid words, insertion order
	index map[string]int // word → position in words
}

// New builds a Dictionary from a raw word list.
// Entries are trimmed and lowercased; entries that are not exactly five a-z
// letters are dropped, and duplicates keep their first occurrence.
func New(list []string) (*Dictionary, error) {
	d := &Dictionary{index: make(map[string]int, len(list))}
	for _, raw := range list {
		w := strings.TrimSpace(strings.ToLower(raw))
		if len(w) != 5 || !isAlpha(w) {
			continue
		}
		if _, ok := d.index[w]; ok {
			continue
		}
		d.index[w] = len(d.words)
		d.words = append(d.words, w)
	}
	if len(d.words) == 0 {
		return nil, errors.New("words: no usable words in list")
	}
	return d, nil
}

// FromReader loads one word per line from r.
// Blank lines and '#' comments are skipped; everything else follows New.
func FromReader(r io.Reader) (*Dictionary, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		lines = append(lines, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return New(lines)
}

// FromFile loads a word list file.
func FromFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	d, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Embedded loads the default word list compiled into the binary.
func Embedded() (*Dictionary, error) {
	list, err := assets.WordList()
	if err != nil {
		return nil, fmt.Errorf("embedded word list: %w", err)
	}
	return New(list)
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// Words returns a copy of the word list in insertion order.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// At returns the word at position i.
func (d *Dictionary) At(i int) string { return d.words[i] }

// Index returns the position of w and whether it is present.
func (d *Dictionary) Index(w string) (int, bool) {
	i, ok := d.index[strings.ToLower(w)]
	return i, ok
}

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.index[strings.ToLower(w)]
	return ok
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
