// internal/solver/filter.go
//
// Candidate filtering: the consistency predicate between a candidate answer
// and one round of (guess, feedback), and pool reduction built on it.
//
// The duplicate-letter rule: a letter judged Absent at one position may still
// have occurrences judged Correct or Present elsewhere in the same guess. The
// confirmed count for that letter is aggregated over the whole guess first,
// and a candidate may contain at most that many occurrences of the letter.

package solver

import (
	"strings"

	"github.com/Nadock/wordle-solver/internal/feedback"
)

// Consistent reports whether candidate w could still be the answer given that
// guess received fb. A guess that did not score all-Correct can never itself
// be the answer, so w == guess is always inconsistent.
func Consistent(w, guess string, fb feedback.Feedback) bool {
	if w == guess {
		return false
	}

	// Confirmed occurrences per guess letter, aggregated over the whole guess
	// before any Absent position is tested.
	var confirmed [26]int
	for i := 0; i < feedback.Length; i++ {
		if fb[i] == feedback.Correct || fb[i] == feedback.Present {
			confirmed[idx(guess[i])]++
		}
	}

	for i := 0; i < feedback.Length; i++ {
		c := guess[i]
		switch fb[i] {
		case feedback.Correct:
			if w[i] != c {
				return false
			}
		case feedback.Present:
			if w[i] == c || strings.IndexByte(w, c) < 0 {
				return false
			}
		case feedback.Absent:
			if countLetter(w, c) > confirmed[idx(c)] {
				return false
			}
		}
	}
	return true
}

// Reduce removes every candidate inconsistent with fb for guess and returns
// the number of candidates left. The pool only ever shrinks.
func (p *Pool) Reduce(guess string, fb feedback.Feedback) int {
	for i, ok := p.set.NextSet(0); ok; i, ok = p.set.NextSet(i + 1) {
		if !Consistent(p.dict.At(int(i)), guess, fb) {
			p.set.Clear(i)
		}
	}
	return p.Size()
}

// countLetter counts the occurrences of c in w.
func countLetter(w string, c byte) int {
	n := 0
	for i := 0; i < len(w); i++ {
		if w[i] == c {
			n++
		}
	}
	return n
}

// idx maps a lowercase ASCII letter to 0..25.
func idx(c byte) int { return int(c - 'a') }
