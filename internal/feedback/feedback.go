// internal/feedback/feedback.go
//
// Per-letter feedback model for a Wordle guess.
// Responsibilities:
//   - Judgement: the three-valued result for a single letter (correct/present/absent).
//   - Feedback: exactly five Judgements, one per letter of a guess.
//   - Parse/String: the textual codec over the Y/I/N symbol alphabet.
//   - Judge: truthful feedback for a guess against a known answer, using the
//     classic two-pass Wordle algorithm.
//
// Notes:
//   - Parse accepts either case; String renders canonical uppercase.
//   - Judge assumes both words are validated five-letter a-z strings; validation
//     happens at the load boundary, not here.

package feedback

import (
	"errors"
	"fmt"
	"strings"
)

// Length is the number of letters in a guess, and therefore the number of
// judgements in a Feedback.
const Length = 5

// Judgement represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the answer at this exact position.
//   - "present": letter is in the answer but at a different position.
//   - "absent":  letter does not occur in the answer (beyond any occurrences
//     already confirmed correct or present).
type Judgement string

const (
	Correct Judgement = "correct"
	Present Judgement = "present"
	Absent  Judgement = "absent"
)

// Input/output symbols, one per judgement kind.
const (
	symbolCorrect = 'Y'
	symbolPresent = 'I'
	symbolAbsent  = 'N'
)

// Feedback is the ordered per-letter judgement for one guess.
type Feedback [Length]Judgement

var (
	// ErrInvalidLength is returned by Parse when the text is not exactly Length characters.
	ErrInvalidLength = errors.New("feedback must be exactly 5 characters")
	// ErrInvalidSymbol is returned by Parse when a character is not one of Y, I, or N.
	ErrInvalidSymbol = errors.New("feedback may only contain Y, I, or N")
)

// Parse converts a string of judgement symbols into a Feedback.
// Surrounding whitespace is trimmed and symbols are matched case-insensitively.
func Parse(text string) (Feedback, error) {
	var fb Feedback

	s := strings.ToUpper(strings.TrimSpace(text))
	if len(s) != Length {
		return fb, fmt.Errorf("%q: %w", text, ErrInvalidLength)
	}
	for i := 0; i < Length; i++ {
		switch s[i] {
		case symbolCorrect:
			fb[i] = Correct
		case symbolPresent:
			fb[i] = Present
		case symbolAbsent:
			fb[i] = Absent
		default:
			return Feedback{}, fmt.Errorf("%q in %q: %w", string(s[i]), text, ErrInvalidSymbol)
		}
	}
	return fb, nil
}

// String renders the canonical symbol form, e.g. "YYNIN".
// Parse followed by String is the identity on canonical text.
func (fb Feedback) String() string {
	var b strings.Builder
	b.Grow(Length)
	for _, j := range fb {
		switch j {
		case Correct:
			b.WriteByte(symbolCorrect)
		case Present:
			b.WriteByte(symbolPresent)
		default:
			b.WriteByte(symbolAbsent)
		}
	}
	return b.String()
}

// Symbol returns the single-character form of the judgement, as accepted by
// Parse.
func (j Judgement) Symbol() string {
	switch j {
	case Correct:
		return string(symbolCorrect)
	case Present:
		return string(symbolPresent)
	default:
		return string(symbolAbsent)
	}
}

// AllCorrect reports whether every judgement is Correct (a winning guess).
func (fb Feedback) AllCorrect() bool {
	for _, j := range fb {
		if j != Correct {
			return false
		}
	}
	return true
}

// Judge computes the truthful Feedback for guess against a known answer.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (non-correct) answer letters by letter index.
//
// Pass 2:
//   - For each unresolved guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise mark Absent.
//
// This ensures correct behavior with repeated letters in both answer and guess.
func Judge(answer, guess string) Feedback {
	var fb Feedback

	// Letter frequency for the non-correct positions (a-z).
	var counts [26]int

	for i := 0; i < Length; i++ {
		if guess[i] == answer[i] {
			fb[i] = Correct
		} else {
			counts[idx(answer[i])]++
		}
	}
	for i := 0; i < Length; i++ {
		if fb[i] == Correct {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			fb[i] = Present
			counts[j]--
		} else {
			fb[i] = Absent
		}
	}
	return fb
}

// idx maps a lowercase ASCII letter to 0..25.
// Assumes inputs are validated to a-z elsewhere.
func idx(c byte) int { return int(c - 'a') }
