// internal/term/simulate.go
//
// Self-play against a known target: the session suggests, truthful feedback
// is computed, and each round is printed as it would appear on the board.

package term

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/Nadock/wordle-solver/internal/feedback"
	"github.com/Nadock/wordle-solver/internal/solver"
)

// Simulate plays the session to completion against target, judging every
// suggestion truthfully.
func (r *Renderer) Simulate(target string) error {
	t := strings.ToLower(strings.TrimSpace(target))
	if !r.dict.Contains(t) {
		return fmt.Errorf("target %q is not in the word list", target)
	}

	for r.session.State() == solver.StateInProgress {
		guess, err := r.session.Suggest()
		if err != nil {
			return fmt.Errorf("round %d: %w", r.session.Rounds()+1, err)
		}
		fb := feedback.Judge(t, guess)
		if err := r.session.Record(guess, fb); err != nil {
			return fmt.Errorf("round %d (%q): %w", r.session.Rounds()+1, guess, err)
		}
		fmt.Fprintf(r.out, "%s | %s (%d remaining)\n", emojiRow(fb), guess, r.session.PoolSize())
	}

	if r.session.State() == solver.StateSolved {
		fmt.Fprintf(r.out, "Solved '%s' in %d guesses\n", color.HiGreenString(t), r.session.Rounds())
		return nil
	}
	fmt.Fprintf(r.out, "Out of guesses, %d candidates left\n", r.session.PoolSize())
	return nil
}
