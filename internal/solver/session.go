// internal/solver/session.go
//
// Game session: orchestrates repeated guess/feedback rounds over one
// dictionary.
// Responsibilities:
//   - Validate and record rounds (length, duplicates, dictionary membership,
//     hard mode), shrinking the candidate pool after each one.
//   - Track state transitions: playing → solved/exhausted.
//   - Suggest the next guess: opener policy on round one, ranking afterwards.
//   - Resume a partially played game by replaying its history.
//
// Validation rules for a guess, in order:
//   - Session must not be in a terminal state.
//   - Guess must be exactly 5 letters, a-z.
//   - Guess must not repeat an earlier guess.
//   - Guess must be in the dictionary.
//   - In hard mode, guess must still be a remaining candidate.
//
// A failed Record leaves the session untouched.

package solver

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Nadock/wordle-solver/internal/feedback"
	"github.com/Nadock/wordle-solver/internal/words"
)

// MaxGuesses is the number of rounds before a game is exhausted.
const MaxGuesses = 6

// DefaultOpenerWord is the fixed opener used when none is configured.
// https://old.reddit.com/r/wordle/comments/s2orah/finding_the_best_starting_word_using_a_brute/
const DefaultOpenerWord = "raise"

// State describes the lifecycle of a Session.
type State string

const (
	StateInProgress State = "playing"
	StateSolved     State = "solved"
	StateExhausted  State = "exhausted"
)

// Opener selects how the first guess of a session is chosen.
type Opener string

const (
	OpenerFixed  Opener = "fixed"  // use Options.OpenerWord
	OpenerRandom Opener = "random" // uniform draw from the pool
	OpenerManual Opener = "manual" // caller prompts for the first guess
)

// ParseOpener maps a config/flag value to an Opener policy.
func ParseOpener(s string) (Opener, error) {
	switch Opener(strings.ToLower(strings.TrimSpace(s))) {
	case OpenerFixed:
		return OpenerFixed, nil
	case OpenerRandom:
		return OpenerRandom, nil
	case OpenerManual:
		return OpenerManual, nil
	}
	return "", fmt.Errorf("unknown opener policy %q", s)
}

var (
	ErrInvalidGuessLength = errors.New("guess must be exactly 5 letters")
	ErrNotInDictionary    = errors.New("guess is not in the dictionary")
	ErrDuplicateGuess     = errors.New("guess was already played")
	ErrHardModeViolation  = errors.New("hard mode: guess must be a remaining candidate")
	ErrGameComplete       = errors.New("game is already complete")

	// ErrManualOpener signals that the opener policy wants the caller to
	// prompt for the first guess instead of generating one.
	ErrManualOpener = errors.New("manual opener: first guess must be supplied")
)

// Round is one guess and the feedback it received.
type Round struct {
	Guess    string            // the word guessed (lowercase)
	Feedback feedback.Feedback // per-letter judgement for the guess
}

// Options configures a Session.
type Options struct {
	HardMode   bool                  // restrict guesses to remaining candidates
	Heuristic  Heuristic             // ranking strategy; zero value = pairwise
	Opener     Opener                // first-guess policy; zero value = fixed
	OpenerWord string                // fixed opener; zero value = DefaultOpenerWord
	Rand       *rand.Rand            // source for OpenerRandom; nil = time-seeded
	Progress   func(done, total int) // ranking progress hook, may be nil
}

// Session owns the candidate pool and guess record for one game.
type Session struct {
	dict    *words.Dictionary
	pool    *Pool
	rounds  []Round
	guessed map[string]struct{}
	state   State
	opts    Options
	ranker  Ranker
	rng     *rand.Rand
}

// New creates a Session over dict with the full dictionary as its pool.
// Zero-valued options are filled with defaults.
func New(dict *words.Dictionary, opts Options) *Session {
	if opts.Heuristic == "" {
		opts.Heuristic = HeuristicPairwise
	}
	if opts.Opener == "" {
		opts.Opener = OpenerFixed
	}
	if opts.OpenerWord == "" {
		opts.OpenerWord = DefaultOpenerWord
	}
	opts.OpenerWord = normalize(opts.OpenerWord)
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		dict:    dict,
		pool:    NewPool(dict),
		guessed: make(map[string]struct{}),
		state:   StateInProgress,
		opts:    opts,
		ranker:  Ranker{Heuristic: opts.Heuristic, Progress: opts.Progress},
		rng:     rng,
	}
}

// Resume creates a Session and replays a previously played history through
// it. It fails if any historical round was invalid at its point in the
// sequence.
func Resume(dict *words.Dictionary, history []Round, opts Options) (*Session, error) {
	s := New(dict, opts)
	for i, r := range history {
		if err := s.Record(r.Guess, r.Feedback); err != nil {
			return nil, fmt.Errorf("replay round %d (%q): %w", i+1, r.Guess, err)
		}
	}
	return s, nil
}

// CheckGuess reports why word would be rejected as the next guess, or nil if
// it is acceptable. Validation order matches Record.
func (s *Session) CheckGuess(word string) error {
	w := normalize(word)
	if s.state != StateInProgress {
		return ErrGameComplete
	}
	if len(w) != feedback.Length || !isAlpha(w) {
		return fmt.Errorf("%q: %w", word, ErrInvalidGuessLength)
	}
	if _, ok := s.guessed[w]; ok {
		return fmt.Errorf("%q: %w", word, ErrDuplicateGuess)
	}
	if !s.dict.Contains(w) {
		return fmt.Errorf("%q: %w", word, ErrNotInDictionary)
	}
	if s.opts.HardMode && !s.pool.Contains(w) {
		return fmt.Errorf("%q: %w", word, ErrHardModeViolation)
	}
	return nil
}

// Record appends a round and shrinks the pool, then applies state
// transitions: all-Correct feedback solves the game, the sixth round without
// one exhausts it. On error nothing is recorded.
func (s *Session) Record(guess string, fb feedback.Feedback) error {
	if err := s.CheckGuess(guess); err != nil {
		return err
	}
	w := normalize(guess)

	s.rounds = append(s.rounds, Round{Guess: w, Feedback: fb})
	s.guessed[w] = struct{}{}
	s.pool.Reduce(w, fb)

	switch {
	case fb.AllCorrect():
		s.state = StateSolved
	case len(s.rounds) >= MaxGuesses:
		s.state = StateExhausted
	}
	return nil
}

// Suggest returns the next guess to try without mutating the session.
// Round one applies the opener policy; later rounds rank the remaining
// candidates against the guess space.
func (s *Session) Suggest() (string, error) {
	if s.state != StateInProgress {
		return "", ErrGameComplete
	}
	if len(s.rounds) == 0 {
		switch s.opts.Opener {
		case OpenerManual:
			return "", ErrManualOpener
		case OpenerRandom:
			ws := s.pool.Words()
			if len(ws) == 0 {
				return "", ErrEmptyPool
			}
			return ws[s.rng.Intn(len(ws))], nil
		default:
			if s.dict.Contains(s.opts.OpenerWord) {
				return s.opts.OpenerWord, nil
			}
			// Configured opener is not a dictionary word; rank instead.
		}
	}
	return s.ranker.Rank(s.pool.Words(), s.guessSpace())
}

// guessSpace is the dictionary minus prior guesses, or the live pool in hard
// mode (the pool never contains a prior guess).
func (s *Session) guessSpace() []string {
	if s.opts.HardMode {
		return s.pool.Words()
	}
	if len(s.guessed) == 0 {
		return s.dict.Words()
	}
	space := make([]string, 0, s.dict.Len()-len(s.guessed))
	for _, w := range s.dict.Words() {
		if _, ok := s.guessed[w]; !ok {
			space = append(space, w)
		}
	}
	return space
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Complete reports whether play should stop: a terminal state, or a pool of
// at most one word (nothing left to narrow down). Record still accepts
// rounds while the state is StateInProgress.
func (s *Session) Complete() bool {
	return s.state != StateInProgress || s.pool.Size() <= 1
}

// HardMode reports whether hard-mode validation is active.
func (s *Session) HardMode() bool { return s.opts.HardMode }

// Rounds returns the number of recorded rounds.
func (s *Session) Rounds() int { return len(s.rounds) }

// History returns a copy of the recorded rounds in order.
func (s *Session) History() []Round {
	out := make([]Round, len(s.rounds))
	copy(out, s.rounds)
	return out
}

// Remaining returns the candidate words left, in dictionary order.
func (s *Session) Remaining() []string { return s.pool.Words() }

// PoolSize returns the number of candidate words left.
func (s *Session) PoolSize() int { return s.pool.Size() }

// normalize lowercases and trims a guess before validation.
func normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
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
