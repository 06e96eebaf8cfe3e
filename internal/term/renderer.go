// internal/term/renderer.go
//
// Terminal I/O for the solver.
// Responsibilities:
//   - Interactive solve loop: board rendering, action prompt (S/R/G/Q),
//     guess and feedback entry.
//   - One-shot suggest and remaining-words output, plain when piped and
//     formatted on a terminal.
//   - Emoji board rendering of recorded feedback.
//
// Notes:
//   - All output goes through the configured writers so tests can capture it.
//   - Colour is handled by fatih/color, which already honours NO_COLOR and
//     non-terminal output.

package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/Nadock/wordle-solver/internal/feedback"
	"github.com/Nadock/wordle-solver/internal/solver"
	"github.com/Nadock/wordle-solver/internal/words"
)

const program = "wordle-solver"

// Board glyphs, one per judgement kind.
const (
	emojiCorrect = "🟩"
	emojiPresent = "🟨"
	emojiAbsent  = "⬜"
)

// sampleSize caps the remaining-words listing unless show-all is on.
const sampleSize = 20

// errQuit stops the solve loop without an error.
var errQuit = errors.New("quit")

// Options configures a Renderer. Zero values fall back to the standard
// streams and non-interactive output.
type Options struct {
	In          io.Reader // guess/feedback input, defaults to os.Stdin
	Out         io.Writer // user-facing output, defaults to os.Stdout
	Interactive bool      // prompts and formatting vs plain machine output
	ShowAll     bool      // list every remaining candidate, not a sample
	Version     string    // shown in the interactive header
}

// Renderer owns the user-facing half of a solving session.
type Renderer struct {
	session *solver.Session
	dict    *words.Dictionary

	in          *bufio.Scanner
	out         io.Writer
	interactive bool
	showAll     bool
	version     string
	actions     []action
}

// action pairs a menu symbol with its handler. The handler reports whether
// the board changed.
type action struct {
	symbol string
	label  string
	run    func() (bool, error)
}

// New creates a Renderer around an existing session and its dictionary.
func New(session *solver.Session, dict *words.Dictionary, opts Options) *Renderer {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	r := &Renderer{
		session:     session,
		dict:        dict,
		in:          bufio.NewScanner(opts.In),
		out:         opts.Out,
		interactive: opts.Interactive,
		showAll:     opts.ShowAll,
		version:     opts.Version,
	}
	r.actions = []action{
		{"S", "Suggestion", r.actionSuggestion},
		{"R", "Remaining Words", r.actionRemaining},
		{"G", "Add Guess", r.actionGuess},
		{"Q", "Quit", r.actionQuit},
	}
	return r
}

// Solve runs the interactive loop until the game is complete, input ends, or
// the user quits.
func (r *Renderer) Solve() error {
	if !r.interactive {
		return fmt.Errorf("%s solve mode needs an interactive terminal", program)
	}

	r.header()
	dirty := true
	for !r.session.Complete() {
		if dirty {
			r.board()
		}
		line, ok := r.prompt("> ")
		if !ok {
			return nil
		}
		act := r.lookupAction(line)
		if act == nil {
			continue
		}
		changed, err := act.run()
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		dirty = changed
		fmt.Fprintln(r.out)
	}
	r.endgame()
	return nil
}

// Suggest prints a single suggested guess: bare on a pipe, phrased on a
// terminal.
func (r *Renderer) Suggest() error {
	guess, err := r.session.Suggest()
	if err != nil {
		return err
	}
	if !r.interactive {
		fmt.Fprintln(r.out, guess)
		return nil
	}
	fmt.Fprintf(r.out, "Try '%s'\n", color.HiYellowString(guess))
	return nil
}

// Remaining prints the candidate words left: one per line on a pipe, a
// space-joined sample on a terminal.
func (r *Renderer) Remaining() {
	ws := r.session.Remaining()
	if !r.interactive {
		for _, w := range ws {
			fmt.Fprintln(r.out, w)
		}
		return
	}
	r.printWords(ws)
}

func (r *Renderer) header() {
	fmt.Fprintf(r.out, "%s (v%s)\n", program, r.version)
	fmt.Fprintf(r.out, "| %s -> %s | %s -> %s | %s -> %s |\n",
		emojiCorrect, feedback.Correct.Symbol(),
		emojiPresent, feedback.Present.Symbol(),
		emojiAbsent, feedback.Absent.Symbol(),
	)
	legend := make([]string, 0, len(r.actions))
	for _, a := range r.actions {
		legend = append(legend, a.symbol+": "+a.label)
	}
	fmt.Fprintf(r.out, "| %s |\n\n", strings.Join(legend, " | "))
}

func (r *Renderer) board() {
	if r.session.Rounds() == 0 {
		return
	}
	for _, round := range r.session.History() {
		fmt.Fprintf(r.out, "%s | %s\n", emojiRow(round.Feedback), round.Guess)
	}
	fmt.Fprintf(r.out, "%s remaining\n", color.HiGreenString("%d", r.session.PoolSize()))
	if r.showAll && r.session.PoolSize() > 0 {
		r.printWords(r.session.Remaining())
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) endgame() {
	r.board()
	if r.session.State() == solver.StateExhausted {
		fmt.Fprintln(r.out, "Maximum guesses exceeded")
	}
	switch {
	case r.session.State() == solver.StateSolved:
		last := r.session.History()[r.session.Rounds()-1]
		fmt.Fprintf(r.out, "The answer is '%s'\n", color.HiGreenString(last.Guess))
	case r.session.PoolSize() == 1:
		fmt.Fprintf(r.out, "The answer is '%s'\n", color.HiGreenString(r.session.Remaining()[0]))
	case r.session.PoolSize() == 0:
		fmt.Fprintln(r.out, "No valid words remain, check your guesses and answers")
	}
}

// prompt writes label and reads one line. ok is false once input is closed.
func (r *Renderer) prompt(label string) (line string, ok bool) {
	fmt.Fprint(r.out, label)
	if !r.in.Scan() {
		fmt.Fprintln(r.out)
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

func (r *Renderer) lookupAction(input string) *action {
	symbol := strings.ToUpper(strings.TrimSpace(input))
	for i := range r.actions {
		if r.actions[i].symbol == symbol {
			return &r.actions[i]
		}
	}
	return nil
}

func (r *Renderer) actionSuggestion() (bool, error) {
	guess, err := r.session.Suggest()
	if errors.Is(err, solver.ErrManualOpener) {
		fmt.Fprintln(r.out, "Manual opener: add your first guess with G")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	fmt.Fprintf(r.out, "Try '%s'\n", color.HiYellowString(guess))

	fb, ok := r.promptFeedback()
	if !ok {
		return false, nil
	}
	if err := r.session.Record(guess, fb); err != nil {
		fmt.Fprintf(r.out, "'%s' was not accepted: %v\n", guess, err)
		return false, nil
	}
	return true, nil
}

func (r *Renderer) actionRemaining() (bool, error) {
	r.printWords(r.session.Remaining())
	return false, nil
}

func (r *Renderer) actionGuess() (bool, error) {
	guess, ok := r.prompt("guess: ")
	if !ok {
		return false, nil
	}
	if err := r.session.CheckGuess(guess); err != nil {
		fmt.Fprintf(r.out, "'%s' is not a valid guess\n", color.HiRedString(guess))
		return false, nil
	}
	fb, ok := r.promptFeedback()
	if !ok {
		return false, nil
	}
	if err := r.session.Record(guess, fb); err != nil {
		fmt.Fprintf(r.out, "'%s' is not a valid guess\n", color.HiRedString(guess))
		return false, nil
	}
	return true, nil
}

func (r *Renderer) actionQuit() (bool, error) {
	return false, errQuit
}

// promptFeedback reads and parses one feedback line.
func (r *Renderer) promptFeedback() (feedback.Feedback, bool) {
	line, ok := r.prompt("answer: ")
	if !ok {
		return feedback.Feedback{}, false
	}
	fb, err := feedback.Parse(line)
	if err != nil {
		fmt.Fprintf(r.out, "'%s' is not a valid answer\n", color.HiRedString(line))
		return feedback.Feedback{}, false
	}
	return fb, true
}

// printWords lists words space-joined, sampling long lists unless show-all
// is on.
func (r *Renderer) printWords(ws []string) {
	if !r.showAll && len(ws) > sampleSize {
		fmt.Fprintf(r.out, "%s and %d more\n",
			strings.Join(ws[:sampleSize], " "), len(ws)-sampleSize)
		return
	}
	fmt.Fprintln(r.out, strings.Join(ws, " "))
}

// emojiRow renders one feedback as its five board glyphs.
func emojiRow(fb feedback.Feedback) string {
	var b strings.Builder
	for _, j := range fb {
		b.WriteString(emoji(j))
	}
	return b.String()
}

func emoji(j feedback.Judgement) string {
	switch j {
	case feedback.Correct:
		return emojiCorrect
	case feedback.Present:
		return emojiPresent
	default:
		return emojiAbsent
	}
}
