package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nadock/wordle-solver/internal/feedback"
	"github.com/Nadock/wordle-solver/internal/words"
)

func dict(t *testing.T, ws ...string) *words.Dictionary {
	t.Helper()
	d, err := words.New(ws)
	require.NoError(t, err)
	return d
}

func fb(t *testing.T, text string) feedback.Feedback {
	t.Helper()
	f, err := feedback.Parse(text)
	require.NoError(t, err)
	return f
}

func TestPoolStartsFull(t *testing.T) {
	d := dict(t, "crane", "slate", "brick")
	p := NewPool(d)

	assert.Equal(t, 3, p.Size())
	assert.Equal(t, []string{"crane", "slate", "brick"}, p.Words())
	assert.True(t, p.Contains("slate"))

	first, ok := p.First()
	require.True(t, ok)
	assert.Equal(t, "crane", first)
}

func TestReduceTruthfulFeedback(t *testing.T) {
	// Guess "apple" against hidden answer "ample" judges YNYYY: the second p
	// scores Absent because the answer's only p is claimed by the exact match.
	// That narrows three candidates down to the answer alone.
	d := dict(t, "apple", "ample", "amble")
	p := NewPool(d)

	left := p.Reduce("apple", feedback.Judge("ample", "apple"))
	assert.Equal(t, 1, left)
	assert.Equal(t, []string{"ample"}, p.Words())
}

func TestReduceContradictoryFeedback(t *testing.T) {
	// Correct,Correct,Absent,Correct,Absent for "apple" is not truthful for
	// any of these words: the Correct p in the second slot is satisfied only
	// by the guess itself, and the guess is never a candidate. The pool
	// empties, flagging the contradiction for the next ranking request.
	d := dict(t, "apple", "ample", "amble")
	p := NewPool(d)

	left := p.Reduce("apple", fb(t, "YYNYN"))
	assert.Equal(t, 0, left)

	_, ok := p.First()
	assert.False(t, ok)
}

func TestConsistentDuplicateLetterRule(t *testing.T) {
	// "sassy" vs answer "glass" judges IINYN: one s present, one s correct,
	// the third s absent. Candidates may hold at most two s's.
	judged := feedback.Judge("glass", "sassy")
	require.Equal(t, "IINYN", judged.String())

	assert.True(t, Consistent("glass", "sassy", judged))
	assert.True(t, Consistent("amass", "sassy", judged))

	// Three or more s's exceed the confirmed count.
	assert.False(t, Consistent("assss", "sassy", judged))
	// Present position must not keep the letter in place.
	assert.False(t, Consistent("slash", "sassy", judged))
	// The guess itself is never consistent.
	assert.False(t, Consistent("sassy", "sassy", judged))
}

func TestConsistentAbsentMeansGone(t *testing.T) {
	// No confirmed occurrences: the letter may not appear at all.
	f := fb(t, "NNNNN")
	assert.False(t, Consistent("crane", "czzzz", f))
	assert.True(t, Consistent("moist", "czzzz", f))
}

func TestReduceMonotonicShrink(t *testing.T) {
	d := dict(t,
		"crane", "slate", "brick", "moist", "pearl",
		"sound", "glass", "sassy", "amble", "ample",
	)
	p := NewPool(d)

	prev := p.Size()
	for _, round := range []struct{ guess, answer string }{
		{"crane", "pearl"},
		{"slate", "pearl"},
		{"moist", "pearl"},
	} {
		left := p.Reduce(round.guess, feedback.Judge(round.answer, round.guess))
		assert.LessOrEqual(t, left, prev)
		prev = left
	}
}

func TestReduceSoundness(t *testing.T) {
	// Truthful feedback never removes the hidden answer.
	wordsList := []string{"crane", "slate", "brick", "moist", "pearl", "glass", "sassy"}
	d := dict(t, wordsList...)

	for _, answer := range wordsList {
		for _, guess := range wordsList {
			if guess == answer {
				continue
			}
			p := NewPool(d)
			p.Reduce(guess, feedback.Judge(answer, guess))
			assert.True(t, p.Contains(answer), "answer %q dropped after guess %q", answer, guess)
		}
	}
}

func TestReduceAllCorrectEmptiesPool(t *testing.T) {
	// All-Correct feedback leaves no candidates: only the guess matches every
	// position and the guess itself is excluded. The session is terminal at
	// that point, so the pool is never consulted again.
	d := dict(t, "crane", "slate")
	p := NewPool(d)

	left := p.Reduce("crane", fb(t, "YYYYY"))
	assert.Equal(t, 0, left)
}
