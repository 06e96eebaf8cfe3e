package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nadock/wordle-solver/internal/solver"
)

func TestSimulateRejectsUnknownTarget(t *testing.T) {
	d := dict(t, "crane", "slate", "brick")
	r, _, _ := testRenderer(t, d, solver.Options{}, Options{}, "")

	assert.ErrorContains(t, r.Simulate("zzzzz"), "not in the word list")
}

func TestSimulateSolvesImmediateHit(t *testing.T) {
	d := dict(t, "crane", "slate", "brick")
	r, s, out := testRenderer(t, d, solver.Options{OpenerWord: "crane"}, Options{}, "")

	require.NoError(t, r.Simulate("crane"))
	assert.Equal(t, solver.StateSolved, s.State())
	assert.Equal(t, 1, s.Rounds())
	assert.Contains(t, out.String(), "🟩🟩🟩🟩🟩 | crane (0 remaining)")
	assert.Contains(t, out.String(), "Solved 'crane' in 1 guesses")
}

func TestSimulatePlaysUntilSolved(t *testing.T) {
	// Opener misses, truthful feedback narrows to the target, round two wins.
	d := dict(t, "crane", "slate", "brick")
	r, s, out := testRenderer(t, d, solver.Options{OpenerWord: "crane"}, Options{}, "")

	require.NoError(t, r.Simulate("SLATE "))
	assert.Equal(t, solver.StateSolved, s.State())
	assert.Equal(t, 2, s.Rounds())
	assert.Contains(t, out.String(), "⬜⬜🟩⬜🟩 | crane (1 remaining)")
	assert.Contains(t, out.String(), "🟩🟩🟩🟩🟩 | slate (0 remaining)")
	assert.Contains(t, out.String(), "Solved 'slate' in 2 guesses")
}

func TestSimulateManualOpenerFails(t *testing.T) {
	d := dict(t, "crane", "slate", "brick")
	r, _, _ := testRenderer(t, d, solver.Options{Opener: solver.OpenerManual}, Options{}, "")

	err := r.Simulate("crane")
	assert.ErrorIs(t, err, solver.ErrManualOpener)
	assert.ErrorContains(t, err, "round 1")
}
