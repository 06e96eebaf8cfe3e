// internal/solver/rank.go
//
// Guess ranking: choose the next guess from the candidate pool.
//
// Two heuristics:
//   - pairwise (default): score every guess-space word against every remaining
//     candidate answer and take the highest total. O(pool × space).
//   - unique: count distinct letters per remaining candidate. O(pool). Far less
//     discriminating; kept as the simpler compatible mode.
//
// Both are deterministic: ties break to the first maximal word in iteration
// order, and iteration order is dictionary order throughout.

package solver

import (
	"errors"
	"fmt"
	"strings"
)

// Heuristic selects the guess-scoring strategy.
type Heuristic string

const (
	HeuristicPairwise Heuristic = "pairwise"
	HeuristicUnique   Heuristic = "unique"
)

// ParseHeuristic maps a config/flag value to a Heuristic.
func ParseHeuristic(s string) (Heuristic, error) {
	switch Heuristic(strings.ToLower(strings.TrimSpace(s))) {
	case HeuristicPairwise:
		return HeuristicPairwise, nil
	case HeuristicUnique:
		return HeuristicUnique, nil
	}
	return "", fmt.Errorf("unknown heuristic %q", s)
}

// ErrEmptyPool is returned when ranking is requested with no candidates left,
// meaning the recorded feedback contradicts the dictionary.
var ErrEmptyPool = errors.New("no candidate words remain")

// Pairwise position scores.
const (
	scoreExact    = 5 // guess letter matches the answer at this position
	scorePresent  = 3 // guess letter occurs elsewhere in the answer
	scoreBaseline = 1 // guess letter not in the answer
	dupPenalty    = 1 // guess letter already used earlier in the guess
)

// Ranker selects the best next guess from a candidate pool.
type Ranker struct {
	// Heuristic picks the scoring strategy; the zero value means pairwise.
	Heuristic Heuristic
	// Progress, when non-nil, is called after each guess-space word is scored
	// by the pairwise heuristic. The unique heuristic is effectively instant
	// and never reports.
	Progress func(done, total int)
}

// Rank returns the best next guess for the remaining candidates in pool.
// space is the set of words allowed as guesses: the full dictionary in normal
// mode, the pool itself in hard mode. A pool of one word is returned directly.
func (r Ranker) Rank(pool, space []string) (string, error) {
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}
	if len(pool) == 1 {
		return pool[0], nil
	}
	if r.Heuristic == HeuristicUnique {
		return r.rankUnique(pool), nil
	}
	return r.rankPairwise(pool, space), nil
}

// rankPairwise sums pairScore over every (candidate, guess) pair and keeps
// the first guess with the maximum total.
func (r Ranker) rankPairwise(pool, space []string) string {
	// Letter presence per candidate, precomputed once.
	present := make([][26]bool, len(pool))
	for i, a := range pool {
		for j := 0; j < len(a); j++ {
			present[i][idx(a[j])] = true
		}
	}

	best, bestScore := "", -1
	for n, g := range space {
		total := 0
		for i, a := range pool {
			total += pairScore(a, &present[i], g)
		}
		if total > bestScore {
			best, bestScore = g, total
		}
		if r.Progress != nil {
			r.Progress(n+1, len(space))
		}
	}
	return best
}

// pairScore scores one guess against one candidate answer, scanning left to
// right. An exact match dominates its position: the duplicate penalty is
// waived there. Elsewhere a repeated guess letter costs dupPenalty before the
// present/baseline bonus is added.
func pairScore(a string, present *[26]bool, g string) int {
	var seen [26]bool
	score := 0
	for i := 0; i < len(g); i++ {
		c := g[i]
		j := idx(c)
		dup := seen[j]
		seen[j] = true

		if a[i] == c {
			score += scoreExact
			continue
		}
		if dup {
			score -= dupPenalty
		}
		if present[j] {
			score += scorePresent
		} else {
			score += scoreBaseline
		}
	}
	return score
}

// rankUnique keeps the first pool word with the most distinct letters.
func (r Ranker) rankUnique(pool []string) string {
	best, bestScore := "", -1
	for _, w := range pool {
		var seen [26]bool
		distinct := 0
		for i := 0; i < len(w); i++ {
			j := idx(w[i])
			if !seen[j] {
				seen[j] = true
				distinct++
			}
		}
		if distinct > bestScore {
			best, bestScore = w, distinct
		}
	}
	return best
}
