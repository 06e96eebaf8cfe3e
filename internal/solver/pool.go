// internal/solver/pool.go
//
// Candidate pool: the set of dictionary words still consistent with every
// (guess, feedback) pair recorded so far.
//
// The pool is a bitset over dictionary positions, so iteration always follows
// dictionary order (deterministic first-element fallback and tie-breaks),
// membership is a single bit test, and shrinking clears bits in place. The
// pool can only ever be a subset of the dictionary it was built from.

package solver

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/Nadock/wordle-solver/internal/words"
)

// Pool tracks the remaining candidate answers over a fixed Dictionary.
type Pool struct {
	dict *words.Dictionary
	set  *bitset.BitSet
}

// NewPool returns a Pool containing every dictionary word.
func NewPool(dict *words.Dictionary) *Pool {
	n := uint(dict.Len())
	set := bitset.New(n)
	set.FlipRange(0, n)
	return &Pool{dict: dict, set: set}
}

// Size returns the number of remaining candidates.
func (p *Pool) Size() int {
	return int(p.set.Count())
}

// Contains reports whether w is still a candidate.
func (p *Pool) Contains(w string) bool {
	i, ok := p.dict.Index(w)
	return ok && p.set.Test(uint(i))
}

// Words returns the remaining candidates in dictionary order.
func (p *Pool) Words() []string {
	out := make([]string, 0, p.Size())
	for i, ok := p.set.NextSet(0); ok; i, ok = p.set.NextSet(i + 1) {
		out = append(out, p.dict.At(int(i)))
	}
	return out
}

// First returns the first remaining candidate in dictionary order.
func (p *Pool) First() (string, bool) {
	i, ok := p.set.NextSet(0)
	if !ok {
		return "", false
	}
	return p.dict.At(int(i)), true
}
