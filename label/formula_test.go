package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashConsingIdentity(t *testing.T) {
	s := NewStore(4)

	a1 := s.And(s.Var(0), s.Var(1))
	a2 := s.And(s.Var(1), s.Var(0))
	assert.Same(t, a1, a2, "commutative And must intern to the same node")

	o1 := s.Or(s.Var(0), s.Var(0), s.Var(1))
	o2 := s.Or(s.Var(1), s.Var(0))
	assert.Same(t, o1, o2, "duplicate operands must be deduplicated")
}

func TestConstantAbsorption(t *testing.T) {
	s := NewStore(2)

	assert.Same(t, s.False(), s.And(s.Var(0), s.False()))
	assert.Same(t, s.True(), s.Or(s.Var(0), s.True()))
	assert.Same(t, s.Var(0), s.And(s.Var(0), s.True()))
	assert.Same(t, s.Var(0), s.Or(s.Var(0), s.False()))
}

func TestDoubleNegation(t *testing.T) {
	s := NewStore(1)
	v := s.Var(0)
	assert.Same(t, v, s.Not(s.Not(v)))
	assert.Same(t, s.False(), s.Not(s.True()))
	assert.Same(t, s.True(), s.Not(s.False()))
}

func TestImplies(t *testing.T) {
	s := NewStore(3)
	a, b, c := s.Var(0), s.Var(1), s.Var(2)

	require.True(t, s.Implies(s.False(), a))
	require.True(t, s.Implies(a, s.True()))
	require.True(t, s.Implies(s.And(a, b), a))
	require.False(t, s.Implies(a, b))
	require.True(t, s.Implies(s.And(a, b), s.Or(b, c)))
	require.True(t, s.Implies(a, s.Or(a, b)))
}

func TestAlphabetIsExhaustiveAndExact(t *testing.T) {
	s := NewStore(2)
	letters := s.Alphabet(2)
	require.Len(t, letters, 4)

	// Every pair of distinct letters is mutually exclusive.
	for i := range letters {
		for j := range letters {
			if i == j {
				continue
			}
			conj := s.And(letters[i], letters[j])
			assert.False(t, s.Sat(conj), "letters %d and %d must be disjoint", i, j)
		}
	}

	// Disjunction of all letters is a tautology.
	all := s.Or(letters...)
	assert.True(t, s.Equivalent(all, s.True()))
}
