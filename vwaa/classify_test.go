package vwaa

import (
	"testing"

	"github.com/rfielding/ltl2sdba/label"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFa builds the VWAA for "F a" (S1): q0 self-loops on ¬a (non-accepting),
// and transitions to TT on a; TT self-loops on true.
func buildFa(s *label.Store) *Graph {
	g := NewGraph(2, 1, 1)
	a := s.Var(0)
	g.AddEdge(0, Edge{Label: s.Not(a), Dests: []int{0}, Acc: 0})
	g.AddEdge(0, Edge{Label: a, Dests: []int{1}, Acc: 1})
	g.AddEdge(1, Edge{Label: s.True(), Dests: []int{1}, Acc: 0})
	return g
}

func TestClassifyFa(t *testing.T) {
	s := label.NewStore(1)
	g := buildFa(s)
	c := Classify(g)

	assert.True(t, c.IsQmay(0), "q0 has a non-accepting self-loop on ¬a")
	assert.False(t, c.IsQmust(0), "q0's a-edge leaves to TT, not a self-loop")
	assert.True(t, c.IsQmust(1), "TT's only edge self-loops")
	assert.True(t, c.IsQmay(1), "TT's self-loop is non-accepting")

	// Original is untouched: its acceptance marks are still {0,1}.
	orig := g.Edges(0)
	require.Len(t, orig, 2)
	assert.Equal(t, 1, orig[1].Acc)

	// The working copy recodes 1 -> 2.
	recoded := c.Edges(0)
	require.Len(t, recoded, 2)
	assert.Equal(t, 2, recoded[1].Acc)
	assert.Equal(t, 0, recoded[0].Acc)
}

func TestClassifyGa(t *testing.T) {
	// "G a": single state q0 self-looping on a with acceptance 0 (co-Büchi:
	// the only rejecting thing is ever leaving the loop, which this VWAA
	// has no edge for once restricted to the a-guarded self-loop alone).
	s := label.NewStore(1)
	a := s.Var(0)
	g := NewGraph(1, 1, 0)
	g.AddEdge(0, Edge{Label: a, Dests: []int{0}, Acc: 0})
	c := Classify(g)

	assert.True(t, c.IsQmay(0))
	assert.True(t, c.IsQmust(0))
}
