package equiv

import (
	"testing"

	"github.com/rfielding/ltl2sdba/label"
	"github.com/rfielding/ltl2sdba/sdba"
	"github.com/rfielding/ltl2sdba/vwaa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFa mirrors sdba's own "F a" fixture: q0 self-loops on ¬a and
// transitions to TT (accepting) on a; TT self-loops on true.
func buildFa(t *testing.T) (*label.Store, *vwaa.Graph, *sdba.Automaton) {
	t.Helper()
	s := label.NewStore(1)
	a := s.Var(0)

	g := vwaa.NewGraph(2, 1, 1)
	g.AddEdge(0, vwaa.Edge{Label: s.Not(a), Dests: []int{0}, Acc: 0})
	g.AddEdge(0, vwaa.Edge{Label: a, Dests: []int{1}, Acc: 1})
	g.AddEdge(1, vwaa.Edge{Label: s.True(), Dests: []int{1}, Acc: 0})

	skeleton := sdba.NewAutomaton(1, s, 1, []string{"0"})
	skeleton.AddEdge(0, 0, 0, s.Not(a))

	out, err := sdba.Build(g, skeleton)
	require.NoError(t, err)
	return s, g, out
}

func TestAcceptsVWAAFaRequiresEventualA(t *testing.T) {
	s, g, _ := buildFa(t)
	alphabet := s.Alphabet(1)
	// Alphabet(1) enumerates letter 0 = ¬a, letter 1 = a (fixed bit order).
	notA, aIdx := 0, 1

	// ¬a forever: F a never holds.
	assert.False(t, AcceptsVWAA(g, s, alphabet, 0, Lasso{Loop: []int{notA}}))
	// a immediately, then anything: F a holds.
	assert.True(t, AcceptsVWAA(g, s, alphabet, 0, Lasso{Prefix: []int{aIdx}, Loop: []int{notA}}))
}

func TestCrossCheckFaAgrees(t *testing.T) {
	s, g, out := buildFa(t)
	alphabet := s.Alphabet(1)

	lassos := GenerateLassos(2, 2, 2)
	disagreements := CrossCheck(g, out, s, alphabet, lassos)
	assert.Empty(t, disagreements, "VWAA and constructed SDBA must agree on every sampled lasso")
}
