package sdba

import (
	"testing"

	"github.com/rfielding/ltl2sdba/label"
	"github.com/rfielding/ltl2sdba/vwaa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFaFixture constructs the VWAA and nondeterministic-prefix skeleton
// for "F a" (S1): q0 self-loops on ¬a (non-accepting) and transitions to TT
// on a (accepting); TT self-loops on true. The skeleton exposes a single
// nondeterministic state named "0", with its self-loop on ¬a already wired
// (the alternation-removal output that this package treats as external).
func buildFaFixture() (*label.Store, *vwaa.Graph, *Automaton) {
	s := label.NewStore(1)
	a := s.Var(0)

	g := vwaa.NewGraph(2, 1, 1)
	g.AddEdge(0, vwaa.Edge{Label: s.Not(a), Dests: []int{0}, Acc: 0})
	g.AddEdge(0, vwaa.Edge{Label: a, Dests: []int{1}, Acc: 1})
	g.AddEdge(1, vwaa.Edge{Label: s.True(), Dests: []int{1}, Acc: 0})

	skeleton := NewAutomaton(1, s, 1, []string{"0"})
	skeleton.AddEdge(0, 0, 0, s.Not(a))

	return s, g, skeleton
}

// buildGaFixture constructs "G a" (S2): a single VWAA state self-looping on
// a, non-accepting in the co-Büchi sense (rejection only on ever leaving the
// loop, which this minimal VWAA has no edge for).
func buildGaFixture() (*label.Store, *vwaa.Graph, *Automaton) {
	s := label.NewStore(1)
	a := s.Var(0)

	g := vwaa.NewGraph(1, 1, 0)
	g.AddEdge(0, vwaa.Edge{Label: a, Dests: []int{0}, Acc: 0})

	skeleton := NewAutomaton(1, s, 1, []string{"0"})
	skeleton.AddEdge(0, 0, 0, a)

	return s, g, skeleton
}

func TestBuildFaProducesAcceptingDeterministicTail(t *testing.T) {
	_, g, skeleton := buildFaFixture()

	out, err := Build(g, skeleton)
	require.NoError(t, err)

	require.Greater(t, out.NumStates(), out.NumNondet, "deterministic tail must be non-empty")

	sawAccepting := false
	for src := out.NumNondet; src < out.NumStates(); src++ {
		for _, e := range out.Edges(src) {
			if e.Acc == 1 {
				sawAccepting = true
			}
			assert.NotEqual(t, 2, e.Acc, "finalization must strip the internal tag 2")
		}
	}
	assert.True(t, sawAccepting, "F a must reach an accepting transition")

	for src := 0; src < out.NumNondet; src++ {
		for _, e := range out.Edges(src) {
			assert.Equal(t, 0, e.Acc, "nondeterministic-prefix edges are never accepting")
		}
	}
}

func TestBuildGaBreakpointFires(t *testing.T) {
	_, g, skeleton := buildGaFixture()

	out, err := Build(g, skeleton)
	require.NoError(t, err)

	sawAccepting := false
	for src := out.NumNondet; src < out.NumStates(); src++ {
		for _, e := range out.Edges(src) {
			if e.Acc == 1 {
				sawAccepting = true
			}
		}
	}
	assert.True(t, sawAccepting, "G a must produce a breakpoint-resolved accepting self-loop")
}

func TestDeterministicTailIsPerLetterDeterministic(t *testing.T) {
	_, g, skeleton := buildFaFixture()
	out, err := Build(g, skeleton)
	require.NoError(t, err)

	for src := out.NumNondet; src < out.NumStates(); src++ {
		edges := out.Edges(src)
		for i := 0; i < len(edges); i++ {
			for j := i + 1; j < len(edges); j++ {
				assert.False(t, out.Store.Sat(out.Store.And(edges[i].Label, edges[j].Label)),
					"deterministic state %d has overlapping outgoing labels", src)
			}
		}
	}
}

func TestDeterministicTailIsAlphabetComplete(t *testing.T) {
	_, g, skeleton := buildFaFixture()
	out, err := Build(g, skeleton)
	require.NoError(t, err)

	for src := out.NumNondet; src < out.NumStates(); src++ {
		edges := out.Edges(src)
		require.NotEmpty(t, edges)
		labels := make([]*label.Formula, len(edges))
		for i, e := range edges {
			labels[i] = e.Label
		}
		assert.True(t, out.Store.Equivalent(out.Store.Or(labels...), out.Store.True()))
	}
}

func TestBuildIsDeterministicAcrossRuns(t *testing.T) {
	_, g1, skeleton1 := buildFaFixture()
	_, g2, skeleton2 := buildFaFixture()

	out1, err := Build(g1, skeleton1)
	require.NoError(t, err)
	out2, err := Build(g2, skeleton2)
	require.NoError(t, err)

	assert.Equal(t, out1.NumStates(), out2.NumStates())
	for src := 0; src < out1.NumStates(); src++ {
		assert.Equal(t, len(out1.Edges(src)), len(out2.Edges(src)))
	}
}

func TestShortcutReturnsSkeletonUnchanged(t *testing.T) {
	// A skeleton that is already fully deterministic (disjoint labels per
	// state) must be returned as-is, with no deterministic tail appended.
	s := label.NewStore(1)
	a := s.Var(0)
	g := vwaa.NewGraph(1, 1, 0)
	g.AddEdge(0, vwaa.Edge{Label: s.True(), Dests: []int{0}, Acc: 0})

	skeleton := NewAutomaton(1, s, 1, []string{"0"})
	skeleton.AddEdge(0, 0, 1, a)
	skeleton.AddEdge(0, 0, 0, s.Not(a))

	out, err := Build(g, skeleton)
	require.NoError(t, err)

	assert.Equal(t, skeleton.NumStates(), out.NumStates())
	assert.True(t, out.Deterministic)
}

func TestParseConfiguration(t *testing.T) {
	c, err := ParseConfiguration("3,5,7")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5, 7}, c.States)
	assert.False(t, c.IsSink)

	sink, err := ParseConfiguration("{}")
	require.NoError(t, err)
	assert.True(t, sink.IsSink)

	_, err = ParseConfiguration("3,x,7")
	require.ErrorIs(t, err, ErrMalformedConfiguration)
}
