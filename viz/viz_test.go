package viz

import (
	"strings"
	"testing"

	"github.com/rfielding/ltl2sdba/label"
	"github.com/rfielding/ltl2sdba/sdba"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallAutomaton(t *testing.T) *sdba.Automaton {
	t.Helper()
	s := label.NewStore(1)
	a := s.Var(0)
	out := sdba.NewAutomaton(1, s, 1, []string{"q0"})
	out.AddEdge(0, 0, 0, s.Not(a))
	det := out.AddState()
	out.AddEdge(0, det, 1, a)
	out.AddEdge(det, det, 1, s.True())
	return out
}

func TestWriteDOTIncludesEveryEdge(t *testing.T) {
	a := smallAutomaton(t)
	var sb strings.Builder
	require.NoError(t, WriteDOT(a, &sb))
	out := sb.String()
	assert.True(t, strings.HasPrefix(out, "digraph sdba {"))
	assert.Contains(t, out, "__init ->")
	assert.Equal(t, 3, strings.Count(out, "->")-1) // edges + the init arrow
}

func TestWriteMermaidMarksDeterministicTail(t *testing.T) {
	a := smallAutomaton(t)
	var sb strings.Builder
	require.NoError(t, WriteMermaid(a, &sb))
	out := sb.String()
	assert.True(t, strings.HasPrefix(out, "stateDiagram-v2"))
	assert.Contains(t, out, "[*] -->")
	assert.Contains(t, out, "deterministic tail")
}

func TestWriteMermaidCanSuppressLabels(t *testing.T) {
	a := smallAutomaton(t)
	var sb strings.Builder
	require.NoError(t, WriteMermaid(a, &sb, WithLabels(false)))
	out := sb.String()
	assert.NotContains(t, out, "¬x0")
}

func TestWithStateDescriberOverridesNames(t *testing.T) {
	a := smallAutomaton(t)
	var sb strings.Builder
	require.NoError(t, WriteDOT(a, &sb, WithStateDescriber(func(q int) string { return "S" + string(rune('0'+q)) })))
	assert.Contains(t, sb.String(), `"S0"`)
}
