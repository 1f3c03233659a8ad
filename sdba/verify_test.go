package sdba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaHasNoTrapStates(t *testing.T) {
	_, g, skeleton := buildFaFixture()
	out, err := Build(g, skeleton)
	require.NoError(t, err)

	assert.True(t, IsNonDegenerate(out), "F a's tail always has a path back to an accepting edge")
	assert.Empty(t, TrapStates(out))
}

func TestGaDeadSinkIsATrap(t *testing.T) {
	_, g, skeleton := buildGaFixture()
	out, err := Build(g, skeleton)
	require.NoError(t, err)

	traps := TrapStates(out)
	assert.NotEmpty(t, traps, "falsifying a permanently must surface a non-accepting dead sink")
	assert.False(t, IsNonDegenerate(out))
}
