// Package vwaa provides a read-only view over a very-weak alternating
// automaton with self-loops (VWAA/SLAA) — the input to the SDBA
// construction in package sdba — plus the Qmay/Qmust state classifier.
package vwaa

import "github.com/rfielding/ltl2sdba/label"

// Edge is one universal-branching alternating edge (q, label, dests, acc).
// acc is 0 (non-accepting) or 1 (accepting in the co-Büchi source sense)
// before classification, and 0 or 2 after (see Classify).
type Edge struct {
	Label *label.Formula
	Dests []int
	Acc   int
}

// VWAA is a read-only view of a very-weak alternating automaton with
// self-loops. States are identified by their decimal index; callers must
// present state names already rewritten to decimal form (the builder that
// produces a VWAA from LTL is responsible for that renumbering, which is
// out of scope here).
type VWAA interface {
	// NumStates reports |Q|.
	NumStates() int
	// TT reports the index of the distinguished true state.
	TT() int
	// Edges reports the outgoing alternating edges of state q.
	Edges(q int) []Edge
	// AP reports the number of atomic propositions the label algebra was
	// built over.
	AP() int
}

// Graph is a simple in-memory VWAA, suitable for fixtures and tests: an
// arena of states indexed by handle, each with its own edge list.
type Graph struct {
	ap     int
	tt     int
	states [][]Edge
}

// NewGraph allocates an empty Graph with n states and ap atomic
// propositions. State names are implicitly n's decimal indices.
func NewGraph(n, ap, tt int) *Graph {
	return &Graph{ap: ap, tt: tt, states: make([][]Edge, n)}
}

// AddEdge appends an alternating edge out of q.
func (g *Graph) AddEdge(q int, e Edge) {
	g.states[q] = append(g.states[q], e)
}

func (g *Graph) NumStates() int      { return len(g.states) }
func (g *Graph) TT() int             { return g.tt }
func (g *Graph) AP() int             { return g.ap }
func (g *Graph) Edges(q int) []Edge  { return g.states[q] }
