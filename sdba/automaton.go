package sdba

import "github.com/rfielding/ltl2sdba/label"

// AEdge is one outgoing edge of the output Büchi automaton: a destination
// state, a label over the shared atomic-proposition space, and an
// acceptance mark (0 = non-accepting, 1 = accepting, 2 = internal
// not-yet-finalized tag that finalize rewrites to 0).
type AEdge struct {
	Dst   int
	Label *label.Formula
	Acc   int
}

// Automaton is the constructed output: a Büchi automaton graph with
// edge-based acceptance on set {0}. States [0, NumNondet) are the
// nondeterministic prefix carried over unchanged from the input; states
// [NumNondet, NumStates()) are the deterministic tail built by this package.
type Automaton struct {
	AP         int
	Store      *label.Store
	NumNondet  int
	StateNames []string // len == NumNondet

	// Deterministic and Complete are cleared by default and set only once
	// verified by finalize.
	Deterministic bool
	Complete      bool

	adj [][]AEdge
}

// NewAutomaton allocates an Automaton with nc nondeterministic-prefix
// states pre-created (their outgoing edges are filled in by the builder),
// named by names.
func NewAutomaton(ap int, store *label.Store, nc int, names []string) *Automaton {
	a := &Automaton{
		AP:         ap,
		Store:      store,
		NumNondet:  nc,
		StateNames: append([]string(nil), names...),
		adj:        make([][]AEdge, nc),
	}
	return a
}

// NumStates reports the total number of states, nondeterministic prefix plus
// deterministic tail.
func (a *Automaton) NumStates() int { return len(a.adj) }

// AddState appends a fresh state (used for the deterministic tail) and
// returns its index.
func (a *Automaton) AddState() int {
	id := len(a.adj)
	a.adj = append(a.adj, nil)
	return id
}

// Edges reports the outgoing edges of state src.
func (a *Automaton) Edges(src int) []AEdge { return a.adj[src] }

// AddEdge connects src -> dst under lbl with acceptance acc. If an edge with
// the same (src, dst, acc) already exists, lbl is merged into it by
// disjunction; otherwise a new edge is appended.
func (a *Automaton) AddEdge(src, dst, acc int, lbl *label.Formula) {
	for i, e := range a.adj[src] {
		if e.Dst == dst && e.Acc == acc {
			a.adj[src][i].Label = a.Store.Or(e.Label, lbl)
			return
		}
	}
	a.adj[src] = append(a.adj[src], AEdge{Dst: dst, Label: lbl, Acc: acc})
}

// RecodeAcceptance rewrites every acc==from edge to acc==to across the whole
// automaton (used to strip the internal tag 2 back to 0 during finalization).
func (a *Automaton) RecodeAcceptance(from, to int) {
	for src := range a.adj {
		for i := range a.adj[src] {
			if a.adj[src][i].Acc == from {
				a.adj[src][i].Acc = to
			}
		}
	}
}

// MergeParallelEdges merges edges sharing (src, dst, acc) by disjoining
// their labels. AddEdge already prevents duplicates going
// forward; this is for collapsing an automaton assembled by other means
// (e.g. after RecodeAcceptance unifies two previously-distinct acc values).
func (a *Automaton) MergeParallelEdges() {
	for src := range a.adj {
		merged := make([]AEdge, 0, len(a.adj[src]))
		index := make(map[[2]int]int)
		for _, e := range a.adj[src] {
			key := [2]int{e.Dst, e.Acc}
			if i, ok := index[key]; ok {
				merged[i].Label = a.Store.Or(merged[i].Label, e.Label)
				continue
			}
			index[key] = len(merged)
			merged = append(merged, e)
		}
		a.adj[src] = merged
	}
}
