package sdba

import "github.com/rfielding/ltl2sdba/label"

// isStructurallyDeterministic reports whether every state of a has, for
// every pair of distinct outgoing edges, mutually exclusive labels (so at
// most one edge fires per letter). This is the structural test behind both
// the early-out shortcut (applied to the nondeterministic skeleton alone, before
// any deterministic tail is built) and the final Deterministic property-bit
// (applied to the whole assembled automaton).
func isStructurallyDeterministic(a *Automaton) bool {
	for src := 0; src < a.NumStates(); src++ {
		edges := a.Edges(src)
		for i := 0; i < len(edges); i++ {
			for j := i + 1; j < len(edges); j++ {
				if a.Store.Sat(a.Store.And(edges[i].Label, edges[j].Label)) {
					return false
				}
			}
		}
	}
	return true
}

// isAlphabetComplete reports whether every state's outgoing edges disjoin to
// a tautology: exactly one outgoing transition covering every letter means,
// in particular, that the disjunction of all labels is true.
func isAlphabetComplete(a *Automaton) bool {
	for src := 0; src < a.NumStates(); src++ {
		edges := a.Edges(src)
		if len(edges) == 0 {
			return false
		}
		labels := make([]*label.Formula, len(edges))
		for i, e := range edges {
			labels[i] = e.Label
		}
		if !a.Store.Equivalent(a.Store.Or(labels...), a.Store.True()) {
			return false
		}
	}
	return true
}

// tryShortcut implements the early-out: if the nondeterministic skeleton
// is already structurally deterministic AND alphabet-complete, it already
// qualifies as a (trivial) SDBA on its own — the whole automaton is its own
// deterministic part — and no breakpoint construction is needed.
// Completeness is required too: a skeleton missing transitions for some
// letter is not yet a valid standalone automaton regardless of how
// deterministic the edges it does have are. Acceptance on the skeleton is
// reinterpreted from co-Büchi to Büchi without changing any numeric mark: an
// edge tagged accepting in the source sense is accepting in the output.
func tryShortcut(skeleton *Automaton) (*Automaton, bool) {
	if !isStructurallyDeterministic(skeleton) || !isAlphabetComplete(skeleton) {
		return nil, false
	}
	out := cloneAutomaton(skeleton)
	out.Deterministic = true
	out.Complete = true
	return out, true
}

func cloneAutomaton(a *Automaton) *Automaton {
	out := NewAutomaton(a.AP, a.Store, a.NumNondet, a.StateNames)
	for src := 0; src < a.NumStates(); src++ {
		if src >= out.NumStates() {
			out.AddState()
		}
		for _, e := range a.Edges(src) {
			out.AddEdge(src, e.Dst, e.Acc, e.Label)
		}
	}
	return out
}

// finalize performs the closing steps over the fully-built automaton:
// strip the internal tag 2 back to 0, merge any edges that collided as a
// result, and compute the Deterministic/Complete property-bits.
func finalize(out *Automaton) {
	out.RecodeAcceptance(2, 0)
	out.MergeParallelEdges()
	out.Deterministic = isStructurallyDeterministic(out)
	out.Complete = isAlphabetComplete(out)
}
