package sdba

import (
	"strconv"

	"github.com/rfielding/ltl2sdba/kripke"
)

// toKripkeGraph forgets edge labels and acceptance detail beyond "has at
// least one accepting outgoing edge", and reduces an Automaton to the
// bare Kripke structure the CTL checker operates over: StateID is the
// decimal string of the state index.
func toKripkeGraph(a *Automaton) (*kripke.Graph, kripke.StateSet) {
	g := &kripke.Graph{
		States: make([]kripke.StateID, a.NumStates()),
		Succ:   make(map[kripke.StateID][]kripke.StateID, a.NumStates()),
	}
	hasAccepting := kripke.NewStateSet()
	for src := 0; src < a.NumStates(); src++ {
		id := kripke.StateID(strconv.Itoa(src))
		g.States[src] = id
		edges := a.Edges(src)
		succs := make([]kripke.StateID, 0, len(edges))
		for _, e := range edges {
			succs = append(succs, kripke.StateID(strconv.Itoa(e.Dst)))
			if e.Acc == 1 {
				hasAccepting.Add(id)
			}
		}
		g.Succ[id] = succs
	}
	return g, hasAccepting
}

// TrapStates reports every state from which no accepting edge is ever
// reachable (the complement of EF accepting). A formula whose residual
// obligation becomes permanently unsatisfiable legitimately produces traps
// — e.g. G a's deterministic tail sinks into one the moment a turns false —
// so this is a diagnostic, not a pass/fail invariant: callers use it to
// confirm a trap appears exactly where the formula's semantics demand one,
// not to assert traps never occur.
func TrapStates(a *Automaton) []string {
	if a.NumStates() == 0 {
		return nil
	}
	g, accepting := toKripkeGraph(a)
	canReachAccepting := (kripke.EF{F: kripke.Atom{States: accepting}}).Sat(g)

	var traps []string
	for src := 0; src < a.NumStates(); src++ {
		id := kripke.StateID(strconv.Itoa(src))
		if !canReachAccepting.Has(id) {
			traps = append(traps, a.stateLabel(src))
		}
	}
	return traps
}

// IsNonDegenerate reports whether every state can eventually reach an
// accepting edge (no traps at all) — true exactly when AG EF accepting
// holds over the whole automaton.
func IsNonDegenerate(a *Automaton) bool {
	return len(TrapStates(a)) == 0
}

func (a *Automaton) stateLabel(q int) string {
	if q < len(a.StateNames) {
		return a.StateNames[q]
	}
	return "q" + strconv.Itoa(q)
}
