package equiv

import (
	"github.com/rfielding/ltl2sdba/label"
	"github.com/rfielding/ltl2sdba/sdba"
	"github.com/rfielding/ltl2sdba/vwaa"
)

// vwaaSource adapts a VWAA's universally-branching alternating edges to
// transitionSource: each qualifying edge contributes its whole destination
// set, modeling the conjunctive (universal) branch.
type vwaaSource struct{ v vwaa.VWAA }

func (s vwaaSource) NumStates() int { return s.v.NumStates() }

func (s vwaaSource) MatchingEdges(q int, w *label.Formula, store *label.Store) []edgeChoice {
	var out []edgeChoice
	for _, e := range s.v.Edges(q) {
		if store.Implies(w, e.Label) {
			out = append(out, edgeChoice{Dests: e.Dests, Accepting: e.Acc == 1})
		}
	}
	return out
}

// automatonSource adapts a constructed Automaton's ordinary (single-
// destination) edges to transitionSource.
type automatonSource struct{ a *sdba.Automaton }

func (s automatonSource) NumStates() int { return s.a.NumStates() }

func (s automatonSource) MatchingEdges(q int, w *label.Formula, store *label.Store) []edgeChoice {
	var out []edgeChoice
	for _, e := range s.a.Edges(q) {
		if store.Implies(w, e.Label) {
			out = append(out, edgeChoice{Dests: []int{e.Dst}, Accepting: e.Acc == 1})
		}
	}
	return out
}

// AcceptsVWAA decides co-Büchi acceptance of lasso by v, starting from
// state q0, via alternating run-tree satisfaction.
func AcceptsVWAA(v vwaa.VWAA, store *label.Store, alphabet []*label.Formula, q0 int, lasso Lasso) bool {
	return accepts(vwaaSource{v}, store, alphabet, q0, lasso, false)
}

// AcceptsSDBA decides Büchi acceptance of lasso by a, starting from state
// q0 (conventionally 0), via its deterministic-in-Det edge semantics.
func AcceptsSDBA(a *sdba.Automaton, store *label.Store, alphabet []*label.Formula, q0 int, lasso Lasso) bool {
	return accepts(automatonSource{a}, store, alphabet, q0, lasso, true)
}

// Disagreement records one lasso on which the VWAA and the constructed SDBA
// disagreed about acceptance.
type Disagreement struct {
	Lasso     Lasso
	VWAAHolds bool
	SDBAHolds bool
}

// CrossCheck samples every lasso in lassos and returns every one on which
// v and a disagree. An empty result is the property-2 testable claim:
// language preservation on the sampled word space.
func CrossCheck(v vwaa.VWAA, a *sdba.Automaton, store *label.Store, alphabet []*label.Formula, lassos []Lasso) []Disagreement {
	var out []Disagreement
	for _, l := range lassos {
		vAccepts := AcceptsVWAA(v, store, alphabet, 0, l)
		aAccepts := AcceptsSDBA(a, store, alphabet, 0, l)
		if vAccepts != aAccepts {
			out = append(out, Disagreement{Lasso: l, VWAAHolds: vAccepts, SDBAHolds: aAccepts})
		}
	}
	return out
}
