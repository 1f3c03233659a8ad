// Package viz renders a constructed Automaton as Graphviz DOT or Mermaid
// stateDiagram-v2 text, for inspection alongside (or in place of) the HOA
// format proper. Adapted from the diagram-writing idiom used for Kripke
// structures elsewhere in the example pack: a minimal explicit-graph writer
// plus a functional-options surface for labeling choices.
package viz

import (
	"fmt"
	"io"
	"strings"

	"github.com/rfielding/ltl2sdba/kripke"
	"github.com/rfielding/ltl2sdba/sdba"
)

// Option configures a writer's rendering choices.
type Option func(*options)

type options struct {
	showLabels bool
	describe   func(state int) string
}

func defaultOptions(a *sdba.Automaton) *options {
	return &options{
		showLabels: true,
		describe: func(state int) string {
			if state < len(a.StateNames) {
				return a.StateNames[state]
			}
			return fmt.Sprintf("q%d", state)
		},
	}
}

// WithLabels toggles whether edge guards are printed (default on).
func WithLabels(show bool) Option {
	return func(o *options) { o.showLabels = show }
}

// WithStateDescriber overrides how a state index is rendered as a node name.
func WithStateDescriber(f func(state int) string) Option {
	return func(o *options) { o.describe = f }
}

func edgeCaption(a *sdba.Automaton, e sdba.AEdge, o *options) string {
	if !o.showLabels {
		if e.Acc == 1 {
			return "!"
		}
		return ""
	}
	caption := e.Label.String()
	if e.Acc == 1 {
		caption += " !"
	}
	return caption
}

// WriteDOT renders a as Graphviz DOT. Accepting edges (Acc == 1) are drawn
// bold with a trailing "!" mark, matching the acceptance-mark convention
// used throughout the package.
func WriteDOT(a *sdba.Automaton, w io.Writer, opts ...Option) error {
	o := defaultOptions(a)
	for _, opt := range opts {
		opt(o)
	}

	fmt.Fprintln(w, "digraph sdba {")
	fmt.Fprintln(w, "  rankdir=LR;")
	fmt.Fprintln(w, "  __init [shape=point];")
	if a.NumStates() > 0 {
		fmt.Fprintf(w, "  __init -> %q;\n", o.describe(0))
	}
	for src := 0; src < a.NumStates(); src++ {
		shape := "circle"
		if src >= a.NumNondet {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "  %q [shape=%s];\n", o.describe(src), shape)
	}
	for src := 0; src < a.NumStates(); src++ {
		for _, e := range a.Edges(src) {
			style := "solid"
			if e.Acc == 1 {
				style = "bold"
			}
			caption := edgeCaption(a, e, o)
			fmt.Fprintf(w, "  %q -> %q [label=%q, style=%s];\n",
				o.describe(src), o.describe(e.Dst), caption, style)
		}
	}
	fmt.Fprintln(w, "}")
	return nil
}

// WriteMermaid renders a as a Mermaid stateDiagram-v2 block, built atop the
// shared Kripke-graph diagram writer: Automaton states/edges are reduced to
// a SimpleGraph, with edge captions supplied back through an EdgeLabeler so
// parallel edges (e.g. one accepting, one not, to the same destination)
// each still get their own label. The deterministic tail (states
// [NumNondet, NumStates())) is flagged with a trailing note so a reader can
// see where the alternation-free part begins.
func WriteMermaid(a *sdba.Automaton, w io.Writer, opts ...Option) error {
	o := defaultOptions(a)
	for _, opt := range opts {
		opt(o)
	}

	g := &kripke.SimpleGraph{
		States: make([]kripke.NodeID, a.NumStates()),
		Succ:   make(map[kripke.NodeID][]kripke.NodeID, a.NumStates()),
	}
	// edgesByPair mirrors the per-(from,to) edge order SimpleGraph.Succ is
	// built in, so the EdgeLabeler below can look up the i-th edge's
	// caption by position instead of re-deriving identity from names alone.
	edgesByPair := make(map[[2]string][]sdba.AEdge)
	for src := 0; src < a.NumStates(); src++ {
		from := kripke.NodeID(sanitize(o.describe(src)))
		g.States[src] = from
		for _, e := range a.Edges(src) {
			to := kripke.NodeID(sanitize(o.describe(e.Dst)))
			g.Succ[from] = append(g.Succ[from], to)
			key := [2]string{string(from), string(to)}
			edgesByPair[key] = append(edgesByPair[key], e)
		}
	}

	labeler := func(from, to kripke.NodeID, i int) string {
		key := [2]string{string(from), string(to)}
		es := edgesByPair[key]
		if i >= len(es) {
			return ""
		}
		return edgeCaption(a, es[i], o)
	}

	if a.NumStates() == 0 {
		fmt.Fprintln(w, "stateDiagram-v2")
		return nil
	}
	if err := kripke.WriteMermaidStateDiagram(g, kripke.NodeID(sanitize(o.describe(0))), w, labeler); err != nil {
		return err
	}

	if a.NumNondet < a.NumStates() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  note right of "+sanitize(o.describe(a.NumNondet))+" : deterministic tail")
	}
	return nil
}

// sanitize strips characters Mermaid's state-diagram parser treats
// specially out of a node name (it otherwise accepts the same names DOT
// does, so WriteDOT needs no equivalent).
func sanitize(name string) string {
	r := strings.NewReplacer(" ", "_", ":", "_", "\"", "'")
	return r.Replace(name)
}
