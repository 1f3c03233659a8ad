package kripke

import (
	"fmt"
	"io"
)

// NodeID is a simple identifier for states in diagrams.
// It is intentionally independent from whatever StateID the CTL layer uses.
type NodeID string

// SimpleGraph is a minimal explicit graph representation for diagrams.
type SimpleGraph struct {
	States []NodeID              // list of states
	Succ   map[NodeID][]NodeID   // successors
}

// EdgeLabeler returns the caption for one instance of the from->to edge,
// given its position i among possibly-several parallel edges sharing that
// pair. A nil EdgeLabeler draws unlabeled arrows.
type EdgeLabeler func(from, to NodeID, i int) string

// WriteMermaidStateDiagram writes a Mermaid stateDiagram-v2 representation
// of the given graph to w. "initial" is the starting state. label, if
// non-nil, captions each edge; parallel from->to edges (distinct calls at
// increasing i) are each drawn, not deduplicated away.
func WriteMermaidStateDiagram(g *SimpleGraph, initial NodeID, w io.Writer, label EdgeLabeler) error {
	fmt.Fprintln(w, "stateDiagram-v2")

	// Initial arrow
	fmt.Fprintf(w, "  [*] --> %s\n\n", initial)

	counts := make(map[string]int)

	for _, from := range g.States {
		for _, to := range g.Succ[from] {
			key := string(from) + "->" + string(to)
			i := counts[key]
			counts[key] = i + 1
			if label == nil {
				fmt.Fprintf(w, "  %s --> %s\n", from, to)
				continue
			}
			caption := label(from, to, i)
			if caption == "" {
				fmt.Fprintf(w, "  %s --> %s\n", from, to)
				continue
			}
			fmt.Fprintf(w, "  %s --> %s : %s\n", from, to, caption)
		}
	}

	return nil
}

