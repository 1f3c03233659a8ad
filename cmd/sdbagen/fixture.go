package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rfielding/ltl2sdba/label"
	"github.com/rfielding/ltl2sdba/sdba"
	"github.com/rfielding/ltl2sdba/vwaa"
)

// jsonEdge is one VWAA or skeleton edge as it appears in a fixture file.
// Label is a tiny boolean expression over the fixture's named atoms: "true",
// "false", an atom name, "!e", "e1&e2", "e1|e2", or "(e)" (& binds tighter
// than |, both left-associative; unary ! binds tightest).
type jsonEdge struct {
	Src   int    `json:"src"`
	Dst   []int  `json:"dst"`
	Label string `json:"label"`
	Acc   int    `json:"acc"`
}

// jsonFixture is the on-disk shape of an `sdbagen build` input.
type jsonFixture struct {
	Atoms         []string   `json:"atoms"`
	VWAAStates    int        `json:"vwaaStates"`
	VWAATT        int        `json:"vwaaTT"`
	VWAAEdges     []jsonEdge `json:"vwaaEdges"`
	SkeletonSize  int        `json:"skeletonStates"`
	StateNames    []string   `json:"stateNames"`
	SkeletonEdges []jsonEdge `json:"skeletonEdges"`
}

func loadFixture(path string) (*label.Store, vwaa.VWAA, *sdba.Automaton, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read fixture: %w", err)
	}
	var f jsonFixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, nil, nil, fmt.Errorf("parse fixture: %w", err)
	}

	store := label.NewStore(len(f.Atoms))
	atomIdx := make(map[string]int, len(f.Atoms))
	for i, name := range f.Atoms {
		atomIdx[name] = i
	}
	parse := func(expr string) (*label.Formula, error) {
		return parseLabel(store, atomIdx, expr)
	}

	g := vwaa.NewGraph(f.VWAAStates, len(f.Atoms), f.VWAATT)
	for _, e := range f.VWAAEdges {
		lbl, err := parse(e.Label)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("vwaa edge %d label %q: %w", e.Src, e.Label, err)
		}
		g.AddEdge(e.Src, vwaa.Edge{Label: lbl, Dests: e.Dst, Acc: e.Acc})
	}

	skeleton := sdba.NewAutomaton(len(f.Atoms), store, f.SkeletonSize, f.StateNames)
	for _, e := range f.SkeletonEdges {
		lbl, err := parse(e.Label)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("skeleton edge %d label %q: %w", e.Src, e.Label, err)
		}
		if len(e.Dst) != 1 {
			return nil, nil, nil, fmt.Errorf("skeleton edge %d: exactly one destination required, got %d", e.Src, len(e.Dst))
		}
		skeleton.AddEdge(e.Src, e.Dst[0], e.Acc, lbl)
	}

	return store, g, skeleton, nil
}

// parseLabel reads a tiny boolean expression: atom names, !, &, |, parens,
// true/false. It is deliberately minimal — fixtures describe small
// textbook automata, not arbitrary formulas.
func parseLabel(store *label.Store, atomIdx map[string]int, expr string) (*label.Formula, error) {
	p := &labelParser{store: store, atoms: atomIdx, toks: tokenizeLabel(expr)}
	f, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("unexpected trailing tokens at %q", strings.Join(p.toks[p.pos:], " "))
	}
	return f, nil
}

type labelParser struct {
	store *label.Store
	atoms map[string]int
	toks  []string
	pos   int
}

func tokenizeLabel(expr string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range expr {
		switch r {
		case '!', '&', '|', '(', ')':
			flush()
			toks = append(toks, string(r))
		case ' ', '\t':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}

func (p *labelParser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos]
}

func (p *labelParser) parseOr() (*label.Formula, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek() == "|" {
		p.pos++
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = p.store.Or(left, right)
	}
	return left, nil
}

func (p *labelParser) parseAnd() (*label.Formula, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek() == "&" {
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = p.store.And(left, right)
	}
	return left, nil
}

func (p *labelParser) parseUnary() (*label.Formula, error) {
	if p.peek() == "!" {
		p.pos++
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return p.store.Not(inner), nil
	}
	return p.parseAtomExpr()
}

func (p *labelParser) parseAtomExpr() (*label.Formula, error) {
	tok := p.peek()
	if tok == "(" {
		p.pos++
		f, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ")" {
			return nil, fmt.Errorf("expected ')'")
		}
		p.pos++
		return f, nil
	}
	if tok == "" {
		return nil, fmt.Errorf("unexpected end of label expression")
	}
	p.pos++
	switch tok {
	case "true":
		return p.store.True(), nil
	case "false":
		return p.store.False(), nil
	default:
		idx, ok := p.atoms[tok]
		if !ok {
			return nil, fmt.Errorf("unknown atom %q", tok)
		}
		return p.store.Var(idx), nil
	}
}
