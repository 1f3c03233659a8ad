package label

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

// Sat reports whether f is satisfiable by some assignment to its atomic
// variables. Each query lowers f to CNF via Tseitin encoding and hands it to
// a fresh incremental SAT instance.
func (s *Store) Sat(f *Formula) bool {
	g := gini.New()
	lits := make(map[uint64]z.Lit, 16)

	var encode func(n *Formula) z.Lit
	encode = func(n *Formula) z.Lit {
		if lit, ok := lits[n.id]; ok {
			return lit
		}
		var lit z.Lit
		switch n.kind {
		case KindFalse:
			lit = g.Lit()
			g.Add(lit.Not())
			g.Add(z.LitNull)
		case KindTrue:
			lit = g.Lit()
			g.Add(lit)
			g.Add(z.LitNull)
		case KindVar:
			lit = g.Lit()
		case KindNot:
			lit = encode(n.operands[0]).Not()
		case KindAnd:
			lit = g.Lit()
			for _, o := range n.operands {
				// lit -> operand
				g.Add(lit.Not())
				g.Add(encode(o))
				g.Add(z.LitNull)
			}
			// (operand1 ∧ operand2 ∧ ...) -> lit
			g.Add(lit)
			for _, o := range n.operands {
				g.Add(encode(o).Not())
			}
			g.Add(z.LitNull)
		case KindOr:
			lit = g.Lit()
			for _, o := range n.operands {
				// operand -> lit
				g.Add(lit)
				g.Add(encode(o).Not())
				g.Add(z.LitNull)
			}
			// lit -> (operand1 ∨ operand2 ∨ ...)
			g.Add(lit.Not())
			for _, o := range n.operands {
				g.Add(encode(o))
			}
			g.Add(z.LitNull)
		}
		lits[n.id] = lit
		return lit
	}

	top := encode(f)
	g.Assume(top)
	return g.Solve() == 1
}

// Implies reports whether a ⟹ b holds for every assignment, i.e. whether
// a ∧ ¬b is unsatisfiable. This backs every `w ⟹ ℓ` and `var(q) ⟹ φ` test
// in the deterministic-component builder.
func (s *Store) Implies(a, b *Formula) bool {
	if a == s.fFalse || b == s.fTrue || a == b {
		return true
	}
	if b == s.fFalse {
		return !s.Sat(a)
	}
	counterexample := s.And(a, s.Not(b))
	return !s.Sat(counterexample)
}

// Equivalent reports whether a and b denote the same Boolean function. Note
// this is strictly weaker than `a == b` (pointer identity): hash-consing
// already guarantees structurally-built formulas compare equal by pointer,
// but Equivalent is useful for sanity-checking two independently-derived
// formulas of the same Store.
func (s *Store) Equivalent(a, b *Formula) bool {
	return s.Implies(a, b) && s.Implies(b, a)
}
