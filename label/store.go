package label

import (
	"fmt"
	"sort"
	"strings"
)

// Store is the hash-consing table and variable-space reservation for a single
// construction run. It is not safe for concurrent use; the VWAA→SDBA pipeline
// is single-threaded by design (see package sdba).
type Store struct {
	table    map[string]*Formula
	nextID   uint64
	varCount int

	fFalse *Formula
	fTrue  *Formula
	vars   []*Formula
}

// NewStore creates a Store with variable capacity reserved for indices
// [0, varCapacity). Capacity can be grown later with Reserve, but callers
// should reserve the full atomic-proposition plus automaton-state variable
// range up front, since VWAA states are themselves encoded as variables
// sharing this same space.
func NewStore(varCapacity int) *Store {
	s := &Store{table: make(map[string]*Formula)}
	s.fFalse = s.intern(key{kind: KindFalse})
	s.fTrue = s.intern(key{kind: KindTrue})
	s.Reserve(varCapacity)
	return s
}

// Reserve grows the variable space so that Var(i) is valid for
// i < max(varCapacity, previously reserved).
func (s *Store) Reserve(varCapacity int) {
	for len(s.vars) < varCapacity {
		idx := len(s.vars)
		s.vars = append(s.vars, s.intern(key{kind: KindVar, variable: idx}))
	}
	if varCapacity > s.varCount {
		s.varCount = varCapacity
	}
}

// VarCapacity reports the number of reserved atomic-variable slots.
func (s *Store) VarCapacity() int { return len(s.vars) }

func (s *Store) intern(k key) *Formula {
	return s.internWith(k, nil)
}

// internWith is intern plus an explicit operand list, used for the n-ary
// And/Or nodes whose operands aren't representable in a single key field.
func (s *Store) internWith(k key, operands []*Formula) *Formula {
	sig := signature(k)
	if f, ok := s.table[sig]; ok {
		return f
	}
	f := &Formula{kind: k.kind, variable: k.variable, id: s.nextID}
	switch {
	case k.operand0 != nil:
		f.operands = []*Formula{k.operand0}
	case operands != nil:
		f.operands = operands
	}
	s.nextID++
	s.table[sig] = f
	return f
}

func signature(k key) string {
	switch k.kind {
	case KindFalse:
		return "F"
	case KindTrue:
		return "T"
	case KindVar:
		return fmt.Sprintf("V%d", k.variable)
	case KindNot:
		return fmt.Sprintf("N%d", k.operand0.id)
	default:
		return fmt.Sprintf("%d:%s", k.kind, k.extra)
	}
}

// False returns the constant false formula. In breakpoint-formula
// accumulation this also serves as the "no obligations contributed yet"
// sentinel, distinct from True — the two must never be conflated.
func (s *Store) False() *Formula { return s.fFalse }

// True returns the constant true formula.
func (s *Store) True() *Formula { return s.fTrue }

// Var returns the formula for atomic-variable i, reserving capacity if i
// wasn't already covered.
func (s *Store) Var(i int) *Formula {
	if i < 0 {
		panic("label: negative variable index")
	}
	if i >= len(s.vars) {
		s.Reserve(i + 1)
	}
	return s.vars[i]
}

// Not returns ¬f, with double-negation elimination and constant folding.
func (s *Store) Not(f *Formula) *Formula {
	switch f.kind {
	case KindTrue:
		return s.fFalse
	case KindFalse:
		return s.fTrue
	case KindNot:
		return f.operands[0]
	}
	return s.intern(key{kind: KindNot, operand0: f})
}

// And returns the conjunction of fs, flattening nested conjunctions, dropping
// redundant True operands, short-circuiting to False on any False operand,
// and deduplicating equal operands so the result is canonical.
func (s *Store) And(fs ...*Formula) *Formula {
	return s.nary(KindAnd, s.fFalse, s.fTrue, fs)
}

// Or returns the disjunction of fs, dual to And.
func (s *Store) Or(fs ...*Formula) *Formula {
	return s.nary(KindOr, s.fTrue, s.fFalse, fs)
}

// nary builds a canonical n-ary And/Or node. absorb is the operand that makes
// the whole expression collapse to itself (False for And, True for Or);
// identity is the operand that can be dropped (True for And, False for Or).
func (s *Store) nary(kind Kind, absorb, identity *Formula, fs []*Formula) *Formula {
	seen := make(map[uint64]*Formula)
	flatten := func(f *Formula) bool {
		if f == absorb {
			return true
		}
		if f == identity {
			return false
		}
		seen[f.id] = f
		return false
	}
	var walk func(f *Formula) bool
	walk = func(f *Formula) bool {
		if f.kind == kind {
			for _, o := range f.operands {
				if walk(o) {
					return true
				}
			}
			return false
		}
		return flatten(f)
	}
	for _, f := range fs {
		if walk(f) {
			return absorb
		}
	}
	if len(seen) == 0 {
		return identity
	}
	if len(seen) == 1 {
		for _, f := range seen {
			return f
		}
	}
	ops := make([]*Formula, 0, len(seen))
	for _, f := range seen {
		ops = append(ops, f)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].id < ops[j].id })

	var sb strings.Builder
	for i, o := range ops {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", o.id)
	}
	return s.internWith(key{kind: kind, extra: sb.String()}, ops)
}
