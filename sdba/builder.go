// Package sdba implements the VWAA-to-SDBA construction: the deterministic
// breakpoint component synthesized from each nondeterministic-part
// configuration, wired back onto that nondeterministic prefix to produce a
// semi-deterministic Büchi automaton.
package sdba

import (
	"fmt"
	"sort"
	"time"

	"github.com/rfielding/ltl2sdba/label"
	"github.com/rfielding/ltl2sdba/vwaa"
)

// dstate is a deterministic-component state (R, φ1, φ2). Equality is
// structural on (R, φ1, φ2); the dedup table keys on exactly that triple.
type dstate struct {
	r          RSet
	phi1, phi2 *label.Formula
	id         int
}

type builder struct {
	v        *vwaa.Classified
	s        *label.Store
	ap       int
	alphabet []*label.Formula
	out      *Automaton
	dedup    map[string]*dstate
	worklist []*dstate
	cfg      *config
}

// stateVar returns the propositional-variable handle for VWAA state q,
// offset past the AP atoms so the two spaces never collide in the shared
// Store.
func (b *builder) stateVar(q int) *label.Formula { return b.s.Var(b.ap + q) }

func (b *builder) obligationVar(d int, r RSet) *label.Formula {
	if r.Has(d) {
		return b.s.True()
	}
	return b.stateVar(d)
}

// implies wraps Store.Implies, charging the SAT-call metric at the actual
// query site rather than at conjunction time.
func (b *builder) implies(p, q *label.Formula) bool {
	b.cfg.metrics.SATCall()
	return b.s.Implies(p, q)
}

// conjunctAccumulator implements the "empty accumulator remains false, not
// true" rule: And() alone would fold a zero-length list to its
// identity element True, which is wrong here — an accumulator that received
// no contributions at all means no obligations, i.e. false.
func (b *builder) conjunctAccumulator(terms []*label.Formula) *label.Formula {
	if len(terms) == 0 {
		return b.s.False()
	}
	return b.s.And(terms...)
}

func rKey(r RSet) string {
	ids := make([]int, 0, len(r))
	for q := range r {
		ids = append(ids, q)
	}
	sort.Ints(ids)
	return fmt.Sprint(ids)
}

func (b *builder) getOrCreate(r RSet, phi1, phi2 *label.Formula) *dstate {
	key := rKey(r) + "|" + fmt.Sprintf("%p", phi1) + "|" + fmt.Sprintf("%p", phi2)
	if d, ok := b.dedup[key]; ok {
		b.cfg.metrics.DedupHit()
		return d
	}
	id := b.out.AddState()
	d := &dstate{r: r, phi1: phi1, phi2: phi2, id: id}
	b.dedup[key] = d
	b.cfg.metrics.StateBuilt()
	b.worklist = append(b.worklist, d)
	if b.cfg.debug {
		b.cfg.logger.Debug("deterministic state allocated",
			"id", id, "R", rKey(r), "phi1", phi1.String(), "phi2", phi2.String())
	}
	return d
}

// Build runs the VWAA-to-SDBA construction. skeleton is the
// already-alternation-removed nondeterministic part: its states
// [0, skeleton.NumNondet) keep their configuration names and any edges
// already present among them; Build appends the deterministic tail and
// wires new edges from each nondeterministic state into it. v's edge labels
// must be formulas from skeleton.Store — v and skeleton share one label
// algebra, with AP atoms at indices [0, v.AP()) and VWAA-state atoms
// reserved starting at v.AP().
func Build(v vwaa.VWAA, skeleton *Automaton, opts ...Option) (*Automaton, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	start := time.Now()
	defer func() { cfg.metrics.ObserveBuildSeconds(time.Since(start).Seconds()) }()

	if out, ok := tryShortcut(skeleton); ok {
		if cfg.debug {
			cfg.logger.Debug("shortcut: nondeterministic skeleton already deterministic")
		}
		return out, nil
	}

	classified := vwaa.Classify(v)
	store := skeleton.Store
	store.Reserve(v.AP() + v.NumStates())
	alphabet := store.Alphabet(v.AP())

	out := cloneAutomaton(skeleton)
	b := &builder{
		v:        classified,
		s:        store,
		ap:       v.AP(),
		alphabet: alphabet,
		out:      out,
		dedup:    make(map[string]*dstate),
	}
	b.cfg = cfg

	for nd := 0; nd < skeleton.NumNondet; nd++ {
		name := skeleton.StateNames[nd]
		conf, err := ParseConfiguration(name)
		if err != nil {
			cfg.logger.Warn("skipping malformed configuration", "state", nd, "name", name, "err", err)
			continue
		}
		for _, q := range conf.States {
			if q < 0 || q >= v.NumStates() {
				return nil, fmt.Errorf("configuration %q names VWAA state %d outside [0, %d): %w", name, q, v.NumStates(), ErrInvariantViolation)
			}
		}
		if !Reachable(classified, conf) {
			if cfg.debug {
				cfg.logger.Debug("configuration fails reachability, no deterministic companion", "state", nd, "name", name)
			}
			continue
		}
		for _, r := range EnumerateR(classified, conf) {
			b.buildInitial(nd, conf, r)
		}
	}

	for len(b.worklist) > 0 {
		d := b.worklist[len(b.worklist)-1]
		b.worklist = b.worklist[:len(b.worklist)-1]
		b.buildSuccessors(d)
	}

	finalize(out)
	return out, nil
}

// buildInitial computes, for every letter w, the initial deterministic-
// component state reached from nondeterministic state nd under configuration
// conf and committed subset r.
func (b *builder) buildInitial(nd int, conf Configuration, r RSet) {
	for _, w := range b.alphabet {
		var phi1Terms, phi2Terms []*label.Formula
		for q := 0; q < b.v.NumStates(); q++ {
			if !r.Has(q) {
				if !conf.Has(q) {
					continue
				}
				for _, e := range b.v.Edges(q) {
					if !b.implies(w, e.Label) {
						continue
					}
					for _, d := range e.Dests {
						phi1Terms = append(phi1Terms, b.obligationVar(d, r))
					}
				}
				continue
			}
			// q ∈ R: always in conf (R ⊆ C by construction), so the "q ∈ C"
			// guard in the source reduces to checking the edge is modified.
			phi2Terms = append(phi2Terms, b.stateVar(q))
			for _, e := range b.v.Edges(q) {
				if e.Acc != 0 || !b.implies(w, e.Label) {
					continue
				}
				for _, d := range e.Dests {
					phi1Terms = append(phi1Terms, b.obligationVar(d, r))
				}
			}
		}
		phi1 := b.conjunctAccumulator(phi1Terms)
		phi2 := b.conjunctAccumulator(phi2Terms)

		d := b.getOrCreate(r, phi1, phi2)
		b.out.AddEdge(nd, d.id, 0, w)
	}
}

// buildSuccessors computes, for every letter w, the successor deterministic
// state (R, φ1', φ2') reached from d,
// resolving the breakpoint and connecting the edge.
func (b *builder) buildSuccessors(d *dstate) {
	for _, w := range b.alphabet {
		var phi1Terms, phi2Terms []*label.Formula
		for q := 0; q < b.v.NumStates(); q++ {
			p1 := b.implies(b.stateVar(q), d.phi1)
			p2 := b.implies(b.stateVar(q), d.phi2)
			if !p1 && !p2 {
				continue
			}
			if !d.r.Has(q) {
				for _, e := range b.v.Edges(q) {
					if !b.implies(w, e.Label) {
						continue
					}
					for _, dest := range e.Dests {
						if p1 {
							phi1Terms = append(phi1Terms, b.obligationVar(dest, d.r))
						}
						if p2 {
							phi2Terms = append(phi2Terms, b.stateVar(dest))
						}
					}
				}
				continue
			}
			// q ∈ R: "q ∈ C and a == 0" — R ⊆ C always, so only a == 0 gates.
			for _, e := range b.v.Edges(q) {
				if e.Acc != 0 || !b.implies(w, e.Label) {
					continue
				}
				for _, dest := range e.Dests {
					if p1 {
						phi1Terms = append(phi1Terms, b.obligationVar(dest, d.r))
					}
					if p2 {
						phi2Terms = append(phi2Terms, b.stateVar(dest))
					}
				}
			}
		}

		rawPhi1 := b.conjunctAccumulator(phi1Terms)
		rawPhi2 := b.conjunctAccumulator(phi2Terms)

		var newPhi1, newPhi2 *label.Formula
		acc := 0
		if rawPhi1 == b.s.True() {
			acc = 1
			var succ1Terms []*label.Formula
			for q := 0; q < b.v.NumStates(); q++ {
				if b.implies(b.stateVar(q), rawPhi2) {
					succ1Terms = append(succ1Terms, b.obligationVar(q, d.r))
				}
			}
			newPhi1 = b.conjunctAccumulator(succ1Terms)

			var succ2Terms []*label.Formula
			for q := range d.r {
				succ2Terms = append(succ2Terms, b.stateVar(q))
			}
			newPhi2 = b.conjunctAccumulator(succ2Terms)
		} else {
			newPhi1, newPhi2 = rawPhi1, rawPhi2
		}

		next := b.getOrCreate(d.r, newPhi1, newPhi2)
		b.out.AddEdge(d.id, next.id, acc, w)
		if b.cfg.debug {
			b.cfg.logger.Debug("deterministic transition",
				"from", d.id, "to", next.id, "acc", acc, "letter", w.String())
		}
	}
}
