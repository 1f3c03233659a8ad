// Package equiv implements a sampled-lasso equivalence oracle: the
// in-repo stand-in for an independent LTL-to-ω-automaton translator cross-
// check. It draws ultimately-periodic words (a finite prefix followed by a
// repeated loop) over a shared alphabet, decides acceptance of each by both the input VWAA (alternating
// run-tree semantics, co-Büchi) and the constructed SDBA (deterministic-in-
// Det Büchi semantics), and reports where the two disagree.
//
// The frontier/cycle-detection approach is adapted from the StateSet/Pre_E
// idiom used for CTL model checking and from the SCC/lasso-detection
// pattern used by an LTL checker elsewhere in the example pack: both decide
// a property over an infinite path by reducing it to cycle detection on a
// finite reachable state space.
package equiv

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rfielding/ltl2sdba/label"
)

// Lasso is an ultimately-periodic word: Prefix letters once, then Loop
// letters forever. Letters are indices into a shared alphabet slice.
type Lasso struct {
	Prefix []int
	Loop   []int
}

// edgeChoice is one qualifying transition out of a state under a fixed
// letter: a (possibly multi-state, for universal branching) destination
// set, and whether the source edge was marked accepting.
type edgeChoice struct {
	Dests     []int
	Accepting bool
}

// transitionSource abstracts over the two automata an oracle run compares:
// a VWAA's universally-branching alternating edges, and an SDBA's ordinary
// (possibly nondeterministic in the prefix) edges.
type transitionSource interface {
	NumStates() int
	MatchingEdges(q int, w *label.Formula, store *label.Store) []edgeChoice
}

type frontier map[int]struct{}

func newFrontier(qs ...int) frontier {
	f := make(frontier, len(qs))
	for _, q := range qs {
		f[q] = struct{}{}
	}
	return f
}

func (f frontier) key() string {
	ids := make([]int, 0, len(f))
	for q := range f {
		ids = append(ids, q)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

type move struct {
	next      frontier
	accepting bool
}

// frontierStep enumerates every existential choice of one qualifying edge
// per member of f (the universal/conjunctive combination of an alternating
// run, or the trivial single-destination case for an ordinary automaton),
// returning every resulting (next frontier, used-an-accepting-edge) move.
// An empty frontier has exactly one move: itself, with no edges used.
func frontierStep(ts transitionSource, store *label.Store, f frontier, w *label.Formula) []move {
	qs := make([]int, 0, len(f))
	for q := range f {
		qs = append(qs, q)
	}
	if len(qs) == 0 {
		return []move{{next: frontier{}, accepting: false}}
	}

	choices := make([][]edgeChoice, len(qs))
	for i, q := range qs {
		edges := ts.MatchingEdges(q, w, store)
		if len(edges) == 0 {
			// No qualifying edge for this state: the whole conjunctive
			// combination is unsatisfiable under w, so no move exists.
			return nil
		}
		choices[i] = edges
	}

	var combos []move
	var walk func(i int, next frontier, accepting bool)
	walk = func(i int, next frontier, accepting bool) {
		if i == len(qs) {
			combos = append(combos, move{next: next, accepting: accepting})
			return
		}
		for _, c := range choices[i] {
			n := make(frontier, len(next)+len(c.Dests))
			for k := range next {
				n[k] = struct{}{}
			}
			for _, d := range c.Dests {
				n[d] = struct{}{}
			}
			walk(i+1, n, accepting || c.Accepting)
		}
	}
	walk(0, frontier{}, false)
	return combos
}

// stepSet advances every frontier in a set under letter w, returning the
// set of resulting frontiers and, per resulting frontier, whether it is
// reachable via at least one accepting-free move (clean) and via at least
// one accepting move (dirty) from this set.
func stepSet(ts transitionSource, store *label.Store, from map[string]frontier, w *label.Formula) (next map[string]frontier, clean map[string]bool, dirty map[string]bool) {
	next = make(map[string]frontier)
	clean = make(map[string]bool)
	dirty = make(map[string]bool)
	for _, f := range from {
		for _, mv := range frontierStep(ts, store, f, w) {
			k := mv.next.key()
			if _, ok := next[k]; !ok {
				next[k] = mv.next
			}
			if mv.accepting {
				dirty[k] = true
			} else {
				clean[k] = true
			}
		}
	}
	return next, clean, dirty
}

// advance consumes a whole word (slice of letters) starting from the
// singleton frontier {start}, returning the reachable frontier set.
func advance(ts transitionSource, store *label.Store, alphabet []*label.Formula, start int, word []int) map[string]frontier {
	cur := map[string]frontier{newFrontier(start).key(): newFrontier(start)}
	for _, idx := range word {
		cur, _, _ = stepSet(ts, store, cur, alphabet[idx])
	}
	return cur
}

// accepts decides, for an ultimately-periodic word, whether there exists an
// infinite run satisfying the given cycle rule: requireAccepting=true asks
// for a reachable cycle in the loop-transition graph that uses at least one
// accepting edge (ordinary Büchi acceptance); requireAccepting=false asks
// for a reachable cycle that uses none (co-Büchi: only finitely many
// accepting edges total, which for an infinitely-repeated cycle means the
// cycle itself must be entirely accepting-free).
func accepts(ts transitionSource, store *label.Store, alphabet []*label.Formula, start int, lasso Lasso, requireAccepting bool) bool {
	afterPrefix := advance(ts, store, alphabet, start, lasso.Prefix)
	if len(lasso.Loop) == 0 {
		return !requireAccepting
	}

	// Build the reachable frontier graph under one full traversal of Loop,
	// closing to a fixpoint (bounded: frontier space is finite).
	type edge struct {
		to      string
		clean   bool
		dirty   bool
	}
	nodes := make(map[string]frontier, len(afterPrefix))
	for k, f := range afterPrefix {
		nodes[k] = f
	}
	graph := make(map[string][]edge)

	frontierOf := func(k string) frontier { return nodes[k] }

	// loopStep advances f through one full traversal of Loop, tracking
	// separately the frontiers reachable via a path that used NO accepting
	// edge anywhere in the traversal (clean) and those reachable via a path
	// that used at least one (dirty) — a frontier can be both.
	loopStep := func(f frontier) (clean map[string]frontier, dirty map[string]frontier) {
		curClean := map[string]frontier{f.key(): f}
		curDirty := map[string]frontier{}
		for _, idx := range lasso.Loop {
			w := alphabet[idx]
			nextClean := map[string]frontier{}
			nextDirty := map[string]frontier{}
			for k, fr := range curClean {
				nf, cl, dt := stepSet(ts, store, map[string]frontier{k: fr}, w)
				for rk, rf := range nf {
					if cl[rk] {
						nextClean[rk] = rf
					}
					if dt[rk] {
						nextDirty[rk] = rf
					}
				}
			}
			for k, fr := range curDirty {
				nf, _, _ := stepSet(ts, store, map[string]frontier{k: fr}, w)
				for rk, rf := range nf {
					nextDirty[rk] = rf
				}
			}
			curClean, curDirty = nextClean, nextDirty
		}
		return curClean, curDirty
	}

	pending := make([]string, 0, len(nodes))
	for k := range nodes {
		pending = append(pending, k)
	}
	seen := make(map[string]bool)
	for len(pending) > 0 {
		k := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if seen[k] {
			continue
		}
		seen[k] = true
		clean, dirty := loopStep(frontierOf(k))
		for rk, rf := range clean {
			if _, ok := nodes[rk]; !ok {
				nodes[rk] = rf
			}
			graph[k] = append(graph[k], edge{to: rk, clean: true})
			if !seen[rk] {
				pending = append(pending, rk)
			}
		}
		for rk, rf := range dirty {
			if _, ok := nodes[rk]; !ok {
				nodes[rk] = rf
			}
			graph[k] = append(graph[k], edge{to: rk, dirty: true})
			if !seen[rk] {
				pending = append(pending, rk)
			}
		}
	}

	// A node is "good" if it lies on a cycle matching the requested rule:
	// for co-Büchi every edge of the cycle is clean; for Büchi the cycle may
	// use any edges but at least one of them is dirty (tracked by sawDirty).
	edgeQualifies := func(e edge) bool {
		if requireAccepting {
			return true
		}
		return e.clean // this edge used no accepting transition
	}

	onCycle := make(map[string]bool)
	for start := range nodes {
		visited := make(map[string]bool)
		var dfs func(n string, depth int, sawDirty bool) bool
		dfs = func(n string, depth int, sawDirty bool) bool {
			if n == start && depth > 0 {
				return !requireAccepting || sawDirty
			}
			vk := n + "|" + strconv.FormatBool(sawDirty)
			if visited[vk] {
				return false
			}
			visited[vk] = true
			for _, e := range graph[n] {
				if edgeQualifies(e) && dfs(e.to, depth+1, sawDirty || e.dirty) {
					return true
				}
			}
			return false
		}
		if dfs(start, 0, false) {
			onCycle[start] = true
		}
	}

	// Reachable from the prefix-final frontiers via any edges at all.
	reachable := make(map[string]bool)
	var reach func(k string)
	reach = func(k string) {
		if reachable[k] {
			return
		}
		reachable[k] = true
		for _, e := range graph[k] {
			reach(e.to)
		}
	}
	for k := range afterPrefix {
		reach(k)
	}

	for k := range reachable {
		if onCycle[k] {
			return true
		}
	}
	return false
}
