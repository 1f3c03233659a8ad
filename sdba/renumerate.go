package sdba

import "github.com/rfielding/ltl2sdba/vwaa"

// RSet is a committed-subset R ⊆ Q, represented as a membership set.
type RSet map[int]struct{}

// Has reports whether q ∈ R.
func (r RSet) Has(q int) bool { _, ok := r[q]; return ok }

func newRSet(forced []int) RSet {
	r := make(RSet, len(forced))
	for _, q := range forced {
		r[q] = struct{}{}
	}
	return r
}

// EnumerateR enumerates every admissible R ⊆ conf by the rule applied
// state-by-state over conf: a Qmust state is always included, a Qmay-only
// state branches (included or not), any other state is never included. The
// sink configuration ("{}") is treated as Qmust in its entirety and
// contributes a single R = ∅.
//
// Enumeration is an explicit bounded power-set walk (size 2^|Qmay∩C|), not
// recursion, per the worklist requirement.
func EnumerateR(c *vwaa.Classified, conf Configuration) []RSet {
	if conf.IsSink {
		return []RSet{newRSet(nil)}
	}

	var forced []int
	var free []int
	for _, q := range conf.States {
		switch {
		case c.IsQmust(q):
			forced = append(forced, q)
		case c.IsQmay(q):
			free = append(free, q)
		}
	}

	count := 1 << uint(len(free))
	out := make([]RSet, 0, count)
	for mask := 0; mask < count; mask++ {
		r := newRSet(forced)
		for i, q := range free {
			if mask&(1<<uint(i)) != 0 {
				r[q] = struct{}{}
			}
		}
		out = append(out, r)
	}
	return out
}
