package vwaa

// Classified is the working copy produced by Classify: a VWAA whose edge
// acceptance has been recoded from {0,1} to {0,2}, paired with the
// Qmay/Qmust bit-vectors computed from the *original* marks. The input VWAA
// is never mutated; Classified owns its own edge copies.
type Classified struct {
	src VWAA

	// isQmay[q] holds iff q has a non-accepting self-looping edge.
	isQmay []bool
	// isMust[q] holds iff every outgoing edge of q self-loops.
	isMust []bool

	edges [][]Edge
}

// Classify computes Qmay/Qmust over v and recodes its edge acceptance into a
// fresh working copy, leaving v untouched.
func Classify(v VWAA) *Classified {
	n := v.NumStates()
	c := &Classified{
		src:    v,
		isQmay: make([]bool, n),
		isMust: make([]bool, n),
		edges:  make([][]Edge, n),
	}
	for q := 0; q < n; q++ {
		in := v.Edges(q)
		out := make([]Edge, len(in))
		mustSelfLoop := true
		for i, e := range in {
			selfLoop := containsState(e.Dests, q)
			if selfLoop && e.Acc == 0 {
				c.isQmay[q] = true
			}
			if !selfLoop {
				mustSelfLoop = false
			}
			recoded := e
			recoded.Dests = append([]int(nil), e.Dests...)
			if e.Acc == 1 {
				recoded.Acc = 2
			}
			out[i] = recoded
		}
		// A state with no outgoing edges vacuously self-loops on everything.
		c.isMust[q] = mustSelfLoop
		c.edges[q] = out
	}
	return c
}

func containsState(dests []int, q int) bool {
	for _, d := range dests {
		if d == q {
			return true
		}
	}
	return false
}

// IsQmay reports whether q ∈ Qmay.
func (c *Classified) IsQmay(q int) bool { return c.isQmay[q] }

// IsQmust reports whether q ∈ Qmust.
func (c *Classified) IsQmust(q int) bool { return c.isMust[q] }

func (c *Classified) NumStates() int     { return c.src.NumStates() }
func (c *Classified) TT() int            { return c.src.TT() }
func (c *Classified) AP() int            { return c.src.AP() }
func (c *Classified) Edges(q int) []Edge { return c.edges[q] }
