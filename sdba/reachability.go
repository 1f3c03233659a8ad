package sdba

import "github.com/rfielding/ltl2sdba/vwaa"

// Reachable decides whether every state in conf lies in the forward closure
// (successor closure) of Qmay ∩ conf, by depth-first descent from each
// Qmay-state in conf over universal destinations, skipping already-visited
// states to tolerate loops. The empty (sink) configuration is vacuously
// reachable: it has no members to cover.
func Reachable(c *vwaa.Classified, conf Configuration) bool {
	if conf.IsSink {
		return true
	}
	visited := make(map[int]bool, len(conf.States))
	var stack []int
	push := func(q int) {
		if !visited[q] {
			visited[q] = true
			stack = append(stack, q)
		}
	}
	for _, q := range conf.States {
		if c.IsQmay(q) {
			push(q)
		}
	}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range c.Edges(q) {
			for _, d := range e.Dests {
				push(d)
			}
		}
	}
	for _, q := range conf.States {
		if !visited[q] {
			return false
		}
	}
	return true
}
