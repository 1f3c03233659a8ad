package equiv

// GenerateLassos enumerates a bounded sample of ultimately-periodic words
// over an alphabet of size numLetters: every prefix of length up to
// maxPrefix combined with every non-empty loop of length up to maxLoop. This
// is deliberately a sample, not an exhaustive cover of all lassos (which
// grows exponentially in numLetters and the length bounds) — enough to
// exercise every letter and every short cycle shape without blowing up on
// larger alphabets.
func GenerateLassos(numLetters, maxPrefix, maxLoop int) []Lasso {
	var lassos []Lasso
	var prefixes [][]int
	var gen func(cur []int, depth int)
	gen = func(cur []int, depth int) {
		cp := append([]int(nil), cur...)
		prefixes = append(prefixes, cp)
		if depth == maxPrefix {
			return
		}
		for letter := 0; letter < numLetters; letter++ {
			next := make([]int, len(cur)+1)
			copy(next, cur)
			next[len(cur)] = letter
			gen(next, depth+1)
		}
	}
	gen(nil, 0)

	var loops [][]int
	var genLoop func(cur []int, depth int)
	genLoop = func(cur []int, depth int) {
		if depth > 0 {
			loops = append(loops, append([]int(nil), cur...))
		}
		if depth == maxLoop {
			return
		}
		for letter := 0; letter < numLetters; letter++ {
			next := make([]int, len(cur)+1)
			copy(next, cur)
			next[len(cur)] = letter
			genLoop(next, depth+1)
		}
	}
	genLoop(nil, 0)

	for _, p := range prefixes {
		for _, l := range loops {
			lassos = append(lassos, Lasso{Prefix: p, Loop: l})
		}
	}
	return lassos
}
