package label

// Alphabet enumerates the 2^|AP| Letters over the first n atomic
// propositions, in fixed letter-index order. Letter i is the
// conjunction, over bit k of i, of ap_k if the bit is set and ¬ap_k
// otherwise. The alphabet is exhaustive and exact: every Letter is a complete
// conjunction, so exactly one Letter "contains" any given valuation of AP.
func (s *Store) Alphabet(n int) []*Formula {
	if n < 0 {
		panic("label: negative AP count")
	}
	s.Reserve(n)
	count := 1 << uint(n)
	letters := make([]*Formula, count)
	for i := 0; i < count; i++ {
		literals := make([]*Formula, 0, n)
		for k := 0; k < n; k++ {
			v := s.Var(k)
			if i&(1<<uint(k)) != 0 {
				literals = append(literals, v)
			} else {
				literals = append(literals, s.Not(v))
			}
		}
		letters[i] = s.And(literals...)
	}
	return letters
}
