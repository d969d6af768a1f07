package dc3

// merge interleaves the sorted sample positions and the sorted non-sample
// positions into the suffix array of s.
func merge(s, rank, sample, nonSample []int) []int {
	sa := make([]int, 0, len(s))
	i, j := 0, 0
	for i < len(sample) && j < len(nonSample) {
		if sampleFirst(s, rank, sample[i], nonSample[j]) {
			sa = append(sa, sample[i])
			i++
		} else {
			sa = append(sa, nonSample[j])
			j++
		}
	}
	sa = append(sa, sample[i:]...)
	return append(sa, nonSample[j:]...)
}

// sampleFirst reports whether the sample suffix at i sorts no later than the
// non-sample suffix at j. Both comparisons stop at a rank that is known for
// both sides: i+1 and j+1 when i ≡ 1 (mod 3), i+2 and j+2 when i ≡ 2.
func sampleFirst(s, rank []int, i, j int) bool {
	switch i % 3 {
	case 1:
		return leq2(
			symbolAt(s, i), rankAt(rank, i+1),
			symbolAt(s, j), rankAt(rank, j+1),
		)
	case 2:
		return leq3(
			symbolAt(s, i), symbolAt(s, i+1), rankAt(rank, i+2),
			symbolAt(s, j), symbolAt(s, j+1), rankAt(rank, j+2),
		)
	default:
		panic("dc3: merge called with a non-sample position")
	}
}

// symbolAt returns the key of s[p], or the sentinel key past the end.
func symbolAt(s []int, p int) int {
	if p >= len(s) {
		return absentKey
	}
	return symbolKey(s[p])
}

// lexicographic order for pairs
func leq2(a1, a2, b1, b2 int) bool {
	return a1 < b1 || (a1 == b1 && a2 <= b2)
}

// lexicographic order for triples
func leq3(a1, a2, a3, b1, b2, b3 int) bool {
	return a1 < b1 || (a1 == b1 && leq2(a2, a3, b2, b3))
}
