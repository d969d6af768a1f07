package dc3

// sortNonSample returns the positions p ≡ 0 (mod 3) ordered by their
// suffixes. Such a suffix is ordered by its first symbol followed by the rank
// of the sample suffix at p+1.
func sortNonSample(s []int, maxSymbol int, rank []int) []int {
	n := len(s)
	pairs := make([][]int, 0, (n+2)/3)
	maxRank := 0
	for p := 0; p < n; p += 3 {
		r := rankAt(rank, p+1)
		maxRank = max(maxRank, r)
		pairs = append(pairs, []int{s[p], r})
	}

	order := RadixSortIndices(pairs, max(maxSymbol, maxRank)+1, symbolKey)
	positions := make([]int, len(order))
	for k, i := range order {
		positions[k] = 3 * i
	}
	return positions
}
