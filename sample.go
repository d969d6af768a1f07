package dc3

import "slices"

// noRank marks rank table entries of positions that start no sample suffix.
const noRank = -1

// layout is the sample set of one recursion level together with its
// position <-> sample index tables. It is built once per level.
type layout struct {
	n int

	// sample holds the sample positions: residue 1 ascending, then residue 2
	// ascending. When n%3 == 1 the residue 1 block ends with the dummy
	// position n, whose triple is empty.
	sample []int

	// index[p] is the index of position p in sample, or -1 for a non-sample
	// position. It has n+1 entries so the dummy position is addressable.
	index []int
}

func newLayout(n int) layout {
	size := (n+1)/3 + n/3
	dummy := n%3 == 1
	if dummy {
		size++
	}

	l := layout{
		n:      n,
		sample: make([]int, 0, size),
		index:  make([]int, n+1),
	}
	for p := range l.index {
		l.index[p] = -1
	}
	add := func(p int) {
		l.index[p] = len(l.sample)
		l.sample = append(l.sample, p)
	}
	for p := 1; p < n; p += 3 {
		add(p)
	}
	if dummy {
		add(n)
	}
	for p := 2; p < n; p += 3 {
		add(p)
	}
	return l
}

func (l layout) isDummy(p int) bool {
	return p == l.n
}

// symbolKey biases a symbol by one so key 0 stays free for "absent".
func symbolKey(c int) int {
	return c + 1
}

// sampleTriples returns s[p:min(p+3, n)] for every sample position p, in
// sample order. The triples alias s.
func sampleTriples(s []int, l layout) [][]int {
	triples := make([][]int, len(l.sample))
	for k, p := range l.sample {
		triples[k] = s[p:min(p+3, len(s))]
	}
	return triples
}

// sortSample returns the sample indexes of l ordered by their suffixes.
//
// The triples alone order the sample whenever they are pairwise distinct.
// Otherwise the triple ranks, read in sample order, form a shorter text whose
// suffix array is exactly the sample order.
func sortSample(s []int, maxSymbol int, l layout) []int {
	triples := sampleTriples(s, l)
	order := RadixSortIndices(triples, maxSymbol+1, symbolKey)
	sortedRanks := Ranks(triples, order, func(a, b []int) bool {
		return slices.Equal(a, b)
	})
	if !HasAdjacentDuplicate(sortedRanks) {
		return order
	}

	reduced := ProjectRanks(order, sortedRanks)
	return suffixArray(reduced, sortedRanks[len(sortedRanks)-1])
}

// sampleRanks returns the final rank of every sample index given the sorted
// sample order. Ranks are dense and start at 1; the dummy keeps rank 0.
func sampleRanks(l layout, order []int) []int {
	ranks := make([]int, len(l.sample))
	rank := 0
	for _, k := range order {
		if l.isDummy(l.sample[k]) {
			continue
		}
		rank++
		ranks[k] = rank
	}
	return ranks
}

// samplePositions translates the sorted sample order into text positions,
// dropping the dummy.
func samplePositions(l layout, order []int) []int {
	positions := make([]int, 0, len(order))
	for _, k := range order {
		if p := l.sample[k]; !l.isDummy(p) {
			positions = append(positions, p)
		}
	}
	return positions
}

// rankTable returns the rank of every sample suffix indexed by position,
// with two trailing zero entries for the empty suffix at n and n+1.
// Non-sample positions hold noRank.
func rankTable(l layout, ranks []int) []int {
	rank := make([]int, l.n+2)
	for p := 0; p < l.n; p++ {
		if k := l.index[p]; k >= 0 {
			rank[p] = ranks[k]
		} else {
			rank[p] = noRank
		}
	}
	rank[l.n], rank[l.n+1] = 0, 0
	return rank
}

// rankAt returns rank[p], panicking on positions that have no rank.
func rankAt(rank []int, p int) int {
	r := rank[p]
	if r == noRank {
		panic("dc3: rank lookup at a non-sample position")
	}
	return r
}
