package dc3

// absentKey is the key of a digit past the end of a tuple.
// It sorts before every present digit.
const absentKey = 0

// RadixSortIndices returns the indices of tuples in lexicographic order.
//
// Tuples may differ in length. A digit past the end of a tuple is absent and
// always sorts first, so a tuple sorts before any of its extensions. key maps a
// present digit to its bucket and must return a value in [1, maxKey].
//
// The sort is least-significant-digit first: one stable bucket pass per digit
// position, from the last position down to the first, each pass reordering the
// output of the previous one. Runs in O(L * (len(tuples) + maxKey)) where L is
// the length of the longest tuple.
func RadixSortIndices[E any](tuples [][]E, maxKey int, key func(E) int) []int {
	order := make([]int, len(tuples))
	width := 0
	for i, t := range tuples {
		order[i] = i
		width = max(width, len(t))
	}

	for d := width - 1; d >= 0; d-- {
		order = BucketSort(order, maxKey, func(i int) int {
			t := tuples[i]
			if d >= len(t) {
				return absentKey
			}
			k := key(t[d])
			if k <= absentKey {
				panic("dc3: present digit mapped to the absent key")
			}
			return k
		})
	}
	return order
}

// RadixSort returns a new slice holding tuples in lexicographic order.
// See RadixSortIndices for the key contract.
func RadixSort[E any](tuples [][]E, maxKey int, key func(E) int) [][]E {
	order := RadixSortIndices(tuples, maxKey, key)
	sorted := make([][]E, len(order))
	for i, j := range order {
		sorted[i] = tuples[j]
	}
	return sorted
}
