package dc3

// BucketSortIndices returns the indices of items ordered by ascending key.
// Items sharing a key keep their original relative order.
//
// Every key must lie in [0, maxKey]. Key 0 is reserved by the callers in this
// package for "nothing here" (a position past the end of a tuple), so real
// values are expected to map to keys >= 1.
// Runs in O(len(items) + maxKey).
func BucketSortIndices[E any](items []E, maxKey int, key func(E) int) []int {
	if len(items) == 0 {
		return []int{}
	}
	if maxKey < 0 {
		panic("dc3: negative maxKey in bucket sort")
	}

	// Keys are computed once; key may be arbitrarily expensive.
	keys := make([]int, len(items))
	bucket := make([]int, maxKey+1)
	for i, item := range items {
		k := key(item)
		if k < 0 || k > maxKey {
			panic("dc3: bucket key out of range")
		}
		keys[i] = k
		bucket[k]++
	}

	// bucket[k] becomes the first output slot for key k.
	total := 0
	for k, count := range bucket {
		bucket[k] = total
		total += count
	}

	sorted := make([]int, len(items))
	for i, k := range keys {
		sorted[bucket[k]] = i
		bucket[k]++
	}
	return sorted
}

// BucketSort returns a new slice with the items of items stably ordered by key.
// See BucketSortIndices for the key contract.
func BucketSort[E any](items []E, maxKey int, key func(E) int) []E {
	order := BucketSortIndices(items, maxKey, key)
	sorted := make([]E, len(order))
	for i, j := range order {
		sorted[i] = items[j]
	}
	return sorted
}
