package dc3

// Ranks assigns dense ranks to items walked in the given sorted order.
// The first item gets rank 1; every following item shares its predecessor's
// rank when equal reports them equal and gets the next rank otherwise.
//
// The result is aligned to order, not to items: ranks[k] is the rank of
// items[order[k]]. Use ProjectRanks to map it back onto items.
func Ranks[E any](items []E, order []int, equal func(a, b E) bool) []int {
	ranks := make([]int, len(order))
	for k, i := range order {
		switch {
		case k == 0:
			ranks[k] = 1
		case equal(items[order[k-1]], items[i]):
			ranks[k] = ranks[k-1]
		default:
			ranks[k] = ranks[k-1] + 1
		}
	}
	return ranks
}

// ProjectRanks returns the ranks indexed by original item index,
// given ranks aligned to order as returned by Ranks.
func ProjectRanks(order, sortedRanks []int) []int {
	if len(order) != len(sortedRanks) {
		panic("dc3: misuse of ProjectRanks")
	}
	projected := make([]int, len(order))
	for k, i := range order {
		projected[i] = sortedRanks[k]
	}
	return projected
}

// HasAdjacentDuplicate reports whether two neighbouring entries of
// sortedRanks are equal. On ranks returned by Ranks this means at least two
// items were found equal.
func HasAdjacentDuplicate(sortedRanks []int) bool {
	for k := 1; k < len(sortedRanks); k++ {
		if sortedRanks[k-1] == sortedRanks[k] {
			return true
		}
	}
	return false
}
