// Package dc3 builds suffix arrays in linear time with the DC3 ("skew")
// algorithm of Kärkkäinen and Sanders, and offers a small text index on top.
//
// The text is a sequence of non-negative integer symbols. It is treated as if
// followed by a sentinel smaller than every symbol, so a suffix sorts before
// all of its extensions.
package dc3

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	ErrInvalidSymbol = errors.New("dc3: symbol is negative or does not fit in an int")
)

// BuildSuffixArray returns the suffix array of text: the permutation of
// [0, len(text)) that orders the suffixes text[i:] lexicographically.
//
// The sorting passes allocate one bucket per symbol value, so memory grows
// with the largest symbol as well as with len(text).
func BuildSuffixArray[S constraints.Integer](text []S) ([]int, error) {
	s := make([]int, len(text))
	maxSymbol := 0
	for i, c := range text {
		v := int(c)
		if c < 0 || v < 0 || S(v) != c {
			return nil, ErrInvalidSymbol
		}
		s[i] = v
		maxSymbol = max(maxSymbol, v)
	}
	return suffixArray(s, maxSymbol), nil
}

// suffixArray computes the suffix array of s, whose symbols lie in
// [0, maxSymbol]. Each phase allocates its own result and hands it on.
func suffixArray(s []int, maxSymbol int) []int {
	switch len(s) {
	case 0:
		return []int{}
	case 1:
		return []int{0}
	}

	l := newLayout(len(s))
	order := sortSample(s, maxSymbol, l)
	rank := rankTable(l, sampleRanks(l, order))
	nonSample := sortNonSample(s, maxSymbol, rank)
	return merge(s, rank, samplePositions(l, order), nonSample)
}
