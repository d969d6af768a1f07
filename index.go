package dc3

import (
	"bytes"
	"errors"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/viniciusth/rmq"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidUTF8 = errors.New("dc3: invalid UTF-8 encoding in input text")
)

type IndexBuilder struct {
	text               string
	caseSensitive      bool
	normalize          bool
	useFirstOccurrence bool
}

func NewBuilder(text string) *IndexBuilder {
	return &IndexBuilder{
		text:               text,
		caseSensitive:      false,
		normalize:          true,
		useFirstOccurrence: true,
	}
}

// Makes the search case sensitive.
func (b *IndexBuilder) CaseSensitive() *IndexBuilder {
	b.caseSensitive = true
	return b
}

// Skips the normalization of the text with NFC.
func (b *IndexBuilder) SkipNormalization() *IndexBuilder {
	b.normalize = false
	return b
}

// Skips the range minimum structure over the suffix array.
// First then scans every match, O(occ) instead of O(1) after the binary search.
// Saves O(|S|) memory.
func (b *IndexBuilder) SkipFirstOccurrence() *IndexBuilder {
	b.useFirstOccurrence = false
	return b
}

func (b *IndexBuilder) Build() (*Index, error) {
	if !utf8.ValidString(b.text) {
		return nil, ErrInvalidUTF8
	}

	text := []byte(applyTransforms(b.text, b.caseSensitive, b.normalize))
	suffixArray, err := BuildSuffixArray(text)
	if err != nil {
		return nil, err
	}

	var firstRMQ *rmq.RMQHybridNaive[int]
	if b.useFirstOccurrence && len(suffixArray) > 0 {
		firstRMQ = rmq.NewRMQHybridNaive(suffixArray)
	}
	return &Index{
		text:          text,
		suffixArray:   suffixArray,
		firstRMQ:      firstRMQ,
		caseSensitive: b.caseSensitive,
		normalize:     b.normalize,
	}, nil
}

// Index answers substring queries over one text through its suffix array.
// Offsets are byte offsets into the transformed text.
type Index struct {
	text          []byte
	suffixArray   []int
	firstRMQ      *rmq.RMQHybridNaive[int]
	caseSensitive bool
	normalize     bool
}

func applyTransforms(text string, caseSensitive bool, normalize bool) string {
	if !caseSensitive {
		text = strings.ToLower(text)
	}
	if normalize {
		text = norm.NFC.String(text)
	}
	return text
}

// Len returns the length of the indexed text in bytes.
func (x *Index) Len() int {
	return len(x.text)
}

// Text returns the indexed text after case folding and normalization.
func (x *Index) Text() string {
	return string(x.text)
}

// SuffixArray returns a copy of the suffix array.
func (x *Index) SuffixArray() []int {
	return append([]int(nil), x.suffixArray...)
}

// Suffix returns the k-th smallest suffix.
func (x *Index) Suffix(k int) string {
	return string(x.text[x.suffixArray[k]:])
}

// Suffixes returns every suffix of the text in ascending order.
func (x *Index) Suffixes() []string {
	suffixes := make([]string, len(x.suffixArray))
	for k := range x.suffixArray {
		suffixes[k] = x.Suffix(k)
	}
	return suffixes
}

// Lookup returns the offsets of every occurrence of pattern, in suffix order.
func (x *Index) Lookup(pattern string) []int {
	l, r := x.boundaries(pattern)
	if l == -1 {
		return nil
	}
	return append([]int(nil), x.suffixArray[l:r+1]...)
}

// Count returns the number of occurrences of pattern.
func (x *Index) Count(pattern string) int {
	l, r := x.boundaries(pattern)
	if l == -1 {
		return 0
	}
	return r - l + 1
}

// Contains reports whether pattern occurs in the text.
func (x *Index) Contains(pattern string) bool {
	l, _ := x.boundaries(pattern)
	return l != -1
}

// First returns the offset of the leftmost occurrence of pattern, or -1.
func (x *Index) First(pattern string) int {
	l, r := x.boundaries(pattern)
	if l == -1 {
		return -1
	}
	if x.firstRMQ != nil {
		return x.suffixArray[x.firstRMQ.Query(l, r)]
	}

	first := x.suffixArray[l]
	for _, p := range x.suffixArray[l+1 : r+1] {
		first = min(first, p)
	}
	return first
}

func (x *Index) boundaries(pattern string) (int, int) {
	p := []byte(applyTransforms(pattern, x.caseSensitive, x.normalize))
	return findBoundaries(p, x.text, x.suffixArray)
}

// findBoundaries returns the inclusive range [l, r] of the suffix array whose
// suffixes start with pattern, or -1, -1 when there is none.
func findBoundaries(pattern []byte, str []byte, suffixArray []int) (int, int) {
	n := len(suffixArray)

	// find first l where p <= s[l:]
	l := sort.Search(n, func(i int) bool {
		return bytes.Compare(pattern, str[suffixArray[i]:]) <= 0
	})
	if l == n || !bytes.HasPrefix(str[suffixArray[l]:], pattern) {
		return -1, -1
	}

	// we have T T T F F F where pattern is a prefix.
	// sort.Search wants F F F T T T, so search the negation and step back one.
	r := sort.Search(n-l, func(i int) bool {
		return !bytes.HasPrefix(str[suffixArray[l+i]:], pattern)
	})
	return l, l + r - 1
}
