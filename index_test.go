package dc3_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viniciusth/dc3"
)

// naiveOccurrences returns every offset where pattern starts in text.
func naiveOccurrences(text, pattern string) []int {
	var res []int
	for i := 0; i+len(pattern) <= len(text); i++ {
		if strings.HasPrefix(text[i:], pattern) {
			res = append(res, i)
		}
	}
	return res
}

// TestIndex_Suffixes checks the sorted suffix listing of a plain text.
func TestIndex_Suffixes(t *testing.T) {
	idx, err := dc3.NewBuilder("yabbadabbado").Build()
	require.NoError(t, err)

	assert.Equal(t, 12, idx.Len())
	assert.Equal(t, []int{1, 6, 4, 9, 3, 8, 2, 7, 5, 10, 11, 0}, idx.SuffixArray())
	assert.Equal(t, []string{
		"abbadabbado",
		"abbado",
		"adabbado",
		"ado",
		"badabbado",
		"bado",
		"bbadabbado",
		"bbado",
		"dabbado",
		"do",
		"o",
		"yabbadabbado",
	}, idx.Suffixes())
	assert.Equal(t, "abbado", idx.Suffix(1))
}

// TestIndex_SuffixArrayIsACopy ensures callers cannot corrupt the index.
func TestIndex_SuffixArrayIsACopy(t *testing.T) {
	idx, err := dc3.NewBuilder("insense").Build()
	require.NoError(t, err)

	sa := idx.SuffixArray()
	sa[0] = 42
	assert.Equal(t, []int{6, 3, 0, 4, 1, 5, 2}, idx.SuffixArray())
}

// TestIndex_Lookup runs the queries with and without the range minimum structure.
func TestIndex_Lookup(t *testing.T) {
	tests := []struct {
		pattern string
		lookup  []int
		first   int
	}{
		{"abba", []int{1, 6}, 1},
		{"bad", []int{3, 8}, 3},
		{"o", []int{11}, 11},
		{"yabbadabbado", []int{0}, 0},
		{"a", []int{1, 6, 4, 9}, 1},
		{"xyz", nil, -1},
		{"yabbadabbadoo", nil, -1},
	}

	for _, skip := range []bool{false, true} {
		b := dc3.NewBuilder("yabbadabbado")
		if skip {
			b = b.SkipFirstOccurrence()
		}
		idx, err := b.Build()
		require.NoError(t, err)

		for _, tc := range tests {
			assert.Equal(t, tc.lookup, idx.Lookup(tc.pattern), "Lookup(%q) skip=%v", tc.pattern, skip)
			assert.Equal(t, len(tc.lookup), idx.Count(tc.pattern), "Count(%q) skip=%v", tc.pattern, skip)
			assert.Equal(t, tc.first, idx.First(tc.pattern), "First(%q) skip=%v", tc.pattern, skip)
			assert.Equal(t, tc.lookup != nil, idx.Contains(tc.pattern), "Contains(%q) skip=%v", tc.pattern, skip)
		}

		// the empty pattern matches every suffix
		assert.Equal(t, 12, idx.Count(""))
		assert.Equal(t, 0, idx.First(""))
	}
}

// TestIndex_CaseSensitivity verifies the default case folding and its opt-out.
func TestIndex_CaseSensitivity(t *testing.T) {
	folded, err := dc3.NewBuilder("YabbaDabbaDo").Build()
	require.NoError(t, err)
	assert.Equal(t, "yabbadabbado", folded.Text())
	assert.Equal(t, []int{5}, folded.Lookup("DAB"))
	assert.Equal(t, 2, folded.Count("Abba"))

	exact, err := dc3.NewBuilder("YabbaDabbaDo").CaseSensitive().Build()
	require.NoError(t, err)
	assert.Nil(t, exact.Lookup("dab"))
	assert.Equal(t, []int{5}, exact.Lookup("Dab"))
	assert.Equal(t, 10, exact.First("Do"))
}

// TestIndex_Normalization checks that decomposed input matches precomposed patterns.
func TestIndex_Normalization(t *testing.T) {
	const decomposed = "cafe\u0301 au lait"

	idx, err := dc3.NewBuilder(decomposed).Build()
	require.NoError(t, err)
	assert.Equal(t, 1, idx.Count("caf\u00e9"))
	assert.Equal(t, 0, idx.First("caf\u00e9"))

	raw, err := dc3.NewBuilder(decomposed).SkipNormalization().Build()
	require.NoError(t, err)
	assert.Equal(t, 0, raw.Count("caf\u00e9"))
	assert.Equal(t, 1, raw.Count("e\u0301"))
}

// TestIndex_InvalidUTF8 verifies that malformed text is rejected.
func TestIndex_InvalidUTF8(t *testing.T) {
	_, err := dc3.NewBuilder("abc\xff").Build()
	assert.ErrorIs(t, err, dc3.ErrInvalidUTF8)
}

// TestIndex_Empty covers the zero-length text.
func TestIndex_Empty(t *testing.T) {
	idx, err := dc3.NewBuilder("").Build()
	require.NoError(t, err)

	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.SuffixArray())
	assert.Empty(t, idx.Suffixes())
	assert.Equal(t, 0, idx.Count("a"))
	assert.Equal(t, -1, idx.First(""))
	assert.False(t, idx.Contains("a"))
}

func FuzzIndex(f *testing.F) {
	f.Add("yabbadabbado", "abba")
	f.Add("mississippi", "issi")
	f.Add("aaaaaaaa", "aa")

	f.Fuzz(func(t *testing.T, text, pattern string) {
		if !utf8.ValidString(text) || !utf8.ValidString(pattern) {
			return
		}
		if len(text) > 1000 || len(pattern) == 0 || len(pattern) > 50 {
			return
		}

		idx, err := dc3.NewBuilder(text).CaseSensitive().SkipNormalization().Build()
		require.NoError(t, err)

		want := naiveOccurrences(text, pattern)
		got := idx.Lookup(pattern)
		assert.ElementsMatch(t, want, got)
		assert.Equal(t, len(want), idx.Count(pattern))
		assert.Equal(t, strings.Index(text, pattern), idx.First(pattern))
	})
}
