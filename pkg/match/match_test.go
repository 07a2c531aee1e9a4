package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"flaw", "lawn", 2},
		{"background", "backgroud", 1},
		{"primary", "primary", 0},
	}

	for _, tc := range tests {
		t.Run(tc.a+"/"+tc.b, func(t *testing.T) {
			assert.Equal(t, tc.want, LevenshteinDistance(tc.a, tc.b))
			assert.Equal(t, tc.want, LevenshteinDistance(tc.b, tc.a), "distance must be symmetric")
		})
	}
}

func TestLevenshteinDistance_Identity(t *testing.T) {
	for _, s := range []string{"", "a", "border", "dark mode", "ünïcødé"} {
		assert.Zero(t, LevenshteinDistance(s, s), s)
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 1.0, Similarity("blue", "blue"))
	assert.Equal(t, 0.0, Similarity("abc", "xyz"))
	assert.InDelta(t, 1-3.0/7.0, Similarity("kitten", "sitting"), 1e-9)
	assert.InDelta(t, 0.9, Similarity("background", "backgroud"), 1e-9)
}

func TestPhoneticEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Robert", "R163"},
		{"Rupert", "R163"},
		{"Tymczak", "T522"},
		{"a", "A000"},
		{"gray", "G600"},
		{"grey", "G600"},
		{"", ""},
		{"123", ""},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got := PhoneticEncode(tc.in)
			assert.Equal(t, tc.want, got)
			if got != "" {
				assert.Len(t, got, 4)
			}
		})
	}
}

func TestIsPhoneticMatch(t *testing.T) {
	assert.True(t, IsPhoneticMatch("gray", "grey"))
	assert.True(t, IsPhoneticMatch("Robert", "rupert"))
	assert.False(t, IsPhoneticMatch("blue", "red"))
	assert.False(t, IsPhoneticMatch("", ""))
}

func TestFindBestMatch_ExactAlwaysWins(t *testing.T) {
	candidates := []string{"backgrounds", "Background", "backdrop", "background color"}
	for _, input := range []string{"background", "BACKGROUND", "  Background  "} {
		m := FindBestMatch(input, candidates, DefaultOptions())
		require.NotNil(t, m, input)
		assert.Equal(t, "Background", m.Candidate)
		assert.True(t, m.Exact)
		assert.Equal(t, 1.0, m.Score)
	}
}

func TestFindBestMatch_EditDistance(t *testing.T) {
	m := FindBestMatch("backgroud", []string{"border", "background", "primary"}, DefaultOptions())
	require.NotNil(t, m)
	assert.Equal(t, "background", m.Candidate)
	assert.False(t, m.Exact)
	assert.InDelta(t, 0.9, m.Score, 1e-9)
}

func TestFindBestMatch_Phonetic(t *testing.T) {
	opts := Options{MaxDistance: 0, MinSimilarity: 0.6, UsePhonetic: true}
	m := FindBestMatch("grey", []string{"gray", "green"}, opts)
	require.NotNil(t, m)
	assert.Equal(t, "gray", m.Candidate)
	assert.True(t, m.Phonetic)
	assert.Equal(t, 0.85, m.Score)

	opts.UsePhonetic = false
	assert.Nil(t, FindBestMatch("grey", []string{"gray", "green"}, opts))
}

func TestFindBestMatch_Prefix(t *testing.T) {
	opts := Options{MaxDistance: 0, MinSimilarity: 0.6}
	m := FindBestMatch("secon", []string{"secondary", "primary"}, opts)
	require.NotNil(t, m)
	assert.Equal(t, "secondary", m.Candidate)
	assert.Equal(t, 0.9, m.Score)

	// Too short for a prefix hit.
	assert.Nil(t, FindBestMatch("se", []string{"secondary"}, opts))
}

func TestFindBestMatch_BelowThreshold(t *testing.T) {
	assert.Nil(t, FindBestMatch("xyzzy", []string{"background", "primary"}, DefaultOptions()))
	assert.Nil(t, FindBestMatch("", []string{"background"}, DefaultOptions()))
	assert.Nil(t, FindBestMatch("blue", nil, DefaultOptions()))
}

func TestFindCloseMatches(t *testing.T) {
	candidates := []string{"primary", "primery", "secondary", "prime"}
	got := FindCloseMatches("primari", candidates, CloseOptions{MaxResults: 2, MinSimilarity: 0.5})

	require.Len(t, got, 2)
	assert.GreaterOrEqual(t, got[0].Score, got[1].Score)
	assert.Contains(t, []string{"primary", "primery"}, got[0].Candidate)

	for _, m := range FindCloseMatches("primari", candidates, CloseOptions{MinSimilarity: 0.5}) {
		assert.GreaterOrEqual(t, m.Score, 0.5)
	}
}

func TestFindCloseMatches_PhoneticFloor(t *testing.T) {
	got := FindCloseMatches("fone", []string{"phone"}, CloseOptions{MinSimilarity: 0.7})
	assert.Empty(t, got, "different first letters never share a code")

	got = FindCloseMatches("grey", []string{"gray"}, CloseOptions{MinSimilarity: 0.7})
	require.Len(t, got, 1)
	assert.GreaterOrEqual(t, got[0].Score, 0.7)
}

func TestSuggest(t *testing.T) {
	candidates := []string{"vibrant", "professional", "playful", "minimal"}

	got := Suggest("profesional", candidates, 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "professional", got[0])

	got = Suggest("pfl", candidates, 3)
	assert.Contains(t, got, "playful", "subsequence hit should be suggested")

	assert.Nil(t, Suggest("anything", candidates, 0))
}
