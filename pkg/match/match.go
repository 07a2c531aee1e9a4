// Package match provides approximate string matching used to tolerate typos in
// style commands: edit distance, similarity scoring, a phonetic code, and ranked
// best/near match lookups over a candidate list.
package match

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Score constants for the non-edit-distance match kinds.
const (
	phoneticScore      = 0.85
	prefixScore        = 0.9
	phoneticFloorScore = 0.7
	minPrefixLen       = 3
)

// Match is a single candidate hit produced by FindBestMatch or FindCloseMatches.
type Match struct {
	Candidate string  `json:"candidate"`
	Score     float64 `json:"score"`
	Exact     bool    `json:"exact"`
	Phonetic  bool    `json:"phonetic"`
}

// Options tunes FindBestMatch.
type Options struct {
	MaxDistance   int
	MinSimilarity float64
	UsePhonetic   bool
}

// DefaultOptions returns the thresholds used for target and value lookups.
func DefaultOptions() Options {
	return Options{
		MaxDistance:   2,
		MinSimilarity: 0.6,
		UsePhonetic:   true,
	}
}

// CloseOptions tunes FindCloseMatches.
type CloseOptions struct {
	MaxResults    int
	MinSimilarity float64
}

// DefaultCloseOptions returns the thresholds used for "did you mean" suggestions.
func DefaultCloseOptions() CloseOptions {
	return CloseOptions{
		MaxResults:    3,
		MinSimilarity: 0.5,
	}
}

// LevenshteinDistance returns the minimum number of single-rune insertions,
// deletions and substitutions needed to turn a into b.
func LevenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Two rolling rows are enough for the distance.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Similarity returns 1 - distance/maxLen in [0,1]. Two empty strings are identical.
func Similarity(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(LevenshteinDistance(a, b))/float64(maxLen)
}

// phoneticGroups maps consonants to their sound group. Letters not listed
// (vowels, h, w, y) are dropped after the first position.
var phoneticGroups = map[rune]byte{
	'b': '1', 'f': '1', 'p': '1', 'v': '1',
	'c': '2', 'g': '2', 'j': '2', 'k': '2', 'q': '2', 's': '2', 'x': '2', 'z': '2',
	'd': '3', 't': '3',
	'l': '4',
	'm': '5', 'n': '5',
	'r': '6',
}

// PhoneticEncode returns a 4-character sound code: the first letter followed by
// up to three consonant group digits, zero padded. Non-letters are ignored and an
// input without letters encodes to "".
func PhoneticEncode(s string) string {
	letters := make([]rune, 0, len(s))
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return ""
	}

	code := []byte{byte(letters[0] - 'a' + 'A')}
	prev := phoneticGroups[letters[0]]
	for _, r := range letters[1:] {
		if len(code) == 4 {
			break
		}
		g, ok := phoneticGroups[r]
		if !ok {
			prev = 0
			continue
		}
		if g != prev {
			code = append(code, g)
		}
		prev = g
	}
	for len(code) < 4 {
		code = append(code, '0')
	}
	return string(code)
}

// IsPhoneticMatch reports whether a and b share a non-empty phonetic code.
func IsPhoneticMatch(a, b string) bool {
	ca := PhoneticEncode(a)
	return ca != "" && ca == PhoneticEncode(b)
}

// FindBestMatch returns the highest scoring candidate for input, or nil when
// nothing reaches opts.MinSimilarity. An exact case-insensitive hit always wins.
func FindBestMatch(input string, candidates []string, opts Options) *Match {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" || len(candidates) == 0 {
		return nil
	}

	for _, c := range candidates {
		if strings.ToLower(c) == needle {
			return &Match{Candidate: c, Score: 1, Exact: true}
		}
	}

	var best *Match
	consider := func(m Match) {
		if best == nil || m.Score > best.Score {
			best = &m
		}
	}

	for _, c := range candidates {
		lc := strings.ToLower(c)
		if LevenshteinDistance(needle, lc) <= opts.MaxDistance {
			consider(Match{Candidate: c, Score: Similarity(needle, lc)})
		}
	}

	if opts.UsePhonetic {
		for _, c := range candidates {
			if IsPhoneticMatch(needle, c) {
				consider(Match{Candidate: c, Score: phoneticScore, Phonetic: true})
			}
		}
	}

	if len([]rune(needle)) >= minPrefixLen {
		for _, c := range candidates {
			if strings.HasPrefix(strings.ToLower(c), needle) {
				consider(Match{Candidate: c, Score: prefixScore})
			}
		}
	}

	if best == nil || best.Score < opts.MinSimilarity {
		return nil
	}
	return best
}

// FindCloseMatches ranks every candidate by similarity (phonetic matches are
// floored at 0.7) and returns up to opts.MaxResults hits, best first.
func FindCloseMatches(input string, candidates []string, opts CloseOptions) []Match {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return nil
	}

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		lc := strings.ToLower(c)
		m := Match{Candidate: c, Score: Similarity(needle, lc), Exact: lc == needle}
		if IsPhoneticMatch(needle, lc) && m.Score < phoneticFloorScore {
			m.Score = phoneticFloorScore
			m.Phonetic = true
		}
		if m.Score >= opts.MinSimilarity {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if opts.MaxResults > 0 && len(matches) > opts.MaxResults {
		matches = matches[:opts.MaxResults]
	}
	return matches
}

// Suggest returns up to limit candidate names for a "did you mean" message.
// Close matches come first, then candidates that contain input as a
// case-insensitive subsequence ranked by edit distance.
func Suggest(input string, candidates []string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	seen := make(map[string]bool, limit)
	out := make([]string, 0, limit)
	add := func(s string) {
		if len(out) < limit && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, m := range FindCloseMatches(input, candidates, CloseOptions{MaxResults: limit, MinSimilarity: 0.5}) {
		add(m.Candidate)
	}

	ranks := fuzzy.RankFindFold(strings.TrimSpace(input), candidates)
	sort.Sort(ranks)
	for _, r := range ranks {
		add(r.Target)
	}

	return out
}
