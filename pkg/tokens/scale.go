package tokens

import (
	"math"
	"strconv"
	"strings"
)

// Step is one named position on a discrete scale.
type Step struct {
	Name  string
	Value string
}

// Scale is an ordered list of steps, smallest first.
type Scale []Step

// Names returns the step names in order.
func (sc Scale) Names() []string {
	names := make([]string, len(sc))
	for i, st := range sc {
		names[i] = st.Name
	}
	return names
}

// Value returns the token value for a step name.
func (sc Scale) Value(name string) (string, bool) {
	if i := sc.Index(name); i >= 0 {
		return sc[i].Value, true
	}
	return "", false
}

// Index returns the position of a step name, or -1.
func (sc Scale) Index(name string) int {
	for i, st := range sc {
		if st.Name == name {
			return i
		}
	}
	return -1
}

// Locate finds the step a token value sits on. Exact matches win; otherwise
// the value is parsed as a rem/px length and snapped to the nearest step.
// Returns -1 when the value cannot be placed.
func (sc Scale) Locate(value string) int {
	v := strings.TrimSpace(value)
	for i, st := range sc {
		if st.Value == v {
			return i
		}
	}

	target, ok := lengthInRem(v)
	if !ok {
		return -1
	}

	best, bestDiff := -1, math.Inf(1)
	for i, st := range sc {
		rem, ok := lengthInRem(st.Value)
		if !ok {
			continue
		}
		if d := math.Abs(rem - target); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}

// Step moves from index by delta positions, saturating at both ends.
func (sc Scale) Step(index, delta int) Step {
	i := min(max(index+delta, 0), len(sc)-1)
	return sc[i]
}

// lengthInRem parses "0", "<n>rem" or "<n>px" (16px = 1rem).
func lengthInRem(s string) (float64, bool) {
	switch {
	case s == "0":
		return 0, true
	case strings.HasSuffix(s, "rem"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "rem"), 64)
		return f, err == nil
	case strings.HasSuffix(s, "px"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
		return f / 16, err == nil
	}
	return 0, false
}

// IsLength reports whether s is a plain CSS length this package can place
// on a scale: "0", "<n>rem" or "<n>px".
func IsLength(s string) bool {
	_, ok := lengthInRem(strings.TrimSpace(s))
	return ok
}
