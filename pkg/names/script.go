package names

import (
	"slices"
	"sort"
	"unicode"
)

// ScriptUnknown is reported for runes outside of every Unicode script
// table (unassigned code points, invalid UTF-8).
const ScriptUnknown = "Unknown"

// scriptOrder lists script tables with the ones common in geonames
// first. Scripts are disjoint, so the order only affects speed.
var scriptOrder = func() []string {
	first := []string{
		"Latin", "Common", "Cyrillic", "Han", "Arabic", "Inherited",
		"Greek", "Hangul", "Hebrew", "Katakana", "Hiragana", "Thai",
		"Devanagari", "Georgian", "Armenian",
	}
	rest := make([]string, 0, len(unicode.Scripts))
	for name := range unicode.Scripts {
		if !slices.Contains(first, name) {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(first, rest...)
}()

// ScriptOf returns the Unicode script name of a rune.
func ScriptOf(r rune) string {
	if r < 0x80 {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			return "Latin"
		}
		return "Common"
	}
	for _, name := range scriptOrder {
		if unicode.Is(unicode.Scripts[name], r) {
			return name
		}
	}
	return ScriptUnknown
}

// Tally is a frequency table of scripts used in a string. It remembers
// the order in which scripts were first seen so ranking is
// deterministic.
type Tally struct {
	order  []string
	counts map[string]int
}

// NewTally classifies every rune of s and counts scripts.
func NewTally(s string) Tally {
	t := Tally{counts: make(map[string]int)}
	for _, r := range s {
		script := ScriptOf(r)
		if _, ok := t.counts[script]; !ok {
			t.order = append(t.order, script)
		}
		t.counts[script]++
	}
	return t
}

// Ranked returns scripts from the most to the least frequent. Equal
// counts keep the order of first appearance in the string.
func (t Tally) Ranked() []string {
	res := slices.Clone(t.order)
	slices.SortStableFunc(res, func(a, b string) int {
		return t.counts[b] - t.counts[a]
	})
	return res
}

// Dominant returns the most frequent script, or an empty string for an
// empty tally.
func (t Tally) Dominant() string {
	ranked := t.Ranked()
	if len(ranked) == 0 {
		return ""
	}
	return ranked[0]
}
