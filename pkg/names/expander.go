package names

import "strings"

// Separator joins name fragments of an expanded name.
const Separator = ", "

// ScriptPolicy decides what happens when no candidate for an ancestor
// shares a script with the name being expanded.
type ScriptPolicy int

const (
	// FallbackFirst uses the first candidate anyway.
	FallbackFirst ScriptPolicy = iota
	// SkipMismatch leaves the ancestor out of the expanded name.
	SkipMismatch
)

// ParseScriptPolicy converts a configuration value to ScriptPolicy.
func ParseScriptPolicy(s string) (ScriptPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fallback", "":
		return FallbackFirst, true
	case "skip":
		return SkipMismatch, true
	default:
		return FallbackFirst, false
	}
}

// String returns the configuration value of the policy.
func (p ScriptPolicy) String() string {
	if p == SkipMismatch {
		return "skip"
	}
	return "fallback"
}

// Expander builds fully qualified names like
// "Springfield, Sangamon County, Illinois, United States".
type Expander struct {
	Policy ScriptPolicy
}

// Expand returns the name of ref followed by names of its ancestors in
// chain order (leaf first, country last). Ancestors without a usable
// name are left out. Display name references are expanded with
// ExpandDisplay.
func (e Expander) Expand(
	ix *Index,
	ref Candidate,
	chain []int64,
) (string, Stats) {
	if ref.Kind == CandidateDisplay {
		_, full := ExpandDisplay(ix, chain, false)
		return full, Stats{}
	}

	var stats Stats
	fragments := []string{ref.Text()}
	if len(chain) > 1 {
		for _, gid := range chain[1:] {
			if gid == 0 {
				continue
			}
			name, ok := e.closestMatch(ix, ref.Alternate, gid, &stats)
			if ok && name != "" {
				fragments = append(fragments, name)
			}
		}
	}
	return strings.Join(fragments, Separator), stats
}

// closestMatch finds a name for the container gid with language and
// flags as close as possible to ref.
func (e Expander) closestMatch(
	ix *Index,
	ref AlternateName,
	gid int64,
	stats *Stats,
) (string, bool) {
	for _, k := range priorityKeys(ref, gid) {
		cands, ok := ix.Lookup(k)
		if !ok {
			continue
		}
		m := Match(ref.Text, cands)
		stats.recordMatch(k.Shape, m)
		if !m.ScriptInCommon && e.Policy == SkipMismatch {
			return "", false
		}
		if k.Shape == ShapeInfoName {
			stats.InfoNameFallback++
		}
		return m.Candidate.Text(), true
	}
	stats.MissingLevel++
	return "", false
}

// ExpandDisplay builds an expanded name from display names of every
// place in chain, including the leaf. With useASCII it uses ASCII
// names. It returns the first fragment as a short name and the joined
// fragments as a full name.
func ExpandDisplay(ix *Index, chain []int64, useASCII bool) (string, string) {
	var fragments []string
	for _, gid := range chain {
		if gid == 0 {
			continue
		}
		d, ok := ix.Display(gid)
		if !ok {
			continue
		}
		name := d.Name
		if useASCII {
			name = d.ASCIIName
		}
		if name != "" {
			fragments = append(fragments, name)
		}
	}
	if len(fragments) == 0 {
		return "", ""
	}
	return fragments[0], strings.Join(fragments, Separator)
}
