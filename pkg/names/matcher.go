package names

// MatchResult describes the candidate chosen by Match.
type MatchResult struct {
	// Candidate is the chosen name record.
	Candidate Candidate

	// Count is the number of candidates written predominantly in the same
	// script as the chosen one.
	Count int

	// ScriptInCommon is true if the chosen candidate shares a script with
	// the reference name.
	ScriptInCommon bool

	// Predominant is true when the match uses the most frequent script of
	// the reference name.
	Predominant bool
}

// Match picks a candidate written in the same script as ref. Candidates
// are grouped by their dominant script, then scripts of ref are tried from
// the most frequent one. The first candidate of the first matching group
// wins. Without any script in common the first candidate is returned.
func Match(ref string, cands []Candidate) MatchResult {
	if len(cands) == 0 {
		return MatchResult{}
	}

	groups := make(map[string][]Candidate)
	for _, c := range cands {
		script := NewTally(c.Text()).Dominant()
		groups[script] = append(groups[script], c)
	}

	for i, script := range NewTally(ref).Ranked() {
		group, ok := groups[script]
		if !ok {
			continue
		}
		return MatchResult{
			Candidate:      group[0],
			Count:          len(group),
			ScriptInCommon: true,
			Predominant:    i == 0,
		}
	}

	return MatchResult{Candidate: cands[0], Count: 1}
}
