package names

// ShapeCounts counts events by the key shape that triggered them.
type ShapeCounts [numShapes]int

// Total sums counts of all shapes.
func (sc ShapeCounts) Total() int {
	var res int
	for _, v := range sc {
		res += v
	}
	return res
}

// Map returns non-zero counts keyed by shape name.
func (sc ShapeCounts) Map() map[string]int {
	res := make(map[string]int)
	for i, v := range sc {
		if v > 0 {
			res[KeyShape(i).String()] = v
		}
	}
	return res
}

// Stats collects data-quality observations made while building names.
// It is returned by value so that callers decide how to aggregate it.
type Stats struct {
	// Places is the number of processed places.
	Places int `yaml:"places"`

	// Names is the number of produced geo name rows.
	Names int `yaml:"names"`

	// EmptyLanguage counts alternate names of a place without language.
	EmptyLanguage int `yaml:"empty_language"`

	// MissingLevel counts ancestor levels that had no name at all.
	MissingLevel int `yaml:"missing_level"`

	// InfoNameFallback counts levels named from place display names.
	InfoNameFallback int `yaml:"infoname_fallback"`

	// MultipleMatches counts levels where several candidates shared the
	// chosen script.
	MultipleMatches ShapeCounts `yaml:"-"`

	// PartialScript counts levels matched by a secondary script of the
	// reference name.
	PartialScript ShapeCounts `yaml:"-"`

	// ScriptMismatch counts levels where no candidate shared a script
	// with the reference name.
	ScriptMismatch ShapeCounts `yaml:"-"`
}

// Merge adds counts from other.
func (s *Stats) Merge(other Stats) {
	s.Places += other.Places
	s.Names += other.Names
	s.EmptyLanguage += other.EmptyLanguage
	s.MissingLevel += other.MissingLevel
	s.InfoNameFallback += other.InfoNameFallback
	for i := range numShapes {
		s.MultipleMatches[i] += other.MultipleMatches[i]
		s.PartialScript[i] += other.PartialScript[i]
		s.ScriptMismatch[i] += other.ScriptMismatch[i]
	}
}

func (s *Stats) recordMatch(shape KeyShape, m MatchResult) {
	if m.Count != 1 {
		s.MultipleMatches[shape]++
	}
	if !m.Predominant {
		s.PartialScript[shape]++
	}
	if !m.ScriptInCommon {
		s.ScriptMismatch[shape]++
	}
}
