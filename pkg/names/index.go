package names

import "slices"

// Index keeps name candidates of a place and its administrative
// ancestors under several keys so that lookups can fall back from the
// most specific key to the least specific one.
//
// An Index belongs to one place and should be dropped once the rows of
// that place are produced.
type Index struct {
	entries map[Key][]Candidate
}

// BuildIndex indexes alternate and display names of the places in
// chain. The first element of chain is the place itself; records of
// other places are ignored. It returns the index, URLs from 'link'
// records of the leaf place, and statistics.
func BuildIndex(
	chain []int64,
	alts []AlternateName,
	displays []DisplayName,
) (*Index, []string, Stats) {
	var stats Stats
	var links []string
	ix := &Index{entries: make(map[Key][]Candidate)}
	if len(chain) == 0 {
		return ix, links, stats
	}
	leaf := chain[0]

	inChain := make(map[int64]struct{}, len(chain))
	for _, id := range chain {
		if id != 0 {
			inChain[id] = struct{}{}
		}
	}

	for _, a := range alts {
		if _, ok := inChain[a.GeoID]; !ok {
			continue
		}
		switch a.Lang {
		case "":
			if a.GeoID == leaf {
				stats.EmptyLanguage++
			}
			continue
		case LangLink:
			if a.GeoID == leaf {
				links = append(links, a.Text)
			}
			continue
		}
		c := FromAlternate(a)
		for _, k := range keysOf(a) {
			ix.add(k, c)
		}
	}

	for _, d := range displays {
		if _, ok := inChain[d.GeoID]; !ok {
			continue
		}
		ix.add(InfoNameKey(d.GeoID), FromDisplay(d))
	}

	return ix, links, stats
}

func (ix *Index) add(k Key, c Candidate) {
	ix.entries[k] = append(ix.entries[k], c)
}

// Lookup returns candidates stored under the key.
func (ix *Index) Lookup(k Key) ([]Candidate, bool) {
	res, ok := ix.entries[k]
	return res, ok
}

// Len returns the number of keys.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Names returns alternate names of a place in the order they were
// indexed.
func (ix *Index) Names(geoID int64) []AlternateName {
	cands := ix.entries[GeoIDKey(geoID)]
	res := make([]AlternateName, 0, len(cands))
	for _, c := range cands {
		res = append(res, c.Alternate)
	}
	return res
}

// Display returns the display name of a place.
func (ix *Index) Display(geoID int64) (DisplayName, bool) {
	cands, ok := ix.entries[InfoNameKey(geoID)]
	if !ok || len(cands) == 0 {
		return DisplayName{}, false
	}
	return cands[0].Display, true
}

// Equal reports whether two indices hold the same candidates under the
// same keys.
func (ix *Index) Equal(other *Index) bool {
	if ix.Len() != other.Len() {
		return false
	}
	for k, v := range ix.entries {
		ov, ok := other.entries[k]
		if !ok || !slices.Equal(v, ov) {
			return false
		}
	}
	return true
}
