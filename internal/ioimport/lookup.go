package ioimport

import (
	"io"
	"log/slog"
	"strconv"
)

// noAdminCode is used by geonames when a place is not inside any
// first-level division.
const noAdminCode = "00"

// lookups keep auxiliary geonames tables needed to resolve codes of
// allCountries records.
type lookups struct {
	// admin1 maps "CC.A1" to geonameid of the first-level division.
	admin1 map[string]int64

	// admin2 maps "CC.A1.A2" to geonameid of the second-level division.
	admin2 map[string]int64

	// features maps "class.code" to feature name.
	features map[string]string

	// countries maps ISO code to geonameid of the country.
	countries map[string]int64

	// populations keeps the largest population found in countryInfo and
	// cities1000 by geonameid.
	populations map[int64]int64
}

func newLookups() *lookups {
	return &lookups{
		admin1:      make(map[string]int64),
		admin2:      make(map[string]int64),
		features:    make(map[string]string),
		countries:   make(map[string]int64),
		populations: make(map[int64]int64),
	}
}

// loadLookups reads all auxiliary tables from dir.
func loadLookups(dir string) (*lookups, error) {
	lk := newLookups()
	steps := []struct {
		base  string
		parse func(io.Reader) (int, error)
	}{
		{fileAdmin1, func(r io.Reader) (int, error) {
			return parseAdminCodes(r, lk.admin1)
		}},
		{fileAdmin2, func(r io.Reader) (int, error) {
			return parseAdminCodes(r, lk.admin2)
		}},
		{fileFeatures, lk.parseFeatures},
		{fileCountries, lk.parseCountries},
		{fileCities, lk.parseCities},
	}

	for _, v := range steps {
		src, err := openSource(dir, v.base)
		if err != nil {
			return nil, err
		}
		n, err := v.parse(src)
		src.Close()
		if err != nil {
			return nil, ReadSourceError(src.Name, err)
		}
		if n == 0 {
			return nil, LookupError(v.base)
		}
		slog.Info("Loaded lookup table", "file", src.Name, "records", n)
	}
	return lk, nil
}

// parseAdminCodes reads admin1CodesASCII or admin2Codes format:
// code, name, asciiname, geonameid.
func parseAdminCodes(r io.Reader, res map[string]int64) (int, error) {
	var count int
	err := scanTSV(r, func(f []string) error {
		if len(f) < 4 {
			return nil
		}
		id, err := strconv.ParseInt(f[3], 10, 64)
		if err != nil {
			slog.Debug("Bad admin code record", "code", f[0], "error", err)
			return nil
		}
		res[f[0]] = id
		count++
		return nil
	})
	return count, err
}

// parseFeatures reads featureCodes format: "class.code", name,
// description.
func (lk *lookups) parseFeatures(r io.Reader) (int, error) {
	var count int
	err := scanTSV(r, func(f []string) error {
		if len(f) < 2 || f[0] == "" {
			return nil
		}
		lk.features[f[0]] = f[1]
		count++
		return nil
	})
	return count, err
}

// parseCountries reads countryInfo format. ISO code is in column 0,
// population in column 7 and geonameid in column 16.
func (lk *lookups) parseCountries(r io.Reader) (int, error) {
	var count int
	err := scanTSV(r, func(f []string) error {
		if len(f) < 17 {
			return nil
		}
		id, err := strconv.ParseInt(f[16], 10, 64)
		if err != nil {
			slog.Debug("Bad country record", "iso", f[0], "error", err)
			return nil
		}
		lk.countries[f[0]] = id
		pop, _ := strconv.ParseInt(f[7], 10, 64)
		lk.addPopulation(id, pop)
		count++
		return nil
	})
	return count, err
}

// parseCities reads population of cities1000, which has the same
// format as allCountries.
func (lk *lookups) parseCities(r io.Reader) (int, error) {
	var count int
	err := scanTSV(r, func(f []string) error {
		if len(f) < placeFields {
			return nil
		}
		id, err := strconv.ParseInt(f[0], 10, 64)
		if err != nil {
			return nil
		}
		pop, _ := strconv.ParseInt(f[14], 10, 64)
		lk.addPopulation(id, pop)
		count++
		return nil
	})
	return count, err
}

func (lk *lookups) addPopulation(id, pop int64) {
	if pop > lk.populations[id] {
		lk.populations[id] = pop
	}
}

// admin1ID returns geonameid of the first-level division. Empty codes
// are not an error, the second value is false only when a code is set
// but cannot be found.
func (lk *lookups) admin1ID(cc, a1 string) (int64, bool) {
	if cc == "" || a1 == "" || a1 == noAdminCode {
		return 0, true
	}
	id, ok := lk.admin1[cc+"."+a1]
	return id, ok
}

// admin2ID works like admin1ID for second-level divisions.
func (lk *lookups) admin2ID(cc, a1, a2 string) (int64, bool) {
	if cc == "" || a1 == "" || a1 == noAdminCode || a2 == "" {
		return 0, true
	}
	id, ok := lk.admin2[cc+"."+a1+"."+a2]
	return id, ok
}

func (lk *lookups) countryID(cc string) (int64, bool) {
	if cc == "" {
		return 0, true
	}
	id, ok := lk.countries[cc]
	return id, ok
}

func (lk *lookups) featureName(class, code string) (string, bool) {
	if class == "" || code == "" {
		return "", true
	}
	name, ok := lk.features[class+"."+code]
	return name, ok
}
