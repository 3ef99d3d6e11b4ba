package ioimport

import "strings"

func tsv(lines ...[]string) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(strings.Join(l, "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// placeLine returns allCountries fields of a place.
func placeLine(
	id, name, class, code, cc, a1, a2, pop string,
) []string {
	return []string{
		id, name, name, "", "39.80172", "-89.64371", class, code, cc, "",
		a1, a2, "", "", pop, "", "180", "America/Chicago", "2019-09-05",
	}
}

func testLookups() *lookups {
	lk := newLookups()
	lk.admin1["US.IL"] = 4896861
	lk.admin2["US.IL.167"] = 4250542
	lk.features["P.PPLA"] = "seat of a first-order administrative division"
	lk.features["A.ADM1"] = "first-order administrative division"
	lk.countries["US"] = 6252001
	lk.populations[4250542] = 116250
	return lk
}
