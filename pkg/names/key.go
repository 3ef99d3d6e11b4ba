package names

import "fmt"

// KeyShape enumerates the kinds of keys in a name Index. Keys of
// different shapes never compare equal even when their fields do.
type KeyShape uint8

const (
	ShapeGeoID KeyShape = iota
	ShapeLang
	ShapePref
	ShapeFull
	ShapeLangPrefHist
	ShapeLangPref
	ShapeInfoName
	numShapes
)

var shapeNames = [numShapes]string{
	ShapeGeoID:        "geoid",
	ShapeLang:         "lang",
	ShapePref:         "preferred",
	ShapeFull:         "lang_all_flags",
	ShapeLangPrefHist: "lang_preferred_historic",
	ShapeLangPref:     "lang_preferred",
	ShapeInfoName:     "infoname",
}

// String returns a short name of the shape used in logs and reports.
func (s KeyShape) String() string {
	if s < numShapes {
		return shapeNames[s]
	}
	return fmt.Sprintf("shape(%d)", uint8(s))
}

// Key addresses a list of candidates in an Index. Fields that do not
// belong to the Shape are always zero, so use the constructors.
type Key struct {
	Shape      KeyShape
	GeoID      int64
	Lang       string
	Preferred  bool
	Short      bool
	Colloquial bool
	Historic   bool
}

// GeoIDKey addresses every alternate name of a place.
func GeoIDKey(id int64) Key {
	return Key{Shape: ShapeGeoID, GeoID: id}
}

// LangKey addresses alternate names of a place in one language.
func LangKey(id int64, lang string) Key {
	return Key{Shape: ShapeLang, GeoID: id, Lang: lang}
}

// PrefKey addresses alternate names of a place by the preferred flag.
func PrefKey(id int64, preferred bool) Key {
	return Key{Shape: ShapePref, GeoID: id, Preferred: preferred}
}

// FullKey addresses alternate names matching language and all flags.
func FullKey(
	id int64,
	lang string,
	preferred, short, colloquial, historic bool,
) Key {
	return Key{
		Shape:      ShapeFull,
		GeoID:      id,
		Lang:       lang,
		Preferred:  preferred,
		Short:      short,
		Colloquial: colloquial,
		Historic:   historic,
	}
}

// LangPrefHistKey addresses alternate names by language, preferred and
// historic flags.
func LangPrefHistKey(id int64, lang string, preferred, historic bool) Key {
	return Key{
		Shape:     ShapeLangPrefHist,
		GeoID:     id,
		Lang:      lang,
		Preferred: preferred,
		Historic:  historic,
	}
}

// LangPrefKey addresses alternate names by language and preferred flag.
func LangPrefKey(id int64, lang string, preferred bool) Key {
	return Key{Shape: ShapeLangPref, GeoID: id, Lang: lang, Preferred: preferred}
}

// InfoNameKey addresses the display name of a place.
func InfoNameKey(id int64) Key {
	return Key{Shape: ShapeInfoName, GeoID: id}
}

// keysOf returns all keys an alternate name is indexed under.
func keysOf(a AlternateName) []Key {
	return []Key{
		GeoIDKey(a.GeoID),
		LangKey(a.GeoID, a.Lang),
		PrefKey(a.GeoID, a.IsPreferred),
		FullKey(a.GeoID, a.Lang,
			a.IsPreferred, a.IsShort, a.IsColloquial, a.IsHistoric),
		LangPrefHistKey(a.GeoID, a.Lang, a.IsPreferred, a.IsHistoric),
		LangPrefKey(a.GeoID, a.Lang, a.IsPreferred),
	}
}

// priorityKeys returns lookup keys for the container gid of a place
// named by ref, from the closest fit to the display name fallback.
func priorityKeys(ref AlternateName, gid int64) []Key {
	return []Key{
		FullKey(gid, ref.Lang,
			ref.IsPreferred, ref.IsShort, ref.IsColloquial, ref.IsHistoric),
		LangPrefHistKey(gid, ref.Lang, ref.IsPreferred, ref.IsHistoric),
		LangPrefKey(gid, ref.Lang, ref.IsPreferred),
		LangPrefKey(gid, ref.Lang, true),
		LangKey(gid, ref.Lang),
		// any preferred name, whatever the language
		PrefKey(gid, true),
		InfoNameKey(gid),
	}
}
