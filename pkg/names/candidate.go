package names

// LangLink is the pseudo-language geonames uses for URL records
// in the alternate names table.
const LangLink = "link"

// AlternateName is a record from the geonames alternate names table.
type AlternateName struct {
	// ID is the alternatenameid from the source dump.
	ID int64

	// GeoID is the geonameid the name belongs to.
	GeoID int64

	// Lang is an ISO language code. Empty means no language, LangLink
	// means Text is a URL.
	Lang string

	// Text is the name itself.
	Text string

	IsPreferred  bool
	IsShort      bool
	IsColloquial bool
	IsHistoric   bool
}

// DisplayName is the name/asciiname pair stored with a place record. It
// is the last resort when no alternate name fits.
type DisplayName struct {
	GeoID     int64
	Name      string
	ASCIIName string
}

// CandidateKind tells which record a Candidate wraps.
type CandidateKind uint8

const (
	CandidateNone CandidateKind = iota
	CandidateAlternate
	CandidateDisplay
)

// Candidate is a name record that can take part in matching: either an
// alternate name or a place display name.
type Candidate struct {
	Kind      CandidateKind
	Alternate AlternateName
	Display   DisplayName
}

// FromAlternate wraps an alternate name.
func FromAlternate(a AlternateName) Candidate {
	return Candidate{Kind: CandidateAlternate, Alternate: a}
}

// FromDisplay wraps a place display name.
func FromDisplay(d DisplayName) Candidate {
	return Candidate{Kind: CandidateDisplay, Display: d}
}

// Text returns the text used for display and script matching.
func (c Candidate) Text() string {
	switch c.Kind {
	case CandidateAlternate:
		return c.Alternate.Text
	case CandidateDisplay:
		return c.Display.Name
	default:
		return ""
	}
}
