package iobuild

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/gnames/geodb/pkg/names"
)

// memSource keeps records in memory and counts queries.
type memSource struct {
	places   []names.Place
	alts     []names.AlternateName
	errAfter int64

	mu           sync.Mutex
	nameQueries  int
	queriedNames []int64
}

var errSource = errors.New("source failure")

func (s *memSource) Places(
	_ context.Context,
	afterID int64,
	limit int,
) ([]names.Place, error) {
	if s.errAfter != 0 && afterID >= s.errAfter {
		return nil, errSource
	}
	var res []names.Place
	for _, p := range s.places {
		if p.ID > afterID && len(res) < limit {
			res = append(res, p)
		}
	}
	return res, nil
}

func (s *memSource) AlternateNames(
	_ context.Context,
	ids []int64,
) ([]names.AlternateName, error) {
	s.mu.Lock()
	s.nameQueries++
	s.queriedNames = append(s.queriedNames, ids...)
	s.mu.Unlock()

	var res []names.AlternateName
	for _, a := range s.alts {
		if slices.Contains(ids, a.GeoID) {
			res = append(res, a)
		}
	}
	return res, nil
}

func (s *memSource) DisplayNames(
	_ context.Context,
	ids []int64,
) ([]names.DisplayName, error) {
	var res []names.DisplayName
	for _, p := range s.places {
		if slices.Contains(ids, p.ID) {
			res = append(res, names.DisplayName{
				GeoID: p.ID, Name: p.Name, ASCIIName: p.ASCIIName,
			})
		}
	}
	return res, nil
}

// memSink collects rows in memory.
type memSink struct {
	rows    map[int64]names.PlaceRows
	flushed bool
	err     error
}

func newMemSink() *memSink {
	return &memSink{rows: make(map[int64]names.PlaceRows)}
}

func (s *memSink) write(_ context.Context, rows names.PlaceRows) error {
	if s.err != nil {
		return s.err
	}
	s.rows[rows.Info.ID] = rows
	return nil
}

func (s *memSink) flush(context.Context) error {
	s.flushed = true
	return nil
}

const (
	usID          = 6252001
	illinoisID    = 4896861
	sangamonID    = 4908052
	springfieldID = 4250542
)

func usSource() *memSource {
	return &memSource{
		places: []names.Place{
			{ID: springfieldID, Name: "Springfield", ASCIIName: "Springfield",
				Population: 116250, FeatureCode: "PPLA",
				Admin2ID: sangamonID, Admin1ID: illinoisID, CountryID: usID},
			{ID: illinoisID, Name: "Illinois", ASCIIName: "Illinois",
				FeatureCode: "ADM1", Admin1ID: illinoisID, CountryID: usID},
			{ID: sangamonID, Name: "Sangamon County", ASCIIName: "Sangamon County",
				FeatureCode: "ADM2",
				Admin2ID: sangamonID, Admin1ID: illinoisID, CountryID: usID},
			{ID: usID, Name: "United States", ASCIIName: "United States",
				FeatureCode: "PCLI", CountryID: usID},
		},
		alts: []names.AlternateName{
			{ID: 1, GeoID: usID, Lang: "en", Text: "United States", IsPreferred: true},
			{ID: 2, GeoID: usID, Lang: "ru", Text: "Соединённые Штаты Америки", IsPreferred: true},
			{ID: 3, GeoID: illinoisID, Lang: "en", Text: "Illinois", IsPreferred: true},
			{ID: 4, GeoID: sangamonID, Lang: "en", Text: "Sangamon County", IsPreferred: true},
			{ID: 5, GeoID: springfieldID, Lang: "en", Text: "Springfield", IsPreferred: true},
			{ID: 6, GeoID: springfieldID, Lang: "ru", Text: "Спрингфилд", IsPreferred: true},
			{ID: 7, GeoID: springfieldID, Lang: names.LangLink,
				Text: "https://en.wikipedia.org/wiki/Springfield,_Illinois"},
		},
	}
}
