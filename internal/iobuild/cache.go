package iobuild

import (
	"context"
	"slices"

	"github.com/gnames/geodb/pkg/names"
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 100_000

// ancestor keeps all name records of an administrative area.
type ancestor struct {
	alts    []names.AlternateName
	display names.DisplayName
	found   bool
}

// ancestorCache loads names of administrative areas. Countries and
// first-level divisions contain many places, so their records are
// kept in LRU cache between batches.
type ancestorCache struct {
	src    RecordSource
	lru    *lru.Cache[int64, ancestor]
	hits   int
	misses int
}

func newAncestorCache(src RecordSource, size int) (*ancestorCache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	c, err := lru.New[int64, ancestor](size)
	if err != nil {
		return nil, err
	}
	return &ancestorCache{src: src, lru: c}, nil
}

// get returns records of the given ancestors, loading the missing ones
// with two queries.
func (ac *ancestorCache) get(
	ctx context.Context,
	ids []int64,
) (map[int64]ancestor, error) {
	res := make(map[int64]ancestor, len(ids))
	var missing []int64
	for _, id := range ids {
		if _, ok := res[id]; ok {
			continue
		}
		if a, ok := ac.lru.Get(id); ok {
			ac.hits++
			res[id] = a
			continue
		}
		ac.misses++
		res[id] = ancestor{}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return res, nil
	}

	slices.Sort(missing)
	alts, err := ac.src.AlternateNames(ctx, missing)
	if err != nil {
		return nil, err
	}
	displays, err := ac.src.DisplayNames(ctx, missing)
	if err != nil {
		return nil, err
	}

	for _, alt := range alts {
		a := res[alt.GeoID]
		a.alts = append(a.alts, alt)
		res[alt.GeoID] = a
	}
	for _, d := range displays {
		a := res[d.GeoID]
		a.display = d
		a.found = true
		res[d.GeoID] = a
	}
	for _, id := range missing {
		ac.lru.Add(id, res[id])
	}
	return res, nil
}
