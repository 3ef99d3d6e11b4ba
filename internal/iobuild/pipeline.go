package iobuild

import (
	"context"
	"sync"

	"github.com/gnames/geodb/pkg/names"
	"golang.org/x/sync/errgroup"
)

// job contains a place with all name records needed to expand its
// names.
type job struct {
	place    names.Place
	alts     []names.AlternateName
	displays []names.DisplayName
}

// rowSink receives rows generated for places.
type rowSink interface {
	write(ctx context.Context, rows names.PlaceRows) error
	flush(ctx context.Context) error
}

// pipeline reads places in batches, expands their names with concurrent
// workers and sends results to a single sink.
type pipeline struct {
	src       RecordSource
	cache     *ancestorCache
	exp       names.Expander
	jobs      int
	batchSize int

	// progress is called after a place is saved.
	progress func()
}

func (pl *pipeline) run(ctx context.Context, sink rowSink) (names.Stats, error) {
	var stats names.Stats
	chIn := make(chan job)
	chOut := make(chan names.PlaceRows)

	g, ctx := errgroup.WithContext(ctx)
	var wg sync.WaitGroup

	jobs := max(pl.jobs, 1)
	for range jobs {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return pl.worker(ctx, chIn, chOut)
		})
	}

	g.Go(func() error {
		return pl.collect(ctx, chOut, sink, &stats)
	})

	go func() {
		wg.Wait()
		close(chOut)
	}()

	g.Go(func() error {
		defer close(chIn)
		return pl.load(ctx, chIn)
	})

	if err := g.Wait(); err != nil {
		return stats, err
	}
	return stats, nil
}

// load reads places batch by batch and sends them to workers together
// with names of their ancestors.
func (pl *pipeline) load(ctx context.Context, chIn chan<- job) error {
	batchSize := pl.batchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	var afterID int64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		places, err := pl.src.Places(ctx, afterID, batchSize)
		if err != nil {
			return err
		}
		if len(places) == 0 {
			return nil
		}

		jobs, err := pl.prepare(ctx, places)
		if err != nil {
			return err
		}
		for _, j := range jobs {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case chIn <- j:
			}
		}

		if len(places) < batchSize {
			return nil
		}
		afterID = places[len(places)-1].ID
	}
}

// prepare collects name records for a batch of places.
func (pl *pipeline) prepare(
	ctx context.Context,
	places []names.Place,
) ([]job, error) {
	ids := make([]int64, len(places))
	var ancIDs []int64
	for i := range places {
		clearSelfRefs(&places[i])
		p := places[i]
		ids[i] = p.ID
		ancIDs = append(ancIDs, p.Ancestors()[1:]...)
	}

	alts, err := pl.src.AlternateNames(ctx, ids)
	if err != nil {
		return nil, err
	}
	own := make(map[int64][]names.AlternateName, len(places))
	for _, a := range alts {
		own[a.GeoID] = append(own[a.GeoID], a)
	}

	anc, err := pl.cache.get(ctx, ancIDs)
	if err != nil {
		return nil, err
	}

	res := make([]job, len(places))
	for i, p := range places {
		j := job{
			place: p,
			alts:  own[p.ID],
			displays: []names.DisplayName{
				{GeoID: p.ID, Name: p.Name, ASCIIName: p.ASCIIName},
			},
		}
		for _, id := range p.Ancestors()[1:] {
			a := anc[id]
			j.alts = append(j.alts, a.alts...)
			if a.found {
				j.displays = append(j.displays, a.display)
			}
		}
		res[i] = j
	}
	return res, nil
}

// clearSelfRefs removes references of a place to itself. Geonames
// assigns administrative codes to the areas themselves, so a
// first-level division would otherwise contain itself.
func clearSelfRefs(p *names.Place) {
	for _, id := range []*int64{
		&p.Admin4ID, &p.Admin3ID, &p.Admin2ID, &p.Admin1ID, &p.CountryID,
	} {
		if *id == p.ID {
			*id = 0
		}
	}
}

func (pl *pipeline) worker(
	ctx context.Context,
	chIn <-chan job,
	chOut chan<- names.PlaceRows,
) error {
	for j := range chIn {
		rows := names.ProcessPlace(j.place, j.alts, j.displays, pl.exp)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case chOut <- rows:
		}
	}
	return nil
}

func (pl *pipeline) collect(
	ctx context.Context,
	chOut <-chan names.PlaceRows,
	sink rowSink,
	stats *names.Stats,
) error {
	for rows := range chOut {
		stats.Merge(rows.Stats)
		if err := sink.write(ctx, rows); err != nil {
			return err
		}
		if pl.progress != nil {
			pl.progress()
		}
	}
	return sink.flush(ctx)
}
