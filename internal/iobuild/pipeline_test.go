package iobuild

import (
	"context"
	"testing"

	"github.com/gnames/geodb/pkg/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(t *testing.T, src *memSource, batch int) *pipeline {
	cache, err := newAncestorCache(src, 10)
	require.NoError(t, err)
	return &pipeline{
		src:       src,
		cache:     cache,
		exp:       names.Expander{Policy: names.FallbackFirst},
		jobs:      3,
		batchSize: batch,
	}
}

func fullNames(rows names.PlaceRows) []string {
	var res []string
	for _, n := range rows.Names {
		res = append(res, n.FullName)
	}
	return res
}

func TestPipeline(t *testing.T) {
	for _, batch := range []int{1, 2, 10} {
		src := usSource()
		pl := newTestPipeline(t, src, batch)
		var saved int
		pl.progress = func() { saved++ }
		sink := newMemSink()

		stats, err := pl.run(context.Background(), sink)
		require.NoError(t, err)
		assert.True(t, sink.flushed)
		assert.Equal(t, 4, saved)
		assert.Equal(t, 4, stats.Places)
		require.Len(t, sink.rows, 4)

		sp := sink.rows[springfieldID]
		assert.Equal(t, []string{
			"Springfield, Sangamon County, Illinois, United States",
			"Спрингфилд, Sangamon County, Illinois, Соединённые Штаты Америки",
			"Springfield, Sangamon County, Illinois, United States",
			"Springfield, Sangamon County, Illinois, United States",
		}, fullNames(sp))
		assert.Equal(t,
			[]string{"https://en.wikipedia.org/wiki/Springfield,_Illinois"},
			sp.Links)
		assert.Equal(t, int64(116250), sp.Info.Population)

		// areas do not contain themselves
		assert.Equal(t, []string{
			"Illinois, United States",
			"Illinois, United States",
			"Illinois, United States",
		}, fullNames(sink.rows[illinoisID]))
		us := fullNames(sink.rows[usID])
		assert.Contains(t, us, "United States")
		assert.Contains(t, us, "Соединённые Штаты Америки")
	}
}

func TestPipeline_AncestorsCached(t *testing.T) {
	src := usSource()
	pl := newTestPipeline(t, src, 1)
	_, err := pl.run(context.Background(), newMemSink())
	require.NoError(t, err)

	var usQueries int
	for _, id := range src.queriedNames {
		if id == usID {
			usQueries++
		}
	}
	// once as an ancestor, once as a place
	assert.Equal(t, 2, usQueries)
	assert.Positive(t, pl.cache.hits)
}

func TestPipeline_SourceError(t *testing.T) {
	src := usSource()
	src.errAfter = 1
	pl := newTestPipeline(t, src, 1)
	_, err := pl.run(context.Background(), newMemSink())
	assert.ErrorIs(t, err, errSource)
}

func TestPipeline_SinkError(t *testing.T) {
	src := usSource()
	pl := newTestPipeline(t, src, 1)
	sink := newMemSink()
	sink.err = errSource
	_, err := pl.run(context.Background(), sink)
	assert.ErrorIs(t, err, errSource)
}

func TestPipeline_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pl := newTestPipeline(t, usSource(), 1)
	_, err := pl.run(ctx, newMemSink())
	assert.Error(t, err)
}

func TestClearSelfRefs(t *testing.T) {
	p := names.Place{
		ID:        illinoisID,
		Admin2ID:  sangamonID,
		Admin1ID:  illinoisID,
		CountryID: usID,
	}
	clearSelfRefs(&p)
	assert.Zero(t, p.Admin1ID)
	assert.Equal(t, int64(sangamonID), p.Admin2ID)
	assert.Equal(t, int64(usID), p.CountryID)
}
