package ingest

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ChartBook/internal/fetcher"
	"ChartBook/internal/model"
)

func bars(t *testing.T, n int) []model.Bar {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.Bar, n)
	for i := range out {
		out[i] = model.Bar{Time: base.AddDate(0, 0, i), Open: 10, High: 11, Low: 9, Close: 10.5, AdjClose: 10.5, Volume: 100}
	}
	return out
}

func TestBatch_FailureIsolation(t *testing.T) {
	f := &fetcher.MockFetcher{
		Bars: map[string][]model.Bar{
			"AAA": bars(t, 5),
			"BBB": bars(t, 7),
		},
		Fail: map[string]error{
			"BADSYM": errors.New("unknown symbol"),
		},
	}
	store := NewStore()
	batch := NewBatch(f, store)

	outcomes, sum, err := batch.Run([]string{"AAA", "BADSYM", "BBB"}, time.Time{}, time.Time{})
	require.NoError(t, err)

	// one outcome per attempted symbol, in order
	require.Len(t, outcomes, 3)
	assert.Equal(t, "AAA", outcomes[0].Symbol)
	assert.False(t, outcomes[0].Failed())
	assert.Equal(t, "BADSYM", outcomes[1].Symbol)
	assert.True(t, outcomes[1].Failed())
	assert.Nil(t, outcomes[1].Series)
	assert.Equal(t, "BBB", outcomes[2].Symbol)
	assert.False(t, outcomes[2].Failed())

	// the failed symbol never reaches the store; earlier and later
	// successes are unaffected
	assert.Equal(t, []string{"AAA", "BBB"}, store.Symbols())
	_, ok := store.Get("BADSYM")
	assert.False(t, ok)

	assert.Equal(t, 3, sum.Requested)
	assert.Equal(t, 2, sum.Succeeded)
	assert.Equal(t, 1, sum.Failed)
}

func TestBatch_AllFailuresStillComplete(t *testing.T) {
	f := &fetcher.MockFetcher{
		Fail: map[string]error{
			"X": errors.New("boom"),
			"Y": errors.New("boom"),
		},
	}
	store := NewStore()
	outcomes, sum, err := NewBatch(f, store).Run([]string{"X", "Y", "Z"}, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	for _, o := range outcomes {
		assert.True(t, o.Failed())
	}
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 3, sum.Failed)
}

func TestBatch_UnorderedDataRejected(t *testing.T) {
	shuffled := bars(t, 3)
	shuffled[0], shuffled[2] = shuffled[2], shuffled[0]
	f := &fetcher.MockFetcher{Bars: map[string][]model.Bar{"AAA": shuffled}}

	store := NewStore()
	outcomes, _, err := NewBatch(f, store).Run([]string{"AAA"}, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Failed())
	assert.Equal(t, 0, store.Len())
}

func TestBatch_InputValidation(t *testing.T) {
	f := &fetcher.MockFetcher{}
	store := NewStore()
	b := NewBatch(f, store)

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, _, err := b.Run([]string{"AAA"}, from, to)
	require.Error(t, err)

	_, _, err = b.Run([]string{"AAA", ""}, time.Time{}, time.Time{})
	require.Error(t, err)
	assert.Equal(t, 0, store.Len(), "validation failures never mutate the store")
}

func TestStore_OverwriteKeepsOrder(t *testing.T) {
	st := NewStore()
	st.Put("AAA", &model.Series{Symbol: "AAA"})
	st.Put("BBB", &model.Series{Symbol: "BBB"})
	st.Put("AAA", &model.Series{Symbol: "AAA", Bars: bars(t, 2)})

	assert.Equal(t, []string{"AAA", "BBB"}, st.Symbols())
	s, ok := st.Get("AAA")
	require.True(t, ok)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2, st.Len())
}
