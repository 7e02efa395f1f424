package fetcher

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stooqFixture = `Date,Open,High,Low,Close,Volume
2024-01-02,100.0,101.0,99.0,100.5,1000
2024-01-03,100.5,102.0,100.0,101.5,1100
2024-01-04,101.5,103.0,101.0,102.0,900
`

func TestStooqFetch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(stooqFixture))
	}))
	defer srv.Close()

	f := NewStooqFetcher("")
	f.BaseURL = srv.URL

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	bars, err := f.Fetch("AAPL", from, to)
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "s=aapl.us", "suffix is appended and symbol lower-cased")
	assert.Contains(t, gotQuery, "d1=20240101")
	assert.Contains(t, gotQuery, "d2=20240105")

	require.Len(t, bars, 3)
	assert.Equal(t, 100.5, bars[0].Close)
	assert.Equal(t, bars[0].Close, bars[0].AdjClose, "stooq has no adjusted close column")
	assert.Equal(t, 1100.0, bars[1].Volume)
	assert.True(t, bars[0].Time.Before(bars[1].Time))
}

func TestStooqFetch_NoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("No data"))
	}))
	defer srv.Close()

	f := NewStooqFetcher("")
	f.BaseURL = srv.URL

	_, err := f.Fetch("BADSYM", time.Now().AddDate(0, -1, 0), time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data")
}

func TestStooqSymbol(t *testing.T) {
	f := NewStooqFetcher("")
	assert.Equal(t, "aapl.us", f.stooqSymbol("AAPL"))
	assert.Equal(t, "^spx", f.stooqSymbol("^SPX"), "indices keep their prefix, no suffix")
	assert.Equal(t, "msft.de", f.stooqSymbol("MSFT.DE"), "explicit market suffixes pass through")
}
