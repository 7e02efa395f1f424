package fetcher

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yahooFixture = `{
  "chart": {
    "result": [{
      "timestamp": [1704153600, 1704240000, 1704326400],
      "indicators": {
        "quote": [{
          "open":   [100.0, null, 102.0],
          "high":   [101.0, null, 103.5],
          "low":    [99.0,  null, 101.0],
          "close":  [100.5, null, 103.0],
          "volume": [1000,  null, 1200]
        }],
        "adjclose": [{
          "adjclose": [100.1, null, 102.6]
        }]
      }
    }],
    "error": null
  }
}`

func TestYahooFetch(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(yahooFixture))
	}))
	defer srv.Close()

	f := NewYahooFetcher("")
	f.BaseURL = srv.URL

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	bars, err := f.Fetch("SPX500", from, to)
	require.NoError(t, err)

	assert.Equal(t, "/v8/finance/chart/^GSPC", gotPath, "internal symbol is mapped to the Yahoo ticker")
	assert.Contains(t, gotQuery, "period1=")
	assert.Contains(t, gotQuery, "includeAdjustedClose=true")

	// the null middle bar is dropped
	require.Len(t, bars, 2)
	assert.Equal(t, 100.5, bars[0].Close)
	assert.Equal(t, 100.1, bars[0].AdjClose)
	assert.Equal(t, 103.0, bars[1].Close)
	assert.Equal(t, 102.6, bars[1].AdjClose)
	assert.True(t, bars[0].Time.Before(bars[1].Time))
}

func TestYahooFetch_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	}))
	defer srv.Close()

	f := NewYahooFetcher("")
	f.BaseURL = srv.URL

	_, err := f.Fetch("BADSYM", time.Now().AddDate(0, -1, 0), time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delisted")
}

func TestYahooFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	f := NewYahooFetcher("")
	f.BaseURL = srv.URL

	_, err := f.Fetch("AAPL", time.Now().AddDate(0, -1, 0), time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}
