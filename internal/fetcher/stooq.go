package fetcher

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"ChartBook/internal/model"
)

// StooqFetcher implements Fetcher using the Stooq daily CSV endpoint.
type StooqFetcher struct {
	BaseURL string
	Suffix  string // market suffix appended to symbols, e.g. ".us"
	Client  *http.Client
}

// NewStooqFetcher creates a new Stooq fetcher with optional proxy support.
func NewStooqFetcher(proxyURL string) *StooqFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &StooqFetcher{
		BaseURL: "https://stooq.com",
		Suffix:  ".us",
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *StooqFetcher) Name() string { return "stooq" }

func (f *StooqFetcher) stooqSymbol(symbol string) string {
	s := strings.ToLower(symbol)
	if f.Suffix != "" && !strings.Contains(s, ".") && !strings.HasPrefix(s, "^") {
		s += f.Suffix
	}
	return s
}

// Fetch retrieves daily bars between from and to (inclusive). Stooq has
// no adjusted close column; AdjClose mirrors Close.
func (f *StooqFetcher) Fetch(symbol string, from, to time.Time) ([]model.Bar, error) {
	if to.IsZero() {
		to = time.Now()
	}
	u := fmt.Sprintf("%s/q/d/l/?s=%s&d1=%s&d2=%s&i=d",
		f.BaseURL, url.QueryEscape(f.stooqSymbol(symbol)),
		from.Format("20060102"), to.Format("20060102"))

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stooq fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stooq: status %d", resp.StatusCode)
	}

	return parseStooqCSV(resp.Body, symbol)
}

// parseStooqCSV decodes the Date,Open,High,Low,Close,Volume payload.
func parseStooqCSV(r io.Reader, symbol string) ([]model.Bar, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("stooq read header: %w", err)
	}
	if len(header) < 5 || !strings.EqualFold(strings.TrimSpace(header[0]), "Date") {
		// Stooq answers "No data" or an error page for unknown symbols.
		return nil, fmt.Errorf("stooq: no data for %s", symbol)
	}

	var bars []model.Bar
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("stooq read row: %w", err)
		}
		if len(rec) < 5 {
			continue
		}
		ts, err := time.Parse("2006-01-02", strings.TrimSpace(rec[0]))
		if err != nil {
			continue
		}
		o, err1 := strconv.ParseFloat(rec[1], 64)
		h, err2 := strconv.ParseFloat(rec[2], 64)
		l, err3 := strconv.ParseFloat(rec[3], 64)
		c, err4 := strconv.ParseFloat(rec[4], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		var v float64
		if len(rec) > 5 {
			v, _ = strconv.ParseFloat(rec[5], 64)
		}
		bars = append(bars, model.Bar{
			Time: ts, Open: o, High: h, Low: l, Close: c, AdjClose: c, Volume: v,
		})
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("stooq: no data for %s", symbol)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
