package fetcher

import (
	"fmt"
	"time"

	"ChartBook/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars map[string][]model.Bar // per-symbol fixture; absent symbols fail
	Fail map[string]error       // forced failures by symbol
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) Fetch(symbol string, from, to time.Time) ([]model.Bar, error) {
	if err, ok := m.Fail[symbol]; ok {
		return nil, err
	}
	if bars, ok := m.Bars[symbol]; ok {
		return bars, nil
	}
	return nil, fmt.Errorf("mock: unknown symbol %s", symbol)
}

// GenerateBars builds count synthetic daily bars ending today, drifting
// around basePrice.
func GenerateBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:     time.Now().AddDate(0, 0, -(count - i)),
			Open:     p * 0.999,
			High:     p * 1.005,
			Low:      p * 0.995,
			Close:    p,
			AdjClose: p,
			Volume:   1000000,
		}
	}
	return bars
}
