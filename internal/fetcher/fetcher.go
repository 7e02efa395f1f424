package fetcher

import (
	"time"

	"ChartBook/internal/model"
)

// Fetcher retrieves the daily bar history of one symbol from a remote
// provider. A zero `to` means "up to the latest available bar".
type Fetcher interface {
	Fetch(symbol string, from, to time.Time) ([]model.Bar, error)
	Name() string
}
