package series

import (
	"fmt"

	"ChartBook/internal/model"
)

// SMA computes the rolling simple moving average of the column over the
// given window. The result starts at the window-th input timestamp and is
// window-1 observations shorter than the input.
func SMA(c *model.Column, window int) (*model.Column, error) {
	if window <= 0 {
		return nil, fmt.Errorf("sma window %d must be positive", window)
	}
	if len(c.Points) < window {
		return nil, fmt.Errorf("sma(%d) of %s %s with %d observations: %w",
			window, c.Symbol, c.Field, len(c.Points), ErrInsufficientData)
	}

	points := make([]model.Point, 0, len(c.Points)-window+1)
	sum := 0.0
	for i, p := range c.Points {
		sum += p.Value
		if i >= window {
			sum -= c.Points[i-window].Value
		}
		if i >= window-1 {
			points = append(points, model.Point{Time: p.Time, Value: sum / float64(window)})
		}
	}
	return &model.Column{Symbol: c.Symbol, Field: c.Field, Points: points}, nil
}
