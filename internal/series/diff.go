package series

import (
	"fmt"
	"math"

	"ChartBook/internal/model"
)

// Transform maps an observation value into transformed space. It returns
// an error for values outside its domain.
type Transform func(v float64) (float64, error)

// Log is the natural logarithm, defined only for positive values.
func Log(v float64) (float64, error) {
	if v <= 0 {
		return 0, fmt.Errorf("log of %g: %w", v, ErrDomain)
	}
	return math.Log(v), nil
}

// TransformDiff applies the transform to each value and returns the
// period-to-period differences: out[i-1] = f(v[i]) - f(v[i-1]). The result
// is one observation shorter than the input and starts at the input's
// second timestamp. An input shorter than two observations has no
// differences and fails with ErrInsufficientData.
func TransformDiff(c *model.Column, f Transform) (*model.Column, error) {
	if len(c.Points) < 2 {
		return nil, fmt.Errorf("diff of %s %s with %d observations: %w",
			c.Symbol, c.Field, len(c.Points), ErrInsufficientData)
	}

	prev, err := f(c.Points[0].Value)
	if err != nil {
		return nil, fmt.Errorf("diff of %s %s at %s: %w",
			c.Symbol, c.Field, c.Points[0].Time.Format("2006-01-02"), err)
	}

	points := make([]model.Point, 0, len(c.Points)-1)
	for _, p := range c.Points[1:] {
		cur, err := f(p.Value)
		if err != nil {
			return nil, fmt.Errorf("diff of %s %s at %s: %w",
				c.Symbol, c.Field, p.Time.Format("2006-01-02"), err)
		}
		points = append(points, model.Point{Time: p.Time, Value: cur - prev})
		prev = cur
	}
	return &model.Column{Symbol: c.Symbol, Field: c.Field, Points: points}, nil
}

// LogReturns computes log-returns of the column: the difference of the
// natural logarithm of consecutive values.
func LogReturns(c *model.Column) (*model.Column, error) {
	return TransformDiff(c, Log)
}
