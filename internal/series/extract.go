package series

import (
	"fmt"

	"ChartBook/internal/model"
)

// Extract produces a single-field column from a bar series: same
// timestamps, same ordering, no resampling.
func Extract(s *model.Series, field model.Field) (*model.Column, error) {
	if _, ok := (model.Bar{}).Value(field); !ok {
		return nil, fmt.Errorf("extract %q from %s: %w", field, s.Symbol, ErrUnknownField)
	}
	points := make([]model.Point, len(s.Bars))
	for i, b := range s.Bars {
		v, _ := b.Value(field)
		points[i] = model.Point{Time: b.Time, Value: v}
	}
	return &model.Column{Symbol: s.Symbol, Field: field, Points: points}, nil
}

// ExtractColumn re-extracts a field from an already-extracted column.
// Extracting the column's own field returns an equal copy, so extraction
// is idempotent; any other field is unknown on a single-field series.
func ExtractColumn(c *model.Column, field model.Field) (*model.Column, error) {
	if field != c.Field {
		return nil, fmt.Errorf("extract %q from %s %s column: %w", field, c.Symbol, c.Field, ErrUnknownField)
	}
	points := make([]model.Point, len(c.Points))
	copy(points, c.Points)
	return &model.Column{Symbol: c.Symbol, Field: c.Field, Points: points}, nil
}
