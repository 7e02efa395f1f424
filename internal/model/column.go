package model

import "time"

// Point is a single observation of a derived series.
type Point struct {
	Time  time.Time
	Value float64
}

// Column is a single-field series derived from a Series, keeping the
// source symbol and the name of the extracted field.
type Column struct {
	Symbol string
	Field  Field
	Points []Point
}

// Len returns the number of observations in the column.
func (c *Column) Len() int { return len(c.Points) }

// Values returns the observation values in order.
func (c *Column) Values() []float64 {
	out := make([]float64, len(c.Points))
	for i, p := range c.Points {
		out[i] = p.Value
	}
	return out
}

// Times returns the observation timestamps in order.
func (c *Column) Times() []time.Time {
	out := make([]time.Time, len(c.Points))
	for i, p := range c.Points {
		out[i] = p.Time
	}
	return out
}
