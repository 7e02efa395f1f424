package series

import (
	"sort"
	"time"

	"ChartBook/internal/model"
)

// PeriodFunc maps a timestamp to the end timestamp of the period
// containing it.
type PeriodFunc func(t time.Time) time.Time

// Reducer collapses one period's observations (in chronological order,
// never empty) into a single representative observation.
type Reducer func(group []model.Point) model.Point

// ReduceLast picks the last observation of the group.
func ReduceLast(group []model.Point) model.Point {
	return group[len(group)-1]
}

// WeekEnd returns a PeriodFunc mapping a timestamp to the next occurrence
// of the given weekday on or after it, at the same clock time. A Friday
// maps to itself under WeekEnd(time.Friday).
func WeekEnd(weekday time.Weekday) PeriodFunc {
	return func(t time.Time) time.Time {
		days := (int(weekday) - int(t.Weekday()) + 7) % 7
		return t.AddDate(0, 0, days)
	}
}

// Resample partitions the column into groups sharing the same period-end
// timestamp, preserving each group's internal chronological order, and
// reduces each group to one observation stamped with the period end.
// Output is ordered by period end regardless of the period function's
// monotonicity. An empty column resamples to an empty column.
func Resample(c *model.Column, periodEnd PeriodFunc, reduce Reducer) *model.Column {
	groups := make(map[int64][]model.Point)
	ends := make(map[int64]time.Time)
	for _, p := range c.Points {
		end := periodEnd(p.Time)
		key := end.UnixNano()
		groups[key] = append(groups[key], p)
		ends[key] = end
	}

	keys := make([]int64, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	points := make([]model.Point, 0, len(keys))
	for _, k := range keys {
		rep := reduce(groups[k])
		points = append(points, model.Point{Time: ends[k], Value: rep.Value})
	}
	return &model.Column{Symbol: c.Symbol, Field: c.Field, Points: points}
}
