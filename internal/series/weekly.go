package series

import "ChartBook/internal/model"

// WeeklyBars aggregates daily bars into weekly bars by ISO week: open of
// the first day, high/low extremes, close and adjusted close of the last
// day, summed volume. The input is assumed chronological.
func WeeklyBars(daily []model.Bar) []model.Bar {
	if len(daily) == 0 {
		return nil
	}
	var weekly []model.Bar
	var week model.Bar
	var started bool

	for _, d := range daily {
		if !started {
			week = d
			started = true
			continue
		}

		cy, cw := week.Time.ISOWeek()
		dy, dw := d.Time.ISOWeek()
		if cy != dy || cw != dw {
			weekly = append(weekly, week)
			week = d
			continue
		}

		if d.High > week.High {
			week.High = d.High
		}
		if d.Low < week.Low {
			week.Low = d.Low
		}
		week.Close = d.Close
		week.AdjClose = d.AdjClose
		week.Volume += d.Volume
	}
	weekly = append(weekly, week)
	return weekly
}
