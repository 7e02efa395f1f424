package model

import (
	"fmt"
	"time"
)

// Bar represents a single OHLC bar with volume and adjusted close.
type Bar struct {
	Time     time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	AdjClose float64
	Volume   float64
}

// Series holds the fetched price history for one symbol.
// Bars are in strictly increasing timestamp order.
type Series struct {
	Symbol    string
	Bars      []Bar
	FetchedAt time.Time
}

// Len returns the number of bars in the series.
func (s *Series) Len() int { return len(s.Bars) }

// Validate checks the series ordering invariant: timestamps must be
// strictly increasing, with no duplicates.
func (s *Series) Validate() error {
	for i := 1; i < len(s.Bars); i++ {
		if !s.Bars[i].Time.After(s.Bars[i-1].Time) {
			return fmt.Errorf("series %s: bar %d timestamp %s is not after %s",
				s.Symbol, i, s.Bars[i].Time.Format("2006-01-02"), s.Bars[i-1].Time.Format("2006-01-02"))
		}
	}
	return nil
}

// First returns the earliest bar, or false if the series is empty.
func (s *Series) First() (Bar, bool) {
	if len(s.Bars) == 0 {
		return Bar{}, false
	}
	return s.Bars[0], true
}

// Last returns the most recent bar, or false if the series is empty.
func (s *Series) Last() (Bar, bool) {
	if len(s.Bars) == 0 {
		return Bar{}, false
	}
	return s.Bars[len(s.Bars)-1], true
}
