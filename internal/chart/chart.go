// Package chart renders price and derived series to PNG images. All
// indicator math behind the overlays (moving average, Bollinger-style
// band) is delegated to the charting library.
package chart

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"ChartBook/internal/model"
)

// Options selects chart dimensions and overlays.
type Options struct {
	Title      string
	Width      int
	Height     int
	Volume     bool    // shaded volume on a secondary axis (bar charts only)
	SMAWindow  int     // 0 disables the moving-average overlay
	BandWindow int     // 0 disables the Bollinger-style band overlay
	BandWidth  float64 // band deviation multiplier; 0 means the library default
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = 1024
	}
	if o.Height == 0 {
		o.Height = 512
	}
	return o
}

// RenderBars renders the closing price of a bar series with the
// configured overlays.
func RenderBars(s *model.Series, opts Options) ([]byte, error) {
	if len(s.Bars) < 2 {
		return nil, fmt.Errorf("render %s: need at least 2 bars, have %d", s.Symbol, len(s.Bars))
	}
	opts = opts.withDefaults()

	times := make([]time.Time, len(s.Bars))
	closes := make([]float64, len(s.Bars))
	volumes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		times[i] = b.Time
		closes[i] = b.Close
		volumes[i] = b.Volume
	}

	price := chart.TimeSeries{
		Name:    s.Symbol,
		XValues: times,
		YValues: closes,
		Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 1.5},
	}

	var series []chart.Series
	if opts.BandWindow > 0 {
		series = append(series, &chart.BollingerBandsSeries{
			Name:        fmt.Sprintf("BBands(%d)", opts.BandWindow),
			Period:      opts.BandWindow,
			K:           opts.BandWidth,
			InnerSeries: price,
		})
	}
	if opts.Volume {
		series = append(series, chart.TimeSeries{
			Name:    "volume",
			YAxis:   chart.YAxisSecondary,
			XValues: times,
			YValues: volumes,
			Style: chart.Style{
				StrokeColor: drawing.Color{R: 128, G: 128, B: 128, A: 160},
				FillColor:   drawing.Color{R: 128, G: 128, B: 128, A: 64},
			},
		})
	}
	series = append(series, price)
	if opts.SMAWindow > 0 {
		series = append(series, &chart.SMASeries{
			Name:        fmt.Sprintf("SMA(%d)", opts.SMAWindow),
			Period:      opts.SMAWindow,
			InnerSeries: price,
			Style:       chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 1.0},
		})
	}

	return render(opts, series)
}

// Render renders a derived single-field column as a line chart.
func Render(c *model.Column, opts Options) ([]byte, error) {
	if len(c.Points) < 2 {
		return nil, fmt.Errorf("render %s %s: need at least 2 observations, have %d",
			c.Symbol, c.Field, len(c.Points))
	}
	opts = opts.withDefaults()

	line := chart.TimeSeries{
		Name:    fmt.Sprintf("%s %s", c.Symbol, c.Field),
		XValues: c.Times(),
		YValues: c.Values(),
		Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 1.5},
	}
	series := []chart.Series{line}
	if opts.SMAWindow > 0 {
		series = append(series, &chart.SMASeries{
			Name:        fmt.Sprintf("SMA(%d)", opts.SMAWindow),
			Period:      opts.SMAWindow,
			InnerSeries: line,
			Style:       chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 1.0},
		})
	}
	return render(opts, series)
}

func render(opts Options, series []chart.Series) ([]byte, error) {
	graph := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile writes image bytes to path, creating parent directories.
func WriteFile(b []byte, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create chart dir: %w", err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
