// Package report renders sequence statistics for humans: an HTML dashboard
// of class-percentage and ego-motion time series, and a PNG speed profile.
package report

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/roadscene-data/sequence.report/internal/scene"
)

// WriteHTML renders an interactive report for one sequence: a line chart of
// each class's visible percentage over time and a speed/acceleration chart.
func WriteHTML(path, sequenceID string, frames []scene.FrameSummary, summary scene.SequenceSummary) error {
	page := components.NewPage()
	page.AddCharts(
		classPercentageChart(sequenceID, summary),
		egoMotionChart(sequenceID, frames),
	)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func classPercentageChart(sequenceID string, summary scene.SequenceSummary) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Class percentages over time",
			Subtitle: fmt.Sprintf("sequence=%s frames=%d", sequenceID, summary.TotalFrames),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "% of visible points"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t (s)"}),
	)

	timestamps := make([]string, 0, len(summary.TimeSeries))
	for _, entry := range summary.TimeSeries {
		timestamps = append(timestamps, fmt.Sprintf("%.3f", entry.Timestamp))
	}
	line.SetXAxis(timestamps)

	// One series per class, in stable name order. Absent frames plot as 0.
	classes := make([]string, len(summary.TotalUniqueClasses))
	copy(classes, summary.TotalUniqueClasses)
	sort.Strings(classes)

	for _, class := range classes {
		data := make([]opts.LineData, 0, len(summary.TimeSeries))
		for _, entry := range summary.TimeSeries {
			data = append(data, opts.LineData{Value: entry.ClassPercentages[class]})
		}
		line.AddSeries(class, data)
	}

	return line
}

func egoMotionChart(sequenceID string, frames []scene.FrameSummary) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Ego motion",
			Subtitle: fmt.Sprintf("sequence=%s", sequenceID),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "m/s, m/s²"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t (s)"}),
	)

	timestamps := make([]string, 0, len(frames))
	speed := make([]opts.LineData, 0, len(frames))
	accel := make([]opts.LineData, 0, len(frames))
	for _, f := range frames {
		timestamps = append(timestamps, fmt.Sprintf("%.3f", f.Timestamp))
		speed = append(speed, opts.LineData{Value: f.EgoMotion.Speed})
		accel = append(accel, opts.LineData{Value: f.EgoMotion.Acceleration})
	}

	line.SetXAxis(timestamps)
	line.AddSeries("speed", speed)
	line.AddSeries("acceleration", accel)
	return line
}
