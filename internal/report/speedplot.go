package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/roadscene-data/sequence.report/internal/scene"
)

// WriteSpeedProfile saves a PNG plot of instantaneous speed against
// timestamp for one sequence.
func WriteSpeedProfile(path, sequenceID string, frames []scene.FrameSummary) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Speed profile, sequence %s", sequenceID)
	p.X.Label.Text = "t (s)"
	p.Y.Label.Text = "speed (m/s)"

	pts := make(plotter.XYs, 0, len(frames))
	for _, f := range frames {
		pts = append(pts, plotter.XY{X: f.Timestamp, Y: f.EgoMotion.Speed})
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build speed line: %w", err)
	}
	line.Width = vg.Points(1)
	line.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	p.Add(line)

	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save speed profile: %w", err)
	}
	return nil
}
