// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"fmt"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Xuanmizhen/visible-waves/wave"
)

// window is the number of frames shown: a close-up of the buffer start,
// so individual samples stay visible at audio rates.
const window = 256

// Scatter builds a scatter plot of (time, amplitude) for the first frames
// of w, limited to [0, 256/rate) seconds. The returned plot is a regular
// value the caller owns; there is no hidden current-figure state.
func Scatter(w *wave.Wave, title string) (*gplot.Plot, error) {
	p := gplot.New()
	if title != "" {
		p.Title.Text = title
	}
	p.X.Label.Text = "time (s)"
	p.X.Min = 0
	p.X.Max = float64(window) / float64(w.SampleRate())

	samples := w.Samples()
	rate := float64(w.SampleRate())

	xys := make(plotter.XYs, min(len(samples), window))
	for i := range xys {
		xys[i].X = float64(i) / rate
		xys[i].Y = float64(samples[i])
	}

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	s.GlyphStyle.Radius = vg.Points(1.5)

	p.Add(s)

	return p, nil
}

// SavePNG renders p to a PNG file on a 10×5 inch canvas. The image format
// follows the path extension, so path should end in ".png".
func SavePNG(p *gplot.Plot, path string) error {
	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ScatterPNG builds the scatter plot for w and writes it straight to path.
func ScatterPNG(w *wave.Wave, title, path string) error {
	p, err := Scatter(w, title)
	if err != nil {
		return err
	}

	return SavePNG(p, path)
}
