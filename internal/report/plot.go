// internal/report/plot.go
package report

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotFormat maps a file name to a gonum/plot output format ("svg" unless
// the extension names another one).
func PlotFormat(path string) string {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "png", "pdf", "eps", "jpg", "jpeg", "tif", "tiff":
		return ext
	default:
		return "svg"
	}
}

// NewHotspotPlot charts substitution and deletion counts per reference position.
func NewHotspotPlot(h *Hotspots, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Reference position"
	p.Y.Label.Text = "Profiles"
	p.Add(plotter.NewGrid())

	sub := make(plotter.XYs, h.Len())
	del := make(plotter.XYs, h.Len())
	for i := 0; i < h.Len(); i++ {
		s := h.At(i + 1)
		sub[i].X, sub[i].Y = float64(s.Position), float64(s.Substituted)
		del[i].X, del[i].Y = float64(s.Position), float64(s.Deleted)
	}

	subLine, err := plotter.NewLine(sub)
	if err != nil {
		return nil, fmt.Errorf("substitution series: %w", err)
	}
	subLine.LineStyle.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	subLine.LineStyle.Width = vg.Points(1.5)

	delLine, err := plotter.NewLine(del)
	if err != nil {
		return nil, fmt.Errorf("deletion series: %w", err)
	}
	delLine.LineStyle.Color = color.RGBA{R: 200, G: 60, B: 50, A: 255}
	delLine.LineStyle.Width = vg.Points(1.5)
	delLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}

	p.Add(subLine, delLine)
	p.Legend.Add("Substituted", subLine)
	p.Legend.Add("Deleted", delLine)
	p.Legend.Top = true
	return p, nil
}

// WritePlot renders the hotspot chart to w in the given format.
func WritePlot(w io.Writer, h *Hotspots, title, format string) error {
	p, err := NewHotspotPlot(h, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SavePlot writes the chart to path, picking the format from its extension.
func SavePlot(path string, h *Hotspots, title string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePlot(f, h, title, PlotFormat(path)); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
