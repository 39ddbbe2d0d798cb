package niceplots

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart"
)

var DefaultDPI float64 = 72.0

type RenderFormat string

const (
	RenderFormatPNG RenderFormat = `png`
	RenderFormatSVG              = `svg`
)

// Series is one plotted series of paired observations.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

type PlotOptions struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	DPI      float64 `json:"dpi"`
}

// Plot glues a theme onto the static engine: it assembles a chart from the
// series, the options, and the theme, and renders it. The chart object it
// produces can also be finished with Finish before rendering.
type Plot struct {
	Series  []Series
	Options PlotOptions
	Theme   ChartTheme
}

func NewPlot(series ...Series) *Plot {
	return &Plot{
		Series:  series,
		Options: PlotOptions{},
		Theme:   DefaultTheme,
	}
}

// Chart builds the styled chart object. Display and export stay with the
// engine; callers that only want the object can stop here.
func (self *Plot) Chart() *chart.Chart {
	graph := &chart.Chart{
		Title:      self.Options.Title,
		TitleStyle: self.Theme.Title,
		Background: self.Theme.Background,
		Canvas:     self.Theme.Canvas,
		Series:     make([]chart.Series, 0),
		XAxis: chart.XAxis{
			Style:          self.Theme.XAxis,
			NameStyle:      self.Theme.XAxisTitle,
			TickStyle:      self.Theme.XAxisTicks,
			GridMajorStyle: self.Theme.XAxisGridMajor,
			GridMinorStyle: self.Theme.XAxisGridMinor,
		},
		YAxis: chart.YAxis{
			Style:          self.Theme.YAxis,
			NameStyle:      self.Theme.YAxisTitle,
			TickStyle:      self.Theme.YAxisTicks,
			GridMajorStyle: self.Theme.YAxisGridMajor,
			GridMinorStyle: self.Theme.YAxisGridMinor,
		},
	}

	if v := self.Options.Width; v > 0 {
		graph.Width = v
	}

	if v := self.Options.Height; v > 0 {
		graph.Height = v
	}

	if v := self.Options.DPI; v > 0 {
		graph.DPI = v
	} else {
		graph.DPI = DefaultDPI
	}

	for i, series := range self.Series {
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    series.Name,
			Style:   self.Theme.GetSeriesStyle(i),
			XValues: series.X,
			YValues: series.Y,
		})
	}

	if self.Options.Subtitle != `` {
		graph.Elements = append(graph.Elements, subtitle(self.Theme, self.Options.Subtitle))
	}

	switch self.Theme.LegendPosition {
	case LegendNone, ``:
	case LegendTop:
		graph.Elements = append(graph.Elements, chart.LegendThin(graph, self.Theme.Legend))
	default:
		graph.Elements = append(graph.Elements, chart.Legend(graph, self.Theme.Legend))
	}

	return graph
}

// subtitle draws below the title, left-aligned to the plot edge.
func subtitle(theme ChartTheme, text string) chart.Renderable {
	return func(r chart.Renderer, canvas chart.Box, defaults chart.Style) {
		style := theme.Subtitle.InheritFrom(defaults)
		style.WriteTextOptionsToRenderer(r)
		box := r.MeasureText(text)

		chart.Draw.Text(r, text, canvas.Left, canvas.Top-box.Height(), style)
	}
}

func (self *Plot) Render(w io.Writer, format RenderFormat) error {
	return RenderChart(self.Chart(), w, format)
}

// RenderChart writes a fully assembled chart (e.g. one that has been
// passed through Finish) in the given image format.
func RenderChart(graph *chart.Chart, w io.Writer, format RenderFormat) error {
	var renderProvider chart.RendererProvider

	switch format {
	case RenderFormatPNG:
		renderProvider = chart.PNG
	case RenderFormatSVG:
		renderProvider = chart.SVG
	default:
		return fmt.Errorf("%w: unsupported render format %q", ErrInvalidConfiguration, string(format))
	}

	if err := graph.Render(renderProvider, w); err != nil {
		return err
	}

	return nil
}
