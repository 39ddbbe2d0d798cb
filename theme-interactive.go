package niceplots

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type ChartType string

const (
	VerticalBar   ChartType = `vertical-bar`
	HorizontalBar           = `horizontal-bar`
	Scatter                 = `scatter`
	Line                    = `line`
)

var (
	DefaultInteractiveFontSize = 12
	DefaultAxisTitleX          = `[replace with x-axis title]`
	DefaultAxisTitleY          = `[replace with y-axis title]`
)

// axisLabelOffset is the gap inserted between tick labels and the axis
// line when padding is enabled. flushAxisMargin stands in for zero when
// padding is off: the margin field is omitted from the serialized option
// when it is exactly zero, which would let the engine fall back to its
// own default gap instead of flush labels.
const (
	axisLabelOffset           = 10
	flushAxisMargin   float64 = 0.001
)

type gridRule struct {
	horizontal bool
	vertical   bool
}

// gridRules decides gridline visibility per chart type. Horizontal lines
// come from the y-axis split lines, vertical lines from the x-axis.
var gridRules = map[ChartType]gridRule{
	VerticalBar:   {horizontal: true, vertical: false},
	HorizontalBar: {horizontal: false, vertical: true},
	Scatter:       {horizontal: true, vertical: true},
	Line:          {horizontal: true, vertical: false},
}

// InteractiveTheme restyles go-echarts charts: one font family everywhere,
// gridlines per chart type, optional axis padding, and a toolbox stripped
// down to image export. Use NewInteractiveTheme for the documented
// defaults.
type InteractiveTheme struct {
	Type       ChartType
	XTitle     string
	YTitle     string
	FontFamily string
	FontSize   int
	PadAxes    bool
}

func NewInteractiveTheme(chartType ChartType) *InteractiveTheme {
	return &InteractiveTheme{
		Type:       chartType,
		XTitle:     DefaultAxisTitleX,
		YTitle:     DefaultAxisTitleY,
		FontFamily: DefaultBodyFont,
		FontSize:   DefaultInteractiveFontSize,
		PadAxes:    true,
	}
}

// GlobalOptions returns the option set to pass to the chart's
// SetGlobalOptions. Data bindings on the chart are untouched.
func (self *InteractiveTheme) GlobalOptions() ([]charts.GlobalOpts, error) {
	rule, ok := gridRules[self.Type]

	if !ok {
		return nil, fmt.Errorf("%w: unrecognized chart type %q", ErrInvalidConfiguration, string(self.Type))
	}

	fontSize := self.FontSize

	if fontSize <= 0 {
		fontSize = DefaultInteractiveFontSize
	}

	ink := Colours[`black`]
	grid := Colours[`pale grey`]

	labels := opts.AxisLabel{
		Show:       opts.Bool(true),
		Color:      ink,
		FontFamily: self.FontFamily,
		FontSize:   fontSize,
	}

	if self.PadAxes {
		labels.Margin = axisLabelOffset
	} else {
		labels.Margin = flushAxisMargin
	}

	xlabels := labels
	ylabels := labels

	xaxis := opts.XAxis{
		Name:      self.XTitle,
		AxisLabel: &xlabels,
		SplitLine: &opts.SplitLine{
			Show:      opts.Bool(rule.vertical),
			LineStyle: &opts.LineStyle{Color: grid},
		},
	}

	yaxis := opts.YAxis{
		Name:      self.YTitle,
		AxisLabel: &ylabels,
		SplitLine: &opts.SplitLine{
			Show:      opts.Bool(rule.horizontal),
			LineStyle: &opts.LineStyle{Color: grid},
		},
	}

	legend := opts.Legend{
		Show: opts.Bool(true),
		TextStyle: &opts.TextStyle{
			Color:      ink,
			FontFamily: self.FontFamily,
			FontSize:   fontSize,
		},
	}

	// every default toolbox action except image export is dropped
	toolbox := opts.Toolbox{
		Show: opts.Bool(true),
		Feature: &opts.ToolBoxFeature{
			SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
				Show:  opts.Bool(true),
				Title: `save`,
			},
		},
	}

	return []charts.GlobalOpts{
		charts.WithXAxisOpts(xaxis),
		charts.WithYAxisOpts(yaxis),
		charts.WithLegendOpts(legend),
		charts.WithToolboxOpts(toolbox),
	}, nil
}

// Apply runs the theme against a chart's base configuration, e.g.
// theme.Apply(&bar.BaseConfiguration).
func (self *InteractiveTheme) Apply(base *charts.BaseConfiguration) error {
	options, err := self.GlobalOptions()

	if err != nil {
		return err
	}

	for _, option := range options {
		option(base)
	}

	return nil
}
