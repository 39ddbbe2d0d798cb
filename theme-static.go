package niceplots

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart"
	"github.com/wcharczuk/go-chart/drawing"
)

var (
	DefaultBaseFontSize float64 = 11
	DefaultTitleFont            = `Lato Bold`
	DefaultBodyFont             = `Lato`
)

// fixed multipliers applied to the base font size
const (
	titleScale    = 2.0
	subtitleScale = 1.5
	textScale     = 1.0
	stripScale    = 1.0
)

type LegendPosition string

const (
	LegendNone   LegendPosition = `none`
	LegendTop    LegendPosition = `top`
	LegendBottom LegendPosition = `bottom`
	LegendLeft   LegendPosition = `left`
	LegendRight  LegendPosition = `right`
)

// Validate accepts the named positions plus an "x,y" coordinate pair with
// both values in [0,1]. The empty string is the unset zero value and is
// treated as LegendNone.
func (self LegendPosition) Validate() error {
	switch self {
	case ``, LegendNone, LegendTop, LegendBottom, LegendLeft, LegendRight:
		return nil
	}

	if _, _, ok := self.Coordinates(); ok {
		return nil
	}

	return fmt.Errorf("%w: unrecognized legend position %q", ErrInvalidConfiguration, string(self))
}

// Coordinates parses a coordinate-pair position. The third return is false
// when the position is not a coordinate pair.
func (self LegendPosition) Coordinates() (float64, float64, bool) {
	parts := strings.Split(string(self), `,`)

	if len(parts) != 2 {
		return 0, 0, false
	}

	x, xerr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, yerr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)

	if xerr != nil || yerr != nil {
		return 0, 0, false
	}

	if x < 0 || x > 1 || y < 0 || y > 1 {
		return 0, 0, false
	}

	return x, y, true
}

// ThemeOptions are the caller-facing knobs of the static theme builder.
// The zero value of each field means "use the default": major gridlines
// are shown unless explicitly hidden.
type ThemeOptions struct {
	BaseFontSize       float64
	LegendPosition     LegendPosition
	TitleFont          string
	BodyFont           string
	HideHorizontalGrid bool
	HideVerticalGrid   bool
}

func DefaultThemeOptions() ThemeOptions {
	return ThemeOptions{
		BaseFontSize:   DefaultBaseFontSize,
		LegendPosition: LegendNone,
		TitleFont:      DefaultTitleFont,
		BodyFont:       DefaultBodyFont,
	}
}

// ChartTheme is a declarative style spec for static charts. It is a plain
// value: copy it freely, merge copies with Merge.
type ChartTheme struct {
	TitleFont      string
	BodyFont       string
	LegendPosition LegendPosition
	Title          chart.Style
	Subtitle       chart.Style
	Footer         chart.Style
	Background     chart.Style
	Canvas         chart.Style
	XAxis          chart.Style
	XAxisTitle     chart.Style
	XAxisTicks     chart.Style
	XAxisGridMajor chart.Style
	XAxisGridMinor chart.Style
	YAxis          chart.Style
	YAxisTitle     chart.Style
	YAxisTicks     chart.Style
	YAxisGridMajor chart.Style
	YAxisGridMinor chart.Style
	Legend         chart.Style
	Strip          chart.Style
	StripText      chart.Style
	Series         []chart.Style
}

func (self *ChartTheme) GetSeriesStyle(i int) chart.Style {
	if len(self.Series) == 0 {
		return chart.Style{}
	} else {
		return self.Series[i%len(self.Series)]
	}
}

// NewTheme builds the brand style spec for static charts: bold left title,
// blank axis titles, major gridlines per the options, no panel chrome, no
// legend chrome, facet strips filled with the primary brand colour.
func NewTheme(options ThemeOptions) (ChartTheme, error) {
	position := options.LegendPosition

	if position == `` {
		position = LegendNone
	}

	if err := position.Validate(); err != nil {
		return ChartTheme{}, err
	}

	base := options.BaseFontSize

	if base <= 0 {
		base = DefaultBaseFontSize
	}

	titleFont := options.TitleFont

	if titleFont == `` {
		titleFont = DefaultTitleFont
	}

	bodyFont := options.BodyFont

	if bodyFont == `` {
		bodyFont = DefaultBodyFont
	}

	ink := drawing.ColorFromHex(strings.TrimPrefix(Colours[`black`], `#`))
	grid := drawing.ColorFromHex(strings.TrimPrefix(Colours[`pale grey`], `#`))
	strip := drawing.ColorFromHex(strings.TrimPrefix(PalettePrimary.Get(0), `#`))

	theme := ChartTheme{
		TitleFont:      titleFont,
		BodyFont:       bodyFont,
		LegendPosition: position,
		Title: chart.Style{
			Show:                true,
			FontSize:            base * titleScale,
			FontColor:           ink,
			TextHorizontalAlign: chart.TextHorizontalAlignLeft,
		},
		Subtitle: chart.Style{
			Show:                true,
			FontSize:            base * subtitleScale,
			FontColor:           drawing.ColorFromHex(strings.TrimPrefix(Colours[`dark grey`], `#`)),
			TextHorizontalAlign: chart.TextHorizontalAlignLeft,
		},
		Footer: chart.Style{
			Show:                true,
			FontSize:            base * textScale,
			FontColor:           drawing.ColorFromHex(strings.TrimPrefix(Colours[`dark grey`], `#`)),
			TextHorizontalAlign: chart.TextHorizontalAlignLeft,
		},
		Background: chart.Style{
			Show:        true,
			FillColor:   chart.ColorTransparent,
			StrokeColor: chart.ColorTransparent,
		},
		Canvas: chart.Style{
			Show:        true,
			FillColor:   chart.ColorTransparent,
			StrokeColor: chart.ColorTransparent,
		},
		XAxis: chart.Style{
			Show:        true,
			StrokeColor: ink,
			FontSize:    base * textScale,
			FontColor:   ink,
		},
		XAxisTitle: chart.Style{Show: false},
		XAxisTicks: chart.Style{
			Show:      true,
			FontSize:  base * textScale,
			FontColor: ink,
		},
		XAxisGridMajor: chart.Style{
			Show:        !options.HideVerticalGrid,
			StrokeColor: grid,
			StrokeWidth: 1.0,
		},
		XAxisGridMinor: chart.Style{Show: false},
		YAxis: chart.Style{
			Show:        true,
			StrokeColor: ink,
			FontSize:    base * textScale,
			FontColor:   ink,
		},
		YAxisTitle: chart.Style{Show: false},
		YAxisTicks: chart.Style{
			Show:      true,
			FontSize:  base * textScale,
			FontColor: ink,
		},
		YAxisGridMajor: chart.Style{
			Show:        !options.HideHorizontalGrid,
			StrokeColor: grid,
			StrokeWidth: 1.0,
		},
		YAxisGridMinor: chart.Style{Show: false},
		Legend: chart.Style{
			Show:        position != LegendNone,
			FontSize:    base * textScale,
			FontColor:   ink,
			FillColor:   chart.ColorTransparent,
			StrokeColor: chart.ColorTransparent,
		},
		Strip: chart.Style{
			Show:      true,
			FillColor: strip,
		},
		StripText: chart.Style{
			Show:                true,
			FontSize:            base * stripScale,
			FontColor:           chart.ColorWhite,
			TextHorizontalAlign: chart.TextHorizontalAlignCenter,
		},
		Series: MakeSeriesPalette(func(style *chart.Style) {
			style.StrokeWidth = 2
		}, PalettePrimary...),
	}

	return theme, nil
}

// DefaultTheme is the theme produced by the default options.
var DefaultTheme = func() ChartTheme {
	theme, err := NewTheme(DefaultThemeOptions())

	if err != nil {
		panic(err)
	}

	return theme
}()

// Merge combines two themes, last write wins: every non-zero style of
// other replaces the corresponding style of self in the returned copy.
// Neither input is modified.
func (self ChartTheme) Merge(other ChartTheme) ChartTheme {
	merged := self

	if other.TitleFont != `` {
		merged.TitleFont = other.TitleFont
	}

	if other.BodyFont != `` {
		merged.BodyFont = other.BodyFont
	}

	if other.LegendPosition != `` {
		merged.LegendPosition = other.LegendPosition
	}

	pairs := []struct {
		dst *chart.Style
		src chart.Style
	}{
		{&merged.Title, other.Title},
		{&merged.Subtitle, other.Subtitle},
		{&merged.Footer, other.Footer},
		{&merged.Background, other.Background},
		{&merged.Canvas, other.Canvas},
		{&merged.XAxis, other.XAxis},
		{&merged.XAxisTitle, other.XAxisTitle},
		{&merged.XAxisTicks, other.XAxisTicks},
		{&merged.XAxisGridMajor, other.XAxisGridMajor},
		{&merged.XAxisGridMinor, other.XAxisGridMinor},
		{&merged.YAxis, other.YAxis},
		{&merged.YAxisTitle, other.YAxisTitle},
		{&merged.YAxisTicks, other.YAxisTicks},
		{&merged.YAxisGridMajor, other.YAxisGridMajor},
		{&merged.YAxisGridMinor, other.YAxisGridMinor},
		{&merged.Legend, other.Legend},
		{&merged.Strip, other.Strip},
		{&merged.StripText, other.StripText},
	}

	for _, pair := range pairs {
		if !pair.src.IsZero() {
			*pair.dst = pair.src
		}
	}

	if len(other.Series) > 0 {
		merged.Series = make([]chart.Style, len(other.Series))
		copy(merged.Series, other.Series)
	}

	return merged
}
