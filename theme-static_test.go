package niceplots

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart"
	"github.com/wcharczuk/go-chart/drawing"
)

func TestLegendPositionValidate(t *testing.T) {
	assert := require.New(t)

	for _, position := range []LegendPosition{
		LegendNone, LegendTop, LegendBottom, LegendLeft, LegendRight,
		`0,0`, `0.5,0.5`, `1,1`, ` 0.25 , 0.75 `, ``,
	} {
		assert.NoError(position.Validate(), `position %q`, string(position))
	}

	for _, position := range []LegendPosition{
		`middle`, `up`, `1.5,0.5`, `-0.1,0`, `a,b`, `0.5`, `0.5,0.5,0.5`,
	} {
		err := position.Validate()
		assert.ErrorIs(err, ErrInvalidConfiguration, `position %q`, string(position))
	}
}

func TestLegendPositionCoordinates(t *testing.T) {
	assert := require.New(t)

	x, y, ok := LegendPosition(`0.25,0.75`).Coordinates()
	assert.True(ok)
	assert.Equal(0.25, x)
	assert.Equal(0.75, y)

	_, _, ok = LegendTop.Coordinates()
	assert.False(ok)
}

func TestNewThemeDefaults(t *testing.T) {
	assert := require.New(t)

	theme, err := NewTheme(DefaultThemeOptions())
	assert.NoError(err)

	// fixed multipliers of the base size
	assert.Equal(float64(22), theme.Title.FontSize)
	assert.Equal(16.5, theme.Subtitle.FontSize)
	assert.Equal(float64(11), theme.XAxisTicks.FontSize)
	assert.Equal(float64(11), theme.Legend.FontSize)
	assert.Equal(float64(11), theme.StripText.FontSize)

	assert.Equal(chart.TextHorizontalAlignLeft, theme.Title.TextHorizontalAlign)

	// blank axis titles
	assert.False(theme.XAxisTitle.Show)
	assert.False(theme.YAxisTitle.Show)

	// major gridlines only
	assert.True(theme.YAxisGridMajor.Show)
	assert.True(theme.XAxisGridMajor.Show)
	assert.False(theme.XAxisGridMinor.Show)
	assert.False(theme.YAxisGridMinor.Show)

	// no panel or legend chrome
	assert.Equal(chart.ColorTransparent, theme.Background.FillColor)
	assert.Equal(chart.ColorTransparent, theme.Canvas.FillColor)
	assert.Equal(chart.ColorTransparent, theme.Legend.FillColor)
	assert.Equal(chart.ColorTransparent, theme.Legend.StrokeColor)

	// legend is hidden by default
	assert.Equal(LegendPosition(LegendNone), theme.LegendPosition)
	assert.False(theme.Legend.Show)

	// strip carries the brand colour with centred white text
	brand := drawing.ColorFromHex(strings.TrimPrefix(Colours[`teal`], `#`))
	assert.Equal(brand, theme.Strip.FillColor)
	assert.Equal(chart.ColorWhite, theme.StripText.FontColor)
	assert.Equal(chart.TextHorizontalAlignCenter, theme.StripText.TextHorizontalAlign)

	assert.Equal(`Lato Bold`, theme.TitleFont)
	assert.Equal(`Lato`, theme.BodyFont)
	assert.Len(theme.Series, 5)
}

func TestNewThemeOverrides(t *testing.T) {
	assert := require.New(t)

	options := DefaultThemeOptions()
	options.BaseFontSize = 14
	options.LegendPosition = LegendBottom
	options.HideVerticalGrid = true

	theme, err := NewTheme(options)
	assert.NoError(err)

	assert.Equal(float64(28), theme.Title.FontSize)
	assert.Equal(float64(14), theme.XAxisTicks.FontSize)
	assert.True(theme.Legend.Show)
	assert.False(theme.XAxisGridMajor.Show)
	assert.True(theme.YAxisGridMajor.Show)
}

func TestNewThemeZeroValueOptions(t *testing.T) {
	assert := require.New(t)

	// callers building options by hand, without DefaultThemeOptions,
	// still get the documented defaults from the zero values
	theme, err := NewTheme(ThemeOptions{LegendPosition: LegendTop})
	assert.NoError(err)

	assert.True(theme.YAxisGridMajor.Show)
	assert.True(theme.XAxisGridMajor.Show)
	assert.Equal(float64(DefaultBaseFontSize*2), theme.Title.FontSize)
	assert.Equal(`Lato Bold`, theme.TitleFont)
	assert.Equal(`Lato`, theme.BodyFont)

	bare, err := NewTheme(ThemeOptions{})
	assert.NoError(err)
	assert.Equal(LegendNone, bare.LegendPosition)
	assert.True(bare.YAxisGridMajor.Show)
}

func TestNewThemeInvalidLegend(t *testing.T) {
	assert := require.New(t)

	options := DefaultThemeOptions()
	options.LegendPosition = `sideways`

	_, err := NewTheme(options)
	assert.ErrorIs(err, ErrInvalidConfiguration)
}

func TestThemeMerge(t *testing.T) {
	assert := require.New(t)

	base, err := NewTheme(DefaultThemeOptions())
	assert.NoError(err)

	merged := base.Merge(ChartTheme{LegendPosition: LegendTop})
	assert.Equal(LegendPosition(LegendTop), merged.LegendPosition)

	// only the overridden field differs
	restored := merged
	restored.LegendPosition = base.LegendPosition
	assert.Equal(base, restored)

	// base is untouched
	assert.Equal(LegendPosition(LegendNone), base.LegendPosition)
}

func TestThemeMergeStyles(t *testing.T) {
	assert := require.New(t)

	base, err := NewTheme(DefaultThemeOptions())
	assert.NoError(err)

	override := ChartTheme{
		Title: chart.Style{
			Show:     true,
			FontSize: 30,
		},
	}

	merged := base.Merge(override)
	assert.Equal(float64(30), merged.Title.FontSize)
	assert.Equal(base.Subtitle, merged.Subtitle)
	assert.Equal(base.YAxisGridMajor, merged.YAxisGridMajor)
	assert.Equal(base.Series, merged.Series)

	// merging again with a later override still wins
	final := merged.Merge(ChartTheme{
		Title: chart.Style{
			Show:     true,
			FontSize: 18,
		},
	})
	assert.Equal(float64(18), final.Title.FontSize)
}
