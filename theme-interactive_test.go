package niceplots

import (
	"encoding/json"
	"testing"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/stretchr/testify/require"
)

func boolValue(v types.Bool) bool {
	if v == nil {
		return false
	}

	return *v
}

func themedLine(t *testing.T, theme *InteractiveTheme) *charts.Line {
	line := charts.NewLine()
	require.NoError(t, theme.Apply(&line.BaseConfiguration))

	return line
}

func TestInteractiveThemeDefaults(t *testing.T) {
	assert := require.New(t)

	theme := NewInteractiveTheme(Line)
	assert.Equal(ChartType(Line), theme.Type)
	assert.Equal(DefaultAxisTitleX, theme.XTitle)
	assert.Equal(DefaultAxisTitleY, theme.YTitle)
	assert.Equal(DefaultInteractiveFontSize, theme.FontSize)
	assert.Equal(`Lato`, theme.FontFamily)
	assert.True(theme.PadAxes)
}

func TestGridRules(t *testing.T) {
	assert := require.New(t)

	for chartType, expected := range map[ChartType]struct {
		horizontal bool
		vertical   bool
	}{
		VerticalBar:   {horizontal: true, vertical: false},
		HorizontalBar: {horizontal: false, vertical: true},
		Scatter:       {horizontal: true, vertical: true},
		Line:          {horizontal: true, vertical: false},
	} {
		line := themedLine(t, NewInteractiveTheme(chartType))

		xaxis := line.XAxisList[0]
		yaxis := line.YAxisList[0]

		assert.NotNil(xaxis.SplitLine, `chart type %q`, string(chartType))
		assert.NotNil(yaxis.SplitLine, `chart type %q`, string(chartType))

		assert.Equal(expected.vertical, boolValue(xaxis.SplitLine.Show), `vertical grid, chart type %q`, string(chartType))
		assert.Equal(expected.horizontal, boolValue(yaxis.SplitLine.Show), `horizontal grid, chart type %q`, string(chartType))
	}
}

func TestUnknownChartType(t *testing.T) {
	assert := require.New(t)

	theme := NewInteractiveTheme(`pie`)

	_, err := theme.GlobalOptions()
	assert.ErrorIs(err, ErrInvalidConfiguration)

	line := charts.NewLine()
	assert.ErrorIs(theme.Apply(&line.BaseConfiguration), ErrInvalidConfiguration)
}

func TestAxisPadding(t *testing.T) {
	assert := require.New(t)

	padded := themedLine(t, NewInteractiveTheme(Line))
	assert.Equal(float64(axisLabelOffset), float64(padded.XAxisList[0].AxisLabel.Margin))
	assert.Equal(float64(axisLabelOffset), float64(padded.YAxisList[0].AxisLabel.Margin))

	theme := NewInteractiveTheme(HorizontalBar)
	theme.PadAxes = false
	flush := themedLine(t, theme)

	// horizontal bars: horizontal grid off, vertical grid on, and with
	// padding disabled the tick labels sit flush against the axis
	assert.True(boolValue(flush.XAxisList[0].SplitLine.Show))
	assert.False(boolValue(flush.YAxisList[0].SplitLine.Show))
	assert.Equal(flushAxisMargin, float64(flush.XAxisList[0].AxisLabel.Margin))
	assert.Equal(flushAxisMargin, float64(flush.YAxisList[0].AxisLabel.Margin))

	// the flush margin must survive serialization: a margin of exactly
	// zero is dropped by omitempty and the engine would reapply its own
	// default gap
	serialized, err := json.Marshal(flush.XAxisList[0].AxisLabel)
	assert.NoError(err)
	assert.Contains(string(serialized), `"margin":0.001`)
}

func TestAxisTitlesAndToolbox(t *testing.T) {
	assert := require.New(t)

	theme := NewInteractiveTheme(Scatter)
	theme.XTitle = `Month`
	theme.YTitle = `Referrals`

	line := themedLine(t, theme)

	assert.Equal(`Month`, line.XAxisList[0].Name)
	assert.Equal(`Referrals`, line.YAxisList[0].Name)

	// toolbox keeps only image export
	assert.True(boolValue(line.Toolbox.Show))
	assert.NotNil(line.Toolbox.Feature)
	assert.NotNil(line.Toolbox.Feature.SaveAsImage)
	assert.Nil(line.Toolbox.Feature.DataZoom)
	assert.Nil(line.Toolbox.Feature.DataView)
	assert.Nil(line.Toolbox.Feature.Restore)

	// all text shares one family at one size
	assert.Equal(theme.FontFamily, line.XAxisList[0].AxisLabel.FontFamily)
	assert.Equal(theme.FontFamily, line.YAxisList[0].AxisLabel.FontFamily)
	assert.Equal(theme.FontSize, line.XAxisList[0].AxisLabel.FontSize)
	assert.Equal(theme.FontSize, line.YAxisList[0].AxisLabel.FontSize)

	assert.NotNil(line.Legend.TextStyle)
	assert.Equal(theme.FontFamily, line.Legend.TextStyle.FontFamily)
	assert.Equal(theme.FontSize, line.Legend.TextStyle.FontSize)
}
