package niceplots

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart"
)

func TestFinishInvalidLogo(t *testing.T) {
	assert := require.New(t)

	graph := NewPlot(SampleSeries(Line)...).Chart()

	err := Finish(graph, DefaultTheme, `Source: published statistics`, `nhs`)
	assert.ErrorIs(err, ErrInvalidConfiguration)
}

func TestFinishAddsFooter(t *testing.T) {
	assert := require.New(t)

	plot := NewPlot(SampleSeries(Line)...)
	plot.Options.Title = `Referrals by month`

	graph := plot.Chart()
	elements := len(graph.Elements)

	assert.NoError(Finish(graph, plot.Theme, `Source: published statistics`, LogoNICE))
	assert.Len(graph.Elements, elements+1)
	assert.Equal(chart.TextHorizontalAlignLeft, graph.TitleStyle.TextHorizontalAlign)

	// the finished chart still renders
	var buffer bytes.Buffer
	assert.NoError(RenderChart(graph, &buffer, RenderFormatPNG))
	assert.True(buffer.Len() > 0)
}

func TestFinishWithoutLogo(t *testing.T) {
	assert := require.New(t)

	graph := NewPlot(SampleSeries(Scatter)...).Chart()
	elements := len(graph.Elements)

	assert.NoError(Finish(graph, DefaultTheme, `Source: published statistics`, LogoNone))
	assert.Len(graph.Elements, elements+1)
}
