package niceplots

import (
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart"
	"github.com/wcharczuk/go-chart/drawing"
)

type Logo string

const (
	LogoNICE Logo = `NICE`
	LogoNone Logo = `none`
)

// clearance between the plot area and the footer baseline
const footerOffset = 36

// Finish adds the source-attribution footer to an already-themed chart and
// left-aligns its title to the plot edge. With LogoNICE the brand wordmark
// is drawn at the footer's right edge in the primary brand colour.
func Finish(graph *chart.Chart, theme ChartTheme, source string, logo Logo) error {
	switch logo {
	case LogoNICE, LogoNone:
	default:
		return fmt.Errorf("%w: unrecognized logo flag %q", ErrInvalidConfiguration, string(logo))
	}

	title := theme.Title
	title.TextHorizontalAlign = chart.TextHorizontalAlignLeft
	graph.TitleStyle = title

	graph.Elements = append(graph.Elements, footer(theme, source, logo))

	return nil
}

func footer(theme ChartTheme, source string, logo Logo) chart.Renderable {
	return func(r chart.Renderer, canvas chart.Box, defaults chart.Style) {
		y := canvas.Bottom + footerOffset
		style := theme.Footer.InheritFrom(defaults)

		if source != `` {
			chart.Draw.Text(r, source, canvas.Left, y, style)
		}

		if logo == LogoNICE {
			wordmark := style
			wordmark.FontColor = drawing.ColorFromHex(strings.TrimPrefix(PalettePrimary.Get(0), `#`))
			wordmark.FontSize = theme.Footer.FontSize * subtitleScale

			wordmark.WriteTextOptionsToRenderer(r)
			box := r.MeasureText(string(LogoNICE))

			chart.Draw.Text(r, string(LogoNICE), canvas.Right-box.Width(), y, wordmark)
		}
	}
}
