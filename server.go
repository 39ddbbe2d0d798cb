package niceplots

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/ghetzel/go-stockutil/httputil"
	"github.com/ghetzel/go-stockutil/stringutil"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/husobee/vestigo"
)

// Server exposes the palette, the binning rules, and themed chart previews
// over HTTP. It is presentation glue around the pure styling core.
type Server struct {
	router *vestigo.Router
	theme  ChartTheme
}

type colourEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type binResult struct {
	Bin  string `json:"bin"`
	Fill string `json:"fill"`
}

func NewServer(theme ChartTheme) *Server {
	router := vestigo.NewRouter()

	router.Get(`/colours`, func(w http.ResponseWriter, req *http.Request) {
		if names, err := MatchColours(httputil.Q(req, `filter`, `*`)); err == nil {
			entries := make([]colourEntry, len(names))

			for i, name := range names {
				entries[i] = colourEntry{
					Name:  name,
					Value: Colours[name],
				}
			}

			respond(w, entries)
		} else {
			respond(w, err, http.StatusBadRequest)
		}
	})

	router.Get(`/colours/:name`, func(w http.ResponseWriter, req *http.Request) {
		name := vestigo.Param(req, `name`)

		if hex, err := LookupColour(name); err == nil {
			respond(w, colourEntry{
				Name:  normalizeColourName(name),
				Value: hex,
			})
		} else {
			respond(w, err, http.StatusNotFound)
		}
	})

	router.Get(`/palette`, func(w http.ResponseWriter, req *http.Request) {
		respond(w, []string(PalettePrimary))
	})

	router.Get(`/bins`, func(w http.ResponseWriter, req *http.Request) {
		label := MissingBin

		if raw := httputil.Q(req, `value`); raw != `` {
			if value, err := stringutil.ConvertToFloat(raw); err == nil {
				label = Bin(value)
			} else {
				respond(w, err, http.StatusBadRequest)
				return
			}
		}

		fill, err := BinFill(label)

		if err != nil {
			respond(w, err)
			return
		}

		respond(w, binResult{
			Bin:  label,
			Fill: fill,
		})
	})

	router.Get(`/preview/:type`, func(w http.ResponseWriter, req *http.Request) {
		chartType := ChartType(vestigo.Param(req, `type`))

		if _, ok := gridRules[chartType]; !ok {
			respond(w, fmt.Errorf("%w: unrecognized chart type %q", ErrInvalidConfiguration, string(chartType)), http.StatusBadRequest)
			return
		}

		format := RenderFormat(httputil.Q(req, `format`, string(RenderFormatPNG)))

		plot := NewPlot(SampleSeries(chartType)...)
		plot.Theme = theme
		plot.Options.Title = httputil.Q(req, `title`, `Theme preview`)
		plot.Options.Width = int(httputil.QInt(req, `width`))
		plot.Options.Height = int(httputil.QInt(req, `height`))
		plot.Options.DPI = httputil.QFloat(req, `dpi`, DefaultDPI)

		switch format {
		case RenderFormatPNG:
			w.Header().Set(`Content-Type`, `image/png`)
		case RenderFormatSVG:
			w.Header().Set(`Content-Type`, `image/svg+xml`)
		}

		if err := plot.Render(w, format); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	router.Get(`/interactive/:type`, func(w http.ResponseWriter, req *http.Request) {
		chartType := ChartType(vestigo.Param(req, `type`))
		preview, err := interactivePreview(chartType)

		if err != nil {
			respond(w, err, http.StatusBadRequest)
			return
		}

		w.Header().Set(`Content-Type`, `text/html; charset=utf-8`)

		if err := preview.Render(w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	return &Server{
		router: router,
		theme:  theme,
	}
}

func (self *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	self.router.ServeHTTP(w, req)
}

type htmlRenderer interface {
	Render(w io.Writer) error
}

// interactivePreview builds a demo go-echarts chart of the given type with
// the brand theme applied.
func interactivePreview(chartType ChartType) (htmlRenderer, error) {
	theme := NewInteractiveTheme(chartType)
	sample := SampleSeries(chartType)[0]

	labels := make([]string, len(sample.X))

	for i, x := range sample.X {
		labels[i] = fmt.Sprintf("%v", x)
	}

	switch chartType {
	case VerticalBar, HorizontalBar:
		values := make([]opts.BarData, len(sample.Y))

		for i, y := range sample.Y {
			values[i] = opts.BarData{Value: y}
		}

		bar := charts.NewBar()
		bar.SetXAxis(labels).AddSeries(sample.Name, values)

		if err := theme.Apply(&bar.BaseConfiguration); err != nil {
			return nil, err
		}

		return bar, nil
	case Scatter:
		values := make([]opts.ScatterData, len(sample.Y))

		for i, y := range sample.Y {
			values[i] = opts.ScatterData{Value: y}
		}

		scatter := charts.NewScatter()
		scatter.SetXAxis(labels).AddSeries(sample.Name, values)

		if err := theme.Apply(&scatter.BaseConfiguration); err != nil {
			return nil, err
		}

		return scatter, nil
	case Line:
		values := make([]opts.LineData, len(sample.Y))

		for i, y := range sample.Y {
			values[i] = opts.LineData{Value: y}
		}

		line := charts.NewLine()
		line.SetXAxis(labels).AddSeries(sample.Name, values)

		if err := theme.Apply(&line.BaseConfiguration); err != nil {
			return nil, err
		}

		return line, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized chart type %q", ErrInvalidConfiguration, string(chartType))
	}
}

func respond(w http.ResponseWriter, data interface{}, code ...int) {
	w.Header().Set(`Content-Type`, `application/json`)

	if err, ok := data.(error); ok {
		data = map[string]interface{}{
			`error`: err.Error(),
		}

		if len(code) == 0 || code[0] < 400 {
			code = []int{http.StatusInternalServerError}
		}
	}

	if output, err := json.MarshalIndent(data, ``, `  `); err == nil {
		if len(code) > 0 {
			w.WriteHeader(code[0])
		}

		w.Write(output)
	} else {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ColourNames returns every brand colour name, sorted.
func ColourNames() []string {
	names := make([]string, 0, len(Colours))

	for name := range Colours {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
