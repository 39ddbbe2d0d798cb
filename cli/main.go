package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	niceplots "github.com/GitWray1/niceRplots"
	"github.com/ghetzel/cli"
	"github.com/ghetzel/go-stockutil/stringutil"
	"github.com/op/go-logging"
)

var DefaultPreviewFormat = string(niceplots.RenderFormatPNG)
var DefaultAddress = `127.0.0.1:28419`
var log = logging.MustGetLogger(`main`)

func main() {
	app := cli.NewApp()
	app.Name = `niceplots`
	app.Usage = `Apply the brand chart style to static and interactive charts.`
	app.Version = `0.0.1`
	app.EnableBashCompletion = false

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   `log-level, L`,
			Usage:  `Level of log output verbosity`,
			Value:  `debug`,
			EnvVar: `LOGLEVEL`,
		},
	}

	app.Before = func(c *cli.Context) error {
		logging.SetFormatter(logging.MustStringFormatter(`%{color}%{level:.4s}%{color:reset}[%{id:04d}] %{message}`))

		if level, err := logging.LogLevel(c.String(`log-level`)); err == nil {
			logging.SetLevel(level, ``)
		} else {
			return err
		}

		return nil
	}

	app.Commands = []cli.Command{
		{
			Name:      `colours`,
			ArgsUsage: `[PATTERN]`,
			Usage:     `List the brand colours, optionally filtered by a glob pattern.`,
			Action: func(c *cli.Context) {
				pattern := c.Args().First()

				if pattern == `` {
					pattern = `*`
				}

				if names, err := niceplots.MatchColours(pattern); err == nil {
					for _, name := range names {
						fmt.Printf("%-16s %s\n", name, niceplots.Colours[name])
					}
				} else {
					log.Fatalf("Failed to match colours: %v", err)
				}
			},
		}, {
			Name:      `bin`,
			ArgsUsage: `VALUE [VALUE ..]`,
			Usage:     `Assign values to the choropleth bins and show the fill colour for each.`,
			Action: func(c *cli.Context) {
				if c.NArg() == 0 {
					log.Fatalf("Must specify at least one value to bin.")
				}

				for _, arg := range c.Args() {
					label := niceplots.MissingBin

					if value, err := stringutil.ConvertToFloat(arg); err == nil {
						label = niceplots.Bin(value)
					}

					if fill, err := niceplots.BinFill(label); err == nil {
						fmt.Printf("%-8s %-8s %s\n", arg, label, fill)
					} else {
						log.Fatalf("Bin lookup failed: %v", err)
					}
				}
			},
		}, {
			Name:  `preview`,
			Usage: `Render a themed sample chart to standard output.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  `type, t`,
					Usage: `The chart type to preview.`,
					Value: string(niceplots.Line),
				},
				cli.StringFlag{
					Name:  `format, f`,
					Usage: `The output image format.`,
					Value: DefaultPreviewFormat,
				},
				cli.StringFlag{
					Name:  `title, T`,
					Usage: `The title of the chart.`,
				},
				cli.StringFlag{
					Name:  `legend, l`,
					Usage: `Legend position (none, top, bottom, left, right, or "x,y").`,
					Value: string(niceplots.LegendNone),
				},
				cli.StringFlag{
					Name:  `source, s`,
					Usage: `Source attribution text appended as a footer.`,
				},
				cli.BoolFlag{
					Name:  `logo`,
					Usage: `Include the brand wordmark in the footer.`,
				},
			},
			Action: func(c *cli.Context) {
				options := niceplots.DefaultThemeOptions()
				options.LegendPosition = niceplots.LegendPosition(c.String(`legend`))

				theme, err := niceplots.NewTheme(options)

				if err != nil {
					log.Fatalf("Invalid theme options: %v", err)
				}

				chartType := niceplots.ChartType(c.String(`type`))
				plot := niceplots.NewPlot(niceplots.SampleSeries(chartType)...)
				plot.Theme = theme
				plot.Options.Title = c.String(`title`)

				graph := plot.Chart()

				if source := c.String(`source`); source != `` || c.Bool(`logo`) {
					logo := niceplots.LogoNone

					if c.Bool(`logo`) {
						logo = niceplots.LogoNICE
					}

					if err := niceplots.Finish(graph, theme, source, logo); err != nil {
						log.Fatalf("Failed to finish chart: %v", err)
					}
				}

				if err := niceplots.RenderChart(graph, os.Stdout, niceplots.RenderFormat(c.String(`format`))); err != nil {
					log.Fatalf("Preview render error: %v", err)
				}
			},
		}, {
			Name:      `serve`,
			ArgsUsage: `[ADDRESS]`,
			Usage:     `Start the palette and preview HTTP server.`,
			Action: func(c *cli.Context) {
				address := c.Args().First()

				if address == `` {
					address = DefaultAddress
				}

				server := niceplots.NewServer(niceplots.DefaultTheme)

				log.Noticef("Listening on %s", address)
				log.Infof("Routes: /colours /colours/:name /palette /bins /preview/:type /interactive/:type")

				if err := http.ListenAndServe(address, server); err != nil {
					log.Fatalf("Server error: %v", err)
				}
			},
		}, {
			Name:      `hex`,
			ArgsUsage: `VALUE [VALUE ..]`,
			Usage:     `Normalize hex colour values to the canonical #RRGGBB form.`,
			Action: func(c *cli.Context) {
				if c.NArg() == 0 {
					log.Fatalf("Must specify at least one value.")
				}

				normalized := make([]string, 0, c.NArg())

				for _, arg := range c.Args() {
					if hex, err := niceplots.NormalizeHex(arg); err == nil {
						normalized = append(normalized, hex)
					} else {
						log.Fatalf("Invalid colour %q: %v", arg, err)
					}
				}

				fmt.Println(strings.Join(normalized, "\n"))
			},
		},
	}

	app.Run(os.Args)
}
