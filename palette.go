package niceplots

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/wcharczuk/go-chart"
	"github.com/wcharczuk/go-chart/drawing"
)

type Palette []string

func (self Palette) Get(index int) string {
	if len(self) == 0 {
		return ``
	}

	return `#` + strings.TrimPrefix(self[index%len(self)], `#`)
}

// Colours is the brand colour table: name to 6-digit hex. Read-only after
// process start; concurrent reads are safe.
var Colours = map[string]string{
	`black`:        `#0B0C0C`,
	`white`:        `#FFFFFF`,
	`deep teal`:    `#0E3A42`,
	`dark teal`:    `#00546C`,
	`teal`:         `#228096`,
	`light teal`:   `#6FB9C8`,
	`pale teal`:    `#D4E9ED`,
	`navy`:         `#003087`,
	`blue`:         `#005EB8`,
	`bright blue`:  `#0072CE`,
	`light blue`:   `#41B6E6`,
	`pale blue`:    `#C9E0F2`,
	`aqua`:         `#00A499`,
	`green`:        `#009639`,
	`dark green`:   `#006747`,
	`light green`:  `#78BE20`,
	`yellow`:       `#FAE100`,
	`warm yellow`:  `#FFB81C`,
	`orange`:       `#ED8B00`,
	`dark orange`:  `#C45911`,
	`red`:          `#DA291C`,
	`dark red`:     `#8A1538`,
	`pink`:         `#AE2573`,
	`light pink`:   `#F499BE`,
	`magenta`:      `#C800A1`,
	`purple`:       `#330072`,
	`light purple`: `#8E7CC3`,
	`plum`:         `#7C2855`,
	`brown`:        `#6B4C35`,
	`dark grey`:    `#425563`,
	`grey`:         `#768692`,
	`light grey`:   `#AEB7BD`,
	`pale grey`:    `#E8EDEE`,
}

// PalettePrimary is the ordered default category palette. The first entry
// is the primary brand colour.
var PalettePrimary = Palette{
	`#228096`, `#FFB81C`, `#7C2855`, `#41B6E6`, `#425563`,
}

// MissingFill is the neutral grey used for values that fall into the
// missing bin on choropleth maps.
var MissingFill = Colours[`light grey`]

// LookupColour returns the hex value for a named brand colour. Names are
// case-insensitive; underscores and hyphens are treated as spaces.
func LookupColour(name string) (string, error) {
	if hex, ok := Colours[normalizeColourName(name)]; ok {
		return hex, nil
	}

	return ``, fmt.Errorf("%w: %q", ErrUnknownColourName, name)
}

// PrimaryColour returns the index-th entry of the primary palette.
func PrimaryColour(index int) (string, error) {
	if index < 0 || index >= len(PalettePrimary) {
		return ``, fmt.Errorf("%w: primary colour %d of %d", ErrIndexOutOfRange, index, len(PalettePrimary))
	}

	return PalettePrimary[index], nil
}

// MatchColours returns the names of all brand colours matching the given
// glob pattern, sorted, e.g. MatchColours(`*teal*`).
func MatchColours(pattern string) ([]string, error) {
	matcher, err := glob.Compile(normalizeColourName(pattern))

	if err != nil {
		return nil, fmt.Errorf("%w: bad pattern %q", ErrInvalidConfiguration, pattern)
	}

	names := make([]string, 0)

	for name := range Colours {
		if matcher.Match(name) {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names, nil
}

// MakeSeriesPalette builds per-series chart styles from an ordered list of
// colours, applying an optional override to each.
func MakeSeriesPalette(each func(style *chart.Style), colors ...string) []chart.Style {
	styles := make([]chart.Style, len(colors))

	for i, color := range colors {
		style := styles[i]

		style.Show = true
		style.StrokeColor = drawing.ColorFromHex(strings.TrimPrefix(color, `#`))
		style.FillColor = drawing.ColorFromHex(strings.TrimPrefix(color, `#`)).WithAlpha(64)

		if each != nil {
			each(&style)
		}

		styles[i] = style
	}

	return styles
}

func normalizeColourName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.Replace(name, `_`, ` `, -1)
	name = strings.Replace(name, `-`, ` `, -1)

	return name
}
