package niceplots

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// MissingBin labels values that cannot be classified: NaN or negative.
const MissingBin = `missing`

// BinBreaks are the lower bounds of the five choropleth bins. Each bin is
// half-open [low, high); the final bin extends to infinity.
var BinBreaks = []float64{0, 5, 10, 15, 20}

var BinLabels = []string{`<5`, `5-10`, `10-15`, `15-20`, `20+`}

// binFills is the sequential fill ramp used for choropleth maps, one entry
// per bin label plus the neutral missing fill.
var binFills = map[string]string{
	`<5`:       Colours[`pale teal`],
	`5-10`:     Colours[`light teal`],
	`10-15`:    Colours[`teal`],
	`15-20`:    Colours[`dark teal`],
	`20+`:      Colours[`deep teal`],
	MissingBin: MissingFill,
}

// Bin assigns a value to one of the five ordinal bins. NaN and negative
// values always fall into the missing bin; this is checked before any
// interval comparison.
func Bin(value float64) string {
	if math.IsNaN(value) || value < 0 {
		return MissingBin
	}

	for i := 1; i < len(BinBreaks); i++ {
		if value < BinBreaks[i] {
			return BinLabels[i-1]
		}
	}

	return BinLabels[len(BinLabels)-1]
}

// BinSeries bins each value in a series.
func BinSeries(values []float64) []string {
	labels := make([]string, len(values))

	for i, value := range values {
		labels[i] = Bin(value)
	}

	return labels
}

// BinFill returns the choropleth fill colour for a bin label.
func BinFill(label string) (string, error) {
	if fill, ok := binFills[label]; ok {
		return fill, nil
	}

	return ``, fmt.Errorf("%w: unrecognized bin %q", ErrInvalidConfiguration, label)
}

// QuantileBreaks computes k-quantile breakpoints from observed data, for
// callers that want a data-driven legend instead of the fixed bins. NaN
// values are dropped. The result has k+1 strictly increasing entries
// spanning [min, max].
func QuantileBreaks(values []float64, k int) ([]float64, error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: need at least 2 quantiles, got %d", ErrInvalidConfiguration, k)
	}

	observed := make(stats.Float64Data, 0, len(values))

	for _, value := range values {
		if !math.IsNaN(value) {
			observed = append(observed, value)
		}
	}

	if len(observed) < k {
		return nil, fmt.Errorf("%w: %d values cannot fill %d quantiles", ErrInvalidConfiguration, len(observed), k)
	}

	breaks := make([]float64, 0, k+1)

	if v, err := stats.Min(observed); err == nil {
		breaks = append(breaks, v)
	} else {
		return nil, err
	}

	for i := 1; i < k; i++ {
		percent := 100 * float64(i) / float64(k)

		if v, err := stats.Percentile(observed, percent); err == nil {
			breaks = append(breaks, v)
		} else {
			return nil, err
		}
	}

	if v, err := stats.Max(observed); err == nil {
		breaks = append(breaks, v)
	} else {
		return nil, err
	}

	// collapse ties so the boundary sequence stays strictly increasing
	deduped := make([]float64, 1, len(breaks))
	deduped[0] = breaks[0]

	for _, v := range breaks[1:] {
		if v > deduped[len(deduped)-1] {
			deduped = append(deduped, v)
		}
	}

	if !sort.Float64sAreSorted(deduped) || len(deduped) < 2 {
		return nil, fmt.Errorf("%w: degenerate data, no usable breakpoints", ErrInvalidConfiguration)
	}

	return deduped, nil
}
