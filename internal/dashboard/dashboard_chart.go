package dashboard

const (
	ColorInReestr  = "#28a745"
	ColorOutReestr = "#dc3545"
	ColorRadialBg  = "#e9ecef"
)

// Slice is one labelled value of a pie, donut or radial chart
type Slice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

func Total(slices []Slice) float64 {
	var total float64
	for _, s := range slices {
		total += s.Value
	}
	return total
}

// Normalize returns a copy of slices with each value replaced by its percent
// of the total. A zero total yields all zeros.
func Normalize(slices []Slice) []Slice {
	out := make([]Slice, len(slices))
	copy(out, slices)

	total := Total(slices)
	for i := range out {
		if total == 0 {
			out[i].Value = 0
			continue
		}
		out[i].Value = out[i].Value / total * 100
	}
	return out
}

// Percent is value as a percent of total, 0 when total is 0
func Percent(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total * 100
}

// Radial builds the two-ring radial dataset: a full background ring and the
// filled share.
func Radial(value, total float64) []Slice {
	return []Slice{
		{Name: "Фон", Value: 100, Color: ColorRadialBg},
		{Name: "Заполнено", Value: Percent(value, total), Color: ColorInReestr},
	}
}

type TrendSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// SampleTrend is the fixed monthly series shown by the area chart
func SampleTrend() TrendSeries {
	return TrendSeries{
		Labels: []string{"Янв", "Фев", "Мар", "Апр", "Май", "Июн", "Июл", "Авг", "Сен", "Окт", "Ноя", "Дек"},
		Values: []float64{12, 19, 15, 25, 22, 30, 28, 35, 32, 40, 38, 45},
	}
}
