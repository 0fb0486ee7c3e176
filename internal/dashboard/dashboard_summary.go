package dashboard

import "go-reestr/internal/company"

type Summary struct {
	Total      int         `json:"total"`
	InReestr   int         `json:"in_reestr"`
	OutReestr  int         `json:"out_reestr"`
	Share      float64     `json:"share"`
	Pie        []Slice     `json:"pie"`
	PiePercent []Slice     `json:"pie_percent"`
	Radial     []Slice     `json:"radial"`
	Trend      TrendSeries `json:"trend"`
}

func Summarize(companies []company.Company) Summary {
	var in int
	for _, c := range companies {
		if c.Reestr {
			in++
		}
	}
	total := len(companies)
	out := total - in

	pie := []Slice{
		{Name: "В реестре", Value: float64(in), Color: ColorInReestr},
		{Name: "Вне реестра", Value: float64(out), Color: ColorOutReestr},
	}

	return Summary{
		Total:      total,
		InReestr:   in,
		OutReestr:  out,
		Share:      Percent(float64(in), float64(total)),
		Pie:        pie,
		PiePercent: Normalize(pie),
		Radial:     Radial(float64(in), float64(total)),
		Trend:      SampleTrend(),
	}
}
