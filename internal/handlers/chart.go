package handlers

import (
	"bytes"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/dashboard"
)

func renderStatusChart(counts []dashboard.StatusCount) ([]byte, error) {
	bars := make([]chart.Value, 0, len(counts))
	maxVal := 0
	for _, sc := range counts {
		if sc.Count > maxVal {
			maxVal = sc.Count
		}
		bars = append(bars, chart.Value{Value: float64(sc.Count), Label: string(sc.Status)})
	}
	// an all-zero range fails to render
	yMax := float64(maxVal)
	if yMax <= 0 {
		yMax = 1
	}

	graph := chart.BarChart{
		Title:    "Properties by status",
		Width:    800,
		Height:   400,
		BarWidth: 60,
		Background: chart.Style{Padding: chart.Box{
			Top:    50,
			Left:   16,
			Right:  16,
			Bottom: 0,
		}},
		YAxis: chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: yMax}},
		Bars:  bars,
	}

	buf := bytes.NewBuffer(nil)
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
