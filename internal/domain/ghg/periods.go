package ghg

import (
	"fmt"
	"time"

	"github.com/S-FND/esg-core-api/internal/domain"
)

// Frecuencias de medición válidas para una fuente de emisión.
const (
	FrequencyDaily     = "Daily"
	FrequencyWeekly    = "Weekly"
	FrequencyMonthly   = "Monthly"
	FrequencyQuarterly = "Quarterly"
	FrequencyAnnually  = "Annually"
)

// monthNames etiquetas de período mensuales tal como las espera el importador
// y las plantillas ("January 2024").
var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ValidFrequency indica si la frecuencia es una de las soportadas.
func ValidFrequency(frequency string) bool {
	switch frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyAnnually:
		return true
	}
	return false
}

// ExpectedPeriods deriva las etiquetas de período esperadas para un año de
// reporte según la frecuencia de medición de la fuente. El conjunto resultante
// es el contrato del importador CSV: un archivo cuyo set de etiquetas no
// coincida exactamente se rechaza completo.
func ExpectedPeriods(frequency string, year int) ([]string, error) {
	switch frequency {
	case FrequencyDaily:
		return dailyPeriods(year), nil
	case FrequencyWeekly:
		out := make([]string, 0, 52)
		for w := 1; w <= 52; w++ {
			out = append(out, fmt.Sprintf("Week %d %d", w, year))
		}
		return out, nil
	case FrequencyMonthly:
		out := make([]string, 0, 12)
		for _, m := range monthNames {
			out = append(out, fmt.Sprintf("%s %d", m, year))
		}
		return out, nil
	case FrequencyQuarterly:
		return []string{
			fmt.Sprintf("Q1 %d", year),
			fmt.Sprintf("Q2 %d", year),
			fmt.Sprintf("Q3 %d", year),
			fmt.Sprintf("Q4 %d", year),
		}, nil
	case FrequencyAnnually:
		return []string{fmt.Sprintf("%d", year)}, nil
	}
	return nil, fmt.Errorf("frecuencia %q: %w", frequency, domain.ErrInvalidInput)
}

// ExpectedPeriodCount número de períodos esperados; denominador del porcentaje
// de completitud.
func ExpectedPeriodCount(frequency string, year int) int {
	periods, err := ExpectedPeriods(frequency, year)
	if err != nil {
		return 0
	}
	return len(periods)
}

func dailyPeriods(year int) []string {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	out := make([]string, 0, 366)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format("2006-01-02"))
	}
	return out
}
