package collection

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/domain"
	"github.com/S-FND/esg-core-api/internal/domain/ghg"
)

// Columnas de la plantilla de captura.
var templateHeader = []string{"Periodo", "Valor Actividad", "Unidad", "Notas"}

// BuildTemplate genera la plantilla CSV de captura para una frecuencia y año:
// una fila por período esperado con la unidad de la fuente prellenada.
func BuildTemplate(frequency string, year int, activityUnit string) ([]byte, error) {
	periods, err := ghg.ExpectedPeriods(frequency, year)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(templateHeader); err != nil {
		return nil, err
	}
	for _, p := range periods {
		if err := w.Write([]string{p, "", activityUnit, ""}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseImport lee un CSV de captura y lo valida completo antes de aceptar
// cualquier fila:
//   - el set de etiquetas de período debe coincidir EXACTAMENTE con el
//     esperado para la frecuencia (un mismatch rechaza el archivo entero,
//     nunca un import parcial);
//   - los valores deben ser numéricos y >= 0.
func ParseImport(r io.Reader, frequency string, year int) ([]dto.EntryInput, error) {
	expected, err := ghg.ExpectedPeriods(frequency, year)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w: %v", domain.ErrInvalidInput, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("archivo vacío: %w", domain.ErrInvalidInput)
	}

	rows := records
	if isHeader(records[0]) {
		rows = records[1:]
	}

	entries := make([]dto.EntryInput, 0, len(rows))
	got := make([]string, 0, len(rows))
	for i, rec := range rows {
		if len(rec) < 2 {
			return nil, fmt.Errorf("fila %d incompleta: %w", i+1, domain.ErrInvalidInput)
		}
		period := strings.TrimSpace(rec[0])
		got = append(got, period)

		rawValue := strings.TrimSpace(rec[1])
		value := 0.0
		if rawValue != "" {
			value, err = strconv.ParseFloat(rawValue, 64)
			if err != nil {
				return nil, fmt.Errorf("fila %d: valor %q no numérico: %w", i+1, rawValue, domain.ErrInvalidInput)
			}
			if value < 0 {
				return nil, fmt.Errorf("fila %d: valor negativo: %w", i+1, domain.ErrInvalidInput)
			}
		}
		entry := dto.EntryInput{PeriodName: period, ActivityValue: value}
		if len(rec) > 2 {
			entry.ActivityUnit = strings.TrimSpace(rec[2])
		}
		if len(rec) > 3 {
			entry.Notes = strings.TrimSpace(rec[3])
		}
		entries = append(entries, entry)
	}

	if !sameSet(got, expected) {
		return nil, fmt.Errorf("las etiquetas de período no coinciden con el calendario %s de %d: %w",
			frequency, year, domain.ErrInvalidInput)
	}
	return entries, nil
}

// isHeader detecta la fila de encabezado de la plantilla.
func isHeader(rec []string) bool {
	return len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), templateHeader[0])
}

// sameSet igualdad de conjuntos (el orden de las filas no importa, los
// duplicados sí invalidan).
func sameSet(got, expected []string) bool {
	if len(got) != len(expected) {
		return false
	}
	a := append([]string(nil), got...)
	b := append([]string(nil), expected...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
