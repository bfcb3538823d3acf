// seed_factors genera un script SQL para poblar la tabla de referencia de
// factores de emisión a partir del CSV oficial de la autoridad ambiental.
// El registro que usa el motor de cálculo vive compilado en el binario; la
// tabla de referencia existe para auditoría y reportes BI.
//
// Uso: go run ./cmd/seed_factors [ruta/factores.csv]
// Por defecto busca factores.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_factors.sql
//
// Formato esperado del CSV (con encabezado, codificación ISO-8859-1 o UTF-8):
//
//	id;nombre;categoria;alcance;factor;unidad;fuente;anio;gases
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type factorRow struct {
	id       string
	name     string
	category string
	scope    int
	factor   float64
	unit     string
	source   string
	year     string
	gases    string
}

func main() {
	csvPath := "factores.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los CSV oficiales suelen venir en ISO-8859-1; el decoder deja pasar
	// el UTF-8 válido sin cambios en los rangos ASCII.
	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "CSV sin filas de datos")
		os.Exit(1)
	}

	var rows []factorRow
	for i, rec := range records[1:] {
		if len(rec) < 9 {
			fmt.Fprintf(os.Stderr, "Fila %d: se esperan 9 columnas, hay %d\n", i+2, len(rec))
			os.Exit(1)
		}
		scope, err := strconv.Atoi(strings.TrimSpace(rec[3]))
		if err != nil || scope < 1 || scope > 4 {
			fmt.Fprintf(os.Stderr, "Fila %d: alcance inválido %q\n", i+2, rec[3])
			os.Exit(1)
		}
		factor, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(rec[4]), ",", ".", 1), 64)
		if err != nil || factor < 0 {
			fmt.Fprintf(os.Stderr, "Fila %d: factor inválido %q\n", i+2, rec[4])
			os.Exit(1)
		}
		rows = append(rows, factorRow{
			id:       strings.TrimSpace(rec[0]),
			name:     strings.TrimSpace(rec[1]),
			category: strings.TrimSpace(rec[2]),
			scope:    scope,
			factor:   factor,
			unit:     strings.TrimSpace(rec[5]),
			source:   strings.TrimSpace(rec[6]),
			year:     strings.TrimSpace(rec[7]),
			gases:    strings.TrimSpace(rec[8]),
		})
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_factors.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Factores de emisión de referencia (auditoría / BI)\n")
	out.WriteString("-- Generado desde el CSV oficial con cmd/seed_factors\n\n")
	out.WriteString("INSERT INTO emission_factors_reference (id, name, category, scope, factor, unit, source, year, gases) VALUES\n")
	for i, r := range rows {
		sep := ","
		if i == len(rows)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s', '%s', %d, %g, '%s', '%s', '%s', '%s')%s\n",
			escapeSQL(r.id), escapeSQL(r.name), escapeSQL(r.category), r.scope,
			r.factor, escapeSQL(r.unit), escapeSQL(r.source), escapeSQL(r.year),
			escapeSQL(r.gases), sep)
	}
	out.WriteString("ON CONFLICT (id) DO UPDATE SET\n")
	out.WriteString("  name = EXCLUDED.name, category = EXCLUDED.category, scope = EXCLUDED.scope,\n")
	out.WriteString("  factor = EXCLUDED.factor, unit = EXCLUDED.unit, source = EXCLUDED.source,\n")
	out.WriteString("  year = EXCLUDED.year, gases = EXCLUDED.gases;\n")

	fmt.Printf("Generado %s: %d factores\n", outPath, len(rows))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
