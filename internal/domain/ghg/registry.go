package ghg

import "strings"

// TableVersion versión del set de factores de emisión embebido. Cambia solo
// cuando se regenera la tabla con cmd/seed_factors.
const TableVersion = "2024.1"

// EmissionFactor dato de referencia inmutable de un factor de emisión.
// Unit codifica numerador y denominador ("kgCO2e/L"); Factor siempre >= 0.
type EmissionFactor struct {
	ID          string
	Name        string
	Category    string
	Factor      float64
	Unit        string
	Source      string
	Year        string
	Region      string
	Gases       string
	Description string
}

// byScope particiona la tabla estática en los cuatro alcances del GHG Protocol.
// El orden dentro de cada slice es el orden de publicación y es estable.
var byScope = map[int][]EmissionFactor{
	1: scope1Factors,
	2: scope2Factors,
	3: scope3Factors,
	4: scope4Factors,
}

// ByScope devuelve los factores de un alcance en orden estable. Un alcance
// desconocido devuelve slice vacío (no error): la UI itera sin ramas extra.
func ByScope(scope int) []EmissionFactor {
	factors, ok := byScope[scope]
	if !ok {
		return []EmissionFactor{}
	}
	out := make([]EmissionFactor, len(factors))
	copy(out, factors)
	return out
}

// ByCategory filtra los factores de un alcance por categoría exacta.
func ByCategory(scope int, category string) []EmissionFactor {
	var out []EmissionFactor
	for _, f := range byScope[scope] {
		if f.Category == category {
			out = append(out, f)
		}
	}
	if out == nil {
		return []EmissionFactor{}
	}
	return out
}

// Search busca por substring case-insensitive sobre nombre, descripción y
// categoría dentro de un alcance.
func Search(scope int, term string) []EmissionFactor {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return ByScope(scope)
	}
	var out []EmissionFactor
	for _, f := range byScope[scope] {
		if strings.Contains(strings.ToLower(f.Name), needle) ||
			strings.Contains(strings.ToLower(f.Description), needle) ||
			strings.Contains(strings.ToLower(f.Category), needle) {
			out = append(out, f)
		}
	}
	if out == nil {
		return []EmissionFactor{}
	}
	return out
}

// ByID busca un factor en cualquier alcance. nil si no existe: la ausencia es
// un caso esperado en lookups interactivos, no una excepción.
func ByID(id string) *EmissionFactor {
	for scope := 1; scope <= 4; scope++ {
		for i := range byScope[scope] {
			if byScope[scope][i].ID == id {
				f := byScope[scope][i]
				return &f
			}
		}
	}
	return nil
}

// Categories devuelve las categorías distintas de un alcance, en orden de
// primera aparición.
func Categories(scope int) []string {
	seen := map[string]bool{}
	var out []string
	for _, f := range byScope[scope] {
		if !seen[f.Category] {
			seen[f.Category] = true
			out = append(out, f.Category)
		}
	}
	if out == nil {
		return []string{}
	}
	return out
}
