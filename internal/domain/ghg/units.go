// Package ghg contiene los servicios de dominio puros del núcleo de carbono:
// conversión de unidades, cálculo de emisiones, registro de factores de emisión,
// derivación de períodos y la máquina de estados de verificación.
//
// Todo el paquete opera sobre datos en memoria, sin I/O, para que sea trivial
// de testear y seguro de mover a otro goroutine.
package ghg

// Category agrupa unidades físicamente compatibles. Convertir entre categorías
// distintas nunca produce un número: es un error de validación, no un cero.
type Category string

const (
	CategoryMass      Category = "mass"
	CategoryVolume    Category = "volume"
	CategoryEnergy    Category = "energy"
	CategoryDistance  Category = "distance"
	CategoryEmissions Category = "emissions"
)

// unitDef define una unidad: su categoría y cuántas unidades base equivale una
// unidad de esta (kg para masa, L para volumen, kWh para energía, m para
// distancia, kgCO2e para emisiones).
type unitDef struct {
	category Category
	toBase   float64
}

// units tabla fija de unidades soportadas. El orden de presentación por
// categoría vive en unitOrder; este mapa solo resuelve factor y categoría.
var units = map[string]unitDef{
	// Masa (base: kg)
	"g":  {CategoryMass, 0.001},
	"kg": {CategoryMass, 1},
	"t":  {CategoryMass, 1000},
	"lb": {CategoryMass, 0.45359237},

	// Volumen (base: L)
	"mL":  {CategoryVolume, 0.001},
	"L":   {CategoryVolume, 1},
	"m3":  {CategoryVolume, 1000},
	"gal": {CategoryVolume, 3.785411784},

	// Energía (base: kWh)
	"Wh":  {CategoryEnergy, 0.001},
	"kWh": {CategoryEnergy, 1},
	"MWh": {CategoryEnergy, 1000},
	"GWh": {CategoryEnergy, 1e6},
	"MJ":  {CategoryEnergy, 0.2777777777777778},
	"GJ":  {CategoryEnergy, 277.7777777777778},

	// Distancia (base: m)
	"m":  {CategoryDistance, 1},
	"km": {CategoryDistance, 1000},
	"mi": {CategoryDistance, 1609.344},

	// Emisiones equivalentes (base: kgCO2e)
	"gCO2e":  {CategoryEmissions, 0.001},
	"kgCO2e": {CategoryEmissions, 1},
	"tCO2e":  {CategoryEmissions, 1000},
}

// unitOrder orden estable de presentación por categoría (menor a mayor).
var unitOrder = map[Category][]string{
	CategoryMass:      {"g", "kg", "t", "lb"},
	CategoryVolume:    {"mL", "L", "m3", "gal"},
	CategoryEnergy:    {"Wh", "kWh", "MWh", "GWh", "MJ", "GJ"},
	CategoryDistance:  {"m", "km", "mi"},
	CategoryEmissions: {"gCO2e", "kgCO2e", "tCO2e"},
}

// CategoryOf devuelve la categoría física de una unidad. ok=false si la unidad
// no está registrada.
func CategoryOf(unit string) (Category, bool) {
	def, ok := units[unit]
	if !ok {
		return "", false
	}
	return def.category, true
}

// Convertible indica si existe una conversión válida entre dos unidades
// (ambas registradas y de la misma categoría).
func Convertible(from, to string) bool {
	fromDef, okF := units[from]
	toDef, okT := units[to]
	return okF && okT && fromDef.category == toDef.category
}

// Convert convierte value de fromUnit a toUnit normalizando por la unidad base
// de la categoría: result = value * factor(from) / factor(to).
//
// ok=false cuando alguna unidad es desconocida o las categorías difieren;
// nunca devuelve NaN ni un número silenciosamente incorrecto. La identidad
// (from == to) devuelve el valor sin tocar. No se redondea aquí: el redondeo
// es asunto de la capa de presentación.
func Convert(value float64, fromUnit, toUnit string) (float64, bool) {
	fromDef, ok := units[fromUnit]
	if !ok {
		return 0, false
	}
	toDef, ok := units[toUnit]
	if !ok {
		return 0, false
	}
	if fromDef.category != toDef.category {
		return 0, false
	}
	if fromUnit == toUnit {
		return value, true
	}
	return value * fromDef.toBase / toDef.toBase, true
}

// AvailableConversions devuelve toda unidad alcanzable desde fromUnit dentro de
// su categoría, excluyéndose a sí misma, en orden estable. Unidad desconocida
// devuelve slice vacío.
func AvailableConversions(fromUnit string) []string {
	def, ok := units[fromUnit]
	if !ok {
		return []string{}
	}
	ordered := unitOrder[def.category]
	out := make([]string, 0, len(ordered)-1)
	for _, u := range ordered {
		if u == fromUnit {
			continue
		}
		out = append(out, u)
	}
	return out
}

// Units devuelve las unidades de una categoría en orden estable.
func Units(category Category) []string {
	ordered, ok := unitOrder[category]
	if !ok {
		return []string{}
	}
	out := make([]string, len(ordered))
	copy(out, ordered)
	return out
}
