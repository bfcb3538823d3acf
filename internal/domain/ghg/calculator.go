package ghg

import "strings"

// Emissions resultado de un cálculo, en la masa del numerador del factor
// (kgCO2e para los factores del registro). Total siempre es la suma de gases.
type Emissions struct {
	CO2   float64
	CH4   float64
	N2O   float64
	Total float64
}

// GasSplit fracciones del factor atribuibles a cada gas. Debe sumar 1 para
// factores que publican desglose; los factores "blended" no traen split.
type GasSplit struct {
	CO2 float64
	CH4 float64
	N2O float64
}

// Calculate multiplica valor de actividad por factor de emisión.
//
// Sin split (el caso habitual: factor blended ya expresado en CO2e) todo el
// resultado se atribuye a CO2 y CH4/N2O quedan en cero; no se intenta una
// descomposición por GWP que el factor no trae. Con split, cada gas es
// activity*factor*fracción y Total la suma.
func Calculate(activityValue, emissionFactor float64, split *GasSplit) Emissions {
	if split == nil {
		co2 := activityValue * emissionFactor
		return Emissions{CO2: co2, Total: co2}
	}
	base := activityValue * emissionFactor
	e := Emissions{
		CO2: base * split.CO2,
		CH4: base * split.CH4,
		N2O: base * split.N2O,
	}
	e.Total = e.CO2 + e.CH4 + e.N2O
	return e
}

// Add acumula otro resultado sobre e (reducción aditiva).
func (e Emissions) Add(other Emissions) Emissions {
	return Emissions{
		CO2:   e.CO2 + other.CO2,
		CH4:   e.CH4 + other.CH4,
		N2O:   e.N2O + other.N2O,
		Total: e.Total + other.Total,
	}
}

// ToTonnes reexpresa el resultado en toneladas de CO2e (kg / 1000).
func (e Emissions) ToTonnes() Emissions {
	return Emissions{
		CO2:   e.CO2 / 1000,
		CH4:   e.CH4 / 1000,
		N2O:   e.N2O / 1000,
		Total: e.Total / 1000,
	}
}

// KgToTonnes reexpresa un total agregado (kgCO2e) en toneladas.
func KgToTonnes(kg float64) float64 {
	return kg / 1000
}

// DenominatorUnit extrae la unidad de actividad del denominador de un factor
// ("kgCO2e/L" -> "L"). Cadena vacía si el factor no codifica denominador.
func DenominatorUnit(factorUnit string) string {
	idx := strings.LastIndex(factorUnit, "/")
	if idx < 0 || idx == len(factorUnit)-1 {
		return ""
	}
	return factorUnit[idx+1:]
}

// NormalizeActivity lleva un valor de actividad a la unidad que espera el
// denominador del factor. ok=false si la unidad reportada no es convertible a
// la esperada: eso es un error de validación del dato, nunca una coerción.
func NormalizeActivity(value float64, activityUnit, factorUnit string) (float64, bool) {
	expected := DenominatorUnit(factorUnit)
	if expected == "" {
		return 0, false
	}
	if activityUnit == expected {
		return value, true
	}
	return Convert(value, activityUnit, expected)
}

// SumTotals reducción aditiva simple sobre Total; los períodos ausentes del
// slice simplemente no aportan (contribución cero, no "desconocido").
func SumTotals(items []Emissions) float64 {
	var total float64
	for _, it := range items {
		total += it.Total
	}
	return total
}
