package ghg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-FND/esg-core-api/internal/domain/ghg"
)

// TestCalculate_FactorBlended valida el caso base del dataset: un factor ya
// expresado en CO2e atribuye todo a CO2 y deja CH4/N2O en cero.
// 2450 L de diésel × 2.68 kgCO2e/L = 6566 kgCO2e.
func TestCalculate_FactorBlended(t *testing.T) {
	got := ghg.Calculate(2450, 2.68, nil)

	assert.InDelta(t, 6566, got.CO2, 1e-9, "todo el resultado se atribuye a CO2")
	assert.Zero(t, got.CH4, "sin split, CH4 queda en cero")
	assert.Zero(t, got.N2O, "sin split, N2O queda en cero")
	assert.InDelta(t, 6566, got.Total, 1e-9, "total = co2 para factores blended")
}

func TestCalculate_ConSplitPorGas(t *testing.T) {
	split := &ghg.GasSplit{CO2: 0.9, CH4: 0.07, N2O: 0.03}
	got := ghg.Calculate(100, 2, split)

	assert.InDelta(t, 180, got.CO2, 1e-9)
	assert.InDelta(t, 14, got.CH4, 1e-9)
	assert.InDelta(t, 6, got.N2O, 1e-9)
	assert.InDelta(t, got.CO2+got.CH4+got.N2O, got.Total, 1e-9,
		"con split el total es la suma de los componentes por gas")
}

func TestCalculate_ActividadCero(t *testing.T) {
	got := ghg.Calculate(0, 2.68, nil)
	assert.Zero(t, got.Total, "actividad cero emite cero")
}

func TestEmissions_AddYToTonnes(t *testing.T) {
	a := ghg.Calculate(1000, 2.68, nil)
	b := ghg.Calculate(500, 2.68, nil)

	sum := a.Add(b)
	assert.InDelta(t, 4020, sum.Total, 1e-9, "la agregación es una reducción aditiva")

	tonnes := sum.ToTonnes()
	assert.InDelta(t, 4.02, tonnes.Total, 1e-9, "kg / 1000 = tCO2e")
}

func TestSumTotals_PeriodosAusentesAportanCero(t *testing.T) {
	// Un slice con menos períodos que los esperados simplemente suma menos:
	// la ausencia contribuye cero, no "desconocido".
	items := []ghg.Emissions{
		ghg.Calculate(100, 2, nil),
		ghg.Calculate(50, 2, nil),
	}
	assert.InDelta(t, 300, ghg.SumTotals(items), 1e-9)
	assert.Zero(t, ghg.SumTotals(nil))
}

// ── Unidad del denominador del factor ─────────────────────────────────────────

func TestDenominatorUnit(t *testing.T) {
	assert.Equal(t, "L", ghg.DenominatorUnit("kgCO2e/L"))
	assert.Equal(t, "kWh", ghg.DenominatorUnit("kgCO2e/kWh"))
	assert.Equal(t, "", ghg.DenominatorUnit("kgCO2e"), "factor sin denominador explícito")
	assert.Equal(t, "", ghg.DenominatorUnit("kgCO2e/"))
}

func TestNormalizeActivity(t *testing.T) {
	// La actividad llega en m3 y el factor espera L: se convierte, no se coerce.
	got, ok := ghg.NormalizeActivity(2.45, "m3", "kgCO2e/L")
	require.True(t, ok)
	assert.InDelta(t, 2450, got, 1e-9)

	// Misma unidad: identidad.
	got, ok = ghg.NormalizeActivity(300, "kWh", "kgCO2e/kWh")
	require.True(t, ok)
	assert.Equal(t, 300.0, got)

	// Unidad incompatible con el denominador: error de validación del dato.
	_, ok = ghg.NormalizeActivity(10, "kg", "kgCO2e/kWh")
	assert.False(t, ok, "masa contra energía debe rechazarse en la captura")
}
