package ghg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-FND/esg-core-api/internal/domain/ghg"
)

// ──────────────────────────────────────────────────────────────────────────────
// Conversión de unidades: normalizar a unidad base y denormalizar a destino.
// result = value * factor(from) / factor(to)
// ──────────────────────────────────────────────────────────────────────────────

func TestConvert_ValoresConocidos(t *testing.T) {
	cases := []struct {
		name     string
		value    float64
		from, to string
		want     float64
	}{
		{"toneladas a kilogramos", 2.5, "t", "kg", 2500},
		{"kilogramos a gramos", 1.2, "kg", "g", 1200},
		{"metros cúbicos a litros", 3, "m3", "L", 3000},
		{"galones a litros", 1, "gal", "L", 3.785411784},
		{"MWh a kWh", 0.5, "MWh", "kWh", 500},
		{"GJ a kWh", 1, "GJ", "kWh", 277.7777777777778},
		{"kilómetros a metros", 12, "km", "m", 12000},
		{"millas a kilómetros", 1, "mi", "km", 1.609344},
		{"kgCO2e a tCO2e", 6566, "kgCO2e", "tCO2e", 6.566},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ghg.Convert(tc.value, tc.from, tc.to)
			require.True(t, ok, "la conversión %s -> %s debe ser válida", tc.from, tc.to)
			assert.InEpsilon(t, tc.want, got, 1e-12)
		})
	}
}

func TestConvert_Identidad(t *testing.T) {
	// Para toda unidad registrada, convertir a sí misma devuelve el valor exacto.
	for _, cat := range []ghg.Category{
		ghg.CategoryMass, ghg.CategoryVolume, ghg.CategoryEnergy,
		ghg.CategoryDistance, ghg.CategoryEmissions,
	} {
		for _, u := range ghg.Units(cat) {
			got, ok := ghg.Convert(42.5, u, u)
			require.True(t, ok, "identidad de %s debe ser convertible", u)
			assert.Equal(t, 42.5, got, "convert(v, %s, %s) debe devolver v sin tocar", u, u)
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	// Ida y vuelta dentro de la misma categoría recupera el valor original
	// con tolerancia relativa 1e-9.
	values := []float64{0, 0.001, 1, 2450, 1e9}
	for _, cat := range []ghg.Category{
		ghg.CategoryMass, ghg.CategoryVolume, ghg.CategoryEnergy,
		ghg.CategoryDistance, ghg.CategoryEmissions,
	} {
		units := ghg.Units(cat)
		for _, u := range units {
			for _, v := range units {
				for _, value := range values {
					forward, ok := ghg.Convert(value, u, v)
					require.True(t, ok)
					back, ok := ghg.Convert(forward, v, u)
					require.True(t, ok)
					if value == 0 {
						assert.Equal(t, 0.0, back)
						continue
					}
					assert.InEpsilon(t, value, back, 1e-9,
						"round-trip %s -> %s -> %s debe recuperar el valor", u, v, u)
				}
			}
		}
	}
}

func TestConvert_CategoriasCruzadasRechazadas(t *testing.T) {
	// Masa vs energía jamás produce un número silenciosamente incorrecto.
	_, ok := ghg.Convert(1, "kg", "kWh")
	assert.False(t, ok, "kg -> kWh cruza categorías y debe rechazarse")

	_, ok = ghg.Convert(1, "L", "km")
	assert.False(t, ok, "L -> km cruza categorías y debe rechazarse")

	_, ok = ghg.Convert(1, "t", "tCO2e")
	assert.False(t, ok, "masa física y masa CO2e son categorías distintas")
}

func TestConvert_UnidadDesconocida(t *testing.T) {
	_, ok := ghg.Convert(1, "furlong", "m")
	assert.False(t, ok, "unidad desconocida es no-convertible, nunca NaN ni pánico")

	_, ok = ghg.Convert(1, "kg", "stone")
	assert.False(t, ok)
}

func TestAvailableConversions_OrdenEstableYSinLaPropia(t *testing.T) {
	got := ghg.AvailableConversions("kg")
	assert.Equal(t, []string{"g", "t", "lb"}, got,
		"las conversiones alcanzables excluyen la unidad misma y su orden es determinista")

	again := ghg.AvailableConversions("kg")
	assert.Equal(t, got, again, "dos llamadas devuelven exactamente el mismo orden")

	assert.Empty(t, ghg.AvailableConversions("furlong"),
		"unidad desconocida devuelve slice vacío")
}

func TestCategoryOf(t *testing.T) {
	cat, ok := ghg.CategoryOf("kWh")
	require.True(t, ok)
	assert.Equal(t, ghg.CategoryEnergy, cat)

	_, ok = ghg.CategoryOf("nope")
	assert.False(t, ok)
}
