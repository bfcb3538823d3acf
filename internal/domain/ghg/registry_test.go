package ghg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-FND/esg-core-api/internal/domain/ghg"
)

func TestByScope_DeterministaYNoVacio(t *testing.T) {
	for scope := 1; scope <= 4; scope++ {
		first := ghg.ByScope(scope)
		second := ghg.ByScope(scope)
		require.NotEmpty(t, first, "el alcance %d debe tener factores publicados", scope)
		assert.Equal(t, first, second,
			"dos lecturas de la misma versión de tabla devuelven el mismo set ordenado")
	}
}

func TestByScope_AlcanceDesconocidoDevuelveVacio(t *testing.T) {
	assert.Empty(t, ghg.ByScope(0), "alcance desconocido devuelve slice vacío, no error")
	assert.Empty(t, ghg.ByScope(5))
	assert.NotNil(t, ghg.ByScope(99), "nunca nil: la UI itera sin ramas extra")
}

func TestByID_Diesel(t *testing.T) {
	f := ghg.ByID("ef-s1-diesel")
	require.NotNil(t, f, "el factor de diésel del alcance 1 debe existir")
	assert.Equal(t, 2.68, f.Factor)
	assert.Equal(t, "kgCO2e/L", f.Unit)
	assert.Equal(t, "Combustión móvil", f.Category)
}

func TestByID_NoEncontradoEsNil(t *testing.T) {
	assert.Nil(t, ghg.ByID("ef-no-existe"),
		"la ausencia es un caso esperado en lookups interactivos: nil, no pánico")
}

func TestSearch_CaseInsensitive(t *testing.T) {
	upper := ghg.Search(3, "STEEL")
	lower := ghg.Search(3, "steel")
	assert.Equal(t, lower, upper, "la búsqueda no distingue mayúsculas")
	require.NotEmpty(t, lower, "el término debe matchear la descripción del acero")
	assert.Equal(t, "ef-s3-acero", lower[0].ID)
}

func TestSearch_SobreNombreDescripcionYCategoria(t *testing.T) {
	porNombre := ghg.Search(1, "diésel")
	require.NotEmpty(t, porNombre)

	porCategoria := ghg.Search(1, "fugitivas")
	require.NotEmpty(t, porCategoria)
	for _, f := range porCategoria {
		assert.Equal(t, "Emisiones fugitivas", f.Category)
	}

	assert.Empty(t, ghg.Search(1, "zzz-no-match"))
}

func TestSearch_TerminoVacioDevuelveTodoElAlcance(t *testing.T) {
	assert.Equal(t, ghg.ByScope(2), ghg.Search(2, "  "))
}

func TestByCategory(t *testing.T) {
	got := ghg.ByCategory(3, "Viajes de negocio")
	require.Len(t, got, 2)
	for _, f := range got {
		assert.Equal(t, "Viajes de negocio", f.Category)
	}
	assert.Empty(t, ghg.ByCategory(3, "No existe"))
}

// TestInvariantes_TablaEstatica valida los invariantes del dato de referencia:
// factores no negativos, IDs únicos entre alcances y unidad con denominador.
func TestInvariantes_TablaEstatica(t *testing.T) {
	seen := map[string]int{}
	for scope := 1; scope <= 4; scope++ {
		for _, f := range ghg.ByScope(scope) {
			assert.GreaterOrEqual(t, f.Factor, 0.0, "factor %s no puede ser negativo", f.ID)
			if prev, dup := seen[f.ID]; dup {
				t.Errorf("ID %s duplicado entre alcances %d y %d", f.ID, prev, scope)
			}
			seen[f.ID] = scope
			assert.NotEmpty(t, ghg.DenominatorUnit(f.Unit),
				"la unidad de %s debe codificar numerador y denominador", f.ID)
		}
	}
}

func TestCategories(t *testing.T) {
	got := ghg.Categories(1)
	assert.Equal(t, []string{"Combustión móvil", "Combustión estacionaria", "Emisiones fugitivas"}, got,
		"las categorías salen en orden de primera aparición")
	assert.Empty(t, ghg.Categories(7))
}
