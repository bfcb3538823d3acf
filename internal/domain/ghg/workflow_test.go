package ghg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-FND/esg-core-api/internal/domain"
	"github.com/S-FND/esg-core-api/internal/domain/ghg"
)

func TestValidateSubmit_ValorCeroRechazado(t *testing.T) {
	err := ghg.ValidateSubmit(ghg.StatusPending, 0)
	require.Error(t, err, "un período sin valor no puede enviarse")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = ghg.ValidateSubmit(ghg.StatusPending, -5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidateSubmit_DesdePendingYRejected(t *testing.T) {
	assert.NoError(t, ghg.ValidateSubmit(ghg.StatusPending, 120.5))
	assert.NoError(t, ghg.ValidateSubmit(ghg.StatusRejected, 120.5),
		"un registro rechazado se corrige y vuelve a Submitted")
}

func TestValidateSubmit_EstadosCerrados(t *testing.T) {
	for _, s := range []ghg.Status{ghg.StatusVerified, ghg.StatusApproved, ghg.StatusSubmitted} {
		err := ghg.ValidateSubmit(s, 10)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition,
			"no se reenvía desde %s sin reapertura administrativa", s)
	}
}

func TestValidateDecision_OrdenEstricto(t *testing.T) {
	// Nada se verifica sin haberse enviado primero.
	err := ghg.ValidateDecision(ghg.StatusPending, ghg.StatusVerified)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	assert.NoError(t, ghg.ValidateDecision(ghg.StatusSubmitted, ghg.StatusVerified))
	assert.NoError(t, ghg.ValidateDecision(ghg.StatusSubmitted, ghg.StatusApproved))
	assert.NoError(t, ghg.ValidateDecision(ghg.StatusSubmitted, ghg.StatusRejected))
}

func TestValidateDecision_DecisionInvalida(t *testing.T) {
	err := ghg.ValidateDecision(ghg.StatusSubmitted, ghg.StatusPending)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "Pending no es una decisión de verificador")

	err = ghg.ValidateDecision(ghg.StatusSubmitted, ghg.Status("Archived"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClosed(t *testing.T) {
	assert.True(t, ghg.Closed(ghg.StatusVerified))
	assert.True(t, ghg.Closed(ghg.StatusApproved))
	assert.False(t, ghg.Closed(ghg.StatusSubmitted))
	assert.False(t, ghg.Closed(ghg.StatusRejected))
}

// TestCompletion_MensualCincoTresCuatro la fuente mensual del ejemplo: 12
// períodos esperados, 5 Submitted + 3 Verified + 4 Pending = 8/12 ≈ 66.7%.
func TestCompletion_MensualCincoTresCuatro(t *testing.T) {
	statuses := []ghg.Status{
		ghg.StatusSubmitted, ghg.StatusSubmitted, ghg.StatusSubmitted,
		ghg.StatusSubmitted, ghg.StatusSubmitted,
		ghg.StatusVerified, ghg.StatusVerified, ghg.StatusVerified,
		ghg.StatusPending, ghg.StatusPending, ghg.StatusPending, ghg.StatusPending,
	}
	got := ghg.Completion(statuses, 12)
	assert.InDelta(t, 66.666, got, 0.01, "(5+3)/12 como porcentaje")
}

func TestCompletion_Bordes(t *testing.T) {
	assert.Zero(t, ghg.Completion(nil, 12), "sin registros, 0%")
	assert.Zero(t, ghg.Completion([]ghg.Status{ghg.StatusSubmitted}, 0),
		"sin períodos esperados no hay denominador")
	assert.Equal(t, 100.0, ghg.Completion(
		[]ghg.Status{ghg.StatusApproved, ghg.StatusVerified}, 2))

	// Rejected no cuenta: el dato volvió al colector.
	assert.Zero(t, ghg.Completion([]ghg.Status{ghg.StatusRejected}, 4))
}
