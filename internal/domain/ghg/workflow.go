package ghg

import (
	"fmt"

	"github.com/S-FND/esg-core-api/internal/domain"
)

// Status estado de verificación de un registro de actividad.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusSubmitted Status = "Submitted"
	StatusVerified  Status = "Verified"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
)

// transitions define el ciclo de vida: Pending -> Submitted -> decisión del
// verificador. Rejected vuelve a Submitted al reenviarse; Verified/Approved
// cierran el período (la reapertura administrativa es una operación externa).
var transitions = map[Status][]Status{
	StatusPending:   {StatusSubmitted},
	StatusSubmitted: {StatusVerified, StatusApproved, StatusRejected},
	StatusRejected:  {StatusSubmitted},
	StatusVerified:  {},
	StatusApproved:  {},
}

// ValidStatus indica si s es un estado conocido.
func ValidStatus(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition indica si from -> to está permitido por el ciclo de vida.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateSubmit valida el envío de un registro: el estado actual debe admitir
// Submitted y el valor de actividad debe ser mayor que cero (un período vacío
// no se envía, queda Pending).
func ValidateSubmit(current Status, activityValue float64) error {
	if activityValue <= 0 {
		return fmt.Errorf("valor de actividad debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}
	if !CanTransition(current, StatusSubmitted) {
		return fmt.Errorf("envío desde estado %s: %w", current, domain.ErrInvalidTransition)
	}
	return nil
}

// ValidateDecision valida la decisión de un verificador sobre un registro
// enviado. Solo Verified, Approved o Rejected son decisiones; el orden del
// ciclo es estricto (nada se verifica sin haberse enviado).
func ValidateDecision(current, decision Status) error {
	switch decision {
	case StatusVerified, StatusApproved, StatusRejected:
	default:
		return fmt.Errorf("decisión %s: %w", decision, domain.ErrInvalidInput)
	}
	if !CanTransition(current, decision) {
		return fmt.Errorf("decisión %s desde estado %s: %w", decision, current, domain.ErrInvalidTransition)
	}
	return nil
}

// Closed indica si el registro quedó congelado para reporte: sus emisiones
// calculadas no se recalculan más.
func Closed(s Status) bool {
	return s == StatusVerified || s == StatusApproved
}

// CountsTowardCompletion indica si el estado cuenta en el numerador del
// porcentaje de completitud (todo lo que ya pasó por el colector).
func CountsTowardCompletion(s Status) bool {
	return s == StatusSubmitted || s == StatusVerified || s == StatusApproved
}

// Completion porcentaje de completitud de una fuente sobre un set de períodos:
// períodos con estado Submitted/Verified/Approved sobre el total esperado.
// Devuelve 0 si no hay períodos esperados.
func Completion(statuses []Status, expectedPeriods int) float64 {
	if expectedPeriods <= 0 {
		return 0
	}
	done := 0
	for _, s := range statuses {
		if CountsTowardCompletion(s) {
			done++
		}
	}
	return float64(done) / float64(expectedPeriods) * 100
}
