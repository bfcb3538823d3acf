package collection

import (
	"context"

	"github.com/S-FND/esg-core-api/internal/domain/repository"
)

// TxRunner ejecuta el lote de captura dentro de una transacción: o se
// persisten todos los registros del lote o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(entryRepo repository.ActivityEntryRepository) error) error
}

// CacheInvalidator contrato de invalidación: toda transición de estado debe
// refrescar las vistas agregadas (totales del dashboard, barras de
// completitud) que dependen de ella. El caso de uso lo honra tras cada commit.
type CacheInvalidator interface {
	InvalidateDashboard(ctx context.Context, companyID string)
}
