package repository

import (
	"context"
	"time"
)

// DraftRepository almacén clave-valor para borradores de captura (el colector
// guarda antes de enviar). La clave es compuesta:
// "scope1_data_collections_<templateId>_<month>_<year>".
//
// Es un puerto explícito para que el medio (Redis, disco, API remota) sea
// intercambiable sin tocar a los llamadores.
type DraftRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
