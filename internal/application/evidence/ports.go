package evidence

import "context"

// URLSigner emite URLs firmadas de subida con vigencia limitada para que el
// cliente cargue los bytes directo contra el almacenamiento.
type URLSigner interface {
	SignUploadURL(storageKey string, contentType string) (string, error)
}

// Uploader sube los bytes de un lote al almacenamiento cuando la carga pasa
// por el servidor (import multiparte). La implementación limita la
// concurrencia; un archivo fallido no tumba al resto del lote.
type Uploader interface {
	Upload(ctx context.Context, storageKey string, contentType string, payload []byte) error
}
