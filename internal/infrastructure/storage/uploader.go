package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/S-FND/esg-core-api/internal/application/evidence"
)

var _ evidence.Uploader = (*HTTPUploader)(nil)

// HTTPUploader sube objetos al servicio de almacenamiento vía PUT firmado.
type HTTPUploader struct {
	signer *Signer
	client *http.Client
}

// NewHTTPUploader construye el uploader con un timeout propio por objeto.
func NewHTTPUploader(signer *Signer) *HTTPUploader {
	return &HTTPUploader{
		signer: signer,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Upload sube los bytes de un objeto contra su URL firmada.
func (u *HTTPUploader) Upload(ctx context.Context, storageKey string, contentType string, payload []byte) error {
	signedURL, err := u.signer.SignUploadURL(storageKey, contentType)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, signedURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("storage: crear request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := u.client.Do(req)
	if err != nil {
		return fmt.Errorf("storage: subir %s: %w", storageKey, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("storage: subir %s: status %d: %s", storageKey, resp.StatusCode, body)
	}
	return nil
}
