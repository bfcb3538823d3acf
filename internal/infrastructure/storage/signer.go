package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/S-FND/esg-core-api/internal/application/evidence"
	"github.com/S-FND/esg-core-api/pkg/config"
)

var _ evidence.URLSigner = (*Signer)(nil)

// Signer emite URLs firmadas de subida contra el servicio de objetos. La firma
// es HMAC-SHA256 sobre (clave, content-type, vencimiento) con el secreto
// compartido del backend de almacenamiento, al estilo presigned URL.
type Signer struct {
	baseURL string
	secret  []byte
	expiry  time.Duration
	now     func() time.Time
}

// NewSigner construye el firmador desde la configuración de almacenamiento.
func NewSigner(cfg config.StorageConfig) *Signer {
	return &Signer{
		baseURL: cfg.BaseURL,
		secret:  []byte(cfg.SigningSecret),
		expiry:  time.Duration(cfg.URLExpiryMins) * time.Minute,
		now:     time.Now,
	}
}

// SignUploadURL devuelve la URL firmada para subir un objeto.
func (s *Signer) SignUploadURL(storageKey string, contentType string) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("storage: secreto de firma no configurado")
	}
	expires := s.now().Add(s.expiry).Unix()
	sig := s.sign(storageKey, contentType, expires)

	q := url.Values{}
	q.Set("expires", strconv.FormatInt(expires, 10))
	q.Set("content-type", contentType)
	q.Set("signature", sig)
	return fmt.Sprintf("%s/%s?%s", s.baseURL, storageKey, q.Encode()), nil
}

// Verify valida una firma recibida contra la clave y el vencimiento.
func (s *Signer) Verify(storageKey, contentType string, expires int64, signature string) bool {
	if s.now().Unix() > expires {
		return false
	}
	expected := s.sign(storageKey, contentType, expires)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (s *Signer) sign(storageKey, contentType string, expires int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s\n%s\n%d", storageKey, contentType, expires)
	return hex.EncodeToString(mac.Sum(nil))
}
