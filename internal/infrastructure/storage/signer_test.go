package storage

import (
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-FND/esg-core-api/pkg/config"
)

func testSigner(now time.Time) *Signer {
	s := NewSigner(config.StorageConfig{
		BaseURL:       "https://storage.example.com/evidence",
		SigningSecret: "super-secreto",
		URLExpiryMins: 15,
	})
	s.now = func() time.Time { return now }
	return s
}

func TestSignUploadURL_FirmaVerificable(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	s := testSigner(now)

	signed, err := s.SignUploadURL("company-1/entry-1/file.pdf", "application/pdf")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(signed, "https://storage.example.com/evidence/company-1/entry-1/file.pdf?"))

	u, err := url.Parse(signed)
	require.NoError(t, err)
	expires, err := strconv.ParseInt(u.Query().Get("expires"), 10, 64)
	require.NoError(t, err)
	assert.Equal(t, now.Add(15*time.Minute).Unix(), expires)

	sig := u.Query().Get("signature")
	assert.True(t, s.Verify("company-1/entry-1/file.pdf", "application/pdf", expires, sig))
	assert.False(t, s.Verify("company-1/entry-1/otro.pdf", "application/pdf", expires, sig),
		"la firma está atada a la clave del objeto")
}

func TestVerify_URLVencidaFalla(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	s := testSigner(now)

	signed, err := s.SignUploadURL("k", "text/plain")
	require.NoError(t, err)
	u, _ := url.Parse(signed)
	expires, _ := strconv.ParseInt(u.Query().Get("expires"), 10, 64)
	sig := u.Query().Get("signature")

	s.now = func() time.Time { return now.Add(16 * time.Minute) }
	assert.False(t, s.Verify("k", "text/plain", expires, sig))
}

func TestSignUploadURL_SinSecreto(t *testing.T) {
	s := NewSigner(config.StorageConfig{BaseURL: "https://x", URLExpiryMins: 15})
	_, err := s.SignUploadURL("k", "text/plain")
	assert.Error(t, err)
}
