package disclosure

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/S-FND/esg-core-api/internal/application/reporting"
)

var _ reporting.DisclosureDigester = (*Digester)(nil)

// Digester calcula la huella de integridad del documento de divulgación:
// SHA-256 en hex sobre la forma canónica (C14N). Dos serializaciones
// equivalentes (indentación, orden de atributos) producen el mismo digest.
type Digester struct{}

// NewDigester crea el servicio.
func NewDigester() *Digester {
	return &Digester{}
}

// Digest valida que el documento sea XML bien formado con la raíz esperada y
// devuelve el SHA-256 hex de su forma canónica.
func (d *Digester) Digest(xmlDoc []byte) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(xmlDoc); err != nil {
		return "", fmt.Errorf("disclosure: XML mal formado: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "GHGDisclosure" {
		return "", fmt.Errorf("disclosure: raíz inesperada en el documento")
	}

	canonical, err := canonicalizeXML(xmlDoc)
	if err != nil {
		return "", fmt.Errorf("disclosure: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func canonicalizeXML(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}
