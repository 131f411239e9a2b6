package constants

import "strings"

// Source document categories assigned after extraction.
const (
	DocTypeRegistration = "registration"
	DocTypeInsurance    = "insurance"
	DocTypeInspection   = "inspection"
	DocTypeOwnership    = "ownership"
	DocTypeUnknown      = "unknown"
)

var DocTypes = []string{
	DocTypeRegistration,
	DocTypeInsurance,
	DocTypeInspection,
	DocTypeOwnership,
	DocTypeUnknown,
}

// Keyword → category, matched case-insensitively against the extracted
// "tipo_documento" free text. Order matters: first hit wins.
var docTypeKeywords = []struct {
	keyword string
	docType string
}{
	{"matrícula", DocTypeRegistration},
	{"matricula", DocTypeRegistration},
	{"registro", DocTypeRegistration},
	{"soat", DocTypeInsurance},
	{"seguro", DocTypeInsurance},
	{"revisión", DocTypeInspection},
	{"revision", DocTypeInspection},
	{"inspección", DocTypeInspection},
	{"inspeccion", DocTypeInspection},
	{"propiedad", DocTypeOwnership},
	{"tarjeta", DocTypeOwnership},
}

// ClassifyDocType maps the model's free-text document type to a stable
// category. Unrecognized or empty input yields DocTypeUnknown.
func ClassifyDocType(tipoDocumento string) string {
	s := strings.ToLower(strings.TrimSpace(tipoDocumento))
	if s == "" {
		return DocTypeUnknown
	}
	for _, kw := range docTypeKeywords {
		if strings.Contains(s, kw.keyword) {
			return kw.docType
		}
	}
	return DocTypeUnknown
}
