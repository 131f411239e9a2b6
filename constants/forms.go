package constants

// FormType identifies one of the supported generated documents.
type FormType string

const (
	FormContratoMandato     FormType = "contrato_mandato"
	FormContratoCompraventa FormType = "contrato_compraventa"
	FormFormularioTramite   FormType = "formulario_tramite"
)

var FormTypes = []string{
	string(FormContratoMandato),
	string(FormContratoCompraventa),
	string(FormFormularioTramite),
}

func IsFormType(s string) bool {
	for _, f := range FormTypes {
		if f == s {
			return true
		}
	}
	return false
}

// Identity document types accepted on Person rows.
var PersonDocTypes = []string{"CC", "CE", "NIT", "PAS"}
