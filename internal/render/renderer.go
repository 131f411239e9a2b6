package render

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/dfmora/car2data/constants"
	"github.com/dfmora/car2data/internal/merge"
)

// Renderer produces the self-filled PDFs. Layouts flow top to bottom;
// the trámite form is stamped onto the official template when one is
// installed and falls back to a flowing layout when not.
type Renderer struct {
	templatesDir string
	logger       *slog.Logger
}

func NewRenderer(templatesDir string, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{templatesDir: templatesDir, logger: logger}
}

// Render writes the requested form to outPath. It reports success and
// never panics; on failure the output file is not usable and the caller
// must not register it.
func (r *Renderer) Render(formType string, fields merge.FieldMap, outPath string) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("render.panic", "form_type", formType, "panic", rec)
			ok = false
		}
	}()

	var err error
	switch formType {
	case string(constants.FormContratoMandato):
		err = r.renderMandato(fields, outPath)
	case string(constants.FormContratoCompraventa):
		err = r.renderCompraventa(fields, outPath)
	case string(constants.FormFormularioTramite):
		err = r.renderTramite(fields, outPath)
	default:
		r.logger.Error("render.unknown_form_type", "form_type", formType)
		return false
	}
	if err != nil {
		r.logger.Error("render.failed", "form_type", formType, "path", outPath, "error", err)
		return false
	}

	r.logger.Info("render.ok", "form_type", formType, "path", outPath)
	return true
}

func (r *Renderer) renderMandato(fields merge.FieldMap, outPath string) error {
	pdf, tr := newLetterDoc()
	title(pdf, tr, "CONTRATO DE MANDATO VEHICULAR")

	section(pdf, tr, "DATOS DEL MANDANTE", personRows(fields, "mandante"))
	section(pdf, tr, "DATOS DEL MANDATARIO", personRows(fields, "mandatario"))
	section(pdf, tr, "DATOS DEL VEHÍCULO", vehicleRows(fields, false))

	clauses(pdf, tr, []string{
		"PRIMERA: El MANDANTE confiere poder especial al MANDATARIO para realizar ante los organismos de tránsito todos los trámites relacionados con el vehículo descrito.",
		"SEGUNDA: El presente mandato incluye específicamente: Registro, matrícula, cambio de propietario, traspasos, y demás trámites ante autoridades de tránsito.",
		"TERCERA: El MANDATARIO se obliga a realizar las gestiones con la debida diligencia y cuidado.",
		"CUARTA: Este contrato se regirá por las leyes colombianas vigentes.",
	})

	signatures(pdf, tr, fields, "MANDANTE", "mandante", "MANDATARIO", "mandatario")
	dateLine(pdf, tr, "Fecha: "+value(fields, "fecha_tramite"))

	return pdf.OutputFileAndClose(outPath)
}

func (r *Renderer) renderCompraventa(fields merge.FieldMap, outPath string) error {
	pdf, tr := newLetterDoc()
	title(pdf, tr, "CONTRATO DE COMPRAVENTA VEHICULAR")

	section(pdf, tr, "DATOS DEL VENDEDOR", personRows(fields, "vendedor"))
	section(pdf, tr, "DATOS DEL COMPRADOR", personRows(fields, "comprador"))
	section(pdf, tr, "DATOS DEL VEHÍCULO", vehicleRows(fields, true))
	section(pdf, tr, "VALOR DE LA VENTA", valorRows(fields))

	clauses(pdf, tr, []string{
		"PRIMERA: El VENDEDOR declara ser propietario del vehículo descrito y lo vende al COMPRADOR.",
		"SEGUNDA: El COMPRADOR acepta la compra del vehículo en las condiciones descritas.",
		"TERCERA: El precio de venta es el establecido y será pagado en la forma acordada.",
		"CUARTA: El vehículo se entrega en el estado en que se encuentra.",
		"QUINTA: Los gastos de traspaso corren por cuenta del COMPRADOR.",
	})

	signatures(pdf, tr, fields, "VENDEDOR", "vendedor", "COMPRADOR", "comprador")
	dateLine(pdf, tr, "Fecha: "+value(fields, "fecha_tramite"))

	return pdf.OutputFileAndClose(outPath)
}

func (r *Renderer) renderTramite(fields merge.FieldMap, outPath string) error {
	templatePath := filepath.Join(r.templatesDir, tramiteTemplateFile)
	if _, err := os.Stat(templatePath); err == nil {
		err = r.renderTramiteOverlay(templatePath, fields, outPath)
		if err == nil {
			return nil
		}
		r.logger.Warn("overlay failed, using flowing layout", "error", err)
	} else {
		r.logger.Debug("official template not installed, using flowing layout", "path", templatePath)
	}

	pdf, tr := newLetterDoc()
	title(pdf, tr, "FORMULARIO DE TRÁMITE VEHICULAR")

	section(pdf, tr, "INFORMACIÓN DEL VEHÍCULO", vehicleRows(fields, true))
	section(pdf, tr, "INFORMACIÓN DEL PROPIETARIO", []row{
		{"Nombre:", value(fields, "propietario.nombre")},
		{"Identificación:", value(fields, "propietario.documento")},
	})
	section(pdf, tr, "DETALLES DE REGISTRO", registroRows(fields))

	dateLine(pdf, tr, "Fecha de diligenciamiento: "+value(fields, "fecha_tramite"))
	pdf.Ln(40)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 14, "____________________________", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 14, tr("Firma del solicitante"), "", 1, "L", false, 0, "")

	return pdf.OutputFileAndClose(outPath)
}

func newLetterDoc() (*fpdf.Fpdf, func(string) string) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(72, 72, 72)
	pdf.SetAutoPageBreak(true, 72)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	return pdf, tr
}

func title(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(14, 36, 85)
	pdf.CellFormat(0, 20, tr(text), "", 1, "C", false, 0, "")
	pdf.Ln(20)
}

func section(pdf *fpdf.Fpdf, tr func(string) string, heading string, rows []row) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(18, 195, 214)
	pdf.CellFormat(0, 16, tr(heading), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(0, 0, 0)
	for _, rw := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(144, 16, tr(rw.label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 16, tr(rw.value), "", 1, "L", false, 0, "")
	}
	pdf.Ln(16)
}

func clauses(pdf *fpdf.Fpdf, tr func(string) string, texts []string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(18, 195, 214)
	pdf.CellFormat(0, 16, tr("CLÁUSULAS"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	for _, text := range texts {
		pdf.MultiCell(0, 14, tr(text), "", "L", false)
		pdf.Ln(8)
	}
}

func signatures(pdf *fpdf.Fpdf, tr func(string) string, fields merge.FieldMap, leftTitle, leftRole, rightTitle, rightRole string) {
	pdf.Ln(40)
	pdf.SetTextColor(0, 0, 0)
	col := 234.0

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(col, 16, "_________________________", "", 0, "C", false, 0, "")
	pdf.CellFormat(col, 16, "_________________________", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col, 16, tr(leftTitle), "", 0, "C", false, 0, "")
	pdf.CellFormat(col, 16, tr(rightTitle), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(col, 16, tr(value(fields, leftRole+".nombre")), "", 0, "C", false, 0, "")
	pdf.CellFormat(col, 16, tr(value(fields, rightRole+".nombre")), "", 1, "C", false, 0, "")
	pdf.CellFormat(col, 16, tr("C.C. "+value(fields, leftRole+".documento")), "", 0, "C", false, 0, "")
	pdf.CellFormat(col, 16, tr("C.C. "+value(fields, rightRole+".documento")), "", 1, "C", false, 0, "")
}

func dateLine(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	pdf.Ln(20)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 14, tr(text), "", 1, "L", false, 0, "")
}
