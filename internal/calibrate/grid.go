package calibrate

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Extended page size used for the standalone grid; official forms run
// larger than letter (612x792).
const (
	gridWidth  = 650
	gridHeight = 850
)

var ErrTemplateNotFound = errors.New("template not found")

// templateFiles maps form types to the installed official templates.
var templateFiles = map[string]string{
	"formulario_tramite":   "formulario_tramite_template.pdf",
	"contrato_compraventa": "contrato_compraventa_template.pdf",
	"contrato_mandato":     "contrato_mandato_template.pdf",
}

// Point is a position in points measured from the bottom-left corner,
// matching how overlay coordinates are recorded.
type Point struct {
	X float64
	Y float64
}

// Tool produces the calibration PDFs used to read field coordinates off
// official templates.
type Tool struct {
	templatesDir string
	logger       *slog.Logger
}

func NewTool(templatesDir string, logger *slog.Logger) *Tool {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tool{templatesDir: templatesDir, logger: logger}
}

// CreateGrid writes a standalone coordinate grid on the extended page
// size: bold lines every 50 points with labels, fine lines every 10.
func (t *Tool) CreateGrid(outPath string) error {
	pdf := newLayer(gridWidth, gridHeight)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	drawGrid(pdf, gridWidth, gridHeight, false)
	drawCornerMarkers(pdf, tr, gridWidth, gridHeight, 12)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(gridWidth/2-100, 50, tr("CUADRÍCULA DE COORDENADAS"))
	pdf.Text(gridWidth/2-150, 65, tr("Las coordenadas se miden desde ABAJO-IZQUIERDA (0,0)"))
	pdf.Text(gridWidth/2-120, 80, tr("Líneas gruesas cada 50 puntos, finas cada 10"))

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("writing grid: %w", err)
	}
	t.logger.Info("coordinate grid written", "path", outPath, "width", gridWidth, "height", gridHeight)
	return nil
}

// OverlayGridOnTemplate stamps the grid on top of an installed official
// template, sized to the template's exact page dimensions.
func (t *Tool) OverlayGridOnTemplate(templateType, outPath string) error {
	file, ok := templateFiles[templateType]
	if !ok {
		return fmt.Errorf("unknown template type %q", templateType)
	}
	templatePath := filepath.Join(t.templatesDir, file)
	if _, err := os.Stat(templatePath); err != nil {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, templatePath)
	}

	pctx, err := api.ReadContextFile(templatePath)
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}
	if err := pctx.EnsurePageCount(); err != nil {
		return fmt.Errorf("counting template pages: %w", err)
	}
	if pctx.PageCount == 0 {
		return fmt.Errorf("template %s has no pages", templatePath)
	}
	dims, err := pctx.PageDims()
	if err != nil {
		return fmt.Errorf("reading template dimensions: %w", err)
	}
	width, height := dims[0].Width, dims[0].Height
	t.logger.Info("template dimensions detected", "template", file, "width", width, "height", height)

	pdf := newLayer(width, height)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	drawGrid(pdf, width, height, true)
	drawCornerMarkers(pdf, tr, width, height, 10)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(width/2-120, 50, tr("CUADRÍCULA DE COORDENADAS"))
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(width/2-180, 65, tr("Coordenadas desde ABAJO-IZQUIERDA (0,0)"))
	pdf.Text(width/2-140, 80, tr("Líneas gruesas cada 50 puntos, finas cada 10"))
	pdf.Text(width/2-100, 95, tr(fmt.Sprintf("Tamaño: %d x %d puntos", int(width), int(height))))

	layerPath := outPath + ".grid.pdf"
	if err := pdf.OutputFileAndClose(layerPath); err != nil {
		return fmt.Errorf("writing grid layer: %w", err)
	}
	defer os.Remove(layerPath)

	wm, err := api.PDFWatermark(layerPath, "scalefactor:1 abs, pos:bl, rot:0", true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("building grid stamp: %w", err)
	}
	if err := api.AddWatermarksFile(templatePath, outPath, []string{"1"}, wm, nil); err != nil {
		return fmt.Errorf("stamping template: %w", err)
	}

	t.logger.Info("grid overlay written", "path", outPath, "template", file)
	return nil
}

// CreateTestOverlay marks each candidate coordinate so a trial print
// against the official form verifies the positions. The page takes the
// installed template's dimensions when one exists for templateType,
// letter size otherwise.
func (t *Tool) CreateTestOverlay(templateType string, coords map[string]Point, outPath string) error {
	width, height := t.pageSizeFor(templateType)

	pdf := newLayer(width, height)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(255, 0, 0)
	pdf.SetDrawColor(255, 0, 0)

	for name, pt := range coords {
		y := height - pt.Y
		pdf.Text(pt.X, y, tr("•"+name))
		pdf.Circle(pt.X, y, 3, "D")
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("writing test overlay: %w", err)
	}
	t.logger.Info("test overlay written", "path", outPath, "template", templateType, "fields", len(coords))
	return nil
}

// pageSizeFor reads the installed template's page dimensions, falling
// back to letter size when no template is available.
func (t *Tool) pageSizeFor(templateType string) (float64, float64) {
	const letterWidth, letterHeight = 612.0, 792.0

	file, ok := templateFiles[templateType]
	if !ok {
		return letterWidth, letterHeight
	}
	pctx, err := api.ReadContextFile(filepath.Join(t.templatesDir, file))
	if err != nil {
		return letterWidth, letterHeight
	}
	if err := pctx.EnsurePageCount(); err != nil || pctx.PageCount == 0 {
		return letterWidth, letterHeight
	}
	dims, err := pctx.PageDims()
	if err != nil {
		return letterWidth, letterHeight
	}
	return dims[0].Width, dims[0].Height
}

func newLayer(width, height float64) *fpdf.Fpdf {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf
}

// drawGrid draws bold labeled lines every 50 points and fine lines every
// 10. dualLabels repeats the axis labels on the far edges, which helps
// when reading a stamped template.
func drawGrid(pdf *fpdf.Fpdf, width, height float64, dualLabels bool) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)

	pdf.SetDrawColor(178, 178, 178)
	pdf.SetLineWidth(0.75)
	for x := 0.0; x <= width; x += 50 {
		pdf.Line(x, 0, x, height)
		pdf.Text(x+2, 15, fmt.Sprintf("%d", int(x)))
		if dualLabels {
			pdf.Text(x+2, height-5, fmt.Sprintf("%d", int(x)))
		}
	}
	for y := 0.0; y <= height; y += 50 {
		// labels carry the bottom-left based value
		pdf.Line(0, height-y, width, height-y)
		pdf.Text(5, height-y-2, fmt.Sprintf("%d", int(y)))
		if dualLabels {
			pdf.Text(width-30, height-y-2, fmt.Sprintf("%d", int(y)))
		}
	}

	pdf.SetDrawColor(230, 230, 230)
	pdf.SetLineWidth(0.25)
	for x := 0.0; x <= width; x += 10 {
		pdf.Line(x, 0, x, height)
	}
	for y := 0.0; y <= height; y += 10 {
		pdf.Line(0, y, width, y)
	}
}

func drawCornerMarkers(pdf *fpdf.Fpdf, tr func(string) string, width, height, size float64) {
	pdf.SetTextColor(255, 0, 0)
	pdf.SetFont("Helvetica", "B", size)
	pdf.Text(10, height-10, tr("Origen (0,0)"))
	pdf.Text(10, 30, tr(fmt.Sprintf("Superior Izq (0,%d)", int(height))))
	pdf.Text(width-150, height-10, tr(fmt.Sprintf("Inferior Der (%d,0)", int(width))))
	pdf.Text(width-200, 30, tr(fmt.Sprintf("Superior Der (%d,%d)", int(width), int(height))))
}
