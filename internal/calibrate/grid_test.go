package calibrate

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageDims(t *testing.T, path string) (float64, float64) {
	t.Helper()
	pctx, err := api.ReadContextFile(path)
	require.NoError(t, err)
	require.NoError(t, pctx.EnsurePageCount())
	require.Equal(t, 1, pctx.PageCount)
	dims, err := pctx.PageDims()
	require.NoError(t, err)
	require.Len(t, dims, 1)
	return dims[0].Width, dims[0].Height
}

func writeBlankTemplate(t *testing.T, path string, width, height float64) {
	t.Helper()
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(100, 100, "FORMULARIO OFICIAL")
	require.NoError(t, pdf.OutputFileAndClose(path))
}

func TestCreateGrid(t *testing.T) {
	tool := NewTool(t.TempDir(), slog.Default())
	out := filepath.Join(t.TempDir(), "grid.pdf")

	require.NoError(t, tool.CreateGrid(out))

	w, h := pageDims(t, out)
	assert.InDelta(t, 650, w, 0.5)
	assert.InDelta(t, 850, h, 0.5)
}

func TestOverlayGridKeepsTemplateDimensions(t *testing.T) {
	templatesDir := t.TempDir()
	writeBlankTemplate(t, filepath.Join(templatesDir, "formulario_tramite_template.pdf"), 650, 850)

	tool := NewTool(templatesDir, slog.Default())
	out := filepath.Join(t.TempDir(), "grid_overlay.pdf")

	require.NoError(t, tool.OverlayGridOnTemplate("formulario_tramite", out))

	w, h := pageDims(t, out)
	assert.InDelta(t, 650, w, 0.5)
	assert.InDelta(t, 850, h, 0.5)
}

func TestOverlayGridUnknownTemplateType(t *testing.T) {
	tool := NewTool(t.TempDir(), slog.Default())
	err := tool.OverlayGridOnTemplate("carta_poder", filepath.Join(t.TempDir(), "out.pdf"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTemplateNotFound)
}

func TestOverlayGridTemplateMissing(t *testing.T) {
	tool := NewTool(t.TempDir(), slog.Default())
	err := tool.OverlayGridOnTemplate("contrato_mandato", filepath.Join(t.TempDir(), "out.pdf"))
	require.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestCreateTestOverlayDefaultsToLetter(t *testing.T) {
	tool := NewTool(t.TempDir(), slog.Default())
	out := filepath.Join(t.TempDir(), "test_overlay.pdf")

	coords := map[string]Point{
		"placa":  {95, 712},
		"nombre": {95, 520},
	}
	require.NoError(t, tool.CreateTestOverlay("formulario_tramite", coords, out))

	w, h := pageDims(t, out)
	assert.InDelta(t, 612, w, 0.5)
	assert.InDelta(t, 792, h, 0.5)
}

func TestCreateTestOverlayMatchesInstalledTemplate(t *testing.T) {
	templatesDir := t.TempDir()
	writeBlankTemplate(t, filepath.Join(templatesDir, "formulario_tramite_template.pdf"), 650, 850)

	tool := NewTool(templatesDir, slog.Default())
	out := filepath.Join(t.TempDir(), "test_overlay.pdf")

	require.NoError(t, tool.CreateTestOverlay("formulario_tramite", map[string]Point{"placa": {95, 712}}, out))

	w, h := pageDims(t, out)
	assert.InDelta(t, 650, w, 0.5)
	assert.InDelta(t, 850, h, 0.5)
}
