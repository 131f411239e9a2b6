package render

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-pdf/fpdf"
	ledongthuc "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfmora/car2data/internal/merge"
)

func TestFormatPesos(t *testing.T) {
	assert.Equal(t, "$45,000,000.00", FormatPesos(45_000_000))
	assert.Equal(t, "$1,234.50", FormatPesos(1234.5))
	assert.Equal(t, "$0.00", FormatPesos(0))
	assert.Equal(t, "$999.99", FormatPesos(999.99))
}

func TestParseMoney(t *testing.T) {
	v, ok := ParseMoney("$45,000,000")
	require.True(t, ok)
	assert.Equal(t, 45_000_000.0, v)

	v, ok = ParseMoney("12500000.50")
	require.True(t, ok)
	assert.Equal(t, 12_500_000.50, v)

	_, ok = ParseMoney("")
	assert.False(t, ok)
	_, ok = ParseMoney("doce millones")
	assert.False(t, ok)
	_, ok = ParseMoney("-100")
	assert.False(t, ok)
}

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "cero pesos colombianos"},
		{1, "un peso colombiano"},
		{100, "cien pesos colombianos"},
		{116, "ciento dieciséis pesos colombianos"},
		{731, "setecientos treinta y un pesos colombianos"},
		{21_000, "veintiún mil pesos colombianos"},
		{1_000_000, "un millón de pesos colombianos"},
		{1_500_000, "un millón quinientos mil pesos colombianos"},
		{45_000_000, "cuarenta y cinco millones de pesos colombianos"},
		{2500.50, "dos mil quinientos pesos colombianos con 50/100"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AmountInWords(tt.amount), "amount %v", tt.amount)
	}
}

func TestRowsNeverBlank(t *testing.T) {
	empty := merge.FieldMap{}

	for _, rw := range personRows(empty, "mandante") {
		assert.Equal(t, naLiteral, rw.value, rw.label)
	}
	for _, rw := range vehicleRows(empty, true) {
		assert.Equal(t, naLiteral, rw.value, rw.label)
	}
	for _, rw := range registroRows(empty) {
		assert.Equal(t, naLiteral, rw.value, rw.label)
	}
	for _, rw := range valorRows(empty) {
		assert.Equal(t, naLiteral, rw.value, rw.label)
	}

	// sentinel values fold to the fallback literal too
	folded := merge.FieldMap{"vehiculo.placa": "No disponible"}
	rows := vehicleRows(folded, false)
	assert.Equal(t, naLiteral, rows[0].value)
}

func TestVehicleRowVariants(t *testing.T) {
	fields := merge.FieldMap{"vehiculo.placa": "ABC123"}
	assert.Len(t, vehicleRows(fields, false), 11)
	assert.Len(t, vehicleRows(fields, true), 16)
}

func TestValorRows(t *testing.T) {
	rows := valorRows(merge.FieldMap{"valor_venta": "45000000"})
	require.Len(t, rows, 2)
	assert.Equal(t, "$45,000,000.00", rows[0].value)
	assert.Equal(t, "cuarenta y cinco millones de pesos colombianos", rows[1].value)
}

func extractText(t *testing.T, path string) string {
	t.Helper()
	f, reader, err := ledongthuc.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rd, err := reader.GetPlainText()
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = buf.ReadFrom(rd)
	require.NoError(t, err)
	return buf.String()
}

func sampleFields() merge.FieldMap {
	return merge.FieldMap{
		"vehiculo.placa":       "ABC123",
		"vehiculo.marca":       "RENAULT",
		"vehiculo.linea":       "LOGAN",
		"mandante.nombre":      "MARIA GARCIA",
		"mandante.documento":   "52123456",
		"mandatario.nombre":    "PEDRO PEREZ",
		"mandatario.documento": "79987654",
		"vendedor.nombre":      "MARIA GARCIA",
		"vendedor.documento":   "52123456",
		"comprador.nombre":     "PEDRO PEREZ",
		"comprador.documento":  "79987654",
		"valor_venta":          "45000000",
		"fecha_tramite":        "2025-03-14",
	}
}

func TestRenderMandato(t *testing.T) {
	r := NewRenderer(t.TempDir(), slog.Default())
	out := filepath.Join(t.TempDir(), "mandato.pdf")

	require.True(t, r.Render("contrato_mandato", sampleFields(), out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	text := extractText(t, out)
	assert.Contains(t, text, "ABC123")
	assert.Contains(t, text, "MARIA GARCIA")
}

func TestRenderCompraventa(t *testing.T) {
	r := NewRenderer(t.TempDir(), slog.Default())
	out := filepath.Join(t.TempDir(), "compraventa.pdf")

	require.True(t, r.Render("contrato_compraventa", sampleFields(), out))

	text := extractText(t, out)
	assert.Contains(t, text, "ABC123")
	assert.Contains(t, text, "$45,000,000.00")
}

func writeTramiteTemplate(t *testing.T, dir string) {
	t.Helper()
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: 650, Ht: 850},
	})
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(100, 100, "FORMULARIO OFICIAL")
	require.NoError(t, pdf.OutputFileAndClose(filepath.Join(dir, tramiteTemplateFile)))
}

func TestRenderTramiteOverlayStampsTemplate(t *testing.T) {
	templatesDir := t.TempDir()
	writeTramiteTemplate(t, templatesDir)

	r := NewRenderer(templatesDir, slog.Default())
	out := filepath.Join(t.TempDir(), "tramite.pdf")

	require.True(t, r.Render("formulario_tramite", sampleFields(), out))

	pctx, err := api.ReadContextFile(out)
	require.NoError(t, err)
	require.NoError(t, pctx.EnsurePageCount())
	require.Equal(t, 1, pctx.PageCount)
	dims, err := pctx.PageDims()
	require.NoError(t, err)
	assert.InDelta(t, 650, dims[0].Width, 0.5)
	assert.InDelta(t, 850, dims[0].Height, 0.5)

	text := extractText(t, out)
	assert.Contains(t, text, "FORMULARIO OFICIAL", "template content survives the stamp")

	// the stamp layer itself is gone once the output is written
	_, err = os.Stat(out + ".layer.pdf")
	assert.True(t, os.IsNotExist(err))
}

func TestTramiteTextLayerPlacesMergedFields(t *testing.T) {
	r := NewRenderer(t.TempDir(), slog.Default())
	layer := filepath.Join(t.TempDir(), "layer.pdf")

	fields := sampleFields()
	fields["propietario.nombre"] = "GARCIA LOPEZ MARIA"

	require.NoError(t, r.writeTextLayer(layer, 650, 850, fields))

	text := extractText(t, layer)
	assert.Contains(t, text, "ABC123")
	assert.Contains(t, text, "GARCIA")
	assert.Contains(t, text, "LOPEZ")
	assert.Contains(t, text, "MARIA")
	// absent fields leave the official form's own boxes blank
	assert.NotContains(t, text, naLiteral)
}

func TestRenderTramiteWithoutTemplateFallsBack(t *testing.T) {
	// templates dir is empty, so the flowing layout is used
	r := NewRenderer(t.TempDir(), slog.Default())
	out := filepath.Join(t.TempDir(), "tramite.pdf")

	require.True(t, r.Render("formulario_tramite", sampleFields(), out))

	text := extractText(t, out)
	assert.Contains(t, text, "ABC123")
	// absent values print the fallback literal, never a blank
	assert.Contains(t, text, naLiteral)
}

func TestRenderUnknownFormType(t *testing.T) {
	r := NewRenderer(t.TempDir(), slog.Default())
	out := filepath.Join(t.TempDir(), "nope.pdf")

	assert.False(t, r.Render("carta_poder", merge.FieldMap{}, out))
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}
