package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/dfmora/car2data/internal/merge"
	"github.com/dfmora/car2data/internal/normalize"
)

const tramiteTemplateFile = "formulario_tramite_template.pdf"

// tramiteCoordinates places each field on the official trámite form.
// Coordinates are measured in points from the bottom-left corner, read
// off the calibration grid.
var tramiteCoordinates = map[string]position{
	"vehiculo.placa":              {95, 712},
	"vehiculo.marca":              {95, 688},
	"vehiculo.linea":              {255, 688},
	"vehiculo.modelo":             {415, 688},
	"vehiculo.color":              {95, 664},
	"vehiculo.cilindraje":         {255, 664},
	"vehiculo.combustible":        {415, 664},
	"vehiculo.numero_motor":       {95, 640},
	"vehiculo.numero_chasis":      {300, 640},
	"vehiculo.vin":                {95, 616},
	"vehiculo.servicio":           {300, 616},
	"vehiculo.clase_vehiculo":     {95, 592},
	"vehiculo.carroceria":         {300, 592},
	"propietario.documento":       {95, 496},
	"propietario.direccion":       {300, 496},
	"propietario.ciudad":          {95, 472},
	"propietario.telefono":        {300, 472},
	"registro.licencia_transito":  {95, 400},
	"registro.organismo_transito": {300, 400},
	"registro.fecha_matricula":    {95, 376},
	"fecha_tramite":               {95, 120},
}

type position struct {
	X float64
	Y float64
}

// renderTramiteOverlay stamps the merged values onto the official
// template, preserving its exact page size. Empty fields are left
// untouched so the printed form shows the template's own boxes.
func (r *Renderer) renderTramiteOverlay(templatePath string, fields merge.FieldMap, outPath string) error {
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

	layerPath := outPath + ".layer.pdf"
	if err := r.writeTextLayer(layerPath, width, height, fields); err != nil {
		return err
	}
	defer os.Remove(layerPath)

	wm, err := api.PDFWatermark(layerPath, "scalefactor:1 abs, pos:bl, rot:0", true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("building overlay stamp: %w", err)
	}
	if err := api.AddWatermarksFile(templatePath, outPath, []string{"1"}, wm, nil); err != nil {
		return fmt.Errorf("stamping template: %w", err)
	}

	r.logger.Debug("overlay stamped",
		"template", filepath.Base(templatePath),
		"width", width, "height", height,
	)
	return nil
}

// writeTextLayer draws the field values on a transparent-background page
// matching the template's dimensions exactly.
func (r *Renderer) writeTextLayer(path string, width, height float64, fields merge.FieldMap) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: width, Ht: height},
	})
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)

	for key, pos := range tramiteCoordinates {
		v := normalize.Fold(fields[key])
		if v == "" {
			continue
		}
		// coordinate table is bottom-left based, the page origin is top-left
		pdf.Text(pos.X, height-pos.Y, tr(v))
	}

	// the official form splits the owner name into separate boxes
	if name := normalize.Fold(fields["propietario.nombre"]); name != "" {
		sp := normalize.SplitFullName(name)
		for _, part := range []struct {
			value string
			pos   position
		}{
			{sp.PrimerApellido, nameCoordinates[0]},
			{sp.SegundoApellido, nameCoordinates[1]},
			{sp.Nombres, nameCoordinates[2]},
		} {
			if part.value != "" {
				pdf.Text(part.pos.X, height-part.pos.Y, tr(part.value))
			}
		}
	}

	return pdf.OutputFileAndClose(path)
}

// nameCoordinates are the primer apellido, segundo apellido and nombres
// boxes, in that order.
var nameCoordinates = [3]position{{95, 544}, {255, 544}, {415, 544}}
