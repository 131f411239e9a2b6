package normalize

import (
	"fmt"
	"strings"

	"github.com/dfmora/car2data/internal/extraction"
)

// sentinels are provider "empty" spellings folded to the canonical
// empty value, compared case-insensitively after trimming.
var sentinels = map[string]struct{}{
	"no disponible":   {},
	"no identificado": {},
	"n/a":             {},
	"na":              {},
	"none":            {},
	"null":            {},
	"sin dato":        {},
}

// sectionAliases resolves section-name drift across prompt generations.
// The first name is the current one; later names are legacy fallbacks.
var sectionAliases = map[string][]string{
	"vehiculo":      {"vehiculo", "informacion_vehiculo"},
	"propietario":   {"propietario", "informacion_propietario"},
	"registro":      {"registro", "detalles_registro"},
	"restricciones": {"restricciones", "restricciones_limitaciones"},
}

// fieldAliases resolves leaf-key drift inside a section, keyed by
// "section.canonical_field". Same preference rule as sections.
var fieldAliases = map[string][]string{
	"propietario.identificacion": {"identificacion", "documento", "numero_documento"},
	"vehiculo.cilindraje":        {"cilindraje", "cilindrada_cc"},
	"vehiculo.carroceria":        {"carroceria", "tipo_carroceria"},
	"vehiculo.capacidad":         {"capacidad", "capacidad_kg_psj"},
	"vehiculo.vin":               {"vin", "numero_vin"},
	"vehiculo.combustible":       {"combustible", "tipo_combustible"},
	"registro.licencia_transito": {"licencia_transito", "licencia_transito_numero"},
}

// Diagnostics reports what normalization did, returned alongside the
// canonical record instead of being logged as a side channel.
type Diagnostics struct {
	AliasedKeys []string // legacy keys that were resolved
	FoldedCount int      // sentinel/blank values folded to empty
	Notes       []string
}

// Fold maps a sentinel or blank value to the canonical empty value and
// leaves any other string untouched (after trimming).
func Fold(v string) string {
	s := strings.TrimSpace(v)
	if _, ok := sentinels[strings.ToLower(s)]; ok {
		return ""
	}
	return s
}

// IsEmpty reports whether v folds to the canonical empty value.
func IsEmpty(v string) bool {
	return Fold(v) == ""
}

// Normalize canonicalizes a raw extraction: resolves key aliases, folds
// sentinels, and coerces numbers to strings. The output always carries
// every canonical section and field, never omitting a key.
func Normalize(raw extraction.RawExtraction) (extraction.CanonicalExtraction, Diagnostics) {
	n := newWalker(raw)

	var c extraction.CanonicalExtraction
	c.TipoDocumento = n.top("tipo_documento")
	c.Observaciones = n.top("observaciones")

	v := n.section("vehiculo")
	c.Vehiculo = extraction.Vehiculo{
		Placa:         v.field("placa"),
		Marca:         v.field("marca"),
		Linea:         v.field("linea"),
		Modelo:        v.field("modelo"),
		Color:         v.field("color"),
		NumeroMotor:   v.field("numero_motor"),
		NumeroChasis:  v.field("numero_chasis"),
		NumeroSerie:   v.field("numero_serie"),
		VIN:           v.field("vin"),
		Cilindraje:    v.field("cilindraje"),
		PotenciaHP:    v.field("potencia_hp"),
		Capacidad:     v.field("capacidad"),
		Carroceria:    v.field("carroceria"),
		ClaseVehiculo: v.field("clase_vehiculo"),
		Combustible:   v.field("combustible"),
		Servicio:      v.field("servicio"),
		Puertas:       v.field("puertas"),
	}

	p := n.section("propietario")
	c.Propietario = extraction.Propietario{
		Nombre:         p.field("nombre"),
		Identificacion: p.field("identificacion"),
		Direccion:      p.field("direccion"),
		Telefono:       p.field("telefono"),
		Ciudad:         p.field("ciudad"),
	}

	r := n.section("registro")
	c.Registro = extraction.Registro{
		LicenciaTransito:        r.field("licencia_transito"),
		OrganismoTransito:       r.field("organismo_transito"),
		FechaMatricula:          r.field("fecha_matricula"),
		FechaExpedicionLicencia: r.field("fecha_expedicion_licencia"),
		DeclaracionImportacion:  r.field("declaracion_importacion"),
		FechaImportacion:        r.field("fecha_importacion"),
	}

	x := n.section("restricciones")
	c.Restricciones = extraction.Restricciones{
		RestriccionMovilidad: x.field("restriccion_movilidad"),
		Blindaje:             x.field("blindaje"),
		Prenda:               x.field("prenda"),
	}

	return c, n.diags
}

type walker struct {
	raw   extraction.RawExtraction
	diags Diagnostics
}

func newWalker(raw extraction.RawExtraction) *walker {
	if raw == nil {
		raw = extraction.RawExtraction{}
	}
	return &walker{raw: raw}
}

func (w *walker) top(key string) string {
	return w.fold(coerce(w.raw[key]))
}

type sectionWalker struct {
	w    *walker
	name string
	m    map[string]any
}

func (w *walker) section(canonical string) sectionWalker {
	for i, alias := range sectionAliases[canonical] {
		if v, ok := w.raw[alias]; ok {
			if m, ok := v.(map[string]any); ok {
				if i > 0 {
					w.diags.AliasedKeys = append(w.diags.AliasedKeys, alias+"->"+canonical)
				}
				return sectionWalker{w: w, name: canonical, m: m}
			}
		}
	}
	return sectionWalker{w: w, name: canonical}
}

func (s sectionWalker) field(canonical string) string {
	if s.m == nil {
		return ""
	}
	aliases, ok := fieldAliases[s.name+"."+canonical]
	if !ok {
		aliases = []string{canonical}
	}
	for i, alias := range aliases {
		if v, ok := s.m[alias]; ok {
			folded := s.w.fold(coerce(v))
			if folded == "" {
				continue
			}
			if i > 0 {
				s.w.diags.AliasedKeys = append(s.w.diags.AliasedKeys, s.name+"."+alias+"->"+canonical)
			}
			return folded
		}
	}
	return ""
}

func (w *walker) fold(v string) string {
	folded := Fold(v)
	if folded == "" && strings.TrimSpace(v) != "" {
		w.diags.FoldedCount++
	}
	return folded
}

// coerce turns a raw leaf into a string; the model sometimes returns
// numbers for modelo/cilindraje/puertas.
func coerce(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		if t {
			return "S"
		}
		return "N"
	default:
		return fmt.Sprintf("%v", t)
	}
}
