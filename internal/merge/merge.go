package merge

import (
	"strings"
	"time"

	"github.com/dfmora/car2data/internal/extraction"
	"github.com/dfmora/car2data/internal/normalize"
)

// FieldMap maps dotted canonical field names ("vehiculo.placa",
// "propietario.nombre", "mandante.documento") to string values.
type FieldMap map[string]string

// roleFallbacks lets role-scoped person fields fall back to the
// extracted owner section: the registration card only knows the
// propietario, who is the mandante in a mandate and the vendedor in a
// sale.
var roleFallbacks = map[string]string{
	"mandante":    "propietario",
	"vendedor":    "propietario",
	"solicitante": "propietario",
}

// personFieldSuffixes are the per-role fields subject to role fallback.
var personFieldSuffixes = []string{"nombre", "documento", "direccion", "telefono", "ciudad"}

// FromExtraction flattens a canonical extraction into a FieldMap. Only
// non-empty leaves are emitted.
func FromExtraction(c extraction.CanonicalExtraction) FieldMap {
	out := FieldMap{}
	put := func(key, val string) {
		if val != "" {
			out[key] = val
		}
	}

	put("tipo_documento", c.TipoDocumento)

	put("vehiculo.placa", c.Vehiculo.Placa)
	put("vehiculo.marca", c.Vehiculo.Marca)
	put("vehiculo.linea", c.Vehiculo.Linea)
	put("vehiculo.modelo", c.Vehiculo.Modelo)
	put("vehiculo.color", c.Vehiculo.Color)
	put("vehiculo.numero_motor", c.Vehiculo.NumeroMotor)
	put("vehiculo.numero_chasis", c.Vehiculo.NumeroChasis)
	put("vehiculo.numero_serie", c.Vehiculo.NumeroSerie)
	put("vehiculo.vin", c.Vehiculo.VIN)
	put("vehiculo.cilindraje", c.Vehiculo.Cilindraje)
	put("vehiculo.potencia_hp", c.Vehiculo.PotenciaHP)
	put("vehiculo.capacidad", c.Vehiculo.Capacidad)
	put("vehiculo.carroceria", c.Vehiculo.Carroceria)
	put("vehiculo.clase_vehiculo", c.Vehiculo.ClaseVehiculo)
	put("vehiculo.combustible", c.Vehiculo.Combustible)
	put("vehiculo.servicio", c.Vehiculo.Servicio)
	put("vehiculo.puertas", c.Vehiculo.Puertas)

	put("propietario.nombre", c.Propietario.Nombre)
	put("propietario.documento", c.Propietario.Identificacion)
	put("propietario.direccion", c.Propietario.Direccion)
	put("propietario.telefono", c.Propietario.Telefono)
	put("propietario.ciudad", c.Propietario.Ciudad)

	put("registro.licencia_transito", c.Registro.LicenciaTransito)
	put("registro.organismo_transito", c.Registro.OrganismoTransito)
	put("registro.fecha_matricula", c.Registro.FechaMatricula)
	put("registro.fecha_expedicion_licencia", c.Registro.FechaExpedicionLicencia)
	put("registro.declaracion_importacion", c.Registro.DeclaracionImportacion)
	put("registro.fecha_importacion", c.Registro.FechaImportacion)

	put("restricciones.restriccion_movilidad", c.Restricciones.RestriccionMovilidad)
	put("restricciones.blindaje", c.Restricciones.Blindaje)
	put("restricciones.prenda", c.Restricciones.Prenda)

	return out
}

// Merge resolves each field through the fixed precedence
// form > extraction > persisted. A sentinel or blank form value counts
// as absent, not as an explicit override to empty. The only clock use
// is the "fecha_tramite" default, applied when the date is missing from
// all three sources; everything else is deterministic in the inputs.
func Merge(form, extracted, persisted FieldMap, now func() time.Time) FieldMap {
	out := FieldMap{}

	keys := map[string]struct{}{}
	for k := range form {
		keys[k] = struct{}{}
	}
	for k := range extracted {
		keys[k] = struct{}{}
	}
	for k := range persisted {
		keys[k] = struct{}{}
	}
	// role-scoped keys may only exist via fallback from propietario.*
	for role, src := range roleFallbacks {
		for _, suffix := range personFieldSuffixes {
			if _, ok := extracted[src+"."+suffix]; ok {
				keys[role+"."+suffix] = struct{}{}
			}
		}
	}

	for key := range keys {
		if v := normalize.Fold(form[key]); v != "" {
			out[key] = v
			continue
		}
		if v := lookupExtracted(extracted, key); v != "" {
			out[key] = v
			continue
		}
		if v := normalize.Fold(persisted[key]); v != "" {
			out[key] = v
		}
	}

	if out["fecha_tramite"] == "" && now != nil {
		out["fecha_tramite"] = now().Format("2006-01-02")
	}

	return out
}

// Lookup reads a key from the extraction map, applying the role
// fallback for person fields the extractor only knows under
// "propietario".
func Lookup(extracted FieldMap, key string) string {
	return lookupExtracted(extracted, key)
}

func lookupExtracted(extracted FieldMap, key string) string {
	if v := normalize.Fold(extracted[key]); v != "" {
		return v
	}
	for role, src := range roleFallbacks {
		if rest, ok := strings.CutPrefix(key, role+"."); ok {
			return normalize.Fold(extracted[src+"."+rest])
		}
	}
	return ""
}
