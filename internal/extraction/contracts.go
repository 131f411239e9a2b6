package extraction

import "context"

// RawExtraction is the untyped nested mapping decoded from the model's
// response. Key names drift across model/prompt generations; it exists
// only between extraction and normalization.
type RawExtraction map[string]any

// Vehiculo mirrors the "vehiculo" section of the canonical payload.
type Vehiculo struct {
	Placa         string `json:"placa"`
	Marca         string `json:"marca"`
	Linea         string `json:"linea"`
	Modelo        string `json:"modelo"`
	Color         string `json:"color"`
	NumeroMotor   string `json:"numero_motor"`
	NumeroChasis  string `json:"numero_chasis"`
	NumeroSerie   string `json:"numero_serie"`
	VIN           string `json:"vin"`
	Cilindraje    string `json:"cilindraje"`
	PotenciaHP    string `json:"potencia_hp"`
	Capacidad     string `json:"capacidad"`
	Carroceria    string `json:"carroceria"`
	ClaseVehiculo string `json:"clase_vehiculo"`
	Combustible   string `json:"combustible"`
	Servicio      string `json:"servicio"`
	Puertas       string `json:"puertas"`
}

// Propietario mirrors the "propietario" section.
type Propietario struct {
	Nombre         string `json:"nombre"`
	Identificacion string `json:"identificacion"`
	Direccion      string `json:"direccion"`
	Telefono       string `json:"telefono"`
	Ciudad         string `json:"ciudad"`
}

// Registro mirrors the "registro" section.
type Registro struct {
	LicenciaTransito        string `json:"licencia_transito"`
	OrganismoTransito       string `json:"organismo_transito"`
	FechaMatricula          string `json:"fecha_matricula"`
	FechaExpedicionLicencia string `json:"fecha_expedicion_licencia"`
	DeclaracionImportacion  string `json:"declaracion_importacion"`
	FechaImportacion        string `json:"fecha_importacion"`
}

// Restricciones mirrors the "restricciones" section.
type Restricciones struct {
	RestriccionMovilidad string `json:"restriccion_movilidad"`
	Blindaje             string `json:"blindaje"`
	Prenda               string `json:"prenda"`
}

// CanonicalExtraction is the normalized record attached to a Document.
// Every leaf is either a non-empty string or "" (sentinels folded);
// Observaciones carries diagnostic notes, including the truncated raw
// response when the model output could not be parsed.
type CanonicalExtraction struct {
	TipoDocumento string        `json:"tipo_documento"`
	Vehiculo      Vehiculo      `json:"vehiculo"`
	Propietario   Propietario   `json:"propietario"`
	Registro      Registro      `json:"registro"`
	Restricciones Restricciones `json:"restricciones"`
	Observaciones string        `json:"observaciones,omitempty"`
}

// Extractor is the interface the pipeline depends on.
type Extractor interface {
	// Extract sends the PDF bytes to the vision model and returns the
	// decoded raw record. Unparseable model output degrades to the
	// fallback structure and is NOT an error; only transport-level
	// failures (network, auth) return one.
	Extract(ctx context.Context, pdfBytes []byte) (RawExtraction, error)

	// TestConnection performs a lightweight round-trip to confirm the
	// model endpoint is reachable and authenticated.
	TestConnection(ctx context.Context) error
}
