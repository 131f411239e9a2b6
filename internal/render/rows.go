package render

import (
	"github.com/dfmora/car2data/internal/merge"
	"github.com/dfmora/car2data/internal/normalize"
)

// naLiteral is printed wherever no value survived the merge; rendered
// forms never carry a blank cell.
const naLiteral = "N/A"

type row struct {
	label string
	value string
}

func value(fields merge.FieldMap, key string) string {
	if v := normalize.Fold(fields[key]); v != "" {
		return v
	}
	return naLiteral
}

func personRows(fields merge.FieldMap, role string) []row {
	return []row{
		{"Nombre:", value(fields, role+".nombre")},
		{"Documento:", value(fields, role+".documento")},
		{"Dirección:", value(fields, role+".direccion")},
		{"Teléfono:", value(fields, role+".telefono")},
		{"Ciudad:", value(fields, role+".ciudad")},
	}
}

// vehicleRows builds the vehicle description table. The full variant
// adds the attributes only the compraventa and trámite layouts print.
func vehicleRows(fields merge.FieldMap, full bool) []row {
	rows := []row{
		{"Placa:", value(fields, "vehiculo.placa")},
		{"Marca:", value(fields, "vehiculo.marca")},
		{"Línea:", value(fields, "vehiculo.linea")},
		{"Modelo:", value(fields, "vehiculo.modelo")},
		{"Color:", value(fields, "vehiculo.color")},
		{"VIN:", value(fields, "vehiculo.vin")},
		{"Número de Motor:", value(fields, "vehiculo.numero_motor")},
		{"Número de Chasis:", value(fields, "vehiculo.numero_chasis")},
		{"Cilindrada (cc):", value(fields, "vehiculo.cilindraje")},
		{"Combustible:", value(fields, "vehiculo.combustible")},
		{"Servicio:", value(fields, "vehiculo.servicio")},
	}
	if full {
		rows = append(rows,
			row{"Clase de Vehículo:", value(fields, "vehiculo.clase_vehiculo")},
			row{"Tipo de Carrocería:", value(fields, "vehiculo.carroceria")},
			row{"Capacidad (Kg/PSJ):", value(fields, "vehiculo.capacidad")},
			row{"Potencia (HP):", value(fields, "vehiculo.potencia_hp")},
			row{"Puertas:", value(fields, "vehiculo.puertas")},
		)
	}
	return rows
}

func registroRows(fields merge.FieldMap) []row {
	return []row{
		{"Licencia de Tránsito:", value(fields, "registro.licencia_transito")},
		{"Organismo de Tránsito:", value(fields, "registro.organismo_transito")},
		{"Fecha de Matrícula:", value(fields, "registro.fecha_matricula")},
		{"Fecha Expedición:", value(fields, "registro.fecha_expedicion_licencia")},
		{"Declaración de Importación:", value(fields, "registro.declaracion_importacion")},
		{"Fecha de Importación:", value(fields, "registro.fecha_importacion")},
	}
}

// valorRows prints the sale amount in figures and in words.
func valorRows(fields merge.FieldMap) []row {
	numeric, letras := naLiteral, naLiteral
	if v, ok := ParseMoney(normalize.Fold(fields["valor_venta"])); ok {
		numeric = FormatPesos(v)
		letras = AmountInWords(v)
	}
	return []row{
		{"Valor en números:", numeric},
		{"Valor en letras:", letras},
	}
}
