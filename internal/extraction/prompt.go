package extraction

// BuildPrompt composes the fixed extraction instruction. The JSON shape
// enumerated here is the contract the normalizer canonicalizes against;
// the "No disponible" rule keeps the model from inventing values.
func BuildPrompt() string {
	return `Eres un experto en análisis de documentos vehiculares colombianos (licencias de tránsito, SOAT, revisión técnico-mecánica, tarjetas de propiedad).

Extrae la información del documento adjunto y devuélvela EXACTAMENTE en este formato JSON:

{
    "tipo_documento": "Tipo de documento (matrícula, SOAT, revisión técnico-mecánica, tarjeta de propiedad, etc.)",
    "vehiculo": {
        "placa": "Placa del vehículo",
        "marca": "Marca",
        "linea": "Línea",
        "modelo": "Año modelo",
        "color": "Color",
        "numero_motor": "Número de motor",
        "numero_chasis": "Número de chasis",
        "numero_serie": "Número de serie",
        "vin": "Número VIN",
        "cilindraje": "Cilindraje (cc)",
        "potencia_hp": "Potencia (HP)",
        "capacidad": "Capacidad (Kg o pasajeros)",
        "carroceria": "Tipo de carrocería",
        "clase_vehiculo": "Clase de vehículo",
        "combustible": "Tipo de combustible",
        "servicio": "Tipo de servicio (particular, público, etc.)",
        "puertas": "Número de puertas"
    },
    "propietario": {
        "nombre": "Nombre completo del propietario",
        "identificacion": "Número de identificación",
        "direccion": "Dirección",
        "telefono": "Teléfono",
        "ciudad": "Ciudad"
    },
    "registro": {
        "licencia_transito": "Número de licencia de tránsito",
        "organismo_transito": "Organismo de tránsito",
        "fecha_matricula": "Fecha de matrícula",
        "fecha_expedicion_licencia": "Fecha de expedición de la licencia",
        "declaracion_importacion": "Número de declaración de importación",
        "fecha_importacion": "Fecha de importación"
    },
    "restricciones": {
        "restriccion_movilidad": "Restricción de movilidad",
        "blindaje": "Blindaje",
        "prenda": "Prenda o limitación a la propiedad"
    },
    "observaciones": "Cualquier observación adicional relevante"
}

Si alguna información no está disponible en el documento, usa "No disponible" como valor. NUNCA inventes un valor que no aparezca en el documento. Devuelve ÚNICAMENTE el objeto JSON, sin texto adicional.`
}
