package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle represents a canonical vehicle row for data transfer between layers.
type Vehicle struct {
	ID            uuid.UUID `json:"id"`
	Placa         string    `json:"placa"`
	Marca         string    `json:"marca"`
	Linea         string    `json:"linea"`
	Modelo        string    `json:"modelo"`
	Color         string    `json:"color"`
	NumeroMotor   string    `json:"numero_motor"`
	NumeroChasis  string    `json:"numero_chasis"`
	NumeroSerie   string    `json:"numero_serie"`
	VIN           string    `json:"vin"`
	Cilindraje    string    `json:"cilindraje"`
	PotenciaHP    string    `json:"potencia_hp"`
	Capacidad     string    `json:"capacidad"`
	Carroceria    string    `json:"carroceria"`
	ClaseVehiculo string    `json:"clase_vehiculo"`
	Combustible   string    `json:"combustible"`
	Servicio      string    `json:"servicio"`
	Puertas       string    `json:"puertas"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
