package repository

import (
	"context"
	"log/slog"

	"github.com/dfmora/car2data/gen/ent"
	"github.com/dfmora/car2data/gen/ent/vehicle"
	"github.com/dfmora/car2data/internal/common"
	"github.com/dfmora/car2data/internal/entity"
	"github.com/dfmora/car2data/internal/merge"
	"github.com/dfmora/car2data/internal/normalize"
	"github.com/dfmora/car2data/internal/utils"
)

// vehicleBindings maps dotted field keys to update setters. Only keys
// listed here ever reach the database; anything else in the field map
// is ignored.
var vehicleBindings = map[string]func(*ent.VehicleUpdateOne, string){
	"vehiculo.marca":          func(u *ent.VehicleUpdateOne, v string) { u.SetMarca(v) },
	"vehiculo.linea":          func(u *ent.VehicleUpdateOne, v string) { u.SetLinea(v) },
	"vehiculo.modelo":         func(u *ent.VehicleUpdateOne, v string) { u.SetModelo(v) },
	"vehiculo.color":          func(u *ent.VehicleUpdateOne, v string) { u.SetColor(v) },
	"vehiculo.numero_motor":   func(u *ent.VehicleUpdateOne, v string) { u.SetNumeroMotor(v) },
	"vehiculo.numero_chasis":  func(u *ent.VehicleUpdateOne, v string) { u.SetNumeroChasis(v) },
	"vehiculo.numero_serie":   func(u *ent.VehicleUpdateOne, v string) { u.SetNumeroSerie(v) },
	"vehiculo.vin":            func(u *ent.VehicleUpdateOne, v string) { u.SetVin(v) },
	"vehiculo.cilindraje":     func(u *ent.VehicleUpdateOne, v string) { u.SetCilindraje(v) },
	"vehiculo.potencia_hp":    func(u *ent.VehicleUpdateOne, v string) { u.SetPotenciaHp(v) },
	"vehiculo.capacidad":      func(u *ent.VehicleUpdateOne, v string) { u.SetCapacidad(v) },
	"vehiculo.carroceria":     func(u *ent.VehicleUpdateOne, v string) { u.SetCarroceria(v) },
	"vehiculo.clase_vehiculo": func(u *ent.VehicleUpdateOne, v string) { u.SetClaseVehiculo(v) },
	"vehiculo.combustible":    func(u *ent.VehicleUpdateOne, v string) { u.SetCombustible(v) },
	"vehiculo.servicio":       func(u *ent.VehicleUpdateOne, v string) { u.SetServicio(v) },
	"vehiculo.puertas":        func(u *ent.VehicleUpdateOne, v string) { u.SetPuertas(v) },
}

type VehicleRepository interface {
	Resolve(ctx context.Context, fields merge.FieldMap) (*entity.Vehicle, error)
	GetByPlaca(ctx context.Context, placa string) (*entity.Vehicle, error)
}

type vehicleRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVehicleRepository(client *ent.Client, logger *slog.Logger) VehicleRepository {
	return &vehicleRepository{
		client: client,
		logger: logger,
	}
}

// Resolve finds or creates the vehicle keyed by plate and folds every
// non-empty attribute from the field map into it. Empty attributes never
// overwrite stored values.
func (r *vehicleRepository) Resolve(ctx context.Context, fields merge.FieldMap) (*entity.Vehicle, error) {
	placa := normalize.Fold(fields["vehiculo.placa"])
	if placa == "" {
		return nil, common.NewAppError("VEHICLE_KEY_MISSING", "vehicle plate is required", common.ErrValidation)
	}

	v, err := r.ensure(ctx, placa)
	if err != nil {
		return nil, err
	}

	upd := r.client.Vehicle.UpdateOneID(v.ID)
	dirty := false
	for key, set := range vehicleBindings {
		if val := normalize.Fold(fields[key]); val != "" {
			set(upd, val)
			dirty = true
		}
	}
	if dirty {
		v, err = upd.Save(ctx)
		if err != nil {
			r.logger.Error("failed to update vehicle", "placa", placa, "error", err)
			return nil, err
		}
	}

	r.logger.Debug("vehicle resolved", "vehicle_id", v.ID, "placa", placa, "updated", dirty)
	return utils.ToVehicle(v), nil
}

func (r *vehicleRepository) GetByPlaca(ctx context.Context, placa string) (*entity.Vehicle, error) {
	v, err := r.client.Vehicle.Query().Where(vehicle.Placa(placa)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToVehicle(v), nil
}

func (r *vehicleRepository) ensure(ctx context.Context, placa string) (*ent.Vehicle, error) {
	v, err := r.client.Vehicle.Query().Where(vehicle.Placa(placa)).Only(ctx)
	if err == nil {
		return v, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up vehicle", "placa", placa, "error", err)
		return nil, err
	}

	v, err = r.client.Vehicle.Create().SetPlaca(placa).Save(ctx)
	if err == nil {
		r.logger.Info("vehicle created", "vehicle_id", v.ID, "placa", placa)
		return v, nil
	}
	if ent.IsConstraintError(err) {
		// concurrent create for the same plate
		return r.client.Vehicle.Query().Where(vehicle.Placa(placa)).Only(ctx)
	}
	r.logger.Error("failed to create vehicle", "placa", placa, "error", err)
	return nil, err
}
