package repository

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/dfmora/car2data/constants"
	"github.com/dfmora/car2data/gen/ent"
	"github.com/dfmora/car2data/gen/ent/person"
	"github.com/dfmora/car2data/internal/common"
	"github.com/dfmora/car2data/internal/entity"
	"github.com/dfmora/car2data/internal/merge"
	"github.com/dfmora/car2data/internal/normalize"
	"github.com/dfmora/car2data/internal/utils"
)

// personBindings maps role-relative field suffixes to update setters.
var personBindings = map[string]func(*ent.PersonUpdateOne, string){
	"nombre":    func(u *ent.PersonUpdateOne, v string) { u.SetNombre(v) },
	"direccion": func(u *ent.PersonUpdateOne, v string) { u.SetDireccion(v) },
	"ciudad":    func(u *ent.PersonUpdateOne, v string) { u.SetCiudad(v) },
	"telefono":  func(u *ent.PersonUpdateOne, v string) { u.SetTelefono(v) },
}

type PersonRepository interface {
	ResolveRole(ctx context.Context, role string, fields merge.FieldMap) (*entity.Person, error)
	GetByDocumento(ctx context.Context, numeroDocumento string) (*entity.Person, error)
}

type personRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPersonRepository(client *ent.Client, logger *slog.Logger) PersonRepository {
	return &personRepository{
		client: client,
		logger: logger,
	}
}

// ResolveRole finds or creates the person filling the given form role
// (mandante, mandatario, vendedor, comprador, solicitante...), keyed by
// the role's national ID field. Empty attributes never overwrite stored
// values.
func (r *personRepository) ResolveRole(ctx context.Context, role string, fields merge.FieldMap) (*entity.Person, error) {
	numero := normalize.Fold(fields[role+".documento"])
	if numero == "" {
		return nil, common.NewAppError("PERSON_KEY_MISSING", "national ID is required for role "+role, common.ErrValidation)
	}

	p, err := r.ensure(ctx, numero)
	if err != nil {
		return nil, err
	}

	upd := r.client.Person.UpdateOneID(p.ID)
	dirty := false
	for suffix, set := range personBindings {
		if val := normalize.Fold(fields[role+"."+suffix]); val != "" {
			set(upd, val)
			dirty = true
		}
	}
	if tipo := strings.ToUpper(normalize.Fold(fields[role+".tipo_documento"])); tipo != "" {
		if slices.Contains(constants.PersonDocTypes, tipo) {
			upd.SetTipoDocumento(tipo)
			dirty = true
		} else {
			r.logger.Warn("ignoring unknown document type", "role", role, "tipo_documento", tipo)
		}
	}
	if dirty {
		p, err = upd.Save(ctx)
		if err != nil {
			r.logger.Error("failed to update person", "numero_documento", numero, "error", err)
			return nil, err
		}
	}

	r.logger.Debug("person resolved", "person_id", p.ID, "role", role, "updated", dirty)
	return utils.ToPerson(p), nil
}

func (r *personRepository) GetByDocumento(ctx context.Context, numeroDocumento string) (*entity.Person, error) {
	p, err := r.client.Person.Query().Where(person.NumeroDocumento(numeroDocumento)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToPerson(p), nil
}

func (r *personRepository) ensure(ctx context.Context, numero string) (*ent.Person, error) {
	p, err := r.client.Person.Query().Where(person.NumeroDocumento(numero)).Only(ctx)
	if err == nil {
		return p, nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up person", "numero_documento", numero, "error", err)
		return nil, err
	}

	p, err = r.client.Person.Create().SetNumeroDocumento(numero).Save(ctx)
	if err == nil {
		r.logger.Info("person created", "person_id", p.ID, "numero_documento", numero)
		return p, nil
	}
	if ent.IsConstraintError(err) {
		// concurrent create for the same national ID
		return r.client.Person.Query().Where(person.NumeroDocumento(numero)).Only(ctx)
	}
	r.logger.Error("failed to create person", "numero_documento", numero, "error", err)
	return nil, err
}
