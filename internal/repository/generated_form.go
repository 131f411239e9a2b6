package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dfmora/car2data/gen/ent"
	"github.com/dfmora/car2data/gen/ent/generatedform"
	"github.com/dfmora/car2data/internal/entity"
	"github.com/dfmora/car2data/internal/utils"
)

// CreateGeneratedFormRequest wraps parameters for registering a rendered form.
type CreateGeneratedFormRequest struct {
	OwnerID    uuid.UUID
	DocumentID uuid.UUID
	FormType   string
	OutputPath string
}

type GeneratedFormRepository interface {
	Create(ctx context.Context, request *CreateGeneratedFormRequest) (*entity.GeneratedForm, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.GeneratedForm, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.GeneratedForm, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type generatedFormRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewGeneratedFormRepository(client *ent.Client, logger *slog.Logger) GeneratedFormRepository {
	return &generatedFormRepository{
		client: client,
		logger: logger,
	}
}

func (r *generatedFormRepository) Create(ctx context.Context, request *CreateGeneratedFormRequest) (*entity.GeneratedForm, error) {
	gf, err := r.client.GeneratedForm.Create().
		SetOwnerID(request.OwnerID).
		SetDocumentID(request.DocumentID).
		SetFormType(request.FormType).
		SetOutputPath(request.OutputPath).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to register generated form",
			"document_id", request.DocumentID, "form_type", request.FormType, "error", err)
		return nil, err
	}

	r.logger.Info("generated form registered",
		"form_id", gf.ID, "document_id", request.DocumentID, "form_type", request.FormType)
	return utils.ToGeneratedForm(gf), nil
}

func (r *generatedFormRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.GeneratedForm, error) {
	gf, err := r.client.GeneratedForm.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToGeneratedForm(gf), nil
}

func (r *generatedFormRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.GeneratedForm, error) {
	forms, err := r.client.GeneratedForm.Query().
		Where(generatedform.OwnerID(ownerID)).
		Order(ent.Desc(generatedform.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list generated forms", "owner_id", ownerID, "error", err)
		return nil, err
	}

	result := make([]*entity.GeneratedForm, len(forms))
	for i, gf := range forms {
		result[i] = utils.ToGeneratedForm(gf)
	}
	return result, nil
}

func (r *generatedFormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.GeneratedForm.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			r.logger.Error("failed to delete generated form", "form_id", id, "error", err)
		}
		return err
	}
	r.logger.Info("generated form deleted", "form_id", id)
	return nil
}
