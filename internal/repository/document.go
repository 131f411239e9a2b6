package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dfmora/car2data/constants"
	"github.com/dfmora/car2data/gen/ent"
	"github.com/dfmora/car2data/gen/ent/document"
	"github.com/dfmora/car2data/internal/entity"
	"github.com/dfmora/car2data/internal/utils"
)

// CreateDocumentRequest wraps parameters for registering an uploaded document.
type CreateDocumentRequest struct {
	OwnerID     uuid.UUID
	Name        string
	SourcePath  string
	ContentHash []byte
}

type DocumentRepository interface {
	Create(ctx context.Context, request *CreateDocumentRequest) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Document, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, payload json.RawMessage, docType string) (*entity.Document, error)
	MarkError(ctx context.Context, id uuid.UUID, message string) (*entity.Document, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

// Create registers a document, returning the existing row when the same
// owner already uploaded identical content.
func (r *documentRepository) Create(ctx context.Context, request *CreateDocumentRequest) (*entity.Document, error) {
	existing, err := r.client.Document.Query().
		Where(
			document.OwnerID(request.OwnerID),
			document.ContentHash(request.ContentHash),
		).
		Only(ctx)
	if err == nil {
		r.logger.Info("document already registered", "document_id", existing.ID, "owner_id", request.OwnerID)
		return utils.ToDocument(existing), nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up document by hash", "owner_id", request.OwnerID, "error", err)
		return nil, err
	}

	doc, err := r.client.Document.Create().
		SetOwnerID(request.OwnerID).
		SetName(request.Name).
		SetSourcePath(request.SourcePath).
		SetContentHash(request.ContentHash).
		SetStatus(string(constants.DocumentStatusPending)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// lost a race against a concurrent upload of the same bytes
			existing, lerr := r.client.Document.Query().
				Where(
					document.OwnerID(request.OwnerID),
					document.ContentHash(request.ContentHash),
				).
				Only(ctx)
			if lerr == nil {
				return utils.ToDocument(existing), nil
			}
		}
		r.logger.Error("failed to create document", "owner_id", request.OwnerID, "error", err)
		return nil, err
	}

	r.logger.Info("document registered", "document_id", doc.ID, "owner_id", request.OwnerID, "name", request.Name)
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, err := r.client.Document.Get(ctx, id)
	if err != nil {
		if !ent.IsNotFound(err) {
			r.logger.Error("failed to get document", "document_id", id, "error", err)
		}
		return nil, err
	}
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Document, error) {
	docs, err := r.client.Document.Query().
		Where(document.OwnerID(ownerID)).
		Order(ent.Desc(document.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "owner_id", ownerID, "error", err)
		return nil, err
	}

	result := make([]*entity.Document, len(docs))
	for i, d := range docs {
		result[i] = utils.ToDocument(d)
	}
	return result, nil
}

// MarkProcessing clears any previous outcome so a reprocess starts clean.
func (r *documentRepository) MarkProcessing(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, err := r.client.Document.UpdateOneID(id).
		SetStatus(string(constants.DocumentStatusProcessing)).
		ClearProcessedAt().
		ClearExtractionError().
		ClearExtractedJSON().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark document processing", "document_id", id, "error", err)
		return nil, err
	}
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) MarkCompleted(ctx context.Context, id uuid.UUID, payload json.RawMessage, docType string) (*entity.Document, error) {
	doc, err := r.client.Document.UpdateOneID(id).
		SetStatus(string(constants.DocumentStatusCompleted)).
		SetDocType(docType).
		SetExtractedJSON(payload).
		SetProcessedAt(time.Now().UTC()).
		ClearExtractionError().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark document completed", "document_id", id, "error", err)
		return nil, err
	}
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) MarkError(ctx context.Context, id uuid.UUID, message string) (*entity.Document, error) {
	doc, err := r.client.Document.UpdateOneID(id).
		SetStatus(string(constants.DocumentStatusError)).
		SetExtractionError(message).
		SetProcessedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark document errored", "document_id", id, "error", err)
		return nil, err
	}
	return utils.ToDocument(doc), nil
}
