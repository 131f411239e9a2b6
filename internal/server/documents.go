package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dfmora/car2data/constants"
	"github.com/dfmora/car2data/gen/ent"
	car2datapb "github.com/dfmora/car2data/gen/proto/car2data/v1"
	"github.com/dfmora/car2data/internal/async"
	"github.com/dfmora/car2data/internal/entity"
	"github.com/dfmora/car2data/internal/extraction"
	"github.com/dfmora/car2data/internal/repository"
	"github.com/dfmora/car2data/internal/storage"
)

type DocumentsService struct {
	car2datapb.UnimplementedDocumentsServiceServer
	docs      repository.DocumentRepository
	store     *storage.Store
	queue     async.Queue
	extractor extraction.Extractor
	logger    *slog.Logger
}

func NewDocumentsService(docs repository.DocumentRepository, store *storage.Store, queue async.Queue, extractor extraction.Extractor, logger *slog.Logger) *DocumentsService {
	return &DocumentsService{
		docs:      docs,
		store:     store,
		queue:     queue,
		extractor: extractor,
		logger:    logger,
	}
}

// UploadDocument stores the PDF, registers it and queues extraction in
// the background. The response returns immediately with the pending
// document.
func (s *DocumentsService) UploadDocument(ctx context.Context, req *car2datapb.UploadDocumentRequest) (*car2datapb.UploadDocumentResponse, error) {
	ownerID, err := parseUUID(req.GetOwnerId(), "owner_id")
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	path, hash, err := s.store.SaveUpload(ownerID, name, req.GetContent())
	if err != nil {
		s.logger.Error("failed to store upload", "owner_id", ownerID, "name", name, "error", err)
		return nil, status.Error(codes.Internal, "failed to store document")
	}

	doc, err := s.docs.Create(ctx, &repository.CreateDocumentRequest{
		OwnerID:     ownerID,
		Name:        name,
		SourcePath:  path,
		ContentHash: hash,
	})
	if err != nil {
		s.logger.Error("failed to register document", "owner_id", ownerID, "error", err)
		return nil, status.Error(codes.Internal, "failed to register document")
	}

	// only a fresh registration kicks off extraction; a re-upload of the
	// same bytes returns the existing row in whatever state it is in
	if doc.Status == string(constants.DocumentStatusPending) {
		_ = s.queue.Enqueue(ctx, async.Job{DocumentID: doc.ID, SubmittedAt: time.Now()})
	}

	return &car2datapb.UploadDocumentResponse{Document: toDocumentPB(doc)}, nil
}

func (s *DocumentsService) GetDocument(ctx context.Context, req *car2datapb.GetDocumentRequest) (*car2datapb.GetDocumentResponse, error) {
	doc, err := s.getDocument(ctx, req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	return &car2datapb.GetDocumentResponse{Document: toDocumentPB(doc)}, nil
}

func (s *DocumentsService) GetDocumentStatus(ctx context.Context, req *car2datapb.GetDocumentStatusRequest) (*car2datapb.GetDocumentStatusResponse, error) {
	doc, err := s.getDocument(ctx, req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	resp := &car2datapb.GetDocumentStatusResponse{Status: doc.Status}
	if doc.ExtractionError != nil {
		resp.ExtractionError = *doc.ExtractionError
	}
	return resp, nil
}

// ReprocessDocument resets the document synchronously so the caller
// observes "processing" right away, then queues the extraction.
func (s *DocumentsService) ReprocessDocument(ctx context.Context, req *car2datapb.ReprocessDocumentRequest) (*car2datapb.ReprocessDocumentResponse, error) {
	documentID, err := parseUUID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}

	doc, err := s.docs.MarkProcessing(ctx, documentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "document not found")
		}
		s.logger.Error("failed to reset document", "document_id", documentID, "error", err)
		return nil, status.Error(codes.Internal, "failed to reset document")
	}

	_ = s.queue.Enqueue(ctx, async.Job{DocumentID: documentID, Reprocess: true, SubmittedAt: time.Now()})
	s.logger.Info("document queued for reprocessing", "document_id", documentID)

	return &car2datapb.ReprocessDocumentResponse{Document: toDocumentPB(doc)}, nil
}

func (s *DocumentsService) ListDocuments(ctx context.Context, req *car2datapb.ListDocumentsRequest) (*car2datapb.ListDocumentsResponse, error) {
	ownerID, err := parseUUID(req.GetOwnerId(), "owner_id")
	if err != nil {
		return nil, err
	}

	docs, err := s.docs.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("failed to list documents", "owner_id", ownerID, "error", err)
		return nil, status.Error(codes.Internal, "failed to list documents")
	}

	out := make([]*car2datapb.Document, len(docs))
	for i, d := range docs {
		out[i] = toDocumentPB(d)
	}
	return &car2datapb.ListDocumentsResponse{Documents: out}, nil
}

func (s *DocumentsService) TestExtractor(ctx context.Context, _ *car2datapb.TestExtractorRequest) (*car2datapb.TestExtractorResponse, error) {
	if err := s.extractor.TestConnection(ctx); err != nil {
		s.logger.Warn("extractor connectivity check failed", "error", err)
		return &car2datapb.TestExtractorResponse{Ok: false, Message: err.Error()}, nil
	}
	return &car2datapb.TestExtractorResponse{Ok: true}, nil
}

func (s *DocumentsService) getDocument(ctx context.Context, rawID string) (*entity.Document, error) {
	documentID, err := parseUUID(rawID, "document_id")
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "document not found")
		}
		s.logger.Error("failed to get document", "document_id", documentID, "error", err)
		return nil, status.Error(codes.Internal, "failed to get document")
	}
	return doc, nil
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}

func toDocumentPB(d *entity.Document) *car2datapb.Document {
	pb := &car2datapb.Document{
		Id:         d.ID.String(),
		OwnerId:    d.OwnerID.String(),
		Name:       d.Name,
		Status:     d.Status,
		DocType:    d.DocType,
		UploadedAt: d.UploadedAt.UTC().Format(time.RFC3339),
	}
	if d.ProcessedAt != nil {
		pb.ProcessedAt = d.ProcessedAt.UTC().Format(time.RFC3339)
	}
	if d.ExtractionError != nil {
		pb.ExtractionError = *d.ExtractionError
	}
	if len(d.ExtractedJSON) > 0 {
		pb.ExtractedJson = string(d.ExtractedJSON)
	}
	return pb
}
