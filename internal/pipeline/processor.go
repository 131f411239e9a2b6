package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dfmora/car2data/constants"
	"github.com/dfmora/car2data/internal/extraction"
	"github.com/dfmora/car2data/internal/normalize"
	"github.com/dfmora/car2data/internal/repository"
	"github.com/dfmora/car2data/internal/storage"
)

// Processor runs one document through extract, normalize and classify,
// recording the outcome on the document row. Every exit path leaves the
// document in a terminal status (completed or error); callers only see
// an error when even that bookkeeping failed.
type Processor struct {
	logger    *slog.Logger
	docs      repository.DocumentRepository
	store     *storage.Store
	extractor extraction.Extractor
}

func NewProcessor(logger *slog.Logger, docs repository.DocumentRepository, store *storage.Store, extractor extraction.Extractor) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger, docs: docs, store: store, extractor: extractor}
}

func (p *Processor) ProcessDocument(ctx context.Context, documentID uuid.UUID) error {
	started := time.Now()

	doc, err := p.docs.MarkProcessing(ctx, documentID)
	if err != nil {
		p.logger.Error("processor.claim.failed", "document_id", documentID, "err", err)
		return err
	}

	data, err := p.store.ReadFile(doc.SourcePath)
	if err != nil {
		p.logger.Error("processor.read.failed", "document_id", documentID, "path", doc.SourcePath, "err", err)
		return p.fail(ctx, documentID, "reading stored document: "+err.Error())
	}

	raw, err := p.extractor.Extract(ctx, data)
	if err != nil {
		p.logger.Error("processor.extract.failed", "document_id", documentID, "err", err)
		return p.fail(ctx, documentID, err.Error())
	}

	canonical, diags := normalize.Normalize(raw)
	docType := constants.ClassifyDocType(canonical.TipoDocumento)
	p.logger.Info("processor.extract.ok",
		"document_id", documentID,
		"doc_type", docType,
		"aliased_keys", len(diags.AliasedKeys),
		"folded_fields", diags.FoldedCount,
	)

	payload, err := json.Marshal(canonical)
	if err != nil {
		return p.fail(ctx, documentID, "encoding extraction: "+err.Error())
	}

	if _, err := p.docs.MarkCompleted(ctx, documentID, payload, docType); err != nil {
		p.logger.Error("processor.complete.failed", "document_id", documentID, "err", err)
		return err
	}

	p.logger.Info("processor.document.ok",
		"document_id", documentID,
		"doc_type", docType,
		"elapsed_ms", time.Since(started).Milliseconds(),
	)
	return nil
}

// fail records the error on the document row; the recording error wins
// if that write fails too.
func (p *Processor) fail(ctx context.Context, documentID uuid.UUID, message string) error {
	if _, err := p.docs.MarkError(ctx, documentID, message); err != nil {
		return err
	}
	return nil
}
