package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfmora/car2data/constants"
	"github.com/dfmora/car2data/internal/common"
	"github.com/dfmora/car2data/internal/entity"
	"github.com/dfmora/car2data/internal/extraction"
	"github.com/dfmora/car2data/internal/repository"
	"github.com/dfmora/car2data/internal/storage"
)

type fakeDocs struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*entity.Document
}

var _ repository.DocumentRepository = (*fakeDocs)(nil)

func newFakeDocs() *fakeDocs {
	return &fakeDocs{docs: map[uuid.UUID]*entity.Document{}}
}

func (f *fakeDocs) add(d *entity.Document) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[d.ID] = d
}

func (f *fakeDocs) Create(_ context.Context, req *repository.CreateDocumentRequest) (*entity.Document, error) {
	d := &entity.Document{
		ID:          uuid.New(),
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		SourcePath:  req.SourcePath,
		ContentHash: req.ContentHash,
		Status:      string(constants.DocumentStatusPending),
		UploadedAt:  time.Now(),
	}
	f.add(d)
	return d, nil
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok {
		return nil, errors.New("document not found")
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDocs) ListByOwner(context.Context, uuid.UUID) ([]*entity.Document, error) {
	return nil, nil
}

func (f *fakeDocs) MarkProcessing(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok {
		return nil, errors.New("document not found")
	}
	d.Status = string(constants.DocumentStatusProcessing)
	d.ProcessedAt = nil
	d.ExtractionError = nil
	d.ExtractedJSON = nil
	cp := *d
	return &cp, nil
}

func (f *fakeDocs) MarkCompleted(_ context.Context, id uuid.UUID, payload json.RawMessage, docType string) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.docs[id]
	now := time.Now()
	d.Status = string(constants.DocumentStatusCompleted)
	d.DocType = docType
	d.ExtractedJSON = payload
	d.ProcessedAt = &now
	d.ExtractionError = nil
	cp := *d
	return &cp, nil
}

func (f *fakeDocs) MarkError(_ context.Context, id uuid.UUID, message string) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.docs[id]
	now := time.Now()
	d.Status = string(constants.DocumentStatusError)
	d.ExtractionError = &message
	d.ProcessedAt = &now
	cp := *d
	return &cp, nil
}

type fakeExtractor struct {
	raw extraction.RawExtraction
	err error
}

func (f *fakeExtractor) Extract(context.Context, []byte) (extraction.RawExtraction, error) {
	return f.raw, f.err
}

func (f *fakeExtractor) TestConnection(context.Context) error { return f.err }

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewStore(dir+"/uploads", dir+"/generated", slog.Default())
	require.NoError(t, err)
	return store
}

func seedDocument(t *testing.T, docs *fakeDocs, store *storage.Store) *entity.Document {
	t.Helper()
	ownerID := uuid.New()
	path, hash, err := store.SaveUpload(ownerID, "tarjeta.pdf", []byte("%PDF-1.4 test"))
	require.NoError(t, err)
	doc, err := docs.Create(context.Background(), &repository.CreateDocumentRequest{
		OwnerID:     ownerID,
		Name:        "tarjeta.pdf",
		SourcePath:  path,
		ContentHash: hash,
	})
	require.NoError(t, err)
	return doc
}

func TestProcessDocumentCompletes(t *testing.T) {
	docs := newFakeDocs()
	store := newTestStore(t)
	doc := seedDocument(t, docs, store)

	ext := &fakeExtractor{raw: extraction.RawExtraction{
		"tipo_documento": "Licencia de Tránsito - Matrícula",
		"vehiculo": map[string]any{
			"placa": "ABC123",
			"marca": "RENAULT",
		},
		"propietario": map[string]any{
			"nombre":         "GARCIA LOPEZ MARIA",
			"identificacion": "52123456",
		},
	}}

	p := NewProcessor(slog.Default(), docs, store, ext)
	require.NoError(t, p.ProcessDocument(context.Background(), doc.ID))

	got, err := docs.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocumentStatusCompleted), got.Status)
	assert.Equal(t, constants.DocTypeRegistration, got.DocType)
	require.NotNil(t, got.ProcessedAt)
	assert.Nil(t, got.ExtractionError)

	var canonical extraction.CanonicalExtraction
	require.NoError(t, json.Unmarshal(got.ExtractedJSON, &canonical))
	assert.Equal(t, "ABC123", canonical.Vehiculo.Placa)
	assert.Equal(t, "52123456", canonical.Propietario.Identificacion)
}

func TestProcessDocumentUnparseableOutputStillCompletes(t *testing.T) {
	docs := newFakeDocs()
	store := newTestStore(t)
	doc := seedDocument(t, docs, store)

	// the extractor substitutes the placeholder structure when the model
	// returns no usable JSON; the pipeline must treat that as success
	ext := &fakeExtractor{raw: extraction.FallbackExtraction("lo siento, no puedo procesar este documento")}

	p := NewProcessor(slog.Default(), docs, store, ext)
	require.NoError(t, p.ProcessDocument(context.Background(), doc.ID))

	got, err := docs.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocumentStatusCompleted), got.Status)
	assert.Equal(t, constants.DocTypeUnknown, got.DocType)

	var canonical extraction.CanonicalExtraction
	require.NoError(t, json.Unmarshal(got.ExtractedJSON, &canonical))
	assert.Empty(t, canonical.Vehiculo.Placa)
	assert.Empty(t, canonical.Propietario.Nombre)
	assert.NotEmpty(t, canonical.Observaciones)
}

func TestProcessDocumentTransportFailureMarksError(t *testing.T) {
	docs := newFakeDocs()
	store := newTestStore(t)
	doc := seedDocument(t, docs, store)

	ext := &fakeExtractor{err: common.NewAppError("EXTRACT_TRANSPORT", "connection refused", common.ErrTransport)}

	p := NewProcessor(slog.Default(), docs, store, ext)
	require.NoError(t, p.ProcessDocument(context.Background(), doc.ID))

	got, err := docs.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocumentStatusError), got.Status)
	require.NotNil(t, got.ExtractionError)
	assert.Contains(t, *got.ExtractionError, "connection refused")
}

func TestProcessDocumentMissingFileMarksError(t *testing.T) {
	docs := newFakeDocs()
	store := newTestStore(t)
	doc := seedDocument(t, docs, store)
	require.NoError(t, store.RemoveFile(doc.SourcePath))

	p := NewProcessor(slog.Default(), docs, store, &fakeExtractor{})
	require.NoError(t, p.ProcessDocument(context.Background(), doc.ID))

	got, err := docs.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocumentStatusError), got.Status)
	require.NotNil(t, got.ExtractionError)
}
