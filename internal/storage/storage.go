package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store lays files out on local disk: one directory per owner for
// uploads, a flat directory for rendered forms.
type Store struct {
	uploadsDir   string
	generatedDir string
	logger       *slog.Logger
}

func NewStore(uploadsDir, generatedDir string, logger *slog.Logger) (*Store, error) {
	for _, dir := range []string{uploadsDir, generatedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating storage directory %s: %w", dir, err)
		}
	}
	return &Store{
		uploadsDir:   uploadsDir,
		generatedDir: generatedDir,
		logger:       logger,
	}, nil
}

// SaveUpload writes the uploaded bytes under the owner's directory,
// named by content hash so re-uploads of the same bytes collapse onto
// one file. Returns the stored path and the hash.
func (s *Store) SaveUpload(ownerID uuid.UUID, name string, data []byte) (string, []byte, error) {
	sum := sha256.Sum256(data)
	hash := sum[:]

	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		ext = ".pdf"
	}
	dir := filepath.Join(s.uploadsDir, ownerID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", nil, fmt.Errorf("creating upload directory: %w", err)
	}

	path := filepath.Join(dir, hex.EncodeToString(hash)+ext)
	if _, err := os.Stat(path); err == nil {
		s.logger.Debug("upload already stored", "path", path)
		return path, hash, nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", nil, fmt.Errorf("writing upload: %w", err)
	}

	s.logger.Info("upload stored", "path", path, "size_bytes", len(data))
	return path, hash, nil
}

// GeneratedFormPath returns a fresh output path for a rendered form,
// named {form_type}_{document_id}_{timestamp}.pdf.
func (s *Store) GeneratedFormPath(formType string, documentID uuid.UUID) string {
	ts := time.Now().Format("20060102_150405")
	return filepath.Join(s.generatedDir, fmt.Sprintf("%s_%s_%s.pdf", formType, documentID, ts))
}

func (s *Store) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// RemoveFile deletes a stored file, tolerating files already gone.
func (s *Store) RemoveFile(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		s.logger.Error("failed to remove file", "path", path, "error", err)
		return err
	}
	return nil
}
