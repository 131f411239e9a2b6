package storage

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "uploads"), filepath.Join(dir, "generated"), slog.Default())
	require.NoError(t, err)
	return s
}

func TestSaveUploadDeduplicatesIdenticalContent(t *testing.T) {
	s := newStore(t)
	ownerID := uuid.New()
	content := []byte("%PDF-1.4 contenido")

	path1, hash1, err := s.SaveUpload(ownerID, "tarjeta.pdf", content)
	require.NoError(t, err)
	path2, hash2, err := s.SaveUpload(ownerID, "misma_tarjeta.pdf", content)
	require.NoError(t, err)

	assert.Equal(t, path1, path2)
	assert.Equal(t, hash1, hash2)

	stored, err := s.ReadFile(path1)
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestSaveUploadSeparatesOwners(t *testing.T) {
	s := newStore(t)
	content := []byte("%PDF-1.4 contenido")

	path1, _, err := s.SaveUpload(uuid.New(), "a.pdf", content)
	require.NoError(t, err)
	path2, _, err := s.SaveUpload(uuid.New(), "a.pdf", content)
	require.NoError(t, err)

	assert.NotEqual(t, path1, path2)
}

func TestGeneratedFormPathPattern(t *testing.T) {
	s := newStore(t)
	documentID := uuid.New()

	path := s.GeneratedFormPath("contrato_mandato", documentID)
	base := filepath.Base(path)

	re := regexp.MustCompile(`^contrato_mandato_` + documentID.String() + `_\d{8}_\d{6}\.pdf$`)
	assert.Regexp(t, re, base)
}

func TestRemoveFileToleratesMissing(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.RemoveFile(filepath.Join(t.TempDir(), "gone.pdf")))

	path, _, err := s.SaveUpload(uuid.New(), "b.pdf", []byte("x"))
	require.NoError(t, err)
	require.NoError(t, s.RemoveFile(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
