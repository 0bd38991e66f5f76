package storage

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"flosscast.app/internal/ports"
	"flosscast.app/pkg/errors"
)

// CacheFileName is the name of the cache document inside a directory.
const CacheFileName = "cache.json"

var emptyDocument = []byte("{}")

// FileDocumentStore keeps the cache document in <dir>/cache.json. Writes go
// to a temporary file in the same directory that is synced and renamed over
// the document, so readers never observe a partial write.
type FileDocumentStore struct {
	logger ports.Logger
}

// NewFileDocumentStore creates a file backed document store
func NewFileDocumentStore(logger ports.Logger) *FileDocumentStore {
	return &FileDocumentStore{logger: logger}
}

// Path returns the location of the document of dir.
func (s *FileDocumentStore) Path(dir string) string {
	return filepath.Join(dir, CacheFileName)
}

func (s *FileDocumentStore) Load(ctx context.Context, dir string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path(dir)
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.NewStorageError("failed to read cache document", err)
	}

	created, err := s.create(dir)
	if err != nil {
		return nil, err
	}
	if !created {
		// Another writer created it first.
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.NewStorageError("failed to read cache document", err)
		}
		return data, nil
	}

	s.logger.Info("Created empty forecast cache document", ports.F("path", path))
	return append([]byte(nil), emptyDocument...), nil
}

func (s *FileDocumentStore) Save(ctx context.Context, dir string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewStorageError("failed to create cache directory", err)
	}

	tmp, err := s.writeTemp(dir, data)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, s.Path(dir)); err != nil {
		s.removeTemp(tmp)
		return errors.NewStorageError("failed to replace cache document", err)
	}
	return nil
}

func (s *FileDocumentStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *FileDocumentStore) Name() string {
	return "file"
}

// create writes an empty document unless one exists. It reports false when
// the document appeared in the meantime.
func (s *FileDocumentStore) create(dir string) (bool, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, errors.NewStorageError("failed to create cache directory", err)
	}

	tmp, err := s.writeTemp(dir, emptyDocument)
	if err != nil {
		return false, err
	}
	defer s.removeTemp(tmp)

	if err := os.Link(tmp, s.Path(dir)); err != nil {
		if stderrors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, errors.NewStorageError("failed to create cache document", err)
	}
	return true, nil
}

func (s *FileDocumentStore) writeTemp(dir string, data []byte) (string, error) {
	f, err := os.CreateTemp(dir, "."+CacheFileName+".*.tmp")
	if err != nil {
		return "", errors.NewStorageError("failed to create temporary cache document", err)
	}
	name := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		s.removeTemp(name)
		return "", errors.NewStorageError("failed to write temporary cache document", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		s.removeTemp(name)
		return "", errors.NewStorageError("failed to sync temporary cache document", err)
	}
	if err := f.Close(); err != nil {
		s.removeTemp(name)
		return "", errors.NewStorageError("failed to close temporary cache document", err)
	}
	return name, nil
}

func (s *FileDocumentStore) removeTemp(name string) {
	if err := os.Remove(name); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("Failed to remove temporary cache document", ports.F("path", name), ports.F("error", err))
	}
}
