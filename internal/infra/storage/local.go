package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"festivo/internal/pkg/config"
	"festivo/internal/pkg/errs"
)

// FileStore is the storage collaborator for receipt files: store, retrieve,
// and delete by path.
type FileStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (path string, err error)
	Exists(ctx context.Context, path string) (bool, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Remove(ctx context.Context, path string) error
}

// LocalFileStore stores files on the local filesystem under a configured root.
// Stored names are random; the original name survives only in the database.
type LocalFileStore struct {
	root string
}

func NewLocalFileStore(cfg config.StorageConfig) (*LocalFileStore, error) {
	if err := os.MkdirAll(cfg.ReceiptDir, 0o750); err != nil {
		return nil, errs.Wrap(err, "failed to create storage directory")
	}
	return &LocalFileStore{root: cfg.ReceiptDir}, nil
}

func (s *LocalFileStore) Save(_ context.Context, originalName string, r io.Reader) (string, error) {
	name, err := generateFileName(filepath.Ext(originalName))
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.root, name)
	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", errs.Wrap(err, "failed to create receipt file")
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(fullPath)
		return "", errs.Wrap(err, "failed to write receipt file")
	}

	return name, nil
}

func (s *LocalFileStore) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.root, filepath.Base(path)))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errs.Wrap(err, "failed to stat receipt file")
	}
	return true, nil
}

func (s *LocalFileStore) Open(_ context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.root, filepath.Base(path)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Mark(err, errs.ErrReceiptFileMissing)
		}
		return nil, errs.Wrap(err, "failed to open receipt file")
	}
	return f, nil
}

func (s *LocalFileStore) Remove(_ context.Context, path string) error {
	err := os.Remove(filepath.Join(s.root, filepath.Base(path)))
	if err != nil && !os.IsNotExist(err) {
		return errs.Wrap(err, "failed to remove receipt file")
	}
	return nil
}

// generateFileName builds a collision-resistant name, keeping only the
// original extension.
func generateFileName(ext string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to generate file name")
	}
	return fmt.Sprintf("%s%s", hex.EncodeToString(buf), ext), nil
}
