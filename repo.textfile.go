package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

type textFileCatalogStorage struct {
	logger *zap.Logger
	config *CatalogConfig
}

// NewTextFileCatalogStorage provides a catalog storage backed by the flat
// text file named in the configuration.
func NewTextFileCatalogStorage(logger *zap.Logger, config *CatalogConfig) CatalogStorage {
	return &textFileCatalogStorage{
		logger: logger,
		config: config,
	}
}

// Load fills the list with the records of the catalog file, stopping at
// end of file or at the list capacity. A missing file leaves the list
// empty, which stands for a catalog not written yet.
func (ts *textFileCatalogStorage) Load(_ context.Context, list *BookList) (int, error) {
	n, err := list.LoadFile(ts.config.FilePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		ts.logger.Info("storage: no catalog file yet", zap.String("path", ts.config.FilePath))
	case errors.Is(err, ErrCapacityReached):
		ts.logger.Warn("storage: catalog file holds more records than capacity",
			zap.String("path", ts.config.FilePath),
			zap.Int("kept", n),
		)
	case err != nil:
		ts.logger.Error("storage: failed to load catalog file",
			zap.String("path", ts.config.FilePath),
			zap.Error(err),
		)
	default:
		ts.logger.Info("storage: catalog file loaded",
			zap.String("path", ts.config.FilePath),
			zap.Int("records", n),
		)
	}
	return n, err
}

// Save rewrites the catalog file with one record per line, in the exact
// text format Load parses back.
func (ts *textFileCatalogStorage) Save(_ context.Context, list *BookList) (err error) {
	file, err := os.OpenFile(ts.config.FilePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create catalog file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for i := 0; i < list.Size(); i++ {
		book, aerr := list.At(i)
		if aerr != nil {
			return aerr
		}
		if err = EncodeBook(file, book); err != nil {
			return err
		}
		if _, err = io.WriteString(file, "\n"); err != nil {
			return err
		}
	}
	ts.logger.Info("storage: catalog file saved",
		zap.String("path", ts.config.FilePath),
		zap.Int("records", list.Size()),
	)
	return nil
}
