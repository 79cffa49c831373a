package main

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"
)

// CatalogServiceProvider defines the operations exposed to the catalog CLI.
type CatalogServiceProvider interface {
	Load(ctx context.Context) (int, error)
	Save(ctx context.Context) error
	Add(ctx context.Context, book Book) error
	Find(ctx context.Context, book Book) (int, bool)
	At(ctx context.Context, index int) (Book, error)
	Merge(ctx context.Context, path string) (int, error)
	Render(w io.Writer) error
	Size() int
	Capacity() int
}

// CatalogService holds the in-memory book list and its text-file storage.
type CatalogService struct {
	logger  *zap.Logger
	config  *Config
	clock   Clocker
	list    *BookList
	storage CatalogStorage
}

func NewCatalogService(logger *zap.Logger, config *Config, clock Clocker, storage CatalogStorage) CatalogServiceProvider {
	return &CatalogService{
		logger:  logger,
		config:  config,
		clock:   clock,
		list:    NewBookListWithEpsilon(config.Catalog.Capacity, config.Catalog.PriceEpsilon),
		storage: storage,
	}
}

// Load replaces the list content with the records of the catalog file.
func (cs *CatalogService) Load(ctx context.Context) (int, error) {
	return cs.storage.Load(ctx, cs.list)
}

// Save rewrites the catalog file from the list content.
func (cs *CatalogService) Save(ctx context.Context) error {
	return cs.storage.Save(ctx, cs.list)
}

// Add appends one record to the list.
func (cs *CatalogService) Add(_ context.Context, book Book) error {
	if err := cs.list.Add(book); err != nil {
		cs.logger.Warn("service: could not add book",
			zap.String("isbn", book.ISBN()),
			zap.Error(err),
		)
		return err
	}
	cs.logger.Info("service: book added",
		zap.String("isbn", book.ISBN()),
		zap.Int("position", cs.list.Size()-1),
	)
	return nil
}

// Find returns the position of the first record equal to book and whether
// one was found. Without a match the position is the list size, the
// not-found sentinel.
func (cs *CatalogService) Find(_ context.Context, book Book) (int, bool) {
	index := cs.list.Find(book)
	return index, index < cs.list.Size()
}

// At returns a copy of the record at the given position.
func (cs *CatalogService) At(_ context.Context, index int) (Book, error) {
	return cs.list.At(index)
}

// Merge reads the named catalog file into a second list and concatenates
// it at the end of the current one, reporting how many records were
// appended. Records which do not fit are dropped at capacity with
// ErrCapacityReached.
func (cs *CatalogService) Merge(_ context.Context, path string) (int, error) {
	other := NewBookListWithEpsilon(cs.list.Capacity(), cs.config.Catalog.PriceEpsilon)
	_, err := other.LoadFile(path)
	if err != nil && !errors.Is(err, ErrCapacityReached) {
		return 0, err
	}

	before := cs.list.Size()
	_, aerr := cs.list.Append(other)
	appended := cs.list.Size() - before
	cs.logger.Info("service: catalogs merged",
		zap.String("path", path),
		zap.Int("appended", appended),
		zap.Int("dropped", other.Size()-appended),
	)
	return appended, aerr
}

// Render writes the display form of the list.
func (cs *CatalogService) Render(w io.Writer) error {
	return cs.list.Encode(w)
}

// Size returns the number of records currently held.
func (cs *CatalogService) Size() int {
	return cs.list.Size()
}

// Capacity returns the fixed capacity of the list.
func (cs *CatalogService) Capacity() int {
	return cs.list.Capacity()
}
