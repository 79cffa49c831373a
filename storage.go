package main

import "context"

// CatalogStorage defines the operations a catalog persistence backend offers.
// The only supported backend is flat delimited text.
type CatalogStorage interface {
	Load(ctx context.Context, list *BookList) (int, error)
	Save(ctx context.Context, list *BookList) error
}
