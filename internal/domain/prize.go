package domain

import (
	"context"
	"errors"
)

// Prize is one awardable entry from the catalog.
type Prize struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog gateway failures, normalized from the upstream result codes.
// An empty catalog is a valid success state, not one of these.
var (
	ErrCatalogAuth          = errors.New("catalog: authentication failed")
	ErrCatalogBadParams     = errors.New("catalog: bad parameters")
	ErrCatalogInvalidAction = errors.New("catalog: unsupported action")
)

// PrizeSource fetches the current list of awardable prizes.
type PrizeSource interface {
	FetchPrizes(ctx context.Context) ([]Prize, error)
}
