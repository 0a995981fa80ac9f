package queries

import (
	"context"
	"strings"
)

const productSearchLimit = 10

type ProductQueries interface {
	Search(ctx context.Context, q string) ([]*ProductHit, error)
}

type ProductReadStore interface {
	Search(ctx context.Context, q string, limit int32) ([]*ProductHit, error)
}

type productQueriesImpl struct {
	store ProductReadStore
}

func NewProductQueries(store ProductReadStore) ProductQueries {
	return &productQueriesImpl{store: store}
}

func (p *productQueriesImpl) Search(ctx context.Context, q string) ([]*ProductHit, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []*ProductHit{}, nil
	}
	return p.store.Search(ctx, q, productSearchLimit)
}
