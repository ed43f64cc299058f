package service

import (
	"context"

	"blog-essentials/internal/client"
	"blog-essentials/internal/store"
)

// StateStore is the part of *store.Store the services depend on.
type StateStore interface {
	Dispatch(action store.Action)
	GetState() store.State
	View(fn func(store.State))
}

// fetchList GETs path and decodes a JSON array of T.
func fetchList[T any](ctx context.Context, c client.Client, path string) ([]T, error) {
	resp, err := c.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
