// Package localstore provides the durable key-value storage backing the
// session layer, the desktop counterpart of the browser's localStorage.
package localstore

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
