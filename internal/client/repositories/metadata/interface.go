package metadata

import (
	"context"
)

// Repository stores opaque values under string keys.
//
// Get reports found=false (and a nil error) for a missing key. SetMany
// writes all pairs or none.
type Repository interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, pairs map[string][]byte) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
