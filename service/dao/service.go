// Package dao defines the generic persistence contract used for run
// reports. Backends exist in-memory (tests, embedding) and on any viant/afs
// capable storage (local fs, cloud buckets).
package dao

import (
	"context"
)

// Service is a generic keyed store.
type Service[K comparable, T any] interface {
	Save(ctx context.Context, t *T) error

	Load(ctx context.Context, id K) (*T, error)

	Delete(ctx context.Context, id K) error

	List(ctx context.Context, parameters ...*Parameter) ([]*T, error)
}
