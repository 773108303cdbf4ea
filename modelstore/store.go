// Package modelstore stores fitted model snapshots as immutable named
// artifacts, so a model fitted in one environment can be loaded in another.
//
// The Store interface is whole-artifact: snapshots are small (one row per
// canopy center) and are read eagerly, so there is no random-access surface.
// Backends: in-memory (tests), local directory, S3 and MinIO.
package modelstore

import (
	"bytes"
	"context"
	"os"

	"github.com/Sathyasri1/mahout/canopy"
	"github.com/Sathyasri1/mahout/persistence"
)

// ErrNotFound is returned when an artifact does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for storing immutable model artifacts.
type Store interface {
	// Put writes an artifact atomically, replacing any previous content.
	Put(ctx context.Context, name string, data []byte) error
	// Get reads an artifact in full.
	Get(ctx context.Context, name string) ([]byte, error)
	// Delete removes an artifact. Deleting a missing artifact is not an error.
	Delete(ctx context.Context, name string) error
	// List returns all artifact names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// SaveModel serializes a fitted model and stores it under name.
func SaveModel(ctx context.Context, s Store, name string, m *canopy.Model, compression persistence.CompressionType) error {
	var buf bytes.Buffer
	if err := persistence.WriteModel(&buf, m, compression); err != nil {
		return err
	}
	return s.Put(ctx, name, buf.Bytes())
}

// LoadModel fetches and deserializes the model stored under name.
func LoadModel(ctx context.Context, s Store, name string) (*canopy.Model, error) {
	data, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return persistence.ReadModel(bytes.NewReader(data))
}
