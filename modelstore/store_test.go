package modelstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sathyasri1/mahout/canopy"
	"github.com/Sathyasri1/mahout/distance"
	"github.com/Sathyasri1/mahout/persistence"
	"github.com/Sathyasri1/mahout/vector"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()

	local, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	return map[string]Store{
		"memory": NewMemoryStore(),
		"local":  local,
	}
}

func TestStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put(ctx, "models/a.canopy", []byte("one")))

			got, err := s.Get(ctx, "models/a.canopy")
			require.NoError(t, err)
			assert.Equal(t, []byte("one"), got)

			// Put replaces.
			require.NoError(t, s.Put(ctx, "models/a.canopy", []byte("two")))
			got, err = s.Get(ctx, "models/a.canopy")
			require.NoError(t, err)
			assert.Equal(t, []byte("two"), got)

			require.NoError(t, s.Delete(ctx, "models/a.canopy"))
			_, err = s.Get(ctx, "models/a.canopy")
			assert.ErrorIs(t, err, ErrNotFound)

			// Deleting a missing artifact is not an error.
			assert.NoError(t, s.Delete(ctx, "models/a.canopy"))
		})
	}
}

func TestStore_List(t *testing.T) {
	ctx := context.Background()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put(ctx, "models/b.canopy", []byte("b")))
			require.NoError(t, s.Put(ctx, "models/a.canopy", []byte("a")))
			require.NoError(t, s.Put(ctx, "other/c.canopy", []byte("c")))

			names, err := s.List(ctx, "models/")
			require.NoError(t, err)
			assert.Equal(t, []string{"models/a.canopy", "models/b.canopy"}, names)

			all, err := s.List(ctx, "")
			require.NoError(t, err)
			assert.Len(t, all, 3)
		})
	}
}

func TestMemoryStore_DefensiveCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	data := []byte("payload")
	require.NoError(t, s.Put(ctx, "a", data))
	data[0] = 'X'

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)

	got[0] = 'Y'
	again, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), again)
}

func TestSaveLoadModel(t *testing.T) {
	ctx := context.Background()
	m := canopy.NewModel([]vector.Vector{
		vector.Dense{0, 0},
		vector.Dense{10, 10},
	}, distance.MetricEuclidean)

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, SaveModel(ctx, s, "prod/model.canopy", m, persistence.CompressionZSTD))

			got, err := LoadModel(ctx, s, "prod/model.canopy")
			require.NoError(t, err)
			assert.Equal(t, 2, got.NumCenters())
			assert.Equal(t, distance.MetricEuclidean, got.Metric())
			assert.Equal(t, vector.Dense{10, 10}, vector.ToDense(got.Centers()[1]))
		})
	}
}

func TestLoadModel_Missing(t *testing.T) {
	_, err := LoadModel(context.Background(), NewMemoryStore(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
