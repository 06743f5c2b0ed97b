package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/panelpress/panelpress/pkg/migrations"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

type document struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestKV(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips a value", func(t *testing.T) {
		kv := NewKV(newTestDB(t))

		require.NoError(t, kv.Save(ctx, "doc", document{Name: "panels", Count: 3}))

		out := document{}
		found, err := kv.Load(ctx, "doc", &out)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, document{Name: "panels", Count: 3}, out)
	})

	t.Run("overwrites on save", func(t *testing.T) {
		kv := NewKV(newTestDB(t))

		require.NoError(t, kv.Save(ctx, "doc", document{Name: "panels", Count: 3}))
		require.NoError(t, kv.Save(ctx, "doc", document{Name: "panels", Count: 7}))

		out := document{}
		found, err := kv.Load(ctx, "doc", &out)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 7, out.Count)
	})

	t.Run("reports a missing key", func(t *testing.T) {
		kv := NewKV(newTestDB(t))

		out := document{}
		found, err := kv.Load(ctx, "missing", &out)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("treats a corrupt payload as no data", func(t *testing.T) {
		db := newTestDB(t)
		kv := NewKV(db)

		_, err := db.NewInsert().
			Model(&entry{Key: "doc", Value: "{not json", UpdatedAt: time.Now()}).
			Exec(ctx)
		require.NoError(t, err)

		out := document{}
		found, err := kv.Load(ctx, "doc", &out)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("deletes a key", func(t *testing.T) {
		kv := NewKV(newTestDB(t))

		require.NoError(t, kv.Save(ctx, "doc", document{Name: "panels"}))
		require.NoError(t, kv.Delete(ctx, "doc"))

		out := document{}
		found, err := kv.Load(ctx, "doc", &out)
		require.NoError(t, err)
		assert.False(t, found)

		// Deleting again is a no-op.
		require.NoError(t, kv.Delete(ctx, "doc"))
	})
}

func TestMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips a value", func(t *testing.T) {
		mem := NewMemory()

		require.NoError(t, mem.Save(ctx, "doc", document{Name: "panels", Count: 3}))

		out := document{}
		found, err := mem.Load(ctx, "doc", &out)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, document{Name: "panels", Count: 3}, out)
	})

	t.Run("treats a corrupt payload as no data", func(t *testing.T) {
		mem := NewMemory()
		mem.SetRaw("doc", "{not json")

		out := document{}
		found, err := mem.Load(ctx, "doc", &out)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("deletes a key", func(t *testing.T) {
		mem := NewMemory()

		require.NoError(t, mem.Save(ctx, "doc", document{Name: "panels"}))
		require.NoError(t, mem.Delete(ctx, "doc"))

		_, ok := mem.Raw("doc")
		assert.False(t, ok)
	})
}
