package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/uptrace/bun"
)

type entry struct {
	bun.BaseModel `bun:"table:app_storage,alias:s"`

	Key       string    `bun:",pk"`
	Value     string    `bun:",nullzero"`
	UpdatedAt time.Time `bun:",nullzero"`
}

// KV is the sqlite-backed Storage implementation. Keys map to rows in the
// app_storage table; values are JSON documents.
type KV struct {
	db *bun.DB
}

func NewKV(db *bun.DB) *KV {
	return &KV{db}
}

func (kv *KV) Load(ctx context.Context, key string, v interface{}) (bool, error) {
	e := &entry{}
	err := kv.db.NewSelect().
		Model(e).
		Where("s.key = ?", key).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, errors.WithStack(err)
	}

	if err := json.Unmarshal([]byte(e.Value), v); err != nil {
		// Corrupt payload reads as no data.
		return false, nil
	}
	return true, nil
}

func (kv *KV) Save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.WithStack(err)
	}

	e := &entry{
		Key:       key,
		Value:     string(data),
		UpdatedAt: time.Now(),
	}

	_, err = kv.db.NewInsert().
		Model(e).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return errors.WithStack(err)
}

func (kv *KV) Delete(ctx context.Context, key string) error {
	_, err := kv.db.NewDelete().
		Model((*entry)(nil)).
		Where("key = ?", key).
		Exec(ctx)
	return errors.WithStack(err)
}
