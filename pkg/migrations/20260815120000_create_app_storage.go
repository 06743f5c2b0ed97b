package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		// Key-value snapshot storage. Each key holds one serialized JSON
		// document (the comic collection, the signed-in user, credentials).
		_, err := db.Exec(`
			CREATE TABLE app_storage (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
		`)
		return errors.WithStack(err)
	}

	down := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`DROP TABLE IF EXISTS app_storage`)
		return errors.WithStack(err)
	}

	Migrations.MustRegister(up, down)
}
