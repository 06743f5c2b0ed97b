package storage

import "context"

// Storage keys. Each key holds one serialized JSON document.
const (
	KeyComics      = "comics"
	KeyUser        = "comic_app_user"
	KeyCredentials = "comic_app_credentials"
)

// Storage is the persistence port for snapshot state. Implementations hold
// whole documents per key; there is no partial update.
//
// Load reports found=false both when the key is absent and when the stored
// value does not unmarshal into v: a corrupt payload is treated as no data,
// so a damaged snapshot degrades to an empty state instead of failing
// startup.
type Storage interface {
	Load(ctx context.Context, key string, v interface{}) (bool, error)
	Save(ctx context.Context, key string, v interface{}) error
	Delete(ctx context.Context, key string) error
}
