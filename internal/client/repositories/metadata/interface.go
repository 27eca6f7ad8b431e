// Package metadata is the client's key/value persistence accessor. Named
// records (token, profile, avatar slots, counters, preferences) are stored
// as text under fixed keys.
package metadata

import "context"

// Repository is the uniform read/write surface over the key/value store.
// Get reports absence as ("", nil); callers substitute their documented
// default.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
