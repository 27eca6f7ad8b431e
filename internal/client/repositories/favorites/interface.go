// Package favorites persists saved-career bookmarks as a duplicate-free set
// per (user, career) pair, partitioned by user id at the storage level.
package favorites

import (
	"context"

	"github.com/careersync/careersync/internal/client/models"
)

// Repository describes the favorites set.
type Repository interface {
	// Toggle adds the mark when absent and removes it when present.
	// It reports whether the mark exists after the call. Toggling twice
	// restores the prior state.
	Toggle(ctx context.Context, userID, career string) (bool, error)

	// ListByUser returns the user's marks in insertion order.
	ListByUser(ctx context.Context, userID string) ([]models.FavoriteMark, error)

	// CountByUser returns how many marks the user has.
	CountByUser(ctx context.Context, userID string) (int, error)

	// IsFavorite reports whether the mark exists.
	IsFavorite(ctx context.Context, userID, career string) (bool, error)
}
