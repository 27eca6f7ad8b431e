// Package surveys persists completed survey records. The collection is
// partitioned by user id at the storage level; every query is scoped to one
// user, so records can never leak across accounts.
package surveys

import (
	"context"

	"github.com/careersync/careersync/internal/client/models"
)

// Repository describes the append-only survey history store.
type Repository interface {
	// Append stores one completed submission.
	Append(ctx context.Context, rec *models.SurveyRecord) error

	// ListByUser returns the user's records in insertion order.
	ListByUser(ctx context.Context, userID string) ([]models.SurveyRecord, error)

	// CountByUser returns how many records the user has.
	CountByUser(ctx context.Context, userID string) (int, error)
}
