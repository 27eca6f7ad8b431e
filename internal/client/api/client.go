// Package api implements the thin REST client for the CareerSync backend.
package api

import (
	"context"

	"github.com/careersync/careersync/internal/client/models"
)

// Client is the remote API surface the application depends on. All
// authenticated calls attach the bearer token; no token refresh exists.
type Client interface {
	// Signup creates a new account.
	Signup(ctx context.Context, username, password string) error

	// Login exchanges credentials for an access token. Credentials are
	// submitted form-encoded, not as JSON.
	Login(ctx context.Context, username, password string) (string, error)

	// PredictCareer submits a normalized survey payload and returns the
	// ranked suggestions.
	PredictCareer(ctx context.Context, payload models.SurveyPayload, token string) (*models.Prediction, error)

	// GetResults re-fetches the server-stored prediction for a user.
	GetResults(ctx context.Context, userID, token string) (*models.Prediction, error)

	// SendFeedback submits free-text feedback.
	SendFeedback(ctx context.Context, userID, feedback, token string) error
}
