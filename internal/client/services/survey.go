package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/careersync/careersync/internal/client/api"
	"github.com/careersync/careersync/internal/client/models"
	"github.com/careersync/careersync/internal/client/repositories/surveys"
	"github.com/careersync/careersync/internal/common"
	"github.com/careersync/careersync/internal/logging"
)

// requestState tracks one submission through Idle -> Pending -> Settled.
// It is the engine-level reentrancy guard; a second submission while one is
// pending is rejected outright rather than relying on a disabled control.
type requestState int

const (
	requestIdle requestState = iota
	requestPending
	requestSettled
)

// SurveyService validates, normalizes and submits surveys, and appends the
// result to the local history.
type SurveyService struct {
	client  api.Client
	surveys surveys.Repository
	log     logging.Logger

	mu    sync.Mutex
	state requestState

	now func() time.Time // test seam
}

func NewSurveyService(client api.Client, repo surveys.Repository, log logging.Logger) *SurveyService {
	return &SurveyService{client: client, surveys: repo, log: log, now: time.Now}
}

// historyDateLayout matches the human-readable timestamps the original UI
// stored alongside each record.
const historyDateLayout = "2006-01-02 15:04:05"

// Submit validates the form, posts the normalized payload and, on success,
// appends exactly one SurveyRecord carrying the returned career list. The
// raw prediction is handed back to the caller. Validation failures and API
// errors are returned as-is; a storage failure after a successful response
// is logged but does not fail the submission.
func (s *SurveyService) Submit(ctx context.Context, input models.SurveyInput, userID, token string) (*models.Prediction, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, common.ErrNotLoggedIn
	}

	s.mu.Lock()
	if s.state == requestPending {
		s.mu.Unlock()
		return nil, common.ErrRequestInFlight
	}
	s.state = requestPending
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.state = requestSettled
		s.mu.Unlock()
	}()

	payload := input.Normalize(userID)

	prediction, err := s.client.PredictCareer(ctx, payload, token)
	if err != nil {
		return nil, err
	}

	rec := &models.SurveyRecord{
		ID:          uuid.NewString(),
		UserID:      userID,
		Date:        s.now().Format(historyDateLayout),
		Skills:      payload.Skills,
		Education:   payload.Education,
		Interests:   payload.Interests,
		Personality: payload.Personality,
		Goals:       payload.Goals,
		Careers:     prediction.Careers,
	}
	if err := s.surveys.Append(ctx, rec); err != nil {
		s.log.Warn(ctx, "could not store survey record", "err", err)
	}

	return prediction, nil
}

// History returns the user's stored records. A malformed history reads as
// empty, never as an error surfaced to the user.
func (s *SurveyService) History(ctx context.Context, userID string) []models.SurveyRecord {
	recs, err := s.surveys.ListByUser(ctx, userID)
	if err != nil {
		s.log.Warn(ctx, "could not load survey history", "err", err)
		return nil
	}
	return recs
}
