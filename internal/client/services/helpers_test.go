package services

import (
	"context"
	"io"
	"sync"

	"github.com/careersync/careersync/internal/client/models"
	"github.com/careersync/careersync/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewDefault(io.Discard, false)
}

// memMeta is an in-memory metadata.Repository for service tests.
type memMeta struct {
	mu   sync.Mutex
	data map[string]string
	err  error // when set, every call fails with it
}

func newMemMeta() *memMeta {
	return &memMeta{data: map[string]string{}}
}

func (m *memMeta) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	return m.data[key], nil
}

func (m *memMeta) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.data[key] = value
	return nil
}

func (m *memMeta) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	delete(m.data, key)
	return nil
}

func (m *memMeta) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.data = map[string]string{}
	return nil
}

func (m *memMeta) get(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key]
}

// memSurveys is an in-memory surveys.Repository.
type memSurveys struct {
	mu   sync.Mutex
	recs []models.SurveyRecord
	err  error
}

func (m *memSurveys) Append(_ context.Context, rec *models.SurveyRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.recs = append(m.recs, *rec)
	return nil
}

func (m *memSurveys) ListByUser(_ context.Context, userID string) ([]models.SurveyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.SurveyRecord
	for _, r := range m.recs {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memSurveys) CountByUser(ctx context.Context, userID string) (int, error) {
	recs, err := m.ListByUser(ctx, userID)
	return len(recs), err
}

// memFavorites is an in-memory favorites.Repository.
type memFavorites struct {
	mu    sync.Mutex
	marks []models.FavoriteMark
	err   error
}

func (m *memFavorites) Toggle(_ context.Context, userID, career string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	for i, mk := range m.marks {
		if mk.UserID == userID && mk.Career == career {
			m.marks = append(m.marks[:i], m.marks[i+1:]...)
			return false, nil
		}
	}
	m.marks = append(m.marks, models.FavoriteMark{UserID: userID, Career: career})
	return true, nil
}

func (m *memFavorites) ListByUser(_ context.Context, userID string) ([]models.FavoriteMark, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.FavoriteMark
	for _, mk := range m.marks {
		if mk.UserID == userID {
			out = append(out, mk)
		}
	}
	return out, nil
}

func (m *memFavorites) CountByUser(ctx context.Context, userID string) (int, error) {
	marks, err := m.ListByUser(ctx, userID)
	return len(marks), err
}

func (m *memFavorites) IsFavorite(ctx context.Context, userID, career string) (bool, error) {
	marks, err := m.ListByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, mk := range marks {
		if mk.Career == career {
			return true, nil
		}
	}
	return false, nil
}

// fakeClient implements api.Client with pluggable behavior.
type fakeClient struct {
	signupFn   func(ctx context.Context, username, password string) error
	loginFn    func(ctx context.Context, username, password string) (string, error)
	predictFn  func(ctx context.Context, payload models.SurveyPayload, token string) (*models.Prediction, error)
	resultsFn  func(ctx context.Context, userID, token string) (*models.Prediction, error)
	feedbackFn func(ctx context.Context, userID, feedback, token string) error
}

func (f *fakeClient) Signup(ctx context.Context, username, password string) error {
	return f.signupFn(ctx, username, password)
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (string, error) {
	return f.loginFn(ctx, username, password)
}

func (f *fakeClient) PredictCareer(ctx context.Context, payload models.SurveyPayload, token string) (*models.Prediction, error) {
	return f.predictFn(ctx, payload, token)
}

func (f *fakeClient) GetResults(ctx context.Context, userID, token string) (*models.Prediction, error) {
	return f.resultsFn(ctx, userID, token)
}

func (f *fakeClient) SendFeedback(ctx context.Context, userID, feedback, token string) error {
	return f.feedbackFn(ctx, userID, feedback, token)
}
