package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/careersync/careersync/internal/client/api"
	"github.com/careersync/careersync/internal/client/config"
	"github.com/careersync/careersync/internal/client/models"
	"github.com/careersync/careersync/internal/client/repositories/favorites"
	"github.com/careersync/careersync/internal/client/repositories/metadata"
	"github.com/careersync/careersync/internal/client/repositories/surveys"
	"github.com/careersync/careersync/internal/client/services"
	"github.com/careersync/careersync/internal/client/storage"
	"github.com/careersync/careersync/internal/logging"
)

// fakeAPI implements api.Client with pluggable behavior and call counters.
type fakeAPI struct {
	signupFn   func(ctx context.Context, username, password string) error
	loginFn    func(ctx context.Context, username, password string) (string, error)
	predictFn  func(ctx context.Context, payload models.SurveyPayload, token string) (*models.Prediction, error)
	resultsFn  func(ctx context.Context, userID, token string) (*models.Prediction, error)
	feedbackFn func(ctx context.Context, userID, feedback, token string) error

	loginCalls int
}

func (f *fakeAPI) Signup(ctx context.Context, username, password string) error {
	return f.signupFn(ctx, username, password)
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (string, error) {
	f.loginCalls++
	return f.loginFn(ctx, username, password)
}

func (f *fakeAPI) PredictCareer(ctx context.Context, payload models.SurveyPayload, token string) (*models.Prediction, error) {
	return f.predictFn(ctx, payload, token)
}

func (f *fakeAPI) GetResults(ctx context.Context, userID, token string) (*models.Prediction, error) {
	return f.resultsFn(ctx, userID, token)
}

func (f *fakeAPI) SendFeedback(ctx context.Context, userID, feedback, token string) error {
	return f.feedbackFn(ctx, userID, feedback, token)
}

var _ api.Client = (*fakeAPI)(nil)

// newTestApp assembles an App over an in-memory database and the given
// fake API client. Output is captured in the returned buffer.
func newTestApp(t *testing.T, client api.Client) (*App, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logging.NewDefault(io.Discard, false)
	meta := metadata.NewSQLiteRepository(db)
	surveyRepo := surveys.NewSQLiteRepository(db)
	favRepo := favorites.NewSQLiteRepository(db)

	var out bytes.Buffer
	cfg := &config.Config{}
	cfg.LoadDefaults()

	return &App{
		config:    cfg,
		log:       log,
		db:        db,
		apiClient: client,
		session:   services.NewSession(meta, log, time.Minute),
		surveySvc: services.NewSurveyService(client, surveyRepo, log),
		badgeSvc:  services.NewBadgeService(surveyRepo, favRepo, meta, log),
		profiles:  services.NewProfileService(meta, log),
		progress:  services.NewProgressService(db, log),
		favorites: favRepo,
		reader:    bufio.NewReader(strings.NewReader("")),
		out:       &out,
	}, &out
}

// unsignedJWT builds a syntactically valid token carrying the given
// subject and no signature.
func unsignedJWT(t *testing.T, sub string) string {
	t.Helper()
	enc := base64.RawURLEncoding
	header := enc.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload := enc.EncodeToString([]byte(`{"sub":"` + sub + `"}`))
	return header + "." + payload + "."
}

// stubPrompts replaces the interactive input seams with canned answers
// consumed in order.
func stubPrompts(t *testing.T, password string, answers ...string) {
	t.Helper()
	origText, origPw := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText, getPassword = origText, origPw
	})

	i := 0
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", fmt.Errorf("no stubbed answer for prompt %q", prompt)
		}
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}

// capturePrintln redirects REPL output into the returned buffer.
func capturePrintln(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })

	var buf bytes.Buffer
	printlnFn = func(a ...any) (int, error) {
		return fmt.Fprintln(&buf, a...)
	}
	return &buf
}
