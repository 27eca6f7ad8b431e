// Package cli implements the interactive CareerSync client: a command loop
// over the session, survey, badge and profile services.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

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

// App wires the services to the command loop and holds the per-run UI
// state: the last prediction and its roadmap checklist (both ephemeral).
type App struct {
	config *config.Config
	log    logging.Logger

	db        *sql.DB
	apiClient api.Client
	session   *services.Session
	surveySvc *services.SurveyService
	badgeSvc  *services.BadgeService
	profiles  *services.ProfileService
	progress  *services.ProgressService
	favorites favorites.Repository

	reader *bufio.Reader
	out    io.Writer

	result  *models.Prediction
	checked []bool // roadmap checklist, local and non-persisted
}

// NewApp opens the local database and assembles the application services.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	meta := metadata.NewSQLiteRepository(db)
	surveyRepo := surveys.NewSQLiteRepository(db)
	favRepo := favorites.NewSQLiteRepository(db)

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout)

	return &App{
		config:    cfg,
		log:       log,
		db:        db,
		apiClient: apiClient,
		session:   services.NewSession(meta, log, cfg.SessionTimeout),
		surveySvc: services.NewSurveyService(apiClient, surveyRepo, log),
		badgeSvc:  services.NewBadgeService(surveyRepo, favRepo, meta, log),
		profiles:  services.NewProfileService(meta, log),
		progress:  services.NewProgressService(db, log),
		favorites: favRepo,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run resumes any persisted session and enters the command loop.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	fmt.Fprintln(a.out, "Welcome to CareerSync (type 'help' for commands)")
	if a.session.Resume(ctx) {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", a.displayName())
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)

	if a.session.IsLoggedIn() {
		_ = a.session.Logout(ctx)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

// displayName falls back to "User" the way the original UI did.
func (a *App) displayName() string {
	if id := a.session.UserID(); id != "" {
		return id
	}
	return "User"
}

func (a *App) status() string {
	if a.session.IsLoggedIn() {
		if id := a.session.UserID(); id != "" {
			return "(" + id + ")"
		}
		return "(logged in)"
	}
	return ""
}

// consumeNotice returns a pending session-expired notice, or "".
func (a *App) consumeNotice() string {
	if a.session.ConsumeExpiredNotice() {
		a.result = nil
		a.checked = nil
		return "Session expired. Please log in again."
	}
	return ""
}
