package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mkalinina/nutritrack/internal/client/api"
	"github.com/mkalinina/nutritrack/internal/client/auth"
	"github.com/mkalinina/nutritrack/internal/client/client"
	"github.com/mkalinina/nutritrack/internal/client/config"
	"github.com/mkalinina/nutritrack/internal/client/guard"
	"github.com/mkalinina/nutritrack/internal/client/repositories/session"
	"github.com/mkalinina/nutritrack/internal/client/services"
	"github.com/mkalinina/nutritrack/internal/logging"
)

// App wires the session service, goal service and route guard behind the
// interactive REPL.
type App struct {
	config  *config.Config
	log     logging.Logger
	session services.SessionService
	goals   services.GoalService

	db      *sql.DB
	reader  *bufio.Reader
	current string

	// stopGoals cancels the goal watcher; nil while no watcher runs.
	stopGoals context.CancelFunc
}

// NewApp builds the application: opens the local session database, runs its
// migrations and constructs the services over the shared API client.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerBaseURL)
	repo := session.NewSQLiteRepository(db, log)
	userinfo := auth.NewUserinfoClient(c.UserinfoEndpoint)

	sessionService := services.NewSessionService(apiClient, userinfo, repo, log)
	goalService := services.NewGoalService(apiClient, sessionService, c.MealFetchLimit, log)

	return &App{
		config:  c,
		log:     log,
		session: sessionService,
		goals:   goalService,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		current: guard.PathLanding,
	}, nil
}

// Run restores the persisted session, navigates to the initial view and
// hands control to the REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	// The guard stays in its loading state until this returns, so no
	// navigation can happen against a half-loaded session.
	if err := a.session.Restore(ctx); err != nil {
		return err
	}
	if a.isLoggedIn() {
		a.startGoalWatcher(ctx)
	}

	printlnFn("NutriTrack CLI (type 'help' for commands)")
	_ = a.Open(ctx, guard.PathLanding)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
	return nil
}

// Close releases the goal watcher and the database handle.
func (a *App) Close() {
	a.stopGoalWatcher()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Session() != nil
}

// status renders the prompt suffix: the signed-in email and current view.
func (a *App) status() string {
	s := a.current
	if p := a.session.Profile(); p != nil && p.Email != "" {
		s = p.Email + " " + s
	}
	return s
}

// startGoalWatcher launches the background poller that keeps today's calorie
// total fresh. Safe to call when one is already running: the previous watcher
// is stopped first.
func (a *App) startGoalWatcher(ctx context.Context) {
	a.stopGoalWatcher()

	watchCtx, cancel := context.WithCancel(ctx)
	a.stopGoals = cancel

	interval := a.config.GoalSyncInterval
	if interval <= 0 {
		interval = 60 * time.Second
	}

	go a.goals.Watch(watchCtx, interval, nil)
}

// stopGoalWatcher tears the poller down so it cannot fire after logout or
// after the app exits.
func (a *App) stopGoalWatcher() {
	if a.stopGoals != nil {
		a.stopGoals()
		a.stopGoals = nil
	}
}
