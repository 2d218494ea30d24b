package services

import (
	"context"
	"sync"
	"time"

	"github.com/mkalinina/nutritrack/internal/client/api"
	"github.com/mkalinina/nutritrack/internal/client/models"
	"github.com/mkalinina/nutritrack/internal/common"
	"github.com/mkalinina/nutritrack/internal/logging"
)

// TokenSource exposes the current session to consumers that only need the
// bearer token. SessionService satisfies it.
type TokenSource interface {
	Session() *models.Session
}

// GoalService derives the current day's calorie total from the backend's
// meal list. It is display-only: a failed poll keeps the previous total and
// never touches session state.
type GoalService interface {
	// RecentMeals returns the most recent meals, newest first.
	RecentMeals(ctx context.Context) ([]models.Meal, error)
	// TodayTotal fetches the meal list and sums calories of meals whose
	// timestamp falls on the current local calendar day.
	TodayTotal(ctx context.Context) (float64, error)
	// Watch polls TodayTotal on a fixed interval until ctx is cancelled,
	// invoking onUpdate after each successful poll.
	Watch(ctx context.Context, interval time.Duration, onUpdate func(total float64))
	// LastTotal returns the most recently computed total (0 before the
	// first successful poll).
	LastTotal() float64
}

type goalService struct {
	api    api.Client
	tokens TokenSource
	log    logging.Logger
	limit  int

	mu   sync.Mutex
	last float64
}

// NewGoalService constructs a GoalService fetching up to limit recent meals
// per poll (enough to cover a heavy day of logging).
func NewGoalService(apiClient api.Client, tokens TokenSource, limit int, log logging.Logger) GoalService {
	return &goalService{api: apiClient, tokens: tokens, limit: limit, log: log}
}

func (g *goalService) RecentMeals(ctx context.Context) ([]models.Meal, error) {
	sess := g.tokens.Session()
	if sess == nil {
		return nil, common.ErrNoSession
	}
	return g.api.ListMeals(ctx, sess.Token, g.limit)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

func (g *goalService) TodayTotal(ctx context.Context) (float64, error) {
	meals, err := g.RecentMeals(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	var total float64
	for _, m := range meals {
		if sameDay(m.CreatedAt, now) {
			total += m.Calories
		}
	}

	g.mu.Lock()
	g.last = total
	g.mu.Unlock()
	return total, nil
}

func (g *goalService) LastTotal() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}

// Watch polls immediately, then on every tick. The ticker stops with the
// context, so a torn-down view never receives another update. Poll errors
// are logged and swallowed; the previous total stands.
func (g *goalService) Watch(ctx context.Context, interval time.Duration, onUpdate func(total float64)) {
	poll := func() {
		total, err := g.TodayTotal(ctx)
		if err != nil {
			g.log.Warn(ctx, "goal poll failed", "error", err)
			return
		}
		if onUpdate != nil {
			onUpdate(total)
		}
	}

	poll()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			poll()
		case <-ctx.Done():
			return
		}
	}
}
