package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkalinina/nutritrack/internal/client/api"
	"github.com/mkalinina/nutritrack/internal/common"
)

// recentMealsShown caps the list output; one poll fetches more to cover the
// whole day, but the terminal only needs the tail.
const recentMealsShown = 5

// Meals prints the most recently logged meals.
func (a *App) Meals(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Sign in first.")
		return nil
	}

	meals, err := a.goals.RecentMeals(ctx)
	if err != nil {
		return a.commandError(ctx, err)
	}
	if len(meals) == 0 {
		printlnFn("No meals logged yet.")
		return nil
	}

	if len(meals) > recentMealsShown {
		meals = meals[:recentMealsShown]
	}
	for _, m := range meals {
		printlnFn(fmt.Sprintf("%6d  %-24s %6.0f kcal  %s",
			m.ID, m.FoodName, m.Calories, m.CreatedAt.Local().Format("Jan 2 15:04")))
	}
	return nil
}

// Today recomputes and prints today's calorie total against the daily goal.
func (a *App) Today(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Sign in first.")
		return nil
	}

	total, err := a.goals.TodayTotal(ctx)
	if err != nil {
		return a.commandError(ctx, err)
	}
	a.printTotal(total)
	return nil
}

// printProgress shows the watcher's last known total without forcing a fetch.
func (a *App) printProgress() {
	a.printTotal(a.goals.LastTotal())
}

// dailyGoal prefers the onboarded target and falls back to a generic limit.
func (a *App) dailyGoal() float64 {
	if p := a.session.Profile(); p != nil && p.TargetCalories != nil {
		return *p.TargetCalories
	}
	return 2000
}

func (a *App) printTotal(total float64) {
	goal := a.dailyGoal()
	marker := ""
	if total >= goal {
		marker = "  (over limit!)"
	}
	printlnFn(fmt.Sprintf("Today: %.0f / %.0f kcal%s", total, goal, marker))
}

// commandError maps backend failures to user-facing behavior: a 401 expires
// the session on the spot, everything else is reported and logged.
func (a *App) commandError(ctx context.Context, err error) error {
	if errors.Is(err, api.ErrUnauthorized) || errors.Is(err, common.ErrorUnauthorized) {
		return a.expireSession(ctx)
	}
	printlnFn("Request failed:", err.Error())
	a.log.Warn(ctx, "command failed", "error", err)
	return err
}
