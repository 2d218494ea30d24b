package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mkalinina/nutritrack/internal/client/guard"
	"github.com/mkalinina/nutritrack/internal/client/models"
)

// Whoami prints the current profile.
func (a *App) Whoami(ctx context.Context) error {
	p := a.session.Profile()
	if p == nil {
		printlnFn("Not signed in.")
		return nil
	}

	printlnFn("Name: ", p.Name)
	printlnFn("Email:", p.Email)
	if p.Language != "" {
		printlnFn("Language:", p.Language)
	}
	if p.Onboarded() {
		printlnFn(fmt.Sprintf("Daily target: %.0f kcal", *p.TargetCalories))
	} else {
		printlnFn("Onboarding incomplete — run 'onboard'.")
	}
	return nil
}

var activityOptions = []string{
	string(models.ActivitySedentary),
	string(models.ActivityLight),
	string(models.ActivityModerate),
	string(models.ActivityActive),
	string(models.ActivityVeryActive),
}

var goalOptions = []string{
	string(models.GoalLose),
	string(models.GoalMaintain),
	string(models.GoalGain),
	string(models.GoalBuildMuscle),
}

// Onboard collects the nutrition-plan inputs, shows a local preview of the
// daily target and submits everything to the backend, which owns the final
// numbers. On success the user is taken to the dashboard.
func (a *App) Onboard(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Sign in first.")
		return nil
	}

	age, err := GetInt(a.reader, "Age", os.Stdout)
	if err != nil {
		return err
	}
	gender, err := GetChoice(a.reader, "Gender", []string{"male", "female"}, "male", os.Stdout)
	if err != nil {
		return err
	}
	height, err := GetFloat(a.reader, "Height (cm)", os.Stdout)
	if err != nil {
		return err
	}
	weight, err := GetFloat(a.reader, "Weight (kg)", os.Stdout)
	if err != nil {
		return err
	}
	activity, err := GetChoice(a.reader, "Activity level", activityOptions, string(models.ActivityModerate), os.Stdout)
	if err != nil {
		return err
	}
	goal, err := GetChoice(a.reader, "Goal", goalOptions, string(models.GoalMaintain), os.Stdout)
	if err != nil {
		return err
	}

	preview := previewTarget(age, gender, height, weight, models.ActivityLevel(activity), models.Goal(goal))
	printlnFn(fmt.Sprintf("Projected daily target: %.0f kcal", preview))

	level := models.ActivityLevel(activity)
	g := models.Goal(goal)
	update := models.ProfileUpdate{
		Age:           &age,
		Gender:        &gender,
		HeightCm:      &height,
		WeightKg:      &weight,
		ActivityLevel: &level,
		Goal:          &g,
	}

	if err := a.session.UpdateProfile(ctx, update); err != nil {
		return a.commandError(ctx, err)
	}

	if t := a.session.Profile().TargetCalories; t != nil {
		printlnFn(fmt.Sprintf("Your plan is ready: %.0f kcal/day", *t))
	}
	return a.Open(ctx, guard.PathDashboard)
}

// Language updates the profile language preference on the backend.
func (a *App) Language(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Sign in first.")
		return nil
	}

	lang, err := getSimpleText(a.reader, "Language code (e.g. en, de, lv)", os.Stdout)
	if err != nil {
		return err
	}
	if lang == "" {
		lang = models.DefaultLanguage
	}

	if err := a.session.UpdateProfile(ctx, models.ProfileUpdate{Language: &lang}); err != nil {
		return a.commandError(ctx, err)
	}
	printlnFn("Language set to", lang)
	return nil
}

// activityMultipliers and goalAdjustments mirror the backend's plan formula
// so the preview matches what the server will compute.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

var goalAdjustments = map[models.Goal]float64{
	models.GoalLose:        -500,
	models.GoalMaintain:    0,
	models.GoalGain:        300,
	models.GoalBuildMuscle: 200,
}

// previewTarget estimates the daily calorie target with the Mifflin-St Jeor
// equation. Display-only; the backend remains the source of truth.
func previewTarget(age int, gender string, heightCm, weightKg float64, activity models.ActivityLevel, goal models.Goal) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[activity]
	if !ok {
		multiplier = 1.2
	}
	tdee := bmr * multiplier

	return tdee + goalAdjustments[goal]
}
