// Package models defines the client-side data types: the session, the user
// profile, and meal records returned by the backend.
package models

// ActivityLevel mirrors the backend's activity_level enum.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Goal mirrors the backend's goal enum.
type Goal string

const (
	GoalLose        Goal = "lose"
	GoalMaintain    Goal = "maintain"
	GoalGain        Goal = "gain"
	GoalBuildMuscle Goal = "build_muscle"
)

// Profile is the application view of a user. Identity fields (name, email,
// picture) may come either from decoded identity-token claims or from the
// backend; the nutrition fields are owned by the backend and filled in by
// the onboarding flow.
//
// Optional fields are pointers so "absent" and "zero" stay distinct: an age
// of 0 counts as set.
type Profile struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	PictureURL string `json:"picture,omitempty"`
	Language   string `json:"language,omitempty"`

	Age           *int           `json:"age,omitempty"`
	Gender        string         `json:"gender,omitempty"`
	WeightKg      *float64       `json:"weight,omitempty"`
	HeightCm      *float64       `json:"height,omitempty"`
	ActivityLevel *ActivityLevel `json:"activity_level,omitempty"`
	Goal          *Goal          `json:"goal,omitempty"`

	TargetCalories *float64 `json:"target_calories,omitempty"`
	TargetProtein  *float64 `json:"target_protein,omitempty"`
	TargetCarbs    *float64 `json:"target_carbs,omitempty"`
	TargetFat      *float64 `json:"target_fat,omitempty"`
}

// Onboarded reports whether the profile carries enough data to leave the
// onboarding flow: age and a daily calorie target must both be set.
// It is recomputed on every call, never cached.
func (p *Profile) Onboarded() bool {
	return p != nil && p.Age != nil && p.TargetCalories != nil
}

// DefaultLanguage is applied when the backend has no stored preference.
const DefaultLanguage = "en"

// ProfileUpdate carries a partial profile for PUT /users/me. Nil fields are
// omitted from the request body and left untouched by Merge.
type ProfileUpdate struct {
	Language      *string        `json:"language,omitempty"`
	Age           *int           `json:"age,omitempty"`
	Gender        *string        `json:"gender,omitempty"`
	WeightKg      *float64       `json:"weight,omitempty"`
	HeightCm      *float64       `json:"height,omitempty"`
	ActivityLevel *ActivityLevel `json:"activity_level,omitempty"`
	Goal          *Goal          `json:"goal,omitempty"`
}

// Merge overlays non-empty fields of other onto p. Fields known to p but
// absent from other are kept, so a partial backend response never erases
// previously hydrated data.
func (p *Profile) Merge(other *Profile) {
	if other == nil {
		return
	}
	if other.ID != "" {
		p.ID = other.ID
	}
	if other.Name != "" {
		p.Name = other.Name
	}
	if other.Email != "" {
		p.Email = other.Email
	}
	if other.PictureURL != "" {
		p.PictureURL = other.PictureURL
	}
	if other.Language != "" {
		p.Language = other.Language
	}
	if other.Gender != "" {
		p.Gender = other.Gender
	}
	if other.Age != nil {
		p.Age = other.Age
	}
	if other.WeightKg != nil {
		p.WeightKg = other.WeightKg
	}
	if other.HeightCm != nil {
		p.HeightCm = other.HeightCm
	}
	if other.ActivityLevel != nil {
		p.ActivityLevel = other.ActivityLevel
	}
	if other.Goal != nil {
		p.Goal = other.Goal
	}
	if other.TargetCalories != nil {
		p.TargetCalories = other.TargetCalories
	}
	if other.TargetProtein != nil {
		p.TargetProtein = other.TargetProtein
	}
	if other.TargetCarbs != nil {
		p.TargetCarbs = other.TargetCarbs
	}
	if other.TargetFat != nil {
		p.TargetFat = other.TargetFat
	}
}
