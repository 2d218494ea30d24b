package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestProfile_Onboarded(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		want    bool
	}{
		{"nil profile", nil, false},
		{"empty", &Profile{}, false},
		{"age only", &Profile{Age: intPtr(30)}, false},
		{"target only", &Profile{TargetCalories: floatPtr(2000)}, false},
		{"both set", &Profile{Age: intPtr(30), TargetCalories: floatPtr(2000)}, true},
		{"zero values count as set", &Profile{Age: intPtr(0), TargetCalories: floatPtr(0)}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.profile.Onboarded())
		})
	}
}

func TestProfile_Merge_BackendWinsOnPresentFields(t *testing.T) {
	p := &Profile{Name: "Provisional", Email: "old@example.com", PictureURL: "http://old/pic"}

	level := ActivityModerate
	p.Merge(&Profile{
		ID:             "42",
		Name:           "Ada Lovelace",
		Email:          "ada@example.com",
		Age:            intPtr(36),
		ActivityLevel:  &level,
		TargetCalories: floatPtr(1900),
	})

	require.Equal(t, "42", p.ID)
	require.Equal(t, "Ada Lovelace", p.Name)
	require.Equal(t, "ada@example.com", p.Email)
	require.Equal(t, 36, *p.Age)
	require.Equal(t, ActivityModerate, *p.ActivityLevel)
	require.Equal(t, 1900.0, *p.TargetCalories)
	// Field absent from the update is retained.
	require.Equal(t, "http://old/pic", p.PictureURL)
}

func TestProfile_Merge_PartialDoesNotDropKnownFields(t *testing.T) {
	p := &Profile{
		Name:           "Ada",
		Age:            intPtr(36),
		TargetCalories: floatPtr(1900),
	}

	lang := "de"
	p.Merge(&Profile{Language: lang})

	require.Equal(t, "de", p.Language)
	require.Equal(t, "Ada", p.Name)
	require.NotNil(t, p.Age)
	require.NotNil(t, p.TargetCalories)
	require.True(t, p.Onboarded())
}

func TestProfile_Merge_NilIsNoop(t *testing.T) {
	p := &Profile{Name: "Ada"}
	p.Merge(nil)
	require.Equal(t, "Ada", p.Name)
}
