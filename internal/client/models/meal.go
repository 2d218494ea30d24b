package models

import "time"

// Meal is one logged meal as returned by GET /meals/.
type Meal struct {
	ID           int64     `json:"id"`
	FoodName     string    `json:"food_name"`
	PortionSize  string    `json:"portion_size,omitempty"`
	Calories     float64   `json:"calories"`
	Protein      float64   `json:"protein"`
	Carbs        float64   `json:"carbs"`
	Fats         float64   `json:"fats"`
	AnalysisText string    `json:"analysis_text,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
