package dto

import (
	"github.com/calotrack/backend/internal/calc"
	"github.com/calotrack/backend/internal/models"
	"github.com/google/uuid"
)

type AddFoodRequest struct {
	Name      string           `json:"name"`
	Calories  float64          `json:"calories"`
	InputType models.InputType `json:"input_type"`
}

// UpdateFoodRequest is a partial update; name-only updates leave the log
// totals untouched.
type UpdateFoodRequest struct {
	Name     *string  `json:"name"`
	Calories *float64 `json:"calories"`
}

type AddExerciseRequest struct {
	Type        string `json:"type"`
	DurationMin int    `json:"duration_min"`
}

// DailySummary is one row of the history listing: the log totals without
// its entries.
type DailySummary struct {
	ID            uuid.UUID        `json:"id"`
	Date          models.Date      `json:"date"`
	TotalConsumed float64          `json:"total_consumed"`
	TotalBurned   float64          `json:"total_burned"`
	NetCalories   float64          `json:"net_calories"`
	Status        calc.DailyStatus `json:"status"`
}
