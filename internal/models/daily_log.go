package models

import (
	"time"

	"github.com/calotrack/backend/internal/calc"
	"github.com/google/uuid"
)

// InputType records how a food entry was captured.
type InputType string

const (
	InputStructured InputType = "structured"
	InputFreeText   InputType = "free_text"
	InputImage      InputType = "image"
	InputRecord     InputType = "record"
)

func (t InputType) Valid() bool {
	switch t {
	case InputStructured, InputFreeText, InputImage, InputRecord:
		return true
	}
	return false
}

// DailyLog holds the running totals for one user-day. The (user_id, date)
// pair is unique at the storage layer; get-or-create relies on that
// constraint to stay idempotent under concurrent requests. The invariant
// net_calories == total_consumed - total_burned holds after every mutation,
// with all three rounded to 2 decimals.
type DailyLog struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_daily_logs_user_date" json:"-"`
	Date          Date             `gorm:"not null;uniqueIndex:idx_daily_logs_user_date" json:"date"`
	TotalConsumed float64          `gorm:"not null;default:0" json:"total_consumed"`
	TotalBurned   float64          `gorm:"not null;default:0" json:"total_burned"`
	NetCalories   float64          `gorm:"not null;default:0" json:"net_calories"`
	Status        calc.DailyStatus `gorm:"size:20;not null;default:'maintenance'" json:"status"`

	FoodEntries     []FoodEntry     `gorm:"foreignKey:DailyLogID" json:"food_entries"`
	ExerciseEntries []ExerciseEntry `gorm:"foreignKey:DailyLogID" json:"exercise_entries"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// FoodEntry belongs to exactly one DailyLog. Name and calories are mutable;
// deleting an entry reverses its contribution to the owning log's totals.
type FoodEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DailyLogID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Name       string    `gorm:"not null;size:255" json:"name"`
	Calories   float64   `gorm:"not null" json:"calories"`
	InputType  InputType `gorm:"size:20;not null" json:"input_type"`
	CreatedAt  time.Time `json:"created_at"`
}

// ExerciseEntry belongs to exactly one DailyLog. CaloriesBurned is computed
// from the MET table at creation time and stored — later profile weight
// changes never recompute historical entries.
type ExerciseEntry struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DailyLogID     uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Type           string    `gorm:"not null;size:100" json:"type"`
	DurationMin    int       `gorm:"column:duration;not null" json:"duration_min"`
	CaloriesBurned float64   `gorm:"not null" json:"calories_burned"`
	CreatedAt      time.Time `json:"created_at"`
}
