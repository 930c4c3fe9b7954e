package models

import (
	"time"

	"github.com/calotrack/backend/internal/calc"
	"github.com/google/uuid"
)

// Profile is the one-to-one body profile for a user. The bmr/tdee/daily
// target columns are derived from the other fields at create/update time and
// stored so daily-log status checks don't recompute them per request.
type Profile struct {
	ID            uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	Height        float64            `gorm:"not null" json:"height"` // cm
	Weight        float64            `gorm:"not null" json:"weight"` // kg
	Age           int                `gorm:"not null" json:"age"`
	Gender        calc.Gender        `gorm:"size:10;not null" json:"gender"`
	ActivityLevel calc.ActivityLevel `gorm:"size:20;not null" json:"activity_level"`
	Goal          calc.Goal          `gorm:"size:10;not null" json:"goal"`
	BMR           float64            `gorm:"not null" json:"bmr"`
	TDEE          float64            `gorm:"not null" json:"tdee"`
	DailyTarget   float64            `gorm:"not null" json:"daily_target"`

	// Optional tape measurements for body composition estimates. Each is
	// independently settable and clearable.
	WaistCm *float64 `json:"waist_cm"`
	NeckCm  *float64 `json:"neck_cm"`
	HipCm   *float64 `json:"hip_cm"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
