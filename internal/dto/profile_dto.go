package dto

import "github.com/calotrack/backend/internal/calc"

type CreateProfileRequest struct {
	Height        float64            `json:"height"` // cm
	Weight        float64            `json:"weight"` // kg
	Age           int                `json:"age"`
	Gender        calc.Gender        `json:"gender"`
	ActivityLevel calc.ActivityLevel `json:"activity_level"`
	Goal          calc.Goal          `json:"goal"`
}

// UpdateProfileRequest is a partial update. Goal is a plain optional (omit
// to keep); the measurement fields are tri-state so an explicit null clears
// the stored value.
type UpdateProfileRequest struct {
	Goal    *calc.Goal    `json:"goal"`
	WaistCm OptionalFloat `json:"waist_cm"`
	NeckCm  OptionalFloat `json:"neck_cm"`
	HipCm   OptionalFloat `json:"hip_cm"`
}

// BodyMetricsResponse is the on-demand body composition view over a profile.
// Fields without omitempty: nil serializes as an explicit null, which
// clients read as "insufficient measurements", never as zero.
type BodyMetricsResponse struct {
	MinCalories  float64  `json:"min_calories"`
	BMI          float64  `json:"bmi"`
	HydrationML  int      `json:"hydration_ml"`
	BodyFatPct   *float64 `json:"body_fat_pct"`
	LeanBodyMass *float64 `json:"lbm"`
	FFMI         *float64 `json:"ffmi"`
	ProteinMin   *float64 `json:"protein_min"`
	ProteinMax   *float64 `json:"protein_max"`
}
