package services

import (
	"errors"
	"fmt"

	"github.com/calotrack/backend/internal/calc"
	"github.com/calotrack/backend/internal/dto"
	"github.com/calotrack/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProfileExists   = errors.New("profile already exists")
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidProfile  = errors.New("invalid profile fields")
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Create builds the user's one-and-only profile and stores the derived
// bmr/tdee/daily target alongside the raw fields. A second call for the
// same user fails with ErrProfileExists.
func (s *ProfileService) Create(userID uuid.UUID, req *dto.CreateProfileRequest) (*models.Profile, error) {
	if req.Height <= 0 || req.Weight <= 0 || req.Age <= 0 {
		return nil, ErrInvalidProfile
	}
	if !req.Gender.Valid() || !req.ActivityLevel.Valid() || !req.Goal.Valid() {
		return nil, ErrInvalidProfile
	}

	var existing models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		return nil, ErrProfileExists
	}

	bmr := calc.BMR(req.Height, req.Weight, req.Age, req.Gender)
	tdee := calc.TDEE(bmr, req.ActivityLevel)

	profile := models.Profile{
		ID:            uuid.New(),
		UserID:        userID,
		Height:        req.Height,
		Weight:        req.Weight,
		Age:           req.Age,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
		Goal:          req.Goal,
		BMR:           bmr,
		TDEE:          tdee,
		DailyTarget:   calc.DailyTarget(tdee, req.Goal, req.Gender),
	}

	if err := s.db.Create(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrProfileExists
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return &profile, nil
}

func (s *ProfileService) Get(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Update applies a partial update: goal when sent, and each measurement
// field independently. Measurements are tri-state — an explicit null clears
// the column, an omitted field keeps it. A goal change recomputes the
// stored daily target (bmr and tdee only depend on body fields and stay).
func (s *ProfileService) Update(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if req.Goal != nil {
		if !req.Goal.Valid() {
			return nil, ErrInvalidProfile
		}
		profile.Goal = *req.Goal
		profile.DailyTarget = calc.DailyTarget(profile.TDEE, profile.Goal, profile.Gender)
	}

	if req.WaistCm.Present {
		profile.WaistCm = req.WaistCm.Ptr()
	}
	if req.NeckCm.Present {
		profile.NeckCm = req.NeckCm.Ptr()
	}
	if req.HipCm.Present {
		profile.HipCm = req.HipCm.Ptr()
	}

	// Save writes all columns, including measurement fields set to nil, so
	// clears reach the database.
	if err := s.db.Save(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}

// Metrics composes the body composition view from the stored profile. Every
// nil field means "insufficient measurements" and serializes as JSON null.
func (s *ProfileService) Metrics(userID uuid.UUID) (*dto.BodyMetricsResponse, error) {
	profile, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	bodyFat := calc.BodyFatPct(profile.Gender, profile.Height, profile.WaistCm, profile.NeckCm, profile.HipCm)
	lbm := calc.LeanBodyMass(profile.Weight, bodyFat)
	proteinMin, proteinMax := calc.ProteinRange(lbm)

	return &dto.BodyMetricsResponse{
		MinCalories:  calc.MinimumCalories(profile.Gender),
		BMI:          calc.BMI(profile.Height, profile.Weight),
		HydrationML:  calc.HydrationML(profile.Weight),
		BodyFatPct:   bodyFat,
		LeanBodyMass: lbm,
		FFMI:         calc.FFMI(profile.Height, lbm),
		ProteinMin:   proteinMin,
		ProteinMax:   proteinMax,
	}, nil
}
