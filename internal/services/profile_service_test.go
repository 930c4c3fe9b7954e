package services

import (
	"errors"
	"testing"

	"github.com/calotrack/backend/internal/calc"
	"github.com/calotrack/backend/internal/dto"
	"github.com/google/uuid"
)

func TestCreateProfileComputesDerivedValues(t *testing.T) {
	db := testDB(t)
	_, profile := seedProfile(t, db)

	// 10*75 + 6.25*175 - 5*30 + 5, moderate multiplier 1.55
	if profile.BMR != 1698.75 {
		t.Errorf("BMR = %v, want 1698.75", profile.BMR)
	}
	if profile.TDEE != 2633.06 {
		t.Errorf("TDEE = %v, want 2633.06", profile.TDEE)
	}
	if profile.DailyTarget != 2633.06 {
		t.Errorf("DailyTarget = %v, want 2633.06 (maintain goal)", profile.DailyTarget)
	}
}

func TestCreateProfileDuplicate(t *testing.T) {
	db := testDB(t)
	userID, _ := seedProfile(t, db)

	svc := NewProfileService(db)
	_, err := svc.Create(userID, &dto.CreateProfileRequest{
		Height:        180,
		Weight:        80,
		Age:           35,
		Gender:        calc.GenderMale,
		ActivityLevel: calc.ActivityLight,
		Goal:          calc.GoalLose,
	})
	if !errors.Is(err, ErrProfileExists) {
		t.Errorf("second create err = %v, want ErrProfileExists", err)
	}
}

func TestCreateProfileValidation(t *testing.T) {
	db := testDB(t)
	svc := NewProfileService(db)

	tests := []struct {
		name string
		req  dto.CreateProfileRequest
	}{
		{"zero height", dto.CreateProfileRequest{Height: 0, Weight: 75, Age: 30, Gender: calc.GenderMale, ActivityLevel: calc.ActivityModerate, Goal: calc.GoalMaintain}},
		{"negative weight", dto.CreateProfileRequest{Height: 175, Weight: -1, Age: 30, Gender: calc.GenderMale, ActivityLevel: calc.ActivityModerate, Goal: calc.GoalMaintain}},
		{"bad gender", dto.CreateProfileRequest{Height: 175, Weight: 75, Age: 30, Gender: "robot", ActivityLevel: calc.ActivityModerate, Goal: calc.GoalMaintain}},
		{"bad activity", dto.CreateProfileRequest{Height: 175, Weight: 75, Age: 30, Gender: calc.GenderMale, ActivityLevel: "extreme", Goal: calc.GoalMaintain}},
		{"bad goal", dto.CreateProfileRequest{Height: 175, Weight: 75, Age: 30, Gender: calc.GenderMale, ActivityLevel: calc.ActivityModerate, Goal: "bulk"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(uuid.New(), &tt.req); !errors.Is(err, ErrInvalidProfile) {
				t.Errorf("err = %v, want ErrInvalidProfile", err)
			}
		})
	}
}

func TestGetProfileNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewProfileService(db)

	if _, err := svc.Get(uuid.New()); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestUpdateGoalRecomputesTarget(t *testing.T) {
	db := testDB(t)
	userID, profile := seedProfile(t, db)

	svc := NewProfileService(db)
	goal := calc.GoalLose
	updated, err := svc.Update(userID, &dto.UpdateProfileRequest{Goal: &goal})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.DailyTarget != 2133.06 {
		t.Errorf("DailyTarget = %v, want 2133.06 (tdee - 500)", updated.DailyTarget)
	}
	// bmr and tdee depend only on body fields and must not move
	if updated.BMR != profile.BMR || updated.TDEE != profile.TDEE {
		t.Errorf("BMR/TDEE changed on goal update: %v/%v", updated.BMR, updated.TDEE)
	}
}

func TestUpdateMeasurementsTriState(t *testing.T) {
	db := testDB(t)
	userID, _ := seedProfile(t, db)
	svc := NewProfileService(db)

	// set waist and neck
	updated, err := svc.Update(userID, &dto.UpdateProfileRequest{
		WaistCm: dto.OptionalFloat{Present: true, Valid: true, Value: 88},
		NeckCm:  dto.OptionalFloat{Present: true, Valid: true, Value: 38},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.WaistCm == nil || *updated.WaistCm != 88 {
		t.Fatalf("WaistCm = %v, want 88", updated.WaistCm)
	}

	// omitted fields keep their values
	goal := calc.GoalGain
	updated, err = svc.Update(userID, &dto.UpdateProfileRequest{Goal: &goal})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.WaistCm == nil || updated.NeckCm == nil {
		t.Error("omitted measurement fields were cleared")
	}

	// explicit null clears
	updated, err = svc.Update(userID, &dto.UpdateProfileRequest{
		WaistCm: dto.OptionalFloat{Present: true, Valid: false},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.WaistCm != nil {
		t.Errorf("WaistCm = %v after explicit null, want nil", *updated.WaistCm)
	}
	if updated.NeckCm == nil {
		t.Error("NeckCm cleared by an update that did not mention it")
	}

	// clear survives a round trip through the database
	fetched, err := svc.Get(userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.WaistCm != nil {
		t.Errorf("stored WaistCm = %v, want nil", *fetched.WaistCm)
	}
}

func TestMetricsWithAndWithoutMeasurements(t *testing.T) {
	db := testDB(t)
	userID, _ := seedProfile(t, db)
	svc := NewProfileService(db)

	metrics, err := svc.Metrics(userID)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if metrics.BMI != 24.5 {
		t.Errorf("BMI = %v, want 24.5", metrics.BMI)
	}
	if metrics.HydrationML != 2625 {
		t.Errorf("HydrationML = %v, want 2625", metrics.HydrationML)
	}
	if metrics.MinCalories != 1500 {
		t.Errorf("MinCalories = %v, want 1500", metrics.MinCalories)
	}
	if metrics.BodyFatPct != nil {
		t.Errorf("BodyFatPct = %v without measurements, want nil", *metrics.BodyFatPct)
	}
	if metrics.LeanBodyMass != nil || metrics.FFMI != nil || metrics.ProteinMin != nil {
		t.Error("downstream composition fields set without a body fat estimate")
	}

	if _, err := svc.Update(userID, &dto.UpdateProfileRequest{
		WaistCm: dto.OptionalFloat{Present: true, Valid: true, Value: 88},
		NeckCm:  dto.OptionalFloat{Present: true, Valid: true, Value: 38},
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	metrics, err = svc.Metrics(userID)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if metrics.BodyFatPct == nil || *metrics.BodyFatPct != 19.2 {
		t.Fatalf("BodyFatPct = %v, want 19.2", metrics.BodyFatPct)
	}
	if metrics.LeanBodyMass == nil || *metrics.LeanBodyMass != 60.6 {
		t.Errorf("LeanBodyMass = %v, want 60.6", metrics.LeanBodyMass)
	}
	if metrics.FFMI == nil || *metrics.FFMI != 20.1 {
		t.Errorf("FFMI = %v, want 20.1", metrics.FFMI)
	}
	if metrics.ProteinMin == nil || *metrics.ProteinMin != 97 {
		t.Errorf("ProteinMin = %v, want 97", metrics.ProteinMin)
	}
	if metrics.ProteinMax == nil || *metrics.ProteinMax != 133 {
		t.Errorf("ProteinMax = %v, want 133", metrics.ProteinMax)
	}

	// clearing waist drops the whole composition chain back to null
	if _, err := svc.Update(userID, &dto.UpdateProfileRequest{
		WaistCm: dto.OptionalFloat{Present: true, Valid: false},
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	metrics, err = svc.Metrics(userID)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if metrics.BodyFatPct != nil {
		t.Errorf("BodyFatPct = %v after clearing waist, want nil", *metrics.BodyFatPct)
	}
}
