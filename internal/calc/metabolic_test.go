package calc

import "testing"

func TestBMR(t *testing.T) {
	cases := []struct {
		name     string
		heightCm float64
		weightKg float64
		age      int
		gender   Gender
		want     float64
	}{
		// 10*75 + 6.25*175 - 5*30 + 5 = 1698.75
		{"male", 175, 75, 30, GenderMale, 1698.75},
		// 10*60 + 6.25*165 - 5*25 - 161 = 1345.25
		{"female", 165, 60, 25, GenderFemale, 1345.25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BMR(tc.heightCm, tc.weightKg, tc.age, tc.gender)
			if got != tc.want {
				t.Errorf("BMR(%v, %v, %d, %s) = %v, want %v",
					tc.heightCm, tc.weightKg, tc.age, tc.gender, got, tc.want)
			}
		})
	}
}

func TestTDEE(t *testing.T) {
	cases := []struct {
		name  string
		bmr   float64
		level ActivityLevel
		want  float64
	}{
		{"sedentary", 1698.75, ActivitySedentary, 2038.5},
		{"light", 1698.75, ActivityLight, 2335.78},
		{"moderate", 1698.75, ActivityModerate, 2633.06},
		{"active", 1698.75, ActivityActive, 2930.34},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TDEE(tc.bmr, tc.level)
			if got != tc.want {
				t.Errorf("TDEE(%v, %s) = %v, want %v", tc.bmr, tc.level, got, tc.want)
			}
		})
	}
}

func TestDailyTarget(t *testing.T) {
	cases := []struct {
		name   string
		tdee   float64
		goal   Goal
		gender Gender
		want   float64
	}{
		{"lose clamps to male floor", 2000, GoalLose, GenderMale, 1500},
		{"lose clamps to female floor", 1500, GoalLose, GenderFemale, 1200},
		{"lose above floor", 2633.06, GoalLose, GenderMale, 2133.06},
		{"maintain", 2000, GoalMaintain, GenderMale, 2000},
		{"gain adds 300", 2000, GoalGain, GenderMale, 2300},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DailyTarget(tc.tdee, tc.goal, tc.gender)
			if got != tc.want {
				t.Errorf("DailyTarget(%v, %s, %s) = %v, want %v",
					tc.tdee, tc.goal, tc.gender, got, tc.want)
			}
		})
	}
}

// TestDailyTarget_NeverBelowFloor sweeps TDEE values across every goal and
// gender and checks the safety clamp holds.
func TestDailyTarget_NeverBelowFloor(t *testing.T) {
	for _, gender := range []Gender{GenderMale, GenderFemale} {
		for _, goal := range []Goal{GoalLose, GoalMaintain, GoalGain} {
			for tdee := 800.0; tdee <= 4000; tdee += 137.5 {
				got := DailyTarget(tdee, goal, gender)
				if got < MinimumCalories(gender) {
					t.Fatalf("DailyTarget(%v, %s, %s) = %v, below floor %v",
						tdee, goal, gender, got, MinimumCalories(gender))
				}
			}
		}
	}
}

func TestStatus(t *testing.T) {
	cases := []struct {
		name   string
		net    float64
		target float64
		want   DailyStatus
	}{
		{"large surplus", 9000, 2633.06, StatusSurplus},
		{"zero net far below target", 0, 2633.06, StatusDeficit},
		{"exactly on target", 2600, 2600, StatusMaintenance},
		{"exactly +100 is maintenance", 2700, 2600, StatusMaintenance},
		{"exactly -100 is maintenance", 2500, 2600, StatusMaintenance},
		{"just over +100", 2700.01, 2600, StatusSurplus},
		{"just under -100", 2499.99, 2600, StatusDeficit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Status(tc.net, tc.target); got != tc.want {
				t.Errorf("Status(%v, %v) = %s, want %s", tc.net, tc.target, got, tc.want)
			}
		})
	}
}

func TestEnumValidation(t *testing.T) {
	if !GenderMale.Valid() || !GenderFemale.Valid() {
		t.Error("expected canonical genders to be valid")
	}
	if Gender("unknown").Valid() {
		t.Error("expected unknown gender to be invalid")
	}
	if !ActivityModerate.Valid() || ActivityLevel("couch").Valid() {
		t.Error("activity level validation mismatch")
	}
	if !GoalGain.Valid() || Goal("bulk").Valid() {
		t.Error("goal validation mismatch")
	}
}
