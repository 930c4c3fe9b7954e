package calc

import "math"

// activityMultipliers maps activity level to its TDEE multiplier. This is the
// single source of truth for valid activity levels — also used for input
// validation at the request boundary.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityActive:    1.725,
}

var goalAdjustments = map[Goal]float64{
	GoalLose:     -500,
	GoalMaintain: 0,
	GoalGain:     300,
}

// Round2 rounds to 2 decimal places. All calorie totals are rounded with it
// at every mutation, not just at read time.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to 1 decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// BMR computes the basal metabolic rate (kcal/day) via Mifflin-St Jeor.
func BMR(heightCm, weightKg float64, age int, gender Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == GenderMale {
		return Round2(base + 5)
	}
	return Round2(base - 161)
}

// TDEE scales BMR by the activity multiplier.
func TDEE(bmr float64, level ActivityLevel) float64 {
	return Round2(bmr * activityMultipliers[level])
}

// MinimumCalories is the safe daily floor: men 1500, women 1200 kcal
// (NIH/Harvard/Mayo Clinic guidance).
func MinimumCalories(gender Gender) float64 {
	if gender == GenderMale {
		return 1500
	}
	return 1200
}

// DailyTarget applies the goal adjustment to TDEE and clamps the result to
// the safe minimum. The clamp is a deliberate safety invariant: the target
// never drops below MinimumCalories regardless of goal.
func DailyTarget(tdee float64, goal Goal, gender Gender) float64 {
	target := Round2(tdee + goalAdjustments[goal])
	if min := MinimumCalories(gender); target < min {
		return min
	}
	return target
}

// Status classifies net calories against the daily target with a ±100 kcal
// tolerance band. Exactly ±100 counts as maintenance.
func Status(netCalories, dailyTarget float64) DailyStatus {
	diff := netCalories - dailyTarget
	if diff < -100 {
		return StatusDeficit
	}
	if diff > 100 {
		return StatusSurplus
	}
	return StatusMaintenance
}
