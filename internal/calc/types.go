package calc

// Gender, ActivityLevel and Goal are the profile enums every formula keys on.
// They are stored as strings by the persistence layer.

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
)

func (a ActivityLevel) Valid() bool {
	_, ok := activityMultipliers[a]
	return ok
}

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

func (g Goal) Valid() bool {
	_, ok := goalAdjustments[g]
	return ok
}

// DailyStatus classifies a day's net calories against the daily target.
type DailyStatus string

const (
	StatusDeficit     DailyStatus = "deficit"
	StatusMaintenance DailyStatus = "maintenance"
	StatusSurplus     DailyStatus = "surplus"
)
