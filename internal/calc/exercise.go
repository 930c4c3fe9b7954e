package calc

// metValues maps an activity key to its MET coefficient.
// Source: Compendium of Physical Activities (Ainsworth et al., 2011).
// Formula: kcal = MET × weight_kg × (duration_min / 60)
var metValues = map[string]float64{
	"walking_slow":             2.8,  // <3.2 km/h
	"walking":                  3.5,  // moderate ~5 km/h
	"walking_fast":             4.3,  // brisk ~6 km/h
	"jogging":                  7.0,  // light jog ~8 km/h
	"running":                  9.8,  // ~10 km/h
	"running_fast":             11.5, // >12 km/h
	"cycling_light":            4.0,  // <16 km/h leisure
	"cycling":                  6.8,  // moderate 16-19 km/h
	"cycling_vigorous":         10.0, // >22 km/h
	"swimming":                 6.0,  // moderate freestyle
	"swimming_vigorous":        9.8,  // vigorous freestyle
	"weight_training":          3.5,  // general, moderate
	"weight_training_vigorous": 6.0,  // vigorous effort
	"hiit":                     8.0,  // high-intensity interval training
	"elliptical":               5.0,  // moderate resistance
	"rowing_machine":           7.0,  // moderate effort
	"stair_climbing":           8.8,  // stair climber machine
	"jump_rope":                10.0, // moderate pace
	"yoga":                     2.5,  // hatha yoga
	"pilates":                  3.0,  // moderate
	"stretching":               2.3,  // general stretching
	"basketball":               6.5,  // non-game, general
	"soccer":                   7.0,  // general, recreational
	"tennis":                   7.3,  // singles
	"dancing":                  4.8,  // general social/aerobic
	"hiking":                   6.0,  // general, cross-country
	"other":                    4.0,  // conservative general estimate
}

// ExerciseCalories estimates kcal burned for an activity. Unrecognized
// activity keys fall back to the conservative "other" coefficient rather
// than erroring, so free-form client input always yields an estimate.
func ExerciseCalories(activity string, durationMin int, weightKg float64) float64 {
	met, ok := metValues[activity]
	if !ok {
		met = metValues["other"]
	}
	return Round1(met * weightKg * float64(durationMin) / 60)
}
