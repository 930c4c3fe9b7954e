package calc

import "math"

// Body composition estimates derived from a profile snapshot. Functions that
// depend on optional tape measurements return nil when the inputs are
// missing or degenerate; callers serialize nil as an explicit JSON null so
// clients can tell "insufficient measurements" apart from zero.

// BMI is weight (kg) over height (m) squared, 1 decimal.
func BMI(heightCm, weightKg float64) float64 {
	h := heightCm / 100
	return Round1(weightKg / (h * h))
}

// HydrationML is the suggested daily water intake: 35 ml per kg body weight.
func HydrationML(weightKg float64) int {
	return int(math.Round(weightKg * 35))
}

// BodyFatPct estimates body fat percentage with the US Navy circumference
// method (Hodgdon & Beckett 1984). Requires waist and neck; females also
// need hip. Returns nil when measurements are missing or the circumference
// difference is non-positive. Result is floored at 0 and rounded to 1
// decimal.
func BodyFatPct(gender Gender, heightCm float64, waistCm, neckCm, hipCm *float64) *float64 {
	if waistCm == nil || neckCm == nil {
		return nil
	}

	var pct float64
	if gender == GenderMale {
		diff := *waistCm - *neckCm
		if diff <= 0 {
			return nil
		}
		pct = 495/(1.0324-0.19077*math.Log10(diff)+0.15456*math.Log10(heightCm)) - 450
	} else {
		if hipCm == nil {
			return nil
		}
		diff := *waistCm + *hipCm - *neckCm
		if diff <= 0 {
			return nil
		}
		pct = 495/(1.29579-0.35004*math.Log10(diff)+0.22100*math.Log10(heightCm)) - 450
	}

	if pct < 0 {
		pct = 0
	}
	pct = Round1(pct)
	return &pct
}

// LeanBodyMass is weight minus the estimated fat mass, 1 decimal. Nil when
// body fat is unknown.
func LeanBodyMass(weightKg float64, bodyFatPct *float64) *float64 {
	if bodyFatPct == nil {
		return nil
	}
	lbm := Round1(weightKg * (1 - *bodyFatPct/100))
	return &lbm
}

// FFMI is the fat-free mass index with the Kouri height correction
// (normalized to 1.8 m), 1 decimal. Nil when lean body mass is unknown.
func FFMI(heightCm float64, lbm *float64) *float64 {
	if lbm == nil {
		return nil
	}
	h := heightCm / 100
	v := Round1(*lbm/(h*h) + 6.1*(1.8-h))
	return &v
}

// ProteinRange is the suggested daily protein intake in grams: 1.6–2.2 g per
// kg of lean body mass, rounded to whole grams. Both bounds are nil when
// lean body mass is unknown.
func ProteinRange(lbm *float64) (minG, maxG *float64) {
	if lbm == nil {
		return nil, nil
	}
	lo := math.Round(*lbm * 1.6)
	hi := math.Round(*lbm * 2.2)
	return &lo, &hi
}
