// SPDX-License-Identifier: GPL-3.0-only

package fitness

type Category string

const (
	Underweight Category = "Underweight"
	Normal      Category = "Normal"
	Overweight  Category = "Overweight"
)

var adviceByCategory = map[Category]string{
	Underweight: "Underweight: Eat more calories.",
	Normal:      "Normal: Maintain diet & workout.",
	Overweight:  "Overweight: Reduce calories & increase activity.",
}

// BMI is weight in kilograms over height in meters squared.
func BMI(weightKg, heightMeters float64) float64 {
	return weightKg / (heightMeters * heightMeters)
}

// Categorize maps a BMI onto its band. The lower bound of each band is
// inclusive: 18.5 is Normal, 24.9 is Overweight.
func Categorize(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 24.9:
		return Normal
	default:
		return Overweight
	}
}

// Advice returns the BMI category and its fixed advisory message.
func Advice(weightKg, heightMeters float64) (Category, string) {
	category := Categorize(BMI(weightKg, heightMeters))
	return category, adviceByCategory[category]
}

// BMISeries derives per-record BMI values for a trend chart, preserving the
// order of the input weights.
func BMISeries(weights []float64, heightMeters float64) []float64 {
	series := make([]float64, len(weights))
	for i, w := range weights {
		series[i] = BMI(w, heightMeters)
	}
	return series
}
