package utils

import "errors"

// BMI computes body mass index from weight in kilograms and height in
// centimeters, plus a human-readable category for the profile summary.
func BMI(weightKg, heightCm float64) (float64, string, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, "", errors.New("weight and height must be positive")
	}
	if weightKg < 20 || weightKg > 400 || heightCm < 80 || heightCm > 250 {
		return 0, "", errors.New("weight/height outside plausible range")
	}

	m := heightCm / 100.0
	bmi := weightKg / (m * m)

	var category string
	switch {
	case bmi < 18.5:
		category = "Underweight"
	case bmi < 25.0:
		category = "Normal weight"
	case bmi < 30.0:
		category = "Overweight"
	default:
		category = "Obese"
	}
	return bmi, category, nil
}
