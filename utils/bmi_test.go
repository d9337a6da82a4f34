package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBMI(t *testing.T) {
	bmi, category, err := BMI(70, 175)
	assert.NoError(t, err)
	assert.InDelta(t, 22.86, bmi, 0.01)
	assert.Equal(t, "Normal weight", category)
}

func TestBMIRejectsBadInput(t *testing.T) {
	_, _, err := BMI(0, 175)
	assert.Error(t, err)

	_, _, err = BMI(70, 0)
	assert.Error(t, err)

	_, _, err = BMI(1000, 175)
	assert.Error(t, err)
}
