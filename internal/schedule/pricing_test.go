package schedule

import (
	"testing"

	"pettime_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestEstimatePrice(t *testing.T) {
	assert.Equal(t, 50.0, EstimatePrice(50, models.PetSizeSmall, 10))
	assert.Equal(t, 60.0, EstimatePrice(50, models.PetSizeMedium, 10))
	assert.Equal(t, 75.0, EstimatePrice(50, models.PetSizeLarge, 10))
	assert.Equal(t, 100.0, EstimatePrice(50, models.PetSizeGiant, 10))
}

func TestEstimatePrice_HeavyPetSurcharge(t *testing.T) {
	assert.Equal(t, 65.0, EstimatePrice(50, models.PetSizeSmall, 51))
	// Surcharge stacks on the size multiplier
	assert.Equal(t, 130.0, EstimatePrice(50, models.PetSizeGiant, 60))
}

func TestEstimateDuration(t *testing.T) {
	assert.Equal(t, 60, EstimateDuration("banho", models.PetSizeMedium))
	assert.Equal(t, 48, EstimateDuration("banho", models.PetSizeSmall))
	assert.Equal(t, 117, EstimateDuration("tosa", models.PetSizeLarge))
	assert.Equal(t, 204, EstimateDuration("completo", models.PetSizeGiant))
	// Unknown service types fall back to an hour
	assert.Equal(t, 60, EstimateDuration("mistério", models.PetSizeMedium))
}
