package schedule

import (
	"math"

	"pettime_backend/internal/models"
)

// Price and duration estimates shown to the client before booking. They do
// not participate in slot validation.

// sizeMultiplier scales a base price by pet size class.
func sizeMultiplier(size models.PetSize) float64 {
	switch size {
	case models.PetSizeMedium:
		return 1.2
	case models.PetSizeLarge:
		return 1.5
	case models.PetSizeGiant:
		return 2.0
	default: // small
		return 1.0
	}
}

// EstimatePrice applies the size multiplier and the heavy-pet surcharge,
// rounded to cents.
func EstimatePrice(basePrice float64, size models.PetSize, weightKg float64) float64 {
	price := basePrice * sizeMultiplier(size)
	if weightKg > 50 {
		price *= 1.3
	}
	return math.Round(price*100) / 100
}

// BasePrice returns the list price for a service type on a small pet, the
// baseline EstimatePrice scales from.
func BasePrice(serviceType string) float64 {
	switch serviceType {
	case "banho":
		return 50
	case "tosa":
		return 80
	case "unha":
		return 20
	case "completo":
		return 110
	default:
		return 50
	}
}

// baseDuration returns the service duration in minutes for a medium pet.
func baseDuration(serviceType string) int {
	switch serviceType {
	case "banho":
		return 60
	case "tosa":
		return 90
	case "unha":
		return 15
	case "completo":
		return 120
	default:
		return 60
	}
}

// EstimateDuration returns the expected duration in minutes for a service on
// a pet of the given size.
func EstimateDuration(serviceType string, size models.PetSize) int {
	d := float64(baseDuration(serviceType))
	switch size {
	case models.PetSizeSmall:
		d *= 0.8
	case models.PetSizeLarge:
		d *= 1.3
	case models.PetSizeGiant:
		d *= 1.7
	}
	return int(math.Round(d))
}
