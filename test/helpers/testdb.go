package helpers

import (
	"fmt"
	"testing"
	"time"

	"pettime_backend/internal/auth"
	"pettime_backend/internal/models"

	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing the raw password in PasswordHash.
func CreateUser(t *testing.T, tx *gorm.DB, user *models.User) *models.User {
	hash, err := auth.HashPassword(user.PasswordHash)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	user.PasswordHash = hash

	if user.Role == "" {
		user.Role = models.UserRoleClient
	}

	if err := tx.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user %s: %v", user.Email, err)
	}
	return user
}

// CreateClient inserts a client with a unique email and returns a valid
// access token for it.
func CreateClient(t *testing.T, tx *gorm.DB) (string, *models.User) {
	user := CreateUser(t, tx, &models.User{
		Name:         "Cliente Teste",
		Email:        fmt.Sprintf("cliente_%d@test.com", time.Now().UnixNano()),
		PasswordHash: "senha123",
		Role:         models.UserRoleClient,
	})

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		t.Fatalf("failed to issue test token: %v", err)
	}
	return token, user
}

// CreateAdmin inserts an admin with a unique email and returns its token.
func CreateAdmin(t *testing.T, tx *gorm.DB) (string, *models.User) {
	user := CreateUser(t, tx, &models.User{
		Name:         "Admin Teste",
		Email:        fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano()),
		PasswordHash: "senha123",
		Role:         models.UserRoleAdmin,
	})

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		t.Fatalf("failed to issue test token: %v", err)
	}
	return token, user
}

// CreatePet inserts a pet owned by userID.
func CreatePet(t *testing.T, tx *gorm.DB, userID uint) *models.Pet {
	pet := &models.Pet{
		Name:   "Rex",
		Breed:  "Vira-lata",
		Age:    3,
		Size:   models.PetSizeMedium,
		UserID: userID,
	}
	if err := tx.Create(pet).Error; err != nil {
		t.Fatalf("failed to create test pet: %v", err)
	}
	return pet
}

// CreateService inserts a bookable service.
func CreateService(t *testing.T, tx *gorm.DB) *models.Service {
	svc := &models.Service{Type: "banho"}
	if err := tx.Create(svc).Error; err != nil {
		t.Fatalf("failed to create test service: %v", err)
	}
	return svc
}

// CreateGroomingType inserts a grooming variant.
func CreateGroomingType(t *testing.T, tx *gorm.DB) *models.GroomingType {
	gt := &models.GroomingType{Type: "higienica"}
	if err := tx.Create(gt).Error; err != nil {
		t.Fatalf("failed to create test grooming type: %v", err)
	}
	return gt
}

// CreateProduct inserts a product.
func CreateProduct(t *testing.T, tx *gorm.DB, description string) *models.Product {
	product := &models.Product{Description: description, Type: 1}
	if err := tx.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return product
}

// CreateAdditionalService inserts an add-on.
func CreateAdditionalService(t *testing.T, tx *gorm.DB, description string) *models.AdditionalService {
	as := &models.AdditionalService{Description: description}
	if err := tx.Create(as).Error; err != nil {
		t.Fatalf("failed to create test additional service: %v", err)
	}
	return as
}

// NextBookableDate returns a future date that is not a Sunday, formatted the
// way the API expects.
func NextBookableDate() string {
	d := time.Now().AddDate(0, 0, 2)
	for d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

// NextSunday returns the next Sunday strictly in the future.
func NextSunday() string {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}
