package config

import (
	"log"
	"os"

	"cineplus-api/internal/adapters/persistence/models"
	"cineplus-api/internal/core/domain"
	"cineplus-api/internal/pkg/password"

	"gorm.io/gorm"
)

// Seed inserts the bootstrap admin and the base genres when the database
// is empty. Safe to run on every startup.
func Seed(db *gorm.DB) error {
	if err := seedBootstrapAdmin(db); err != nil {
		return err
	}
	if err := seedGenres(db); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

func seedBootstrapAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	plain := os.Getenv("SEED_ADMIN_PASSWORD")
	if plain == "" {
		log.Println("⚠️ No admins exist and SEED_ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hashed, err := password.Hash(plain)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Name:     "Bootstrap Administrator",
		Email:    "admin@cineplus.local",
		Password: hashed,
		Level:    domain.LevelManager,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("   Created bootstrap admin: %s", admin.Email)
	return nil
}

func seedGenres(db *gorm.DB) error {
	genres := []models.Genre{
		{Name: "Action"},
		{Name: "Comedy"},
		{Name: "Drama"},
		{Name: "Horror"},
		{Name: "Sci-Fi"},
	}

	for _, g := range genres {
		var existing models.Genre
		if err := db.Where("name = ?", g.Name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&g).Error; err != nil {
					return err
				}
				log.Printf("   Created genre: %s", g.Name)
			}
		}
	}
	return nil
}
