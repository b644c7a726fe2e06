package configs

import (
	"log"

	"stallpos/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedOwner creates the first owner account from env on a fresh database.
func SeedOwner(db *gorm.DB, cfg *Config) error {
	if cfg.OwnerUsername == "" || cfg.OwnerPassword == "" {
		log.Println("skip seeding owner: missing OWNER_USERNAME/OWNER_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Staff{}).Where("username = ?", cfg.OwnerUsername).Count(&count)
	if count > 0 {
		log.Println("owner already exists:", cfg.OwnerUsername)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	owner := entity.Staff{
		Username:     cfg.OwnerUsername,
		PasswordHash: string(hash),
		Role:         "owner",
	}
	return db.Create(&owner).Error
}
