package database

import (
	"fmt"
	"log"
	"os"

	"toadtoe-api/internal/domain/articles"
	"toadtoe-api/internal/domain/banners"
	"toadtoe-api/internal/domain/billing"
	"toadtoe-api/internal/domain/emailtpl"
	"toadtoe-api/internal/domain/media"
	"toadtoe-api/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// Required for uuid primary key defaults
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// accounts
		&users.User{},
		&users.VerificationToken{},
		&users.UserRole{},

		// content
		&articles.Article{},
		&articles.ArticleLike{},
		&banners.Banner{},
		&media.Image{},

		// email
		&emailtpl.EmailTemplate{},

		// billing
		&billing.Payment{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	if err := emailtpl.Seed(DB); err != nil {
		log.Fatal("❌ Failed to seed email templates:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
