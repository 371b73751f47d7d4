package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"sbitm-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // pure Go SQLite driver, no cgo
)

var DB *gorm.DB

const (
	defaultDatabasePath = "sbitm_database.db"

	// Default seed credential, created only when the admin table is empty.
	// Rotate in any real deployment.
	defaultAdminUsername = "admin"
	defaultAdminPassword = "sbitm@2024"
)

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// SeedDatabase inserts the default admin credential on first run. It is a
// no-op when any admin row already exists, so repeated boots never duplicate
// the seed.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount > 0 {
		return
	}

	username := envOrDefault("ADMIN_USERNAME", defaultAdminUsername)
	password := envOrDefault("ADMIN_PASSWORD", defaultAdminPassword)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash default admin password: %v", err)
		return
	}

	admin := models.Admin{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("warning: failed to create default admin: %v", err)
		return
	}
	log.Println("Default admin seeded")
}

// ConnectDatabase opens the SQLite file, runs migrations and seeds the
// default admin. It sets config.DB for the rest of the process.
func ConnectDatabase() error {
	dbPath := envOrDefault("DATABASE_PATH", defaultDatabasePath)

	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}

	dialector := sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        dbPath,
		Conn:       sqlDB,
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.Enquiry{},
		&models.Application{},
		&models.NewsletterSubscription{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
