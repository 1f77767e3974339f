package database

import (
	"log"
	"os"
	"time"

	"gamerater/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect initializes the database connection and runs migrations.
func Connect(dsn string) {
	var err error

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migrated successfully.")
}

// Migrate registers the game/category join table and runs auto-migration
// for every model.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Game{}, "Categories", &models.GameCategory{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Game{},
		&models.GamePicture{},
		&models.GameRating{},
		&models.Review{},
	)
}
