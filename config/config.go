package config

import (
	"fmt"
	"log"
	"os"

	"localchef-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the single process-lifetime database handle. It is opened once in
// InitDB, shared by every handler, and never explicitly closed; gorm handles
// are safe for concurrent use.
var DB *gorm.DB

type Config struct {
	Port       string
	DBDriver   string
	DBSource   string
	DBUser     string
	DBPassword string
	JWTSecret  []byte
}

// Load reads .env (if present) and the environment. Defaults keep the server
// runnable out of the box against a local sqlite file.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	return &Config{
		Port:       getEnv("PORT", "3000"),
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBSource:   getEnv("DB_SOURCE", "localchef.db"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		JWTSecret:  []byte(getEnv("JWT_SECRET", "localchef_dev_secret")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the database connection and migrates every collection.
func InitDB(cfg *Config) {
	var err error
	switch cfg.DBDriver {
	case "postgres":
		dsn := cfg.DBSource
		if cfg.DBUser != "" {
			dsn = fmt.Sprintf("%s user=%s password=%s", cfg.DBSource, cfg.DBUser, cfg.DBPassword)
		}
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	default:
		DB, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	}
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate auto-migrates all collections onto the given handle. Split out so
// tests can run it against their own in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Meal{},
		&models.Review{},
		&models.Order{},
		&models.Favorite{},
		&models.User{},
		&models.RoleRequest{},
	)
}
