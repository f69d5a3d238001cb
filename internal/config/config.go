package config

import (
	"fmt"
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/secureshop/backend/internal/models"
)

type Config struct {
	PORT           string
	DB_HOST        string
	DB_PORT        string
	DB_USER        string
	DB_PASSWORD    string
	DB_NAME        string
	ES_URL         string
	ES_USER        string
	ES_PASSWORD    string
	JWT_SECRET     string
	ADMIN_PASSWORD string
	KAFKA_ADDRESS  string
	UPLOAD_DIR     string
	CORS_ORIGINS   string
	LOG_LEVEL      string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		PORT:           os.Getenv("PORT"),
		DB_HOST:        os.Getenv("DB_HOST"),
		DB_PORT:        os.Getenv("DB_PORT"),
		DB_USER:        os.Getenv("DB_USER"),
		DB_PASSWORD:    os.Getenv("DB_PASSWORD"),
		DB_NAME:        os.Getenv("DB_NAME"),
		ES_URL:         os.Getenv("ES_URL"),
		ES_USER:        os.Getenv("ES_USER"),
		ES_PASSWORD:    os.Getenv("ES_PASSWORD"),
		JWT_SECRET:     os.Getenv("JWT_SECRET"),
		ADMIN_PASSWORD: os.Getenv("ADMIN_PASSWORD"),
		KAFKA_ADDRESS:  os.Getenv("KAFKA_ADDRESS"),
		UPLOAD_DIR:     os.Getenv("UPLOAD_DIR"),
		CORS_ORIGINS:   os.Getenv("CORS_ORIGINS"),
		LOG_LEVEL:      os.Getenv("LOG_LEVEL"),
	}

	if config.PORT == "" {
		config.PORT = "8080"
	}
	if config.UPLOAD_DIR == "" {
		config.UPLOAD_DIR = "./uploads"
	}

	return config, nil
}

// MustNonEmpty aborts process start when a required setting is missing.
func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}

// InitDB opens postgres when DB_HOST is set, otherwise an in-process sqlite
// database, and migrates the schema.
func InitDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DB_HOST != "" {
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			cfg.DB_USER, cfg.DB_PASSWORD, cfg.DB_HOST, cfg.DB_PORT, cfg.DB_NAME,
		)
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(":memory:")
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if cfg.DB_HOST == "" {
		// Every sqlite connection gets its own :memory: database, so the
		// pool must stay at one connection.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.Review{},
		&models.Session{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}
