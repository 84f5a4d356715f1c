package config

import (
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret []byte

var (
	Port          string
	StorageRoot   string
	OwnerEmail    string
	OwnerPassword string
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env when present and resolves all settings.
func Load() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "bistro_super_secret_2024"))
	Port = getEnv("PORT", "8080")
	StorageRoot = getEnv("STORAGE_ROOT", "./storage-data")
	OwnerEmail = getEnv("OWNER_EMAIL", "owner@bistro.local")
	OwnerPassword = getEnv("OWNER_PASSWORD", "changeme")
}

// OpenDB connects the document store's backing database: PostgreSQL when
// DATABASE_DSN is set, an embedded SQLite file otherwise.
func OpenDB() (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), gormCfg)
	}
	return gorm.Open(sqlite.Open(getEnv("SQLITE_PATH", "bistro.db")), gormCfg)
}
