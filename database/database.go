package database

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"dateplan-app/config"
	"dateplan-app/internal/domain/posts"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

var validDBName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

func InitDB() {
	if config.DATABASE_URL == "" {
		log.Fatal("❌ DATABASE_URL not set")
	}

	db, err := Open(config.DATABASE_URL)
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db
	fmt.Println("✅ Connected and migrated successfully")
}

// Open connects to dsn and creates the date_posts table if it is missing.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := db.AutoMigrate(&posts.DatePost{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return db, nil
}

// EnsureDatabase creates database name through the maintenance connection
// adminDSN unless it already exists. It reports whether it created it.
func EnsureDatabase(adminDSN, name string) (bool, error) {
	if !validDBName.MatchString(name) {
		return false, fmt.Errorf("invalid database name %q", name)
	}

	db, err := gorm.Open(postgres.Open(adminDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return false, fmt.Errorf("connect to maintenance database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return false, err
	}
	defer sqlDB.Close()

	var exists bool
	if err := db.Raw("SELECT EXISTS (SELECT 1 FROM pg_catalog.pg_database WHERE datname = ?)", name).
		Scan(&exists).Error; err != nil {
		return false, fmt.Errorf("check database %q: %w", name, err)
	}
	if exists {
		return false, nil
	}

	// CREATE DATABASE takes no bind parameters; name is validated above.
	if err := db.Exec("CREATE DATABASE " + quoteIdent(name)).Error; err != nil {
		return false, fmt.Errorf("create database %q: %w", name, err)
	}
	return true, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
