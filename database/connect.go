package database

import (
	"fmt"
	"strconv"

	"restaurant_backend/config"
	"restaurant_backend/model"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DSN() (string, error) {
	port, err := strconv.ParseUint(config.ConfigDefault("DB_PORT", "5432"), 10, 32)
	if err != nil {
		return "", fmt.Errorf("failed to parse database port: %w", err)
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.ConfigDefault("DB_HOST", "localhost"),
		port,
		config.Config("DB_USER"),
		config.Config("DB_PASSWORD"),
		config.Config("DB_NAME"),
		config.ConfigDefault("DB_SSLMODE", "disable"),
	), nil
}

func ConnectDB(log *zap.Logger) (*gorm.DB, error) {
	dsn, err := DSN()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	log.Info("connection opened to database")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Info("database migrated")

	SeedData(db, log)
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Account{},
		&model.Category{},
		&model.Product{},
		&model.ProductTag{},
		&model.Ingredient{},
		&model.ProductIngredient{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderItemExtra{},
		&model.OrderItemIngredient{},
		&model.HeroSection{},
		&model.AboutSection{},
		&model.ContactInfo{},
		&model.FeaturedProduct{},
	)
}
