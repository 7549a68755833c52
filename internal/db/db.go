package db

import (
	"log"
	"time"

	"github.com/BruksfildServices01/marketplace-api/internal/config"
	"github.com/BruksfildServices01/marketplace-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Category{},
		&models.Service{},
		&models.Booking{},
		&models.Notification{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedCategories(db)

	return db
}

func seedCategories(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	categories := []models.Category{
		{Name: "Cleaning", Description: "Home and office cleaning", Icon: "broom"},
		{Name: "Plumbing", Description: "Repairs and installations", Icon: "wrench"},
		{Name: "Electrical", Description: "Wiring, fittings and repairs", Icon: "bolt"},
		{Name: "Tutoring", Description: "Private lessons", Icon: "book"},
		{Name: "Beauty", Description: "Salon services at home", Icon: "scissors"},
		{Name: "Repair", Description: "Appliance and gadget repair", Icon: "hammer"},
	}

	if err := db.Create(&categories).Error; err != nil {
		log.Printf("failed to seed categories: %v", err)
	}
}
