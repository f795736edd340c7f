package store

import (
	"log"

	"hostel-management-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store wraps the database handle. It is constructed once in main and handed
// to handlers and middleware, so tests can substitute their own instance.
type Store struct {
	db *gorm.DB
}

func New(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate all models
	if err := db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.Review{},
		&models.Request{},
		&models.Plan{},
		&models.Payment{},
	); err != nil {
		return nil, err
	}

	log.Println("database connected and migrated")
	return &Store{db: db}, nil
}

// SeedPlans inserts the fixed membership tiers on first boot. Re-running
// against a populated table is a no-op.
func (s *Store) SeedPlans() error {
	var count int64
	if err := s.db.Model(&models.Plan{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	plans := []models.Plan{
		{Name: "Silver", Price: 9.99, Badge: "Silver", Perks: "Upcoming meal access"},
		{Name: "Gold", Price: 19.99, Badge: "Gold", Perks: "Upcoming meal access, priority requests"},
		{Name: "Platinum", Price: 29.99, Badge: "Platinum", Perks: "All perks, dedicated support"},
	}
	return s.db.Create(&plans).Error
}
