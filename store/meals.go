package store

import (
	"errors"
	"time"

	"hostel-management-api/models"

	"gorm.io/gorm"
)

func (s *Store) CreateMeal(m *models.Meal) error {
	return s.db.Create(m).Error
}

func (s *Store) MealByID(id uint) (*models.Meal, error) {
	var m models.Meal
	err := s.db.First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) ListMeals(f MealFilter) ([]models.Meal, error) {
	var meals []models.Meal
	err := f.apply(s.db).Find(&meals).Error
	return meals, err
}

func (s *Store) SortedMeals(sp SortSpec) ([]models.Meal, error) {
	var meals []models.Meal
	err := sp.apply(s.db.Model(&models.Meal{})).Find(&meals).Error
	return meals, err
}

// UpdateMeal applies a field map built by the handler from its whitelist.
func (s *Store) UpdateMeal(id uint, fields map[string]interface{}) error {
	res := s.db.Model(&models.Meal{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store) DeleteMeal(id uint) error {
	res := s.db.Delete(&models.Meal{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementLikes bumps the counter in a single UPDATE statement. Concurrent
// callers never lose an increment because no read step is involved.
func (s *Store) IncrementLikes(id uint) error {
	return s.incrementCounter(id, "likes")
}

func (s *Store) IncrementReviewsCount(id uint) error {
	return s.incrementCounter(id, "reviews_count")
}

func (s *Store) incrementCounter(id uint, column string) error {
	res := s.db.Model(&models.Meal{}).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PublishMeal moves an upcoming meal into the catalog and stamps its post
// time. The lifecycle check happens in the handler before this is called.
func (s *Store) PublishMeal(id uint, at time.Time) error {
	res := s.db.Model(&models.Meal{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":    models.MealPublished,
		"post_time": at,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
