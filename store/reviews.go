package store

import (
	"errors"

	"hostel-management-api/models"

	"gorm.io/gorm"
)

func (s *Store) CreateReview(r *models.Review) error {
	return s.db.Create(r).Error
}

func (s *Store) ReviewByID(id uint) (*models.Review, error) {
	var r models.Review
	err := s.db.First(&r, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) ListReviews() ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Order("created_at desc").Find(&reviews).Error
	return reviews, err
}

func (s *Store) ReviewsByEmail(email string) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("user_email = ?", email).Order("created_at desc").Find(&reviews).Error
	return reviews, err
}

func (s *Store) UpdateReviewText(id uint, text string) error {
	res := s.db.Model(&models.Review{}).Where("id = ?", id).Update("text", text)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store) DeleteReview(id uint) error {
	res := s.db.Delete(&models.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
