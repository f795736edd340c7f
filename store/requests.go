package store

import (
	"errors"

	"hostel-management-api/models"

	"gorm.io/gorm"
)

func (s *Store) CreateRequest(r *models.Request) error {
	return s.db.Create(r).Error
}

func (s *Store) RequestByID(id uint) (*models.Request, error) {
	var r models.Request
	err := s.db.First(&r, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) ListRequests(f RequestFilter) ([]models.Request, error) {
	var requests []models.Request
	err := f.apply(s.db).Order("created_at desc").Find(&requests).Error
	return requests, err
}

func (s *Store) RequestsByEmail(email string) ([]models.Request, error) {
	var requests []models.Request
	err := s.db.Where("request_email = ?", email).Order("created_at desc").Find(&requests).Error
	return requests, err
}

func (s *Store) UpdateRequestStatus(id uint, status models.RequestStatus) error {
	res := s.db.Model(&models.Request{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store) DeleteRequest(id uint) error {
	res := s.db.Delete(&models.Request{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
