package store

import (
	"errors"

	"hostel-management-api/models"

	"gorm.io/gorm"
)

// CreateUserIfAbsent registers a user keyed by email. A repeat call with the
// same email is a no-op and reports created=false, whatever the rest of the
// payload looks like.
func (s *Store) CreateUserIfAbsent(u *models.User) (bool, error) {
	var existing models.User
	err := s.db.Where("email = ?", u.Email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := s.db.Create(u).Error; err != nil {
		return false, err
	}
	return true, nil
}

// UserByEmail returns nil with no error when the user does not exist.
func (s *Store) UserByEmail(email string) (*models.User, error) {
	var u models.User
	err := s.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// IsAdmin is the single authorization lookup: a missing user or any role
// other than admin means no privilege.
func (s *Store) IsAdmin(email string) (bool, error) {
	u, err := s.UserByEmail(email)
	if err != nil {
		return false, err
	}
	return u != nil && u.Role == models.RoleAdmin, nil
}

func (s *Store) ListUsers(f UserFilter) ([]models.User, error) {
	var users []models.User
	err := f.apply(s.db).Find(&users).Error
	return users, err
}

func (s *Store) UpdateBadge(email, badge string) error {
	res := s.db.Model(&models.User{}).Where("email = ?", email).Update("badge", badge)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store) PromoteToAdmin(id uint) error {
	res := s.db.Model(&models.User{}).Where("id = ?", id).Update("role", models.RoleAdmin)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
