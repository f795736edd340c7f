package store

import "hostel-management-api/models"

func (s *Store) CreatePayment(p *models.Payment) error {
	return s.db.Create(p).Error
}

func (s *Store) PaymentsByEmail(email string) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Where("user_email = ?", email).Order("created_at desc").Find(&payments).Error
	return payments, err
}

// DashboardStats backs the admin overview: per-collection counts plus total
// revenue. Revenue is 0, not NULL, when no payments exist.
type DashboardStats struct {
	Users    int64   `json:"users"`
	Meals    int64   `json:"meals"`
	Requests int64   `json:"requests"`
	Reviews  int64   `json:"reviews"`
	Revenue  float64 `json:"revenue"`
}

func (s *Store) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.User{}).Count(&stats.Users).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Meal{}).Count(&stats.Meals).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Request{}).Count(&stats.Requests).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Review{}).Count(&stats.Reviews).Error; err != nil {
		return nil, err
	}
	err := s.db.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.Revenue).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
