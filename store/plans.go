package store

import "hostel-management-api/models"

// ListPlans returns all plans, or the plans matching an exact name. A name
// lookup still returns a list so a hit is a one-element slice, not a 404.
func (s *Store) ListPlans(name string) ([]models.Plan, error) {
	var plans []models.Plan
	q := s.db.Order("price asc")
	if name != "" {
		q = q.Where("name = ?", name)
	}
	err := q.Find(&plans).Error
	return plans, err
}
