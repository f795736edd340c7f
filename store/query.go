package store

import "gorm.io/gorm"

// Filter types translate optional query parameters into WHERE clauses. Each
// rule applies independently and the clauses AND together; an empty filter
// matches the whole collection.

type MealFilter struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

func (f MealFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Search != "" {
		q = q.Where("title LIKE ?", "%"+f.Search+"%")
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	return q
}

// UserFilter matches by name, by email, or by either when both terms are
// given. An email term with no name term still filters by email.
type UserFilter struct {
	Name  string
	Email string
}

func (f UserFilter) apply(q *gorm.DB) *gorm.DB {
	switch {
	case f.Name != "" && f.Email != "":
		q = q.Where("name LIKE ? OR email LIKE ?", "%"+f.Name+"%", "%"+f.Email+"%")
	case f.Name != "":
		q = q.Where("name LIKE ?", "%"+f.Name+"%")
	case f.Email != "":
		q = q.Where("email LIKE ?", "%"+f.Email+"%")
	}
	return q
}

// RequestFilter matches a single term against requester name or email.
type RequestFilter struct {
	Value string
}

func (f RequestFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Value != "" {
		q = q.Where("user_name LIKE ? OR request_email LIKE ?", "%"+f.Value+"%", "%"+f.Value+"%")
	}
	return q
}

// SortSpec orders the admin meal listing. Column names go through a
// whitelist so user input never reaches the ORDER BY clause directly.
type SortSpec struct {
	SortBy string
	Order  string
}

var sortableMealColumns = map[string]bool{
	"likes":         true,
	"reviews_count": true,
	"price":         true,
	"rating":        true,
	"post_time":     true,
}

func (sp SortSpec) apply(q *gorm.DB) *gorm.DB {
	col := sp.SortBy
	if !sortableMealColumns[col] {
		col = "likes"
	}
	dir := "desc"
	if sp.Order == "asc" {
		dir = "asc"
	}
	return q.Order(col + " " + dir)
}
