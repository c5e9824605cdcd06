package qualification

import (
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/tutordesk/core"
)

type Category string

const (
	CategoryPrivate Category = "private"
	CategoryGroup   Category = "group"
)

var Categories = []string{string(CategoryPrivate), string(CategoryGroup)}

type Qualification struct {
	ID          string      `json:"id" db:"id"`
	TeacherID   string      `json:"teacher_id" db:"teacher_id"`
	Name        string      `json:"name" db:"name"`
	Rate        float64     `json:"rate" db:"rate"` // hourly
	Category    Category    `json:"category" db:"category"`
	IsActive    bool        `json:"is_active" db:"is_active"`
	Description null.String `json:"description" db:"description"`
}

// Partitioned groups qualifications by category, keeping their order.
type Partitioned struct {
	Private []Qualification `json:"private"`
	Group   []Qualification `json:"group"`
}

// Partition filters `quals` by category.
func Partition(quals []Qualification) Partitioned {
	p := Partitioned{
		Private: make([]Qualification, 0),
		Group:   make([]Qualification, 0),
	}
	for _, q := range quals {
		switch q.Category {
		case CategoryPrivate:
			p.Private = append(p.Private, q)
		case CategoryGroup:
			p.Group = append(p.Group, q)
		}
	}
	return p
}

// FilterByCategory returns the qualifications of `cat`, keeping their order.
func FilterByCategory(quals []Qualification, cat Category) []Qualification {
	filtered := make([]Qualification, 0, len(quals))
	for _, q := range quals {
		if q.Category == cat {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// NewQualification contains information needed to add a Qualification.
type NewQualification struct {
	Name        string   `json:"name" validate:"required"`
	Rate        float64  `json:"rate" validate:"required,gt=0"`
	Category    Category `json:"category" validate:"omitempty,qualcategory"`
	IsActive    *bool    `json:"is_active"`
	Description string   `json:"description"`
}

func (nq *NewQualification) Validate(validate *validator.Validate) error {
	nq.Name = core.CleanString(nq.Name)
	nq.Description = core.CleanString(nq.Description)
	nq.Category = Category(core.CleanString(string(nq.Category), true /* lower */))
	return validate.Struct(nq)
}

// UpdateQualification holds the full replacement of an existing Qualification.
type UpdateQualification struct {
	Name        string   `json:"name" validate:"required"`
	Rate        float64  `json:"rate" validate:"required,gt=0"`
	Category    Category `json:"category" validate:"required,qualcategory"`
	IsActive    bool     `json:"is_active"`
	Description string   `json:"description"`
}

func (uq *UpdateQualification) Validate(validate *validator.Validate) error {
	uq.Name = core.CleanString(uq.Name)
	uq.Description = core.CleanString(uq.Description)
	uq.Category = Category(core.CleanString(string(uq.Category), true /* lower */))
	return validate.Struct(uq)
}
