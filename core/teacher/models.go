package teacher

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/tutordesk/core"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

var Statuses = []string{string(StatusActive), string(StatusInactive), string(StatusPending)}

type Address struct {
	Street     string `json:"street" db:"street" validate:"required"`
	City       string `json:"city" db:"city" validate:"required"`
	Country    string `json:"country" db:"country" validate:"required"`
	PostalCode string `json:"postal_code" db:"postal_code" validate:"required"`
}

type Teacher struct {
	ID               string      `json:"id" db:"id"`
	Name             string      `json:"name" db:"name"`
	Email            string      `json:"email" db:"email"`
	WorkEmail        null.String `json:"work_email" db:"work_email"`
	Phone            string      `json:"phone" db:"phone"`
	Address          Address     `json:"address" db:"address"`
	Avatar           null.String `json:"avatar" db:"avatar"`
	Status           Status      `json:"status" db:"status"`
	JoinDate         string      `json:"join_date" db:"join_date"` // YYYY-MM-DD
	TotalEarnings    float64     `json:"total_earnings" db:"total_earnings"`
	Rating           float64     `json:"rating" db:"rating"`
	CompletedLessons int         `json:"completed_lessons" db:"completed_lessons"`
}

func (t Teacher) IsActive() bool {
	return t.Status == StatusActive
}

// Matches does a case-insensitive match of `search` on one of Name, Email or WorkEmail.
func (t Teacher) Matches(search string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(t.Name), search) ||
		strings.Contains(strings.ToLower(t.Email), search) ||
		(t.WorkEmail.Valid && strings.Contains(strings.ToLower(t.WorkEmail.String), search))
}

// UpdateTeacher defines what the profile view may change on an existing Teacher.
// The whole profile is sent on every save.
type UpdateTeacher struct {
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	WorkEmail string  `json:"work_email" validate:"omitempty,email"`
	Phone     string  `json:"phone" validate:"required"`
	Address   Address `json:"address"`
	Avatar    string  `json:"avatar" validate:"omitempty,url"`
	Status    Status  `json:"status" validate:"required,teacherstatus"`
}

func (ut *UpdateTeacher) Validate(validate *validator.Validate) error {
	ut.Name = core.CleanString(ut.Name)
	ut.Email = core.CleanString(ut.Email, true /* lower */)
	ut.WorkEmail = core.CleanString(ut.WorkEmail, true /* lower */)
	ut.Phone = core.CleanString(ut.Phone)
	ut.Avatar = core.CleanString(ut.Avatar)
	ut.Address.Street = core.CleanString(ut.Address.Street)
	ut.Address.City = core.CleanString(ut.Address.City)
	ut.Address.Country = core.CleanString(ut.Address.Country)
	ut.Address.PostalCode = core.CleanString(ut.Address.PostalCode, false)
	return validate.Struct(ut)
}

// Apply returns a copy of `orig` holding the profile changes.
// Identity & aggregate stats are carried over.
func (ut UpdateTeacher) Apply(orig Teacher) Teacher {
	t := orig
	t.Name = ut.Name
	t.Email = ut.Email
	t.WorkEmail = null.NewString(ut.WorkEmail, ut.WorkEmail != "")
	t.Phone = ut.Phone
	t.Address = ut.Address
	t.Avatar = null.NewString(ut.Avatar, ut.Avatar != "")
	t.Status = ut.Status
	return t
}

type QueryFilter struct {
	Search string `query:"search" json:"search"`
	Status string `query:"status" json:"status" validate:"omitempty,teacherstatus"`
}

func (qf *QueryFilter) Validate(validate *validator.Validate) error {
	qf.Clean()
	return validate.Struct(qf)
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

func (qf QueryFilter) Match(t Teacher) bool {
	if qf.Status != "" && string(t.Status) != qf.Status {
		return false
	}
	return t.Matches(qf.Search)
}
