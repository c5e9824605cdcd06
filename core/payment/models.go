package payment

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/tutordesk/core"
)

type (
	Status string
	Method string
)

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"

	MethodCard   Method = "card"
	MethodBank   Method = "bank"
	MethodPaypal Method = "paypal"
)

var (
	Statuses = []string{string(StatusCompleted), string(StatusPending), string(StatusFailed)}
	Methods  = []string{string(MethodCard), string(MethodBank), string(MethodPaypal)}
)

type Transaction struct {
	ID          string  `json:"id" db:"id"`
	TeacherID   string  `json:"teacher_id" db:"teacher_id"`
	Amount      float64 `json:"amount" db:"amount"`
	Date        string  `json:"date" db:"date"` // YYYY-MM-DD
	Status      Status  `json:"status" db:"status"`
	Description string  `json:"description" db:"description"`
	Method      Method  `json:"method" db:"method"`
}

// InMonth reports whether the transaction is dated in the calendar month of `t`.
func (tx Transaction) InMonth(t time.Time) bool {
	d, err := core.ParseDate(tx.Date)
	if err != nil {
		return false
	}
	return d.Year() == t.Year() && d.Month() == t.Month()
}

// PayoutMethod is a way a teacher can get paid.
type PayoutMethod struct {
	Method  Method `json:"method"`
	Name    string `json:"name"`
	Primary bool   `json:"primary"`
}

type QueryFilter struct {
	Status string `query:"status" json:"status" validate:"omitempty,txstatus"`
	Method string `query:"method" json:"method" validate:"omitempty,txmethod"`
}

func (qf *QueryFilter) Clean() {
	qf.Status = core.CleanString(qf.Status, true /* lower */)
	qf.Method = core.CleanString(qf.Method, true /* lower */)
}

func (qf *QueryFilter) Validate(validate *validator.Validate) error {
	qf.Clean()
	return validate.Struct(qf)
}

func (qf QueryFilter) Match(tx Transaction) bool {
	if qf.Status != "" && string(tx.Status) != qf.Status {
		return false
	}
	return qf.Method == "" || string(tx.Method) == qf.Method
}

// PaymentRequest is a teacher asking to be paid `Amount`.
type PaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method Method  `json:"method" validate:"omitempty,txmethod"`
}

func (pr *PaymentRequest) Validate(validate *validator.Validate) error {
	pr.Method = Method(core.CleanString(string(pr.Method), true /* lower */))
	return validate.Struct(pr)
}
