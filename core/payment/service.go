package payment

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/teacher"
)

const (
	requestDescription = "Payment request"
	minAmount          = 0.01
)

var amountTooSmallText = fmt.Sprintf("must be at least %.2f", minAmount)

type (
	Repository interface {
		// QueryTransactions returns the transactions of a teacher, latest first.
		QueryTransactions(ctx context.Context, teacherID string, filter QueryFilter) ([]Transaction, error)
		CreateTransaction(ctx context.Context, tx Transaction) (Transaction, error)
	}

	Service struct {
		repo          Repository
		mailSvc       core.EmailService
		logger        core.Logger
		defaultMethod Method
		nowFunc       func() time.Time
	}
)

// NewService fails when the configured default method is not one of Methods.
func NewService(repo Repository, mailSvc core.EmailService, logger core.Logger, conf *core.Config) (*Service, error) {
	method := Method(core.CleanString(conf.DefaultPayMethod, true /* lower */))
	if method == "" {
		method = MethodBank
	}
	if !isMethod(method) {
		return nil, errors.Errorf("invalid default payment method %q (want one of %v)", conf.DefaultPayMethod, Methods)
	}
	return &Service{
		repo:          repo,
		mailSvc:       mailSvc,
		logger:        logger,
		defaultMethod: method,
		nowFunc:       time.Now,
	}, nil
}

func isMethod(m Method) bool {
	for _, method := range Methods {
		if string(m) == method {
			return true
		}
	}
	return false
}

// SetNowFunc overrides the clock; for tests.
func (svc *Service) SetNowFunc(f func() time.Time) {
	svc.nowFunc = f
}

func (svc *Service) Now() time.Time {
	return svc.nowFunc()
}

func (svc *Service) List(ctx context.Context, teacherID string, filter QueryFilter) ([]Transaction, error) {
	filter.Clean()
	return svc.repo.QueryTransactions(ctx, teacherID, filter)
}

// Summary computes the teacher's payment summary as of now.
func (svc *Service) Summary(ctx context.Context, t teacher.Teacher) (Summary, error) {
	txs, err := svc.repo.QueryTransactions(ctx, t.ID, QueryFilter{})
	if err != nil {
		return Summary{}, err
	}
	return Summarize(txs, t.TotalEarnings, svc.nowFunc()), nil
}

// PayoutMethods lists the methods a teacher can be paid with; the default one is primary.
func (svc *Service) PayoutMethods() []PayoutMethod {
	names := map[Method]string{MethodBank: "Bank Transfer", MethodPaypal: "PayPal", MethodCard: "Card"}
	methods := []PayoutMethod{{Method: svc.defaultMethod, Name: names[svc.defaultMethod], Primary: true}}
	for _, m := range []Method{MethodBank, MethodPaypal} {
		if m != svc.defaultMethod {
			methods = append(methods, PayoutMethod{Method: m, Name: names[m]})
		}
	}
	return methods
}

// RequestPayment records a pending transaction for `t` and notifies them. `pr` must be validated.
func (svc *Service) RequestPayment(ctx context.Context, t teacher.Teacher, pr PaymentRequest) (Transaction, error) {
	// amounts are kept with two decimals
	amount := core.Round(pr.Amount, 2)
	if amount < minAmount {
		return Transaction{}, core.NewValidationError(nil, core.FieldError{Field: "amount", Error: amountTooSmallText})
	}
	method := pr.Method
	if method == "" {
		method = svc.defaultMethod
	}
	tx, err := svc.repo.CreateTransaction(ctx, Transaction{
		ID:          uuid.New().String(),
		TeacherID:   t.ID,
		Amount:      amount,
		Date:        core.Today(svc.nowFunc()),
		Status:      StatusPending,
		Description: requestDescription,
		Method:      method,
	})
	if err != nil {
		return Transaction{}, errors.Wrap(err, "creating transaction")
	}
	svc.logger.Info("payment requested", t, map[string]interface{}{"transaction_id": tx.ID, "amount": tx.Amount})

	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           recipients(t),
		Subject:      "Payment request received",
		TemplateName: "payment_request",
		TemplateData: map[string]interface{}{
			"TeacherName": t.Name,
			"Amount":      tx.Amount,
			"Date":        tx.Date,
			"Method":      string(tx.Method),
			"Status":      string(tx.Status),
		},
	})
	return tx, nil
}

func recipients(t teacher.Teacher) []mail.Address {
	to := []mail.Address{{Name: t.Name, Address: t.Email}}
	if t.WorkEmail.Valid && t.WorkEmail.String != t.Email {
		to = append(to, mail.Address{Name: t.Name, Address: t.WorkEmail.String})
	}
	return to
}
