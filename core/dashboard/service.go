package dashboard

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core/payment"
	"github.com/trezcool/tutordesk/core/qualification"
	"github.com/trezcool/tutordesk/core/schedule"
	"github.com/trezcool/tutordesk/core/teacher"
)

type (
	// Overview holds the stats shown on top of the dashboard.
	Overview struct {
		TotalTeachers    int     `json:"total_teachers"`
		ActiveTeachers   int     `json:"active_teachers"`
		ActiveLessons    int     `json:"active_lessons"`
		CompletedLessons int     `json:"completed_lessons"`
		MonthlyRevenue   float64 `json:"monthly_revenue"`
		RevenueTrend     float64 `json:"revenue_trend"` // percent vs last month
		PendingPayments  float64 `json:"pending_payments"`
	}

	// Profile is everything the dashboard tabs show for one teacher.
	Profile struct {
		Teacher        teacher.Teacher           `json:"teacher"`
		Qualifications qualification.Partitioned `json:"qualifications"`
		Schedule       []schedule.Slot           `json:"schedule"`
		Summary        payment.Summary           `json:"payment_summary"`
		Transactions   []payment.Transaction     `json:"transactions"`
		PayoutMethods  []payment.PayoutMethod    `json:"payout_methods"`
	}

	Service struct {
		teachers       *teacher.Service
		qualifications *qualification.Service
		schedules      *schedule.Service
		payments       *payment.Service
	}
)

func NewService(
	teachers *teacher.Service,
	qualifications *qualification.Service,
	schedules *schedule.Service,
	payments *payment.Service,
) *Service {
	return &Service{
		teachers:       teachers,
		qualifications: qualifications,
		schedules:      schedules,
		payments:       payments,
	}
}

// Overview aggregates the stats of every teacher as of the payment service's clock.
func (svc *Service) Overview(ctx context.Context) (Overview, error) {
	now := svc.payments.Now()
	lastMonth := payment.PreviousMonth(now)

	teachers, err := svc.teachers.QueryAll(ctx)
	if err != nil {
		return Overview{}, errors.Wrap(err, "querying teachers")
	}

	var ov Overview
	var lastMonthRevenue float64
	for _, t := range teachers {
		ov.TotalTeachers++
		if t.IsActive() {
			ov.ActiveTeachers++
		}
		ov.CompletedLessons += t.CompletedLessons

		slots, err := svc.schedules.List(ctx, t.ID)
		if err != nil {
			return Overview{}, errors.Wrap(err, "querying slots")
		}
		ov.ActiveLessons += schedule.CountByType(slots, schedule.TypeLesson)

		txs, err := svc.payments.List(ctx, t.ID, payment.QueryFilter{})
		if err != nil {
			return Overview{}, errors.Wrap(err, "querying transactions")
		}
		sum := payment.Summarize(txs, t.TotalEarnings, now)
		ov.MonthlyRevenue += sum.ThisMonth
		ov.PendingPayments += sum.PendingPayments
		lastMonthRevenue += payment.MonthlyCompleted(txs, lastMonth)
	}
	ov.RevenueTrend = payment.Growth(ov.MonthlyRevenue, lastMonthRevenue)
	return ov, nil
}

// Profile composes the dashboard page of teacher `t`.
func (svc *Service) Profile(ctx context.Context, t teacher.Teacher) (Profile, error) {
	quals, err := svc.qualifications.ListPartitioned(ctx, t.ID)
	if err != nil {
		return Profile{}, errors.Wrap(err, "querying qualifications")
	}
	slots, err := svc.schedules.List(ctx, t.ID)
	if err != nil {
		return Profile{}, errors.Wrap(err, "querying slots")
	}
	txs, err := svc.payments.List(ctx, t.ID, payment.QueryFilter{})
	if err != nil {
		return Profile{}, errors.Wrap(err, "querying transactions")
	}
	return Profile{
		Teacher:        t,
		Qualifications: quals,
		Schedule:       slots,
		Summary:        payment.Summarize(txs, t.TotalEarnings, svc.payments.Now()),
		Transactions:   txs,
		PayoutMethods:  svc.payments.PayoutMethods(),
	}, nil
}
