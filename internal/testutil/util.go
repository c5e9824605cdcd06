package testutil

import (
	"context"
	"io/ioutil"
	"log"
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/dashboard"
	"github.com/trezcool/tutordesk/core/payment"
	"github.com/trezcool/tutordesk/core/qualification"
	"github.com/trezcool/tutordesk/core/schedule"
	"github.com/trezcool/tutordesk/core/teacher"
	"github.com/trezcool/tutordesk/services/email"
	"github.com/trezcool/tutordesk/services/logger"
	"github.com/trezcool/tutordesk/storage/database"
)

// Now is the clock every test app runs on: late January 2024, after the demo transactions.
var Now = time.Date(2024, time.January, 25, 10, 0, 0, 0, time.UTC)

// App bundles everything a test needs to exercise the services.
type App struct {
	Conf       *core.Config
	Logger     core.Logger
	Validate   *validator.Validate
	Translator ut.Translator
	Repos      database.Repositories
	Mail       *emailsvc.ConsoleServiceMock

	TeacherSvc       *teacher.Service
	QualificationSvc *qualification.Service
	ScheduleSvc      *schedule.Service
	PaymentSvc       *payment.Service
	DashboardSvc     *dashboard.Service
}

// NewLogger returns a silent logger that never reports to Rollbar.
func NewLogger(conf *core.Config) core.Logger {
	l := logsvc.NewRollbarLogger(log.New(ioutil.Discard, "", 0), conf)
	l.Enable(false)
	return l
}

// NewValidator returns a validator with every custom tag registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	teacher.InitValidators(validate, translator)
	qualification.InitValidators(validate, translator)
	schedule.InitValidators(validate, translator)
	payment.InitValidators(validate, translator)
	return validate, translator
}

// NewApp wires services over a fresh in-memory store loaded with the demo dataset.
func NewApp(t *testing.T) *App {
	conf := core.NewTestConfig()
	lg := NewLogger(conf)
	validate, translator := NewValidator()

	repos := database.NewInmemRepositories()
	if err := database.Seed(context.Background(), repos); err != nil {
		t.Fatalf("database.Seed(): %v", err)
	}

	mailSvc := emailsvc.NewConsoleServiceMock(conf, lg)

	teacherSvc := teacher.NewService(repos.Teachers, lg)
	qualificationSvc := qualification.NewService(repos.Qualifications, lg)
	scheduleSvc := schedule.NewService(repos.Schedules, lg)
	paymentSvc, err := payment.NewService(repos.Payments, mailSvc, lg, conf)
	if err != nil {
		t.Fatalf("payment.NewService(): %v", err)
	}
	paymentSvc.SetNowFunc(func() time.Time { return Now })

	return &App{
		Conf:             conf,
		Logger:           lg,
		Validate:         validate,
		Translator:       translator,
		Repos:            repos,
		Mail:             mailSvc,
		TeacherSvc:       teacherSvc,
		QualificationSvc: qualificationSvc,
		ScheduleSvc:      scheduleSvc,
		PaymentSvc:       paymentSvc,
		DashboardSvc:     dashboard.NewService(teacherSvc, qualificationSvc, scheduleSvc, paymentSvc),
	}
}

// Teacher fetches a stored teacher or fails the test.
func (app *App) Teacher(t *testing.T, id string) teacher.Teacher {
	tchr, err := app.TeacherSvc.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID(%q): %v", id, err)
	}
	return tchr
}
