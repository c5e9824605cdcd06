package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/dashboard"
	"github.com/trezcool/tutordesk/core/payment"
	"github.com/trezcool/tutordesk/core/qualification"
	"github.com/trezcool/tutordesk/core/schedule"
	"github.com/trezcool/tutordesk/core/teacher"
)

type (
	ServerDeps struct {
		Conf             *core.Config
		Logger           core.Logger
		Validate         *validator.Validate
		Translator       ut.Translator
		TeacherSvc       *teacher.Service
		QualificationSvc *qualification.Service
		ScheduleSvc      *schedule.Service
		PaymentSvc       *payment.Service
		DashboardSvc     *dashboard.Service
		DisableReqLogs   bool
	}

	Server interface {
		http.Handler
		Start()
		Shutdown(context.Context) error
		Close() error
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
	}

	server struct {
		deps     ServerDeps
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(deps ServerDeps) Server {
	s := &server{
		deps:     deps,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.deps.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Logger.SetLevel(log.INFO)

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug

	s.app.GET("/", home(conf.AppName))

	v1 := s.app.Group("/v1")

	registerDashboardAPI(v1, s.deps)
	registerPaymentMethodsAPI(v1, s.deps)

	tg := v1.Group("/teachers")
	registerTeacherAPI(tg, s.deps)

	// detail endpoints
	dg := tg.Group("/:id", teacherMiddleware(s.deps.TeacherSvc))
	registerTeacherDetailAPI(dg, s.deps)
	registerQualificationAPI(dg.Group("/qualifications"), s.deps)
	registerScheduleAPI(dg.Group("/schedule"), s.deps)
	registerPaymentAPI(dg.Group("/payments"), s.deps)
}

func (s *server) Start() {
	if err := s.app.Start(s.deps.Conf.Server.Host); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) Errors() <-chan error {
	return s.errors
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already shutting down
	}
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(appName string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Welcome to "+appName+" API!")
	}
}
