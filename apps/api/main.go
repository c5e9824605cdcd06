package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // register the /debug/pprof handlers
	"os"

	"github.com/go-playground/validator/v10"

	echoapi "github.com/trezcool/tutordesk/apps/api/echo"
	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/dashboard"
	"github.com/trezcool/tutordesk/core/digest"
	"github.com/trezcool/tutordesk/core/payment"
	"github.com/trezcool/tutordesk/core/qualification"
	"github.com/trezcool/tutordesk/core/schedule"
	"github.com/trezcool/tutordesk/core/teacher"
	emailsvc "github.com/trezcool/tutordesk/services/email"
	logsvc "github.com/trezcool/tutordesk/services/logger"
	"github.com/trezcool/tutordesk/storage/database"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	dbLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	dbLogger.Enable(!conf.Debug)

	// set up DB
	repos, db, err := database.Setup(context.Background(), conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	if db != nil {
		defer func() {
			if err = db.Close(); err != nil {
				dbLogger.Fatal("Failed to close", err)
			}
		}()
	}
	dbLogger.Info(fmt.Sprintf("using %q storage engine", conf.Database.Engine))

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf, logger)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	teacherSvc := teacher.NewService(repos.Teachers, logger)
	qualificationSvc := qualification.NewService(repos.Qualifications, logger)
	scheduleSvc := schedule.NewService(repos.Schedules, logger)
	paymentSvc, err := payment.NewService(repos.Payments, mailSvc, logger, conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up payments: %v", err), err)
	}
	dashboardSvc := dashboard.NewService(teacherSvc, qualificationSvc, scheduleSvc, paymentSvc)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	teacher.InitValidators(validate, translator)
	qualification.InitValidators(validate, translator)
	schedule.InitValidators(validate, translator)
	payment.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.NewString("storage").Set(conf.Database.Engine)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start Weekly Digest

	if conf.Digest.Enabled {
		job := digest.NewJob(teacherSvc, scheduleSvc, paymentSvc, mailSvc, logger)
		scheduler := digest.NewScheduler(job, conf.Digest.CronSpec, logger)
		if err = scheduler.Start(); err != nil {
			logger.Fatal(fmt.Sprintf("starting digest scheduler: %v", err), err)
		}
		defer scheduler.Stop()
	}

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:             conf,
			Logger:           logger,
			Validate:         validate,
			Translator:       translator,
			TeacherSvc:       teacherSvc,
			QualificationSvc: qualificationSvc,
			ScheduleSvc:      scheduleSvc,
			PaymentSvc:       paymentSvc,
			DashboardSvc:     dashboardSvc,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
