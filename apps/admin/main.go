package main

import (
	"context"
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/digest"
	"github.com/trezcool/tutordesk/core/payment"
	"github.com/trezcool/tutordesk/core/schedule"
	"github.com/trezcool/tutordesk/core/teacher"
	emailsvc "github.com/trezcool/tutordesk/services/email"
	logsvc "github.com/trezcool/tutordesk/services/logger"
	"github.com/trezcool/tutordesk/storage/database"
)

var logger *logsvc.RollbarLogger

func main() {
	defer os.Exit(0)

	conf := core.NewConfig()
	logger = logsvc.NewRollbarLogger(log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile), conf)
	logger.Enable(!conf.Debug)

	// set up DB
	// postgres is opened without migrating so that `migrate` stays explicit
	var repos database.Repositories
	var db *sqlx.DB
	var err error
	if conf.Database.Engine == database.EnginePostgres {
		db, err = database.Open(conf)
		errAndDie(err)
		defer db.Close()
		repos = database.NewPostgresRepositories(db)
	} else {
		repos, _, err = database.Setup(context.Background(), conf)
		errAndDie(err)
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf, logger)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	teacherSvc := teacher.NewService(repos.Teachers, logger)
	scheduleSvc := schedule.NewService(repos.Schedules, logger)
	paymentSvc, err := payment.NewService(repos.Payments, mailSvc, logger, conf)
	errAndDie(err)

	// start CLI
	cli := commandLine{
		out:         os.Stdout,
		db:          db,
		repos:       repos,
		teacherSvc:  teacherSvc,
		scheduleSvc: scheduleSvc,
		paymentSvc:  paymentSvc,
		digestJob:   digest.NewJob(teacherSvc, scheduleSvc, paymentSvc, mailSvc, logger),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("admin command failed", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err.Error(), err)
	}
}
