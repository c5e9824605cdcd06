// Package digest emails every active teacher a weekly earnings digest.
package digest

import (
	"bytes"
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/payment"
	"github.com/trezcool/tutordesk/core/schedule"
	"github.com/trezcool/tutordesk/core/teacher"
)

// Data is the template data of a digest email.
type Data struct {
	TeacherName string
	Summary     payment.Summary
	Lessons     int
}

type Job struct {
	teachers  *teacher.Service
	schedules *schedule.Service
	payments  *payment.Service
	mailSvc   core.EmailService
	logger    core.Logger
}

func NewJob(
	teachers *teacher.Service,
	schedules *schedule.Service,
	payments *payment.Service,
	mailSvc core.EmailService,
	logger core.Logger,
) *Job {
	return &Job{
		teachers:  teachers,
		schedules: schedules,
		payments:  payments,
		mailSvc:   mailSvc,
		logger:    logger,
	}
}

// Run sends the digest to every active teacher and returns the number of emails sent.
func (j *Job) Run(ctx context.Context) (int, error) {
	teachers, err := j.teachers.QueryAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "querying teachers")
	}

	msgs := make([]*core.EmailMessage, 0, len(teachers))
	for _, t := range teachers {
		if !t.IsActive() {
			continue
		}
		txs, err := j.payments.List(ctx, t.ID, payment.QueryFilter{})
		if err != nil {
			return 0, errors.Wrapf(err, "querying transactions of %s", t.ID)
		}
		slots, err := j.schedules.List(ctx, t.ID)
		if err != nil {
			return 0, errors.Wrapf(err, "querying slots of %s", t.ID)
		}

		msg := &core.EmailMessage{
			To:           []mail.Address{{Name: t.Name, Address: t.Email}},
			Subject:      "Your weekly earnings digest",
			TemplateName: "weekly_digest",
			TemplateData: Data{
				TeacherName: t.Name,
				Summary:     payment.Summarize(txs, t.TotalEarnings, j.payments.Now()),
				Lessons:     schedule.CountByType(slots, schedule.TypeLesson),
			},
		}

		// transaction history
		var csv bytes.Buffer
		if err = payment.WriteCSV(&csv, txs); err != nil {
			return 0, errors.Wrapf(err, "exporting transactions of %s", t.ID)
		}
		if err = msg.Attach(&csv, "transactions.csv", "text/csv"); err != nil {
			return 0, errors.Wrapf(err, "attaching transactions of %s", t.ID)
		}
		msgs = append(msgs, msg)
	}
	if len(msgs) > 0 {
		j.mailSvc.SendMessages(msgs...)
	}
	return len(msgs), nil
}

// Scheduler runs the Job on a cron spec.
type Scheduler struct {
	engine  *cron.Cron
	job     *Job
	spec    string
	timeout time.Duration
	logger  core.Logger
}

func NewScheduler(job *Job, spec string, logger core.Logger) *Scheduler {
	return &Scheduler{
		engine:  cron.New(cron.WithLocation(time.Local)),
		job:     job,
		spec:    spec,
		timeout: 5 * time.Minute,
		logger:  logger,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.engine.AddFunc(s.spec, s.run); err != nil {
		return errors.Wrapf(err, "adding digest job (%q)", s.spec)
	}
	s.engine.Start()
	s.logger.Info(fmt.Sprintf("digest scheduler started: %q", s.spec))
	return nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	n, err := s.job.Run(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("running digest job: %v", err), err)
		return
	}
	s.logger.Info(fmt.Sprintf("digest sent to %d teacher(s)", n))
}

// Stop waits for a running job to complete.
func (s *Scheduler) Stop() {
	<-s.engine.Stop().Done()
	s.logger.Info("digest scheduler stopped")
}
