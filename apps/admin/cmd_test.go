package main

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/tutordesk/core/digest"
	"github.com/trezcool/tutordesk/core/teacher"
	"github.com/trezcool/tutordesk/internal/testutil"
	"github.com/trezcool/tutordesk/storage/database"
)

func setup(t *testing.T) (*commandLine, *testutil.App, *bytes.Buffer) {
	app := testutil.NewApp(t)
	var out bytes.Buffer
	isTerminalFunc = func() bool { return false }

	return &commandLine{
		out:         &out,
		repos:       app.Repos,
		teacherSvc:  app.TeacherSvc,
		scheduleSvc: app.ScheduleSvc,
		paymentSvc:  app.PaymentSvc,
		digestJob:   digest.NewJob(app.TeacherSvc, app.ScheduleSvc, app.PaymentSvc, app.Mail, app.Logger),
	}, app, &out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    []string
}

func runCLITests(t *testing.T, cli *commandLine, out *bytes.Buffer, tests []cliTest) {
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
			case tt.wantErrStr != "":
				if err == nil || err.Error() != tt.wantErrStr {
					t.Errorf("cli.run() error = %v, wantErrStr %s", err, tt.wantErrStr)
				}
			case err != nil:
				t.Errorf("cli.run() unexpected error = %v", err)
			}
			for _, s := range tt.wantOut {
				if !strings.Contains(out.String(), s) {
					t.Errorf("output %q does not contain %q", out.String(), s)
				}
			}
		})
	}
}

func Test_commandLine_usage(t *testing.T) {
	cli, _, out := setup(t)

	runCLITests(t, cli, out, []cliTest{
		{name: "no command", wantErr: errHelp, wantOut: []string{"Usage:"}},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp, wantOut: []string{"grid -teacher ID"}},
		{name: "grid: no teacher", args: []string{"grid"}, wantErr: errHelp},
		{name: "summary: no teacher", args: []string{"summary"}, wantErr: errHelp},
	})
}

func Test_commandLine_grid(t *testing.T) {
	cli, _, out := setup(t)

	runCLITests(t, cli, out, []cliTest{
		{name: "teacher not found", args: []string{"grid", "-teacher", "404"}, wantErr: teacher.ErrNotFound},
		{
			name: "grid", args: []string{"grid", "-teacher", "1"},
			wantOut: []string{
				"Alynia Allan",
				"Time   | Monday       | Tuesday      | Wednesday    |",
				"09:00  | John Doe     | -            | -            |",
				"14:00  | -            | Jane Smith   | -            |",
				"10:00  | -            | -            | Available    |",
			},
		},
	})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 2+1+24, "name, blank line, header & one row per hour")
	assert.NotContains(t, out.String(), "\x1b[", "no colors outside a terminal")
}

func Test_commandLine_summary(t *testing.T) {
	cli, _, out := setup(t)

	runCLITests(t, cli, out, []cliTest{
		{name: "teacher not found", args: []string{"summary", "-teacher", "404"}, wantErr: teacher.ErrNotFound},
		{
			name: "summary", args: []string{"summary", "-teacher", "3"},
			wantOut: []string{
				"Sofia Ramirez",
				"Total earnings:   $9420.00",
				"Pending payments: $0.00",
				"This month:       $0.00",
				"Last month:       $150.00",
				"Growth:           -100.0%",
			},
		},
	})
}

func Test_commandLine_digest(t *testing.T) {
	cli, app, out := setup(t)

	runCLITests(t, cli, out, []cliTest{
		{name: "sent to active teachers", args: []string{"digest"}, wantOut: []string{"digest sent to 2 teacher(s)"}},
	})
	assert.Len(t, app.Mail.Sent(), 2)
}

func Test_commandLine_migrate(t *testing.T) {
	cli, _, out := setup(t)

	var ran []string
	gooseRunFunc = func(command string, db *sql.DB, dir string, args ...string) error {
		switch command {
		case "up", "up-by-one", "down", "fix", "redo", "reset", "status", "version": // pass
		case "up-to":
			if len(args) == 0 {
				return fmt.Errorf("up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		case "create":
			if len(args) == 0 {
				return fmt.Errorf("create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]")
			}
		case "down-to":
			if len(args) == 0 {
				return fmt.Errorf("down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		if dir != database.MigrationsDir {
			return fmt.Errorf("unexpected migrations dir %q", dir)
		}
		ran = append(ran, command)
		return nil
	}
	defer func() { gooseRunFunc = goose.Run }()

	runCLITests(t, cli, out, []cliTest{
		{name: "no subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "in-memory store", args: []string{"migrate", "up"}, wantErr: errNoDatabase},
	})
	assert.Empty(t, ran)

	cli.db = &sqlx.DB{}
	runCLITests(t, cli, out, []cliTest{
		{name: "unknown subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up-to: no args", args: []string{"migrate", "up-to"}, wantErrStr: "up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION"},
		{name: "up-to: non-int arg", args: []string{"migrate", "up-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "create: no args", args: []string{"migrate", "create"}, wantErrStr: "create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]"},
		{name: "down-to: no args", args: []string{"migrate", "down-to"}, wantErrStr: "down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION"},
		{name: "down-to: non-int arg", args: []string{"migrate", "down-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "up-by-one", args: []string{"migrate", "up-by-one"}},
		{name: "up-to", args: []string{"migrate", "up-to", "1"}},
		{name: "down", args: []string{"migrate", "down"}},
		{name: "down-to", args: []string{"migrate", "down-to", "0"}},
		{name: "redo", args: []string{"migrate", "redo"}},
		{name: "reset", args: []string{"migrate", "reset"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "version", args: []string{"migrate", "version"}},
		{name: "create", args: []string{"migrate", "create", "payout_accounts", "sql"}},
		{name: "fix", args: []string{"migrate", "fix"}},
	})
	assert.Len(t, ran, 11)
}

func Test_commandLine_seed(t *testing.T) {
	cli, app, out := setup(t)
	cli.repos = database.NewInmemRepositories()
	cli.teacherSvc = teacher.NewService(cli.repos.Teachers, app.Logger)

	runCLITests(t, cli, out, []cliTest{
		{name: "empty store", args: []string{"seed"}, wantOut: []string{"demo dataset loaded"}},
	})

	teachers, err := cli.teacherSvc.QueryAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, teachers, 3)

	runCLITests(t, cli, out, []cliTest{
		{name: "already seeded", args: []string{"seed"}, wantErrStr: "creating teacher 1: 1: a teacher with this ID already exists"},
	})
}
