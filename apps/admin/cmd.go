package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jmoiron/sqlx"
	"golang.org/x/term"

	"github.com/trezcool/tutordesk/core/digest"
	"github.com/trezcool/tutordesk/core/payment"
	"github.com/trezcool/tutordesk/core/schedule"
	"github.com/trezcool/tutordesk/core/teacher"
	"github.com/trezcool/tutordesk/storage/database"
)

var (
	isTerminalFunc = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) } // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	out         io.Writer
	db          *sqlx.DB // nil unless the postgres engine is used
	repos       database.Repositories
	teacherSvc  *teacher.Service
	scheduleSvc *schedule.Service
	paymentSvc  *payment.Service
	digestJob   *digest.Job
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  grid -teacher ID    - print the teacher's weekly schedule")
	fmt.Fprintln(cli.out, "  summary -teacher ID - print the teacher's payment summary")
	fmt.Fprintln(cli.out, "  digest              - send the weekly digest now")
	fmt.Fprintln(cli.out, "  migrate COMMAND     - run a goose migration command (up, down, status, ...) (postgres)")
	fmt.Fprintln(cli.out, "  seed                - load the demo dataset")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	gridCmd := flag.NewFlagSet("grid", flag.ExitOnError)
	gridTeacher := gridCmd.String("teacher", "", "The teacher's ID.")
	summaryCmd := flag.NewFlagSet("summary", flag.ExitOnError)
	summaryTeacher := summaryCmd.String("teacher", "", "The teacher's ID.")

	ctx := context.Background()

	switch args[1] {
	case "grid":
		if err := gridCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *gridTeacher == "" {
			gridCmd.Usage()
			return errHelp
		}
		return cli.printGrid(ctx, *gridTeacher, isTerminalFunc())
	case "summary":
		if err := summaryCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *summaryTeacher == "" {
			summaryCmd.Usage()
			return errHelp
		}
		return cli.printSummary(ctx, *summaryTeacher)
	case "digest":
		n, err := cli.digestJob.Run(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "digest sent to %d teacher(s)\n", n)
		return nil
	case "migrate":
		return cli.migrate(args[2:])
	case "seed":
		return cli.seed(ctx)
	default:
		cli.printUsage()
		return errHelp
	}
}
