package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/trezcool/tutordesk/storage/database"
)

var (
	gooseRunFunc = goose.Run // mockable

	errNoDatabase = errors.New("migrate requires the postgres storage engine")
)

func (cli *commandLine) migrate(args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}
	if cli.db == nil {
		return errNoDatabase
	}
	if err := database.UseMigrations(); err != nil {
		return err
	}
	return gooseRunFunc(args[0], cli.db.DB, database.MigrationsDir, args[1:]...)
}

func (cli *commandLine) seed(ctx context.Context) error {
	if err := database.Seed(ctx, cli.repos); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "demo dataset loaded")
	return nil
}
