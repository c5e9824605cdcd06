package database

import (
	"context"
	"embed"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/payment"
	"github.com/trezcool/tutordesk/core/qualification"
	"github.com/trezcool/tutordesk/core/schedule"
	"github.com/trezcool/tutordesk/core/teacher"
	inmemdb "github.com/trezcool/tutordesk/storage/database/inmem"
	pgrepos "github.com/trezcool/tutordesk/storage/database/postgres"
)

const (
	EngineInmem    = "inmem"
	EnginePostgres = "postgres"

	// MigrationsDir is the directory of the embedded migrations, as expected by goose.
	MigrationsDir = "migrations"
)

var (
	//go:embed migrations/*.sql
	migrationsFS embed.FS

	errUnknownEngine = errors.New("unknown database engine")
	errNoURL         = errors.New("database url is not set")
)

// Repositories bundles the repositories of every domain.
type Repositories struct {
	Teachers       teacher.Repository
	Qualifications qualification.Repository
	Schedules      schedule.Repository
	Payments       payment.Repository
}

// NewInmemRepositories returns empty in-memory repositories.
func NewInmemRepositories() Repositories {
	db := inmemdb.NewDB()
	return Repositories{
		Teachers:       inmemdb.NewTeacherRepository(db),
		Qualifications: inmemdb.NewQualificationRepository(db),
		Schedules:      inmemdb.NewScheduleRepository(db),
		Payments:       inmemdb.NewPaymentRepository(db),
	}
}

// NewPostgresRepositories returns repositories backed by `db`.
func NewPostgresRepositories(db *sqlx.DB) Repositories {
	return Repositories{
		Teachers:       pgrepos.NewTeacherRepository(db),
		Qualifications: pgrepos.NewQualificationRepository(db),
		Schedules:      pgrepos.NewScheduleRepository(db),
		Payments:       pgrepos.NewPaymentRepository(db),
	}
}

// Setup returns the repositories of the configured engine.
// The in-memory store is seeded with the demo dataset; the returned *sqlx.DB is nil for it.
func Setup(ctx context.Context, conf *core.Config) (Repositories, *sqlx.DB, error) {
	switch conf.Database.Engine {
	case EngineInmem, "":
		repos := NewInmemRepositories()
		if err := Seed(ctx, repos); err != nil {
			return Repositories{}, nil, errors.Wrap(err, "seeding in-memory store")
		}
		return repos, nil, nil
	case EnginePostgres:
		db, err := Open(conf)
		if err != nil {
			return Repositories{}, nil, errors.Wrap(err, "opening database")
		}
		if err = Migrate(db); err != nil {
			_ = db.Close()
			return Repositories{}, nil, err
		}
		return NewPostgresRepositories(db), db, nil
	default:
		return Repositories{}, nil, errors.Wrap(errUnknownEngine, conf.Database.Engine)
	}
}

// Open connects to the postgres database & waits for it to be ready.
func Open(conf *core.Config) (*sqlx.DB, error) {
	if conf.Database.URL == "" {
		return nil, errNoURL
	}
	db, err := sqlx.Open("postgres", conf.Database.URL)
	if err != nil {
		return nil, err
	}
	if err = ping(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

// UseMigrations points goose at the embedded migrations.
func UseMigrations() error {
	goose.SetBaseFS(migrationsFS)
	return goose.SetDialect("postgres")
}

func Migrate(db *sqlx.DB) error {
	if err := UseMigrations(); err != nil {
		return errors.Wrap(err, "setting up migrations")
	}
	if err := goose.Up(db.DB, MigrationsDir); err != nil {
		return errors.Wrap(err, "migrating database")
	}
	return nil
}
