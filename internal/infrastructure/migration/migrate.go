package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Blank imports register the PostgreSQL driver and file source for migrations
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"artregistry/internal/app/server/config"
)

// Migrator is the slice of migrate.Migrate we depend on.
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine builds a Migrator; injectable so tests stay off the
// filesystem and the database.
type MigrationEngine func(sourceURL, databaseURL string) (Migrator, error)

type Migration struct {
	cfg    *config.Config
	engine MigrationEngine
}

func NewMigration(conf *config.Config, engine MigrationEngine) *Migration {
	return &Migration{
		cfg:    conf,
		engine: engine,
	}
}

// DefaultEngine is the real implementation backed by golang-migrate.
func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	return migrate.New(sourceURL, databaseURL)
}

// Up applies pending migrations. The return is named so the deferred Close
// can fold source and database errors into the result.
func (mg *Migration) Up() (err error) {
	m, err := mg.engine("file://"+mg.cfg.DB.Migrations, mg.cfg.DB.DatabaseURI)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w; migration up error", err)
	}
	return nil
}
