package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"

	root "webroulette"
	"webroulette/pkg/storage"
)

const migrationsDir = "migrations"

// goose keeps its settings in package globals.
var gooseMu sync.Mutex //nolint: gochecknoglobals

func withGoose(fn func() error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(root.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}

	return fn()
}

func (p *PgSQL) sqlDB() (*sql.DB, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, fmt.Errorf("could not use schema tooling: %w", storage.ErrAlreadyInTx)
	}

	return db, nil
}

// Migrate applies every pending embedded migration and returns the resulting
// schema version. It cannot run inside a transaction.
func (p *PgSQL) Migrate(ctx context.Context) (int64, error) {
	db, err := p.sqlDB()
	if err != nil {
		return 0, err
	}

	var version int64
	err = withGoose(func() error {
		if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("could not apply migrations: %w", err)
		}
		version, err = goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return fmt.Errorf("could not read schema version: %w", err)
		}

		return nil
	})

	return version, err
}

// SchemaVersion returns the current schema version without applying anything.
func (p *PgSQL) SchemaVersion(ctx context.Context) (int64, error) {
	db, err := p.sqlDB()
	if err != nil {
		return 0, err
	}

	var version int64
	err = withGoose(func() error {
		version, err = goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return fmt.Errorf("could not read schema version: %w", err)
		}

		return nil
	})

	return version, err
}
