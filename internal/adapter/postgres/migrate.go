package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/tweeter-backend/migrations"
)

// NewMigrator opens a database/sql handle for dsn and returns a goose
// provider over the embedded migrations. The caller must close the
// returned *sql.DB.
func NewMigrator(dsn string) (*goose.Provider, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("sql.Open: %w", err)
	}

	provider, err := NewMigratorFor(db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return provider, db, nil
}

// NewMigratorFor returns a goose provider running the migrations in fsys
// against db.
func NewMigratorFor(db *sql.DB, fsys fs.FS) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	return provider, nil
}

// Migrate applies all pending migrations to the database at dsn and
// returns the number of migrations applied.
func Migrate(ctx context.Context, dsn string) (int, error) {
	provider, db, err := NewMigrator(dsn)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}

	return len(results), nil
}
