// Package repomanager provides the RepositoryManager implementations: a
// PostgreSQL one that opens the pool and applies goose migrations, and an
// in-memory one for development and tests.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/server/config"
	"github.com/mdrrmo4516/mobile2026/internal/server/migrations"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/hotlines"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/incidents"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/locations"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/statuschecks"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/userdata"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories sharing one
// connection pool.
type PostgresRepositoryManager struct {
	db *sql.DB

	users        *users.PostgresRepository
	incidents    *incidents.PostgresRepository
	hotlines     *hotlines.PostgresRepository
	locations    *locations.PostgresRepository
	userData     *userdata.PostgresRepository
	statusChecks *statuschecks.PostgresRepository
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// NewPostgresRepositoryManager opens the pool, applies the pool limits from
// cfg, checks connectivity and runs the embedded migrations.
func NewPostgresRepositoryManager(ctx context.Context, cfg *config.Config) (*PostgresRepositoryManager, error) {
	db, err := sqlOpen("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	m := newPostgresRepositoryManager(db)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DBAcquireTimeout)
	defer cancel()
	if err := m.Ping(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := m.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return m, nil
}

func newPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{
		db:           db,
		users:        users.NewPostgresRepository(db),
		incidents:    incidents.NewPostgresRepository(db),
		hotlines:     hotlines.NewPostgresRepository(db),
		locations:    locations.NewPostgresRepository(db),
		userData:     userdata.NewPostgresRepository(db),
		statusChecks: statuschecks.NewPostgresRepository(db),
	}
}

func (m *PostgresRepositoryManager) Users() users.Repository               { return m.users }
func (m *PostgresRepositoryManager) Incidents() incidents.Repository       { return m.incidents }
func (m *PostgresRepositoryManager) Hotlines() hotlines.Repository         { return m.hotlines }
func (m *PostgresRepositoryManager) Locations() locations.Repository       { return m.locations }
func (m *PostgresRepositoryManager) UserData() userdata.Repository         { return m.userData }
func (m *PostgresRepositoryManager) StatusChecks() statuschecks.Repository { return m.statusChecks }

// RunMigrations sets up goose with the embedded migrations and runs them
// against the pool.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

func (m *PostgresRepositoryManager) Ping(ctx context.Context) error {
	if err := m.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return nil
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
