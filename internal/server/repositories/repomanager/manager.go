package repomanager

import (
	"context"

	"github.com/mdrrmo4516/mobile2026/internal/server/config"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/hotlines"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/incidents"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/locations"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/statuschecks"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/userdata"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/users"
)

// RepositoryManager owns the store handle for the lifetime of the process
// and vends the repositories bound to it.
type RepositoryManager interface {
	Users() users.Repository
	Incidents() incidents.Repository
	Hotlines() hotlines.Repository
	Locations() locations.Repository
	UserData() userdata.Repository
	StatusChecks() statuschecks.Repository

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
	Close() error
}

// New picks the backend from the configured DSN: config.MemoryDSN selects the
// in-memory store, anything else is handed to the PostgreSQL driver.
func New(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	if cfg.DatabaseDSN == config.MemoryDSN {
		return NewInMemoryRepositoryManager(), nil
	}
	return NewPostgresRepositoryManager(ctx, cfg)
}
