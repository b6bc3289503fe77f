package repomanager

import (
	"context"

	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/hotlines"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/incidents"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/locations"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/statuschecks"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/userdata"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/users"
)

// InMemoryRepositoryManager keeps every dataset in process memory. Data is
// lost on restart.
type InMemoryRepositoryManager struct {
	users        *users.MemoryRepository
	incidents    *incidents.MemoryRepository
	hotlines     *hotlines.MemoryRepository
	locations    *locations.MemoryRepository
	userData     *userdata.MemoryRepository
	statusChecks *statuschecks.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:        users.NewMemoryRepository(),
		incidents:    incidents.NewMemoryRepository(),
		hotlines:     hotlines.NewMemoryRepository(),
		locations:    locations.NewMemoryRepository(),
		userData:     userdata.NewMemoryRepository(),
		statusChecks: statuschecks.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository               { return m.users }
func (m *InMemoryRepositoryManager) Incidents() incidents.Repository       { return m.incidents }
func (m *InMemoryRepositoryManager) Hotlines() hotlines.Repository         { return m.hotlines }
func (m *InMemoryRepositoryManager) Locations() locations.Repository       { return m.locations }
func (m *InMemoryRepositoryManager) UserData() userdata.Repository         { return m.userData }
func (m *InMemoryRepositoryManager) StatusChecks() statuschecks.Repository { return m.statusChecks }

func (m *InMemoryRepositoryManager) Ping(context.Context) error { return nil }

func (m *InMemoryRepositoryManager) Close() error { return nil }
