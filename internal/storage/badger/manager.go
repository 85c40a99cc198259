package badger

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/hireradar/internal/common"
	"github.com/ternarybob/hireradar/internal/interfaces"
)

// Manager implements interfaces.StorageManager for a single embedded Badger
// database shared across the four entity stores.
type Manager struct {
	db        *BadgerDB
	seeds     interfaces.SeedStore
	companies interfaces.CompanyStore
	jobs      interfaces.JobStore
	snapshots interfaces.SnapshotStore
	logger    arbor.ILogger
}

// NewManager opens the Badger database and wires the entity stores.
func NewManager(logger arbor.ILogger, config *common.BadgerConfig) (interfaces.StorageManager, error) {
	db, err := NewBadgerDB(logger, config)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		db:        db,
		seeds:     NewSeedStorage(db, logger),
		companies: NewCompanyStorage(db, logger),
		jobs:      NewJobStorage(db, logger),
		snapshots: NewSnapshotStorage(db, logger),
		logger:    logger,
	}

	logger.Info().Msg("badger storage manager initialized")

	return manager, nil
}

func (m *Manager) Seeds() interfaces.SeedStore {
	return m.seeds
}

func (m *Manager) Companies() interfaces.CompanyStore {
	return m.companies
}

func (m *Manager) Jobs() interfaces.JobStore {
	return m.jobs
}

func (m *Manager) Snapshots() interfaces.SnapshotStore {
	return m.snapshots
}

func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
