package store

import "github.com/MKhiriev/idea-backlog/internal/logger"

// Storages bundles the persistence layer handed to the service layer.
type Storages struct {
	UnitOfWork     UnitOfWork
	ItemRepository ItemRepository
}

// NewStorages wires the unit of work and repositories over db.
func NewStorages(db *DB, observer SessionObserver, log *logger.Logger) *Storages {
	return &Storages{
		UnitOfWork:     NewUnitOfWork(db, observer),
		ItemRepository: NewItemRepository(log),
	}
}
