package store

import "github.com/MKhiriev/asset-management/internal/logger"

// Storages aggregates every repository backed by a single database.
type Storages struct {
	Transactor                 Transactor
	UserRepository             UserRepository
	LocationRepository         LocationRepository
	CategoryRepository         CategoryRepository
	AssetRepository            AssetRepository
	AssignmentRepository       AssignmentRepository
	ReturningRequestRepository ReturningRequestRepository
	ReportRepository           ReportRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Transactor:                 db,
		UserRepository:             NewUserRepository(db, logger),
		LocationRepository:         NewLocationRepository(db, logger),
		CategoryRepository:         NewCategoryRepository(db, logger),
		AssetRepository:            NewAssetRepository(db, logger),
		AssignmentRepository:       NewAssignmentRepository(db, logger),
		ReturningRequestRepository: NewReturningRequestRepository(db, logger),
		ReportRepository:           NewReportRepository(db, logger),
	}
}
