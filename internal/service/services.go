package service

import (
	"github.com/MKhiriev/idea-backlog/internal/logger"
	"github.com/MKhiriev/idea-backlog/internal/store"
	"github.com/MKhiriev/idea-backlog/internal/validators"
	"github.com/MKhiriev/idea-backlog/models"
)

type Services struct {
	ItemService    ItemService
	HealthService  HealthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	itemService := NewItemService(storages.UnitOfWork, storages.ItemRepository, logger)

	return &Services{
		ItemService:    NewItemValidationService(validators.NewItemValidator()).Wrap(itemService),
		HealthService:  NewHealthService(storages.UnitOfWork, logger),
		AppInfoService: appInfoService,
	}, nil
}
