package service

import (
	"context"

	"github.com/MKhiriev/idea-backlog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type ItemService interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	CreateItem(ctx context.Context, req models.ItemRequest) (models.Item, error)
	UpdateItem(ctx context.Context, id int64, req models.ItemRequest) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

// ItemServiceWrapper defines middleware composition for ItemService.
// Implementations wrap an existing ItemService to add behavior such as
// validating.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService // returns a decorated ItemService applying additional behavior
}

type HealthService interface {
	// Check runs a no-op query through the unit of work.
	Check(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
