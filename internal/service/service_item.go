package service

import (
	"context"

	"github.com/MKhiriev/idea-backlog/internal/logger"
	"github.com/MKhiriev/idea-backlog/internal/store"
	"github.com/MKhiriev/idea-backlog/models"
)

// itemService runs every item operation in its own unit of work.
type itemService struct {
	uow   store.UnitOfWork
	items store.ItemRepository

	logger *logger.Logger
}

func NewItemService(uow store.UnitOfWork, items store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		uow:    uow,
		items:  items,
		logger: logger,
	}
}

func (s *itemService) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := s.uow.WithSession(ctx, func(ctx context.Context, sess store.Session) error {
		var err error
		items, err = s.items.ListItems(ctx, sess)
		return err
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (s *itemService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	var item models.Item
	err := s.uow.WithSession(ctx, func(ctx context.Context, sess store.Session) error {
		var err error
		item, err = s.items.GetItem(ctx, sess, id)
		return err
	})

	return item, err
}

func (s *itemService) CreateItem(ctx context.Context, req models.ItemRequest) (models.Item, error) {
	item := req.ToItem()
	if err := checkPriority(item.Priority); err != nil {
		return models.Item{}, err
	}

	var created models.Item
	err := s.uow.WithSession(ctx, func(ctx context.Context, sess store.Session) error {
		var err error
		created, err = s.items.CreateItem(ctx, sess, item)
		return err
	})
	if err != nil {
		return models.Item{}, err
	}

	logger.FromContext(ctx).Info().Int64("item_id", created.ID).Msg("item created")
	return created, nil
}

func (s *itemService) UpdateItem(ctx context.Context, id int64, req models.ItemRequest) (models.Item, error) {
	item := req.ToItem()
	item.ID = id
	if err := checkPriority(item.Priority); err != nil {
		return models.Item{}, err
	}

	var updated models.Item
	err := s.uow.WithSession(ctx, func(ctx context.Context, sess store.Session) error {
		var err error
		updated, err = s.items.UpdateItem(ctx, sess, item)
		return err
	})
	if err != nil {
		return models.Item{}, err
	}

	return updated, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id int64) error {
	return s.uow.WithSession(ctx, func(ctx context.Context, sess store.Session) error {
		return s.items.DeleteItem(ctx, sess, id)
	})
}

func checkPriority(priority int) error {
	if priority < 1 {
		return NewBadInputError(MsgPriorityMustBePositive)
	}

	return nil
}
