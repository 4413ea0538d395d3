package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/idea-backlog/internal/validators"
	"github.com/MKhiriev/idea-backlog/models"
)

// ItemValidationService checks request shape before delegating to the
// wrapped ItemService.
type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService(validator validators.Validator) ItemServiceWrapper {
	return &ItemValidationService{
		validator: validator,
	}
}

func (v *ItemValidationService) ListItems(ctx context.Context) ([]models.Item, error) {
	return v.inner.ListItems(ctx)
}

func (v *ItemValidationService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	return v.inner.GetItem(ctx, id)
}

func (v *ItemValidationService) CreateItem(ctx context.Context, req models.ItemRequest) (models.Item, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Item{}, fmt.Errorf("error during item validation before saving: %w", err)
	}

	return v.inner.CreateItem(ctx, req)
}

func (v *ItemValidationService) UpdateItem(ctx context.Context, id int64, req models.ItemRequest) (models.Item, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Item{}, fmt.Errorf("error during item validation before updating: %w", err)
	}

	return v.inner.UpdateItem(ctx, id, req)
}

func (v *ItemValidationService) DeleteItem(ctx context.Context, id int64) error {
	return v.inner.DeleteItem(ctx, id)
}

func (v *ItemValidationService) Wrap(wrapper ItemService) ItemService {
	v.inner = wrapper
	return v
}
