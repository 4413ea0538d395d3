package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/idea-backlog/internal/logger"
	"github.com/MKhiriev/idea-backlog/internal/mock"
	"github.com/MKhiriev/idea-backlog/internal/service"
	"github.com/MKhiriev/idea-backlog/internal/store"
	"github.com/MKhiriev/idea-backlog/internal/validators"
	"github.com/MKhiriev/idea-backlog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(i int) *int { return &i }

// newTestItemSvc хелпер: сервис поверх моков, unit of work просто вызывает work
func newTestItemSvc(t *testing.T, ctrl *gomock.Controller) (service.ItemService, *mock.MockUnitOfWork, *mock.MockItemRepository, *mock.MockSession) {
	t.Helper()

	uow := mock.NewMockUnitOfWork(ctrl)
	repo := mock.NewMockItemRepository(ctrl)
	sess := mock.NewMockSession(ctrl)

	svc := service.NewItemService(uow, repo, logger.Nop())
	return svc, uow, repo, sess
}

func passThrough(sess store.Session) func(ctx context.Context, work store.Work) error {
	return func(ctx context.Context, work store.Work) error {
		return work(ctx, sess)
	}
}

func TestItemService_CreateItem_DefaultPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, uow, repo, sess := newTestItemSvc(t, ctrl)
	ctx := context.Background()

	uow.EXPECT().WithSession(ctx, gomock.Any()).DoAndReturn(passThrough(sess))
	repo.EXPECT().CreateItem(ctx, sess, models.Item{Name: "idea", Priority: models.DefaultItemPriority}).
		DoAndReturn(func(_ context.Context, _ store.Session, item models.Item) (models.Item, error) {
			item.ID = 1
			return item, nil
		})

	created, err := svc.CreateItem(ctx, models.ItemRequest{Name: "idea"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, 1, created.Priority)
}

func TestItemService_CreateItem_NonPositivePriorityIsBadInput(t *testing.T) {
	for _, priority := range []int{0, -5} {
		ctrl := gomock.NewController(t)
		svc, _, _, _ := newTestItemSvc(t, ctrl)

		// unit of work не должен открываться
		_, err := svc.CreateItem(context.Background(), models.ItemRequest{Name: "idea", Priority: intPtr(priority)})

		var badInput *service.BadInputError
		require.ErrorAs(t, err, &badInput)
		assert.Equal(t, service.MsgPriorityMustBePositive, badInput.Error())
	}
}

func TestItemService_CreateItem_StoreErrorIsReturnedUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, uow, repo, sess := newTestItemSvc(t, ctrl)

	uow.EXPECT().WithSession(gomock.Any(), gomock.Any()).DoAndReturn(passThrough(sess))
	repo.EXPECT().CreateItem(gomock.Any(), sess, gomock.Any()).Return(models.Item{}, store.ErrItemAlreadyExists)

	_, err := svc.CreateItem(context.Background(), models.ItemRequest{Name: "dup"})
	assert.Same(t, store.ErrItemAlreadyExists, err)
}

func TestItemService_GetItem(t *testing.T) {
	tests := []struct {
		name    string
		item    models.Item
		repoErr error
	}{
		{name: "found", item: models.Item{ID: 4, Name: "x", Priority: 1}},
		{name: "not found", repoErr: store.ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, uow, repo, sess := newTestItemSvc(t, ctrl)

			uow.EXPECT().WithSession(gomock.Any(), gomock.Any()).DoAndReturn(passThrough(sess))
			repo.EXPECT().GetItem(gomock.Any(), sess, int64(4)).Return(tt.item, tt.repoErr)

			got, err := svc.GetItem(context.Background(), 4)
			if tt.repoErr != nil {
				assert.ErrorIs(t, err, tt.repoErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.item, got)
		})
	}
}

func TestItemService_ListItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, uow, repo, sess := newTestItemSvc(t, ctrl)

	want := []models.Item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	uow.EXPECT().WithSession(gomock.Any(), gomock.Any()).DoAndReturn(passThrough(sess))
	repo.EXPECT().ListItems(gomock.Any(), sess).Return(want, nil)

	got, err := svc.ListItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestItemService_ListItems_SessionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, uow, _, _ := newTestItemSvc(t, ctrl)

	uow.EXPECT().WithSession(gomock.Any(), gomock.Any()).Return(store.ErrBeginningTransaction)

	got, err := svc.ListItems(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, store.ErrBeginningTransaction)
}

func TestItemService_UpdateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, uow, repo, sess := newTestItemSvc(t, ctrl)

	uow.EXPECT().WithSession(gomock.Any(), gomock.Any()).DoAndReturn(passThrough(sess))
	repo.EXPECT().UpdateItem(gomock.Any(), sess, models.Item{ID: 9, Name: "new", Description: "d", Priority: 3}).
		Return(models.Item{ID: 9, Name: "new", Description: "d", Priority: 3}, nil)

	got, err := svc.UpdateItem(context.Background(), 9, models.ItemRequest{Name: "new", Description: "d", Priority: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
}

func TestItemService_UpdateItem_BadPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestItemSvc(t, ctrl)

	_, err := svc.UpdateItem(context.Background(), 9, models.ItemRequest{Name: "new", Priority: intPtr(0)})

	var badInput *service.BadInputError
	assert.ErrorAs(t, err, &badInput)
}

func TestItemService_DeleteItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, uow, repo, sess := newTestItemSvc(t, ctrl)

	uow.EXPECT().WithSession(gomock.Any(), gomock.Any()).DoAndReturn(passThrough(sess))
	repo.EXPECT().DeleteItem(gomock.Any(), sess, int64(3)).Return(store.ErrItemNotFound)

	assert.ErrorIs(t, svc.DeleteItem(context.Background(), 3), store.ErrItemNotFound)
}

// ── validation wrapper ──────────────────────────────────────────────────────

func TestItemValidationService_RejectsInvalidRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockItemService(ctrl)

	svc := service.NewItemValidationService(validators.NewItemValidator()).Wrap(inner)

	// inner не вызывается: ожиданий нет
	_, err := svc.CreateItem(context.Background(), models.ItemRequest{Name: ""})

	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.NotEmpty(t, vErr.Issues)

	_, err = svc.UpdateItem(context.Background(), 1, models.ItemRequest{Name: ""})
	assert.ErrorAs(t, err, &vErr)
}

func TestItemValidationService_DelegatesValidRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockItemService(ctrl)
	ctx := context.Background()

	svc := service.NewItemValidationService(validators.NewItemValidator()).Wrap(inner)

	req := models.ItemRequest{Name: "ok"}
	gomock.InOrder(
		inner.EXPECT().CreateItem(ctx, req).Return(models.Item{ID: 1}, nil),
		inner.EXPECT().UpdateItem(ctx, int64(1), req).Return(models.Item{ID: 1}, nil),
		inner.EXPECT().GetItem(ctx, int64(1)).Return(models.Item{ID: 1}, nil),
		inner.EXPECT().ListItems(ctx).Return(nil, nil),
		inner.EXPECT().DeleteItem(ctx, int64(1)).Return(errors.New("gone")),
	)

	_, err := svc.CreateItem(ctx, req)
	require.NoError(t, err)
	_, err = svc.UpdateItem(ctx, 1, req)
	require.NoError(t, err)
	_, err = svc.GetItem(ctx, 1)
	require.NoError(t, err)
	_, err = svc.ListItems(ctx)
	require.NoError(t, err)
	assert.EqualError(t, svc.DeleteItem(ctx, 1), "gone")
}
