package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/gmarcondes/papelaria-fulfillment/internal/entities"
	"github.com/gmarcondes/papelaria-fulfillment/internal/service"
	mocks "github.com/gmarcondes/papelaria-fulfillment/internal/service/mocks"
	txMocks "github.com/gmarcondes/papelaria-fulfillment/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_Transition(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache)

	confirmed := entities.Order{ID: "PED-1", Status: entities.StatusConfirmed}
	processing := entities.Order{ID: "PED-1", Status: entities.StatusProcessing}

	testCases := []struct {
		name         string
		target       entities.Status
		meta         entities.TransitionMeta
		mockBehavior MockBehavior
		wantErr      error
		wantInvalid  bool
		want         entities.Order
	}{
		{
			name:   "legal transition",
			target: entities.StatusProcessing,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "PED-1").Return(confirmed, nil).Once()
				orderRepo.EXPECT().UpdateOrderStatus(mock.Anything, "PED-1", entities.StatusConfirmed, entities.StatusProcessing, "").
					Return(true, nil).Once()
				orderRepo.EXPECT().InsertHistory(mock.Anything, "PED-1", mock.Anything).Return(nil).Once()
				orderRepo.EXPECT().GetOrderByID(mock.Anything, "PED-1").Return(processing, nil).Once()
				cache.EXPECT().Delete("PED-1").Return().Once()
			},
			want: processing,
		},
		{
			name:   "illegal edge",
			target: entities.StatusDelivered,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockCache) {
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "PED-1").Return(confirmed, nil).Once()
			},
			wantInvalid: true,
		},
		{
			name:         "unknown target status",
			target:       entities.Status("despachado"),
			mockBehavior: func(_ *mocks.MockOrderRepo, _ *mocks.MockCache) {},
			wantErr:      entities.ErrUnknownStatus,
		},
		{
			name:   "shipped requires tracking code",
			target: entities.StatusShipped,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockCache) {
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "PED-1").Return(processing, nil).Once()
			},
			wantErr: entities.ErrMissingTrackingCode,
		},
		{
			name:   "shipped with tracking code",
			target: entities.StatusShipped,
			meta:   entities.TransitionMeta{TrackingCode: "BR123456789"},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				shipped := entities.Order{ID: "PED-1", Status: entities.StatusShipped, TrackingCode: "BR123456789"}
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "PED-1").Return(processing, nil).Once()
				orderRepo.EXPECT().UpdateOrderStatus(mock.Anything, "PED-1", entities.StatusProcessing, entities.StatusShipped, "BR123456789").
					Return(true, nil).Once()
				orderRepo.EXPECT().InsertHistory(mock.Anything, "PED-1", mock.Anything).Return(nil).Once()
				orderRepo.EXPECT().GetOrderByID(mock.Anything, "PED-1").Return(shipped, nil).Once()
				cache.EXPECT().Delete("PED-1").Return().Once()
			},
			want: entities.Order{ID: "PED-1", Status: entities.StatusShipped, TrackingCode: "BR123456789"},
		},
		{
			name:   "order not found",
			target: entities.StatusProcessing,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockCache) {
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "PED-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:   "lost race yields conflict",
			target: entities.StatusProcessing,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockCache) {
				orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "PED-1").Return(confirmed, nil).Once()
				orderRepo.EXPECT().UpdateOrderStatus(mock.Anything, "PED-1", entities.StatusConfirmed, entities.StatusProcessing, "").
					Return(false, nil).Once()
			},
			wantErr: entities.ErrTransitionConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					}).Maybe()

			tc.mockBehavior(orderRepo, cache)

			svc := service.NewOrderService(logger, tx, orderRepo, cache)

			got, err := svc.Transition(context.Background(), "PED-1", tc.target, tc.meta, "op-7")

			if tc.wantInvalid {
				var invalid *entities.InvalidTransitionError
				require.ErrorAs(t, err, &invalid)
				return
			}
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_Transition_HistoryEntry(t *testing.T) {
	confirmed := entities.Order{ID: "PED-1", Status: entities.StatusConfirmed}

	orderRepo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockCache(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tx.EXPECT().Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		})

	var entry entities.HistoryEntry
	orderRepo.EXPECT().GetOrderForUpdate(mock.Anything, "PED-1").Return(confirmed, nil).Once()
	orderRepo.EXPECT().UpdateOrderStatus(mock.Anything, "PED-1", entities.StatusConfirmed, entities.StatusCancelled, "").
		Return(true, nil).Once()
	orderRepo.EXPECT().InsertHistory(mock.Anything, "PED-1", mock.Anything).
		Run(func(_ context.Context, _ string, e entities.HistoryEntry) {
			entry = e
		}).Return(nil).Once()
	orderRepo.EXPECT().GetOrderByID(mock.Anything, "PED-1").
		Return(entities.Order{ID: "PED-1", Status: entities.StatusCancelled}, nil).Once()
	cache.EXPECT().Delete("PED-1").Return().Once()

	svc := service.NewOrderService(logger, tx, orderRepo, cache)

	meta := entities.TransitionMeta{Note: "cliente desistiu"}
	_, err := svc.Transition(context.Background(), "PED-1", entities.StatusCancelled, meta, "op-7")
	require.NoError(t, err)

	assert.Equal(t, entities.StatusCancelled, entry.Status)
	assert.Equal(t, "op-7", entry.ActorID)
	assert.Equal(t, "cliente desistiu", entry.Note)
	assert.False(t, entry.ChangedAt.IsZero())
}

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo)

	dbError := errors.New("db error")
	order := entities.Order{
		ID:            "PED-1",
		CustomerEmail: "ana@example.com",
		Items:         []entities.OrderItem{{ProductID: "caderno-a5", Quantity: 2}},
	}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(true, nil)
				orderRepo.EXPECT().SaveItems(mock.Anything, "PED-1", order.Items).Return(nil)
				orderRepo.EXPECT().InsertHistory(mock.Anything, "PED-1", mock.Anything).Return(nil)
			},
		},
		{
			name: "duplicate delivery is a no-op",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(false, nil)
			},
		},
		{
			name: "retry works (first attempt fails, second succeeds)",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(false, errors.New("temporary error"))
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(true, nil)
				orderRepo.EXPECT().SaveItems(mock.Anything, "PED-1", order.Items).Return(nil)
				orderRepo.EXPECT().InsertHistory(mock.Anything, "PED-1", mock.Anything).Return(nil)
			},
		},
		{
			name: "items failure propagates",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(true, nil)
				orderRepo.EXPECT().SaveItems(mock.Anything, "PED-1", order.Items).Return(dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					})

			tc.mockBehavior(orderRepo)

			svc := service.NewOrderService(logger, tx, orderRepo, cache)

			err := svc.CreateOrder(context.Background(), order)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_CreateOrder_ForcesInitialStatus(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockCache(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tx.EXPECT().Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		})

	var saved entities.Order
	orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
		Run(func(_ context.Context, o entities.Order) {
			saved = o
		}).Return(true, nil)
	orderRepo.EXPECT().SaveItems(mock.Anything, "PED-1", mock.Anything).Return(nil)
	orderRepo.EXPECT().InsertHistory(mock.Anything, "PED-1", mock.Anything).Return(nil)

	svc := service.NewOrderService(logger, tx, orderRepo, cache)

	// The producer cannot pick its own status.
	err := svc.CreateOrder(context.Background(), entities.Order{ID: "PED-1", Status: entities.StatusDelivered})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPending, saved.Status)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestOrderService_GetOrderByID(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache)

	validOrder := entities.Order{ID: "PED-1", Status: entities.StatusConfirmed}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name:    "success from cache",
			orderID: "PED-1",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("PED-1").Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name:    "cache hit but unmarshal fails",
			orderID: "PED-1",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("PED-1").Return([]byte("broken"), true).Once()
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name:    "success from repo and set to cache",
			orderID: "PED-1",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("PED-1").Return(nil, false).Once()
				orderRepo.EXPECT().GetOrderByID(mock.Anything, "PED-1").Return(validOrder, nil).Once()
				cache.EXPECT().Set("PED-1", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "not found is not retried",
			orderID: "nao-existe",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("nao-existe").Return(nil, false).Once()
				orderRepo.EXPECT().GetOrderByID(mock.Anything, "nao-existe").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "second attempt from repo",
			orderID: "PED-1",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("PED-1").Return(nil, false).Once()
				orderRepo.EXPECT().GetOrderByID(mock.Anything, "PED-1").
					Return(entities.Order{}, errors.New("some error")).Once()
				orderRepo.EXPECT().GetOrderByID(mock.Anything, "PED-1").
					Return(validOrder, nil).Once()
				cache.EXPECT().Set("PED-1", validData).Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(orderRepo, cache)

			svc := service.NewOrderService(logger, tx, orderRepo, cache)

			got, err := svc.GetOrderByID(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_NextValidStates(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockCache(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	order := entities.Order{ID: "PED-1", Status: entities.StatusProcessing}
	cache.EXPECT().Get("PED-1").Return(nil, false).Once()
	orderRepo.EXPECT().GetOrderByID(mock.Anything, "PED-1").Return(order, nil).Once()
	cache.EXPECT().Set("PED-1", mock.Anything).Return().Once()

	svc := service.NewOrderService(logger, tx, orderRepo, cache)

	current, next, err := svc.NextValidStates(context.Background(), "PED-1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusProcessing, current)
	assert.Equal(t, []entities.Status{entities.StatusShipped, entities.StatusCancelled}, next)
}

func TestOrderService_ListByStatus(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockCache(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var gotFilter entities.ListFilter
	orderRepo.EXPECT().ListByStatus(mock.Anything, entities.StatusPending, mock.Anything).
		Run(func(_ context.Context, _ entities.Status, filter entities.ListFilter) {
			gotFilter = filter
		}).
		Return([]entities.Order{{ID: "PED-1"}}, nil).Once()

	svc := service.NewOrderService(logger, tx, orderRepo, cache)

	orders, err := svc.ListByStatus(context.Background(), entities.StatusPending, entities.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, 100, gotFilter.Limit)

	_, err = svc.ListByStatus(context.Background(), entities.Status("despachado"), entities.ListFilter{})
	assert.ErrorIs(t, err, entities.ErrUnknownStatus)
}
