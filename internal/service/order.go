package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gmarcondes/papelaria-fulfillment/internal/entities"
	"github.com/gmarcondes/papelaria-fulfillment/pkg/trm"
	"github.com/gmarcondes/papelaria-fulfillment/pkg/utils"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderForUpdate(ctx context.Context, orderID string) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, from, to entities.Status, trackingCode string) (bool, error)
	InsertHistory(ctx context.Context, orderID string, entry entities.HistoryEntry) error

	SaveOrder(ctx context.Context, o entities.Order) (bool, error)
	SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error

	ListByStatus(ctx context.Context, status entities.Status, filter entities.ListFilter) ([]entities.Order, error)
	CountByStatus(ctx context.Context) (map[entities.Status]int64, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

const defaultListLimit = 100

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
	}
}

// Transition applies one edge of the status graph to an order. The row lock,
// conditional update and history append run in a single transaction: either
// status, history and tracking code all change, or none do. The conditional
// update turns a lost race into entities.ErrTransitionConflict instead of a
// silent overwrite.
func (s *orderService) Transition(ctx context.Context, orderID string, target entities.Status, meta entities.TransitionMeta, actorID string) (entities.Order, error) {
	if !target.IsValid() {
		return entities.Order{}, entities.ErrUnknownStatus
	}

	var updated entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}

		if !order.Status.CanTransitionTo(target) {
			return &entities.InvalidTransitionError{From: order.Status, To: target}
		}
		if target == entities.StatusShipped && meta.TrackingCode == "" {
			return entities.ErrMissingTrackingCode
		}

		ok, err := s.repo.UpdateOrderStatus(ctx, orderID, order.Status, target, meta.TrackingCode)
		if err != nil {
			return err
		}
		if !ok {
			return entities.ErrTransitionConflict
		}

		entry := entities.HistoryEntry{
			Status:    target,
			ChangedAt: time.Now().UTC(),
			ActorID:   actorID,
			Note:      meta.Note,
		}
		if err := s.repo.InsertHistory(ctx, orderID, entry); err != nil {
			return err
		}

		// Reads inside the transaction see the rows written above.
		updated, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	})

	result := "ok"
	if err != nil {
		result = "rejected"
	}
	transitionsTotal.WithLabelValues(string(target), result).Inc()

	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(orderID)
	s.logger.InfoContext(ctx, "order status changed",
		slog.String("order_id", orderID),
		slog.String("status", string(target)),
		slog.String("actor_id", actorID),
	)
	return updated, nil
}

// CreateOrder registers a checkout order in the initial pending status with
// its first history entry. Delivery is idempotent: a duplicate order id is a
// no-op.
func (s *orderService) CreateOrder(ctx context.Context, order entities.Order) error {
	order.Status = entities.StatusPending
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			created, err := s.repo.SaveOrder(ctx, order)
			if err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if !created {
				s.logger.DebugContext(ctx, "order already exists, skipping", slog.String("order_id", order.ID))
				return nil
			}
			if err := s.repo.SaveItems(ctx, order.ID, order.Items); err != nil {
				return fmt.Errorf("failed to save items: %w", err)
			}
			entry := entities.HistoryEntry{
				Status:    entities.StatusPending,
				ChangedAt: order.CreatedAt,
				ActorID:   "checkout",
			}
			if err := s.repo.InsertHistory(ctx, order.ID, entry); err != nil {
				return fmt.Errorf("failed to save initial history: %w", err)
			}

			s.logger.DebugContext(ctx, "order created", slog.String("order_id", order.ID))
			return nil
		})
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	return utils.Retry(cfg, fn)
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.ErrorContext(ctx, "failed to unmarshal cached order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrInvalidOrder, err)
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	if data, err := order.Marshal(); err == nil {
		s.cache.Set(orderID, data)
	}
	return order, nil
}

// GetHistory returns the append-only audit trail for an order.
func (s *orderService) GetHistory(ctx context.Context, orderID string) ([]entities.HistoryEntry, error) {
	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return order.History, nil
}

// NextValidStates reports the statuses the order can move to from its current
// state. Terminal states yield an empty slice.
func (s *orderService) NextValidStates(ctx context.Context, orderID string) (entities.Status, []entities.Status, error) {
	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return "", nil, err
	}
	return order.Status, order.Status.NextStatuses(), nil
}

func (s *orderService) ListByStatus(ctx context.Context, status entities.Status, filter entities.ListFilter) ([]entities.Order, error) {
	if !status.IsValid() {
		return nil, entities.ErrUnknownStatus
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	return s.repo.ListByStatus(ctx, status, filter)
}

func (s *orderService) AggregateCounts(ctx context.Context) (map[entities.Status]int64, error) {
	return s.repo.CountByStatus(ctx)
}
