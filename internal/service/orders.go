package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/munchbox/munchbox/internal/fees"
	"github.com/munchbox/munchbox/internal/metrics"
	"github.com/munchbox/munchbox/internal/models"
	"github.com/munchbox/munchbox/internal/storage"
)

// OrderService owns the order collection and its status lifecycle.
type OrderService struct {
	store storage.Store

	// strict enforces the documented forward path on status updates.
	// Off by default: the storage-level operation historically accepts
	// any known status from any other, and the admin UI is what
	// constrains the buttons shown.
	strict bool

	now func() time.Time
}

// NewOrderService creates an OrderService. strict enables forward-path
// enforcement, a documented deviation from the permissive default.
func NewOrderService(store storage.Store, strict bool) *OrderService {
	return &OrderService{store: store, strict: strict, now: time.Now}
}

// CreateOrder accepts a checkout payload and prepends it to the
// collection, newest first. The submitted total and fees are trusted
// as given; the takeaway fee is recomputed for observability only and
// a mismatch is logged, never rejected.
func (s *OrderService) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	if order.ID == "" || len(order.Items) == 0 {
		return models.Order{}, ErrMissingFields
	}
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	if !order.Status.Known() {
		return models.Order{}, fmt.Errorf("%w: %s", ErrUnknownStatus, order.Status)
	}
	if order.Date == "" {
		order.Date = s.now().UTC().Format(time.RFC3339)
	}

	if expected := fees.TakeawayFee(order.Items); expected != order.Fees.Takeaway {
		slog.Warn("Order takeaway fee differs from recomputed value",
			"order_id", order.ID,
			"submitted", order.Fees.Takeaway,
			"recomputed", expected,
		)
	}

	orders, err := s.store.Orders(ctx)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to load orders: %w", err)
	}
	orders = append([]models.Order{order}, orders...)
	if err := s.store.SaveOrders(ctx, orders); err != nil {
		return models.Order{}, fmt.Errorf("failed to save orders: %w", err)
	}

	metrics.OrdersCreated.Inc()
	slog.Info("Order created", "order_id", order.ID, "total", order.Total, "items", len(order.Items))
	return order, nil
}

// Orders returns the full collection, newest first.
func (s *OrderService) Orders(ctx context.Context) ([]models.Order, error) {
	return s.store.Orders(ctx)
}

// Order fetches one order by id.
func (s *OrderService) Order(ctx context.Context, id string) (models.Order, error) {
	orders, err := s.store.Orders(ctx)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to load orders: %w", err)
	}
	for _, order := range orders {
		if order.ID == id {
			return order, nil
		}
	}
	return models.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
}

// UpdateStatus overwrites only the status field of the identified
// order and persists the collection. Unknown target statuses are
// rejected before any write; a missing id leaves the collection
// unchanged.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	if !status.Known() {
		return models.Order{}, fmt.Errorf("%w: %s", ErrUnknownStatus, status)
	}

	orders, err := s.store.Orders(ctx)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to load orders: %w", err)
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if s.strict && !models.CanTransition(orders[i].Status, status) {
			return models.Order{}, fmt.Errorf("%w: %s -> %s", ErrBadTransition, orders[i].Status, status)
		}
		orders[i].Status = status
		if err := s.store.SaveOrders(ctx, orders); err != nil {
			return models.Order{}, fmt.Errorf("failed to save orders: %w", err)
		}
		metrics.StatusUpdates.WithLabelValues(string(status)).Inc()
		slog.Info("Order status updated", "order_id", id, "status", status)
		return orders[i], nil
	}

	slog.Warn("Order not found for status update", "order_id", id)
	return models.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
}

// OrdersWithin filters the collection by a calendar window.
func (s *OrderService) OrdersWithin(ctx context.Context, window TimeWindow) ([]models.Order, error) {
	orders, err := s.store.Orders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	now := s.now()
	filtered := []models.Order{}
	for _, order := range orders {
		if window.Contains(order.Date, now) {
			filtered = append(filtered, order)
		}
	}
	return filtered, nil
}
