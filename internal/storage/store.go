// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/munchbox/munchbox/internal/models"
)

// Store persists the named collections the backend works with. Every
// collection is read and written wholesale: there is no partial-record
// update at this boundary, so callers do read-modify-write and the
// backend guarantees the replacement is atomic.
//
// Reads never fail on missing data: an absent or unreadable collection
// resolves to its empty value. The abstraction allows swapping backends
// (JSON files, SQLite) without changing the service layer.
type Store interface {
	Menu(ctx context.Context) ([]models.MenuItem, error)
	SaveMenu(ctx context.Context, items []models.MenuItem) error

	Orders(ctx context.Context) ([]models.Order, error)
	SaveOrders(ctx context.Context, orders []models.Order) error

	Employees(ctx context.Context) ([]models.Employee, error)
	SaveEmployees(ctx context.Context, employees []models.Employee) error

	Reviews(ctx context.Context) ([]models.Review, error)
	SaveReviews(ctx context.Context, reviews []models.Review) error

	Users(ctx context.Context) ([]models.User, error)
	SaveUsers(ctx context.Context, users []models.User) error

	Settings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, settings models.Settings) error

	// Close releases any resources held by the store.
	Close() error
}
