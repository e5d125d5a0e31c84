// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface.
//
// Collections keep their whole-document semantics: each one is stored
// as a single JSON blob in the collections table and replaced in full
// on every save. This backend trades the flat files' best-effort
// contract for real write errors, which is a deliberate behavior
// change a deployment opts into.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/munchbox/munchbox/internal/models"
	"github.com/munchbox/munchbox/internal/storage"
)

// Collection names used as primary keys.
const (
	menuCollection      = "menu"
	ordersCollection    = "orders"
	employeesCollection = "employees"
	reviewsCollection   = "reviews"
	usersCollection     = "users"
	settingsCollection  = "settings"
)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
    name TEXT PRIMARY KEY,
    data TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// Ensure SQLiteStore implements storage.Store.
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path. It
// creates the parent directories and the schema automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Serialised writes within one connection, matching the per-path
	// queue semantics of the file backend.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// load decodes the named collection into out. An absent row leaves
// out at the caller's fallback value, matching the file backend.
func (s *SQLiteStore) load(ctx context.Context, name string, out any) error {
	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM collections WHERE name = ?", name,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load collection %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("failed to decode collection %s: %w", name, err)
	}
	return nil
}

// replace stores v as the full content of the named collection.
func (s *SQLiteStore) replace(ctx context.Context, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", name, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections (name, data, updated_at)
		VALUES (?, ?, unixepoch())
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to replace collection %s: %w", name, err)
	}
	return nil
}

func (s *SQLiteStore) Menu(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	if err := s.load(ctx, menuCollection, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQLiteStore) SaveMenu(ctx context.Context, items []models.MenuItem) error {
	return s.replace(ctx, menuCollection, items)
}

func (s *SQLiteStore) Orders(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	if err := s.load(ctx, ordersCollection, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *SQLiteStore) SaveOrders(ctx context.Context, orders []models.Order) error {
	return s.replace(ctx, ordersCollection, orders)
}

func (s *SQLiteStore) Employees(ctx context.Context) ([]models.Employee, error) {
	employees := []models.Employee{}
	if err := s.load(ctx, employeesCollection, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *SQLiteStore) SaveEmployees(ctx context.Context, employees []models.Employee) error {
	return s.replace(ctx, employeesCollection, employees)
}

func (s *SQLiteStore) Reviews(ctx context.Context) ([]models.Review, error) {
	reviews := []models.Review{}
	if err := s.load(ctx, reviewsCollection, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *SQLiteStore) SaveReviews(ctx context.Context, reviews []models.Review) error {
	return s.replace(ctx, reviewsCollection, reviews)
}

func (s *SQLiteStore) Users(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.load(ctx, usersCollection, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SQLiteStore) SaveUsers(ctx context.Context, users []models.User) error {
	return s.replace(ctx, usersCollection, users)
}

func (s *SQLiteStore) Settings(ctx context.Context) (models.Settings, error) {
	var settings models.Settings
	if err := s.load(ctx, settingsCollection, &settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(ctx context.Context, settings models.Settings) error {
	return s.replace(ctx, settingsCollection, settings)
}
