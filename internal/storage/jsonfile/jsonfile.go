// Package jsonfile implements storage.Store over flat JSON files, one
// file per collection, rewritten wholesale on every mutation.
//
// Writes are best-effort: they are serialised per path, applied with a
// temp-file-and-rename so a reader never observes a torn file, and any
// I/O error is logged and swallowed. Reads of a missing or corrupt
// file resolve to the empty collection and never create the file.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/munchbox/munchbox/internal/metrics"
	"github.com/munchbox/munchbox/internal/models"
	"github.com/munchbox/munchbox/internal/storage"
)

// Collection file names inside the data directory.
const (
	menuFile      = "menu.json"
	ordersFile    = "orders.json"
	employeesFile = "employees.json"
	reviewsFile   = "reviews.json"
	usersFile     = "users.json"
	settingsFile  = "settings.json"
)

// Ensure Store implements storage.Store.
var _ storage.Store = (*Store)(nil)

// Store is the file-backed implementation of storage.Store.
type Store struct {
	dir     string
	discard bool
	queue   *writeQueue

	warnOnce sync.Once
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir, queue: newWriteQueue()}, nil
}

// NewDiscard creates a Store for hosts without writable disk: reads
// behave normally, writes are accepted and silently dropped. Callers
// must not depend on persistence succeeding in this mode.
func NewDiscard(dir string) *Store {
	return &Store{dir: dir, discard: true, queue: newWriteQueue()}
}

// Close implements storage.Store. There is nothing to release; queued
// writes each hold their own file handle only while running.
func (s *Store) Close() error { return nil }

// read decodes the named collection file into out. A missing or
// unparsable file leaves out untouched, so the caller's pre-set
// fallback (typically the empty collection) survives. No file is
// ever created by a read.
func (s *Store) read(name string, out any) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		slog.Warn("Unparsable collection file, using fallback", "path", path, "error", err)
	}
}

// write enqueues an atomic replacement of the named collection file
// and waits for it to settle. The return is always nil in disk mode:
// I/O failures are logged and counted, never surfaced, so a caller
// cannot distinguish "persisted" from "discarded". ctx only bounds
// the wait; a write already queued still applies.
func (s *Store) write(ctx context.Context, name string, v any) error {
	if s.discard {
		s.warnOnce.Do(func() {
			slog.Warn("Persistence disabled: collection writes will be discarded", "dir", s.dir)
		})
		return nil
	}

	path := filepath.Join(s.dir, name)
	done := s.queue.enqueue(path, func() {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			slog.Error("Failed to encode collection", "path", path, "error", err)
			metrics.PersistenceFailures.Inc()
			return
		}
		tmp := fmt.Sprintf("%s.%d.tmp", path, os.Getpid())
		if err := os.WriteFile(tmp, data, 0o644); err != nil {
			slog.Error("Failed to write collection", "path", path, "error", err)
			metrics.PersistenceFailures.Inc()
			return
		}
		if err := os.Rename(tmp, path); err != nil {
			slog.Error("Failed to replace collection", "path", path, "error", err)
			metrics.PersistenceFailures.Inc()
			os.Remove(tmp)
		}
	})

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) Menu(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	s.read(menuFile, &items)
	return items, nil
}

func (s *Store) SaveMenu(ctx context.Context, items []models.MenuItem) error {
	return s.write(ctx, menuFile, items)
}

func (s *Store) Orders(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	s.read(ordersFile, &orders)
	return orders, nil
}

func (s *Store) SaveOrders(ctx context.Context, orders []models.Order) error {
	return s.write(ctx, ordersFile, orders)
}

func (s *Store) Employees(ctx context.Context) ([]models.Employee, error) {
	employees := []models.Employee{}
	s.read(employeesFile, &employees)
	return employees, nil
}

func (s *Store) SaveEmployees(ctx context.Context, employees []models.Employee) error {
	return s.write(ctx, employeesFile, employees)
}

func (s *Store) Reviews(ctx context.Context) ([]models.Review, error) {
	reviews := []models.Review{}
	s.read(reviewsFile, &reviews)
	return reviews, nil
}

func (s *Store) SaveReviews(ctx context.Context, reviews []models.Review) error {
	return s.write(ctx, reviewsFile, reviews)
}

func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	s.read(usersFile, &users)
	return users, nil
}

func (s *Store) SaveUsers(ctx context.Context, users []models.User) error {
	return s.write(ctx, usersFile, users)
}

func (s *Store) Settings(ctx context.Context) (models.Settings, error) {
	var settings models.Settings
	s.read(settingsFile, &settings)
	return settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings models.Settings) error {
	return s.write(ctx, settingsFile, settings)
}
