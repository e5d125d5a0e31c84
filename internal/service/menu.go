package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/munchbox/munchbox/internal/models"
	"github.com/munchbox/munchbox/internal/storage"
)

// MenuService owns the menu collection.
type MenuService struct {
	store storage.Store
	now   func() time.Time
}

// NewMenuService creates a MenuService.
func NewMenuService(store storage.Store) *MenuService {
	return &MenuService{store: store, now: time.Now}
}

// Menu returns the full menu.
func (s *MenuService) Menu(ctx context.Context) ([]models.MenuItem, error) {
	return s.store.Menu(ctx)
}

// AddItem appends a new menu item, generating an id when the admin
// form did not supply one.
func (s *MenuService) AddItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if item.Name == "" {
		return models.MenuItem{}, ErrMissingFields
	}
	if item.ID == "" {
		item.ID = fmt.Sprintf("item-%d", s.now().UnixMilli())
	}

	menu, err := s.store.Menu(ctx)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("failed to load menu: %w", err)
	}
	menu = append(menu, item)
	if err := s.store.SaveMenu(ctx, menu); err != nil {
		return models.MenuItem{}, fmt.Errorf("failed to save menu: %w", err)
	}

	slog.Info("Menu item added", "item_id", item.ID, "name", item.Name)
	return item, nil
}

// UpdateItem merges a patch into the identified item.
func (s *MenuService) UpdateItem(ctx context.Context, id string, patch models.MenuItemPatch) (models.MenuItem, error) {
	menu, err := s.store.Menu(ctx)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("failed to load menu: %w", err)
	}

	for i := range menu {
		if menu[i].ID != id {
			continue
		}
		patch.Apply(&menu[i])
		if err := s.store.SaveMenu(ctx, menu); err != nil {
			return models.MenuItem{}, fmt.Errorf("failed to save menu: %w", err)
		}
		return menu[i], nil
	}
	return models.MenuItem{}, fmt.Errorf("menu item %s: %w", id, ErrNotFound)
}

// DeleteItem removes the identified item; a missing id is not-found.
func (s *MenuService) DeleteItem(ctx context.Context, id string) error {
	menu, err := s.store.Menu(ctx)
	if err != nil {
		return fmt.Errorf("failed to load menu: %w", err)
	}

	filtered := menu[:0:0]
	for _, item := range menu {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == len(menu) {
		return fmt.Errorf("menu item %s: %w", id, ErrNotFound)
	}
	if err := s.store.SaveMenu(ctx, filtered); err != nil {
		return fmt.Errorf("failed to save menu: %w", err)
	}
	slog.Info("Menu item deleted", "item_id", id)
	return nil
}
