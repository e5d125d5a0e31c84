package service

import (
	"context"
	"errors"
	"testing"

	"github.com/munchbox/munchbox/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func TestMenuCRUD(t *testing.T) {
	svc := NewMenuService(newTestStore(t))
	ctx := context.Background()

	item, err := svc.AddItem(ctx, models.MenuItem{Name: "Jollof Rice", Price: 400, Category: "Mains"})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if item.ID == "" {
		t.Error("AddItem did not generate an id")
	}

	t.Run("supplied id is kept", func(t *testing.T) {
		got, err := svc.AddItem(ctx, models.MenuItem{ID: "mains-2", Name: "Fried Rice", Price: 400, Category: "Mains"})
		if err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
		if got.ID != "mains-2" {
			t.Errorf("id = %s, want mains-2", got.ID)
		}
	})

	t.Run("partial update leaves other fields intact", func(t *testing.T) {
		updated, err := svc.UpdateItem(ctx, item.ID, models.MenuItemPatch{
			Price:    intPtr(450),
			Featured: boolPtr(true),
		})
		if err != nil {
			t.Fatalf("UpdateItem failed: %v", err)
		}
		if updated.Price != 450 || !updated.Featured {
			t.Errorf("patched item = %+v", updated)
		}
		if updated.Name != "Jollof Rice" || updated.Category != "Mains" {
			t.Errorf("untouched fields changed: %+v", updated)
		}
	})

	t.Run("availability can be switched off and back on", func(t *testing.T) {
		updated, err := svc.UpdateItem(ctx, item.ID, models.MenuItemPatch{Available: boolPtr(false)})
		if err != nil {
			t.Fatalf("UpdateItem failed: %v", err)
		}
		if updated.IsAvailable() {
			t.Error("item still available after patch")
		}

		updated, err = svc.UpdateItem(ctx, item.ID, models.MenuItemPatch{Available: boolPtr(true)})
		if err != nil {
			t.Fatalf("UpdateItem failed: %v", err)
		}
		if !updated.IsAvailable() {
			t.Error("item unavailable after re-enable")
		}
	})

	t.Run("update of unknown id is not-found", func(t *testing.T) {
		if _, err := svc.UpdateItem(ctx, "missing", models.MenuItemPatch{Name: strPtr("X")}); !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("delete removes the item", func(t *testing.T) {
		if err := svc.DeleteItem(ctx, item.ID); err != nil {
			t.Fatalf("DeleteItem failed: %v", err)
		}
		menu, err := svc.Menu(ctx)
		if err != nil {
			t.Fatalf("Menu failed: %v", err)
		}
		for _, m := range menu {
			if m.ID == item.ID {
				t.Error("deleted item still present")
			}
		}
	})

	t.Run("delete of unknown id is not-found", func(t *testing.T) {
		if err := svc.DeleteItem(ctx, "missing"); !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestMenuItemAvailabilityDefault(t *testing.T) {
	item := models.MenuItem{ID: "mains-1", Name: "Jollof Rice"}
	if !item.IsAvailable() {
		t.Error("absent available flag must mean available")
	}
}
