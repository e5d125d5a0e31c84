package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/munchbox/munchbox/internal/models"
)

func TestReadFallback(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()

	t.Run("missing file resolves to empty collection", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			menu, err := store.Menu(ctx)
			if err != nil {
				t.Fatalf("Menu failed: %v", err)
			}
			if len(menu) != 0 {
				t.Errorf("Menu = %v, want empty", menu)
			}
		}
		if _, err := os.Stat(filepath.Join(store.dir, menuFile)); !os.IsNotExist(err) {
			t.Error("read created the collection file")
		}
	})

	t.Run("corrupt file resolves to empty collection", func(t *testing.T) {
		path := filepath.Join(store.dir, ordersFile)
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatalf("seed corrupt file: %v", err)
		}
		orders, err := store.Orders(ctx)
		if err != nil {
			t.Fatalf("Orders failed: %v", err)
		}
		if len(orders) != 0 {
			t.Errorf("Orders = %v, want empty", orders)
		}
	})

	t.Run("missing settings resolve to zero object", func(t *testing.T) {
		settings, err := store.Settings(ctx)
		if err != nil {
			t.Fatalf("Settings failed: %v", err)
		}
		if settings.StoreName != "" || settings.Hours != nil {
			t.Errorf("Settings = %+v, want zero value", settings)
		}
	})
}

func TestWriteThenRead(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()

	want := []models.MenuItem{
		{ID: "mains-1", Name: "Jollof Rice", Price: 400, Category: "Mains"},
		{ID: "mains-2", Name: "Fried Rice", Price: 400, Category: "Mains", Featured: true},
	}
	if err := store.SaveMenu(ctx, want); err != nil {
		t.Fatalf("SaveMenu failed: %v", err)
	}

	got, err := store.Menu(ctx)
	if err != nil {
		t.Fatalf("Menu failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Menu returned %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	// No temp file may survive a completed write.
	entries, err := os.ReadDir(store.dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestWriteOrdering(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()

	const n = 50
	for i := 0; i < n; i++ {
		orders := []models.Order{{ID: fmt.Sprintf("ORD-%d", i), Status: models.StatusPending}}
		if err := store.SaveOrders(ctx, orders); err != nil {
			t.Fatalf("SaveOrders %d failed: %v", i, err)
		}
	}

	orders, err := store.Orders(ctx)
	if err != nil {
		t.Fatalf("Orders failed: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != fmt.Sprintf("ORD-%d", n-1) {
		t.Errorf("final content = %+v, want last submitted write", orders)
	}
}

// TestConcurrentWritesNeverTear hammers one path from many goroutines
// and checks the file always holds one complete value.
func TestConcurrentWritesNeverTear(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()
	path := filepath.Join(store.dir, ordersFile)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	// Reader: every observed file state must parse.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			data, err := os.ReadFile(path)
			if err != nil {
				continue // not written yet
			}
			var orders []models.Order
			if err := json.Unmarshal(data, &orders); err != nil {
				t.Errorf("observed torn file: %v", err)
				return
			}
		}
	}()

	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				orders := make([]models.Order, w+1)
				for j := range orders {
					orders[j] = models.Order{ID: fmt.Sprintf("ORD-%d-%d-%d", w, i, j)}
				}
				if err := store.SaveOrders(ctx, orders); err != nil {
					t.Errorf("SaveOrders failed: %v", err)
					return
				}
			}
		}(w)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		wg.Wait()
	}()
	// Writers finish first; give the reader a moment more, then stop it.
	time.Sleep(50 * time.Millisecond)
	close(stop)
	<-done
}

func TestDiscardMode(t *testing.T) {
	dir := t.TempDir()
	store := NewDiscard(dir)
	ctx := context.Background()

	if err := store.SaveMenu(ctx, []models.MenuItem{{ID: "mains-1", Name: "Jollof Rice", Price: 400}}); err != nil {
		t.Fatalf("SaveMenu failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, menuFile)); !os.IsNotExist(err) {
		t.Error("discard mode wrote to disk")
	}

	// Reads still work against pre-existing files.
	seed := []models.MenuItem{{ID: "mains-2", Name: "Fried Rice", Price: 400}}
	data, _ := json.Marshal(seed)
	if err := os.WriteFile(filepath.Join(dir, menuFile), data, 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	menu, err := store.Menu(ctx)
	if err != nil {
		t.Fatalf("Menu failed: %v", err)
	}
	if len(menu) != 1 || menu[0].ID != "mains-2" {
		t.Errorf("Menu = %+v, want seeded item", menu)
	}
}

func TestQueueSerialisesAndSurvivesFailures(t *testing.T) {
	q := newWriteQueue()

	var mu sync.Mutex
	var got []int

	release := make(chan struct{})
	q.enqueue("p", func() {
		<-release // hold the head of the queue
		mu.Lock()
		got = append(got, 0)
		mu.Unlock()
	})
	q.enqueue("p", func() {
		mu.Lock()
		got = append(got, 1)
		mu.Unlock()
		// settles after doing nothing useful, like a failed write
	})
	last := q.enqueue("p", func() {
		mu.Lock()
		got = append(got, 2)
		mu.Unlock()
	})

	// Nothing may run while the head task is held.
	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	if len(got) != 0 {
		t.Errorf("tasks ran before head settled: %v", got)
	}
	mu.Unlock()

	close(release)
	select {
	case <-last:
	case <-time.After(time.Second):
		t.Fatal("queue stalled")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Errorf("execution order = %v, want [0 1 2]", got)
	}
}

func TestQueueIndependentPaths(t *testing.T) {
	q := newWriteQueue()

	release := make(chan struct{})
	q.enqueue("a", func() { <-release })

	other := q.enqueue("b", func() {})
	select {
	case <-other:
	case <-time.After(time.Second):
		t.Fatal("write to an independent path was blocked")
	}
	close(release)
}
