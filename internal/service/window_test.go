package service

import (
	"context"
	"testing"
	"time"

	"github.com/munchbox/munchbox/internal/models"
)

// Wednesday 2026-01-14, mid-afternoon UTC.
var wednesday = time.Date(2026, time.January, 14, 15, 30, 0, 0, time.UTC)

func TestTimeWindowContains(t *testing.T) {
	day := func(d int, hour int) string {
		return time.Date(2026, time.January, d, hour, 0, 0, 0, time.UTC).Format(time.RFC3339)
	}

	tests := []struct {
		name   string
		window TimeWindow
		date   string
		want   bool
	}{
		{"all matches everything", TimeWindow{Kind: WindowAll}, day(1, 0), true},
		{"zero kind matches everything", TimeWindow{}, day(1, 0), true},

		{"today matches same calendar date", TimeWindow{Kind: WindowToday}, day(14, 2), true},
		{"today rejects yesterday", TimeWindow{Kind: WindowToday}, day(13, 23), false},
		{"today rejects later same week", TimeWindow{Kind: WindowToday}, day(15, 2), false},

		{"week starts Monday", TimeWindow{Kind: WindowWeek}, day(12, 0), true},
		{"week rejects previous Sunday", TimeWindow{Kind: WindowWeek}, day(11, 23), false},
		{"week includes rest of today", TimeWindow{Kind: WindowWeek}, day(14, 23), true},
		{"week rejects tomorrow", TimeWindow{Kind: WindowWeek}, day(15, 1), false},

		{"month from the 1st", TimeWindow{Kind: WindowMonth}, day(1, 0), true},
		{"month rejects December", TimeWindow{Kind: WindowMonth}, "2025-12-31T23:59:59Z", false},
		{"month rejects future days", TimeWindow{Kind: WindowMonth}, day(20, 12), false},

		{"explicit date matches", TimeWindow{Kind: WindowDate, Date: time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)}, day(10, 18), true},
		{"explicit date rejects neighbours", TimeWindow{Kind: WindowDate, Date: time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)}, day(11, 0), false},

		{"unparsable date never matches bounded windows", TimeWindow{Kind: WindowWeek}, "yesterday", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.Contains(tt.date, wednesday); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestTimeWindowSundayClosesWeek(t *testing.T) {
	// Sunday 2026-01-18: the week still starts on Monday the 12th.
	sunday := time.Date(2026, time.January, 18, 12, 0, 0, 0, time.UTC)
	w := TimeWindow{Kind: WindowWeek}

	monday := time.Date(2026, time.January, 12, 8, 0, 0, 0, time.UTC).Format(time.RFC3339)
	if !w.Contains(monday, sunday) {
		t.Error("Monday of the running week rejected on Sunday")
	}
	nextMonday := time.Date(2026, time.January, 19, 8, 0, 0, 0, time.UTC).Format(time.RFC3339)
	if w.Contains(nextMonday, sunday) {
		t.Error("next Monday accepted on Sunday")
	}
}

func TestOrdersWithinAndSales(t *testing.T) {
	svc := NewOrderService(newTestStore(t), false)
	svc.now = func() time.Time { return wednesday }
	ctx := context.Background()

	seed := []struct {
		id     string
		date   time.Time
		total  int
		status models.OrderStatus
	}{
		{"ORD-today", wednesday.Add(-2 * time.Hour), 1500, models.StatusPending},
		{"ORD-monday", time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC), 2000, models.StatusDelivered},
		{"ORD-last-week", time.Date(2026, time.January, 9, 9, 0, 0, 0, time.UTC), 3000, models.StatusDelivered},
		{"ORD-cancelled", wednesday.Add(-1 * time.Hour), 800, models.StatusCancelled},
	}
	for _, s := range seed {
		order := testOrder(s.id)
		order.Date = s.date.Format(time.RFC3339)
		order.Total = s.total
		order.Status = s.status
		if _, err := svc.CreateOrder(ctx, order); err != nil {
			t.Fatalf("CreateOrder(%s) failed: %v", s.id, err)
		}
	}

	today, err := svc.OrdersWithin(ctx, TimeWindow{Kind: WindowToday})
	if err != nil {
		t.Fatalf("OrdersWithin failed: %v", err)
	}
	if len(today) != 2 {
		t.Errorf("today window returned %d orders, want 2", len(today))
	}

	week, err := svc.OrdersWithin(ctx, TimeWindow{Kind: WindowWeek})
	if err != nil {
		t.Fatalf("OrdersWithin failed: %v", err)
	}
	if len(week) != 3 {
		t.Errorf("week window returned %d orders, want 3", len(week))
	}

	sales, err := svc.Sales(ctx, TimeWindow{Kind: WindowWeek})
	if err != nil {
		t.Fatalf("Sales failed: %v", err)
	}
	want := SalesSummary{Orders: 3, Gross: 4300, Cancelled: 800, Net: 3500}
	if sales != want {
		t.Errorf("Sales = %+v, want %+v", sales, want)
	}
}

func TestTopItems(t *testing.T) {
	svc := NewOrderService(newTestStore(t), false)
	svc.now = func() time.Time { return wednesday }
	ctx := context.Background()

	order := testOrder("ORD-1")
	order.Date = wednesday.Format(time.RFC3339)
	order.Items = []models.OrderItem{
		{ID: "mains-1", Name: "Jollof Rice", Price: 400, Quantity: 3},
		{ID: "protein-1", Name: "Grilled Chicken", Price: 3500, Quantity: 1},
	}
	if _, err := svc.CreateOrder(ctx, order); err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	top, err := svc.TopItems(ctx, TimeWindow{Kind: WindowToday}, 1)
	if err != nil {
		t.Fatalf("TopItems failed: %v", err)
	}
	if len(top) != 1 || top[0].Name != "Grilled Chicken" || top[0].Revenue != 3500 {
		t.Errorf("TopItems = %+v, want chicken first by revenue", top)
	}
}
