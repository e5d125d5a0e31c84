package service

import (
	"context"
	"sort"

	"github.com/munchbox/munchbox/internal/models"
)

// SalesSummary aggregates orders inside a window the way the admin
// sales page does: gross includes every order, cancelled revenue is
// subtracted to give net.
type SalesSummary struct {
	Orders    int `json:"orders"`
	Gross     int `json:"gross"`
	Cancelled int `json:"cancelled"`
	Net       int `json:"net"`
}

// ItemSales is per-dish revenue inside a window.
type ItemSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  int    `json:"revenue"`
}

// Sales computes the summary for a window.
func (s *OrderService) Sales(ctx context.Context, window TimeWindow) (SalesSummary, error) {
	orders, err := s.OrdersWithin(ctx, window)
	if err != nil {
		return SalesSummary{}, err
	}

	summary := SalesSummary{Orders: len(orders)}
	for _, order := range orders {
		summary.Gross += order.Total
		if order.Status == models.StatusCancelled {
			summary.Cancelled += order.Total
		}
	}
	summary.Net = summary.Gross - summary.Cancelled
	return summary, nil
}

// TopItems ranks dishes by revenue inside a window, best first,
// truncated to limit (zero means no truncation).
func (s *OrderService) TopItems(ctx context.Context, window TimeWindow, limit int) ([]ItemSales, error) {
	orders, err := s.OrdersWithin(ctx, window)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*ItemSales)
	for _, order := range orders {
		for _, item := range order.Items {
			entry := byName[item.Name]
			if entry == nil {
				entry = &ItemSales{Name: item.Name}
				byName[item.Name] = entry
			}
			entry.Quantity += item.Quantity
			entry.Revenue += item.Price * item.Quantity
		}
	}

	ranked := make([]ItemSales, 0, len(byName))
	for _, entry := range byName {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		return ranked[i].Name < ranked[j].Name
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
