package fees

import (
	"testing"

	"github.com/munchbox/munchbox/internal/models"
)

func TestGroupFee(t *testing.T) {
	tests := []struct {
		name  string
		items []models.OrderItem
		want  int
	}{
		{
			name:  "empty group",
			items: nil,
			want:  0,
		},
		{
			name:  "one jollof rice scoop",
			items: []models.OrderItem{{Name: "Jollof Rice", Quantity: 1}},
			want:  200,
		},
		{
			name:  "three fried rice scoops hit the large threshold",
			items: []models.OrderItem{{Name: "Fried Rice", Quantity: 3}},
			want:  300,
		},
		{
			name: "rice scoops accumulate across lines",
			items: []models.OrderItem{
				{Name: "Jollof Rice", Quantity: 2},
				{Name: "Steamed Rice", Quantity: 1},
			},
			want: 300,
		},
		{
			name:  "two french fries portions",
			items: []models.OrderItem{{Name: "French Fries", Quantity: 2}},
			want:  300,
		},
		{
			name:  "single noodles portion",
			items: []models.OrderItem{{Name: "Noodles", Quantity: 1}},
			want:  200,
		},
		{
			name:  "basmati mini is not counted as a rice scoop",
			items: []models.OrderItem{{Name: "Basmati Rice (Mini)", Quantity: 1}},
			want:  200,
		},
		{
			name:  "basmati maxi",
			items: []models.OrderItem{{Name: "Basmati Rice (Maxi)", Quantity: 1}},
			want:  300,
		},
		{
			name: "basmati keeps the maximum proposed value",
			items: []models.OrderItem{
				{Name: "Basmati Rice (Maxi)", Quantity: 1},
				{Name: "Basmati Rice (Mini)", Quantity: 1},
			},
			want: 300,
		},
		{
			name: "buckets do not add, the max wins",
			items: []models.OrderItem{
				{Name: "Jollof Rice", Quantity: 1},
				{Name: "Noodles", Quantity: 1},
			},
			want: 200,
		},
		{
			name: "large bucket dominates",
			items: []models.OrderItem{
				{Name: "Jollof Rice", Quantity: 1},
				{Name: "Plantain", Quantity: 2},
			},
			want: 300,
		},
		{
			name:  "matching is case-insensitive",
			items: []models.OrderItem{{Name: "JOLLOF RICE", Quantity: 1}},
			want:  200,
		},
		{
			name:  "unmatched item carries no fee",
			items: []models.OrderItem{{Name: "Grilled Chicken", Quantity: 4}},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GroupFee(tt.items); got != tt.want {
				t.Errorf("GroupFee() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTakeawayFee(t *testing.T) {
	tests := []struct {
		name  string
		items []models.OrderItem
		want  int
	}{
		{
			name:  "empty cart",
			items: nil,
			want:  0,
		},
		{
			name: "two meal groups sum their fees",
			items: []models.OrderItem{
				{Name: "Jollof Rice", Quantity: 1, MealGroup: "Meal 1"},
				{Name: "Fried Rice", Quantity: 1, MealGroup: "Meal 2"},
			},
			want: 400,
		},
		{
			name: "unlabelled lines share the default group",
			items: []models.OrderItem{
				{Name: "Jollof Rice", Quantity: 1},
				{Name: "Fried Rice", Quantity: 1, MealGroup: "Order 1"},
			},
			want: 200,
		},
		{
			name: "group fee reflects each partition separately",
			items: []models.OrderItem{
				{Name: "Jollof Rice", Quantity: 3, MealGroup: "Meal 1"},
				{Name: "Noodles", Quantity: 1, MealGroup: "Meal 2"},
			},
			want: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TakeawayFee(tt.items); got != tt.want {
				t.Errorf("TakeawayFee() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDeliveryFee(t *testing.T) {
	if got := DeliveryFee(false, 0); got != 0 {
		t.Errorf("pickup fee = %d, want 0", got)
	}
	if got := DeliveryFee(true, 0); got != 500 {
		t.Errorf("default delivery fee = %d, want 500", got)
	}
	if got := DeliveryFee(true, 750); got != 750 {
		t.Errorf("configured delivery fee = %d, want 750", got)
	}
}
