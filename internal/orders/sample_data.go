package orders

import (
	"time"

	"github.com/grociko/grociko-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// sampleOrders is the seeded order history shown before any real checkout.
func sampleOrders() []Order {
	return []Order{
		{
			ID:          uuid.MustParse("8f6a2d4e-0a11-4f4e-9c31-0b8f53f1a001"),
			Number:      "ORD-001",
			Status:      enums.OrderStatusDelivered,
			StatusLabel: enums.OrderStatusDelivered.Label(),
			Items: []Item{
				{ProductID: "1", Name: "Fresh Avocados", Quantity: 2, UnitPrice: amount("4.99"), LineTotal: amount("9.98")},
				{ProductID: "4", Name: "Greek Yogurt", Quantity: 2, UnitPrice: amount("3.99"), LineTotal: amount("7.98")},
				{ProductID: "7", Name: "Organic Spinach", Quantity: 1, UnitPrice: amount("2.99"), LineTotal: amount("2.99")},
			},
			TotalItems:      5,
			Subtotal:        amount("24.95"),
			Discount:        amount("0"),
			Total:           amount("24.95"),
			DeliveryAddress: "123 Main Street, Apt 4B, New York, NY 10001",
			PaymentMethod:   "card",
			PlacedAt:        time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:          uuid.MustParse("8f6a2d4e-0a11-4f4e-9c31-0b8f53f1a002"),
			Number:      "ORD-002",
			Status:      enums.OrderStatusInTransit,
			StatusLabel: enums.OrderStatusInTransit.Label(),
			Items: []Item{
				{ProductID: "3", Name: "Fresh Salmon", Quantity: 1, UnitPrice: amount("12.99"), LineTotal: amount("12.99")},
				{ProductID: "5", Name: "Artisan Bread", Quantity: 1, UnitPrice: amount("4.49"), LineTotal: amount("4.49")},
			},
			TotalItems:      2,
			Subtotal:        amount("18.47"),
			Discount:        amount("0"),
			Total:           amount("18.47"),
			DeliveryAddress: "123 Main Street, Apt 4B, New York, NY 10001",
			PaymentMethod:   "card",
			PlacedAt:        time.Date(2024, 3, 14, 16, 45, 0, 0, time.UTC),
		},
		{
			ID:          uuid.MustParse("8f6a2d4e-0a11-4f4e-9c31-0b8f53f1a003"),
			Number:      "ORD-003",
			Status:      enums.OrderStatusProcessing,
			StatusLabel: enums.OrderStatusProcessing.Label(),
			Items: []Item{
				{ProductID: "2", Name: "Organic Bananas", Quantity: 3, UnitPrice: amount("2.49"), LineTotal: amount("7.47")},
				{ProductID: "6", Name: "Cherry Tomatoes", Quantity: 2, UnitPrice: amount("3.49"), LineTotal: amount("6.98")},
				{ProductID: "8", Name: "Almond Milk", Quantity: 2, UnitPrice: amount("3.79"), LineTotal: amount("7.58")},
			},
			TotalItems:      7,
			Subtotal:        amount("31.92"),
			Discount:        amount("0"),
			Total:           amount("31.92"),
			DeliveryAddress: "456 Business Ave, Suite 200, New York, NY 10002",
			PaymentMethod:   "cash",
			PlacedAt:        time.Date(2024, 3, 13, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:          uuid.MustParse("8f6a2d4e-0a11-4f4e-9c31-0b8f53f1a004"),
			Number:      "ORD-004",
			Status:      enums.OrderStatusCancelled,
			StatusLabel: enums.OrderStatusCancelled.Label(),
			Items: []Item{
				{ProductID: "4", Name: "Greek Yogurt", Quantity: 4, UnitPrice: amount("3.99"), LineTotal: amount("15.96")},
			},
			TotalItems:      4,
			Subtotal:        amount("15.97"),
			Discount:        amount("0"),
			Total:           amount("15.97"),
			DeliveryAddress: "123 Main Street, Apt 4B, New York, NY 10001",
			PaymentMethod:   "card",
			PlacedAt:        time.Date(2024, 3, 10, 13, 0, 0, 0, time.UTC),
		},
	}
}
