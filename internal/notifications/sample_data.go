package notifications

import (
	"time"

	"github.com/grociko/grociko-backend/pkg/enums"
)

// sampleNotifications seeds every session's feed.
func sampleNotifications() []Notification {
	base := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	return []Notification{
		{
			ID:        "n-001",
			Type:      enums.NotificationTypeOrder,
			Title:     "Order Delivered!",
			Message:   "Your order #GR12345 has been successfully delivered. Enjoy your fresh groceries!",
			CreatedAt: base,
		},
		{
			ID:        "n-002",
			Type:      enums.NotificationTypePromotion,
			Title:     "Flash Sale! 🔥",
			Message:   "50% off on organic fruits! Limited time offer ending in 4 hours.",
			CreatedAt: base.Add(-2 * time.Hour),
		},
		{
			ID:        "n-003",
			Type:      enums.NotificationTypeOrder,
			Title:     "Order Confirmed",
			Message:   "Your order #GR12344 is being prepared. Estimated delivery: 2-3 hours.",
			CreatedAt: base.Add(-5 * time.Hour),
		},
		{
			ID:        "n-004",
			Type:      enums.NotificationTypeWishlist,
			Title:     "Back in Stock!",
			Message:   "Organic Avocados from your wishlist are now available. Get them before they sell out again!",
			CreatedAt: base.Add(-24 * time.Hour),
		},
		{
			ID:        "n-005",
			Type:      enums.NotificationTypeSystem,
			Title:     "Welcome to Grociko! 🎉",
			Message:   "Thank you for joining us! Get 20% off your first order with code WELCOME20.",
			Read:      true,
			CreatedAt: base.Add(-48 * time.Hour),
		},
		{
			ID:        "n-006",
			Type:      enums.NotificationTypeReminder,
			Title:     "Cart Reminder",
			Message:   "You have 3 items waiting in your cart. Complete your purchase before they run out of stock.",
			CreatedAt: base.Add(-72 * time.Hour),
		},
	}
}
