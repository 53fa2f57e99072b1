package enums

// NotificationType buckets feed entries for the client's filter tabs.
type NotificationType string

const (
	NotificationTypeOrder     NotificationType = "order"
	NotificationTypePromotion NotificationType = "promotion"
	NotificationTypeWishlist  NotificationType = "wishlist"
	NotificationTypeSystem    NotificationType = "system"
	NotificationTypeReminder  NotificationType = "reminder"
)

// Valid reports whether the value is a known notification type.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypeOrder, NotificationTypePromotion, NotificationTypeWishlist,
		NotificationTypeSystem, NotificationTypeReminder:
		return true
	}
	return false
}
