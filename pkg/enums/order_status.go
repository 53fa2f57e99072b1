package enums

// OrderStatus tracks an order through the delivery pipeline.
type OrderStatus string

const (
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusInTransit  OrderStatus = "in_transit"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Label returns the display text the client renders for the status.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusConfirmed:
		return "Confirmed"
	case OrderStatusProcessing:
		return "Being prepared"
	case OrderStatusInTransit:
		return "On the way"
	case OrderStatusDelivered:
		return "Delivered"
	case OrderStatusCancelled:
		return "Cancelled"
	}
	return string(s)
}
