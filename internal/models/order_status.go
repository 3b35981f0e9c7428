package models

import "strings"

// Order status values. An order always starts as Pending; Cancelled and
// Refunded are terminal.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
	StatusRefunded   = "Refunded"
)

// ValidOrderStatuses lists every recognized order status.
var ValidOrderStatuses = []string{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
	StatusRefunded,
}

// NormalizeOrderStatus matches status case-insensitively and returns the
// canonical spelling. The second return value is false if the status is not
// recognized.
func NormalizeOrderStatus(status string) (string, bool) {
	for _, s := range ValidOrderStatuses {
		if strings.EqualFold(s, status) {
			return s, true
		}
	}
	return "", false
}

// IsValidOrderStatus reports whether status is one of the recognized order
// statuses, ignoring case.
func IsValidOrderStatus(status string) bool {
	_, ok := NormalizeOrderStatus(status)
	return ok
}

// IsValidStatusTransition reports whether an order may move from
// currentStatus to newStatus. Both arguments must be canonical status values.
//
// Pending accepts only the creation self-transition; Cancelled is reachable
// only before shipment, Refunded only after.
func IsValidStatusTransition(currentStatus, newStatus string) bool {
	switch newStatus {
	case StatusPending:
		return currentStatus == StatusPending
	case StatusProcessing:
		return currentStatus == StatusPending
	case StatusShipped:
		return currentStatus == StatusProcessing
	case StatusDelivered:
		return currentStatus == StatusShipped
	case StatusCancelled:
		return currentStatus == StatusPending || currentStatus == StatusProcessing
	case StatusRefunded:
		return currentStatus == StatusDelivered || currentStatus == StatusShipped
	default:
		return false
	}
}
