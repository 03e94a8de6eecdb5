// Package notifier delivers order and contact-form notifications to a
// Telegram group. Delivery is fire-and-forget: every failure is logged
// and swallowed, nothing propagates to the operation that triggered it.
package notifier

import (
	"github.com/Ixollozi/clothing-shop/models"
)

type Notifier interface {
	NotifyNewOrder(order *models.Order)
	NotifyStatusChange(order *models.Order, oldStatus models.OrderStatus)
	NotifyContactMessage(msg *models.ContactMessage)
}

// Noop is used when notifications are not configured, and in tests.
type Noop struct{}

func (Noop) NotifyNewOrder(*models.Order)                         {}
func (Noop) NotifyStatusChange(*models.Order, models.OrderStatus) {}
func (Noop) NotifyContactMessage(*models.ContactMessage)          {}
