package orderControllers

import (
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	cartControllers "github.com/Ixollozi/clothing-shop/controllers/cart"
	"github.com/Ixollozi/clothing-shop/models"
	"github.com/Ixollozi/clothing-shop/notifier"
)

type CreateOrderRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	Notes         string `json:"notes"`
}

// CreateOrder turns the session's cart into an immutable order. Prices
// are re-read from the catalog inside the transaction and copied onto
// the order items; the total is the sum of those snapshots, so it stays
// fixed no matter how the catalog moves afterwards. Any inactive or
// missing product aborts the whole order.
//
// Clearing the cart and notifying Telegram happen after the commit and
// are best-effort: their failure never undoes the order.
func CreateOrder(db *gorm.DB, n notifier.Notifier, sessionKey string, req CreateOrderRequest) (*models.Order, error) {
	paymentMethod, err := models.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := db.Preload("Items").Where("session_key = ?", sessionKey).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, models.ErrEmptyCart
	}

	city := req.City
	if city == "" {
		city = "Tashkent"
	}

	order := models.Order{
		SessionKey:    sessionKey,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          city,
		PostalCode:    req.PostalCode,
		Notes:         req.Notes,
		Status:        models.OrderStatusPending,
		PaymentMethod: paymentMethod,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(cart.Items))

		for _, line := range cart.Items {
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: product %d", models.ErrProductNotFound, line.ProductID)
				}
				return err
			}
			if !product.IsActive {
				return fmt.Errorf("%w: %s", models.ErrProductNotFound, product.Name)
			}

			// Snapshot: the product price at this instant, frozen into
			// the order item.
			items = append(items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				ProductSlug: product.Slug,
				Quantity:    line.Quantity,
				Price:       product.Price,
				Size:        line.Size,
				Color:       line.Color,
			})
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		order.Items = items
		order.Total = total
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	// Best-effort cleanup: the order stands even if this fails.
	if err := cartControllers.ClearCart(db, cart.ID); err != nil {
		log.Printf("order #%d: failed to clear cart %d: %v", order.ID, cart.ID, err)
	}

	n.NotifyNewOrder(&order)
	broadcastOrderEvent("order.created", &order)

	return &order, nil
}

// UpdateOrderStatus moves an order through the lifecycle and notifies
// the side channels with the old and new status. Invalid transitions,
// including any move out of delivered or cancelled, are rejected.
func UpdateOrderStatus(db *gorm.DB, n notifier.Notifier, orderID uint, next models.OrderStatus) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrOrderNotFound
		}
		return nil, err
	}

	oldStatus := order.Status
	if !models.CanTransition(oldStatus, next) {
		return nil, fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, oldStatus, next)
	}

	order.Status = next
	if err := db.Save(&order).Error; err != nil {
		return nil, err
	}

	n.NotifyStatusChange(&order, oldStatus)
	broadcastOrderEvent("order.status_changed", &order)

	return &order, nil
}
