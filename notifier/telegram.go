package notifier

import (
	"fmt"
	"html"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"

	"github.com/Ixollozi/clothing-shop/models"
)

// Telegram posts formatted messages to the group configured in the
// telegram_configs table. The active row is read on every send, so staff
// can rotate the token or flip toggles without a restart.
type Telegram struct {
	db   *gorm.DB
	send func(token string, chatID int64, text string) error
}

func NewTelegram(db *gorm.DB) *Telegram {
	return &Telegram{db: db, send: sendMessage}
}

func sendMessage(token string, chatID int64, text string) error {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("init bot: %w", err)
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := bot.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// config returns the active configuration or nil when notifications for
// the given event are off. Never errors out to the caller.
func (t *Telegram) config(event string) *models.TelegramConfig {
	cfg, err := models.ActiveTelegramConfig(t.db)
	if err != nil {
		log.Printf("telegram: failed to load config: %v", err)
		return nil
	}
	if cfg == nil || cfg.BotToken == "" || cfg.GroupChatID == 0 {
		return nil
	}
	switch event {
	case "order":
		if !cfg.NotifyNewOrders {
			return nil
		}
	case "status":
		if !cfg.NotifyStatusChanges {
			return nil
		}
	case "contact":
		if !cfg.NotifyContactMessages {
			return nil
		}
	}
	return cfg
}

func (t *Telegram) deliver(cfg *models.TelegramConfig, what, text string) {
	if err := t.send(cfg.BotToken, cfg.GroupChatID, text); err != nil {
		log.Printf("telegram: failed to send %s notification: %v", what, err)
		return
	}
	log.Printf("telegram: %s notification sent", what)
}

func (t *Telegram) NotifyNewOrder(order *models.Order) {
	cfg := t.config("order")
	if cfg == nil {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🛒 <b>NEW ORDER #%d</b>\n\n", order.ID)
	fmt.Fprintf(&b, "👤 <b>Customer:</b> %s %s\n", html.EscapeString(order.FirstName), html.EscapeString(order.LastName))
	fmt.Fprintf(&b, "📞 <b>Phone:</b> %s\n", html.EscapeString(order.Phone))
	fmt.Fprintf(&b, "📍 <b>Address:</b> %s, %s", html.EscapeString(order.City), html.EscapeString(order.Address))
	if order.PostalCode != "" {
		fmt.Fprintf(&b, " (%s)", html.EscapeString(order.PostalCode))
	}
	b.WriteString("\n\n📦 <b>Items:</b>\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %s x%d", html.EscapeString(item.ProductName), item.Quantity)
		if item.Size != "" {
			fmt.Fprintf(&b, ", size %s", html.EscapeString(item.Size))
		}
		if item.Color != "" {
			fmt.Fprintf(&b, ", %s", html.EscapeString(item.Color))
		}
		fmt.Fprintf(&b, " - %s\n", item.Price.StringFixed(2))
	}
	fmt.Fprintf(&b, "\n💰 <b>Total: %s</b>\n", order.Total.StringFixed(2))
	if order.Notes != "" {
		fmt.Fprintf(&b, "\n📝 <b>Notes:</b> %s\n", html.EscapeString(order.Notes))
	}
	fmt.Fprintf(&b, "\n⏰ %s", order.CreatedAt.Format("02.01.2006 15:04"))

	t.deliver(cfg, "new-order", b.String())
}

var statusEmoji = map[models.OrderStatus]string{
	models.OrderStatusPending:    "⏳",
	models.OrderStatusProcessing: "🔄",
	models.OrderStatusShipped:    "📦",
	models.OrderStatusDelivered:  "✅",
	models.OrderStatusCancelled:  "❌",
}

func (t *Telegram) NotifyStatusChange(order *models.Order, oldStatus models.OrderStatus) {
	cfg := t.config("status")
	if cfg == nil {
		return
	}

	emoji := statusEmoji[order.Status]
	if emoji == "" {
		emoji = "📋"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s <b>ORDER #%d STATUS CHANGED</b>\n\n", emoji, order.ID)
	fmt.Fprintf(&b, "👤 <b>Customer:</b> %s %s\n", html.EscapeString(order.FirstName), html.EscapeString(order.LastName))
	fmt.Fprintf(&b, "📞 <b>Phone:</b> %s\n\n", html.EscapeString(order.Phone))
	fmt.Fprintf(&b, "<b>Status:</b> %s → %s\n", oldStatus, order.Status)
	fmt.Fprintf(&b, "💰 <b>Total:</b> %s\n", order.Total.StringFixed(2))
	fmt.Fprintf(&b, "⏰ %s", order.UpdatedAt.Format("02.01.2006 15:04"))

	t.deliver(cfg, "status-change", b.String())
}

func (t *Telegram) NotifyContactMessage(msg *models.ContactMessage) {
	cfg := t.config("contact")
	if cfg == nil {
		return
	}

	phone := msg.Phone
	if phone == "" {
		phone = "not provided"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📧 <b>NEW CONTACT MESSAGE</b>\n\n")
	fmt.Fprintf(&b, "👤 <b>From:</b> %s\n", html.EscapeString(msg.Name))
	fmt.Fprintf(&b, "📧 <b>Email:</b> %s\n", html.EscapeString(msg.Email))
	fmt.Fprintf(&b, "📞 <b>Phone:</b> %s\n\n", html.EscapeString(phone))
	if msg.Subject != "" {
		fmt.Fprintf(&b, "📋 <b>Subject:</b> %s\n\n", html.EscapeString(msg.Subject))
	}
	fmt.Fprintf(&b, "💬 %s\n\n", html.EscapeString(msg.Message))
	fmt.Fprintf(&b, "⏰ %s", msg.CreatedAt.Format("02.01.2006 15:04"))

	t.deliver(cfg, "contact-message", b.String())
}
