package notification

import (
	"context"
	"fmt"

	"github.com/adisusilayasa/venue-cms/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes booking events to an operations chat. With an
// empty token it degrades to logging only.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking, venue *domain.Venue) {
	text := fmt.Sprintf(
		"*Booking confirmed*\n\nVenue: %s (%s)\nCustomer: %s\nFrom: %s\nTo: %s\nTotal: $%.2f",
		venue.Name, venue.Location, booking.CustomerName,
		booking.Interval.Start.Format("02.01.2006 15:04"),
		booking.Interval.End.Format("02.01.2006 15:04"),
		booking.TotalPrice,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingDeleted(ctx context.Context, booking *domain.Booking, venue *domain.Venue) {
	text := fmt.Sprintf(
		"*Booking removed*\n\nVenue: %s (%s)\nCustomer: %s\nFrom: %s\nTo: %s",
		venue.Name, venue.Location, booking.CustomerName,
		booking.Interval.Start.Format("02.01.2006 15:04"),
		booking.Interval.End.Format("02.01.2006 15:04"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil || n.chatID == 0 {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.String("error", err.Error()),
		)
	}
}
