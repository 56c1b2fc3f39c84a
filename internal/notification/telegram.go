package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wanderlk/tripdesk/internal/domain"
	"github.com/wanderlk/tripdesk/internal/validate"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pings the staff chat when a new request lands. With no
// token or chat id configured it degrades to debug logging, so local setups
// run without a bot.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	staffChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(token string, staffChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, staff notifications disabled")
		return &TelegramNotifier{bot: nil, staffChatID: staffChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, staffChatID: staffChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyInquiryCreated(ctx context.Context, inq *domain.CustomInquiry) {
	text := fmt.Sprintf(
		"*New custom trip inquiry*\n\n"+
			"From: %s (%s)\n"+
			"Destinations: %s\n"+
			"Dates: %s to %s\n"+
			"Budget: %s",
		inq.CustomerName, inq.CustomerEmail,
		strings.Join(inq.Destinations, ", "),
		inq.ArrivalDate.Format(validate.DateLayout),
		inq.DepartureDate.Format(validate.DateLayout),
		inq.BudgetRange,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.PackageBooking, pkg *domain.TravelPackage) {
	text := fmt.Sprintf(
		"*New package booking*\n\n"+
			"From: %s (%s)\n"+
			"Package: %s\n"+
			"Travel date: %s\n"+
			"Travelers: %d",
		b.CustomerName, b.CustomerEmail,
		pkg.Title,
		b.TravelDate.Format(validate.DateLayout),
		b.NumberOfPeople,
	)
	if b.TotalAmount != nil {
		text += fmt.Sprintf("\nTotal: %d USD", *b.TotalAmount)
	}
	n.send(ctx, text)
}

// NotifyPendingRequests is the reminder nudge for requests sitting in
// pending.
func (n *TelegramNotifier) NotifyPendingRequests(ctx context.Context, counts *domain.PendingCounts) {
	text := fmt.Sprintf(
		"*Pending requests awaiting review*\n\n"+
			"Custom inquiries: %d\n"+
			"Package bookings: %d",
		counts.Inquiries, counts.Bookings,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil || n.staffChatID == 0 {
		n.logger.Debug("staff notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("staff notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.staffChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send staff notification",
			logger.Int64("chat_id", n.staffChatID),
			logger.String("error", err.Error()),
		)
	}
}
