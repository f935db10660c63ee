package notify

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	orderingdomain "github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
	orderingports "github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"
)

var _ orderingports.OrderSink = (*TelegramSink)(nil)

type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramSink posts an order summary into the operator chat.
type TelegramSink struct {
	bot    telegramSender
	chatID int64
}

// NewTelegramBot authorises the bot token and returns a sink for chatID.
func NewTelegramBot(token string, chatID int64) (*TelegramSink, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return NewTelegramSink(bot, chatID)
}

func NewTelegramSink(bot telegramSender, chatID int64) (*TelegramSink, error) {
	if bot == nil {
		return nil, errors.New("telegram bot is required")
	}
	if chatID == 0 {
		return nil, errors.New("telegram chat id is required")
	}
	return &TelegramSink{bot: bot, chatID: chatID}, nil
}

func (s *TelegramSink) Publish(ctx context.Context, order *orderingdomain.SubmittedOrder) error {
	if order == nil {
		return errors.New("order is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.bot.Send(tgbotapi.NewMessage(s.chatID, summary(order))); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
