package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (s *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		s.sent = append(s.sent, msg)
	}
	return tgbotapi.Message{}, s.err
}

func testAlert() *domain.FraudAlert {
	return &domain.FraudAlert{
		ID:          "f1",
		UserID:      "user_42",
		Type:        domain.AlertHighValue,
		Description: "Order o1 total 2500.00 exceeds 2000",
		Status:      domain.AlertStatusPending,
		CreatedAt:   time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC),
	}
}

func TestTelegramNotifier_NotifyFraudAlert(t *testing.T) {
	bot := &fakeSender{}
	n := &TelegramNotifier{bot: bot, chatID: 777, logger: newTestLogger(t)}

	n.NotifyFraudAlert(context.Background(), testAlert())

	require.Len(t, bot.sent, 1)
	msg := bot.sent[0]
	assert.Equal(t, int64(777), msg.ChatID)
	assert.Equal(t, tgbotapi.ModeMarkdown, msg.ParseMode)
	assert.Contains(t, msg.Text, string(domain.AlertHighValue))
	assert.Contains(t, msg.Text, `user\_42`)
	assert.Contains(t, msg.Text, "16.10.2026 09:30")
}

func TestTelegramNotifier_SkipsCancelledContext(t *testing.T) {
	bot := &fakeSender{}
	n := &TelegramNotifier{bot: bot, chatID: 777, logger: newTestLogger(t)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.NotifyFraudAlert(ctx, testAlert())

	assert.Empty(t, bot.sent)
}

func TestTelegramNotifier_SendErrorSwallowed(t *testing.T) {
	bot := &fakeSender{err: errors.New("bad gateway")}
	n := &TelegramNotifier{bot: bot, chatID: 777, logger: newTestLogger(t)}

	assert.NotPanics(t, func() { n.NotifyFraudAlert(context.Background(), testAlert()) })
	assert.Len(t, bot.sent, 1)
}

func TestNewTelegramNotifier_DisabledWithoutChat(t *testing.T) {
	n, err := NewTelegramNotifier("123:abc", 0, newTestLogger(t))

	require.NoError(t, err)
	assert.Nil(t, n.bot)
	assert.NotPanics(t, func() { n.NotifyFraudAlert(context.Background(), testAlert()) })
}
