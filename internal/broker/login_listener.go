package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type loginHandler interface {
	OnLoginEvent(ctx context.Context, ev domain.LoginEvent) error
}

// LoginListener передает события входа от сервиса аутентификации в антифрод.
type LoginListener struct {
	handler loginHandler
	logger  logger.Logger
}

func NewLoginListener(handler loginHandler, logger logger.Logger) *LoginListener {
	return &LoginListener{handler: handler, logger: logger}
}

func (l *LoginListener) Start(ctx context.Context, deliveries <-chan amqp.Delivery) {
	l.logger.Info("login listener started")

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("login listener stopped")
			return
		case d, ok := <-deliveries:
			if !ok {
				l.logger.Warn("login deliveries channel closed")
				return
			}
			l.handle(ctx, d)
		}
	}
}

func (l *LoginListener) handle(ctx context.Context, d amqp.Delivery) {
	ev, err := decodeLoginEvent(d)
	if err != nil {
		l.logger.Error("dropping malformed login event",
			logger.String("routing_key", d.RoutingKey),
			logger.String("error", err.Error()),
		)
		_ = d.Nack(false, false)
		return
	}

	if err = l.handler.OnLoginEvent(ctx, ev); err != nil {
		// Невалидное событие повторять бессмысленно
		requeue := !errors.Is(err, domain.ErrValidation)
		l.logger.Error("failed to handle login event",
			logger.String("user_id", ev.UserID),
			logger.String("error", err.Error()),
		)
		_ = d.Nack(false, requeue)
		return
	}

	_ = d.Ack(false)
}

func decodeLoginEvent(d amqp.Delivery) (domain.LoginEvent, error) {
	var env Envelope
	if err := json.Unmarshal(d.Body, &env); err != nil {
		return domain.LoginEvent{}, fmt.Errorf("decode envelope: %w", err)
	}

	var ev domain.LoginEvent
	if err := json.Unmarshal(env.Data, &ev); err != nil {
		return domain.LoginEvent{}, fmt.Errorf("decode login event: %w", err)
	}

	event := env.Event
	if event == "" {
		event = d.RoutingKey
	}

	switch event {
	case domain.EventLoginFailed:
		ev.Succeeded = false
	case domain.EventLoginSucceeded:
		ev.Succeeded = true
	default:
		return domain.LoginEvent{}, fmt.Errorf("unexpected event %q", event)
	}

	return ev, nil
}
