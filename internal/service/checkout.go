package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stpnv0/EscrowPay/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type cooldownReader interface {
	CooldownRemaining(ctx context.Context, userID string) (time.Duration, error)
}

// CheckoutService собирает заказ из корзины.
type CheckoutService struct {
	cartRepo        ports.CartRepo
	catalog         ports.Catalog
	orderRepo       ports.OrderRepo
	booking         ports.BookingChecker
	fraud           ports.FraudSignals
	cooldown        cooldownReader
	providers       map[string]struct{}
	currencies      map[string]struct{}
	defaultCurrency string
	logger          logger.Logger
}

func NewCheckoutService(
	cartRepo ports.CartRepo,
	catalog ports.Catalog,
	orderRepo ports.OrderRepo,
	booking ports.BookingChecker,
	fraud ports.FraudSignals,
	cooldown cooldownReader,
	providers []string,
	currencies []string,
	defaultCurrency string,
	logger logger.Logger,
) *CheckoutService {
	s := &CheckoutService{
		cartRepo:        cartRepo,
		catalog:         catalog,
		orderRepo:       orderRepo,
		booking:         booking,
		fraud:           fraud,
		cooldown:        cooldown,
		providers:       make(map[string]struct{}, len(providers)),
		currencies:      make(map[string]struct{}, len(currencies)),
		defaultCurrency: strings.ToUpper(defaultCurrency),
		logger:          logger,
	}
	for _, p := range providers {
		s.providers[p] = struct{}{}
	}
	for _, c := range currencies {
		s.currencies[strings.ToUpper(c)] = struct{}{}
	}
	return s
}

// ResolveCurrency нормализует подсказку валюты; пустая подсказка дает валюту по умолчанию.
func (s *CheckoutService) ResolveCurrency(hint string) (string, error) {
	currency := strings.ToUpper(strings.TrimSpace(hint))
	if currency == "" {
		currency = s.defaultCurrency
	}
	if _, ok := s.currencies[currency]; !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedCurrency, currency)
	}
	return currency, nil
}

func (s *CheckoutService) Checkout(ctx context.Context, userID, providerHint, currencyHint string) (*domain.CheckoutResult, error) {
	lines, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	currency, err := s.ResolveCurrency(currencyHint)
	if err != nil {
		return nil, err
	}

	if _, ok := s.providers[providerHint]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, providerHint)
	}

	// Сначала валидируем все строки, никаких записей до этого момента
	if err = s.validateLines(ctx, lines); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		Status:    domain.OrderStatusPendingPayment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal())
		order.Items = append(order.Items, domain.OrderItem{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			ServiceID:   l.ServiceID,
			SellerID:    l.SellerID,
			Title:       l.Title,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			BookingDate: *l.BookingDate,
		})
	}
	order.Total = total

	payment := &domain.Payment{
		ID:           uuid.New().String(),
		OrderID:      order.ID,
		Provider:     providerHint,
		Amount:       total,
		Currency:     currency,
		Status:       domain.PaymentStatusPending,
		EscrowStatus: domain.EscrowNone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = s.orderRepo.CreateWithPayment(ctx, order, payment); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("order created",
		logger.String("order_id", order.ID),
		logger.String("payment_id", payment.ID),
		logger.String("user_id", userID),
		logger.String("provider", providerHint),
		logger.String("total", total.StringFixed(2)),
	)

	s.fraud.OnOrderCreated(ctx, order)

	result := &domain.CheckoutResult{
		OrderID:   order.ID,
		PaymentID: payment.ID,
		Total:     total,
		Currency:  currency,
	}

	if remaining, err := s.cooldown.CooldownRemaining(ctx, userID); err != nil {
		s.logger.Error("failed to read cooldown",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
	} else {
		result.CooldownRemaining = remaining
	}

	return result, nil
}

func (s *CheckoutService) validateLines(ctx context.Context, lines []*domain.CartItem) error {
	for _, l := range lines {
		if l.BookingDate == nil {
			return fmt.Errorf("%w: service %s", domain.ErrMissingBookingDate, l.ServiceID)
		}
	}

	for _, l := range lines {
		ok, err := s.booking.IsAvailable(ctx, l.SellerID, *l.BookingDate)
		if err != nil {
			return fmt.Errorf("check availability: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: service %s on %s",
				domain.ErrBookingUnavailable, l.ServiceID, l.BookingDate.Format(domain.DateLayout))
		}
	}

	for _, l := range lines {
		taken, err := s.booking.HasPaidBooking(ctx, l.ServiceID, *l.BookingDate)
		if err != nil {
			return fmt.Errorf("check double booking: %w", err)
		}
		if taken {
			return fmt.Errorf("%w: service %s on %s",
				domain.ErrBookingTaken, l.ServiceID, l.BookingDate.Format(domain.DateLayout))
		}
	}

	return nil
}

func (s *CheckoutService) AddToCart(ctx context.Context, userID string, input domain.AddCartItemInput) (*domain.CartItem, error) {
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	svc, err := s.catalog.GetService(ctx, input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}

	item := &domain.CartItem{
		ID:          uuid.New().String(),
		UserID:      userID,
		ServiceID:   svc.ID,
		SellerID:    svc.SellerID,
		Title:       svc.Title,
		Quantity:    input.Quantity,
		UnitPrice:   svc.Price,
		BookingDate: input.BookingDate,
		CreatedAt:   time.Now().UTC(),
	}

	if err = s.cartRepo.Add(ctx, item); err != nil {
		return nil, fmt.Errorf("add cart item: %w", err)
	}

	return item, nil
}

func (s *CheckoutService) ListCart(ctx context.Context, userID string) ([]*domain.CartItem, error) {
	return s.cartRepo.ListByUser(ctx, userID)
}

func (s *CheckoutService) RemoveFromCart(ctx context.Context, userID, itemID string) error {
	return s.cartRepo.Remove(ctx, userID, itemID)
}
