package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stpnv0/EscrowPay/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeCooldown struct {
	remaining time.Duration
	err       error
}

func (f fakeCooldown) CooldownRemaining(context.Context, string) (time.Duration, error) {
	return f.remaining, f.err
}

type checkoutDeps struct {
	cart    *mocks.MockCartRepo
	catalog *mocks.MockCatalog
	orders  *mocks.MockOrderRepo
	booking *mocks.MockBookingChecker
	fraud   *mocks.MockFraudSignals
}

func newCheckoutService(t *testing.T, cooldown cooldownReader) (*CheckoutService, checkoutDeps) {
	t.Helper()
	d := checkoutDeps{
		cart:    mocks.NewMockCartRepo(t),
		catalog: mocks.NewMockCatalog(t),
		orders:  mocks.NewMockOrderRepo(t),
		booking: mocks.NewMockBookingChecker(t),
		fraud:   mocks.NewMockFraudSignals(t),
	}
	svc := NewCheckoutService(
		d.cart, d.catalog, d.orders, d.booking, d.fraud, cooldown,
		[]string{domain.ProviderStripe, domain.ProviderNetsQR},
		[]string{"sgd", "USD"},
		"SGD",
		newTestLogger(t),
	)
	return svc, d
}

func cartLine(serviceID, sellerID, price string, qty int, date *time.Time) *domain.CartItem {
	return &domain.CartItem{
		ID:          "ci-" + serviceID,
		UserID:      "u1",
		ServiceID:   serviceID,
		SellerID:    sellerID,
		Title:       "Service " + serviceID,
		Quantity:    qty,
		UnitPrice:   decimal.RequireFromString(price),
		BookingDate: date,
	}
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	svc, d := newCheckoutService(t, fakeCooldown{remaining: 2 * time.Minute})

	date := day(2026, 11, 3)
	lines := []*domain.CartItem{
		cartLine("svc1", "s1", "100.50", 2, &date),
		cartLine("svc2", "s2", "49", 1, &date),
	}

	d.cart.EXPECT().ListByUser(mock.Anything, "u1").Return(lines, nil)
	d.booking.EXPECT().IsAvailable(mock.Anything, "s1", date).Return(true, nil)
	d.booking.EXPECT().IsAvailable(mock.Anything, "s2", date).Return(true, nil)
	d.booking.EXPECT().HasPaidBooking(mock.Anything, "svc1", date).Return(false, nil)
	d.booking.EXPECT().HasPaidBooking(mock.Anything, "svc2", date).Return(false, nil)

	var created *domain.Order
	var createdPayment *domain.Payment
	d.orders.EXPECT().CreateWithPayment(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, o *domain.Order, p *domain.Payment) {
			created, createdPayment = o, p
		}).
		Return(nil)
	d.fraud.EXPECT().OnOrderCreated(mock.Anything, mock.Anything).Return()

	res, err := svc.Checkout(context.Background(), "u1", domain.ProviderStripe, "usd")

	require.NoError(t, err)
	assert.True(t, res.Total.Equal(decimal.RequireFromString("250")))
	assert.Equal(t, "USD", res.Currency)
	assert.Equal(t, 2*time.Minute, res.CooldownRemaining)

	require.NotNil(t, created)
	assert.Equal(t, domain.OrderStatusPendingPayment, created.Status)
	assert.Len(t, created.Items, 2)
	assert.Equal(t, created.ID, createdPayment.OrderID)
	assert.Equal(t, domain.PaymentStatusPending, createdPayment.Status)
	assert.Equal(t, domain.EscrowNone, createdPayment.EscrowStatus)
	assert.True(t, createdPayment.Amount.Equal(created.Total))
}

func TestCheckoutService_Checkout_DefaultCurrency(t *testing.T) {
	svc, d := newCheckoutService(t, fakeCooldown{})

	date := day(2026, 11, 3)
	d.cart.EXPECT().ListByUser(mock.Anything, "u1").Return([]*domain.CartItem{cartLine("svc1", "s1", "10", 1, &date)}, nil)
	d.booking.EXPECT().IsAvailable(mock.Anything, "s1", date).Return(true, nil)
	d.booking.EXPECT().HasPaidBooking(mock.Anything, "svc1", date).Return(false, nil)
	d.orders.EXPECT().CreateWithPayment(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	d.fraud.EXPECT().OnOrderCreated(mock.Anything, mock.Anything).Return()

	res, err := svc.Checkout(context.Background(), "u1", domain.ProviderNetsQR, "")

	require.NoError(t, err)
	assert.Equal(t, "SGD", res.Currency)
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	svc, d := newCheckoutService(t, fakeCooldown{})

	d.cart.EXPECT().ListByUser(mock.Anything, "u1").Return(nil, nil)

	_, err := svc.Checkout(context.Background(), "u1", domain.ProviderStripe, "")

	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCheckoutService_Checkout_UnsupportedCurrency(t *testing.T) {
	svc, d := newCheckoutService(t, fakeCooldown{})

	date := day(2026, 11, 3)
	d.cart.EXPECT().ListByUser(mock.Anything, "u1").Return([]*domain.CartItem{cartLine("svc1", "s1", "10", 1, &date)}, nil)

	_, err := svc.Checkout(context.Background(), "u1", domain.ProviderStripe, "EUR")

	assert.ErrorIs(t, err, domain.ErrUnsupportedCurrency)
}

func TestCheckoutService_Checkout_UnknownProvider(t *testing.T) {
	svc, d := newCheckoutService(t, fakeCooldown{})

	date := day(2026, 11, 3)
	d.cart.EXPECT().ListByUser(mock.Anything, "u1").Return([]*domain.CartItem{cartLine("svc1", "s1", "10", 1, &date)}, nil)

	_, err := svc.Checkout(context.Background(), "u1", domain.ProviderPayPal, "")

	assert.ErrorIs(t, err, domain.ErrUnknownProvider)
}

func TestCheckoutService_Checkout_MissingDateRejectsWholeCart(t *testing.T) {
	svc, d := newCheckoutService(t, fakeCooldown{})

	date := day(2026, 11, 3)
	d.cart.EXPECT().ListByUser(mock.Anything, "u1").Return([]*domain.CartItem{
		cartLine("svc1", "s1", "10", 1, &date),
		cartLine("svc2", "s2", "10", 1, nil),
	}, nil)

	_, err := svc.Checkout(context.Background(), "u1", domain.ProviderStripe, "")

	assert.ErrorIs(t, err, domain.ErrMissingBookingDate)
}

func TestCheckoutService_Checkout_SellerUnavailable(t *testing.T) {
	svc, d := newCheckoutService(t, fakeCooldown{})

	date := day(2026, 11, 3)
	d.cart.EXPECT().ListByUser(mock.Anything, "u1").Return([]*domain.CartItem{cartLine("svc1", "s1", "10", 1, &date)}, nil)
	d.booking.EXPECT().IsAvailable(mock.Anything, "s1", date).Return(false, nil)

	_, err := svc.Checkout(context.Background(), "u1", domain.ProviderStripe, "")

	assert.ErrorIs(t, err, domain.ErrBookingUnavailable)
}

func TestCheckoutService_Checkout_SlotAlreadyPaid(t *testing.T) {
	svc, d := newCheckoutService(t, fakeCooldown{})

	date := day(2026, 11, 3)
	d.cart.EXPECT().ListByUser(mock.Anything, "u1").Return([]*domain.CartItem{cartLine("svc1", "s1", "10", 1, &date)}, nil)
	d.booking.EXPECT().IsAvailable(mock.Anything, "s1", date).Return(true, nil)
	d.booking.EXPECT().HasPaidBooking(mock.Anything, "svc1", date).Return(true, nil)

	_, err := svc.Checkout(context.Background(), "u1", domain.ProviderStripe, "")

	assert.ErrorIs(t, err, domain.ErrBookingTaken)
}

func TestCheckoutService_Checkout_CooldownErrorIgnored(t *testing.T) {
	svc, d := newCheckoutService(t, fakeCooldown{err: errors.New("db error")})

	date := day(2026, 11, 3)
	d.cart.EXPECT().ListByUser(mock.Anything, "u1").Return([]*domain.CartItem{cartLine("svc1", "s1", "10", 1, &date)}, nil)
	d.booking.EXPECT().IsAvailable(mock.Anything, "s1", date).Return(true, nil)
	d.booking.EXPECT().HasPaidBooking(mock.Anything, "svc1", date).Return(false, nil)
	d.orders.EXPECT().CreateWithPayment(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	d.fraud.EXPECT().OnOrderCreated(mock.Anything, mock.Anything).Return()

	res, err := svc.Checkout(context.Background(), "u1", domain.ProviderStripe, "")

	require.NoError(t, err)
	assert.Zero(t, res.CooldownRemaining)
}

func TestCheckoutService_AddToCart_SnapshotsCatalog(t *testing.T) {
	svc, d := newCheckoutService(t, fakeCooldown{})

	d.catalog.EXPECT().GetService(mock.Anything, "svc1").Return(&domain.ServiceInfo{
		ID:       "svc1",
		SellerID: "s1",
		Title:    "Wedding photo",
		Price:    decimal.RequireFromString("300"),
	}, nil)
	d.cart.EXPECT().Add(mock.Anything, mock.Anything).Return(nil)

	item, err := svc.AddToCart(context.Background(), "u1", domain.AddCartItemInput{ServiceID: "svc1"})

	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, "s1", item.SellerID)
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("300")))
}

func TestCheckoutService_AddToCart_ServiceNotFound(t *testing.T) {
	svc, d := newCheckoutService(t, fakeCooldown{})

	d.catalog.EXPECT().GetService(mock.Anything, "missing").Return(nil, domain.ErrServiceNotFound)

	_, err := svc.AddToCart(context.Background(), "u1", domain.AddCartItemInput{ServiceID: "missing"})

	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
}
