package ports

import (
	"context"
	"time"

	"github.com/stpnv0/EscrowPay/internal/domain"
)

type BookingRepo interface {
	SellerCalendar(ctx context.Context, sellerID string) ([]domain.SellerAvailability, error)
	SetAvailability(ctx context.Context, a domain.SellerAvailability) error
	HasPaidBooking(ctx context.Context, serviceID string, date time.Time) (bool, error)
}

// BookingChecker - проверки слота перед созданием заказа и перед повторной оплатой.
type BookingChecker interface {
	IsAvailable(ctx context.Context, sellerID string, date time.Time) (bool, error)
	HasPaidBooking(ctx context.Context, serviceID string, date time.Time) (bool, error)
}
