package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/EscrowPay/internal/domain"
	"github.com/stpnv0/EscrowPay/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// BookingService отвечает на вопрос, можно ли занять слот (услуга, дата).
type BookingService struct {
	bookingRepo ports.BookingRepo
	logger      logger.Logger
}

func NewBookingService(bookingRepo ports.BookingRepo, logger logger.Logger) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// IsAvailable применяет календарь продавца:
//   - нет ни одной записи: продавец доступен всегда;
//   - есть хотя бы одна available: доступны только даты, явно отмеченные available;
//   - только unavailable: доступны все даты, кроме отмеченных unavailable.
func (s *BookingService) IsAvailable(ctx context.Context, sellerID string, date time.Time) (bool, error) {
	calendar, err := s.bookingRepo.SellerCalendar(ctx, sellerID)
	if err != nil {
		return false, fmt.Errorf("get seller calendar: %w", err)
	}

	if len(calendar) == 0 {
		return true, nil
	}

	allowList := false
	var dayStatus domain.AvailabilityStatus
	for _, a := range calendar {
		if a.Status == domain.AvailabilityAvailable {
			allowList = true
		}
		if domain.SameDay(a.Date, date) {
			dayStatus = a.Status
		}
	}

	if allowList {
		return dayStatus == domain.AvailabilityAvailable, nil
	}

	return dayStatus != domain.AvailabilityUnavailable, nil
}

func (s *BookingService) HasPaidBooking(ctx context.Context, serviceID string, date time.Time) (bool, error) {
	taken, err := s.bookingRepo.HasPaidBooking(ctx, serviceID, date)
	if err != nil {
		return false, fmt.Errorf("check paid booking: %w", err)
	}
	return taken, nil
}

func (s *BookingService) Calendar(ctx context.Context, sellerID string) ([]domain.SellerAvailability, error) {
	return s.bookingRepo.SellerCalendar(ctx, sellerID)
}

func (s *BookingService) SetAvailability(ctx context.Context, a domain.SellerAvailability) error {
	if a.Status != domain.AvailabilityAvailable && a.Status != domain.AvailabilityUnavailable {
		return fmt.Errorf("%w: status must be available or unavailable", domain.ErrValidation)
	}
	if a.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}

	if err := s.bookingRepo.SetAvailability(ctx, a); err != nil {
		return fmt.Errorf("set availability: %w", err)
	}

	s.logger.Info("seller availability updated",
		logger.String("seller_id", a.SellerID),
		logger.String("date", a.Date.Format(domain.DateLayout)),
		logger.String("status", string(a.Status)),
	)

	return nil
}
