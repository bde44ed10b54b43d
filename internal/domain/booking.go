package domain

import "time"

type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
)

// SellerAvailability - отметка продавца в календаре на конкретную дату.
type SellerAvailability struct {
	SellerID string             `json:"seller_id"`
	Date     time.Time          `json:"date"`
	Status   AvailabilityStatus `json:"status"`
}

// DateLayout - формат дат бронирования в API и в БД.
const DateLayout = "2006-01-02"

// SameDay сравнивает даты без учета времени.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
