package domain

import (
	"strings"
	"time"
)

const (
	// WindowSeatSurcharge is a flat INR amount, not configurable per flight.
	WindowSeatSurcharge = 2500.0

	// CorporateDiscountRate applies to ids starting with CorporateIDPrefix.
	CorporateDiscountRate = 0.10
	CorporateIDPrefix     = "CP"
)

type Booking struct {
	Reference      string
	Flight         *Flight
	Passenger      Passenger
	SeatNumber     int
	WantWindowSeat bool
	CreatedAt      time.Time
}

// TotalFare computes the fare for this booking. The order is fixed: the
// window surcharge is added first, then the corporate discount is taken
// from the surcharged total.
func (b *Booking) TotalFare() float64 {
	total := b.Flight.BaseFare
	if b.WantWindowSeat {
		total += WindowSeatSurcharge
	}
	p := b.Passenger
	if p.Corporate && p.CorporateID != "" && strings.HasPrefix(p.CorporateID, CorporateIDPrefix) {
		total -= total * CorporateDiscountRate
	}
	return total
}
