package notify

import (
	"context"
	"log"

	"github.com/rkalsi89/flightdesk/internal/kafka"
	"github.com/rkalsi89/flightdesk/internal/service/booking"
)

// Notifier hands booking confirmations to the clerk-facing channel. The
// current implementation only logs the slip; a mail or printer backend can
// replace it behind the same method.
type Notifier struct{}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Notify(_ context.Context, event kafka.BookingEvent) error {
	log.Printf("booking %s: %s confirmed on flight %s to %s, seat %d, meal %s, total %s",
		event.Reference, event.PassengerName, event.FlightNumber, event.Destination,
		event.SeatNumber, event.MealOption, booking.FormatINR(event.TotalFare))
	return nil
}
