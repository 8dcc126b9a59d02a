package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rkalsi89/flightdesk/internal/catalog"
	"github.com/rkalsi89/flightdesk/internal/domain"
	"github.com/rkalsi89/flightdesk/internal/kafka"
)

// ErrInvalidSeatFormat means the raw seat number field did not parse as an
// integer. Nothing is mutated when it is returned.
var ErrInvalidSeatFormat = errors.New("seat number is not a valid integer")

// SeatUnavailableError covers both an out-of-range seat number and a seat
// that is already booked; the two causes are intentionally conflated.
type SeatUnavailableError struct {
	SeatNumber int
}

func (e *SeatUnavailableError) Error() string {
	return fmt.Sprintf("seat %d is already booked or invalid", e.SeatNumber)
}

type BookingUseCase interface {
	AttemptBooking(ctx context.Context, input AttemptBookingInput) (*Confirmation, error)
	LastConfirmation(ctx context.Context) *Confirmation
	Reset(ctx context.Context)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// AttemptBookingInput carries the raw field values collected by the
// presentation layer. SeatNumberText is deliberately untyped text.
type AttemptBookingInput struct {
	FlightNumber   string `json:"flight_number"`
	Name           string `json:"name"`
	Corporate      bool   `json:"corporate"`
	CorporateID    string `json:"corporate_id"`
	MealPreference string `json:"meal_preference"`
	MealOption     string `json:"meal_option"`
	SeatNumberText string `json:"seat_number"`
	WantWindowSeat bool   `json:"window_seat"`
}

// Confirmation holds everything the presentation layer renders after a
// successful booking. TotalPayment is the display form of TotalFare.
type Confirmation struct {
	Reference     string  `json:"reference"`
	PassengerName string  `json:"passenger_name"`
	CorporateID   string  `json:"corporate_id"`
	FlightNumber  string  `json:"flight_number"`
	Destination   string  `json:"destination"`
	DepartureTime string  `json:"departure_time"`
	SeatNumber    int     `json:"seat_number"`
	MealOption    string  `json:"meal_option"`
	WindowSeat    bool    `json:"window_seat"`
	SurchargeNote string  `json:"surcharge_note,omitempty"`
	TotalFare     float64 `json:"total_fare"`
	TotalPayment  string  `json:"total_payment"`
}

// SurchargeNote is shown on the confirmation whenever a window seat was
// requested.
const SurchargeNote = "Window seat selected. Additional charge: INR 2,500"

type BookingService struct {
	catalog      *catalog.Catalog
	producer     Producer
	bookingTopic string

	mu   sync.Mutex
	last *Confirmation
}

func NewBookingService(cat *catalog.Catalog, producer *kafka.Producer, bookingTopic string) *BookingService {
	svc := &BookingService{catalog: cat, bookingTopic: bookingTopic}
	if producer != nil {
		svc.producer = producer
	}
	return svc
}

// AttemptBooking runs one booking attempt to completion. A successful call
// books exactly one seat on exactly one flight; a failing call leaves all
// state untouched.
func (s *BookingService) AttemptBooking(ctx context.Context, input AttemptBookingInput) (*Confirmation, error) {
	seatNumber, err := strconv.Atoi(strings.TrimSpace(input.SeatNumberText))
	if err != nil {
		return nil, ErrInvalidSeatFormat
	}

	flight, err := s.catalog.ByNumber(input.FlightNumber)
	if err != nil {
		return nil, err
	}

	passenger := domain.NewPassenger(input.Name, input.Corporate, input.CorporateID)
	passenger.MealPreference = domain.MealPreference(input.MealPreference)

	if !flight.BookSeat(seatNumber) {
		return nil, &SeatUnavailableError{SeatNumber: seatNumber}
	}

	passenger.MealOption = input.MealOption
	booking := &domain.Booking{
		Reference:      uuid.NewString(),
		Flight:         flight,
		Passenger:      passenger,
		SeatNumber:     seatNumber,
		WantWindowSeat: input.WantWindowSeat,
		CreatedAt:      time.Now(),
	}

	conf := newConfirmation(booking)

	s.mu.Lock()
	s.last = conf
	s.mu.Unlock()

	if err := s.publish(ctx, "booking_confirmed", booking, conf); err != nil {
		log.Printf("publish booking_confirmed for %s: %v", booking.Reference, err)
	}
	return conf, nil
}

// LastConfirmation returns the most recently displayed result, or nil.
func (s *BookingService) LastConfirmation(_ context.Context) *Confirmation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Reset clears the last displayed result. Booked seats stay booked; there
// is no undo path.
func (s *BookingService) Reset(_ context.Context) {
	s.mu.Lock()
	s.last = nil
	s.mu.Unlock()
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking, conf *Confirmation) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:          eventType,
		Reference:     booking.Reference,
		FlightNumber:  booking.Flight.Number,
		Destination:   booking.Flight.Destination,
		SeatNumber:    booking.SeatNumber,
		PassengerName: booking.Passenger.Name,
		MealOption:    booking.Passenger.MealOption,
		WindowSeat:    booking.WantWindowSeat,
		TotalFare:     conf.TotalFare,
		CreatedAt:     booking.CreatedAt,
	}
	return s.producer.Publish(ctx, s.bookingTopic, booking.Reference, event)
}

var inrPrinter = message.NewPrinter(language.English)

// FormatINR renders an amount the way the booking slip shows it: grouped,
// two fraction digits, prefixed "INR ".
func FormatINR(amount float64) string {
	return inrPrinter.Sprintf("INR %.2f", amount)
}

func newConfirmation(b *domain.Booking) *Confirmation {
	corporateID := "N/A"
	if b.Passenger.Corporate {
		corporateID = b.Passenger.CorporateID
	}
	total := b.TotalFare()
	conf := &Confirmation{
		Reference:     b.Reference,
		PassengerName: b.Passenger.Name,
		CorporateID:   corporateID,
		FlightNumber:  b.Flight.Number,
		Destination:   b.Flight.Destination,
		DepartureTime: b.Flight.DepartureTime,
		SeatNumber:    b.SeatNumber,
		MealOption:    b.Passenger.MealOption,
		WindowSeat:    b.WantWindowSeat,
		TotalFare:     total,
		TotalPayment:  FormatINR(total),
	}
	if b.WantWindowSeat {
		conf.SurchargeNote = SurchargeNote
	}
	return conf
}

var _ BookingUseCase = (*BookingService)(nil)
