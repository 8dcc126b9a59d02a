package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rkalsi89/flightdesk/internal/catalog"
)

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func corporateWindowInput() AttemptBookingInput {
	return AttemptBookingInput{
		FlightNumber:   "AI101",
		Name:           "Asha Rao",
		Corporate:      true,
		CorporateID:    "CP9",
		MealPreference: "Veg",
		MealOption:     "Paneer Curry",
		SeatNumberText: "5",
		WantWindowSeat: true,
	}
}

func TestBookingService_AttemptBooking_Success(t *testing.T) {
	cat := catalog.Builtin()
	mockProducer := &MockProducer{}
	service := &BookingService{catalog: cat, producer: mockProducer, bookingTopic: "booking-events"}

	ctx := context.Background()
	mockProducer.On("Publish", ctx, "booking-events", mock.Anything, mock.Anything).Return(nil).Once()

	conf, err := service.AttemptBooking(ctx, corporateWindowInput())

	assert.NoError(t, err)
	assert.NotNil(t, conf)
	assert.NotEmpty(t, conf.Reference)
	assert.Equal(t, "Asha Rao", conf.PassengerName)
	assert.Equal(t, "CP9", conf.CorporateID)
	assert.Equal(t, "AI101", conf.FlightNumber)
	assert.Equal(t, "New York", conf.Destination)
	assert.Equal(t, "10:00 AM", conf.DepartureTime)
	assert.Equal(t, 5, conf.SeatNumber)
	assert.Equal(t, "Paneer Curry", conf.MealOption)
	assert.Equal(t, SurchargeNote, conf.SurchargeNote)
	assert.Equal(t, 54450.0, conf.TotalFare)
	assert.Equal(t, "INR 54,450.00", conf.TotalPayment)

	flight, err := cat.ByNumber("AI101")
	assert.NoError(t, err)
	assert.Equal(t, 99, flight.AvailableSeats())

	mockProducer.AssertExpectations(t)
}

func TestBookingService_AttemptBooking_NonCorporate(t *testing.T) {
	service := &BookingService{catalog: catalog.Builtin()}

	input := corporateWindowInput()
	input.Corporate = false
	input.CorporateID = "CP9" // typed, but ignored without the flag
	input.WantWindowSeat = false

	conf, err := service.AttemptBooking(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "N/A", conf.CorporateID)
	assert.Empty(t, conf.SurchargeNote)
	assert.Equal(t, 58000.0, conf.TotalFare)
	assert.Equal(t, "INR 58,000.00", conf.TotalPayment)
}

func TestBookingService_AttemptBooking_InvalidSeatFormat(t *testing.T) {
	cat := catalog.Builtin()
	service := &BookingService{catalog: cat}

	for _, text := range []string{"abc", "", "12.5", "1a"} {
		input := corporateWindowInput()
		input.SeatNumberText = text

		conf, err := service.AttemptBooking(context.Background(), input)
		assert.Nil(t, conf, "seat text %q", text)
		assert.ErrorIs(t, err, ErrInvalidSeatFormat, "seat text %q", text)
	}

	// No seat state changed by any of the failed attempts.
	flight, err := cat.ByNumber("AI101")
	assert.NoError(t, err)
	assert.Equal(t, 100, flight.AvailableSeats())
}

func TestBookingService_AttemptBooking_DoubleBooking(t *testing.T) {
	service := &BookingService{catalog: catalog.Builtin()}
	ctx := context.Background()

	input := corporateWindowInput()
	input.SeatNumberText = "1"

	_, err := service.AttemptBooking(ctx, input)
	assert.NoError(t, err)

	conf, err := service.AttemptBooking(ctx, input)
	assert.Nil(t, conf)

	var unavailable *SeatUnavailableError
	assert.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 1, unavailable.SeatNumber)
}

func TestBookingService_AttemptBooking_SeatOutOfRange(t *testing.T) {
	cat := catalog.Builtin()
	service := &BookingService{catalog: cat}

	input := corporateWindowInput()
	input.SeatNumberText = "101" // AI101 has 100 seats

	conf, err := service.AttemptBooking(context.Background(), input)
	assert.Nil(t, conf)

	// Out-of-range and already-booked share the same failure.
	var unavailable *SeatUnavailableError
	assert.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 101, unavailable.SeatNumber)

	flight, err := cat.ByNumber("AI101")
	assert.NoError(t, err)
	assert.Equal(t, 100, flight.AvailableSeats())
}

func TestBookingService_AttemptBooking_FlightNotFound(t *testing.T) {
	service := &BookingService{catalog: catalog.Builtin()}

	input := corporateWindowInput()
	input.FlightNumber = "ZZ999"

	conf, err := service.AttemptBooking(context.Background(), input)
	assert.Nil(t, conf)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestBookingService_AttemptBooking_PublishErrorDoesNotFail(t *testing.T) {
	mockProducer := &MockProducer{}
	service := &BookingService{catalog: catalog.Builtin(), producer: mockProducer, bookingTopic: "booking-events"}

	ctx := context.Background()
	mockProducer.On("Publish", ctx, "booking-events", mock.Anything, mock.Anything).
		Return(errors.New("kafka down")).Once()

	conf, err := service.AttemptBooking(ctx, corporateWindowInput())

	assert.NoError(t, err)
	assert.NotNil(t, conf)

	mockProducer.AssertExpectations(t)
}

func TestBookingService_LastConfirmationAndReset(t *testing.T) {
	cat := catalog.Builtin()
	service := &BookingService{catalog: cat}
	ctx := context.Background()

	assert.Nil(t, service.LastConfirmation(ctx))

	conf, err := service.AttemptBooking(ctx, corporateWindowInput())
	assert.NoError(t, err)
	assert.Equal(t, conf, service.LastConfirmation(ctx))

	service.Reset(ctx)
	assert.Nil(t, service.LastConfirmation(ctx))

	// Reset clears the display only; the booked seat stays booked.
	flight, err := cat.ByNumber("AI101")
	assert.NoError(t, err)
	assert.Equal(t, 99, flight.AvailableSeats())
	assert.False(t, flight.BookSeat(5))
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "INR 54,450.00", FormatINR(54450))
	assert.Equal(t, "INR 100,500.00", FormatINR(100500))
	assert.Equal(t, "INR 2,500.00", FormatINR(2500))
}
