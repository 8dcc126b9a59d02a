package domain

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFlight_AllSeatsFree(t *testing.T) {
	f := NewFlight("AI101", "New York", "10:00 AM", 100, 20, 58000)

	assert.Equal(t, 100, f.AvailableSeats())
	assert.Len(t, f.FreeSeats(), 100)
}

func TestFlight_BookSeat_Success(t *testing.T) {
	f := NewFlight("AI101", "New York", "10:00 AM", 100, 20, 58000)

	assert.True(t, f.BookSeat(5))
	assert.Equal(t, 99, f.AvailableSeats())

	// The same seat is unavailable afterwards.
	assert.False(t, f.BookSeat(5))
	assert.Equal(t, 99, f.AvailableSeats())
}

func TestFlight_BookSeat_OutOfRange(t *testing.T) {
	f := NewFlight("AI153", "Hawaii", "5:40 PM", 80, 50, 95000)

	for _, seat := range []int{0, -1, 81, 1000} {
		assert.False(t, f.BookSeat(seat), "seat %d", seat)
	}
	assert.Equal(t, 80, f.AvailableSeats())
}

func TestFlight_BookSeat_Boundaries(t *testing.T) {
	f := NewFlight("AI153", "Hawaii", "5:40 PM", 80, 50, 95000)

	assert.True(t, f.BookSeat(1))
	assert.True(t, f.BookSeat(80))
	assert.Equal(t, 78, f.AvailableSeats())
}

func TestFlight_BookSeat_ConcurrentSameSeat(t *testing.T) {
	f := NewFlight("AI287", "Chicago", "7:30 AM", 200, 80, 72000)

	// Race many callers at one seat: exactly one wins.
	const attempts = 64
	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if f.BookSeat(7) {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, 199, f.AvailableSeats())
}

func TestFlight_BookSeat_ConcurrentDistinctSeats(t *testing.T) {
	f := NewFlight("AI112", "London", "8:15 AM", 150, 30, 62000)

	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	for seat := 1; seat <= f.TotalSeats; seat++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if f.BookSeat(n) {
				wins.Add(1)
			}
		}(seat)
	}
	wg.Wait()

	assert.Equal(t, int32(f.TotalSeats), wins.Load())
	assert.Equal(t, 0, f.AvailableSeats())
}

func TestFlight_FreeSeats_ExcludesBooked(t *testing.T) {
	f := NewFlight("AI101", "New York", "10:00 AM", 100, 20, 58000)

	f.BookSeat(1)
	f.BookSeat(50)

	for _, s := range f.FreeSeats() {
		assert.NotEqual(t, 1, s.Number)
		assert.NotEqual(t, 50, s.Number)
	}
	assert.Len(t, f.FreeSeats(), 98)
}

func TestFlight_FreeSeats_Ascending(t *testing.T) {
	f := NewFlight("AI221", "Tokyo", "6:00 AM", 90, 30, 92000)
	f.BookSeat(10)

	seats := f.FreeSeats()
	for i := 1; i < len(seats); i++ {
		assert.Less(t, seats[i-1].Number, seats[i].Number)
	}
}

func TestFlight_SeatTypeBoundary(t *testing.T) {
	f := NewFlight("AI101", "New York", "10:00 AM", 100, 20, 58000)

	seats := f.FreeSeats()

	// Seat 20 occupies index 19 and is the last window seat; seat 21 is
	// the first normal one.
	assert.Equal(t, Seat{Number: 20, Type: SeatTypeWindow}, seats[19])
	assert.Equal(t, Seat{Number: 21, Type: SeatTypeNormal}, seats[20])
	assert.Equal(t, SeatTypeWindow, seats[0].Type)
	assert.Equal(t, SeatTypeNormal, seats[99].Type)
}
