package domain

import "sync"

type SeatType string

const (
	SeatTypeWindow SeatType = "W"
	SeatTypeNormal SeatType = "N"
)

// Seat is one entry of the free-seat projection. Numbers are 1-based,
// the way they are shown to the clerk.
type Seat struct {
	Number int
	Type   SeatType
}

type Flight struct {
	Number          string
	Destination     string
	DepartureTime   string
	TotalSeats      int
	WindowSeatCount int
	BaseFare        float64

	// Seat flags are guarded so concurrent booking attempts cannot
	// double-book a seat. Flights must be shared by pointer.
	mu    sync.Mutex
	seats []bool
}

func NewFlight(number, destination, departureTime string, totalSeats, windowSeatCount int, baseFare float64) *Flight {
	return &Flight{
		Number:          number,
		Destination:     destination,
		DepartureTime:   departureTime,
		TotalSeats:      totalSeats,
		WindowSeatCount: windowSeatCount,
		BaseFare:        baseFare,
		seats:           make([]bool, totalSeats),
	}
}

// BookSeat marks the 1-based seatNumber as booked. It returns false both
// for an out-of-range number and for a seat that is already taken; the two
// causes are deliberately not distinguishable from the return value.
func (f *Flight) BookSeat(seatNumber int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if seatNumber <= 0 || seatNumber > f.TotalSeats || f.seats[seatNumber-1] {
		return false
	}
	f.seats[seatNumber-1] = true
	return true
}

// SeatTypeAt reports whether the 0-based slot index is a window or a
// normal seat. Seat type is positional, never stored per seat.
func (f *Flight) SeatTypeAt(index int) SeatType {
	if index < f.WindowSeatCount {
		return SeatTypeWindow
	}
	return SeatTypeNormal
}

// FreeSeats returns the currently free seats in ascending order, each
// tagged window or normal. The projection is rebuilt on every call.
func (f *Flight) FreeSeats() []Seat {
	f.mu.Lock()
	defer f.mu.Unlock()

	free := make([]Seat, 0, len(f.seats))
	for i, booked := range f.seats {
		if !booked {
			free = append(free, Seat{Number: i + 1, Type: f.SeatTypeAt(i)})
		}
	}
	return free
}

// AvailableSeats counts the seats still free.
func (f *Flight) AvailableSeats() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, booked := range f.seats {
		if !booked {
			n++
		}
	}
	return n
}
