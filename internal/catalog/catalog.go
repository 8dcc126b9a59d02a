package catalog

import (
	"errors"

	"github.com/rkalsi89/flightdesk/internal/domain"
)

var ErrNotFound = errors.New("flight not found")

// Catalog is the fixed flight list, built once at startup and passed into
// the services. Only each flight's seat inventory mutates afterwards.
type Catalog struct {
	flights []*domain.Flight
}

func New(flights []*domain.Flight) *Catalog {
	return &Catalog{flights: flights}
}

// Builtin returns the stock catalog.
func Builtin() *Catalog {
	return New([]*domain.Flight{
		domain.NewFlight("AI101", "New York", "10:00 AM", 100, 20, 58000),
		domain.NewFlight("AI112", "London", "8:15 AM", 150, 30, 62000),
		domain.NewFlight("AI153", "Hawaii", "5:40 PM", 80, 50, 95000),
		domain.NewFlight("AI177", "Paris", "2:00 PM", 120, 40, 75000),
		domain.NewFlight("AI189", "Hong Kong", "11:30 PM", 140, 35, 85000),
		domain.NewFlight("AI210", "Singapore", "1:00 AM", 100, 25, 90000),
		domain.NewFlight("AI221", "Tokyo", "6:00 AM", 90, 30, 92000),
		domain.NewFlight("AI232", "Seoul", "9:45 AM", 110, 50, 60000),
		domain.NewFlight("AI243", "Toronto", "8:00 AM", 130, 45, 88000),
		domain.NewFlight("AI254", "Berlin", "12:00 PM", 95, 30, 67000),
		domain.NewFlight("AI265", "Bangkok", "4:00 PM", 160, 60, 98000),
		domain.NewFlight("AI276", "Beijing", "3:15 PM", 180, 40, 40000),
		domain.NewFlight("AI287", "Chicago", "7:30 AM", 200, 80, 72000),
	})
}

// List returns the flights in catalog order.
func (c *Catalog) List() []*domain.Flight {
	return c.flights
}

func (c *Catalog) Len() int {
	return len(c.flights)
}

// ByIndex looks a flight up by its 0-based position in the selection list.
func (c *Catalog) ByIndex(i int) (*domain.Flight, error) {
	if i < 0 || i >= len(c.flights) {
		return nil, ErrNotFound
	}
	return c.flights[i], nil
}

// ByNumber looks a flight up by its unique flight number.
func (c *Catalog) ByNumber(number string) (*domain.Flight, error) {
	for _, f := range c.flights {
		if f.Number == number {
			return f, nil
		}
	}
	return nil, ErrNotFound
}
