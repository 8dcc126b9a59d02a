package flights

import (
	"context"

	"github.com/rkalsi89/flightdesk/internal/catalog"
	"github.com/rkalsi89/flightdesk/internal/domain"
)

type FlightUseCase interface {
	List(ctx context.Context) []*domain.Flight
	GetByNumber(ctx context.Context, number string) (*domain.Flight, error)
	GetByIndex(ctx context.Context, index int) (*domain.Flight, error)
	SeatMap(ctx context.Context, number string) ([]domain.Seat, error)
}

type FlightService struct {
	catalog *catalog.Catalog
}

func NewFlightService(cat *catalog.Catalog) *FlightService {
	return &FlightService{catalog: cat}
}

func (s *FlightService) List(_ context.Context) []*domain.Flight {
	return s.catalog.List()
}

func (s *FlightService) GetByNumber(_ context.Context, number string) (*domain.Flight, error) {
	return s.catalog.ByNumber(number)
}

func (s *FlightService) GetByIndex(_ context.Context, index int) (*domain.Flight, error) {
	return s.catalog.ByIndex(index)
}

// SeatMap returns the free seats of the flight, tagged W/N. It is a
// read-only projection rebuilt on every call; the presentation layer
// re-queries it whenever the selected flight changes.
func (s *FlightService) SeatMap(_ context.Context, number string) ([]domain.Seat, error) {
	flight, err := s.catalog.ByNumber(number)
	if err != nil {
		return nil, err
	}
	return flight.FreeSeats(), nil
}

var _ FlightUseCase = (*FlightService)(nil)
