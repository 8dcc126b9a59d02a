package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rkalsi89/flightdesk/internal/catalog"
	"github.com/rkalsi89/flightdesk/internal/domain"
	"github.com/rkalsi89/flightdesk/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightResponse struct {
	Number          string  `json:"number"`
	Destination     string  `json:"destination"`
	DepartureTime   string  `json:"departure_time"`
	TotalSeats      int     `json:"total_seats"`
	WindowSeatCount int     `json:"window_seat_count"`
	BaseFare        float64 `json:"base_fare"`
	AvailableSeats  int     `json:"available_seats"`
}

type seatResponse struct {
	SeatNumber int    `json:"seat_number"`
	Type       string `json:"type"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/index/:index", h.getByIndex)
	router.GET("/:number", h.get)
	router.GET("/:number/seatmap", h.seatMap)
}

func (h *FlightHandler) list(c *gin.Context) {
	list := h.service.List(c.Request.Context())
	resp := make([]flightResponse, 0, len(list))
	for _, f := range list {
		resp = append(resp, toFlightResponse(f))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(flight))
}

// getByIndex serves lookups by position in the selection list, the way the
// flight picker addresses the catalog.
func (h *FlightHandler) getByIndex(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}
	flight, err := h.service.GetByIndex(c.Request.Context(), index)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(flight))
}

func (h *FlightHandler) seatMap(c *gin.Context) {
	seats, err := h.service.SeatMap(c.Request.Context(), c.Param("number"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]seatResponse, 0, len(seats))
	for _, s := range seats {
		resp = append(resp, seatResponse{SeatNumber: s.Number, Type: string(s.Type)})
	}
	c.JSON(http.StatusOK, resp)
}

func toFlightResponse(f *domain.Flight) flightResponse {
	return flightResponse{
		Number:          f.Number,
		Destination:     f.Destination,
		DepartureTime:   f.DepartureTime,
		TotalSeats:      f.TotalSeats,
		WindowSeatCount: f.WindowSeatCount,
		BaseFare:        f.BaseFare,
		AvailableSeats:  f.AvailableSeats(),
	}
}
