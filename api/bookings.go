package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rkalsi89/flightdesk/internal/catalog"
	"github.com/rkalsi89/flightdesk/internal/domain"
	"github.com/rkalsi89/flightdesk/internal/service/booking"
)

// Messages shown to the clerk, kept word for word from the booking form.
const (
	msgInvalidSeatNumber  = "Invalid seat number. Please enter a valid seat number."
	msgSeatUnavailableFmt = "Seat number %d is already booked or invalid. Please select another seat."
)

type BookingHandler struct {
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/last", h.last)
	router.DELETE("/last", h.reset)
}

func (h *BookingHandler) create(c *gin.Context) {
	var input booking.AttemptBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Meal fields are fixed choice lists on the booking form; membership
	// is enforced here at the boundary rather than inside the workflow.
	if !domain.IsMealPreference(input.MealPreference) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal preference"})
		return
	}
	if !domain.IsMealOption(input.MealOption) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal option"})
		return
	}

	conf, err := h.service.AttemptBooking(c.Request.Context(), input)
	if err != nil {
		var unavailable *booking.SeatUnavailableError
		switch {
		case errors.Is(err, booking.ErrInvalidSeatFormat):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidSeatNumber})
		case errors.As(err, &unavailable):
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf(msgSeatUnavailableFmt, unavailable.SeatNumber)})
		case errors.Is(err, catalog.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, conf)
}

func (h *BookingHandler) last(c *gin.Context) {
	conf := h.service.LastConfirmation(c.Request.Context())
	if conf == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no booking to display"})
		return
	}
	c.JSON(http.StatusOK, conf)
}

func (h *BookingHandler) reset(c *gin.Context) {
	h.service.Reset(c.Request.Context())
	c.Status(http.StatusNoContent)
}
