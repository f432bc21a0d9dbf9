package handlers

import (
	"errors"
	"net/http"

	"hotelhub/middleware"
	"hotelhub/services/booking"
	"hotelhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// BookRoomHandler handles POST /book_room. The body must carry userEmail and
// roomId; every other field is treated as opaque booking detail and stored
// with the booking.
func (h *BookingHandler) BookRoomHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userEmail, _ := payload["userEmail"].(string)
	roomID, _ := payload["roomId"].(string)
	if userEmail == "" || roomID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userEmail and roomId are required"})
		return
	}
	delete(payload, "userEmail")
	delete(payload, "roomId")

	created, err := h.Service.Reserve(userEmail, roomID, payload)
	if err != nil {
		var bErr *booking.BookingError
		if errors.As(err, &bErr) && bErr.Code == booking.CodeAlreadyBooked {
			c.JSON(http.StatusBadRequest, gin.H{"message": "room already booked"})
			return
		}
		logger.Error("Failed to book room",
			zap.String("userEmail", userEmail), zap.String("roomId", roomID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// CancelBookingHandler handles DELETE /cancel_booking?id=&roomId=.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	id := c.Query("id")
	roomID := c.Query("roomId")
	if id == "" || roomID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id and roomId are required"})
		return
	}

	deleted, err := h.Service.Cancel(id, roomID)
	if err != nil {
		utils.GetLogger().Error("Failed to cancel booking",
			zap.String("id", id), zap.String("roomId", roomID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}

// BookedRoomsHandler handles GET /booked_rooms?email=. The requested email
// must match the authenticated session's email.
func (h *BookingHandler) BookedRoomsHandler(c *gin.Context) {
	email := c.Query("email")

	sessionEmail, ok := middleware.SessionEmail(c)
	if !ok || sessionEmail != email {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	bookings, err := h.Service.ListForUser(email)
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingHandler handles PATCH /update_booking?id= with a partial
// field set in the body. No field whitelist is applied.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}

	matched, err := h.Service.Update(id, fields)
	if err != nil {
		utils.GetLogger().Error("Failed to update booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": matched})
}
