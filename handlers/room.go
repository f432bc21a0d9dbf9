package handlers

import (
	"net/http"

	"hotelhub/models"
	"hotelhub/services/room"
	"hotelhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomHandler serves the room listing and lookup endpoints.
type RoomHandler struct {
	Service room.RoomService
}

func NewRoomHandler(svc room.RoomService) *RoomHandler {
	return &RoomHandler{Service: svc}
}

// ListRoomsHandler handles GET /rooms. The frontend sends the page number
// under the "skip" query param; "page" is accepted as an alias. Limit
// defaults to 8 and sort=asc|desc orders by price.
func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	pageStr := c.Query("skip")
	if pageStr == "" {
		pageStr = c.Query("page")
	}
	page, limit := room.Paging(pageStr, c.Query("limit"))

	rooms, err := h.Service.List(page, limit, c.Query("sort"))
	if err != nil {
		logger.Error("Failed to list rooms", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	c.JSON(http.StatusOK, rooms)
}

// RoomsCountHandler handles GET /rooms_count with an approximate total.
func (h *RoomHandler) RoomsCountHandler(c *gin.Context) {
	count, err := h.Service.Count()
	if err != nil {
		utils.GetLogger().Error("Failed to count rooms", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// RoomDetailsHandler handles GET /room_details/:id.
func (h *RoomHandler) RoomDetailsHandler(c *gin.Context) {
	id := c.Param("id")

	rm, err := h.Service.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch room", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rm == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "room not found"})
		return
	}
	c.JSON(http.StatusOK, rm)
}
