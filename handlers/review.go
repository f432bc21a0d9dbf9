package handlers

import (
	"errors"
	"net/http"

	"hotelhub/middleware"
	"hotelhub/models"
	"hotelhub/services/review"
	"hotelhub/services/room"
	"hotelhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler serves review submission and retrieval endpoints.
type ReviewHandler struct {
	Service review.ReviewService
}

func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

// SubmitReviewHandler handles POST /review.
func (h *ReviewHandler) SubmitReviewHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		RoomID  string  `json:"roomId" binding:"required"`
		Rating  float64 `json:"rating" binding:"required,gte=1,lte=5"`
		Comment string  `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userEmail, _ := middleware.SessionEmail(c)

	rev, err := h.Service.Submit(req.RoomID, req.Rating, req.Comment, userEmail)
	if err != nil {
		var rErr *review.ReviewError
		if errors.As(err, &rErr) && rErr.Code == review.CodeRoomNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "room not found"})
			return
		}
		logger.Error("Failed to submit review", zap.String("roomId", req.RoomID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": rev.ID})
}

// ListReviewsHandler handles GET /reviews: every review, newest first.
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	reviews, err := h.Service.ListAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list reviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// RoomReviewsHandler handles GET /reviews_ofRooms?room=&skip=&limit=,
// one page of a room's reviews, newest first.
func (h *ReviewHandler) RoomReviewsHandler(c *gin.Context) {
	roomID := c.Query("room")
	if roomID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room is required"})
		return
	}
	page, limit := room.Paging(c.Query("skip"), c.Query("limit"))

	reviews, err := h.Service.ListByRoom(roomID, page, limit)
	if err != nil {
		utils.GetLogger().Error("Failed to list room reviews", zap.String("roomId", roomID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// ReviewsCountHandler handles GET /reviews_count?rm=.
func (h *ReviewHandler) ReviewsCountHandler(c *gin.Context) {
	roomID := c.Query("rm")
	if roomID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rm is required"})
		return
	}

	count, err := h.Service.CountByRoom(roomID)
	if err != nil {
		utils.GetLogger().Error("Failed to count reviews", zap.String("roomId", roomID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
