package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects every endpoint handler for route registration.
type HandlerBundle struct {
	// Session endpoints.
	IssueToken gin.HandlerFunc
	Logout     gin.HandlerFunc

	// Room endpoints.
	ListRooms   gin.HandlerFunc
	RoomsCount  gin.HandlerFunc
	RoomDetails gin.HandlerFunc

	// Booking endpoints.
	BookRoom      gin.HandlerFunc
	CancelBooking gin.HandlerFunc
	BookedRooms   gin.HandlerFunc
	UpdateBooking gin.HandlerFunc

	// Review endpoints.
	SubmitReview gin.HandlerFunc
	ListReviews  gin.HandlerFunc
	RoomReviews  gin.HandlerFunc
	ReviewsCount gin.HandlerFunc
}
