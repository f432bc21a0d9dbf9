package routes

import (
	"net/http"
	"time"

	"hotelhub/config"
	"hotelhub/handlers"
	"hotelhub/middleware"
	"hotelhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterLivenessRoute registers the liveness probe.
func RegisterLivenessRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hotel Management System")
	})
}

// RegisterHealthRoute exposes the background health monitor's latest snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterPublicRoutes registers endpoints reachable without a session cookie.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/jwt", hb.IssueToken)
	r.GET("/logout", hb.Logout)
	r.GET("/rooms", hb.ListRooms)
	r.GET("/rooms_count", hb.RoomsCount)
	r.GET("/reviews", hb.ListReviews)
}

// RegisterProtectedRoutes registers endpoints behind the cookie auth guard.
func RegisterProtectedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	protected := r.Group("")
	protected.Use(middleware.JWTAuthCookieMiddleware())
	{
		protected.GET("/room_details/:id", hb.RoomDetails)
		protected.POST("/book_room", hb.BookRoom)
		protected.DELETE("/cancel_booking", hb.CancelBooking)
		protected.GET("/booked_rooms", hb.BookedRooms)
		protected.PATCH("/update_booking", hb.UpdateBooking)
		protected.POST("/review", hb.SubmitReview)
		protected.GET("/reviews_ofRooms", hb.RoomReviews)
		protected.GET("/reviews_count", hb.ReviewsCount)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Credentialed CORS: only configured origins may send the session cookie.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOriginList(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterLivenessRoute(r)
	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterProtectedRoutes(r, hb)
}
