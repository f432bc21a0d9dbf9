package handlers

import (
	"net/http"
	"time"

	"hotelhub/config"
	"hotelhub/middleware"
	"hotelhub/models"
	"hotelhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sessionTTL is how long an issued session token (and its cookie) lives.
const sessionTTL = 24 * time.Hour

// IssueTokenHandler handles POST /jwt. It signs a session token for the
// posted identity and sets it as an httpOnly cookie.
func IssueTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateToken(req.Email, sessionTTL)
	if err != nil {
		logger.Error("Failed to sign session token", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	setSessionCookie(c, token, int(sessionTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LogoutHandler handles GET /logout by expiring the session cookie.
func LogoutHandler(c *gin.Context) {
	setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// setSessionCookie writes the session cookie. In production the cookie is
// Secure with SameSite=None so a browser frontend on another origin can send
// it; in development it stays SameSite=Strict over plain HTTP.
func setSessionCookie(c *gin.Context, token string, maxAge int) {
	secure := config.IsProduction()
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", secure, true)
}
