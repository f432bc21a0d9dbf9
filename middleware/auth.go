package middleware

import (
	"net/http"

	"hotelhub/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "token"

// ContextEmailKey is the gin context key under which the authenticated
// session's email is stored.
const ContextEmailKey = "userEmail"

// JWTAuthCookieMiddleware guards endpoints behind the session cookie.
// A missing cookie and an invalid or expired token are both rejected with
// 401; on success the token's email claim is placed in the request context.
func JWTAuthCookieMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

// SessionEmail returns the authenticated email placed in the context by
// JWTAuthCookieMiddleware.
func SessionEmail(c *gin.Context) (string, bool) {
	val, ok := c.Get(ContextEmailKey)
	if !ok {
		return "", false
	}
	email, ok := val.(string)
	return email, ok && email != ""
}
