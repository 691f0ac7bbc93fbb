package middlewares

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/Kariqs/wagas-api/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionKey is the gin context key holding the request's session.
const SessionKey = "session"

// TokenCookieName carries the session token for browser clients that
// do not set an Authorization header.
const TokenCookieName = "token"

func tokenFromRequest(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := ctx.Cookie(TokenCookieName); err == nil {
		return cookie
	}
	return ""
}

// SessionIDFromRequest extracts the session id from the request's
// token without requiring authentication, for logout.
func SessionIDFromRequest(ctx *gin.Context) (string, bool) {
	tokenString := tokenFromRequest(ctx)
	if tokenString == "" {
		return "", false
	}
	sessionID, err := parseSessionID(tokenString)
	if err != nil {
		return "", false
	}
	return sessionID, true
}

func parseSessionID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		return "", fmt.Errorf("token has no session id")
	}
	return sessionID, nil
}

func redirectToLogin(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message":  message,
		"redirect": "/login",
	})
}

// RequireAuth binds the request to its server-side session. A request
// without a valid token or with an expired session is sent back to the
// login page rather than failed hard.
func RequireAuth(store sessions.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := tokenFromRequest(ctx)
		if tokenString == "" {
			redirectToLogin(ctx, "Please login first.")
			return
		}

		sessionID, err := parseSessionID(tokenString)
		if err != nil {
			redirectToLogin(ctx, "Please login first.")
			return
		}

		session, err := store.Get(ctx.Request.Context(), sessionID)
		if err != nil {
			redirectToLogin(ctx, "Your session has expired. Please login again.")
			return
		}

		ctx.Set(SessionKey, session)
		ctx.Next()
	}
}

// GetSession returns the session bound by RequireAuth.
func GetSession(ctx *gin.Context) (*sessions.Session, bool) {
	value, exists := ctx.Get(SessionKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*sessions.Session)
	return session, ok
}
