package controllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/Kariqs/wagas-api/logger"
	"github.com/Kariqs/wagas-api/middlewares"
	"github.com/Kariqs/wagas-api/models"
	"github.com/Kariqs/wagas-api/services"
	"github.com/Kariqs/wagas-api/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	// Standard response messages
	msgFillAllFields      = "Please fill out all fields."
	msgUserAlreadyExists  = "Username or Email already exists. Please login."
	msgSignupSuccess      = "Signup successful! Please login."
	msgInvalidCredentials = "Invalid username/email or password."
	msgLoginSuccess       = "Login successful!"
	msgLogoutSuccess      = "Logged out successfully!"
	msgInternalError      = "Internal server error"

	tokenLifetime = time.Hour * 24 * 30
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

type AuthController struct {
	auth     *services.AuthService
	sessions sessions.Store
}

func NewAuthController(auth *services.AuthService, store sessions.Store) *AuthController {
	return &AuthController{auth: auth, sessions: store}
}

func generateJWT(session *sessions.Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid":      session.ID,
		"user_id":  session.UserID,
		"username": session.Username,
		"role":     session.Role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(tokenLifetime).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

// GetSignup describes the signup form for clients that fetch it.
func (c *AuthController) GetSignup(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Submit username, email and password to create an account.",
	})
}

// Signup handles user registration
func (c *AuthController) Signup(ctx *gin.Context) {
	var signupData models.SignupData
	if err := ctx.ShouldBind(&signupData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgFillAllFields)
		return
	}

	_, err := c.auth.Register(ctx.Request.Context(), signupData)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			sendErrorResponse(ctx, http.StatusBadRequest, msgFillAllFields)
		case errors.Is(err, services.ErrUserExists):
			sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
				"message":  msgUserAlreadyExists,
				"redirect": "/login",
			})
		default:
			logger.Log.Error("User creation failed", zap.Error(err))
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":  msgSignupSuccess,
		"redirect": "/login",
	})
}

func (c *AuthController) GetLogin(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Submit your username or email and password to login.",
	})
}

// Login verifies the credential, establishes the server-side session
// and hands out its token. Admins land on the admin order board.
func (c *AuthController) Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBind(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgFillAllFields)
		return
	}

	user, err := c.auth.Login(ctx.Request.Context(), loginData)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		logger.Log.Error("Login failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		return
	}

	session := sessions.New(*user)
	if err := c.sessions.Save(ctx.Request.Context(), session); err != nil {
		logger.Log.Error("Session save failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		return
	}

	tokenString, err := generateJWT(session)
	if err != nil {
		logger.Log.Error("JWT generation failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		return
	}

	redirect := "/"
	if session.IsAdmin() {
		redirect = "/admin/orders"
	}

	ctx.SetCookie(middlewares.TokenCookieName, tokenString, int(tokenLifetime.Seconds()), "/", "", false, true)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":  msgLoginSuccess,
		"token":    tokenString,
		"redirect": redirect,
	})
}

// Logout drops the server-side session. It succeeds regardless of
// whether the caller still had one.
func (c *AuthController) Logout(ctx *gin.Context) {
	if sessionID, ok := middlewares.SessionIDFromRequest(ctx); ok {
		if err := c.sessions.Delete(ctx.Request.Context(), sessionID); err != nil {
			logger.Log.Warn("Session delete failed", zap.Error(err))
		}
	}

	ctx.SetCookie(middlewares.TokenCookieName, "", -1, "/", "", false, true)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":  msgLogoutSuccess,
		"redirect": "/login",
	})
}
