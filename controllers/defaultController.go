package controllers

import (
	"net/http"

	"github.com/Kariqs/wagas-api/logger"
	"github.com/Kariqs/wagas-api/middlewares"
	"github.com/Kariqs/wagas-api/repository"
	"github.com/Kariqs/wagas-api/services"
	"github.com/Kariqs/wagas-api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DefaultController struct {
	menu *repository.MenuRepository
	auth *services.AuthService
}

func NewDefaultController(menu *repository.MenuRepository, auth *services.AuthService) *DefaultController {
	return &DefaultController{menu: menu, auth: auth}
}

func (c *DefaultController) GetHome(ctx *gin.Context) {
	session, ok := middlewares.GetSession(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSessionNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Welcome to Wagas, " + session.Username + "!",
		"name":    session.Username,
	})
}

func (c *DefaultController) GetMenu(ctx *gin.Context) {
	session, ok := middlewares.GetSession(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSessionNotFound)
		return
	}

	items, err := c.menu.List(ctx.Request.Context())
	if err != nil {
		logger.Log.Error("Menu listing failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch menu.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"name": session.Username,
		"menu": items,
	})
}

func (c *DefaultController) GetAboutUs(ctx *gin.Context) {
	session, ok := middlewares.GetSession(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSessionNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"name":    session.Username,
		"message": "Wagas is a neighborhood kitchen serving comfort food since 2019. Order online, pick up hot.",
	})
}

func (c *DefaultController) GetUsers(ctx *gin.Context) {
	users, err := c.auth.ListUsers(ctx.Request.Context())
	if err != nil {
		logger.Log.Error("User listing failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch users.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"users": users})
}

func (c *DefaultController) GetContact(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Send us your name, email and message.",
	})
}

type contactData struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Message string `json:"message" form:"message" binding:"required"`
}

// Contact forwards a message to the shop mailbox. A mail failure is
// logged but does not fail the request.
func (c *DefaultController) Contact(ctx *gin.Context) {
	var data contactData
	if err := ctx.ShouldBind(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgFillAllFields)
		return
	}

	if err := utils.SendContactMessage(data.Name, data.Email, data.Message); err != nil {
		logger.Log.Warn("Contact mail failed", zap.Error(err))
	} else {
		logger.Log.Info("Contact message forwarded", zap.String("from", data.Email))
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Thanks for reaching out! We will get back to you."})
}
