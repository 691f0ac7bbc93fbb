package controllers

import (
	"net/http"
	"strconv"

	"github.com/Kariqs/wagas-api/logger"
	"github.com/Kariqs/wagas-api/middlewares"
	"github.com/Kariqs/wagas-api/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgItemRemoved     = "Item removed from cart."
	msgCartCleared     = "Cart cleared."
	msgFailedToSave    = "Failed to save cart."
	msgSessionNotFound = "Session not found in context"
)

type CartController struct {
	sessions sessions.Store
}

func NewCartController(store sessions.Store) *CartController {
	return &CartController{sessions: store}
}

type addToCartData struct {
	Name  string `json:"name" form:"name"`
	Price string `json:"price" form:"price"`
}

// AddToCart appends an item to the session cart. The price is taken
// from the request and falls back to zero when unparseable, matching
// the menu form which always posts both fields.
func (c *CartController) AddToCart(ctx *gin.Context) {
	session, ok := middlewares.GetSession(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSessionNotFound)
		return
	}

	var data addToCartData
	if err := ctx.ShouldBind(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	price, err := strconv.ParseFloat(data.Price, 64)
	if err != nil {
		price = 0
	}

	itemID := session.AddItem(data.Name, price)
	if err := c.sessions.Save(ctx.Request.Context(), session); err != nil {
		logger.Log.Error("Cart save failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSave)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": data.Name + " added to cart!",
		"id":      itemID,
	})
}

// GetCart renders the cart with its running totals.
func (c *CartController) GetCart(ctx *gin.Context) {
	session, ok := middlewares.GetSession(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSessionNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"cart":        session.Cart.Items,
		"subtotal":    session.Subtotal(),
		"deliveryFee": sessions.DeliveryFee,
		"total":       session.Total(),
	})
}

func (c *CartController) RemoveFromCart(ctx *gin.Context) {
	session, ok := middlewares.GetSession(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSessionNotFound)
		return
	}

	itemID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse item id.")
		return
	}

	session.RemoveItem(itemID)
	if err := c.sessions.Save(ctx.Request.Context(), session); err != nil {
		logger.Log.Error("Cart save failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSave)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgItemRemoved})
}

func (c *CartController) ClearCart(ctx *gin.Context) {
	session, ok := middlewares.GetSession(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSessionNotFound)
		return
	}

	session.ClearCart()
	if err := c.sessions.Save(ctx.Request.Context(), session); err != nil {
		logger.Log.Error("Cart save failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSave)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgCartCleared, "redirect": "/menu"})
}
