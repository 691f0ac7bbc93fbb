package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Kariqs/wagas-api/logger"
	"github.com/Kariqs/wagas-api/middlewares"
	"github.com/Kariqs/wagas-api/services"
	"github.com/Kariqs/wagas-api/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgOrderPlaced    = "Order placed successfully!"
	msgOrderNotFound  = "Order not found."
	msgInvalidStatus  = "Invalid order status."
	msgOrderFailed    = "Failed to place order."
	msgOrderCanceled  = "Order canceled. You can continue shopping."
	msgFetchOrdersErr = "Failed to fetch orders."
)

type OrderController struct {
	orders   *services.OrderService
	sessions sessions.Store
}

func NewOrderController(orders *services.OrderService, store sessions.Store) *OrderController {
	return &OrderController{orders: orders, sessions: store}
}

// GetCheckout shows the totals the order would be placed with.
func (c *OrderController) GetCheckout(ctx *gin.Context) {
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

// Checkout places the order. The cart is only emptied once the order
// row is committed; a failed insert keeps the cart and reports the
// failure instead of confirming.
func (c *OrderController) Checkout(ctx *gin.Context) {
	session, ok := middlewares.GetSession(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSessionNotFound)
		return
	}

	var checkoutData services.CheckoutData
	if err := ctx.ShouldBind(&checkoutData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgFillAllFields)
		return
	}

	order, err := c.orders.Checkout(ctx.Request.Context(), session, checkoutData)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgFillAllFields)
			return
		}
		logger.Log.Error("Order creation failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgOrderFailed)
		return
	}

	session.ClearCart()
	if err := c.sessions.Save(ctx.Request.Context(), session); err != nil {
		// The order is committed; a stale cart is the lesser failure.
		logger.Log.Warn("Cart clear after checkout failed", zap.Error(err))
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": msgOrderPlaced,
		"order":   order,
	})
}

func (c *OrderController) CancelOrder(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":  msgOrderCanceled,
		"redirect": "/menu",
	})
}

// GetMyOrders returns the caller's order history, newest first.
func (c *OrderController) GetMyOrders(ctx *gin.Context) {
	session, ok := middlewares.GetSession(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSessionNotFound)
		return
	}

	orders, err := c.orders.ListByCustomer(ctx.Request.Context(), session.UserID)
	if err != nil {
		logger.Log.Error("Order listing failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFetchOrdersErr)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetAdminOrders groups all orders into the three status views.
func (c *OrderController) GetAdminOrders(ctx *gin.Context) {
	grouped, err := c.orders.ListByStatus(ctx.Request.Context())
	if err != nil {
		logger.Log.Error("Admin order listing failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFetchOrdersErr)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"pendingOrders":  grouped.Pending,
		"approvedOrders": grouped.Approved,
		"rejectedOrders": grouped.Rejected,
	})
}

func (c *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id.")
		return
	}
	status := ctx.Param("status")

	if err := c.orders.UpdateStatus(ctx.Request.Context(), uint(orderID), status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidStatus)
		case errors.Is(err, services.ErrOrderNotFound):
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		default:
			logger.Log.Error("Order status update failed", zap.Error(err))
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status.")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": fmt.Sprintf("Order #%d marked as %s.", orderID, status),
	})
}

func (c *OrderController) DeleteOrder(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id.")
		return
	}

	if err := c.orders.Delete(ctx.Request.Context(), uint(orderID)); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
			return
		}
		logger.Log.Error("Order delete failed", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": fmt.Sprintf("Order #%d deleted.", orderID),
	})
}
