package routes

import (
	"github.com/Kariqs/wagas-api/controllers"
	"github.com/Kariqs/wagas-api/middlewares"
	"github.com/Kariqs/wagas-api/sessions"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine, order *controllers.OrderController, store sessions.Store) {
	authed := server.Group("/", middlewares.RequireAuth(store))
	{
		authed.GET("/checkout", order.GetCheckout)
		authed.POST("/checkout", order.Checkout)
		authed.GET("/cancel_order", order.CancelOrder)
		authed.GET("/orders", order.GetMyOrders)
	}

	admin := server.Group("/admin", middlewares.RequireAuth(store), middlewares.RequireAdmin())
	{
		admin.GET("/orders", order.GetAdminOrders)
		admin.GET("/update_order/:id/:status", order.UpdateOrderStatus)
		admin.GET("/delete_order/:id", order.DeleteOrder)
	}
}
