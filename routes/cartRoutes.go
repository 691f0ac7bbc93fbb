package routes

import (
	"github.com/Kariqs/wagas-api/controllers"
	"github.com/Kariqs/wagas-api/middlewares"
	"github.com/Kariqs/wagas-api/sessions"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine, cart *controllers.CartController, store sessions.Store) {
	authed := server.Group("/", middlewares.RequireAuth(store))
	{
		authed.GET("/cart", cart.GetCart)
		authed.POST("/add_to_cart", cart.AddToCart)
		authed.GET("/remove_from_cart/:id", cart.RemoveFromCart)
		authed.GET("/clear_cart", cart.ClearCart)
	}
}
