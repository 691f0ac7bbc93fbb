package routes

import (
	"github.com/Kariqs/wagas-api/controllers"
	"github.com/Kariqs/wagas-api/middlewares"
	"github.com/Kariqs/wagas-api/sessions"
	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine, views *controllers.DefaultController, store sessions.Store) {
	server.GET("/contact", views.GetContact)
	server.POST("/contact", views.Contact)

	authed := server.Group("/", middlewares.RequireAuth(store))
	{
		authed.GET("/", views.GetHome)
		authed.GET("/menu", views.GetMenu)
		authed.GET("/aboutus", views.GetAboutUs)
		authed.GET("/users", views.GetUsers)
	}
}
