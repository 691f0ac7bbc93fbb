package routes

import (
	"github.com/Kariqs/wagas-api/controllers"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine, auth *controllers.AuthController) {
	server.GET("/signup", auth.GetSignup)
	server.POST("/signup", auth.Signup)
	server.GET("/login", auth.GetLogin)
	server.POST("/login", auth.Login)
	server.GET("/logout", auth.Logout)
}
