package main

import (
	"os"
	"time"

	"github.com/Kariqs/wagas-api/controllers"
	"github.com/Kariqs/wagas-api/initializers"
	"github.com/Kariqs/wagas-api/logger"
	"github.com/Kariqs/wagas-api/repository"
	"github.com/Kariqs/wagas-api/routes"
	"github.com/Kariqs/wagas-api/services"
	"github.com/Kariqs/wagas-api/sessions"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.ConnectToRedis()
	initializers.SyncDatabase()
}

func main() {
	logger.Initialize(os.Getenv("APP_ENV"))
	defer logger.Log.Sync()

	sessionStore := sessions.NewRedisStore(initializers.Redis, 24*time.Hour)

	authService := services.NewAuthService(repository.NewUserRepository(initializers.DB))
	orderService := services.NewOrderService(repository.NewOrderRepository(initializers.DB))
	menuRepo := repository.NewMenuRepository(initializers.DB)

	authController := controllers.NewAuthController(authService, sessionStore)
	cartController := controllers.NewCartController(sessionStore)
	orderController := controllers.NewOrderController(orderService, sessionStore)
	defaultController := controllers.NewDefaultController(menuRepo, authService)

	server := gin.New()
	server.Use(gin.Recovery(), logger.RequestLogger())
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server, defaultController, sessionStore)
	routes.AuthRoutes(server, authController)
	routes.CartRoutes(server, cartController, sessionStore)
	routes.OrderRoutes(server, orderController, sessionStore)
	server.Run()
}
