package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/mberkut/dishpatch/internal/server/http/handlers"
	"github.com/mberkut/dishpatch/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. The SSE stream
// endpoints are excluded from gzip so events are not held back in the
// compressor's buffer.
func Setup(facade handlers.DeliveryFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPathsRegexs([]string{`/stream$`, `/streams/`})))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	streamHandler := handlers.NewStreamHandler(facade)
	restaurantHandler := handlers.NewRestaurantHandler(facade)

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/orders", orderHandler.Create)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/:id", orderHandler.Get)
	authed.PATCH("/orders/:id", orderHandler.Edit)
	authed.POST("/orders/:id/take", orderHandler.Take)
	authed.GET("/orders/:id/stream", streamHandler.OrderUpdates)
	authed.GET("/streams/pending-orders", streamHandler.PendingOrders)
	authed.GET("/streams/cooked-orders", streamHandler.CookedOrders)
	authed.POST("/restaurants", restaurantHandler.Create)
	authed.POST("/restaurants/:id/promote", restaurantHandler.Promote)
	authed.POST("/dishes", restaurantHandler.CreateDish)

	return engine
}
