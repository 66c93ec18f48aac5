package httptransport

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
	"github.com/weiyuzhang/dealerhub/internal/repository"
	"github.com/weiyuzhang/dealerhub/internal/transport/http/handler"
	"github.com/weiyuzhang/dealerhub/internal/transport/http/middleware"
)

func NewRouter(
	logger *slog.Logger,
	carHandler *handler.CarHandler,
	dealerHandler *handler.DealerHandler,
	authHandler *handler.AuthHandler,
	userRepo repository.UserRepository,
	jwksURL string,
	hmacKey []byte,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	authMW := middleware.Auth(jwksURL, hmacKey)
	touchUser := middleware.TouchUser(userRepo, logger)

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/magic-link", authHandler.RequestMagicLink)
	auth.GET("/verify", authHandler.Verify)
	auth.GET("/me", authMW, touchUser, authHandler.Me)

	// Public catalog routes
	cars := api.Group("/cars")
	cars.GET("/:carId", carHandler.GetByID)
	cars.GET("/:carId/dealer", carHandler.GetDealer)

	// Protected dealer directory
	dealers := api.Group("/dealers", authMW, touchUser)
	dealers.GET("", dealerHandler.List)

	return r
}
