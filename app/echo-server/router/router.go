package router

import (
	"myGreenReco/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRootRoutes(e *echo.Echo, handler *rest.RecommendationHandler) {
	e.GET("/", handler.Home)
	e.GET("/recommend", handler.Recommend)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations")
	reco.GET("", handler.RecommendAPI)
}
