// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"fitburn-server/commons"
	"fitburn-server/handlers"
	"fitburn-server/middlewares"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	commons.Logger.Debug("Registering v1 routes")
	api_v1 := e.Group("/v1")
	api_v1.POST("/auth/signup", handlers.SignupHandler)
	api_v1.POST("/auth/verify", handlers.VerifySignupHandler)
	api_v1.POST("/auth/login", handlers.LoginHandler)
	api_v1.POST("/auth/logout", handlers.LogoutHandler, middlewares.VerifySessionMiddleware)
	api_v1.GET("/users/", handlers.GetUserHandler, middlewares.VerifySessionMiddleware)
	api_v1.POST("/predictions", handlers.CreatePredictionHandler, middlewares.VerifySessionMiddleware)
	api_v1.GET("/predictions", handlers.GetPredictionsHandler, middlewares.VerifySessionMiddleware)
	api_v1.GET("/predictions/trend", handlers.GetPredictionTrendHandler, middlewares.VerifySessionMiddleware)
	api_v1.GET("/predictions/summary", handlers.GetPredictionSummaryHandler, middlewares.VerifySessionMiddleware)
	commons.Logger.Info("v1 routes registered successfully")
}
