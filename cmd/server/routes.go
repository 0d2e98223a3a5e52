package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"insure-dw.backend/internal/interfaces/http/handlers"
	"insure-dw.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	userHandler      *handlers.UserHandler
	quoteHandler     *handlers.QuoteHandler
	policyHandler    *handlers.PolicyHandler
	paymentHandler   *handlers.PaymentHandler
	analyticsHandler *handlers.AnalyticsHandler
	featureHandler   *handlers.FeatureStoreHandler
	openaiHandler    *handlers.OpenAIHandler
}

func registerMiddleware(r *gin.Engine) {
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware())
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("", d.userHandler.CreateUser)
			users.GET("", d.userHandler.ListUsers)
			users.GET("/:id", d.userHandler.GetUser)
			users.PUT("/:id", d.userHandler.UpdateUser)
			users.DELETE("/:id", d.userHandler.DeleteUser)
			users.GET("/:id/quotes", d.userHandler.ListUserQuotes)
			users.GET("/:id/policies", d.userHandler.ListUserPolicies)
		}

		quotes := v1.Group("/quotes")
		{
			quotes.POST("", d.quoteHandler.CreateQuote)
			quotes.GET("", d.quoteHandler.ListQuotes)
			quotes.GET("/bindable", d.quoteHandler.ListBindableQuotes)
			quotes.GET("/:id", d.quoteHandler.GetQuote)
			quotes.PATCH("/:id", d.quoteHandler.BindQuote)
		}

		policies := v1.Group("/policies")
		{
			policies.POST("", d.policyHandler.CreatePolicy)
			policies.GET("", d.policyHandler.ListPolicies)
			policies.GET("/:id", d.policyHandler.GetPolicy)
			policies.DELETE("/:id", d.policyHandler.DeletePolicy)
			policies.GET("/:id/payments", d.policyHandler.ListPolicyPayments)
		}

		payments := v1.Group("/payments")
		{
			payments.POST("", d.paymentHandler.CreatePayment)
			payments.GET("", d.paymentHandler.ListPayments)
			payments.GET("/:id", d.paymentHandler.GetPayment)
		}

		analytics := v1.Group("/analytics")
		{
			analytics.GET("/stats", d.analyticsHandler.GeneralStats)
			analytics.GET("/payment-stats", d.analyticsHandler.PaymentTypeStats)
			analytics.GET("/user-stats", d.analyticsHandler.UserStats)
			analytics.GET("/quote-stats", d.analyticsHandler.QuoteStats)
			analytics.GET("/policy-stats", d.analyticsHandler.PolicyStats)
		}

		features := v1.Group("/features")
		{
			features.POST("/inference", d.featureHandler.ComputeFeature)
			features.POST("/training", d.featureHandler.BatchComputeFeatures)
			features.POST("/extract", d.featureHandler.ExtractAllFeatures)
			features.GET("/discovery", d.featureHandler.ListFeatureMetadata)
		}

		openai := v1.Group("/openai")
		{
			openai.POST("/set-key", d.openaiHandler.SetAPIKey)
			openai.GET("/status", d.openaiHandler.KeyStatus)
			openai.DELETE("/key", d.openaiHandler.DeleteAPIKey)
			openai.GET("/schema", d.openaiHandler.Schema)
			openai.POST("/convert", d.openaiHandler.ConvertQuery)
			openai.POST("/query", d.openaiHandler.NaturalQuery)
			openai.POST("/sql", d.openaiHandler.ExecuteSQL)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
