package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"makershop.backend/internal/interfaces/http/handlers"
	"makershop.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	builderHandler    *handlers.BuilderHandler
	storefrontHandler *handlers.StorefrontHandler
	catalogHandler    *handlers.CatalogHandler
	productHandler    *handlers.ProductHandler
	categoryHandler   *handlers.CategoryHandler
	hoursHandler      *handlers.HoursHandler
	adminHandler      *handlers.AdminHandler
	authMiddleware    gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Session-Id, X-Request-ID, Idempotency-Key")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "makershop-backend",
			"version": "0.3.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", middleware.MetricsHandler())
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
		}

		// Public storefront pages
		v1.GET("/storefronts/:slug", d.storefrontHandler.GetPage)

		// Section catalog and templates (public read)
		v1.GET("/sections/catalog", d.catalogHandler.ListSections)
		templates := v1.Group("/templates")
		{
			templates.GET("", d.catalogHandler.ListTemplates)
			templates.GET("/:id", d.catalogHandler.GetTemplate)
		}

		// Builder routes (protected)
		builder := v1.Group("/builder")
		builder.Use(d.authMiddleware)
		{
			builder.GET("", d.builderHandler.GetState)
			builder.POST("/save", middleware.IdempotencyMiddleware(), d.builderHandler.Save)
			builder.POST("/templates/:id/apply", d.builderHandler.ApplyTemplate)
			builder.GET("/preview/:shopId", d.builderHandler.Preview)
		}

		// Product routes (protected)
		products := v1.Group("/products")
		products.Use(d.authMiddleware)
		{
			products.POST("", d.productHandler.CreateProduct)
			products.GET("", d.productHandler.ListProducts)
			products.PUT("/:id", d.productHandler.UpdateProduct)
			products.DELETE("/:id", d.productHandler.DeleteProduct)
		}

		// Category routes (protected)
		categories := v1.Group("/categories")
		categories.Use(d.authMiddleware)
		{
			categories.POST("", d.categoryHandler.CreateCategory)
			categories.GET("", d.categoryHandler.ListCategories)
			categories.PUT("/:id", d.categoryHandler.UpdateCategory)
			categories.DELETE("/:id", d.categoryHandler.DeleteCategory)
		}

		// Pickup hours routes (protected)
		hours := v1.Group("/hours")
		hours.Use(d.authMiddleware)
		{
			hours.GET("", d.hoursHandler.ListHours)
			hours.PUT("", d.hoursHandler.ReplaceHours)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.GET("/shops", d.adminHandler.ListShops)
			admin.GET("/stats", d.adminHandler.GetStats)
			admin.PUT("/shops/:id/visibility", d.adminHandler.SetShopVisibility)
		}
	}
}
