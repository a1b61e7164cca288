package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf-backend/internal/shared/middleware"
	"bookshelf-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.GET("/", indexHandler)
	router.GET("/health", healthCheckHandler(c))

	setupAuthorRoutes(router, c)
	setupBookRoutes(router, c)
	setupPublisherRoutes(router, c)

	return router
}

func setupAuthorRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/authors/:id", c.AuthorHandler.GetByID)
	router.GET("/authors/:id/publishers", c.AuthorHandler.ListPublishers)
	router.POST("/authors", c.AuthorHandler.Create)

	// Singular on purpose: existing clients call DELETE /author/:id.
	router.DELETE("/author/:id", c.AuthorHandler.Delete)
}

func setupBookRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/books", c.BookHandler.List)
	router.POST("/books", c.BookHandler.Create)
}

func setupPublisherRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/publishers/:id", c.PublisherHandler.GetByID)
	router.GET("/publishers/:id/authors", c.PublisherHandler.ListAuthors)
	router.POST("/publishers", c.PublisherHandler.Create)
}

func indexHandler(c *gin.Context) {
	c.String(http.StatusOK, "Hello world")
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		dbStatus := "up"
		cacheStatus := "up"

		if err := c.DB.Ping(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "down"
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "down"
		}

		ctx.JSON(status, gin.H{
			"status":   http.StatusText(status),
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
