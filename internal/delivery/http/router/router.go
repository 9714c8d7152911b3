// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blogapi/internal/delivery/http/middleware"
	"blogapi/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	ArticleHandler  *handler.ArticleHandler
	CategoryHandler *handler.CategoryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	articleHandler  *handler.ArticleHandler
	categoryHandler *handler.CategoryHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		articleHandler:  params.ArticleHandler,
		categoryHandler: params.CategoryHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Article reads are public; writes require a bearer token. Updates are
	// POSTed to the article path, a long-standing client contract.
	articleGroup := e.Group("/articles")
	{
		articleGroup.GET("", r.articleHandler.ListArticles)
		articleGroup.GET("/latest", r.articleHandler.GetLatestArticle)
		articleGroup.GET("/:id", r.articleHandler.GetArticle)
		articleGroup.POST("", r.articleHandler.CreateArticle, r.authMiddleware.Authenticate)
		articleGroup.POST("/:id", r.articleHandler.UpdateArticle, r.authMiddleware.Authenticate)
		articleGroup.DELETE("/:id", r.articleHandler.DeleteArticle, r.authMiddleware.Authenticate)
	}

	// Category and user management carry no authentication.
	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", r.categoryHandler.ListCategories)
		categoryGroup.GET("/:id", r.categoryHandler.GetCategory)
		categoryGroup.POST("", r.categoryHandler.CreateCategory)
		categoryGroup.POST("/:id", r.categoryHandler.UpdateCategory)
		categoryGroup.DELETE("/:id", r.categoryHandler.DeleteCategory)
	}

	userGroup := e.Group("/users")
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.POST("", r.userHandler.CreateUser)
	}
}
