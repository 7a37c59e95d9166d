// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bitablog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ArticleHandler *handler.ArticleHandler
	CommentHandler *handler.CommentHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	articleHandler *handler.ArticleHandler
	commentHandler *handler.CommentHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		articleHandler: params.ArticleHandler,
		commentHandler: params.CommentHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/clear-cache", r.articleHandler.ClearCache)

	apiV1 := e.Group("/api/v1")

	articlesGroup := apiV1.Group("/articles")
	{
		articlesGroup.GET("", r.articleHandler.ListArticles)
		articlesGroup.GET("/:id", r.articleHandler.GetArticle)
		articlesGroup.GET("/:id/qrcode", r.articleHandler.ShareQRCode)
		articlesGroup.GET("/:id/comments", r.commentHandler.ListComments)
		articlesGroup.POST("/:id/comments", r.commentHandler.CreateComment)
	}
}
