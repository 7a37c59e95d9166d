package handler

import (
	"net/http"

	"bitablog/internal/delivery/api/response"
	"bitablog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ArticleHandlerParams holds dependencies for ArticleHandler, injected by Fx.
type ArticleHandlerParams struct {
	fx.In

	ArticleUC usecase.ArticleUsecase
}

// ArticleHandler serves article pages and cache maintenance.
type ArticleHandler struct {
	articleUC usecase.ArticleUsecase
}

// NewArticleHandler is the constructor for ArticleHandler
func NewArticleHandler(params ArticleHandlerParams) *ArticleHandler {
	return &ArticleHandler{
		articleUC: params.ArticleUC,
	}
}

// ListArticles returns every article, newest first. Upstream failures yield an empty list.
func (h *ArticleHandler) ListArticles(c echo.Context) error {
	articles := h.articleUC.ListArticles(c.Request().Context())

	return response.Success(c, http.StatusOK, articles)
}

// GetArticle returns an article with its comments.
func (h *ArticleHandler) GetArticle(c echo.Context) error {
	detail, err := h.articleUC.GetArticleDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// ShareQRCode returns a PNG QR code pointing at the article.
func (h *ArticleHandler) ShareQRCode(c echo.Context) error {
	id := c.Param("id")

	png, err := h.articleUC.ShareQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, "article-"+id+".png", png)
}

// ClearCache drops the memoized records and token. Only allowed in debug mode.
func (h *ArticleHandler) ClearCache(c echo.Context) error {
	if err := h.articleUC.ClearCache(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "快取已清除"})
}
