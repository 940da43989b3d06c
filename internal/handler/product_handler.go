package handler

import (
	"net/http"

	"drumroast/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /products の公開API
type ProductHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewProductHandler(uc *usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 公開カタログのルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/featured", h.featured)
	e.GET("/products/:slug", h.detail)
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Category: c.QueryParam("category"),
		Q:        c.QueryParam("q"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) featured(c echo.Context) error {
	out, err := h.uc.ListFeatured(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	key := c.Param("slug")

	out, err := h.uc.GetProductBySlug(c.Request().Context(), key)
	if err != nil {
		// slugで無ければUUIDとしても引く（IDベースの旧リンク互換）
		if he, ok := usecase.AsHTTPError(err); ok && he.Status == http.StatusNotFound {
			out, err = h.uc.GetProductByID(c.Request().Context(), key)
		}
		if err != nil {
			return writeError(c, err)
		}
	}

	return c.JSON(http.StatusOK, out)
}
