package handler

import (
	"net/http"

	"drumroast/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /offers の公開API（表示対象のオファーのみ）
type OfferHandler struct {
	uc *usecase.OfferUsecase
}

// DI
func NewOfferHandler(uc *usecase.OfferUsecase) *OfferHandler {
	return &OfferHandler{uc: uc}
}

func (h *OfferHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/offers", h.list)
}

func (h *OfferHandler) list(c echo.Context) error {
	out, err := h.uc.ListCurrent(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
