package handler

import (
	"net/http"
	"time"

	"drumroast/internal/config"
	"drumroast/internal/middleware"
	"drumroast/internal/repository"
	"drumroast/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminOfferHandler struct {
	uc *usecase.OfferUsecase
}

// DI
func NewAdminOfferHandler(uc *usecase.OfferUsecase) *AdminOfferHandler {
	return &AdminOfferHandler{uc: uc}
}

type OfferRequest struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	DiscountPercentage int64  `json:"discount_percentage"`
	ProductID          string `json:"product_id"`
	StartDate          string `json:"start_date"` // RFC3339
	EndDate            string `json:"end_date"`   // RFC3339
	IsActive           bool   `json:"is_active"`
}

type OfferActiveRequest struct {
	IsActive bool `json:"is_active"`
}

func (h *AdminOfferHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	admin := e.Group("/admin/offers")
	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.TokenVersionGuard(userRepo))
	admin.Use(middleware.AdminRoleGuard())

	admin.GET("", h.list)
	admin.POST("", h.create)
	admin.PATCH("/:id/active", h.setActive)
	admin.DELETE("/:id", h.delete)
}

func (h *AdminOfferHandler) list(c echo.Context) error {
	out, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminOfferHandler) create(c echo.Context) error {
	var req OfferRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid start_date"})
	}

	end, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid end_date"})
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CreateOfferInput{
		Title:              req.Title,
		Description:        req.Description,
		DiscountPercentage: req.DiscountPercentage,
		ProductID:          req.ProductID,
		StartDate:          start,
		EndDate:            end,
		IsActive:           req.IsActive,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *AdminOfferHandler) setActive(c echo.Context) error {
	var req OfferActiveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.SetActive(c.Request().Context(), c.Param("id"), req.IsActive); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "offer updated"})
}

func (h *AdminOfferHandler) delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "offer deleted"})
}
