package handler

import (
	"net/http"

	"drumroast/internal/config"
	"drumroast/internal/middleware"
	"drumroast/internal/repository"
	"drumroast/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminProductHandler struct {
	uc *usecase.AdminProductUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.AdminProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

type ProductRequest struct {
	Name                string `json:"name"`
	Slug                string `json:"slug"`
	Description         string `json:"description"`
	Price               int64  `json:"price"`
	OriginalPrice       *int64 `json:"original_price"`
	Category            string `json:"category"`
	Subcategory         string `json:"subcategory"`
	Emoji               string `json:"emoji"`
	Ingredients         string `json:"ingredients"`
	Nutrition           string `json:"nutrition"`
	StorageInstructions string `json:"storage_instructions"`
	Packaging           string `json:"packaging"`
	IsFeatured          bool   `json:"is_featured"`
	IsActive            bool   `json:"is_active"`
}

type ImageUploadResponse struct {
	ImageURL string `json:"image_url"`
}

func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	admin := e.Group("/admin/products")
	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.TokenVersionGuard(userRepo))
	admin.Use(middleware.AdminRoleGuard())

	admin.GET("", h.list)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
	admin.POST("/:id/image", h.uploadImage)
}

func (h *AdminProductHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), toProductInput(req))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *AdminProductHandler) update(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Update(c.Request().Context(), c.Param("id"), toProductInput(req))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "product deleted"})
}

// multipartの"image"フィールドを保存して公開URLを返す
func (h *AdminProductHandler) uploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "image file is required"})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid image"})
	}
	defer src.Close()

	url, err := h.uc.UploadImage(c.Request().Context(), c.Param("id"), file.Filename, src)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, ImageUploadResponse{ImageURL: url})
}

func toProductInput(req ProductRequest) usecase.ProductInput {
	return usecase.ProductInput{
		Name:                req.Name,
		Slug:                req.Slug,
		Description:         req.Description,
		Price:               req.Price,
		OriginalPrice:       req.OriginalPrice,
		Category:            req.Category,
		Subcategory:         req.Subcategory,
		Emoji:               req.Emoji,
		Ingredients:         req.Ingredients,
		Nutrition:           req.Nutrition,
		StorageInstructions: req.StorageInstructions,
		Packaging:           req.Packaging,
		IsFeatured:          req.IsFeatured,
		IsActive:            req.IsActive,
	}
}
