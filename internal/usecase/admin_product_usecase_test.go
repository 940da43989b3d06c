package usecase_test

import (
	"context"
	"strings"
	"testing"

	"drumroast/internal/domain/model"
	repo "drumroast/internal/repository"
	"drumroast/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "drum-roasted-cashews", usecase.Slugify("Drum Roasted Cashews"))
	assert.Equal(t, "cream-onion-makhana", usecase.Slugify("Cream & Onion Makhana"))
	assert.Equal(t, "peri-peri", usecase.Slugify("  Peri Peri!  "))
	assert.Equal(t, "", usecase.Slugify("🥜🥜🥜"))
}

func TestAdminProductUsecase_Create_AutoSlug(t *testing.T) {
	ctx := context.Background()

	productRepo := new(ProductRepoMock)
	uc := usecase.NewAdminProductUsecase(productRepo, new(ImageStoreMock))

	productRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Slug == "honey-roasted-cashews"
	})).Return(model.Product{ID: "p1", Slug: "honey-roasted-cashews"}, nil)

	out, err := uc.Create(ctx, usecase.ProductInput{
		Name:     "Honey Roasted Cashews",
		Price:    549,
		Category: "Signature",
		IsActive: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "honey-roasted-cashews", out.Slug)
}

func TestAdminProductUsecase_Create_InvalidCategory(t *testing.T) {
	uc := usecase.NewAdminProductUsecase(new(ProductRepoMock), new(ImageStoreMock))

	_, err := uc.Create(context.Background(), usecase.ProductInput{
		Name:     "Mystery Snack",
		Price:    100,
		Category: "Seasonal",
	})
	assertErrContains(t, err, "invalid category")
}

func TestAdminProductUsecase_Create_NameRequired(t *testing.T) {
	uc := usecase.NewAdminProductUsecase(new(ProductRepoMock), new(ImageStoreMock))

	_, err := uc.Create(context.Background(), usecase.ProductInput{
		Name:     "   ",
		Price:    100,
		Category: "Daily",
	})
	assertErrContains(t, err, "name is required")
}

func TestAdminProductUsecase_Update_NotFound(t *testing.T) {
	productRepo := new(ProductRepoMock)
	uc := usecase.NewAdminProductUsecase(productRepo, new(ImageStoreMock))

	productRepo.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	_, err := uc.Update(context.Background(), "ghost", usecase.ProductInput{
		Name:     "Salted Peanuts",
		Price:    99,
		Category: "Daily",
	})
	assertErrContains(t, err, "not found")
}

func TestAdminProductUsecase_UploadImage(t *testing.T) {
	ctx := context.Background()

	productRepo := new(ProductRepoMock)
	images := new(ImageStoreMock)
	uc := usecase.NewAdminProductUsecase(productRepo, images)

	productRepo.On("FindByID", mock.Anything, "p1").Return(model.Product{ID: "p1"}, nil)
	images.On("Save", "cashews.jpg", mock.Anything).Return("/uploads/abc.jpg", nil)
	productRepo.On("SetImageURL", mock.Anything, "p1", "/uploads/abc.jpg").Return(nil)

	url, err := uc.UploadImage(ctx, "p1", "cashews.jpg", strings.NewReader("fake-bytes"))
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/abc.jpg", url)
}

func TestAdminProductUsecase_UploadImage_ProductNotFound(t *testing.T) {
	productRepo := new(ProductRepoMock)
	images := new(ImageStoreMock)
	uc := usecase.NewAdminProductUsecase(productRepo, images)

	productRepo.On("FindByID", mock.Anything, "ghost").Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.UploadImage(context.Background(), "ghost", "x.png", strings.NewReader(""))
	assertErrContains(t, err, "not found")

	images.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
