package usecase_test

import (
	"context"
	"testing"
	"time"

	"drumroast/internal/domain/model"
	repo "drumroast/internal/repository"
	"drumroast/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOfferUsecase_ListCurrent_FiltersWindowAndFlag(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	offerRepo := new(OfferRepoMock)
	uc := usecase.NewOfferUsecase(offerRepo)

	offers := []model.Offer{
		{ID: "o1", Title: "Festive Sale", IsActive: true, StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour)},
		{ID: "o2", Title: "Expired", IsActive: true, StartDate: now.Add(-48 * time.Hour), EndDate: now.Add(-24 * time.Hour)},
		{ID: "o3", Title: "Upcoming", IsActive: true, StartDate: now.Add(24 * time.Hour), EndDate: now.Add(48 * time.Hour)},
		{ID: "o4", Title: "Disabled", IsActive: false, StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour)},
	}
	offerRepo.On("ListAll", mock.Anything).Return(offers, nil)

	out, err := uc.ListCurrent(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "Festive Sale", out.Items[0].Title)
}

func TestOfferUsecase_Create_InvalidDiscount(t *testing.T) {
	uc := usecase.NewOfferUsecase(new(OfferRepoMock))

	now := time.Now()
	_, err := uc.Create(context.Background(), usecase.CreateOfferInput{
		Title:              "Bad Deal",
		DiscountPercentage: 0,
		StartDate:          now,
		EndDate:            now.Add(time.Hour),
	})
	assertErrContains(t, err, "invalid discount_percentage")
}

func TestOfferUsecase_Create_EndBeforeStart(t *testing.T) {
	uc := usecase.NewOfferUsecase(new(OfferRepoMock))

	now := time.Now()
	_, err := uc.Create(context.Background(), usecase.CreateOfferInput{
		Title:              "Backwards",
		DiscountPercentage: 10,
		StartDate:          now,
		EndDate:            now.Add(-time.Hour),
	})
	assertErrContains(t, err, "end_date must be after start_date")
}

func TestOfferUsecase_Create_EndEqualsStart(t *testing.T) {
	uc := usecase.NewOfferUsecase(new(OfferRepoMock))

	// 期間ゼロのオファーは作れない
	now := time.Now()
	_, err := uc.Create(context.Background(), usecase.CreateOfferInput{
		Title:              "Instant",
		DiscountPercentage: 10,
		StartDate:          now,
		EndDate:            now,
	})
	assertErrContains(t, err, "end_date must be after start_date")
}

func TestOfferUsecase_Create_EmptyProductIDBecomesNil(t *testing.T) {
	offerRepo := new(OfferRepoMock)
	uc := usecase.NewOfferUsecase(offerRepo)

	now := time.Now()
	offerRepo.On("Create", mock.Anything, mock.MatchedBy(func(o model.Offer) bool {
		return o.ProductID == nil
	})).Return(model.Offer{ID: "o1"}, nil)

	_, err := uc.Create(context.Background(), usecase.CreateOfferInput{
		Title:              "Store-wide",
		DiscountPercentage: 15,
		ProductID:          "  ",
		StartDate:          now,
		EndDate:            now.Add(time.Hour),
		IsActive:           true,
	})
	assert.NoError(t, err)
}

func TestOfferUsecase_SetActive_NotFound(t *testing.T) {
	offerRepo := new(OfferRepoMock)
	uc := usecase.NewOfferUsecase(offerRepo)

	offerRepo.On("SetActive", mock.Anything, "ghost", true).Return(repo.ErrNotFound)

	err := uc.SetActive(context.Background(), "ghost", true)
	assertErrContains(t, err, "not found")
}
