package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/store"
	"github.com/MKhiriev/asset-management/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCategoryService_CreateCategory_Success(t *testing.T) {
	m, _ := newRepoMocks(t)
	svc := NewCategoryService(m.categories, logger.Nop())
	ctx := testContext()

	gomock.InOrder(
		m.categories.EXPECT().FindByName(ctx, "Monitor").Return(models.Category{}, store.ErrNotFound),
		m.categories.EXPECT().FindByCode(ctx, "MO").Return(models.Category{}, store.ErrNotFound),
		m.categories.EXPECT().Create(ctx, models.Category{Name: "Monitor", Code: "MO"}).DoAndReturn(
			func(_ context.Context, c models.Category) (models.Category, error) {
				c.ID = 9
				return c, nil
			},
		),
	)

	resp, err := svc.CreateCategory(ctx, models.CategoryRequest{Name: " Monitor ", Code: "mo"})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryResponse{ID: 9, Name: "Monitor", Code: "MO"}, resp)
}

func TestCategoryService_CreateCategory_Duplicates(t *testing.T) {
	t.Run("name", func(t *testing.T) {
		m, _ := newRepoMocks(t)
		svc := NewCategoryService(m.categories, logger.Nop())
		ctx := testContext()

		m.categories.EXPECT().FindByName(ctx, "Laptop").Return(laptops, nil)

		_, err := svc.CreateCategory(ctx, models.CategoryRequest{Name: "Laptop", Code: "LP"})
		assert.ErrorIs(t, err, ErrCategoryNameExists)
	})

	t.Run("code", func(t *testing.T) {
		m, _ := newRepoMocks(t)
		svc := NewCategoryService(m.categories, logger.Nop())
		ctx := testContext()

		m.categories.EXPECT().FindByName(ctx, "Laptop Bag").Return(models.Category{}, store.ErrNotFound)
		m.categories.EXPECT().FindByCode(ctx, "LA").Return(laptops, nil)

		_, err := svc.CreateCategory(ctx, models.CategoryRequest{Name: "Laptop Bag", Code: "LA"})
		assert.ErrorIs(t, err, ErrCategoryCodeExists)
	})

	t.Run("unique violation on insert", func(t *testing.T) {
		m, _ := newRepoMocks(t)
		svc := NewCategoryService(m.categories, logger.Nop())
		ctx := testContext()

		m.categories.EXPECT().FindByName(ctx, "Mouse").Return(models.Category{}, store.ErrNotFound)
		m.categories.EXPECT().FindByCode(ctx, "MS").Return(models.Category{}, store.ErrNotFound)
		m.categories.EXPECT().Create(ctx, gomock.Any()).Return(models.Category{}, store.ErrCategoryCodeExists)

		_, err := svc.CreateCategory(ctx, models.CategoryRequest{Name: "Mouse", Code: "MS"})
		assert.ErrorIs(t, err, ErrCategoryCodeExists)
	})
}

func TestCategoryService_GetAllCategories(t *testing.T) {
	m, _ := newRepoMocks(t)
	svc := NewCategoryService(m.categories, logger.Nop())
	ctx := testContext()

	m.categories.EXPECT().FindAll(ctx).Return([]models.Category{laptops}, nil)

	got, err := svc.GetAllCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.CategoryResponse{{ID: 3, Name: "Laptop", Code: "LA"}}, got)
}

func TestLocationService_GetAllLocations(t *testing.T) {
	m, _ := newRepoMocks(t)
	svc := NewLocationService(m.locations, logger.Nop())
	ctx := testContext()

	m.locations.EXPECT().FindAll(ctx).Return([]models.Location{hcm, hn}, nil)

	got, err := svc.GetAllLocations(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "HN", got[1].Code)
}

func TestReportService_GetReport(t *testing.T) {
	m, _ := newRepoMocks(t)
	svc := NewReportService(m.users, m.reports, logger.Nop())
	ctx := testContext()

	row := models.CategoryReport{CategoryID: 3, Category: "Laptop", Total: 5, Assigned: 2, Available: 3}

	m.expectAdmin()
	m.reports.EXPECT().CategoryReport(ctx, hcm.ID, page(1, 20)).Return([]models.CategoryReport{row}, int64(1), nil)

	resp, err := svc.GetReport(ctx, currentAdmin, page(1, 20))
	require.NoError(t, err)
	assert.Equal(t, []models.CategoryReport{row}, resp.Data)
	assert.Equal(t, int64(1), resp.Total)
}

func TestReportService_GetReport_UnknownSort(t *testing.T) {
	m, _ := newRepoMocks(t)
	svc := NewReportService(m.users, m.reports, logger.Nop())
	ctx := testContext()

	p := models.PageRequest{PageNumber: 1, PageSize: 20, OrderBy: "price"}

	m.expectAdmin()
	m.reports.EXPECT().CategoryReport(ctx, hcm.ID, p).Return(nil, int64(0), store.ErrInvalidSortField)

	_, err := svc.GetReport(ctx, currentAdmin, p)
	assert.ErrorIs(t, err, ErrInvalidPageable)
}
