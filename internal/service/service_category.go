package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/store"
	"github.com/MKhiriev/asset-management/models"
)

type categoryService struct {
	categoryRepository store.CategoryRepository
	logger             *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{categoryRepository: categoryRepository, logger: logger}
}

func (s *categoryService) GetAllCategories(ctx context.Context) ([]models.CategoryResponse, error) {
	categories, err := s.categoryRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, models.ToCategoryResponse(category))
	}

	return result, nil
}

// CreateCategory stores a category with an upper-cased prefix. Names and
// prefixes are unique.
func (s *categoryService) CreateCategory(ctx context.Context, request models.CategoryRequest) (models.CategoryResponse, error) {
	log := logger.FromContext(ctx)

	category := models.Category{
		Name: strings.TrimSpace(request.Name),
		Code: strings.ToUpper(strings.TrimSpace(request.Code)),
	}

	if err := s.ensureFree(ctx, s.categoryRepository.FindByName, category.Name, ErrCategoryNameExists); err != nil {
		return models.CategoryResponse{}, err
	}
	if err := s.ensureFree(ctx, s.categoryRepository.FindByCode, category.Code, ErrCategoryCodeExists); err != nil {
		return models.CategoryResponse{}, err
	}

	created, err := s.categoryRepository.Create(ctx, category)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrCategoryNameExists):
			return models.CategoryResponse{}, ErrCategoryNameExists
		case errors.Is(err, store.ErrCategoryCodeExists):
			return models.CategoryResponse{}, ErrCategoryCodeExists
		}
		log.Err(err).Str("func", "*categoryService.CreateCategory").Str("name", category.Name).Msg("failed to create category")
		return models.CategoryResponse{}, err
	}

	return models.ToCategoryResponse(created), nil
}

func (s *categoryService) ensureFree(ctx context.Context, find func(context.Context, string) (models.Category, error), value string, taken error) error {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return taken
	case errors.Is(err, store.ErrNotFound):
		return nil
	default:
		return err
	}
}
