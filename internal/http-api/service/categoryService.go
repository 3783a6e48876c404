package service

import (
	"context"

	"bloghub/internal/http-api/dto"
	"bloghub/internal/http-api/repository"
)

type CategoryService interface {
	List() ([]dto.CategoryResponse, error)
}

type categoryService struct {
	categoryRepo *repository.CategoryRepo
}

func NewCategoryService(categoryRepo *repository.CategoryRepo) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) List() ([]dto.CategoryResponse, error) {
	ctx := context.Background()

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, *dto.FromModelToCategoryResponse(&categories[i]))
	}
	return responses, nil
}
