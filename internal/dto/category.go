package dto

import (
	"time"

	"spendtrack/internal/models"

	"github.com/google/uuid"
)

// CreateCategoryRequest is the payload for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// CategoryResponse is the wire representation of a category
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func ToCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}
}

func ToCategoryListResponse(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, ToCategoryResponse(&categories[i]))
	}
	return responses
}

// CreateTagRequest is the payload for creating a tag
type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// TagResponse is the wire representation of a tag
type TagResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func ToTagResponse(tag *models.Tag) TagResponse {
	return TagResponse{
		ID:        tag.ID,
		Name:      tag.Name,
		CreatedAt: tag.CreatedAt,
	}
}

func ToTagListResponse(tags []models.Tag) []TagResponse {
	responses := make([]TagResponse, 0, len(tags))
	for i := range tags {
		responses = append(responses, ToTagResponse(&tags[i]))
	}
	return responses
}
