package models

import "time"

// Category groups assets and provides the prefix of their asset codes.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// Code is the asset code prefix, e.g. "LA" for laptops.
	Code      string    `json:"code"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}

// CategoryRequest is the payload for creating a category.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,notblank,max=128"`
	Code string `json:"code" validate:"required,alpha,min=2,max=3"`
}

// CategoryResponse is the public representation of a [Category].
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// ToCategoryResponse maps a [Category] to its public representation.
func ToCategoryResponse(c Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Code: c.Code}
}
