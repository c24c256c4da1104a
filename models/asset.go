package models

import (
	"fmt"
	"time"
)

// Asset is a tracked piece of equipment.
type Asset struct {
	ID int64 `json:"id"`

	// AssetCode is the category code followed by a six digit sequence
	// number inside the category, e.g. LA000001.
	AssetCode     string     `json:"assetCode"`
	Name          string     `json:"name"`
	Specification string     `json:"specification"`
	InstalledDate Date       `json:"installedDate"`
	State         AssetState `json:"state"`

	Category Category `json:"category"`
	Location Location `json:"location"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Asset model.
func (a Asset) TableName() string {
	return "assets"
}

// GenerateAssetCode builds the asset code for the seq-th asset of a category.
func GenerateAssetCode(categoryCode string, seq int64) string {
	return fmt.Sprintf("%s%06d", categoryCode, seq)
}

// AssetRequest is the payload for creating an asset.
type AssetRequest struct {
	Name          string     `json:"name" validate:"required,max=256"`
	CategoryID    int64      `json:"categoryId" validate:"required,gt=0"`
	Specification string     `json:"specification" validate:"required,max=1024"`
	InstalledDate Date       `json:"installedDate" validate:"required"`
	State         AssetState `json:"state" validate:"required,oneof=AVAILABLE NOT_AVAILABLE"`
}

// AssetUpdateRequest is the payload for editing an asset.
type AssetUpdateRequest struct {
	Name          string     `json:"name" validate:"required,max=256"`
	Specification string     `json:"specification" validate:"required,max=1024"`
	InstalledDate Date       `json:"installedDate" validate:"required"`
	State         AssetState `json:"state" validate:"required,oneof=AVAILABLE NOT_AVAILABLE WAITING_FOR_RECYCLING RECYCLED"`
	Version       *int64     `json:"version" validate:"required"`
}

// AssetSearch holds the query of an asset listing.
type AssetSearch struct {
	PageRequest
	SearchString string       `json:"searchString"`
	States       []AssetState `json:"states"`
	CategoryIDs  []int64      `json:"categoryIds"`
}

// AssetResponse is the public representation of an [Asset].
type AssetResponse struct {
	ID            int64            `json:"id"`
	AssetCode     string           `json:"assetCode"`
	Name          string           `json:"name"`
	Specification string           `json:"specification"`
	InstalledDate Date             `json:"installedDate"`
	State         AssetState       `json:"state"`
	Category      CategoryResponse `json:"category"`
	Location      LocationResponse `json:"location"`
	Version       int64            `json:"version"`
}

// ToAssetResponse maps an [Asset] to its public representation.
func ToAssetResponse(a Asset) AssetResponse {
	return AssetResponse{
		ID:            a.ID,
		AssetCode:     a.AssetCode,
		Name:          a.Name,
		Specification: a.Specification,
		InstalledDate: a.InstalledDate,
		State:         a.State,
		Category:      ToCategoryResponse(a.Category),
		Location:      ToLocationResponse(a.Location),
		Version:       a.Version,
	}
}
