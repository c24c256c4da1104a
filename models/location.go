package models

import "time"

// Location is an office site. Users, assets and reports are scoped by it.
type Location struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Location model.
func (l Location) TableName() string {
	return "locations"
}

// LocationResponse is the public representation of a [Location].
type LocationResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// ToLocationResponse maps a [Location] to its public representation.
func ToLocationResponse(l Location) LocationResponse {
	return LocationResponse{ID: l.ID, Name: l.Name, Code: l.Code}
}
