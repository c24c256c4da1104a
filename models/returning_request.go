package models

import "time"

// ReturningRequest tracks the hand-back of an assigned asset until an
// admin confirms it.
type ReturningRequest struct {
	ID int64 `json:"id"`

	Assignment  Assignment `json:"assignment"`
	RequestedBy User       `json:"requestedBy"`
	// AcceptedBy is the zero User until the request is completed.
	AcceptedBy User `json:"acceptedBy"`

	// ReturnedDate is zero until the request is completed.
	ReturnedDate Date                  `json:"returnedDate"`
	State        ReturningRequestState `json:"state"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the ReturningRequest model.
func (r ReturningRequest) TableName() string {
	return "returning_requests"
}

// ReturningRequestSearch holds the query of a returning request listing.
type ReturningRequestSearch struct {
	PageRequest
	SearchString string                  `json:"searchString"`
	States       []ReturningRequestState `json:"states"`
	ReturnedDate *Date                   `json:"returnedDate"`
}

// ReturningRequestResponse is the public representation of a [ReturningRequest].
type ReturningRequestResponse struct {
	ID           int64                 `json:"id"`
	AssignmentID int64                 `json:"assignmentId"`
	AssetCode    string                `json:"assetCode"`
	AssetName    string                `json:"assetName"`
	RequestedBy  string                `json:"requestedBy"`
	AcceptedBy   string                `json:"acceptedBy,omitempty"`
	AssignedDate Date                  `json:"assignedDate"`
	ReturnedDate Date                  `json:"returnedDate"`
	State        ReturningRequestState `json:"state"`
	Version      int64                 `json:"version"`
}

// ToReturningRequestResponse maps a [ReturningRequest] to its public representation.
func ToReturningRequestResponse(r ReturningRequest) ReturningRequestResponse {
	return ReturningRequestResponse{
		ID:           r.ID,
		AssignmentID: r.Assignment.ID,
		AssetCode:    r.Assignment.Asset.AssetCode,
		AssetName:    r.Assignment.Asset.Name,
		RequestedBy:  r.RequestedBy.Username,
		AcceptedBy:   r.AcceptedBy.Username,
		AssignedDate: r.Assignment.AssignedDate,
		ReturnedDate: r.ReturnedDate,
		State:        r.State,
		Version:      r.Version,
	}
}
