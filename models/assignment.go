package models

import "time"

// Assignment links one asset to one user for a period of use.
type Assignment struct {
	ID int64 `json:"id"`

	Asset    Asset `json:"asset"`
	AssignTo User  `json:"assignTo"`
	AssignBy User  `json:"assignBy"`

	AssignedDate Date            `json:"assignedDate"`
	Note         string          `json:"note"`
	State        AssignmentState `json:"state"`

	// ReturningRequestID is set once a returning request exists.
	ReturningRequestID *int64 `json:"returningRequestId,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Assignment model.
func (a Assignment) TableName() string {
	return "assignments"
}

// AssignmentRequest is the payload for creating an assignment.
type AssignmentRequest struct {
	AssetID      int64  `json:"assetId" validate:"required,gt=0"`
	UserID       int64  `json:"userId" validate:"required,gt=0"`
	AssignedDate Date   `json:"assignedDate" validate:"required"`
	Note         string `json:"note" validate:"max=512"`
}

// AssignmentUpdateRequest is the payload for editing a waiting assignment.
type AssignmentUpdateRequest struct {
	AssetID      int64  `json:"assetId" validate:"required,gt=0"`
	UserID       int64  `json:"userId" validate:"required,gt=0"`
	AssignedDate Date   `json:"assignedDate" validate:"required"`
	Note         string `json:"note" validate:"max=512"`
	Version      *int64 `json:"version" validate:"required"`
}

// AssignmentReply is the assignee's answer to a waiting assignment.
type AssignmentReply struct {
	Accepted *bool `json:"accepted" validate:"required"`
}

// AssignmentSearch holds the query of an assignment listing.
type AssignmentSearch struct {
	PageRequest
	SearchString string            `json:"searchString"`
	States       []AssignmentState `json:"states"`
	AssignedDate *Date             `json:"assignedDate"`
}

// AssignmentResponse is the public representation of an [Assignment].
type AssignmentResponse struct {
	ID                 int64           `json:"id"`
	AssetID            int64           `json:"assetId"`
	AssetCode          string          `json:"assetCode"`
	AssetName          string          `json:"assetName"`
	Specification      string          `json:"specification"`
	AssignToID         int64           `json:"assignToId"`
	AssignTo           string          `json:"assignTo"`
	AssignBy           string          `json:"assignBy"`
	AssignedDate       Date            `json:"assignedDate"`
	Note               string          `json:"note"`
	State              AssignmentState `json:"state"`
	ReturningRequestID *int64          `json:"returningRequestId,omitempty"`
	Version            int64           `json:"version"`
}

// ToAssignmentResponse maps an [Assignment] to its public representation.
func ToAssignmentResponse(a Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:                 a.ID,
		AssetID:            a.Asset.ID,
		AssetCode:          a.Asset.AssetCode,
		AssetName:          a.Asset.Name,
		Specification:      a.Asset.Specification,
		AssignToID:         a.AssignTo.ID,
		AssignTo:           a.AssignTo.Username,
		AssignBy:           a.AssignBy.Username,
		AssignedDate:       a.AssignedDate,
		Note:               a.Note,
		State:              a.State,
		ReturningRequestID: a.ReturningRequestID,
		Version:            a.Version,
	}
}
