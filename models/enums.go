package models

// Role is the access level of a user account.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Gender of a staff member.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// UserStatus tracks the lifecycle of a user account.
//
// New accounts start in [UserStatusFirstLogin] and become
// [UserStatusActive] after the first password change.
type UserStatus string

const (
	UserStatusFirstLogin UserStatus = "FIRST_LOGIN"
	UserStatusActive     UserStatus = "ACTIVE"
	UserStatusDisabled   UserStatus = "DISABLED"
)

// UserAccess is what authentication checks on every request: the account
// status and the current role.
type UserAccess struct {
	Status UserStatus
	Role   Role
}

// AssetState is the availability state of an asset.
type AssetState string

const (
	AssetStateAvailable           AssetState = "AVAILABLE"
	AssetStateNotAvailable        AssetState = "NOT_AVAILABLE"
	AssetStateAssigned            AssetState = "ASSIGNED"
	AssetStateWaitingForRecycling AssetState = "WAITING_FOR_RECYCLING"
	AssetStateRecycled            AssetState = "RECYCLED"
)

// IsValid reports whether s is a known asset state.
func (s AssetState) IsValid() bool {
	switch s {
	case AssetStateAvailable, AssetStateNotAvailable, AssetStateAssigned,
		AssetStateWaitingForRecycling, AssetStateRecycled:
		return true
	}
	return false
}

// DefaultAssetSearchStates is used when an asset search names no states.
var DefaultAssetSearchStates = []AssetState{
	AssetStateAvailable,
	AssetStateNotAvailable,
	AssetStateAssigned,
}

// AssignmentState is the state of an assignment.
//
// Transitions: WAITING -> ACCEPTED | DECLINED, ACCEPTED -> RETURNED.
type AssignmentState string

const (
	AssignmentStateWaiting  AssignmentState = "WAITING"
	AssignmentStateAccepted AssignmentState = "ACCEPTED"
	AssignmentStateDeclined AssignmentState = "DECLINED"
	AssignmentStateReturned AssignmentState = "RETURNED"
)

// IsValid reports whether s is a known assignment state.
func (s AssignmentState) IsValid() bool {
	switch s {
	case AssignmentStateWaiting, AssignmentStateAccepted,
		AssignmentStateDeclined, AssignmentStateReturned:
		return true
	}
	return false
}

// DefaultAssignmentSearchStates is used when an assignment search names no states.
var DefaultAssignmentSearchStates = []AssignmentState{
	AssignmentStateWaiting,
	AssignmentStateAccepted,
	AssignmentStateDeclined,
}

// CurrentAssignmentStates are the states in which an assignment still
// holds its asset and blocks disabling the assignee.
var CurrentAssignmentStates = []AssignmentState{
	AssignmentStateWaiting,
	AssignmentStateAccepted,
}

// ReturningRequestState is the state of a returning request.
type ReturningRequestState string

const (
	ReturningRequestStateWaiting   ReturningRequestState = "WAITING_FOR_RETURNING"
	ReturningRequestStateCompleted ReturningRequestState = "COMPLETED"
)

// IsValid reports whether s is a known returning request state.
func (s ReturningRequestState) IsValid() bool {
	return s == ReturningRequestStateWaiting || s == ReturningRequestStateCompleted
}
