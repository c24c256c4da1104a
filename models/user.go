package models

import (
	"fmt"
	"time"
)

// StaffCodePrefix prefixes every generated staff code.
const StaffCodePrefix = "SD"

// User represents a staff account. It is both the login identity and the
// assignee of assets.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// StaffCode is derived from ID once the row is persisted
	// (see [GenerateStaffCode]).
	StaffCode string `json:"staffCode"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Username is generated from the name and is unique.
	Username string `json:"username"`

	// HashPassword holds the bcrypt hash of the password.
	// It is never exposed via JSON.
	HashPassword string `json:"-"`

	DOB      Date   `json:"dob"`
	JoinDate Date   `json:"joinDate"`
	Gender   Gender `json:"gender"`

	Role   Role       `json:"role"`
	Status UserStatus `json:"status"`

	// Location is the office the user belongs to.
	// Admins only see data of their own location.
	Location Location `json:"location"`

	// Version is the optimistic-locking counter.
	Version int64 `json:"version"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// FullName joins first and last name.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// GenerateStaffCode formats a staff code for the given user ID, e.g. SD0001.
func GenerateStaffCode(id int64) string {
	return fmt.Sprintf("%s%04d", StaffCodePrefix, id)
}

// UserRequest is the payload for creating a user.
type UserRequest struct {
	FirstName  string `json:"firstName" validate:"required,personname,max=128"`
	LastName   string `json:"lastName" validate:"required,personname,max=128"`
	DOB        Date   `json:"dob" validate:"required"`
	JoinDate   Date   `json:"joinDate" validate:"required"`
	Gender     Gender `json:"gender" validate:"required,oneof=MALE FEMALE OTHER"`
	Role       Role   `json:"role" validate:"required,oneof=ADMIN USER"`
	LocationID *int64 `json:"locationId,omitempty"`
}

// UserUpdateRequest is the payload for editing a user.
// Version must equal the stored version.
type UserUpdateRequest struct {
	DOB      Date   `json:"dob" validate:"required"`
	JoinDate Date   `json:"joinDate" validate:"required"`
	Gender   Gender `json:"gender" validate:"required,oneof=MALE FEMALE OTHER"`
	Type     Role   `json:"type" validate:"required,oneof=ADMIN USER"`
	Version  *int64 `json:"version" validate:"required"`
}

// UserSearch holds the query of a user listing.
type UserSearch struct {
	PageRequest
	SearchString string `json:"searchString"`
	// Type filters by role; empty means any role.
	Type string `json:"type"`
}

// UserResponse is the public representation of a [User].
type UserResponse struct {
	ID        int64            `json:"id"`
	StaffCode string           `json:"staffCode"`
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	FullName  string           `json:"fullName"`
	Username  string           `json:"username"`
	DOB       Date             `json:"dob"`
	JoinDate  Date             `json:"joinDate"`
	Gender    Gender           `json:"gender"`
	Type      Role             `json:"type"`
	Status    UserStatus       `json:"status"`
	Location  LocationResponse `json:"location"`
	Version   int64            `json:"version"`
}

// ToUserResponse maps a [User] to its public representation.
func ToUserResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		StaffCode: u.StaffCode,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Username:  u.Username,
		DOB:       u.DOB,
		JoinDate:  u.JoinDate,
		Gender:    u.Gender,
		Type:      u.Role,
		Status:    u.Status,
		Location:  ToLocationResponse(u.Location),
		Version:   u.Version,
	}
}

// ChangePasswordRequest changes the password of the current user.
type ChangePasswordRequest struct {
	Password    string `json:"password" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=64"`
}

// FirstChangePasswordRequest sets the password on first login.
type FirstChangePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=64"`
}

// GenerateUsernameRequest previews the username for a name.
type GenerateUsernameRequest struct {
	FirstName string `json:"firstName" validate:"required,personname,max=128"`
	LastName  string `json:"lastName" validate:"required,personname,max=128"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CurrentUser is the authenticated principal of a request.
type CurrentUser struct {
	ID       int64
	Username string
	Role     Role
}
