package validators

import (
	"context"

	"github.com/MKhiriev/asset-management/models"
)

const (
	FieldJoinDate = "join_date"
	FieldLocation = "location"
)

// UserValidator enforces the cross-field rules of user requests.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserRequest:
		return v.validateUserRequest(value, fields...)
	case *models.UserRequest:
		return v.validateUserRequest(*value, fields...)

	case models.UserUpdateRequest:
		return v.validateUserUpdateRequest(value, fields...)
	case *models.UserUpdateRequest:
		return v.validateUserUpdateRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUserRequest(request models.UserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldJoinDate, FieldLocation}
	}

	for _, f := range fields {
		switch f {
		case FieldJoinDate:
			if err := validateJoinDate(request.DOB, request.JoinDate); err != nil {
				return err
			}
		case FieldLocation:
			if request.Role == models.RoleAdmin && request.LocationID == nil {
				return ErrAdminNullLocation
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateUserUpdateRequest(request models.UserUpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldJoinDate}
	}

	for _, f := range fields {
		switch f {
		case FieldJoinDate:
			if err := validateJoinDate(request.DOB, request.JoinDate); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateJoinDate(dob, joinDate models.Date) error {
	if joinDate.Before(dob) {
		return ErrJoinDateBeforeDOB
	}
	if joinDate.IsWeekend() {
		return ErrJoinDateWeekend
	}
	return nil
}
