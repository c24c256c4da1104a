package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/store"
	"github.com/MKhiriev/asset-management/models"
)

// clock returns the current time.
type clock func() time.Time

func (c clock) today() models.Date {
	if c == nil {
		return models.DateOf(time.Now())
	}
	return models.DateOf(c())
}

func validatePage(page models.PageRequest) error {
	if page.PageNumber < 1 || page.PageSize < 1 || page.PageNumber > models.MaxPageNumber {
		return ErrInvalidPageable
	}
	return nil
}

// listError maps repository listing errors to service errors.
func listError(err error) error {
	if errors.Is(err, store.ErrInvalidSortField) {
		return fmt.Errorf("%w: %w", ErrInvalidPageable, err)
	}
	return err
}

// mapVersionConflict replaces store.ErrVersionConflict with ErrDataIsOld.
func mapVersionConflict(err error) error {
	if errors.Is(err, store.ErrVersionConflict) {
		return ErrDataIsOld
	}
	return err
}

// mapNotFound replaces store.ErrNotFound with target and leaves other errors as is.
func mapNotFound(err, target error) error {
	if errors.Is(err, store.ErrNotFound) {
		return target
	}
	return err
}

// loadCurrentUser reads the principal's row, mostly for its location.
func loadCurrentUser(ctx context.Context, users store.UserRepository, current models.CurrentUser) (models.User, error) {
	user, err := users.FindByID(ctx, current.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "service.loadCurrentUser").
			Int64("user_id", current.ID).
			Msg("failed to load current user")
		return models.User{}, mapNotFound(err, ErrUserNotFound)
	}
	if user.Status == models.UserStatusDisabled {
		return models.User{}, ErrUserDisabled
	}

	return user, nil
}
