package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/asset-management/internal/cache"
	"github.com/MKhiriev/asset-management/internal/config"
	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/store"
	"github.com/MKhiriev/asset-management/internal/utils"
	"github.com/MKhiriev/asset-management/models"
)

// defaultPasswordDateLayout renders the date of birth part of a default
// password as ddMMyyyy.
const defaultPasswordDateLayout = "02012006"

type userService struct {
	transactor           store.Transactor
	userRepository       store.UserRepository
	locationRepository   store.LocationRepository
	assignmentRepository store.AssignmentRepository
	statusCache          cache.UserStatusCache

	bcryptCost int
	logger     *logger.Logger
}

func NewUserService(storages *store.Storages, statusCache cache.UserStatusCache, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		transactor:           storages.Transactor,
		userRepository:       storages.UserRepository,
		locationRepository:   storages.LocationRepository,
		assignmentRepository: storages.AssignmentRepository,
		statusCache:          statusCache,
		bcryptCost:           cfg.BcryptCost,
		logger:               logger,
	}
}

// CreateUser saves a new FIRST_LOGIN account and assigns its staff code in
// the same transaction. USER accounts inherit the admin's location.
func (s *userService) CreateUser(ctx context.Context, current models.CurrentUser, request models.UserRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return models.UserResponse{}, err
	}

	location := admin.Location
	if request.Role == models.RoleAdmin {
		if request.LocationID == nil {
			return models.UserResponse{}, ErrAdminNullLocation
		}
		location, err = s.locationRepository.FindByID(ctx, *request.LocationID)
		if err != nil {
			return models.UserResponse{}, mapNotFound(err, ErrLocationNotFound)
		}
	}

	username, err := s.GenerateUsername(ctx, request.FirstName, request.LastName)
	if err != nil {
		return models.UserResponse{}, err
	}

	hash, err := utils.HashPassword(username+"@"+request.DOB.Format(defaultPasswordDateLayout), s.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("failed to hash default password")
		return models.UserResponse{}, err
	}

	user := models.User{
		FirstName:    strings.Join(strings.Fields(request.FirstName), " "),
		LastName:     strings.Join(strings.Fields(request.LastName), " "),
		Username:     username,
		HashPassword: hash,
		DOB:          request.DOB,
		JoinDate:     request.JoinDate,
		Gender:       request.Gender,
		Role:         request.Role,
		Status:       models.UserStatusFirstLogin,
		Location:     location,
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		created, err := s.userRepository.Create(ctx, user)
		if err != nil {
			return err
		}

		created.StaffCode = models.GenerateStaffCode(created.ID)
		if err = s.userRepository.UpdateStaffCode(ctx, created.ID, created.StaffCode); err != nil {
			return err
		}

		user = created
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Str("username", username).Msg("failed to create user")
		if errors.Is(err, store.ErrReferenceViolation) {
			return models.UserResponse{}, ErrLocationNotFound
		}
		return models.UserResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*userService.CreateUser").Int64("user_id", user.ID).Str("staff_code", user.StaffCode).Msg("user created")

	return models.ToUserResponse(user), nil
}

func (s *userService) GenerateUsername(ctx context.Context, firstName, lastName string) (string, error) {
	base := baseUsername(firstName, lastName)
	if base == "" {
		return "", ErrNameHasNoLetters
	}

	taken, err := s.userRepository.FindUsernamesByPrefix(ctx, base)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GenerateUsername").Str("base", base).Msg("failed to load usernames")
		return "", err
	}

	return nextUsername(base, taken), nil
}

func (s *userService) GetAllUsers(ctx context.Context, current models.CurrentUser, search models.UserSearch) (models.PaginationResponse[models.UserResponse], error) {
	return s.getAll(ctx, current, search, true)
}

func (s *userService) GetAllUsersForAssignment(ctx context.Context, current models.CurrentUser, search models.UserSearch) (models.PaginationResponse[models.UserResponse], error) {
	return s.getAll(ctx, current, search, false)
}

func (s *userService) getAll(ctx context.Context, current models.CurrentUser, search models.UserSearch, excludeCurrent bool) (models.PaginationResponse[models.UserResponse], error) {
	if err := validatePage(search.PageRequest); err != nil {
		return models.PaginationResponse[models.UserResponse]{}, err
	}

	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return models.PaginationResponse[models.UserResponse]{}, err
	}

	page := search.PageRequest
	if page.OrderBy == "type" {
		page.OrderBy = "role"
	}

	filter := store.UserFilter{
		Search:     search.SearchString,
		Role:       models.Role(search.Type),
		LocationID: admin.Location.ID,
	}
	if excludeCurrent {
		filter.ExcludeUserID = admin.ID
	}

	users, total, err := s.userRepository.FindAll(ctx, filter, page)
	if err != nil {
		return models.PaginationResponse[models.UserResponse]{}, listError(err)
	}

	return models.NewPaginationResponse(search.PageRequest, total, users, models.ToUserResponse), nil
}

func (s *userService) GetUserByID(ctx context.Context, current models.CurrentUser, id int64) (models.UserResponse, error) {
	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return models.UserResponse{}, err
	}

	user, err := s.findInLocation(ctx, id, admin.Location.ID)
	if err != nil {
		return models.UserResponse{}, err
	}

	return models.ToUserResponse(user), nil
}

// EditUser updates dob, gender, join date and role when the request carries
// the stored version.
func (s *userService) EditUser(ctx context.Context, current models.CurrentUser, id int64, request models.UserUpdateRequest) (models.UserResponse, error) {
	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return models.UserResponse{}, err
	}

	user, err := s.findInLocation(ctx, id, admin.Location.ID)
	if err != nil {
		return models.UserResponse{}, err
	}

	if request.Version == nil || *request.Version != user.Version {
		return models.UserResponse{}, ErrDataIsOld
	}

	roleChanged := user.Role != request.Type

	user.DOB = request.DOB
	user.JoinDate = request.JoinDate
	user.Gender = request.Gender
	user.Role = request.Type

	log := logger.FromContext(ctx)

	updated, err := s.userRepository.Update(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			return models.UserResponse{}, ErrDataIsOld
		}
		log.Err(err).Str("func", "*userService.EditUser").Int64("user_id", id).Msg("failed to update user")
		return models.UserResponse{}, err
	}

	// tokens carrying the old role are rejected once the cached role is reloaded
	if roleChanged {
		if err = s.statusCache.Evict(ctx, user.ID); err != nil {
			log.Warn().Err(err).Str("func", "*userService.EditUser").Int64("user_id", user.ID).Msg("failed to evict cached status")
		}
	}

	return models.ToUserResponse(updated), nil
}

// DisableUser disables a user of the admin's location that holds no
// waiting or accepted assignment, and evicts its cached status.
func (s *userService) DisableUser(ctx context.Context, current models.CurrentUser, id int64) error {
	log := logger.FromContext(ctx)

	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return err
	}

	user, err := s.findInLocation(ctx, id, admin.Location.ID)
	if err != nil {
		return err
	}

	owns, err := s.assignmentRepository.ExistsByAssignToIDAndStates(ctx, user.ID, models.CurrentAssignmentStates)
	if err != nil {
		return err
	}
	if owns {
		return ErrUserStillOwnsValidAssignments
	}

	if err = s.userRepository.UpdateStatus(ctx, user.ID, models.UserStatusDisabled); err != nil {
		return mapNotFound(err, ErrUserNotFound)
	}

	if err = s.statusCache.Evict(ctx, user.ID); err != nil {
		log.Warn().Err(err).Str("func", "*userService.DisableUser").Int64("user_id", user.ID).Msg("failed to evict cached status")
	}

	log.Info().Str("func", "*userService.DisableUser").Int64("user_id", user.ID).Msg("user disabled")

	return nil
}

func (s *userService) ExistsCurrentAssignment(ctx context.Context, current models.CurrentUser, id int64) (bool, error) {
	admin, err := loadCurrentUser(ctx, s.userRepository, current)
	if err != nil {
		return false, err
	}

	user, err := s.findInLocation(ctx, id, admin.Location.ID)
	if err != nil {
		return false, err
	}

	return s.assignmentRepository.ExistsByAssignToIDAndStates(ctx, user.ID, models.CurrentAssignmentStates)
}

// findInLocation loads an enabled user of the given location.
func (s *userService) findInLocation(ctx context.Context, id, locationID int64) (models.User, error) {
	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return models.User{}, mapNotFound(err, ErrUserNotFound)
	}
	if user.Status == models.UserStatusDisabled || user.Location.ID != locationID {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}
