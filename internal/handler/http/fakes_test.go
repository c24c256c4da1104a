package http

import (
	"context"

	"github.com/MKhiriev/asset-management/internal/service"
	"github.com/MKhiriev/asset-management/models"
)

// Service fakes embed the interface so a test only sets the functions it
// exercises; calling anything else panics.

type fakeAuthService struct {
	service.AuthService
	loginFn               func(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)
	authenticateFn        func(ctx context.Context, tokenString string) (models.CurrentUser, error)
	firstChangePasswordFn func(ctx context.Context, current models.CurrentUser, request models.FirstChangePasswordRequest) error
	changePasswordFn      func(ctx context.Context, current models.CurrentUser, request models.ChangePasswordRequest) error
}

func (f *fakeAuthService) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	return f.loginFn(ctx, request)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, tokenString string) (models.CurrentUser, error) {
	return f.authenticateFn(ctx, tokenString)
}

func (f *fakeAuthService) FirstChangePassword(ctx context.Context, current models.CurrentUser, request models.FirstChangePasswordRequest) error {
	return f.firstChangePasswordFn(ctx, current, request)
}

func (f *fakeAuthService) ChangePassword(ctx context.Context, current models.CurrentUser, request models.ChangePasswordRequest) error {
	return f.changePasswordFn(ctx, current, request)
}

type fakeUserService struct {
	service.UserService
	createUserFn               func(ctx context.Context, current models.CurrentUser, request models.UserRequest) (models.UserResponse, error)
	generateUsernameFn         func(ctx context.Context, firstName, lastName string) (string, error)
	getAllUsersFn              func(ctx context.Context, current models.CurrentUser, search models.UserSearch) (models.PaginationResponse[models.UserResponse], error)
	getAllUsersForAssignmentFn func(ctx context.Context, current models.CurrentUser, search models.UserSearch) (models.PaginationResponse[models.UserResponse], error)
	getUserByIDFn              func(ctx context.Context, current models.CurrentUser, id int64) (models.UserResponse, error)
	editUserFn                 func(ctx context.Context, current models.CurrentUser, id int64, request models.UserUpdateRequest) (models.UserResponse, error)
	disableUserFn              func(ctx context.Context, current models.CurrentUser, id int64) error
	existsCurrentAssignmentFn  func(ctx context.Context, current models.CurrentUser, id int64) (bool, error)
}

func (f *fakeUserService) CreateUser(ctx context.Context, current models.CurrentUser, request models.UserRequest) (models.UserResponse, error) {
	return f.createUserFn(ctx, current, request)
}

func (f *fakeUserService) GenerateUsername(ctx context.Context, firstName, lastName string) (string, error) {
	return f.generateUsernameFn(ctx, firstName, lastName)
}

func (f *fakeUserService) GetAllUsers(ctx context.Context, current models.CurrentUser, search models.UserSearch) (models.PaginationResponse[models.UserResponse], error) {
	return f.getAllUsersFn(ctx, current, search)
}

func (f *fakeUserService) GetAllUsersForAssignment(ctx context.Context, current models.CurrentUser, search models.UserSearch) (models.PaginationResponse[models.UserResponse], error) {
	return f.getAllUsersForAssignmentFn(ctx, current, search)
}

func (f *fakeUserService) GetUserByID(ctx context.Context, current models.CurrentUser, id int64) (models.UserResponse, error) {
	return f.getUserByIDFn(ctx, current, id)
}

func (f *fakeUserService) EditUser(ctx context.Context, current models.CurrentUser, id int64, request models.UserUpdateRequest) (models.UserResponse, error) {
	return f.editUserFn(ctx, current, id, request)
}

func (f *fakeUserService) DisableUser(ctx context.Context, current models.CurrentUser, id int64) error {
	return f.disableUserFn(ctx, current, id)
}

func (f *fakeUserService) ExistsCurrentAssignment(ctx context.Context, current models.CurrentUser, id int64) (bool, error) {
	return f.existsCurrentAssignmentFn(ctx, current, id)
}

type fakeCatalogService struct {
	service.LocationService
	service.CategoryService
	locations  []models.LocationResponse
	categories []models.CategoryResponse
	createFn   func(ctx context.Context, request models.CategoryRequest) (models.CategoryResponse, error)
}

func (f *fakeCatalogService) GetAllLocations(context.Context) ([]models.LocationResponse, error) {
	return f.locations, nil
}

func (f *fakeCatalogService) GetAllCategories(context.Context) ([]models.CategoryResponse, error) {
	return f.categories, nil
}

func (f *fakeCatalogService) CreateCategory(ctx context.Context, request models.CategoryRequest) (models.CategoryResponse, error) {
	return f.createFn(ctx, request)
}

type fakeAssetService struct {
	service.AssetService
	createAssetFn     func(ctx context.Context, current models.CurrentUser, request models.AssetRequest) (models.AssetResponse, error)
	getAllAssetsFn    func(ctx context.Context, current models.CurrentUser, search models.AssetSearch) (models.PaginationResponse[models.AssetResponse], error)
	getAssetFn        func(ctx context.Context, current models.CurrentUser, id int64) (models.AssetResponse, error)
	getAssetHistoryFn func(ctx context.Context, current models.CurrentUser, id int64, page models.PageRequest) (models.PaginationResponse[models.AssignmentResponse], error)
	editAssetFn       func(ctx context.Context, current models.CurrentUser, id int64, request models.AssetUpdateRequest) (models.AssetResponse, error)
	deleteAssetFn     func(ctx context.Context, current models.CurrentUser, id int64) error
}

func (f *fakeAssetService) CreateAsset(ctx context.Context, current models.CurrentUser, request models.AssetRequest) (models.AssetResponse, error) {
	return f.createAssetFn(ctx, current, request)
}

func (f *fakeAssetService) GetAllAssets(ctx context.Context, current models.CurrentUser, search models.AssetSearch) (models.PaginationResponse[models.AssetResponse], error) {
	return f.getAllAssetsFn(ctx, current, search)
}

func (f *fakeAssetService) GetAsset(ctx context.Context, current models.CurrentUser, id int64) (models.AssetResponse, error) {
	return f.getAssetFn(ctx, current, id)
}

func (f *fakeAssetService) GetAssetHistory(ctx context.Context, current models.CurrentUser, id int64, page models.PageRequest) (models.PaginationResponse[models.AssignmentResponse], error) {
	return f.getAssetHistoryFn(ctx, current, id, page)
}

func (f *fakeAssetService) EditAsset(ctx context.Context, current models.CurrentUser, id int64, request models.AssetUpdateRequest) (models.AssetResponse, error) {
	return f.editAssetFn(ctx, current, id, request)
}

func (f *fakeAssetService) DeleteAsset(ctx context.Context, current models.CurrentUser, id int64) error {
	return f.deleteAssetFn(ctx, current, id)
}

type fakeAssignmentService struct {
	service.AssignmentService
	createAssignmentFn       func(ctx context.Context, current models.CurrentUser, request models.AssignmentRequest) (models.AssignmentResponse, error)
	editAssignmentFn         func(ctx context.Context, current models.CurrentUser, id int64, request models.AssignmentUpdateRequest) (models.AssignmentResponse, error)
	deleteAssignmentFn       func(ctx context.Context, current models.CurrentUser, id int64) error
	getAllAssignmentsFn      func(ctx context.Context, current models.CurrentUser, search models.AssignmentSearch) (models.PaginationResponse[models.AssignmentResponse], error)
	getAssignmentFn          func(ctx context.Context, current models.CurrentUser, id int64) (models.AssignmentResponse, error)
	getMyAssignmentsFn       func(ctx context.Context, current models.CurrentUser, page models.PageRequest) (models.PaginationResponse[models.AssignmentResponse], error)
	respondAssignmentFn      func(ctx context.Context, current models.CurrentUser, id int64, reply models.AssignmentReply) (models.AssignmentResponse, error)
	createReturningRequestFn func(ctx context.Context, current models.CurrentUser, assignmentID int64) (models.ReturningRequestResponse, error)
}

func (f *fakeAssignmentService) CreateAssignment(ctx context.Context, current models.CurrentUser, request models.AssignmentRequest) (models.AssignmentResponse, error) {
	return f.createAssignmentFn(ctx, current, request)
}

func (f *fakeAssignmentService) EditAssignment(ctx context.Context, current models.CurrentUser, id int64, request models.AssignmentUpdateRequest) (models.AssignmentResponse, error) {
	return f.editAssignmentFn(ctx, current, id, request)
}

func (f *fakeAssignmentService) DeleteAssignment(ctx context.Context, current models.CurrentUser, id int64) error {
	return f.deleteAssignmentFn(ctx, current, id)
}

func (f *fakeAssignmentService) GetAllAssignments(ctx context.Context, current models.CurrentUser, search models.AssignmentSearch) (models.PaginationResponse[models.AssignmentResponse], error) {
	return f.getAllAssignmentsFn(ctx, current, search)
}

func (f *fakeAssignmentService) GetAssignment(ctx context.Context, current models.CurrentUser, id int64) (models.AssignmentResponse, error) {
	return f.getAssignmentFn(ctx, current, id)
}

func (f *fakeAssignmentService) GetMyAssignments(ctx context.Context, current models.CurrentUser, page models.PageRequest) (models.PaginationResponse[models.AssignmentResponse], error) {
	return f.getMyAssignmentsFn(ctx, current, page)
}

func (f *fakeAssignmentService) RespondAssignment(ctx context.Context, current models.CurrentUser, id int64, reply models.AssignmentReply) (models.AssignmentResponse, error) {
	return f.respondAssignmentFn(ctx, current, id, reply)
}

func (f *fakeAssignmentService) CreateReturningRequest(ctx context.Context, current models.CurrentUser, assignmentID int64) (models.ReturningRequestResponse, error) {
	return f.createReturningRequestFn(ctx, current, assignmentID)
}

type fakeReturningRequestService struct {
	service.ReturningRequestService
	getAllFn   func(ctx context.Context, current models.CurrentUser, search models.ReturningRequestSearch) (models.PaginationResponse[models.ReturningRequestResponse], error)
	completeFn func(ctx context.Context, current models.CurrentUser, id int64) error
	cancelFn   func(ctx context.Context, current models.CurrentUser, id int64) error
}

func (f *fakeReturningRequestService) GetAllReturningRequests(ctx context.Context, current models.CurrentUser, search models.ReturningRequestSearch) (models.PaginationResponse[models.ReturningRequestResponse], error) {
	return f.getAllFn(ctx, current, search)
}

func (f *fakeReturningRequestService) CompleteReturningRequest(ctx context.Context, current models.CurrentUser, id int64) error {
	return f.completeFn(ctx, current, id)
}

func (f *fakeReturningRequestService) CancelReturningRequest(ctx context.Context, current models.CurrentUser, id int64) error {
	return f.cancelFn(ctx, current, id)
}

type fakeReportService struct {
	getReportFn func(ctx context.Context, current models.CurrentUser, page models.PageRequest) (models.PaginationResponse[models.CategoryReport], error)
}

func (f *fakeReportService) GetReport(ctx context.Context, current models.CurrentUser, page models.PageRequest) (models.PaginationResponse[models.CategoryReport], error) {
	return f.getReportFn(ctx, current, page)
}

type fakeAppInfoService struct {
	version models.VersionResponse
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) models.VersionResponse {
	return f.version
}
