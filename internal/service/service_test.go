package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/mock"
	"github.com/MKhiriev/asset-management/internal/store"
	"github.com/MKhiriev/asset-management/models"
	"go.uber.org/mock/gomock"
)

// repoMocks bundles one mock per repository of store.Storages.
type repoMocks struct {
	tx                *mock.MockTransactor
	users             *mock.MockUserRepository
	locations         *mock.MockLocationRepository
	categories        *mock.MockCategoryRepository
	assets            *mock.MockAssetRepository
	assignments       *mock.MockAssignmentRepository
	returningRequests *mock.MockReturningRequestRepository
	reports           *mock.MockReportRepository
}

func newRepoMocks(t *testing.T) (*repoMocks, *store.Storages) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &repoMocks{
		tx:                mock.NewMockTransactor(ctrl),
		users:             mock.NewMockUserRepository(ctrl),
		locations:         mock.NewMockLocationRepository(ctrl),
		categories:        mock.NewMockCategoryRepository(ctrl),
		assets:            mock.NewMockAssetRepository(ctrl),
		assignments:       mock.NewMockAssignmentRepository(ctrl),
		returningRequests: mock.NewMockReturningRequestRepository(ctrl),
		reports:           mock.NewMockReportRepository(ctrl),
	}

	return m, &store.Storages{
		Transactor:                 m.tx,
		UserRepository:             m.users,
		LocationRepository:         m.locations,
		CategoryRepository:         m.categories,
		AssetRepository:            m.assets,
		AssignmentRepository:       m.assignments,
		ReturningRequestRepository: m.returningRequests,
		ReportRepository:           m.reports,
	}
}

// expectTx lets WithinTx run fn with the caller's context.
func (m *repoMocks) expectTx() *gomock.Call {
	return m.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

// expectAdmin makes the current user lookup return the admin.
func (m *repoMocks) expectAdmin() *gomock.Call {
	return m.users.EXPECT().FindByID(gomock.Any(), testAdmin.ID).Return(testAdmin, nil)
}

var (
	hcm = models.Location{ID: 1, Name: "Ho Chi Minh", Code: "HCM"}
	hn  = models.Location{ID: 2, Name: "Ha Noi", Code: "HN"}

	testAdmin = models.User{
		ID:        1,
		StaffCode: "SD0001",
		FirstName: "Binh",
		LastName:  "Nguyen Van",
		Username:  "binhnv",
		Role:      models.RoleAdmin,
		Status:    models.UserStatusActive,
		Location:  hcm,
	}
	currentAdmin = models.CurrentUser{ID: testAdmin.ID, Username: testAdmin.Username, Role: models.RoleAdmin}

	testStaff = models.User{
		ID:        7,
		StaffCode: "SD0007",
		FirstName: "An",
		LastName:  "Tran",
		Username:  "ant",
		Role:      models.RoleUser,
		Status:    models.UserStatusActive,
		Location:  hcm,
	}
	currentStaff = models.CurrentUser{ID: testStaff.ID, Username: testStaff.Username, Role: models.RoleUser}
)

// fixedClock pins today to 2024-03-14.
func fixedClock() time.Time {
	return time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC)
}

func testContext() context.Context {
	return logger.Nop().WithContext(context.Background())
}

func ptr[T any](v T) *T {
	return &v
}

func page(number, size int) models.PageRequest {
	return models.PageRequest{PageNumber: number, PageSize: size}
}
