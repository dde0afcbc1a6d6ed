package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/loftbook/engine/internal/models"
	"github.com/loftbook/engine/pkg/logger"
)

func TestMain(m *testing.M) {
	// Services log through the global logger
	if _, err := logger.Init("info", "json"); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, obj *models.User) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id any, dest *models.User) error {
	args := m.Called(ctx, id, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.User)
	}
	return args.Error(0)
}

func (m *mockUserRepository) GetOwned(ctx context.Context, id, ownerID uuid.UUID, dest *models.User) error {
	args := m.Called(ctx, id, ownerID, dest)
	return args.Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, obj *models.User) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id any) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string, dest *models.User) error {
	args := m.Called(ctx, email, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.User)
	}
	return args.Error(0)
}

type mockLoftRepository struct {
	mock.Mock
}

func (m *mockLoftRepository) Create(ctx context.Context, obj *models.Loft) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockLoftRepository) GetByID(ctx context.Context, id any, dest *models.Loft) error {
	args := m.Called(ctx, id, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Loft)
	}
	return args.Error(0)
}

func (m *mockLoftRepository) GetOwned(ctx context.Context, id, ownerID uuid.UUID, dest *models.Loft) error {
	args := m.Called(ctx, id, ownerID, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Loft)
	}
	return args.Error(0)
}

func (m *mockLoftRepository) Update(ctx context.Context, obj *models.Loft) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockLoftRepository) Delete(ctx context.Context, id any) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockLoftRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Loft, error) {
	args := m.Called(ctx, ownerID)
	if v := args.Get(0); v != nil {
		return v.([]models.Loft), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLoftRepository) Rename(ctx context.Context, loftID uuid.UUID, name string) error {
	args := m.Called(ctx, loftID, name)
	return args.Error(0)
}

func (m *mockLoftRepository) DeleteWithUnassign(ctx context.Context, loftID, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, loftID, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLoftRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type mockBirdRepository struct {
	mock.Mock
}

func (m *mockBirdRepository) Create(ctx context.Context, obj *models.Bird) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockBirdRepository) GetByID(ctx context.Context, id any, dest *models.Bird) error {
	args := m.Called(ctx, id, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Bird)
	}
	return args.Error(0)
}

func (m *mockBirdRepository) GetOwned(ctx context.Context, id, ownerID uuid.UUID, dest *models.Bird) error {
	args := m.Called(ctx, id, ownerID, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Bird)
	}
	return args.Error(0)
}

func (m *mockBirdRepository) Update(ctx context.Context, obj *models.Bird) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockBirdRepository) Delete(ctx context.Context, id any) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBirdRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Bird, error) {
	args := m.Called(ctx, ownerID)
	if v := args.Get(0); v != nil {
		return v.([]models.Bird), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBirdRepository) ListByLoft(ctx context.Context, ownerID, loftID uuid.UUID) ([]models.Bird, error) {
	args := m.Called(ctx, ownerID, loftID)
	if v := args.Get(0); v != nil {
		return v.([]models.Bird), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBirdRepository) GetOwnedWithLoft(ctx context.Context, id, ownerID uuid.UUID, dest *models.Bird) error {
	args := m.Called(ctx, id, ownerID, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Bird)
	}
	return args.Error(0)
}

func (m *mockBirdRepository) UpdateFields(ctx context.Context, birdID uuid.UUID, ring, name string, loftID *uuid.UUID) error {
	args := m.Called(ctx, birdID, ring, name, loftID)
	return args.Error(0)
}

func (m *mockBirdRepository) SetLoft(ctx context.Context, birdID uuid.UUID, loftID *uuid.UUID) error {
	args := m.Called(ctx, birdID, loftID)
	return args.Error(0)
}

func (m *mockBirdRepository) DeleteWithUnassign(ctx context.Context, birdID uuid.UUID) error {
	args := m.Called(ctx, birdID)
	return args.Error(0)
}

func (m *mockBirdRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
