package handlers

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/loftbook/engine/internal/models"
	"github.com/loftbook/engine/internal/services"
	"github.com/loftbook/engine/pkg/logger"
)

func TestMain(m *testing.M) {
	if _, err := logger.Init("error", "json"); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	args := m.Called(ctx, email, password)
	var u *models.User
	if v := args.Get(1); v != nil {
		u = v.(*models.User)
	}
	return args.String(0), u, args.Error(2)
}

type mockLoftService struct {
	mock.Mock
}

func (m *mockLoftService) CreateLoft(ctx context.Context, ownerID uuid.UUID, name string) (*models.Loft, error) {
	args := m.Called(ctx, ownerID, name)
	if v := args.Get(0); v != nil {
		return v.(*models.Loft), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLoftService) ListLofts(ctx context.Context, ownerID uuid.UUID) ([]models.Loft, error) {
	args := m.Called(ctx, ownerID)
	if v := args.Get(0); v != nil {
		return v.([]models.Loft), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLoftService) GetLoft(ctx context.Context, loftID, ownerID uuid.UUID) (*models.Loft, []models.Bird, error) {
	args := m.Called(ctx, loftID, ownerID)
	var l *models.Loft
	if v := args.Get(0); v != nil {
		l = v.(*models.Loft)
	}
	var birds []models.Bird
	if v := args.Get(1); v != nil {
		birds = v.([]models.Bird)
	}
	return l, birds, args.Error(2)
}

func (m *mockLoftService) RenameLoft(ctx context.Context, loftID, ownerID uuid.UUID, name string) (*models.Loft, error) {
	args := m.Called(ctx, loftID, ownerID, name)
	if v := args.Get(0); v != nil {
		return v.(*models.Loft), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLoftService) DeleteLoft(ctx context.Context, loftID, ownerID uuid.UUID) error {
	args := m.Called(ctx, loftID, ownerID)
	return args.Error(0)
}

type mockBirdService struct {
	mock.Mock
}

func (m *mockBirdService) CreateBird(ctx context.Context, ownerID uuid.UUID, input *services.CreateBirdInput) (*models.Bird, error) {
	args := m.Called(ctx, ownerID, input)
	if v := args.Get(0); v != nil {
		return v.(*models.Bird), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBirdService) ListBirds(ctx context.Context, ownerID uuid.UUID) ([]models.Bird, error) {
	args := m.Called(ctx, ownerID)
	if v := args.Get(0); v != nil {
		return v.([]models.Bird), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBirdService) GetBird(ctx context.Context, birdID, ownerID uuid.UUID) (*models.Bird, error) {
	args := m.Called(ctx, birdID, ownerID)
	if v := args.Get(0); v != nil {
		return v.(*models.Bird), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBirdService) UpdateBird(ctx context.Context, birdID, ownerID uuid.UUID, input *services.UpdateBirdInput) (*models.Bird, error) {
	args := m.Called(ctx, birdID, ownerID, input)
	if v := args.Get(0); v != nil {
		return v.(*models.Bird), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBirdService) AssignBird(ctx context.Context, birdID, ownerID uuid.UUID, loftID *uuid.UUID) (*models.Bird, error) {
	args := m.Called(ctx, birdID, ownerID, loftID)
	if v := args.Get(0); v != nil {
		return v.(*models.Bird), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBirdService) DeleteBird(ctx context.Context, birdID, ownerID uuid.UUID) error {
	args := m.Called(ctx, birdID, ownerID)
	return args.Error(0)
}
