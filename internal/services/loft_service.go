package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/loftbook/engine/internal/models"
	"github.com/loftbook/engine/internal/repository"
	appErr "github.com/loftbook/engine/pkg/errors"
	"github.com/loftbook/engine/pkg/logger"
	"go.uber.org/zap"
)

type LoftService interface {
	CreateLoft(ctx context.Context, ownerID uuid.UUID, name string) (*models.Loft, error)
	ListLofts(ctx context.Context, ownerID uuid.UUID) ([]models.Loft, error)
	GetLoft(ctx context.Context, loftID, ownerID uuid.UUID) (*models.Loft, []models.Bird, error)
	RenameLoft(ctx context.Context, loftID, ownerID uuid.UUID, name string) (*models.Loft, error)
	DeleteLoft(ctx context.Context, loftID, ownerID uuid.UUID) error
}

type loftService struct {
	loftRepo repository.LoftRepository
	birdRepo repository.BirdRepository
}

func NewLoftService(loftRepo repository.LoftRepository, birdRepo repository.BirdRepository) LoftService {
	return &loftService{loftRepo: loftRepo, birdRepo: birdRepo}
}

var _ LoftService = (*loftService)(nil)

func (s *loftService) CreateLoft(ctx context.Context, ownerID uuid.UUID, name string) (*models.Loft, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, appErr.New(appErr.CodeInvalid, "name is required")
	}

	l := &models.Loft{OwnerID: ownerID, Name: name}
	if err := s.loftRepo.Create(ctx, l); err != nil {
		return nil, err
	}

	logger.L().Info("loft created", zap.String("loft_id", l.ID.String()), zap.String("owner_id", ownerID.String()))
	return l, nil
}

func (s *loftService) ListLofts(ctx context.Context, ownerID uuid.UUID) ([]models.Loft, error) {
	return s.loftRepo.ListByOwner(ctx, ownerID)
}

// GetLoft returns the loft and the birds currently assigned to it.
func (s *loftService) GetLoft(ctx context.Context, loftID, ownerID uuid.UUID) (*models.Loft, []models.Bird, error) {
	var l models.Loft
	if err := s.loftRepo.GetOwned(ctx, loftID, ownerID, &l); err != nil {
		return nil, nil, err
	}
	birds, err := s.birdRepo.ListByLoft(ctx, ownerID, loftID)
	if err != nil {
		return nil, nil, err
	}
	return &l, birds, nil
}

// RenameLoft changes the display name only; the creation timestamp is untouched.
func (s *loftService) RenameLoft(ctx context.Context, loftID, ownerID uuid.UUID, name string) (*models.Loft, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, appErr.New(appErr.CodeInvalid, "name is required")
	}

	var l models.Loft
	if err := s.loftRepo.GetOwned(ctx, loftID, ownerID, &l); err != nil {
		return nil, err
	}
	if err := s.loftRepo.Rename(ctx, loftID, name); err != nil {
		return nil, err
	}
	l.Name = name

	logger.L().Info("loft renamed", zap.String("loft_id", loftID.String()), zap.String("owner_id", ownerID.String()))
	return &l, nil
}

// DeleteLoft guard-checks the target, then unassigns the owner's birds and
// soft-deletes the loft as one atomic unit.
func (s *loftService) DeleteLoft(ctx context.Context, loftID, ownerID uuid.UUID) error {
	var l models.Loft
	if err := s.loftRepo.GetOwned(ctx, loftID, ownerID, &l); err != nil {
		return err
	}

	unassigned, err := s.loftRepo.DeleteWithUnassign(ctx, loftID, ownerID)
	if err != nil {
		return err
	}

	logger.L().Info("loft deleted",
		zap.String("loft_id", loftID.String()),
		zap.String("owner_id", ownerID.String()),
		zap.Int64("birds_unassigned", unassigned),
	)
	return nil
}
