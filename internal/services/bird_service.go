package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/loftbook/engine/internal/models"
	"github.com/loftbook/engine/internal/repository"
	"github.com/loftbook/engine/internal/ring"
	appErr "github.com/loftbook/engine/pkg/errors"
	"github.com/loftbook/engine/pkg/logger"
	"go.uber.org/zap"
)

type BirdService interface {
	CreateBird(ctx context.Context, ownerID uuid.UUID, input *CreateBirdInput) (*models.Bird, error)
	ListBirds(ctx context.Context, ownerID uuid.UUID) ([]models.Bird, error)
	GetBird(ctx context.Context, birdID, ownerID uuid.UUID) (*models.Bird, error)
	UpdateBird(ctx context.Context, birdID, ownerID uuid.UUID, input *UpdateBirdInput) (*models.Bird, error)
	AssignBird(ctx context.Context, birdID, ownerID uuid.UUID, loftID *uuid.UUID) (*models.Bird, error)
	DeleteBird(ctx context.Context, birdID, ownerID uuid.UUID) error
}

type CreateBirdInput struct {
	Ring   string
	Name   string
	LoftID *uuid.UUID
}

type UpdateBirdInput struct {
	Ring   string
	Name   string
	LoftID *uuid.UUID
}

type birdService struct {
	birdRepo repository.BirdRepository
	loftRepo repository.LoftRepository
}

func NewBirdService(birdRepo repository.BirdRepository, loftRepo repository.LoftRepository) BirdService {
	return &birdService{birdRepo: birdRepo, loftRepo: loftRepo}
}

var _ BirdService = (*birdService)(nil)

// checkRing normalizes and validates a raw ring value.
func checkRing(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", appErr.New(appErr.CodeInvalid, "ring is required")
	}
	normalized := ring.Normalize(raw)
	if !ring.IsValid(normalized) {
		return "", appErr.New(appErr.CodeInvalid, "invalid ring format")
	}
	return normalized, nil
}

// checkLoft guards a loft attachment target. Nonexistent, deleted, and
// not-owned lofts all produce the same "invalid loft" error.
func (s *birdService) checkLoft(ctx context.Context, loftID, ownerID uuid.UUID) error {
	var l models.Loft
	if err := s.loftRepo.GetOwned(ctx, loftID, ownerID, &l); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return appErr.New(appErr.CodeForbidden, "invalid loft")
		}
		return err
	}
	return nil
}

// CreateBird validates the ring, guards any loft attachment, and inserts.
// Ring uniqueness is left to the database index; a violation comes back as a
// distinct conflict rather than being pre-checked (which would race).
func (s *birdService) CreateBird(ctx context.Context, ownerID uuid.UUID, input *CreateBirdInput) (*models.Bird, error) {
	normalized, err := checkRing(input.Ring)
	if err != nil {
		return nil, err
	}

	if input.LoftID != nil {
		if err := s.checkLoft(ctx, *input.LoftID, ownerID); err != nil {
			return nil, err
		}
	}

	b := &models.Bird{
		OwnerID: ownerID,
		Ring:    normalized,
		Name:    strings.TrimSpace(input.Name),
		LoftID:  input.LoftID,
	}
	if err := s.birdRepo.Create(ctx, b); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, appErr.New(appErr.CodeConflict, "that ring number already exists")
		}
		return nil, err
	}

	logger.L().Info("bird created", zap.String("bird_id", b.ID.String()), zap.String("owner_id", ownerID.String()))

	var created models.Bird
	if err := s.birdRepo.GetOwnedWithLoft(ctx, b.ID, ownerID, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *birdService) ListBirds(ctx context.Context, ownerID uuid.UUID) ([]models.Bird, error) {
	return s.birdRepo.ListByOwner(ctx, ownerID)
}

func (s *birdService) GetBird(ctx context.Context, birdID, ownerID uuid.UUID) (*models.Bird, error) {
	var b models.Bird
	if err := s.birdRepo.GetOwnedWithLoft(ctx, birdID, ownerID, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBird is the full edit: ring, name, and loft assignment change in a
// single statement. The ring is re-validated exactly as on create.
func (s *birdService) UpdateBird(ctx context.Context, birdID, ownerID uuid.UUID, input *UpdateBirdInput) (*models.Bird, error) {
	var b models.Bird
	if err := s.birdRepo.GetOwned(ctx, birdID, ownerID, &b); err != nil {
		return nil, err
	}

	normalized, err := checkRing(input.Ring)
	if err != nil {
		return nil, err
	}

	if input.LoftID != nil {
		if err := s.checkLoft(ctx, *input.LoftID, ownerID); err != nil {
			return nil, err
		}
	}

	if err := s.birdRepo.UpdateFields(ctx, birdID, normalized, strings.TrimSpace(input.Name), input.LoftID); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, appErr.New(appErr.CodeConflict, "that ring number already exists")
		}
		return nil, err
	}

	logger.L().Info("bird updated", zap.String("bird_id", birdID.String()), zap.String("owner_id", ownerID.String()))

	var updated models.Bird
	if err := s.birdRepo.GetOwnedWithLoft(ctx, birdID, ownerID, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// AssignBird changes only the loft reference. It is the fast path behind
// drag and inline assignment in clients; nil unassigns.
func (s *birdService) AssignBird(ctx context.Context, birdID, ownerID uuid.UUID, loftID *uuid.UUID) (*models.Bird, error) {
	var b models.Bird
	if err := s.birdRepo.GetOwned(ctx, birdID, ownerID, &b); err != nil {
		return nil, err
	}

	if loftID != nil {
		if err := s.checkLoft(ctx, *loftID, ownerID); err != nil {
			return nil, err
		}
	}

	if err := s.birdRepo.SetLoft(ctx, birdID, loftID); err != nil {
		return nil, err
	}

	logger.L().Info("bird assigned", zap.String("bird_id", birdID.String()), zap.String("owner_id", ownerID.String()))

	var updated models.Bird
	if err := s.birdRepo.GetOwnedWithLoft(ctx, birdID, ownerID, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBird guard-checks the target, then clears the loft reference and
// soft-deletes as one atomic unit.
func (s *birdService) DeleteBird(ctx context.Context, birdID, ownerID uuid.UUID) error {
	var b models.Bird
	if err := s.birdRepo.GetOwned(ctx, birdID, ownerID, &b); err != nil {
		return err
	}

	if err := s.birdRepo.DeleteWithUnassign(ctx, birdID); err != nil {
		return err
	}

	logger.L().Info("bird deleted", zap.String("bird_id", birdID.String()), zap.String("owner_id", ownerID.String()))
	return nil
}
