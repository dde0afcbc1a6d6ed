package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/loftbook/engine/internal/models"
	appErr "github.com/loftbook/engine/pkg/errors"
	"gorm.io/gorm"
)

type BirdRepository interface {
	BaseRepository[models.Bird]
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Bird, error)
	ListByLoft(ctx context.Context, ownerID, loftID uuid.UUID) ([]models.Bird, error)
	GetOwnedWithLoft(ctx context.Context, id, ownerID uuid.UUID, dest *models.Bird) error
	UpdateFields(ctx context.Context, birdID uuid.UUID, ring, name string, loftID *uuid.UUID) error
	SetLoft(ctx context.Context, birdID uuid.UUID, loftID *uuid.UUID) error
	DeleteWithUnassign(ctx context.Context, birdID uuid.UUID) error
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type birdRepository struct {
	BaseRepository[models.Bird]
	db *gorm.DB
}

func NewBirdRepository(db *gorm.DB) BirdRepository {
	return &birdRepository{BaseRepository: NewBaseRepository[models.Bird](db), db: db}
}

// ListByOwner returns the owner's non-deleted birds with their loft joined
// in, newest first with a stable id tiebreak.
func (r *birdRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Bird, error) {
	var out []models.Bird
	if err := r.db.WithContext(ctx).Preload("Loft").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list birds by owner failed")
	}
	return out, nil
}

// ListByLoft returns the owner's non-deleted birds currently assigned to loftID.
func (r *birdRepository) ListByLoft(ctx context.Context, ownerID, loftID uuid.UUID) ([]models.Bird, error) {
	var out []models.Bird
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND loft_id = ?", ownerID, loftID).
		Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list birds by loft failed")
	}
	return out, nil
}

// GetOwnedWithLoft is GetOwned with the loft preloaded for responses.
func (r *birdRepository) GetOwnedWithLoft(ctx context.Context, id, ownerID uuid.UUID, dest *models.Bird) error {
	if err := r.db.WithContext(ctx).Preload("Loft").
		First(dest, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "bird not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get bird failed")
	}
	return nil
}

// UpdateFields persists ring, name, and loft reference in a single statement.
// A ring collision with another bird surfaces as a conflict.
func (r *birdRepository) UpdateFields(ctx context.Context, birdID uuid.UUID, ring, name string, loftID *uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&models.Bird{}).Where("id = ?", birdID).
		Updates(map[string]any{"ring": ring, "name": name, "loft_id": loftID})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return appErr.Wrap(res.Error, appErr.CodeConflict, "ring already exists")
		}
		return appErr.Wrap(res.Error, appErr.CodeInternal, "update bird failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "bird not found")
	}
	return nil
}

// SetLoft changes only the loft reference; nil unassigns.
func (r *birdRepository) SetLoft(ctx context.Context, birdID uuid.UUID, loftID *uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&models.Bird{}).Where("id = ?", birdID).Update("loft_id", loftID)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "set bird loft failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "bird not found")
	}
	return nil
}

// DeleteWithUnassign clears the loft reference and soft-deletes in one
// transaction, so a deleted bird never shows up in a loft's bird list.
func (r *birdRepository) DeleteWithUnassign(ctx context.Context, birdID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Bird{}).Where("id = ?", birdID).Update("loft_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Bird{}, "id = ?", birdID).Error
	})
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "delete bird failed")
	}
	return nil
}

// PurgeDeletedBefore hard-deletes birds that were soft-deleted before cutoff.
func (r *birdRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&models.Bird{})
	if res.Error != nil {
		return 0, appErr.Wrap(res.Error, appErr.CodeInternal, "purge birds failed")
	}
	return res.RowsAffected, nil
}
