package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/loftbook/engine/internal/models"
	appErr "github.com/loftbook/engine/pkg/errors"
	"gorm.io/gorm"
)

type LoftRepository interface {
	BaseRepository[models.Loft]
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Loft, error)
	Rename(ctx context.Context, loftID uuid.UUID, name string) error
	DeleteWithUnassign(ctx context.Context, loftID, ownerID uuid.UUID) (int64, error)
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type loftRepository struct {
	BaseRepository[models.Loft]
	db *gorm.DB
}

func NewLoftRepository(db *gorm.DB) LoftRepository {
	return &loftRepository{BaseRepository: NewBaseRepository[models.Loft](db), db: db}
}

// ListByOwner returns the owner's non-deleted lofts, newest first. The id
// tiebreak keeps the order stable when creation timestamps collide.
func (r *loftRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Loft, error) {
	var out []models.Loft
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list lofts by owner failed")
	}
	return out, nil
}

// Rename updates the display name only; created_at is untouched.
func (r *loftRepository) Rename(ctx context.Context, loftID uuid.UUID, name string) error {
	res := r.db.WithContext(ctx).Model(&models.Loft{}).Where("id = ?", loftID).Update("name", name)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "rename loft failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "loft not found")
	}
	return nil
}

// DeleteWithUnassign clears the loft reference of every bird the owner has
// in the loft and soft-deletes the loft, as one transaction. If either half
// fails neither is applied, so a bird can never be observed pointing at a
// deleted loft. Returns the number of birds unassigned.
func (r *loftRepository) DeleteWithUnassign(ctx context.Context, loftID, ownerID uuid.UUID) (int64, error) {
	var unassigned int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Bird{}).
			Where("owner_id = ? AND loft_id = ?", ownerID, loftID).
			Update("loft_id", nil)
		if res.Error != nil {
			return res.Error
		}
		unassigned = res.RowsAffected
		return tx.Delete(&models.Loft{}, "id = ?", loftID).Error
	})
	if err != nil {
		return 0, appErr.Wrap(err, appErr.CodeInternal, "delete loft failed")
	}
	return unassigned, nil
}

// PurgeDeletedBefore hard-deletes lofts that were soft-deleted before cutoff.
func (r *loftRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&models.Loft{})
	if res.Error != nil {
		return 0, appErr.Wrap(res.Error, appErr.CodeInternal, "purge lofts failed")
	}
	return res.RowsAffected, nil
}
