package tasks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/loftbook/engine/pkg/logger"
	"go.uber.org/zap"
)

const TypeRetentionPurge = "retention:purge"

// PurgePayload is the task payload for retention purge runs.
type PurgePayload struct {
	RetentionDays int `json:"retention_days"`
}

// NewPurgeTask builds the periodic purge task.
func NewPurgeTask(retentionDays int) (*asynq.Task, error) {
	payload, err := json.Marshal(PurgePayload{RetentionDays: retentionDays})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRetentionPurge, payload), nil
}

// Purger hard-deletes rows soft-deleted before the cutoff. Both the loft
// and bird repositories satisfy it.
type Purger interface {
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// PurgeTaskHandler hard-deletes lofts and birds whose soft-delete timestamp
// is past the retention window. Purging never resurrects anything: deleted
// ids were already invisible to every query and invalid as assignment targets.
type PurgeTaskHandler struct {
	loftRepo Purger
	birdRepo Purger
}

func NewPurgeTaskHandler(loftRepo, birdRepo Purger) *PurgeTaskHandler {
	return &PurgeTaskHandler{loftRepo: loftRepo, birdRepo: birdRepo}
}

func (h *PurgeTaskHandler) HandlePurge(ctx context.Context, t *asynq.Task) error {
	var p PurgePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		logger.L().Error("invalid purge task payload", zap.Error(err))
		return err
	}
	if p.RetentionDays <= 0 {
		p.RetentionDays = 30
	}
	cutoff := time.Now().Add(-time.Duration(p.RetentionDays) * 24 * time.Hour)

	// Birds first so no bird can outlive a purged loft it once referenced.
	birds, err := h.birdRepo.PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		logger.L().Error("purge birds failed", zap.Error(err))
		return err
	}
	lofts, err := h.loftRepo.PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		logger.L().Error("purge lofts failed", zap.Error(err))
		return err
	}

	logger.L().Info("retention purge completed",
		zap.Time("cutoff", cutoff),
		zap.Int64("birds_purged", birds),
		zap.Int64("lofts_purged", lofts),
	)
	return nil
}
