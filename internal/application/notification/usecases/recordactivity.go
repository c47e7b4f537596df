package usecases

import (
	"context"
	"fmt"

	"github.com/huddle-inc/huddle/internal/domain/notification"
	"github.com/huddle-inc/huddle/internal/shared/errors"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

// RecordActivityUseCase upserts the recipient's last-active timestamp. The
// write is idempotent and last-write-wins; a heartbeat arriving out of order
// is accepted silently.
type RecordActivityUseCase struct {
	activity notification.ActivityTracker
	logger   logger.Interface
}

func NewRecordActivityUseCase(activity notification.ActivityTracker, logger logger.Interface) *RecordActivityUseCase {
	return &RecordActivityUseCase{
		activity: activity,
		logger:   logger,
	}
}

func (uc *RecordActivityUseCase) Execute(ctx context.Context, recipientID uint) error {
	if recipientID == 0 {
		return errors.NewValidationError("recipient ID is required")
	}

	if err := uc.activity.UpdateLastActive(ctx, recipientID); err != nil {
		uc.logger.Errorw("failed to record activity", "recipient_id", recipientID, "error", err)
		return fmt.Errorf("failed to record activity: %w", err)
	}

	return nil
}
