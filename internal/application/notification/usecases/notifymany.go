package usecases

import (
	"context"
	"sync"

	"github.com/huddle-inc/huddle/internal/application/notification/dto"
	"github.com/huddle-inc/huddle/internal/domain/notification"
	"github.com/huddle-inc/huddle/internal/shared/errors"
	"github.com/huddle-inc/huddle/internal/shared/goroutine"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

// NotifyManyUseCase fans out the delivery pipeline once per recipient. Each
// recipient is an independent unit of work: one failed inbox write does not
// cancel or fail the others.
type NotifyManyUseCase struct {
	notify *NotifyUseCase
	logger logger.Interface
}

func NewNotifyManyUseCase(notify *NotifyUseCase, logger logger.Interface) *NotifyManyUseCase {
	return &NotifyManyUseCase{
		notify: notify,
		logger: logger,
	}
}

// NotifyManyResult collects per-recipient outcomes of one fan-out.
type NotifyManyResult struct {
	Delivered []*notification.Notification
	Failed    []dto.NotifyFailure
}

func (uc *NotifyManyUseCase) Execute(ctx context.Context, req dto.NotifyManyRequest) (*NotifyManyResult, error) {
	uc.logger.Infow("executing notify many use case",
		"group_id", req.GroupID, "recipients", len(req.RecipientIDs), "type", req.Type)

	if len(req.RecipientIDs) == 0 {
		return nil, errors.NewValidationError("at least one recipient is required")
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		delivered []*notification.Notification
		failed    []dto.NotifyFailure
	)

	for _, recipientID := range req.RecipientIDs {
		wg.Add(1)
		rid := recipientID
		goroutine.SafeGo(uc.logger, "notify-fanout", func() {
			defer wg.Done()

			notif, err := uc.notify.Execute(ctx, dto.NotifyRequest{
				GroupID:     req.GroupID,
				RecipientID: rid,
				ActorID:     req.ActorID,
				Type:        req.Type,
				Title:       req.Title,
				Body:        req.Body,
				DeepLink:    req.DeepLink,
				Data:        req.Data,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed = append(failed, dto.NotifyFailure{RecipientID: rid, Error: err.Error()})
				return
			}
			delivered = append(delivered, notif)
		})
	}

	wg.Wait()

	if len(failed) > 0 {
		uc.logger.Warnw("notify fan-out completed with failures",
			"delivered", len(delivered), "failed", len(failed))
	}

	return &NotifyManyResult{Delivered: delivered, Failed: failed}, nil
}
