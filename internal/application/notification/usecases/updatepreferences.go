package usecases

import (
	"context"
	"fmt"

	"github.com/huddle-inc/huddle/internal/application/notification/dto"
	"github.com/huddle-inc/huddle/internal/domain/notification"
	"github.com/huddle-inc/huddle/internal/shared/errors"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

type UpdatePreferencesUseCase struct {
	prefRepo notification.PreferenceRepository
	logger   logger.Interface
}

func NewUpdatePreferencesUseCase(prefRepo notification.PreferenceRepository, logger logger.Interface) *UpdatePreferencesUseCase {
	return &UpdatePreferencesUseCase{
		prefRepo: prefRepo,
		logger:   logger,
	}
}

func (uc *UpdatePreferencesUseCase) Execute(ctx context.Context, recipientID, groupID uint, req dto.UpdatePreferencesRequest) (*dto.PreferencesResponse, error) {
	uc.logger.Infow("executing update preferences use case", "recipient_id", recipientID, "group_id", groupID)

	if recipientID == 0 {
		return nil, errors.NewValidationError("recipient ID is required")
	}
	if groupID == 0 {
		return nil, errors.NewValidationError("group ID is required")
	}

	prefs, err := uc.prefRepo.Find(ctx, recipientID, groupID)
	if err != nil {
		uc.logger.Errorw("failed to load preferences", "recipient_id", recipientID, "error", err)
		return nil, err
	}
	if prefs == nil {
		prefs = notification.DefaultPreferences(recipientID, groupID)
	}

	if req.InAppEnabled != nil {
		prefs.SetInAppEnabled(*req.InAppEnabled)
	}
	if req.PushEnabled != nil {
		prefs.SetPushEnabled(*req.PushEnabled)
	}
	for t, enabled := range dto.ParseCategoryOverrides(req.CategoryOverrides) {
		prefs.SetCategoryOverride(t, enabled)
	}

	if err := uc.prefRepo.Upsert(ctx, prefs); err != nil {
		uc.logger.Errorw("failed to save preferences", "recipient_id", recipientID, "error", err)
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	return dto.ToPreferencesResponse(prefs), nil
}
