package usecases

import (
	"context"

	"github.com/huddle-inc/huddle/internal/application/notification/dto"
	"github.com/huddle-inc/huddle/internal/domain/notification"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

// GetPreferencesUseCase returns the stored preferences, or the opt-in
// defaults when the recipient has never saved any. Absence is not an error.
type GetPreferencesUseCase struct {
	prefRepo notification.PreferenceRepository
	logger   logger.Interface
}

func NewGetPreferencesUseCase(prefRepo notification.PreferenceRepository, logger logger.Interface) *GetPreferencesUseCase {
	return &GetPreferencesUseCase{
		prefRepo: prefRepo,
		logger:   logger,
	}
}

func (uc *GetPreferencesUseCase) Execute(ctx context.Context, recipientID, groupID uint) (*dto.PreferencesResponse, error) {
	prefs, err := uc.prefRepo.Find(ctx, recipientID, groupID)
	if err != nil {
		uc.logger.Errorw("failed to load preferences", "recipient_id", recipientID, "error", err)
		return nil, err
	}
	if prefs == nil {
		prefs = notification.DefaultPreferences(recipientID, groupID)
	}

	return dto.ToPreferencesResponse(prefs), nil
}
