package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huddle-inc/huddle/internal/application/notification"
	"github.com/huddle-inc/huddle/internal/application/notification/dto"
	"github.com/huddle-inc/huddle/internal/shared/errors"
	"github.com/huddle-inc/huddle/internal/shared/logger"
	"github.com/huddle-inc/huddle/internal/shared/utils"
)

// InternalNotifyHandler exposes the delivery decision engine to the other
// Huddle services. Only they may decide that something is notification
// worthy; this service decides how it reaches the recipient.
type InternalNotifyHandler struct {
	service *notification.Service
	logger  logger.Interface
}

func NewInternalNotifyHandler(service *notification.Service, logger logger.Interface) *InternalNotifyHandler {
	return &InternalNotifyHandler{
		service: service,
		logger:  logger,
	}
}

// Notify runs the delivery pipeline for a single recipient.
func (h *InternalNotifyHandler) Notify(c *gin.Context) {
	var req dto.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid notify request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
		return
	}

	result, err := h.service.Notify(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Notification delivered")
}

// NotifyMany fans the pipeline out over a recipient list. Partial failures
// come back in the response body, not as an HTTP error.
func (h *InternalNotifyHandler) NotifyMany(c *gin.Context) {
	var req dto.NotifyManyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid notify-many request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body", err.Error()))
		return
	}

	result, err := h.service.NotifyMany(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
