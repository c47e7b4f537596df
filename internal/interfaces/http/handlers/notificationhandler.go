package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/huddle-inc/huddle/internal/application/notification"
	"github.com/huddle-inc/huddle/internal/application/notification/dto"
	"github.com/huddle-inc/huddle/internal/interfaces/http/middleware"
	"github.com/huddle-inc/huddle/internal/shared/errors"
	"github.com/huddle-inc/huddle/internal/shared/logger"
	"github.com/huddle-inc/huddle/internal/shared/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NotificationHandler serves the recipient-facing inbox surface.
type NotificationHandler struct {
	service *notification.Service
	logger  logger.Interface
}

func NewNotificationHandler(service *notification.Service, logger logger.Interface) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		logger:  logger,
	}
}

func identity(c *gin.Context) (userID, groupID uint, ok bool) {
	userID, uok := middleware.UserID(c)
	groupID, gok := middleware.GroupID(c)
	if !uok || !gok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return 0, 0, false
	}
	return userID, groupID, true
}

// ListNotifications returns the recipient's inbox, newest first, with an
// optional unread filter.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, groupID, ok := identity(c)
	if !ok {
		return
	}

	limit, err := parsePositiveQuery(c, "limit", defaultPageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	offset, err := parsePositiveQuery(c, "offset", 0)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	status := c.Query("status")
	if status != "" && status != "read" && status != "unread" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("status must be one of [read unread]"))
		return
	}

	result, err := h.service.ListNotifications(c.Request.Context(), dto.ListNotificationsRequest{
		RecipientID: userID,
		GroupID:     groupID,
		Limit:       limit,
		Offset:      offset,
		Status:      status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetUnreadCount returns the unread badge count.
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID, groupID, ok := identity(c)
	if !ok {
		return
	}

	result, err := h.service.GetUnreadCount(c.Request.Context(), userID, groupID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkAsRead marks a single notification as read.
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}

	sid := c.Param("sid")
	if sid == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("notification ID is required"))
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), sid, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllAsRead marks every unread notification in the group as read.
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID, groupID, ok := identity(c)
	if !ok {
		return
	}

	if err := h.service.MarkAllAsRead(c.Request.Context(), userID, groupID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", nil)
}

// Archive removes a notification from the inbox list without deleting it.
func (h *NotificationHandler) Archive(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}

	sid := c.Param("sid")
	if sid == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("notification ID is required"))
		return
	}

	if err := h.service.Archive(c.Request.Context(), sid, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification archived", nil)
}

// GetPreferences returns the recipient's delivery preferences, falling back
// to defaults when none are stored.
func (h *NotificationHandler) GetPreferences(c *gin.Context) {
	userID, groupID, ok := identity(c)
	if !ok {
		return
	}

	result, err := h.service.GetPreferences(c.Request.Context(), userID, groupID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdatePreferences upserts the recipient's delivery preferences.
func (h *NotificationHandler) UpdatePreferences(c *gin.Context) {
	userID, groupID, ok := identity(c)
	if !ok {
		return
	}

	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update preferences", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}

	result, err := h.service.UpdatePreferences(c.Request.Context(), userID, groupID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Preferences updated", result)
}

// Heartbeat records an explicit presence ping from the client.
func (h *NotificationHandler) Heartbeat(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}

	if err := h.service.RecordActivity(c.Request.Context(), userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", nil)
}

func parsePositiveQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, errors.NewValidationError(name + " must be a non-negative integer")
	}
	return value, nil
}
