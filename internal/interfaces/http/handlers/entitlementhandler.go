package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huddle-inc/huddle/internal/application/entitlement"
	"github.com/huddle-inc/huddle/internal/application/entitlement/dto"
	"github.com/huddle-inc/huddle/internal/interfaces/http/middleware"
	"github.com/huddle-inc/huddle/internal/shared/errors"
	"github.com/huddle-inc/huddle/internal/shared/logger"
	"github.com/huddle-inc/huddle/internal/shared/utils"
)

// EntitlementHandler serves the resolved entitlements for the caller's group.
type EntitlementHandler struct {
	service *entitlement.Service
	logger  logger.Interface
}

func NewEntitlementHandler(service *entitlement.Service, logger logger.Interface) *EntitlementHandler {
	return &EntitlementHandler{
		service: service,
		logger:  logger,
	}
}

// GetEntitlements resolves the group's current tier and feature set.
func (h *EntitlementHandler) GetEntitlements(c *gin.Context) {
	groupID, ok := middleware.GroupID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Group context missing"))
		return
	}

	result, err := h.service.GetTenantEntitlements(c.Request.Context(), groupID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CheckFeature answers whether one named feature is available to the group.
func (h *EntitlementHandler) CheckFeature(c *gin.Context) {
	groupID, ok := middleware.GroupID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Group context missing"))
		return
	}

	feature := c.Param("feature")
	if feature == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("feature name is required"))
		return
	}

	allowed, err := h.service.HasFeatureAccess(c.Request.Context(), groupID, feature)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.FeatureAccessResponse{
		Feature:   feature,
		HasAccess: allowed,
	})
}
