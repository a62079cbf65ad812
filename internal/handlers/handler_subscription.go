package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/traveljournal/tj_backend/internal/core/ports/services"
	"github.com/traveljournal/tj_backend/internal/dto"
)

// subscriptionHandler handles plan listing and plan changes.
type subscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
	userService         portssvc.UserSvcFacade
}

func newSubscriptionHandler(ss portssvc.SubscriptionSvcFacade, us portssvc.UserSvcFacade) *subscriptionHandler {
	return &subscriptionHandler{subscriptionService: ss, userService: us}
}

// registerSubscriptionRoutes registers all subscription-related routes.
func registerSubscriptionRoutes(rg *gin.RouterGroup, subscriptionService portssvc.SubscriptionSvcFacade, userService portssvc.UserSvcFacade) {
	h := newSubscriptionHandler(subscriptionService, userService)

	subs := rg.Group("/subscriptions")
	{
		subs.GET("", h.listPlans)
		subs.GET("/my", h.mySubscription)
		subs.POST("/change", h.changePlan)
	}
}

// listPlans godoc
// @Summary List subscription plans
// @Tags subscriptions
// @Produce json
// @Success 200 {object} dto.ListSubscriptionsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscriptions [get]
func (h *subscriptionHandler) listPlans(c *gin.Context) {
	plans, err := h.subscriptionService.ListPlans(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListSubscriptionsResponse(plans))
}

// mySubscription godoc
// @Summary Get the caller's plan and entitlements
// @Tags subscriptions
// @Produce json
// @Success 200 {object} dto.MySubscriptionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/my [get]
func (h *subscriptionHandler) mySubscription(c *gin.Context) {
	callerID, ok := mustUserID(c)
	if !ok {
		return
	}

	plan, err := h.userService.GetSubscription(c.Request.Context(), callerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ctx := c.Request.Context()
	canUpload, err := h.subscriptionService.CanUploadMedia(ctx, plan.SubscriptionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	canExport, err := h.subscriptionService.CanExportPdf(ctx, plan.SubscriptionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	canMap, err := h.subscriptionService.CanUseMap(ctx, plan.SubscriptionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MySubscriptionResponse{
		Plan:           dto.ToSubscriptionResponse(plan),
		CanUploadMedia: canUpload,
		CanExportPdf:   canExport,
		CanUseMap:      canMap,
	})
}

// changePlan godoc
// @Summary Change the caller's plan
// @Description Re-points the caller's subscription to an existing active plan.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param change body dto.ChangePlanRequest true "Target plan"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/change [post]
func (h *subscriptionHandler) changePlan(c *gin.Context) {
	callerID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	plan, err := h.userService.ChangePlan(c.Request.Context(), callerID, req.PlanID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionResponse(plan))
}
