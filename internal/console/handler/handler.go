// Package handler serves the console shell: the section resolved for the
// session's role, the role's navigation and the data that section shows.
package handler

import (
	"net/http"

	"coordinator-console/internal/apierrors"
	brandsProcessor "coordinator-console/internal/brands/processor"
	campaignsProcessor "coordinator-console/internal/campaigns/processor"
	"coordinator-console/internal/navigation"
	"coordinator-console/internal/observability"
	"coordinator-console/internal/session"
	usersProcessor "coordinator-console/internal/users/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	brands    brandsProcessor.BrandProcessor
	campaigns campaignsProcessor.CampaignProcessor
	users     usersProcessor.UserProcessor
	logger    *observability.Logger
}

func New(
	brands brandsProcessor.BrandProcessor,
	campaigns campaignsProcessor.CampaignProcessor,
	users usersProcessor.UserProcessor,
	logger *observability.Logger,
) Handler {
	return Handler{brands: brands, campaigns: campaigns, users: users, logger: logger}
}

type ConsoleResponse struct {
	View       navigation.View       `json:"view"`
	Navigation []navigation.NavEntry `json:"navigation"`
	Data       any                   `json:"data"`
}

// HandleConsole resolves ?section= for the session and loads its data. When
// loading fails the view and navigation are still returned as the result so
// the client can render the error state in place.
func (h *Handler) HandleConsole(c *gin.Context) {
	ctx := c.Request.Context()

	sess, _ := session.FromContext(c)
	view, err := navigation.Resolve(sess, c.Query("section"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "view_kind", Value: string(view.Kind)},
		observability.Field{Key: "section", Value: view.Section},
	)
	resp := ConsoleResponse{View: view, Navigation: navigation.Navigation(sess.Role)}
	refresh := c.Query("refresh") == "true"

	switch view.Kind {
	case navigation.KindBrandManagement, navigation.KindAdminBrands:
		brands, err := h.brands.ListBrands(ctx, sess.Token, refresh)
		if err != nil {
			apierrors.RespondWithResult(c, err, resp)
			return
		}
		resp.Data = gin.H{"brands": brands}
	case navigation.KindCampaignManagement, navigation.KindAssignedCampaigns:
		campaigns, err := h.campaigns.ListCampaigns(ctx, sess.Token, refresh)
		if err != nil {
			apierrors.RespondWithResult(c, err, resp)
			return
		}
		resp.Data = gin.H{"campaigns": campaigns}
	case navigation.KindUserManagement:
		lists, err := h.users.ListUsers(ctx, sess.Token, view.Tab, refresh)
		if err != nil {
			apierrors.RespondWithResult(c, err, resp)
			return
		}
		resp.Data = lists
	case navigation.KindCampaignDetail:
		campaign, err := h.campaigns.GetCampaign(ctx, sess.Token, view.CampaignID)
		if err != nil {
			apierrors.RespondWithResult(c, err, resp)
			return
		}
		resp.Data = gin.H{"campaign": campaign}
	}

	c.JSON(http.StatusOK, resp)
}
