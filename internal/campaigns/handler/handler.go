package handler

import (
	"errors"
	"net/http"
	"strconv"

	"coordinator-console/internal/apierrors"
	"coordinator-console/internal/campaigns/processor"
	"coordinator-console/internal/clients/backend"
	"coordinator-console/internal/logo"
	"coordinator-console/internal/notify"
	"coordinator-console/internal/observability"
	"coordinator-console/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCampaignForm is the multipart form for creating a campaign with an optional logo file.
type CreateCampaignForm struct {
	Name        string  `form:"name" binding:"required,min=1,max=255"`
	BrandID     int64   `form:"brand_id" binding:"required,gt=0"`
	CampaignURL string  `form:"campaign_url" binding:"omitempty,url"`
	Notes       string  `form:"notes"`
	WorkNumber  string  `form:"work_number"`
	NurseIDs    []int64 `form:"nurse_ids" binding:"dive,gt=0"`
}

// UpdateCampaignRequest only changes the fields that are present.
type UpdateCampaignRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	LogoURL     *string `json:"logo_url,omitempty"`
	CampaignURL *string `json:"campaign_url,omitempty" binding:"omitempty,url"`
	Notes       *string `json:"notes,omitempty"`
	WorkNumber  *string `json:"work_number,omitempty"`
}

type ChangeStatusRequest struct {
	Status backend.CampaignStatus `json:"status" binding:"required,oneof=Draft UAT Prod Deactivated"`
}

type AssignNursesRequest struct {
	BrandID  int64   `json:"brand_id" binding:"required,gt=0"`
	NurseIDs []int64 `json:"nurse_ids" binding:"required,min=1,dive,gt=0"`
}

type RevokeNursesRequest struct {
	BrandID  int64   `json:"brand_id" binding:"required,gt=0"`
	NurseIDs []int64 `json:"nurse_ids" binding:"required,min=1,dive,gt=0"`
}

// HandleListCampaigns lists the campaigns visible to the session
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := session.Current(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	campaigns, err := h.processor.ListCampaigns(ctx, sess.Token, c.Query("refresh") == "true")
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// HandleGetCampaign retrieves one campaign with its editability
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := session.Current(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.GetCampaign(ctx, sess.Token, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

// HandleCreateCampaign uploads the optional logo, then creates the campaign
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := session.Current(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	var form CreateCampaignForm
	if err := c.ShouldBind(&form); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	in := processor.CreateCampaignInput{
		Name:        form.Name,
		BrandID:     form.BrandID,
		CampaignURL: form.CampaignURL,
		Notes:       form.Notes,
		WorkNumber:  form.WorkNumber,
		NurseIDs:    form.NurseIDs,
	}
	if fh, err := c.FormFile("logo"); err == nil {
		img, err := logo.ReadFile(fh)
		if err != nil {
			apierrors.RespondWithError(c, err)
			return
		}
		in.Logo = &img
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_name", Value: form.Name})

	result, err := h.processor.CreateCampaign(ctx, sess.Token, in)
	if err != nil {
		if len(result.Committed) > 0 {
			apierrors.RespondWithResult(c, err, result)
			return
		}
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"campaign":     result,
		"notification": notify.Success("Campaign created successfully"),
	})
}

// HandleUpdateCampaign edits a campaign that is still in Draft or UAT
func (h *Handler) HandleUpdateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := session.Current(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	err = h.processor.UpdateCampaign(ctx, sess.Token, backend.UpdateCampaignRequest{
		CampaignID:  campaignID,
		Name:        req.Name,
		LogoURL:     req.LogoURL,
		CampaignURL: req.CampaignURL,
		Notes:       req.Notes,
		WorkNumber:  req.WorkNumber,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaign_id":  campaignID,
		"notification": notify.Success("Campaign updated successfully"),
	})
}

// HandleChangeStatus moves a campaign to a new lifecycle status
func (h *Handler) HandleChangeStatus(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := session.Current(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaign, err := h.processor.ChangeStatus(ctx, sess.Token, campaignID, req.Status)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaign":     campaign,
		"notification": notify.Success("Campaign moved to " + string(campaign.Status)),
	})
}

// HandleDeactivateCampaign ends a campaign
func (h *Handler) HandleDeactivateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := session.Current(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.Deactivate(ctx, sess.Token, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaign":     campaign,
		"notification": notify.Success("Campaign deactivated"),
	})
}

// HandleAssignNurses assigns nurses to a campaign
func (h *Handler) HandleAssignNurses(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := session.Current(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	var req AssignNursesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	if err := h.processor.AssignNurses(ctx, sess.Token, campaignID, req.BrandID, req.NurseIDs); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaign_id":  campaignID,
		"notification": notify.Success("Nurses assigned successfully"),
	})
}

// HandleRevokeNurses removes nurses from a campaign
func (h *Handler) HandleRevokeNurses(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := session.Current(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	var req RevokeNursesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	err = h.processor.RevokeNurses(ctx, sess.Token, backend.RevokeNursesRequest{
		NurseIDs:   req.NurseIDs,
		BrandID:    req.BrandID,
		CampaignID: campaignID,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaign_id":  campaignID,
		"notification": notify.Success("Nurses removed successfully"),
	})
}

// HandleDeleteCampaign is listed in the actions menu but the coordination API has no delete call.
func (h *Handler) HandleDeleteCampaign(c *gin.Context) {
	apierrors.RespondWithError(c, apierrors.NotImplemented("Deleting campaigns is not available yet"))
}

func (h *Handler) getCampaignID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("campaign_id"), 10, 64)
	if err != nil || id <= 0 {
		apierrors.RespondWithError(c, processor.ErrInvalidCampaignID)
		return 0, false
	}
	return id, true
}
