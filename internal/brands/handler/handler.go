package handler

import (
	"errors"
	"net/http"
	"strconv"

	"coordinator-console/internal/apierrors"
	"coordinator-console/internal/brands/processor"
	"coordinator-console/internal/clients/backend"
	"coordinator-console/internal/logo"
	"coordinator-console/internal/notify"
	"coordinator-console/internal/observability"
	"coordinator-console/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.BrandProcessor
	logger    *observability.Logger
}

func New(processor processor.BrandProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateBrandForm is the multipart form for creating a brand with an optional logo file.
type CreateBrandForm struct {
	Name        string `form:"name" binding:"required,min=1,max=255"`
	Description string `form:"description"`
}

type UpdateBrandRequest struct {
	BrandName   string `json:"brand_name" binding:"required,min=1,max=255"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
}

// ReplaceLogoForm carries the brand fields that are re-sent with the new logo.
type ReplaceLogoForm struct {
	BrandName   string `form:"brand_name" binding:"required,min=1,max=255"`
	Description string `form:"description"`
}

type AssignAdminsRequest struct {
	AdminIDs []int64 `json:"admin_ids" binding:"required,min=1,dive,gt=0"`
}

// HandleListBrands lists the brands visible to the session
func (h *Handler) HandleListBrands(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := session.Current(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	brands, err := h.processor.ListBrands(ctx, sess.Token, c.Query("refresh") == "true")
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

// HandleCreateBrand creates a brand and, when a logo file is attached, uploads and attaches it
func (h *Handler) HandleCreateBrand(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := session.Current(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	var form CreateBrandForm
	if err := c.ShouldBind(&form); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	in := processor.CreateBrandInput{Name: form.Name, Description: form.Description}
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

	ctx = observability.WithFields(ctx, observability.Field{Key: "brand_name", Value: form.Name})

	result, err := h.processor.CreateBrand(ctx, sess.Token, in)
	if err != nil {
		if result.BrandID > 0 {
			apierrors.RespondWithResult(c, err, result)
			return
		}
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"brand":        result,
		"notification": notify.Success("Brand created successfully"),
	})
}

// HandleUpdateBrand replaces the name, description and logo URL of a brand
func (h *Handler) HandleUpdateBrand(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := session.Current(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	brandID, ok := h.getBrandID(c)
	if !ok {
		return
	}

	var req UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	err = h.processor.UpdateBrand(ctx, sess.Token, backend.UpdateBrandRequest{
		BrandID:     brandID,
		BrandName:   req.BrandName,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"brand_id":     brandID,
		"notification": notify.Success("Brand updated successfully"),
	})
}

// HandleReplaceLogo uploads a new logo for an existing brand
func (h *Handler) HandleReplaceLogo(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := session.Current(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	brandID, ok := h.getBrandID(c)
	if !ok {
		return
	}

	var form ReplaceLogoForm
	if err := c.ShouldBind(&form); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	fh, err := c.FormFile("logo")
	if err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	img, err := logo.ReadFile(fh)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	url, err := h.processor.ReplaceLogo(ctx, sess.Token, backend.UpdateBrandRequest{
		BrandID:     brandID,
		BrandName:   form.BrandName,
		Description: form.Description,
	}, img)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"brand_id":     brandID,
		"logo_url":     url,
		"notification": notify.Success("Logo updated successfully"),
	})
}

// HandleAssignAdmins assigns admins to a brand
func (h *Handler) HandleAssignAdmins(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := session.Current(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	brandID, ok := h.getBrandID(c)
	if !ok {
		return
	}

	var req AssignAdminsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	if err := h.processor.AssignAdmins(ctx, sess.Token, brandID, req.AdminIDs); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"brand_id":     brandID,
		"notification": notify.Success("Admins assigned successfully"),
	})
}

// HandleDeleteBrand is listed in the actions menu but the coordination API has no delete call.
func (h *Handler) HandleDeleteBrand(c *gin.Context) {
	apierrors.RespondWithError(c, apierrors.NotImplemented("Deleting brands is not available yet"))
}

func (h *Handler) getBrandID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("brand_id"), 10, 64)
	if err != nil || id <= 0 {
		apierrors.RespondWithError(c, processor.ErrInvalidBrandID)
		return 0, false
	}
	return id, true
}
