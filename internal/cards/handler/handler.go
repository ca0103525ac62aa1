package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"coordinator-console/internal/apierrors"
	"coordinator-console/internal/cards/preview"
	"coordinator-console/internal/cards/processor"
	"coordinator-console/internal/cards/vcard"
	"coordinator-console/internal/logo"
	"coordinator-console/internal/notify"
	"coordinator-console/internal/observability"
	"coordinator-console/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Handler struct {
	processor processor.CardProcessor
	upgrader  websocket.Upgrader
	logger    *observability.Logger
}

// New creates the card handler. Live preview sockets are only accepted from
// allowedOrigin; an empty allowedOrigin accepts same-host requests only.
func New(processor processor.CardProcessor, allowedOrigin string, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     originChecker(allowedOrigin),
		},
		logger: logger,
	}
}

type GenerateRequest struct {
	Contact  preview.Contact   `json:"contact"`
	LogoURL  *string           `json:"logo_url,omitempty"`
	Campaign *preview.Campaign `json:"campaign,omitempty"`
}

// PreviewRequest is one preview render. Visibility defaults to every field
// shown and Skin defaults to the requesting device.
type PreviewRequest struct {
	Visibility  *preview.FieldVisibility `json:"visibility,omitempty"`
	Toggle      []string                 `json:"toggle,omitempty"`
	Contact     preview.Contact          `json:"contact"`
	LogoDataURL string                   `json:"logo_data_url,omitempty"`
	Campaign    *preview.Campaign        `json:"campaign,omitempty"`
	Skin        string                   `json:"skin,omitempty"`
}

type PreviewResponse struct {
	Skin preview.Skin `json:"skin"`
	Tree preview.Node `json:"tree"`
	HTML string       `json:"html"`
}

type VCFRequest struct {
	Visibility *preview.FieldVisibility `json:"visibility,omitempty"`
	Contact    preview.Contact          `json:"contact"`
	Campaign   *preview.Campaign        `json:"campaign,omitempty"`
	LogoURL    string                   `json:"logo_url,omitempty"`
}

type ShareRequest struct {
	PatientURL   string              `json:"patient_url" binding:"required,url"`
	ContactName  string              `json:"contact_name" binding:"required"`
	ContactPhone string              `json:"contact_phone"`
	ContactEmail string              `json:"contact_email" binding:"omitempty,email"`
	CampaignName string              `json:"campaign_name"`
	Channels     []processor.Channel `json:"channels" binding:"required,min=1,dive,oneof=sms email"`
}

// HandleGenerate asks the backend for a contact card. Requests missing the
// name, phone number or campaign are answered with attempted=false and no
// notification.
func (h *Handler) HandleGenerate(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := session.Current(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.GenerateContactArtifact(ctx, sess.Token, req.Contact, req.LogoURL, req.Campaign)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	if !result.Attempted {
		c.JSON(http.StatusOK, result)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"attempted":    result.Attempted,
		"artifact":     result.Artifact,
		"notification": notify.Success("Contact card generated"),
	})
}

// HandlePreview renders the card preview tree and its HTML
func (h *Handler) HandlePreview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	resp, err := render(req, preview.SkinForDevice(observability.GetDeviceOS(c)))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleLivePreview upgrades to a websocket. Every inbound frame is a full
// PreviewRequest and is answered with one PreviewResponse frame, or an error
// frame when the request cannot be rendered.
func (h *Handler) HandleLivePreview(c *gin.Context) {
	ctx := c.Request.Context()
	defaultSkin := preview.SkinForDevice(observability.GetDeviceOS(c))

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error(ctx, "failed to upgrade live preview connection", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(logo.MaxSize * 2)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.InfoWithError(ctx, "live preview connection closed", err)
			}
			return
		}

		var out any
		var req PreviewRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			out = gin.H{"error": "Invalid preview frame", "code": apierrors.CodeInvalidInput}
		} else if resp, err := render(req, defaultSkin); err != nil {
			apiErr := apierrors.MapError(err)
			out = gin.H{"error": apiErr.Message, "code": apiErr.Code}
		} else {
			out = resp
		}

		if err := conn.WriteJSON(out); err != nil {
			h.logger.Error(ctx, "failed to write live preview frame", err)
			return
		}
	}
}

// HandleVCF returns the vCard text of the visible fields, as a download by
// default or as JSON when the client asks for it.
func (h *Handler) HandleVCF(c *gin.Context) {
	var req VCFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	visibility := preview.AllVisible()
	if req.Visibility != nil {
		visibility = *req.Visibility
	}

	text, err := h.processor.ContactCard(visibility, req.Contact, req.Campaign, req.LogoURL)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	if c.Query("format") == "json" || strings.Contains(c.GetHeader("Accept"), gin.MIMEJSON) {
		c.JSON(http.StatusOK, gin.H{"vcf": text})
		return
	}

	filename := vcfFilename(req.Contact.Name)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"; filename*=UTF-8''`+url.PathEscape(filename))
	c.Data(http.StatusOK, vcard.ContentType(), []byte(text))
}

// HandleUploadLogo validates an image and stores it as the brand logo
func (h *Handler) HandleUploadLogo(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := session.Current(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	brandID, err := strconv.ParseInt(c.PostForm("brand_id"), 10, 64)
	if err != nil || brandID <= 0 {
		apierrors.RespondWithError(c, processor.ErrInvalidBrandID)
		return
	}

	fh, err := c.FormFile("logo")
	if err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	data, err := logo.ReadRaw(fh)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	result, err := h.processor.IngestLogo(ctx, sess.Token, brandID, fh.Filename, data)
	if err != nil {
		if result.Reference != "" {
			apierrors.RespondWithResult(c, err, result)
			return
		}
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logo":         result,
		"notification": notify.Success("Logo uploaded successfully"),
	})
}

// HandleShare sends the patient URL of a generated card over the requested channels
func (h *Handler) HandleShare(c *gin.Context) {
	ctx := c.Request.Context()

	var req ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.Share(ctx, processor.ShareRequest{
		PatientURL:   req.PatientURL,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		CampaignName: req.CampaignName,
		Channels:     req.Channels,
	})
	if err != nil {
		if errors.Is(err, processor.ErrShareFailed) {
			apierrors.RespondWithResult(c, err, result)
			return
		}
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"outcomes":     result.Outcomes,
		"notification": notify.Success("Contact card sent"),
	})
}

// HandleChannels lists the share channels configured on this server
func (h *Handler) HandleChannels(c *gin.Context) {
	channels := h.processor.Channels()
	if channels == nil {
		channels = []processor.Channel{}
	}
	c.JSON(http.StatusOK, gin.H{"channels": channels})
}

func render(req PreviewRequest, defaultSkin preview.Skin) (PreviewResponse, error) {
	skin := defaultSkin
	if req.Skin != "" {
		parsed, err := preview.ParseSkin(req.Skin)
		if err != nil {
			return PreviewResponse{}, err
		}
		skin = parsed
	}

	visibility := preview.AllVisible()
	if req.Visibility != nil {
		visibility = *req.Visibility
	}
	for _, field := range req.Toggle {
		visibility = visibility.Toggle(field)
	}

	tree, err := preview.Render(preview.Input{
		Visibility:  visibility,
		Contact:     req.Contact,
		LogoDataURL: req.LogoDataURL,
		Campaign:    req.Campaign,
		Skin:        skin,
	})
	if err != nil {
		return PreviewResponse{}, err
	}
	html, err := preview.RenderHTML(tree)
	if err != nil {
		return PreviewResponse{}, err
	}
	return PreviewResponse{Skin: skin, Tree: tree, HTML: html}, nil
}

func vcfFilename(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r == ' ':
			b.WriteRune('_')
		case r == '"' || r == '\\' || r == '/' || r < 0x20:
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "contact.vcf"
	}
	return b.String() + ".vcf"
}

func originChecker(allowedOrigin string) func(r *http.Request) bool {
	allowed := strings.TrimRight(allowedOrigin, "/")
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if allowed != "" && strings.EqualFold(origin, allowed) {
			return true
		}
		u, err := url.Parse(origin)
		return err == nil && strings.EqualFold(u.Host, r.Host)
	}
}
