package handler

import (
	"net/http"

	"coordinator-console/internal/apierrors"
	"coordinator-console/internal/clients/backend"
	"coordinator-console/internal/navigation"
	"coordinator-console/internal/notify"
	"coordinator-console/internal/observability"
	"coordinator-console/internal/session"
	"coordinator-console/internal/users/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.UserProcessor
	logger    *observability.Logger
}

func New(processor processor.UserProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateUserRequest struct {
	Role      backend.UserRole `json:"role" binding:"required,oneof=admin nurse"`
	FirstName string           `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string           `json:"last_name" binding:"required,min=1,max=100"`
	Email     string           `json:"email" binding:"required,email"`
	Password  string           `json:"password" binding:"required,min=8"`
	BrandID   int64            `json:"brand_id" binding:"omitempty,gt=0"`
}

// HandleListUsers lists the users of the section's tab. The section query
// parameter defaults to users and is resolved against the session's role.
func (h *Handler) HandleListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := session.Current(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	view, err := navigation.Resolve(sess, c.DefaultQuery("section", navigation.SectionUsers))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	if view.Kind != navigation.KindUserManagement {
		apierrors.RespondWithError(c, processor.ErrUnknownTab)
		return
	}

	lists, err := h.processor.ListUsers(ctx, sess.Token, view.Tab, c.Query("refresh") == "true")
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, lists)
}

// HandleCreateUser creates an admin or a nurse
func (h *Handler) HandleCreateUser(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := session.Current(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	err = h.processor.CreateUser(ctx, sess.Token, sess.Role, req.Role, backend.CreateUserRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		BrandID:   req.BrandID,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	label := "Nurse"
	if req.Role == backend.UserRoleAdmin {
		label = "Admin"
	}
	c.JSON(http.StatusCreated, gin.H{
		"role":         req.Role,
		"email":        req.Email,
		"notification": notify.Success(label + " created successfully"),
	})
}

// HandleChangeUserStatus is listed in the actions menu but the coordination API has no status call.
func (h *Handler) HandleChangeUserStatus(c *gin.Context) {
	apierrors.RespondWithError(c, apierrors.NotImplemented("Changing user status is not available yet"))
}

// HandleDeleteUser is listed in the actions menu but the coordination API has no delete call.
func (h *Handler) HandleDeleteUser(c *gin.Context) {
	apierrors.RespondWithError(c, apierrors.NotImplemented("Deleting users is not available yet"))
}
