package handler

import (
	"net/http"

	"coordinator-console/internal/apierrors"
	"coordinator-console/internal/auth/processor"
	"coordinator-console/internal/navigation"
	"coordinator-console/internal/notify"
	"coordinator-console/internal/observability"
	"coordinator-console/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	secureCookie  bool
	logger        *observability.Logger
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse describes the signed-in user and where the console starts.
type SessionResponse struct {
	Session        *session.Session      `json:"session"`
	DefaultSection string                `json:"default_section"`
	Navigation     []navigation.NavEntry `json:"navigation"`
	Notification   *notify.Notification  `json:"notification,omitempty"`
}

func New(authProcessor processor.AuthProcessor, secureCookie bool, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, secureCookie: secureCookie, logger: logger}
}

// HandleLogin exchanges credentials for a session cookie
func (h *Handler) HandleLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	loggedIn, err := h.authProcessor.Login(ctx, req.Email, req.Password)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	session.WriteCookie(c, loggedIn.Cookie, h.authProcessor.TTL(), h.secureCookie)
	c.JSON(http.StatusOK, SessionResponse{
		Session:        &loggedIn.Session,
		DefaultSection: loggedIn.DefaultSection,
		Navigation:     navigation.Navigation(loggedIn.Session.Role),
		Notification:   notify.Success("Signed in successfully"),
	})
}

// HandleLogout destroys the session cookie. It succeeds without a session.
func (h *Handler) HandleLogout(c *gin.Context) {
	session.ClearCookie(c, h.secureCookie)
	c.JSON(http.StatusOK, gin.H{
		"notification": notify.Success("Signed out"),
	})
}

// HandleSession returns the current session
func (h *Handler) HandleSession(c *gin.Context) {
	sess, err := session.Current(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SessionResponse{
		Session:        sess,
		DefaultSection: navigation.DefaultSection(sess.Role),
		Navigation:     navigation.Navigation(sess.Role),
	})
}
