package session

import (
	"net/http"
	"strings"
	"time"

	"coordinator-console/internal/notify"
	"coordinator-console/internal/observability"

	"github.com/gin-gonic/gin"
)

const contextKey = "Session"

// Holder loads the persisted session record, when present and valid, into the gin context.
// It never rejects a request; use RequireSession for gated routes.
func Holder(codec *Codec, logger *observability.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(CookieName)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		sess, err := codec.Decode(raw)
		if err != nil {
			logger.InfoWithError(c.Request.Context(), "ignoring unusable session cookie", err)
			c.Next()
			return
		}

		ctx := observability.WithFields(c.Request.Context(),
			observability.Field{Key: "session_email", Value: sess.Email},
			observability.Field{Key: "session_role", Value: string(sess.Role)},
		)
		c.Request = c.Request.WithContext(ctx)
		Set(c, &sess)
		c.Next()
	}
}

// RequireSession stops requests without a valid session. Browsers are redirected to
// loginURL; API callers get a 401 carrying the same target.
func RequireSession(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := FromContext(c); ok && sess.Valid() {
			c.Next()
			return
		}

		if strings.Contains(c.GetHeader("Accept"), "text/html") {
			c.Redirect(http.StatusFound, loginURL)
			c.Abort()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":        "Login required",
			"code":         "LOGIN_REQUIRED",
			"redirect":     loginURL,
			"notification": notify.Error("Your session has ended. Please log in again."),
		})
	}
}

// Set stores sess on the gin context.
func Set(c *gin.Context, sess *Session) {
	c.Set(contextKey, sess)
}

// FromContext returns the session loaded by Holder.
func FromContext(c *gin.Context) (*Session, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*Session)
	return sess, ok && sess != nil
}

// Current returns the valid session of the request or ErrInvalidSession.
func Current(c *gin.Context) (*Session, error) {
	sess, ok := FromContext(c)
	if !ok || !sess.Valid() {
		return nil, ErrInvalidSession
	}
	return sess, nil
}

// WriteCookie persists the encoded session record. Only the login flow calls it.
func WriteCookie(c *gin.Context, value string, ttl time.Duration, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie destroys the persisted session record. Only the logout flow calls it.
func ClearCookie(c *gin.Context, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
