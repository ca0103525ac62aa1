package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coordinator-console/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "superAdmin", want: RoleSuperAdmin},
		{in: "admin", want: RoleAdmin},
		{in: "nurse", want: RoleNurse},
		{in: "SuperAdmin", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	raw, expires, err := codec.Encode(Session{Email: "nurse@company.com", Role: RoleNurse, Token: "t1"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	got, err := codec.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, Session{Email: "nurse@company.com", Role: RoleNurse, Token: "t1", IsAuthenticated: true}, got)
}

func TestCodec_RejectsTampering(t *testing.T) {
	raw, _, err := NewCodec("secret", time.Hour).Encode(Session{Email: "a@b.c", Role: RoleAdmin, Token: "t"})
	require.NoError(t, err)

	_, err = NewCodec("other-secret", time.Hour).Decode(raw)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestCodec_Expired(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	codec := NewCodecWithClock("secret", time.Hour, clock)

	raw, _, err := codec.Encode(Session{Email: "a@b.c", Role: RoleAdmin, Token: "t"})
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = codec.Decode(raw)
	assert.True(t, errors.Is(err, ErrExpiredSession), "got %v", err)
}

func TestCodec_EncodeRequiresTokenAndRole(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	_, _, err := codec.Encode(Session{Email: "a@b.c", Role: RoleAdmin})
	assert.ErrorIs(t, err, ErrIncompleteLogin)

	_, _, err = codec.Encode(Session{Email: "a@b.c", Role: "owner", Token: "t"})
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func newGatedRouter(codec *Codec) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Holder(codec, observability.NewNopLogger()))
	r.GET("/open", func(c *gin.Context) {
		_, ok := FromContext(c)
		c.JSON(http.StatusOK, gin.H{"has_session": ok})
	})
	r.GET("/gated", RequireSession("https://console.example.com/login"), func(c *gin.Context) {
		sess, _ := FromContext(c)
		c.JSON(http.StatusOK, gin.H{"role": sess.Role})
	})
	return r
}

func TestRequireSession(t *testing.T) {
	codec := NewCodec("secret", time.Hour)
	r := newGatedRouter(codec)
	raw, _, err := codec.Encode(Session{Email: "a@b.c", Role: RoleAdmin, Token: "t"})
	require.NoError(t, err)

	t.Run("valid cookie passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: raw})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"role":"admin"}`, w.Body.String())
	})

	t.Run("api caller without cookie gets 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gated", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"redirect":"https://console.example.com/login"`)
		assert.Contains(t, w.Body.String(), `"level":"error"`)
	})

	t.Run("browser without cookie is redirected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://console.example.com/login", w.Header().Get("Location"))
	})

	t.Run("garbage cookie is ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-jwt"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"has_session":false}`, w.Body.String())
	})
}

func TestSessionValid(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.Valid())
	assert.False(t, (&Session{Token: "t"}).Valid())
	assert.False(t, (&Session{IsAuthenticated: true}).Valid())
	assert.True(t, (&Session{Token: "t", IsAuthenticated: true}).Valid())
}
