package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/metrics"
)

const secret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func principalEngine() *gin.Engine {
	r := gin.New()
	r.GET("/who", AuthMiddleware(secret), func(c *gin.Context) {
		p, _ := PrincipalFrom(c)
		c.JSON(http.StatusOK, gin.H{"user": p.UserID, "kind": p.Kind, "shop": p.BarbershopID})
	})
	return r
}

func get(r http.Handler, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareBuildsPrincipal(t *testing.T) {
	r := principalEngine()

	w := get(r, "/who", "Bearer "+sign(t, jwt.MapClaims{"sub": 7, "role": "barbershop", "barbershopId": 3}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":7,"kind":"barbershop","shop":3}`, w.Body.String())

	w = get(r, "/who", "Bearer "+sign(t, jwt.MapClaims{"sub": 9}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":9,"kind":"client","shop":0}`, w.Body.String())
}

func TestAuthMiddlewareRejects(t *testing.T) {
	r := principalEngine()

	tests := []struct {
		name string
		auth string
		code string
	}{
		{"missing header", "", "invalid_authorization_header"},
		{"not bearer", "Basic abc", "invalid_authorization_header"},
		{"garbage token", "Bearer abc", "invalid_token"},
		{"unknown role", "Bearer " + sign(t, jwt.MapClaims{"sub": 1, "role": "root"}), "invalid_token_payload"},
		{"shop without id", "Bearer " + sign(t, jwt.MapClaims{"sub": 1, "role": "barbershop"}), "invalid_token_payload"},
		{"no subject", "Bearer " + sign(t, jwt.MapClaims{"role": "admin"}), "invalid_token_payload"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "/who", tt.auth)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
		})
	}
}

func TestAuthMiddlewareRejectsOtherSecret(t *testing.T) {
	other, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": 1}).SignedString([]byte("other"))
	require.NoError(t, err)

	w := get(principalEngine(), "/who", "Bearer "+other)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPrincipalFromMissing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := PrincipalFrom(c)
	assert.False(t, ok)

	c.Set(ContextPrincipal, reservation.Principal{UserID: 1, Kind: reservation.KindAdmin})
	p, ok := PrincipalFrom(c)
	assert.True(t, ok)
	assert.True(t, p.IsAdmin())
}

func TestCronTokenMiddleware(t *testing.T) {
	engine := func(s string) *gin.Engine {
		r := gin.New()
		r.DELETE("/stale", CronTokenMiddleware(s), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		return r
	}
	call := func(r http.Handler, auth string) int {
		req := httptest.NewRequest(http.MethodDelete, "/stale", nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	r := engine("cron-secret")
	assert.Equal(t, http.StatusNoContent, call(r, "Bearer cron-secret"))
	assert.Equal(t, http.StatusUnauthorized, call(r, "Bearer wrong"))
	assert.Equal(t, http.StatusUnauthorized, call(r, ""))

	assert.Equal(t, http.StatusForbidden, call(engine(""), "Bearer "))
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/id", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

	w := get(r, "/id", "")
	generated := w.Header().Get(HeaderRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	r := gin.New()
	r.Use(MetricsMiddleware(m))
	r.GET("/api/barbershops/:id/availability", func(c *gin.Context) { c.Status(http.StatusOK) })

	get(r, "/api/barbershops/1/availability", "")
	get(r, "/api/barbershops/2/availability", "")
	get(r, "/nope", "")

	count, err := testutil.GatherAndCount(reg, "barber_turnos_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCORSPreflight(t *testing.T) {
	preflight := func(allowed []string, origin string) *httptest.ResponseRecorder {
		r := gin.New()
		r.Use(CORSMiddleware(allowed))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := preflight(nil, "https://turnos.example")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://turnos.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), HeaderRequestID)

	w = preflight([]string{"https://turnos.example/"}, "https://turnos.example")
	assert.Equal(t, "https://turnos.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = preflight([]string{"https://turnos.example"}, "https://evil.example")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
