package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/aurelion-dashboard-api/internal/config"
	"github.com/vfg2006/aurelion-dashboard-api/internal/domain"
	schedulermocks "github.com/vfg2006/aurelion-dashboard-api/internal/scheduler/mocks"
	authmocks "github.com/vfg2006/aurelion-dashboard-api/internal/usecases/authenticating/mocks"
	dashmocks "github.com/vfg2006/aurelion-dashboard-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/aurelion-dashboard-api/pkg/log"
	"github.com/vfg2006/aurelion-dashboard-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T) (*Server, *authmocks.MockAuthenticator, *dashmocks.MockDashboarder) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	authenticator := authmocks.NewMockAuthenticator(ctrl)
	dashboard := dashmocks.NewMockDashboarder(ctrl)
	syncer := schedulermocks.NewMockDatasetSyncer(ctrl)

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "8050"},
		Cors:   config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	srv, err := New(cfg, authenticator, dashboard, syncer)
	require.NoError(t, err)
	return srv, authenticator, dashboard
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(nil, nil, nil, nil)
	assert.Error(t, err)
}

func TestServer_ProtectedRouteWithoutToken(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/kpis", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(log.CorrelationIDHeader))
}

func TestServer_AuthenticatedRequest(t *testing.T) {
	srv, authenticator, dashboard := newTestServer(t)

	authenticator.EXPECT().ValidateToken("abc").Return(&domain.Claims{UserID: 1, UserRoleID: middleware.RoleViewer}, nil)
	dashboard.EXPECT().GetFilterOptions(gomock.Any()).Return(&domain.FilterOptions{Cities: []string{"Cordoba"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/filters", nil)
	req.Header.Set("Authorization", "Bearer abc")
	req.Header.Set(log.CorrelationIDHeader, "req-123")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(log.CorrelationIDHeader))
}

func TestServer_Preflight(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/dashboard/charts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
