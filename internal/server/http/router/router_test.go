package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/curatebox/boxops/internal/config"
	"github.com/curatebox/boxops/internal/server/http/handlers"
	testhelpers "github.com/curatebox/boxops/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.DashboardFacadeStub{BoxFacadeStub: &testhelpers.BoxFacadeStub{}}
	cfg := &config.Config{}
	engine := Setup(facade, testhelpers.HealthCheckerStub{}, cfg, logger)

	for _, path := range []string{
		"/api/health",
		"/api/customers",
		"/api/products",
		"/api/orders",
		"/api/boxes",
		"/api/selection",
		"/api/metrics/inventory",
		"/api/metrics/fulfillment",
		"/api/metrics/economics",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200 for %s, got %d", path, resp.Code)
		}
	}

	body, _ := json.Marshal(map[string]string{"name": "Winter Box"})
	req := httptest.NewRequest(http.MethodPost, "/api/boxes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for box submit, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/selection/1/toggle", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for selection toggle, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/selection", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 for selection clear, got %d", resp.Code)
	}
}

var _ handlers.DashboardFacade = (*testhelpers.DashboardFacadeStub)(nil)
