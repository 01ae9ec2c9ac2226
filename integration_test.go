package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/zuevus/mud-orders/config"
	"github.com/zuevus/mud-orders/controllers"
	"github.com/zuevus/mud-orders/models"
	"github.com/zuevus/mud-orders/rpc"
	"github.com/zuevus/mud-orders/services"
	"github.com/zuevus/mud-orders/testutil"
	"google.golang.org/grpc"
)

func testConfig() *config.Config {
	return &config.Config{
		DatabaseURL:        "file::memory:",
		Port:               "8080",
		GRPCPort:           "9090",
		GoEnv:              "test",
		CORSAllowedOrigins: []string{"http://localhost:5000"},
	}
}

// GatewayIntegrationSuite drives the full HTTP router against a gRPC backend
// served over bufconn.
type GatewayIntegrationSuite struct {
	suite.Suite
	router *gin.Engine
}

func TestGatewayIntegrationSuite(t *testing.T) {
	suite.Run(t, new(GatewayIntegrationSuite))
}

func (s *GatewayIntegrationSuite) SetupTest() {
	testutil.RequireTestEnvironment(s.T())
	gin.SetMode(gin.TestMode)

	db := testutil.OpenTestDB(s.T())
	s.Require().NoError(config.SeedDatabase(db, config.DefaultSeed))

	srv := rpc.NewServer(services.NewOrderService(db), services.NewUserService(db))
	conn := testutil.ServeBufconn(s.T(), srv, grpc.WithChainUnaryInterceptor(rpc.RequestIDClientInterceptor()))
	controllers.InitClients(conn)
	s.T().Cleanup(func() { controllers.SetClients(nil, nil) })

	s.router = setupRouter(testConfig(), testutil.MockAuthMiddleware())

	_, err := services.NewUserService(db).CreateUserProfile(s.T().Context(), services.UserProfileInput{
		UserID: "auth0|customer", UserName: "Customer", Email: "customer@test.com", Role: models.UserRoleUser,
	})
	s.Require().NoError(err)
}

func (s *GatewayIntegrationSuite) do(method, path, userID string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-Test-User", userID)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	return w, response
}

func (s *GatewayIntegrationSuite) TestOrderLifecycle() {
	admin := config.DefaultSeed[0].UserID

	w, response := s.do(http.MethodPost, "/api/v1/orders", "auth0|customer", map[string]interface{}{
		"title":        "Mobile app",
		"type":         "MobileApp",
		"price":        4200,
		"deadline":     time.Now().UTC().AddDate(0, 2, 0).Format(time.RFC3339),
		"client_name":  "Client",
		"client_email": "client@test.com",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	id := int(response["data"].(map[string]interface{})["id"].(float64))

	w, response = s.do(http.MethodGet, "/api/v1/orders", admin, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(float64(1), response["count"])

	w, response = s.do(http.MethodPut, fmt.Sprintf("/api/v1/orders/%d", id), admin, map[string]interface{}{
		"title":  "Mobile app",
		"type":   "MobileApp",
		"status": "Completed",
		"price":  4200,
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("Completed", response["data"].(map[string]interface{})["status"])

	w, response = s.do(http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", id), "auth0|customer", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("Completed", response["data"].(map[string]interface{})["status"])

	w, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/orders/%d", id), "auth0|customer", nil)
	s.Equal(http.StatusOK, w.Code)

	w, _ = s.do(http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", id), admin, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *GatewayIntegrationSuite) TestSeededAdminManagesUsers() {
	admin := config.DefaultSeed[0].UserID

	w, response := s.do(http.MethodGet, "/api/v1/users?role=User", admin, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(float64(1), response["count"])

	w, response = s.do(http.MethodGet, "/api/v1/users", admin, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(float64(2), response["count"])

	w, _ = s.do(http.MethodGet, "/api/v1/users", "auth0|customer", nil)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *GatewayIntegrationSuite) TestRequiresAuthentication() {
	w, _ := s.do(http.MethodGet, "/api/v1/orders", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)

	w, _ = s.do(http.MethodGet, "/api/v1/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *GatewayIntegrationSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/orders", nil)
	req.Header.Set("Origin", "http://localhost:5000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNoContent, w.Code)
	s.Equal("http://localhost:5000", w.Header().Get("Access-Control-Allow-Origin"))
}

func (s *GatewayIntegrationSuite) TestRequestIDEchoed() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(controllers.RequestIDHeader, "trace-me")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal("trace-me", w.Header().Get(controllers.RequestIDHeader))
}

// TestRoutesDisabledWithoutAuth checks that order and user routes are not
// mounted when no authenticator is configured
func TestRoutesDisabledWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := setupRouter(testConfig(), nil)

	for _, path := range []string{"/api/v1/orders", "/api/v1/users/me"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusNotFound {
			t.Errorf("GET %s: expected 404, got %d", path, w.Code)
		}
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("health: expected 200, got %d", w.Code)
	}
}
