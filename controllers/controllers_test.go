package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/zuevus/mud-orders/models"
	"github.com/zuevus/mud-orders/rpc"
	"github.com/zuevus/mud-orders/services"
	"github.com/zuevus/mud-orders/testutil"
	"google.golang.org/grpc"
	"gorm.io/gorm"
)

// setupGateway wires the HTTP routes to a real gRPC backend over bufconn,
// backed by a private SQLite database.
func setupGateway(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	testutil.RequireTestEnvironment(t)

	db := testutil.OpenTestDB(t)
	srv := rpc.NewServer(services.NewOrderService(db), services.NewUserService(db))
	conn := testutil.ServeBufconn(t, srv, grpc.WithChainUnaryInterceptor(rpc.RequestIDClientInterceptor()))
	InitClients(conn)

	t.Cleanup(func() {
		SetClients(nil, nil)
		SetUserInfoProvider(nil)
		services.SetExportService(nil)
	})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	RegisterRoutes(router.Group("/api/v1"), testutil.MockAuthMiddleware())
	return router, db
}

func seedProfile(t *testing.T, db *gorm.DB, userID string, role models.UserRole) models.UserProfile {
	t.Helper()
	profile := models.UserProfile{
		UserID:      userID,
		UserName:    "Name of " + userID,
		Email:       userID + "@test.com",
		Role:        role,
		CreatedDate: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&profile).Error)
	return profile
}

// doRequest sends a request as userID. An empty userID sends no credentials.
func doRequest(router *gin.Engine, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-Test-User", userID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), "body: %s", w.Body.String())
	return response
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	response := decodeBody(t, w)
	errBody, ok := response["error"].(map[string]interface{})
	require.True(t, ok, "expected an error envelope, got %s", w.Body.String())
	return errBody["code"].(string)
}
