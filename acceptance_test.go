package main

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zuevus/mud-orders/config"
	"github.com/zuevus/mud-orders/rpc"
	"github.com/zuevus/mud-orders/testutil"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func freePort(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()
	return strconv.Itoa(lis.Addr().(*net.TCPAddr).Port)
}

// TestRunServesHTTPAndGRPC starts the real servers on a file-backed SQLite
// database and talks to both over the network.
func TestRunServesHTTPAndGRPC(t *testing.T) {
	testutil.RequireTestEnvironment(t)

	previousDB := config.GetDB()
	t.Cleanup(func() { config.SetDB(previousDB) })

	grpcPort := freePort(t)
	cfg := &config.Config{
		DatabaseURL:        "sqlite://" + filepath.Join(t.TempDir(), "acceptance.db"),
		Port:               freePort(t),
		GRPCPort:           grpcPort,
		GRPCTarget:         "127.0.0.1:" + grpcPort,
		GoEnv:              "test",
		CORSAllowedOrigins: []string{"http://localhost:5000"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, cfg) }()

	healthURL := "http://127.0.0.1:" + cfg.Port + "/api/v1/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(healthURL)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 50*time.Millisecond, "HTTP server should come up")

	resp, err := http.Get("http://127.0.0.1:" + cfg.Port + "/api/v1/database/status")
	require.NoError(t, err)
	var status struct {
		Success bool     `json:"success"`
		Tables  []string `json:"tables"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	resp.Body.Close()
	assert.True(t, status.Success)
	assert.Contains(t, status.Tables, "Orders")

	conn, err := rpc.Dial(cfg.GRPCTarget)
	require.NoError(t, err)
	defer conn.Close()

	callCtx, callCancel := context.WithTimeout(ctx, 5*time.Second)
	defer callCancel()

	users, err := rpc.NewUsersClient(conn).GetUsers(callCtx, &rpc.GetUsersRequest{FilterRole: rpc.UserRoleAdmin})
	require.NoError(t, err)
	require.Len(t, users.Users, 1, "only the seeded administrator exists")
	assert.Equal(t, config.DefaultSeed[0].UserID, users.Users[0].UserID)
	assert.Equal(t, rpc.UserRoleAdmin, users.Users[0].Role)

	order, err := rpc.NewOrdersClient(conn).CreateOrder(callCtx, &rpc.CreateOrderRequest{
		Title:       "Acceptance",
		Type:        rpc.OrderTypeConsultation,
		Price:       10,
		Deadline:    timestamppb.New(time.Now().Add(24 * time.Hour)),
		ClientName:  "Client",
		ClientEmail: "client@test.com",
		UserID:      config.DefaultSeed[0].UserID,
	})
	require.NoError(t, err)
	assert.Equal(t, rpc.OrderStatusNew, order.Status)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(20 * time.Second):
		t.Fatal("run did not return after cancellation")
	}
}
