package controllers

import (
	"github.com/zuevus/mud-orders/rpc"
	"github.com/zuevus/mud-orders/services"
	"google.golang.org/grpc"
)

var (
	orderClient      rpc.OrdersClient
	userClient       rpc.UsersClient
	userInfoProvider services.UserInfoProvider
)

// InitClients points the gateway at the gRPC backend behind conn
func InitClients(conn grpc.ClientConnInterface) {
	SetClients(rpc.NewOrdersClient(conn), rpc.NewUsersClient(conn))
}

// SetClients sets the backend clients (primarily for testing)
func SetClients(orders rpc.OrdersClient, users rpc.UsersClient) {
	orderClient = orders
	userClient = users
}

// SetUserInfoProvider sets the identity lookup used by POST /users/me
func SetUserInfoProvider(p services.UserInfoProvider) {
	userInfoProvider = p
}
