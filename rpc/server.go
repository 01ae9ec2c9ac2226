package rpc

import (
	"github.com/zuevus/mud-orders/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// NewServer builds a gRPC server exposing mud.Orders and mud.Users
func NewServer(orders services.OrderService, users services.UserService, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			RequestIDInterceptor(),
			LoggingInterceptor(),
			RecoveryInterceptor(),
		),
	}, opts...)

	s := grpc.NewServer(opts...)
	RegisterOrdersServer(s, NewOrderServer(orders))
	RegisterUsersServer(s, NewUserServer(users))
	return s
}

// Dial opens a client connection to target using the JSON codec
func Dial(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
		grpc.WithChainUnaryInterceptor(RequestIDClientInterceptor()),
	}, opts...)

	return grpc.NewClient(target, opts...)
}
