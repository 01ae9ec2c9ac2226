package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const (
	UsersServiceName = "mud.Users"

	usersGetUserProfileMethod    = "/mud.Users/GetUserProfile"
	usersCreateUserProfileMethod = "/mud.Users/CreateUserProfile"
	usersUpdateUserProfileMethod = "/mud.Users/UpdateUserProfile"
	usersDeleteUserProfileMethod = "/mud.Users/DeleteUserProfile"
	usersGetUsersMethod          = "/mud.Users/GetUsers"
)

// UsersServer is the server API for the Users service
type UsersServer interface {
	GetUserProfile(context.Context, *GetUserRequest) (*UserResponse, error)
	CreateUserProfile(context.Context, *CreateUserRequest) (*UserResponse, error)
	UpdateUserProfile(context.Context, *UpdateUserRequest) (*UserResponse, error)
	DeleteUserProfile(context.Context, *DeleteUserRequest) (*DeleteUserResponse, error)
	GetUsers(context.Context, *GetUsersRequest) (*UsersResponse, error)
}

// UsersClient is the client API for the Users service
type UsersClient interface {
	GetUserProfile(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*UserResponse, error)
	CreateUserProfile(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*UserResponse, error)
	UpdateUserProfile(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*UserResponse, error)
	DeleteUserProfile(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*DeleteUserResponse, error)
	GetUsers(ctx context.Context, in *GetUsersRequest, opts ...grpc.CallOption) (*UsersResponse, error)
}

type usersClient struct {
	cc grpc.ClientConnInterface
}

// NewUsersClient creates a Users client on a connection
func NewUsersClient(cc grpc.ClientConnInterface) UsersClient {
	return &usersClient{cc: cc}
}

func (c *usersClient) GetUserProfile(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	out := new(UserResponse)
	if err := c.cc.Invoke(ctx, usersGetUserProfileMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) CreateUserProfile(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	out := new(UserResponse)
	if err := c.cc.Invoke(ctx, usersCreateUserProfileMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) UpdateUserProfile(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	out := new(UserResponse)
	if err := c.cc.Invoke(ctx, usersUpdateUserProfileMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) DeleteUserProfile(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*DeleteUserResponse, error) {
	out := new(DeleteUserResponse)
	if err := c.cc.Invoke(ctx, usersDeleteUserProfileMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *usersClient) GetUsers(ctx context.Context, in *GetUsersRequest, opts ...grpc.CallOption) (*UsersResponse, error) {
	out := new(UsersResponse)
	if err := c.cc.Invoke(ctx, usersGetUsersMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterUsersServer attaches a UsersServer implementation to s
func RegisterUsersServer(s grpc.ServiceRegistrar, srv UsersServer) {
	s.RegisterService(&UsersServiceDesc, srv)
}

// UsersServiceDesc describes the Users service for grpc.ServiceRegistrar
var UsersServiceDesc = grpc.ServiceDesc{
	ServiceName: UsersServiceName,
	HandlerType: (*UsersServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetUserProfile", Handler: usersGetUserProfileHandler},
		{MethodName: "CreateUserProfile", Handler: usersCreateUserProfileHandler},
		{MethodName: "UpdateUserProfile", Handler: usersUpdateUserProfileHandler},
		{MethodName: "DeleteUserProfile", Handler: usersDeleteUserProfileHandler},
		{MethodName: "GetUsers", Handler: usersGetUsersHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mud/users",
}

func usersGetUserProfileHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UsersServer).GetUserProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: usersGetUserProfileMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UsersServer).GetUserProfile(ctx, req.(*GetUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func usersCreateUserProfileHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UsersServer).CreateUserProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: usersCreateUserProfileMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UsersServer).CreateUserProfile(ctx, req.(*CreateUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func usersUpdateUserProfileHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UsersServer).UpdateUserProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: usersUpdateUserProfileMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UsersServer).UpdateUserProfile(ctx, req.(*UpdateUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func usersDeleteUserProfileHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UsersServer).DeleteUserProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: usersDeleteUserProfileMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UsersServer).DeleteUserProfile(ctx, req.(*DeleteUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func usersGetUsersHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUsersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UsersServer).GetUsers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: usersGetUsersMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UsersServer).GetUsers(ctx, req.(*GetUsersRequest))
	}
	return interceptor(ctx, in, info, handler)
}
