package rpc

import (
	"context"

	"github.com/zuevus/mud-orders/services"
)

// UserServer serves mud.Users on top of a services.UserService
type UserServer struct {
	svc services.UserService
}

// NewUserServer wraps svc for registration with RegisterUsersServer
func NewUserServer(svc services.UserService) *UserServer {
	return &UserServer{svc: svc}
}

func (s *UserServer) GetUserProfile(ctx context.Context, req *GetUserRequest) (*UserResponse, error) {
	user, err := s.svc.GetUserProfile(ctx, req.UserID)
	if err != nil {
		return nil, toStatus(err)
	}
	return UserToResponse(user), nil
}

func (s *UserServer) CreateUserProfile(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	in, err := profileInput(req.UserID, req.UserName, req.Email, req.Role)
	if err != nil {
		return nil, err
	}

	user, err := s.svc.CreateUserProfile(ctx, in)
	if err != nil {
		return nil, toStatus(err)
	}
	return UserToResponse(user), nil
}

func (s *UserServer) UpdateUserProfile(ctx context.Context, req *UpdateUserRequest) (*UserResponse, error) {
	in, err := profileInput(req.UserID, req.UserName, req.Email, req.Role)
	if err != nil {
		return nil, err
	}

	user, err := s.svc.UpdateUserProfile(ctx, in)
	if err != nil {
		return nil, toStatus(err)
	}
	return UserToResponse(user), nil
}

func (s *UserServer) DeleteUserProfile(ctx context.Context, req *DeleteUserRequest) (*DeleteUserResponse, error) {
	ok, err := s.svc.DeleteUserProfile(ctx, req.UserID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &DeleteUserResponse{Success: ok}, nil
}

func (s *UserServer) GetUsers(ctx context.Context, req *GetUsersRequest) (*UsersResponse, error) {
	role, ok := req.FilterRole.ToModel()
	if !ok {
		return nil, invalidArgumentf("Unknown user role %d", req.FilterRole)
	}

	users, err := s.svc.GetUsers(ctx, role)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &UsersResponse{Users: make([]*UserResponse, 0, len(users))}
	for i := range users {
		resp.Users = append(resp.Users, UserToResponse(&users[i]))
	}
	return resp, nil
}

func profileInput(userID, userName, email string, role UserRole) (services.UserProfileInput, error) {
	m, ok := role.ToModel()
	if !ok {
		return services.UserProfileInput{}, invalidArgumentf("Unknown user role %d", role)
	}
	return services.UserProfileInput{
		UserID:   userID,
		UserName: userName,
		Email:    email,
		Role:     m,
	}, nil
}
