package domain

import "errors"

var (
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
)

var (
	MessageSuccessRegister   = "user registered successfully"
	MessageSuccessLogin      = "login successful"
	MessageSuccessGetUsers   = "success get users"
	MessageSuccessAddRole    = "role added to user"
	MessageSuccessRemoveRole = "role removed from user"
	MessageSuccessDeleteUser = "user deleted"
	MessageHealthy           = "API is up and running"

	MessageFailedRegister   = "failed to register user"
	MessageFailedLogin      = "failed to login"
	MessageFailedGetUsers   = "failed to get users"
	MessageFailedAddRole    = "failed to add role"
	MessageFailedRemoveRole = "failed to remove role"
	MessageFailedDeleteUser = "failed to delete user"
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=1,max=64"`
		Password string `json:"password" validate:"required,min=2"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	RoleRequest struct {
		Username string `json:"username" validate:"required"`
		Role     string `json:"role" validate:"required,oneof=user admin"`
	}

	DeleteUserRequest struct {
		Username string `json:"username" validate:"required"`
	}

	LoginResponse struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}

	UserResponse struct {
		ID       int      `json:"id"`
		Username string   `json:"username"`
		Roles    []string `json:"roles"`
	}
)
