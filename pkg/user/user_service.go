package user

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"recipe-catalog/domain"
	"recipe-catalog/entities"
	"recipe-catalog/internal/utils"
	"recipe-catalog/pkg/jwt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		GetAllUsers(ctx context.Context) ([]domain.UserResponse, error)
		AddRole(ctx context.Context, username, role string) (domain.UserResponse, error)
		RemoveRole(ctx context.Context, username, role string) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, username string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		log            *zap.Logger
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, log *zap.Logger) UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		log:            log.Named("user_service"),
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	username := strings.TrimSpace(req.Username)

	taken, err := s.userRepository.CheckUsername(ctx, nil, username)
	if err != nil {
		s.log.Error("username lookup failed", zap.String("username", username), zap.Error(err))
		return domain.UserResponse{}, domain.NewPersistenceFailure("register user", err)
	}
	if taken {
		return domain.UserResponse{}, domain.NewConflict(domain.ErrUsernameTaken.Error())
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return domain.UserResponse{}, domain.NewPersistenceFailure("hash password", err)
	}

	user := &entities.User{
		Username:     username,
		PasswordHash: hashed,
		Roles:        domain.RoleUser,
	}
	if err := s.userRepository.CreateUser(ctx, nil, user); err != nil {
		// a concurrent registration can pass CheckUsername and still lose on the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.NewConflict(domain.ErrUsernameTaken.Error())
		}
		s.log.Error("create user failed", zap.String("username", username), zap.Error(err))
		return domain.UserResponse{}, domain.NewPersistenceFailure("register user", err)
	}

	return ToUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, nil, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.NewUnauthorized(domain.ErrInvalidCredentials.Error())
		}
		return domain.LoginResponse{}, domain.NewPersistenceFailure("login", err)
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return domain.LoginResponse{}, domain.NewUnauthorized(domain.ErrInvalidCredentials.Error())
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username, SplitRoles(user.Roles))
	if err != nil {
		s.log.Error("token generation failed", zap.Int("user_id", user.ID), zap.Error(err))
		return domain.LoginResponse{}, domain.NewPersistenceFailure("login", err)
	}

	return domain.LoginResponse{Token: token, Username: user.Username}, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetUsers(ctx, nil)
	if err != nil {
		return nil, domain.NewPersistenceFailure("get users", err)
	}

	res := make([]domain.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, ToUserResponse(u))
	}
	return res, nil
}

// AddRole grants role to the named user. Granting a role the user already
// holds leaves the stored list unchanged.
func (s *userService) AddRole(ctx context.Context, username, role string) (domain.UserResponse, error) {
	return s.updateRoles(ctx, "add role", username, func(roles []string) []string {
		for _, r := range roles {
			if r == role {
				return roles
			}
		}
		return append(roles, role)
	})
}

func (s *userService) RemoveRole(ctx context.Context, username, role string) (domain.UserResponse, error) {
	return s.updateRoles(ctx, "remove role", username, func(roles []string) []string {
		kept := make([]string, 0, len(roles))
		for _, r := range roles {
			if r != role {
				kept = append(kept, r)
			}
		}
		return kept
	})
}

func (s *userService) updateRoles(ctx context.Context, op, username string, edit func([]string) []string) (domain.UserResponse, error) {
	var res domain.UserResponse
	err := s.userRepository.Transaction(ctx, func(tx *gorm.DB) error {
		user, err := s.loadUser(ctx, tx, username)
		if err != nil {
			return err
		}

		user.Roles = JoinRoles(edit(SplitRoles(user.Roles))...)
		if err := s.userRepository.UpdateUserRoles(ctx, tx, user); err != nil {
			return err
		}

		res = ToUserResponse(user)
		return nil
	})
	if err != nil {
		return domain.UserResponse{}, s.fail(op, err)
	}
	return res, nil
}

func (s *userService) DeleteUser(ctx context.Context, username string) error {
	err := s.userRepository.Transaction(ctx, func(tx *gorm.DB) error {
		user, err := s.loadUser(ctx, tx, username)
		if err != nil {
			return err
		}
		return s.userRepository.DeleteUser(ctx, tx, user.ID)
	})
	if err != nil {
		return s.fail("delete user", err)
	}
	return nil
}

func (s *userService) loadUser(ctx context.Context, tx *gorm.DB, username string) (*entities.User, error) {
	username = strings.TrimSpace(username)
	user, err := s.userRepository.GetUserByUsername(ctx, tx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundNamed("User", "username", username)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) fail(operation string, err error) error {
	wrapped := domain.WrapPersistence(operation, err)
	if errors.Is(wrapped, domain.ErrPersistence) {
		s.log.Error("user persistence failure", zap.String("operation", operation), zap.Error(err))
	}
	return wrapped
}

func ToUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Roles:    SplitRoles(user.Roles),
	}
}

// SplitRoles turns the stored comma separated role list into a slice.
func SplitRoles(roles string) []string {
	out := []string{}
	for _, role := range strings.Split(roles, ",") {
		if role = strings.TrimSpace(role); role != "" {
			out = append(out, role)
		}
	}
	return out
}

func JoinRoles(roles ...string) string {
	return strings.Join(roles, ",")
}
