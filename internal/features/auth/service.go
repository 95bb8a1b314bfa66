package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-campus/internal/features/user"
	"go-campus/pkg/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *user.User, error)
}

type AuthServiceImpl struct {
	UserRepo user.UserRepository
	RoleSvc  RoleNamer
}

// RoleNamer resolves role IDs back to names for the JWT claims.
type RoleNamer interface {
	RoleNames(ctx context.Context, ids []string) ([]string, error)
}

func NewAuthService(userRepo user.UserRepository, roleSvc RoleNamer) AuthService {
	return &AuthServiceImpl{UserRepo: userRepo, RoleSvc: roleSvc}
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, *user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.UserRepo.FindActiveByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !utils.CheckPassword(u.Password, password) {
		return "", nil, ErrInvalidCredentials
	}

	var roleIDs []string
	for _, id := range u.Roles {
		roleIDs = append(roleIDs, id.Hex())
	}
	roleNames, err := s.RoleSvc.RoleNames(ctx, roleIDs)
	if err != nil {
		roleNames = nil
	}

	token, err := utils.GenerateToken(u.ID, roleNames)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	u.LastLogin = &now
	u.UpdatedAt = now
	_ = s.UserRepo.Update(ctx, u.ID.Hex(), u)

	return token, u, nil
}
