package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-campus/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrEmailTaken = errors.New("email already in use")

type UserService interface {
	ListUsers(ctx context.Context, filter map[string]interface{}, page, limit int64) ([]User, int64, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	CreateUser(ctx context.Context, user *User, plainPassword string) error
	UpdateUserRoles(ctx context.Context, id string, roleIDs []string) error
	DeleteUser(ctx context.Context, id string) error
}

type UserServiceImpl struct {
	UserRepo UserRepository
}

func NewUserService(userRepo UserRepository) UserService {
	return &UserServiceImpl{UserRepo: userRepo}
}

func (s *UserServiceImpl) ListUsers(ctx context.Context, filter map[string]interface{}, page, limit int64) ([]User, int64, error) {
	if filter == nil {
		filter = make(map[string]interface{})
	}

	offset := (page - 1) * limit
	return s.UserRepo.List(ctx, filter, limit, offset)
}

func (s *UserServiceImpl) GetUserByID(ctx context.Context, id string) (*User, error) {
	return s.UserRepo.FindByID(ctx, id)
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, user *User, plainPassword string) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Name == "" || user.Email == "" {
		return errors.New("name and email are required")
	}

	if _, err := s.UserRepo.FindActiveByEmail(ctx, user.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	if err := utils.ValidatePassword(plainPassword); err != nil {
		return err
	}
	hash, err := utils.HashPassword(plainPassword)
	if err != nil {
		return err
	}
	user.Password = hash

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.Status == "" {
		user.Status = StatusActive
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	return s.UserRepo.Create(ctx, user)
}

func (s *UserServiceImpl) UpdateUserRoles(ctx context.Context, id string, roleIDs []string) error {
	user, err := s.UserRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	var objectIDs []primitive.ObjectID
	for _, roleID := range roleIDs {
		oid, err := primitive.ObjectIDFromHex(roleID)
		if err != nil {
			return errors.New("invalid role ID: " + roleID)
		}
		objectIDs = append(objectIDs, oid)
	}

	user.Roles = objectIDs
	user.UpdatedAt = time.Now()

	return s.UserRepo.Update(ctx, id, user)
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	return s.UserRepo.SoftDelete(ctx, id)
}
