package role

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoleService interface {
	CreateRole(ctx context.Context, name, description string) (*Role, error)
	GetRoleByName(ctx context.Context, name string) (*Role, error)
	ListRoles(ctx context.Context) ([]Role, error)
	DeleteRole(ctx context.Context, id string) error
	// KnownRoles returns the full role-name -> id mapping, used by the
	// importer to filter spreadsheet role tokens.
	KnownRoles(ctx context.Context) (map[string]primitive.ObjectID, error)
	RoleNames(ctx context.Context, ids []string) ([]string, error)
}

type RoleServiceImpl struct {
	RoleRepo RoleRepository
}

func NewRoleService(roleRepo RoleRepository) RoleService {
	return &RoleServiceImpl{RoleRepo: roleRepo}
}

func (s *RoleServiceImpl) CreateRole(ctx context.Context, name, description string) (*Role, error) {
	if name == "" {
		return nil, errors.New("role name is required")
	}

	role := &Role{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.RoleRepo.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleServiceImpl) GetRoleByName(ctx context.Context, name string) (*Role, error) {
	return s.RoleRepo.FindByName(ctx, name)
}

func (s *RoleServiceImpl) ListRoles(ctx context.Context) ([]Role, error) {
	return s.RoleRepo.List(ctx)
}

func (s *RoleServiceImpl) DeleteRole(ctx context.Context, id string) error {
	return s.RoleRepo.Delete(ctx, id)
}

func (s *RoleServiceImpl) RoleNames(ctx context.Context, ids []string) ([]string, error) {
	roles, err := s.RoleRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names, nil
}

func (s *RoleServiceImpl) KnownRoles(ctx context.Context) (map[string]primitive.ObjectID, error) {
	roles, err := s.RoleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	known := make(map[string]primitive.ObjectID, len(roles))
	for _, r := range roles {
		known[r.Name] = r.ID
	}
	return known, nil
}
