package program

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProgramService interface {
	CreateProgram(ctx context.Context, program *Program) error
	GetProgramByID(ctx context.Context, id string) (*Program, error)
	ListPrograms(ctx context.Context) ([]Program, error)
	UpdateProgram(ctx context.Context, id string, program *Program) error
	DeleteProgram(ctx context.Context, id string) error
}

type ProgramServiceImpl struct {
	ProgramRepo ProgramRepository
}

func NewProgramService(programRepo ProgramRepository) ProgramService {
	return &ProgramServiceImpl{ProgramRepo: programRepo}
}

func (s *ProgramServiceImpl) CreateProgram(ctx context.Context, program *Program) error {
	if program.Code == "" || program.Name == "" {
		return errors.New("program code and name are required")
	}

	if program.ID.IsZero() {
		program.ID = primitive.NewObjectID()
	}
	program.CreatedAt = time.Now()
	program.UpdatedAt = time.Now()

	return s.ProgramRepo.Create(ctx, program)
}

func (s *ProgramServiceImpl) GetProgramByID(ctx context.Context, id string) (*Program, error) {
	return s.ProgramRepo.FindByID(ctx, id)
}

func (s *ProgramServiceImpl) ListPrograms(ctx context.Context) ([]Program, error) {
	return s.ProgramRepo.List(ctx)
}

func (s *ProgramServiceImpl) UpdateProgram(ctx context.Context, id string, program *Program) error {
	program.UpdatedAt = time.Now()
	return s.ProgramRepo.Update(ctx, id, program)
}

func (s *ProgramServiceImpl) DeleteProgram(ctx context.Context, id string) error {
	return s.ProgramRepo.Delete(ctx, id)
}
