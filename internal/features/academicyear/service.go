package academicyear

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AcademicYearService interface {
	CreateAcademicYear(ctx context.Context, year *AcademicYear) error
	GetAcademicYearByID(ctx context.Context, id string) (*AcademicYear, error)
	ListAcademicYears(ctx context.Context) ([]AcademicYear, error)
	DeleteAcademicYear(ctx context.Context, id string) error
}

type AcademicYearServiceImpl struct {
	YearRepo AcademicYearRepository
}

func NewAcademicYearService(yearRepo AcademicYearRepository) AcademicYearService {
	return &AcademicYearServiceImpl{YearRepo: yearRepo}
}

func (s *AcademicYearServiceImpl) CreateAcademicYear(ctx context.Context, year *AcademicYear) error {
	if year.Code == "" || year.Name == "" {
		return errors.New("academic year code and name are required")
	}
	if !year.EndDate.IsZero() && year.EndDate.Before(year.StartDate) {
		return errors.New("academic year end date precedes start date")
	}

	if year.ID.IsZero() {
		year.ID = primitive.NewObjectID()
	}
	year.CreatedAt = time.Now()
	year.UpdatedAt = time.Now()

	return s.YearRepo.Create(ctx, year)
}

func (s *AcademicYearServiceImpl) GetAcademicYearByID(ctx context.Context, id string) (*AcademicYear, error) {
	return s.YearRepo.FindByID(ctx, id)
}

func (s *AcademicYearServiceImpl) ListAcademicYears(ctx context.Context) ([]AcademicYear, error) {
	return s.YearRepo.List(ctx)
}

func (s *AcademicYearServiceImpl) DeleteAcademicYear(ctx context.Context, id string) error {
	return s.YearRepo.Delete(ctx, id)
}
