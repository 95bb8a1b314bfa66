package import_feature

import (
	"context"
	"io"
	"time"

	"go-campus/internal/features/academicyear"
	"go-campus/internal/features/call"
	"go-campus/internal/features/program"
	"go-campus/internal/features/role"
	"go-campus/internal/features/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ImportService interface {
	// ImportUsers runs the account pipeline over one spreadsheet. Row
	// failures are data in the report, never errors; the returned error is
	// reserved for infrastructure faults outside the run itself.
	ImportUsers(ctx context.Context, file io.Reader, filename string, opts Options) (*Report, error)
	// ImportCalls runs the call pipeline over one spreadsheet.
	ImportCalls(ctx context.Context, file io.Reader, filename string, opts Options) (*Report, error)
	GetJob(ctx context.Context, id string) (*ImportJob, error)
	GetUserJobs(ctx context.Context, userID primitive.ObjectID) ([]ImportJob, error)
}

type ImportServiceImpl struct {
	ImportRepo  ImportRepository
	UserRepo    user.UserRepository
	RoleService role.RoleService
	ProgramRepo program.ProgramRepository
	YearRepo    academicyear.AcademicYearRepository
	CallService call.CallService
	Logger      *zap.Logger
}

func NewImportService(
	importRepo ImportRepository,
	userRepo user.UserRepository,
	roleService role.RoleService,
	programRepo program.ProgramRepository,
	yearRepo academicyear.AcademicYearRepository,
	callService call.CallService,
	logger *zap.Logger,
) ImportService {
	return &ImportServiceImpl{
		ImportRepo:  importRepo,
		UserRepo:    userRepo,
		RoleService: roleService,
		ProgramRepo: programRepo,
		YearRepo:    yearRepo,
		CallService: callService,
		Logger:      logger,
	}
}

func (s *ImportServiceImpl) GetJob(ctx context.Context, id string) (*ImportJob, error) {
	return s.ImportRepo.Get(ctx, id)
}

func (s *ImportServiceImpl) GetUserJobs(ctx context.Context, userID primitive.ObjectID) ([]ImportJob, error) {
	return s.ImportRepo.FindByUserID(ctx, userID, 50)
}

func (s *ImportServiceImpl) ImportUsers(ctx context.Context, file io.Reader, filename string, opts Options) (*Report, error) {
	job := s.startJob(ctx, KindUsers, filename, opts)
	report := newReport(opts.DryRun)

	rows, err := readRows(file, filename)
	if err != nil {
		return report, s.abortRun(ctx, job, report, err)
	}

	knownRoles, err := s.RoleService.KnownRoles(ctx)
	if err != nil {
		return report, s.abortRun(ctx, job, report, err)
	}

	importer := newUserImporter(s.UserRepo, knownRoles)

	for _, row := range rows {
		result, errs := importer.processRow(ctx, row)
		if errs != nil {
			report.fail(row, errs)
			continue
		}

		if opts.DryRun {
			report.Processed++
			importer.accept(result.user.Email)
			continue
		}

		// Each row commits on its own; a later failure never touches
		// rows already persisted.
		now := time.Now()
		result.user.CreatedAt = now
		result.user.UpdatedAt = now
		if err := s.UserRepo.Create(ctx, result.user); err != nil {
			report.fail(row, map[string][]string{"general": {"Failed to save user: " + err.Error()}})
			continue
		}

		report.Processed++
		importer.accept(result.user.Email)

		if result.generated {
			report.GeneratedCredentials = append(report.GeneratedCredentials, GeneratedCredential{
				UserID: result.user.ID,
				Email:  result.user.Email,
				Secret: result.secret,
			})
		}
	}

	s.finishJob(ctx, job, report)
	return report, nil
}

func (s *ImportServiceImpl) ImportCalls(ctx context.Context, file io.Reader, filename string, opts Options) (*Report, error) {
	job := s.startJob(ctx, KindCalls, filename, opts)
	report := newReport(opts.DryRun)

	rows, err := readRows(file, filename)
	if err != nil {
		return report, s.abortRun(ctx, job, report, err)
	}

	importer, err := s.newCallImporter(ctx)
	if err != nil {
		return report, s.abortRun(ctx, job, report, err)
	}

	for _, row := range rows {
		c, errs := importer.processRow(row)
		if errs != nil {
			report.fail(row, errs)
			continue
		}

		if opts.DryRun {
			report.Processed++
			continue
		}

		if err := s.CallService.CreateCall(ctx, c, opts.ActorID); err != nil {
			report.fail(row, map[string][]string{"general": {"Failed to save call: " + err.Error()}})
			continue
		}
		report.Processed++
	}

	s.finishJob(ctx, job, report)
	return report, nil
}

// newCallImporter loads the reference candidate sets for one run.
func (s *ImportServiceImpl) newCallImporter(ctx context.Context) (*callImporter, error) {
	programs, err := s.ProgramRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	years, err := s.YearRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	importer := &callImporter{}
	for _, p := range programs {
		importer.programs = append(importer.programs, refCandidate{ID: p.ID, Code: p.Code, Name: p.Name})
	}
	for _, y := range years {
		importer.years = append(importer.years, refCandidate{ID: y.ID, Code: y.Code, Name: y.Name})
	}
	return importer, nil
}

func (s *ImportServiceImpl) startJob(ctx context.Context, kind, filename string, opts Options) *ImportJob {
	job := &ImportJob{
		ID:        primitive.NewObjectID(),
		UserID:    opts.ActorID,
		Kind:      kind,
		FileName:  filename,
		DryRun:    opts.DryRun,
		Status:    ImportStatusProcessing,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.ImportRepo.Create(ctx, job); err != nil {
		s.Logger.Error("Failed to record import job", zap.Error(err))
	}
	return job
}

// abortRun handles a catastrophic read failure: nothing was processed,
// the whole run is reported as a single synthetic row-0 entry.
func (s *ImportServiceImpl) abortRun(ctx context.Context, job *ImportJob, report *Report, cause error) error {
	s.Logger.Error("Import run aborted",
		zap.String("kind", job.Kind),
		zap.String("file", job.FileName),
		zap.Error(cause))

	report.RowErrors = append(report.RowErrors, RowError{
		Row:    0,
		Errors: map[string][]string{"general": {cause.Error()}},
	})

	job.Status = ImportStatusFailed
	job.Errors = flattenErrors(report.RowErrors)
	job.UpdatedAt = time.Now()
	if err := s.ImportRepo.Update(ctx, job.ID.Hex(), job); err != nil {
		s.Logger.Error("Failed to update import job", zap.Error(err))
	}
	return nil
}

func (s *ImportServiceImpl) finishJob(ctx context.Context, job *ImportJob, report *Report) {
	now := time.Now()
	job.Status = ImportStatusCompleted
	job.TotalRows = report.Processed + report.Failed
	job.Processed = report.Processed
	job.Failed = report.Failed
	job.Errors = flattenErrors(report.RowErrors)
	job.UpdatedAt = now
	job.CompletedAt = &now

	if err := s.ImportRepo.Update(ctx, job.ID.Hex(), job); err != nil {
		s.Logger.Error("Failed to update import job", zap.Error(err))
	}

	s.Logger.Info("Import run finished",
		zap.String("kind", job.Kind),
		zap.Bool("dry_run", job.DryRun),
		zap.Int("processed", job.Processed),
		zap.Int("failed", job.Failed))
}

// flattenErrors converts the per-row error maps to the flat shape stored
// on the job document.
func flattenErrors(rowErrors []RowError) []ImportError {
	var flat []ImportError
	for _, re := range rowErrors {
		for field, messages := range re.Errors {
			for _, msg := range messages {
				flat = append(flat, ImportError{Row: re.Row, Field: field, Message: msg})
			}
		}
	}
	return flat
}
