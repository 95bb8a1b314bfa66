package import_feature

import (
	"context"
	"strings"
	"testing"

	"go-campus/internal/features/academicyear"
	"go-campus/internal/features/call"
	"go-campus/internal/features/program"
	"go-campus/internal/features/role"
	"go-campus/internal/features/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ---- mocks ----

type mockUserRepo struct {
	byEmail map[string]*user.User
	created []*user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byEmail: make(map[string]*user.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	m.created = append(m.created, u)
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepo) FindActiveByEmail(ctx context.Context, email string) (*user.User, error) {
	if u, ok := m.byEmail[email]; ok && u.Status != user.StatusDeleted {
		return u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]user.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepo) Update(ctx context.Context, id string, u *user.User) error { return nil }
func (m *mockUserRepo) SoftDelete(ctx context.Context, id string) error           { return nil }
func (m *mockUserRepo) EnsureIndexes(ctx context.Context) error                   { return nil }

type mockImportRepo struct {
	jobs map[string]*ImportJob
}

func newMockImportRepo() *mockImportRepo {
	return &mockImportRepo{jobs: make(map[string]*ImportJob)}
}

func (m *mockImportRepo) Create(ctx context.Context, job *ImportJob) error {
	m.jobs[job.ID.Hex()] = job
	return nil
}

func (m *mockImportRepo) Get(ctx context.Context, id string) (*ImportJob, error) {
	if job, ok := m.jobs[id]; ok {
		return job, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockImportRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]ImportJob, error) {
	return nil, nil
}

func (m *mockImportRepo) Update(ctx context.Context, id string, job *ImportJob) error {
	m.jobs[id] = job
	return nil
}

type mockRoleService struct {
	known map[string]primitive.ObjectID
}

func (m *mockRoleService) CreateRole(ctx context.Context, name, description string) (*role.Role, error) {
	return nil, nil
}
func (m *mockRoleService) GetRoleByName(ctx context.Context, name string) (*role.Role, error) {
	return nil, mongo.ErrNoDocuments
}
func (m *mockRoleService) ListRoles(ctx context.Context) ([]role.Role, error) { return nil, nil }
func (m *mockRoleService) DeleteRole(ctx context.Context, id string) error    { return nil }
func (m *mockRoleService) KnownRoles(ctx context.Context) (map[string]primitive.ObjectID, error) {
	return m.known, nil
}
func (m *mockRoleService) RoleNames(ctx context.Context, ids []string) ([]string, error) {
	return nil, nil
}

type mockProgramRepo struct {
	programs []program.Program
}

func (m *mockProgramRepo) Create(ctx context.Context, p *program.Program) error { return nil }
func (m *mockProgramRepo) FindByID(ctx context.Context, id string) (*program.Program, error) {
	return nil, mongo.ErrNoDocuments
}
func (m *mockProgramRepo) List(ctx context.Context) ([]program.Program, error) {
	return m.programs, nil
}
func (m *mockProgramRepo) Update(ctx context.Context, id string, p *program.Program) error {
	return nil
}
func (m *mockProgramRepo) Delete(ctx context.Context, id string) error  { return nil }
func (m *mockProgramRepo) EnsureIndexes(ctx context.Context) error      { return nil }

type mockYearRepo struct {
	years []academicyear.AcademicYear
}

func (m *mockYearRepo) Create(ctx context.Context, y *academicyear.AcademicYear) error { return nil }
func (m *mockYearRepo) FindByID(ctx context.Context, id string) (*academicyear.AcademicYear, error) {
	return nil, mongo.ErrNoDocuments
}
func (m *mockYearRepo) List(ctx context.Context) ([]academicyear.AcademicYear, error) {
	return m.years, nil
}
func (m *mockYearRepo) Delete(ctx context.Context, id string) error { return nil }
func (m *mockYearRepo) EnsureIndexes(ctx context.Context) error     { return nil }

type mockCallService struct {
	created []*call.Call
}

func (m *mockCallService) CreateCall(ctx context.Context, c *call.Call, actorID primitive.ObjectID) error {
	c.CreatedBy = actorID
	c.UpdatedBy = actorID
	m.created = append(m.created, c)
	return nil
}

func (m *mockCallService) GetCallByID(ctx context.Context, id string) (*call.Call, error) {
	return nil, mongo.ErrNoDocuments
}

func (m *mockCallService) ListCalls(ctx context.Context, filter map[string]interface{}, page, limit int64) ([]call.Call, int64, error) {
	return nil, 0, nil
}

func (m *mockCallService) UpdateCall(ctx context.Context, id string, c *call.Call, actorID primitive.ObjectID) error {
	return nil
}

func (m *mockCallService) DeleteCall(ctx context.Context, id string) error { return nil }

func (m *mockCallService) CloseExpired(ctx context.Context) (int64, error) { return 0, nil }

// ---- fixtures ----

type importFixture struct {
	service   ImportService
	userRepo  *mockUserRepo
	callSvc   *mockCallService
	jobRepo   *mockImportRepo
	adminRole primitive.ObjectID
	editRole  primitive.ObjectID
	programID primitive.ObjectID
	yearID    primitive.ObjectID
}

func newImportFixture() *importFixture {
	f := &importFixture{
		userRepo:  newMockUserRepo(),
		callSvc:   &mockCallService{},
		jobRepo:   newMockImportRepo(),
		adminRole: primitive.NewObjectID(),
		editRole:  primitive.NewObjectID(),
		programID: primitive.NewObjectID(),
		yearID:    primitive.NewObjectID(),
	}

	roleSvc := &mockRoleService{known: map[string]primitive.ObjectID{
		"admin":  f.adminRole,
		"editor": f.editRole,
	}}
	programRepo := &mockProgramRepo{programs: []program.Program{
		{ID: f.programID, Code: "ERA", Name: "Erasmus+"},
	}}
	yearRepo := &mockYearRepo{years: []academicyear.AcademicYear{
		{ID: f.yearID, Code: "2024-25", Name: "Academic Year 2024/2025"},
	}}

	f.service = NewImportService(f.jobRepo, f.userRepo, roleSvc, programRepo, yearRepo, f.callSvc, zap.NewNop())
	return f
}

func importUsersCSV(t *testing.T, f *importFixture, csvData string, opts Options) *Report {
	t.Helper()
	report, err := f.service.ImportUsers(context.Background(), strings.NewReader(csvData), "users.csv", opts)
	if err != nil {
		t.Fatalf("ImportUsers() error = %v", err)
	}
	return report
}

func importCallsCSV(t *testing.T, f *importFixture, csvData string, opts Options) *Report {
	t.Helper()
	report, err := f.service.ImportCalls(context.Background(), strings.NewReader(csvData), "calls.csv", opts)
	if err != nil {
		t.Fatalf("ImportCalls() error = %v", err)
	}
	return report
}

const callHeaders = "Program,Academic Year,Title,Type,Modality,Number of Places,Destinations,Estimated Start Date,Estimated End Date\n"

// ---- user import ----

func TestImportUsersCommitIsolation(t *testing.T) {
	f := newImportFixture()
	csvData := "Name,Email,Password,Roles\n" +
		"Alice,alice@example.org,Secret123,admin\n" +
		"Bob,not-an-email,Secret123,\n" +
		"Carol,carol@example.org,Secret123,editor\n"

	report := importUsersCSV(t, f, csvData, Options{})

	if report.Processed != 2 || report.Failed != 1 {
		t.Fatalf("processed/failed = %d/%d, want 2/1", report.Processed, report.Failed)
	}
	if report.Processed+report.Failed != 3 {
		t.Errorf("row-count conservation violated")
	}
	if len(f.userRepo.created) != 2 {
		t.Errorf("persisted %d users, want 2", len(f.userRepo.created))
	}
	if len(report.RowErrors) != 1 || report.RowErrors[0].Row != 3 {
		t.Fatalf("row errors = %+v, want a single entry for row 3", report.RowErrors)
	}
	if _, ok := report.RowErrors[0].Errors["email"]; !ok {
		t.Errorf("expected an email error, got %v", report.RowErrors[0].Errors)
	}

	job, err := f.jobRepo.Get(context.Background(), jobID(t, f))
	if err != nil {
		t.Fatalf("job not recorded: %v", err)
	}
	if job.Status != ImportStatusCompleted || job.Processed != 2 || job.Failed != 1 {
		t.Errorf("job = %+v, want completed with 2/1", job)
	}
}

func jobID(t *testing.T, f *importFixture) string {
	t.Helper()
	for id := range f.jobRepo.jobs {
		return id
	}
	t.Fatal("no import job recorded")
	return ""
}

func TestImportUsersDryRunPersistsNothing(t *testing.T) {
	f := newImportFixture()
	csvData := "Name,Email,Password,Roles\n" +
		"Alice,alice@example.org,,\n" +
		"Bob,not-an-email,,\n"

	report := importUsersCSV(t, f, csvData, Options{DryRun: true})

	if !report.DryRun {
		t.Error("report should echo dry-run mode")
	}
	if report.Processed != 1 || report.Failed != 1 {
		t.Errorf("processed/failed = %d/%d, want 1/1", report.Processed, report.Failed)
	}
	if len(f.userRepo.created) != 0 {
		t.Errorf("dry run persisted %d users", len(f.userRepo.created))
	}
	// No entity exists yet to attach a secret to.
	if len(report.GeneratedCredentials) != 0 {
		t.Errorf("dry run reported %d credentials", len(report.GeneratedCredentials))
	}
}

func TestImportUsersDuplicateEmailWithinFile(t *testing.T) {
	f := newImportFixture()
	csvData := "Name,Email,Password,Roles\n" +
		"Alice,alice@example.org,Secret123,\n" +
		"Alice Again,ALICE@Example.org,Secret123,\n"

	report := importUsersCSV(t, f, csvData, Options{})

	if report.Processed != 1 || report.Failed != 1 {
		t.Fatalf("processed/failed = %d/%d, want 1/1", report.Processed, report.Failed)
	}
	if report.RowErrors[0].Row != 3 {
		t.Errorf("the second occurrence should fail, got row %d", report.RowErrors[0].Row)
	}
}

func TestImportUsersDryRunSeesEarlierRows(t *testing.T) {
	f := newImportFixture()
	csvData := "Name,Email,Password,Roles\n" +
		"Alice,alice@example.org,Secret123,\n" +
		"Alice Again,alice@example.org,Secret123,\n"

	report := importUsersCSV(t, f, csvData, Options{DryRun: true})

	if report.Processed != 1 || report.Failed != 1 {
		t.Errorf("processed/failed = %d/%d, want 1/1", report.Processed, report.Failed)
	}
}

func TestImportUsersExistingEmailRejected(t *testing.T) {
	f := newImportFixture()
	f.userRepo.byEmail["alice@example.org"] = &user.User{
		ID:     primitive.NewObjectID(),
		Email:  "alice@example.org",
		Status: user.StatusActive,
	}

	report := importUsersCSV(t, f, "Name,Email,Password,Roles\nAlice,alice@example.org,Secret123,\n", Options{})

	if report.Failed != 1 || report.Processed != 0 {
		t.Errorf("processed/failed = %d/%d, want 0/1", report.Processed, report.Failed)
	}
}

func TestImportUsersGeneratedCredentials(t *testing.T) {
	f := newImportFixture()
	csvData := "Name,Email,Password,Roles\n" +
		"Alice,alice@example.org,,\n" +
		"Bob,bob@example.org,,\n" +
		"Carol,carol@example.org,Chosen-Pass1,\n"

	report := importUsersCSV(t, f, csvData, Options{SendCredentials: true})

	if report.Processed != 3 {
		t.Fatalf("processed = %d, want 3", report.Processed)
	}
	// Only the generated secrets are reported, never user-supplied ones.
	if len(report.GeneratedCredentials) != 2 {
		t.Fatalf("credentials = %d, want 2", len(report.GeneratedCredentials))
	}

	first, second := report.GeneratedCredentials[0], report.GeneratedCredentials[1]
	if len(first.Secret) < 12 || len(second.Secret) < 12 {
		t.Errorf("generated secrets too short: %d, %d", len(first.Secret), len(second.Secret))
	}
	if first.Secret == second.Secret {
		t.Error("two generated secrets are identical")
	}

	// Stored passwords are hashes, not the plaintext.
	for _, u := range f.userRepo.created {
		if u.Password == first.Secret || u.Password == second.Secret || u.Password == "Chosen-Pass1" {
			t.Errorf("plaintext password stored for %s", u.Email)
		}
	}
}

func TestImportUsersUnknownRoleTolerance(t *testing.T) {
	f := newImportFixture()
	csvData := "Name,Email,Password,Roles\n" +
		"Alice,alice@example.org,Secret123,\"admin,not-a-role,editor\"\n" +
		"Bob,bob@example.org,Secret123,\"not-a-role-1,not-a-role-2\"\n"

	report := importUsersCSV(t, f, csvData, Options{})

	if report.Failed != 0 {
		t.Fatalf("unexpected failures: %+v", report.RowErrors)
	}
	if len(f.userRepo.created) != 2 {
		t.Fatalf("persisted %d users, want 2", len(f.userRepo.created))
	}

	alice := f.userRepo.created[0]
	if len(alice.Roles) != 2 || alice.Roles[0] != f.adminRole || alice.Roles[1] != f.editRole {
		t.Errorf("alice roles = %v, want [admin editor]", alice.Roles)
	}

	bob := f.userRepo.created[1]
	if len(bob.Roles) != 0 {
		t.Errorf("bob roles = %v, want none", bob.Roles)
	}
}

// ---- call import ----

func TestImportCallsDateFormats(t *testing.T) {
	f := newImportFixture()
	csvData := callHeaders +
		"ERA,2024-25,Autumn Exchange,student,long,10,\"France, Germany\",2024-09-01,2025-06-30\n" +
		"Erasmus+,2024-25,Spring Exchange,staff,short,5,France; Germany,01/09/2024,30/06/2025\n"

	report := importCallsCSV(t, f, csvData, Options{ActorID: primitive.NewObjectID()})

	if report.Failed != 0 {
		t.Fatalf("unexpected failures: %+v", report.RowErrors)
	}
	if len(f.callSvc.created) != 2 {
		t.Fatalf("persisted %d calls, want 2", len(f.callSvc.created))
	}

	for i, c := range f.callSvc.created {
		if got := c.EstimatedStartDate.Format("2006-01-02"); got != "2024-09-01" {
			t.Errorf("call %d start date = %s, want 2024-09-01", i, got)
		}
		if got := c.EstimatedEndDate.Format("2006-01-02"); got != "2025-06-30" {
			t.Errorf("call %d end date = %s, want 2025-06-30", i, got)
		}
		if len(c.Destinations) != 2 || c.Destinations[0] != "France" || c.Destinations[1] != "Germany" {
			t.Errorf("call %d destinations = %v", i, c.Destinations)
		}
		if c.ProgramID != f.programID || c.AcademicYearID != f.yearID {
			t.Errorf("call %d references not resolved", i)
		}
	}
}

func TestImportCallsEndBeforeStartRejected(t *testing.T) {
	f := newImportFixture()
	csvData := callHeaders +
		"ERA,2024-25,Backwards,student,long,10,France,2025-06-30,2024-09-01\n"

	report := importCallsCSV(t, f, csvData, Options{})

	if report.Failed != 1 || report.Processed != 0 {
		t.Fatalf("processed/failed = %d/%d, want 0/1", report.Processed, report.Failed)
	}
	if len(f.callSvc.created) != 0 {
		t.Error("an invalid call was persisted")
	}
	if _, ok := report.RowErrors[0].Errors[colEndDate]; !ok {
		t.Errorf("expected an end-date error, got %v", report.RowErrors[0].Errors)
	}
}

func TestImportCallsUnknownReference(t *testing.T) {
	f := newImportFixture()
	csvData := callHeaders +
		"NOPE,2024-25,Lost,student,long,10,France,,\n"

	report := importCallsCSV(t, f, csvData, Options{})

	if report.Failed != 1 {
		t.Fatalf("expected the row to fail")
	}
	if msgs := report.RowErrors[0].Errors[colProgram]; len(msgs) == 0 {
		t.Errorf("expected a program reference error, got %v", report.RowErrors[0].Errors)
	}
}

func TestImportCallsProvenanceStamping(t *testing.T) {
	f := newImportFixture()
	actor := primitive.NewObjectID()
	csvData := callHeaders +
		"ERA,2024-25,Stamped,student,long,3,France,,\n"

	report := importCallsCSV(t, f, csvData, Options{ActorID: actor})

	if report.Processed != 1 {
		t.Fatalf("expected the row to succeed: %+v", report.RowErrors)
	}
	c := f.callSvc.created[0]
	if c.CreatedBy != actor || c.UpdatedBy != actor {
		t.Errorf("provenance not stamped: created_by=%s updated_by=%s", c.CreatedBy.Hex(), c.UpdatedBy.Hex())
	}
}

func TestImportCatastrophicReadError(t *testing.T) {
	f := newImportFixture()

	report, err := f.service.ImportCalls(context.Background(), strings.NewReader("junk"), "calls.pdf", Options{})
	if err != nil {
		t.Fatalf("ImportCalls() error = %v", err)
	}

	if report.Processed != 0 || report.Failed != 0 {
		t.Errorf("no rows were seen, counts = %d/%d", report.Processed, report.Failed)
	}
	if len(report.RowErrors) != 1 || report.RowErrors[0].Row != 0 {
		t.Fatalf("expected a single synthetic row-0 entry, got %+v", report.RowErrors)
	}
	if _, ok := report.RowErrors[0].Errors["general"]; !ok {
		t.Errorf("expected a general error entry")
	}

	job, err := f.jobRepo.Get(context.Background(), jobID(t, f))
	if err != nil {
		t.Fatalf("job not recorded: %v", err)
	}
	if job.Status != ImportStatusFailed {
		t.Errorf("job status = %s, want failed", job.Status)
	}
}
