package import_feature

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportStatus string

const (
	ImportStatusProcessing ImportStatus = "processing"
	ImportStatusCompleted  ImportStatus = "completed"
	ImportStatusFailed     ImportStatus = "failed"
)

const (
	KindUsers = "users"
	KindCalls = "calls"
)

// Row is one spreadsheet line. Num is 1-based and counts the header as
// row 1, so the first data row is 2. Cells is keyed by normalized
// (trimmed, lower-cased) header label; blank cells hold "".
type Row struct {
	Num   int
	Cells map[string]string
}

// RowError records everything that went wrong with one row, keyed by
// field name (or "general"), in row order.
type RowError struct {
	Row    int                 `json:"row"`
	Errors map[string][]string `json:"errors"`
	Data   map[string]string   `json:"data,omitempty"`
}

// GeneratedCredential reports a secret the importer generated for an
// account whose password cell was blank. It is shown once and never
// retrievable again; only the hash is stored.
type GeneratedCredential struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Secret string             `json:"secret"`
}

// Report is the accumulated result of one import run.
// Processed + Failed always equals the number of data rows seen.
type Report struct {
	Processed            int                   `json:"processed"`
	Failed               int                   `json:"failed"`
	RowErrors            []RowError            `json:"row_errors"`
	GeneratedCredentials []GeneratedCredential `json:"generated_credentials,omitempty"`
	DryRun               bool                  `json:"dry_run"`
}

func newReport(dryRun bool) *Report {
	return &Report{RowErrors: []RowError{}, DryRun: dryRun}
}

func (r *Report) fail(row Row, errs map[string][]string) {
	r.Failed++
	r.RowErrors = append(r.RowErrors, RowError{Row: row.Num, Errors: errs, Data: row.Cells})
}

// Options controls one import run.
type Options struct {
	// DryRun validates every row but persists nothing.
	DryRun bool
	// SendCredentials is informational for the caller; the pipeline never
	// sends mail itself.
	SendCredentials bool
	// ActorID is the invoking principal, stamped as created/updated by on
	// imported calls.
	ActorID primitive.ObjectID
}

// ImportError is the flattened per-field shape persisted on the job document.
type ImportError struct {
	Row     int    `json:"row" bson:"row"`
	Field   string `json:"field" bson:"field"`
	Message string `json:"message" bson:"message"`
}

// ImportJob records one run (including dry runs) of the importer.
type ImportJob struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id"`
	Kind        string             `json:"kind" bson:"kind"` // users, calls
	FileName    string             `json:"file_name" bson:"file_name"`
	DryRun      bool               `json:"dry_run" bson:"dry_run"`
	Status      ImportStatus       `json:"status" bson:"status"`
	TotalRows   int                `json:"total_rows" bson:"total_rows"`
	Processed   int                `json:"processed" bson:"processed"`
	Failed      int                `json:"failed" bson:"failed"`
	Errors      []ImportError      `json:"errors,omitempty" bson:"errors,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
	CompletedAt *time.Time         `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
}
