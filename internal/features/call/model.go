package call

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TypeStudent = "student"
	TypeStaff   = "staff"

	ModalityShort = "short"
	ModalityLong  = "long"

	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusClosed    = "closed"
)

// Call is a time-bound announcement of mobility places under a program
// and academic year.
type Call struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProgramID          primitive.ObjectID `json:"program_id" bson:"program_id"`
	AcademicYearID     primitive.ObjectID `json:"academic_year_id" bson:"academic_year_id"`
	Title              string             `json:"title" bson:"title"`
	Slug               string             `json:"slug" bson:"slug"`
	Type               string             `json:"type" bson:"type"`         // student, staff
	Modality           string             `json:"modality" bson:"modality"` // short, long
	Places             int                `json:"places" bson:"places"`
	Destinations       []string           `json:"destinations" bson:"destinations"`
	EstimatedStartDate *time.Time         `json:"estimated_start_date,omitempty" bson:"estimated_start_date,omitempty"`
	EstimatedEndDate   *time.Time         `json:"estimated_end_date,omitempty" bson:"estimated_end_date,omitempty"`
	Requirements       string             `json:"requirements,omitempty" bson:"requirements,omitempty"`
	Documentation      string             `json:"documentation,omitempty" bson:"documentation,omitempty"`
	SelectionCriteria  string             `json:"selection_criteria,omitempty" bson:"selection_criteria,omitempty"`
	Status             string             `json:"status" bson:"status"`
	PublicationDate    *time.Time         `json:"publication_date,omitempty" bson:"publication_date,omitempty"`
	ClosingDate        *time.Time         `json:"closing_date,omitempty" bson:"closing_date,omitempty"`
	CreatedBy          primitive.ObjectID `json:"created_by" bson:"created_by"`
	UpdatedBy          primitive.ObjectID `json:"updated_by" bson:"updated_by"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}

// ValidTypes and ValidModalities are the closed enums accepted on create
// and on spreadsheet import.
var (
	ValidTypes      = map[string]bool{TypeStudent: true, TypeStaff: true}
	ValidModalities = map[string]bool{ModalityShort: true, ModalityLong: true}
	ValidStatuses   = map[string]bool{StatusDraft: true, StatusPublished: true, StatusClosed: true}
)
