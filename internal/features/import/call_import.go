package import_feature

import (
	"strconv"
	"strings"
	"time"

	"go-campus/internal/features/call"
)

// Call spreadsheet columns.
const (
	colProgram       = "program"
	colAcademicYear  = "academic year"
	colTitle         = "title"
	colSlug          = "slug"
	colType          = "type"
	colModality      = "modality"
	colPlaces        = "number of places"
	colDestinations  = "destinations"
	colStartDate     = "estimated start date"
	colEndDate       = "estimated end date"
	colRequirements  = "requirements"
	colDocumentation = "documentation"
	colCriteria      = "selection criteria"
	colStatus        = "status"
	colPublication   = "publication date"
	colClosing       = "closing date"
)

// callImporter validates and transforms call rows against the program and
// academic-year candidate sets loaded once per run.
type callImporter struct {
	programs []refCandidate
	years    []refCandidate
}

// processRow applies the call rule set to one row and, on success,
// returns the entity ready for the call service (slug defaulting and
// provenance stamping happen at save time).
func (imp *callImporter) processRow(row Row) (*call.Call, map[string][]string) {
	errs := make(map[string][]string)
	addErr := func(field, msg string) {
		errs[field] = append(errs[field], msg)
	}

	c := &call.Call{}

	programRef := strings.TrimSpace(row.Cells[colProgram])
	if programRef == "" {
		addErr(colProgram, "Program is required")
	} else if id, ok := resolveReference(programRef, imp.programs); ok {
		c.ProgramID = id
	} else {
		addErr(colProgram, "Program not found: "+programRef)
	}

	yearRef := strings.TrimSpace(row.Cells[colAcademicYear])
	if yearRef == "" {
		addErr(colAcademicYear, "Academic year is required")
	} else if id, ok := resolveReference(yearRef, imp.years); ok {
		c.AcademicYearID = id
	} else {
		addErr(colAcademicYear, "Academic year not found: "+yearRef)
	}

	c.Title = strings.TrimSpace(row.Cells[colTitle])
	if c.Title == "" {
		addErr(colTitle, "Title is required")
	}

	c.Type = strings.ToLower(strings.TrimSpace(row.Cells[colType]))
	if c.Type == "" {
		addErr(colType, "Type is required")
	} else if !call.ValidTypes[c.Type] {
		addErr(colType, "Type must be one of: student, staff")
	}

	c.Modality = strings.ToLower(strings.TrimSpace(row.Cells[colModality]))
	if c.Modality == "" {
		addErr(colModality, "Modality is required")
	} else if !call.ValidModalities[c.Modality] {
		addErr(colModality, "Modality must be one of: short, long")
	}

	placesRaw := strings.TrimSpace(row.Cells[colPlaces])
	if placesRaw == "" {
		addErr(colPlaces, "Number of places is required")
	} else if places, err := strconv.Atoi(placesRaw); err != nil || places < 1 {
		addErr(colPlaces, "Number of places must be an integer of at least 1")
	} else {
		c.Places = places
	}

	c.Destinations = splitList(row.Cells[colDestinations])
	if len(c.Destinations) == 0 {
		addErr(colDestinations, "At least one destination is required")
	}

	c.EstimatedStartDate = imp.optionalDate(row, colStartDate, addErr)
	c.EstimatedEndDate = imp.optionalDate(row, colEndDate, addErr)
	if c.EstimatedStartDate != nil && c.EstimatedEndDate != nil &&
		c.EstimatedEndDate.Before(*c.EstimatedStartDate) {
		addErr(colEndDate, "Estimated end date precedes the start date")
	}

	// Slug passes through untouched; the call service derives one from
	// the title when empty.
	c.Slug = strings.TrimSpace(row.Cells[colSlug])
	c.Requirements = strings.TrimSpace(row.Cells[colRequirements])
	c.Documentation = strings.TrimSpace(row.Cells[colDocumentation])
	c.SelectionCriteria = strings.TrimSpace(row.Cells[colCriteria])

	c.Status = strings.ToLower(strings.TrimSpace(row.Cells[colStatus]))
	if c.Status != "" && !call.ValidStatuses[c.Status] {
		addErr(colStatus, "Status must be one of: draft, published, closed")
	}

	c.PublicationDate = imp.optionalDate(row, colPublication, addErr)
	c.ClosingDate = imp.optionalDate(row, colClosing, addErr)

	if len(errs) > 0 {
		return nil, errs
	}
	return c, nil
}

func (imp *callImporter) optionalDate(row Row, field string, addErr func(field, msg string)) *time.Time {
	raw := strings.TrimSpace(row.Cells[field])
	if raw == "" {
		return nil
	}
	t, err := parseDate(raw)
	if err != nil {
		addErr(field, err.Error())
		return nil
	}
	return &t
}
