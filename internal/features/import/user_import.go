package import_feature

import (
	"context"
	"errors"
	"strings"

	"go-campus/internal/features/user"
	"go-campus/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Account spreadsheet columns.
const (
	colName     = "name"
	colEmail    = "email"
	colPassword = "password"
	colRoles    = "roles"
)

// userImporter validates and transforms account rows. seen carries the
// emails accepted earlier in the same run so a duplicate inside one file
// fails on its second occurrence, in dry-run mode too.
type userImporter struct {
	userRepo   user.UserRepository
	knownRoles map[string]primitive.ObjectID
	seen       map[string]bool
}

func newUserImporter(userRepo user.UserRepository, knownRoles map[string]primitive.ObjectID) *userImporter {
	return &userImporter{
		userRepo:   userRepo,
		knownRoles: knownRoles,
		seen:       make(map[string]bool),
	}
}

type userRowResult struct {
	user      *user.User
	secret    string
	generated bool
}

// processRow applies the account rule set to one row. On success it
// returns the fully built entity (password hashed, generated when the
// cell was blank); otherwise the per-field error map.
func (imp *userImporter) processRow(ctx context.Context, row Row) (*userRowResult, map[string][]string) {
	errs := make(map[string][]string)
	addErr := func(field, msg string) {
		errs[field] = append(errs[field], msg)
	}

	name := strings.TrimSpace(row.Cells[colName])
	if name == "" {
		addErr(colName, "Name is required")
	}

	email := strings.ToLower(strings.TrimSpace(row.Cells[colEmail]))
	switch {
	case email == "":
		addErr(colEmail, "Email is required")
	case !emailPattern.MatchString(email):
		addErr(colEmail, "Invalid email address")
	case imp.seen[email]:
		addErr(colEmail, "Email already in use")
	default:
		if _, err := imp.userRepo.FindActiveByEmail(ctx, email); err == nil {
			addErr(colEmail, "Email already in use")
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			addErr(colEmail, "Failed to check email uniqueness")
		}
	}

	password := row.Cells[colPassword]
	if password != "" {
		if err := utils.ValidatePassword(password); err != nil {
			addErr(colPassword, err.Error())
		}
	}

	// Unknown role tokens are dropped silently; a row whose roles all
	// filter away still succeeds with zero roles.
	var roleIDs []primitive.ObjectID
	for _, token := range splitList(row.Cells[colRoles]) {
		if id, ok := imp.knownRoles[token]; ok {
			roleIDs = append(roleIDs, id)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	result := &userRowResult{}
	if password == "" {
		secret, err := utils.GeneratePassword(utils.GeneratedPasswordLength)
		if err != nil {
			addErr("general", "Failed to generate password")
			return nil, errs
		}
		password = secret
		result.secret = secret
		result.generated = true
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		addErr("general", "Failed to hash password")
		return nil, errs
	}

	result.user = &user.User{
		ID:       primitive.NewObjectID(),
		Name:     name,
		Email:    email,
		Password: hash,
		Status:   user.StatusActive,
		Roles:    roleIDs,
	}
	return result, nil
}

// accept marks the row's email as taken for the rest of the run.
func (imp *userImporter) accept(email string) {
	imp.seen[email] = true
}
