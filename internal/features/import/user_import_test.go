package import_feature

import (
	"context"
	"testing"

	"go-campus/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func userRow(num int, cells map[string]string) Row {
	return Row{Num: num, Cells: cells}
}

func TestUserRowValidation(t *testing.T) {
	tests := []struct {
		name      string
		cells     map[string]string
		wantField string
	}{
		{
			name:      "missing name",
			cells:     map[string]string{colEmail: "a@example.org", colPassword: "Secret123"},
			wantField: colName,
		},
		{
			name:      "missing email",
			cells:     map[string]string{colName: "Alice", colPassword: "Secret123"},
			wantField: colEmail,
		},
		{
			name:      "malformed email",
			cells:     map[string]string{colName: "Alice", colEmail: "alice@", colPassword: "Secret123"},
			wantField: colEmail,
		},
		{
			name:      "short password",
			cells:     map[string]string{colName: "Alice", colEmail: "a@example.org", colPassword: "Ab1"},
			wantField: colPassword,
		},
		{
			name:      "password without digits",
			cells:     map[string]string{colName: "Alice", colEmail: "a@example.org", colPassword: "lettersonly"},
			wantField: colPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imp := newUserImporter(newMockUserRepo(), nil)
			result, errs := imp.processRow(context.Background(), userRow(2, tt.cells))
			if result != nil {
				t.Fatal("expected the row to be rejected")
			}
			if msgs := errs[tt.wantField]; len(msgs) == 0 {
				t.Errorf("errors = %v, want one under %q", errs, tt.wantField)
			}
		})
	}
}

func TestUserRowCollectsAllFieldErrors(t *testing.T) {
	imp := newUserImporter(newMockUserRepo(), nil)

	_, errs := imp.processRow(context.Background(), userRow(2, map[string]string{
		colEmail:    "broken@",
		colPassword: "x",
	}))

	for _, field := range []string{colName, colEmail, colPassword} {
		if len(errs[field]) == 0 {
			t.Errorf("missing error for %q in %v", field, errs)
		}
	}
}

func TestUserRowEmailNormalized(t *testing.T) {
	imp := newUserImporter(newMockUserRepo(), nil)

	result, errs := imp.processRow(context.Background(), userRow(2, map[string]string{
		colName:     "Alice",
		colEmail:    "  Alice@Example.ORG ",
		colPassword: "Secret123",
	}))
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if result.user.Email != "alice@example.org" {
		t.Errorf("email = %q, want normalized lowercase", result.user.Email)
	}
	if result.generated {
		t.Error("a supplied password must not count as generated")
	}
	if !utils.CheckPassword(result.user.Password, "Secret123") {
		t.Error("stored hash does not verify against the supplied password")
	}
}

func TestUserRowGeneratesPasswordWhenBlank(t *testing.T) {
	imp := newUserImporter(newMockUserRepo(), nil)

	result, errs := imp.processRow(context.Background(), userRow(2, map[string]string{
		colName:  "Alice",
		colEmail: "alice@example.org",
	}))
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !result.generated {
		t.Fatal("expected a generated password")
	}
	if len(result.secret) < utils.GeneratedPasswordLength {
		t.Errorf("secret length = %d, want at least %d", len(result.secret), utils.GeneratedPasswordLength)
	}
	if !utils.CheckPassword(result.user.Password, result.secret) {
		t.Error("stored hash does not verify against the generated secret")
	}
}

func TestUserRowRoleMapping(t *testing.T) {
	adminID := primitive.NewObjectID()
	imp := newUserImporter(newMockUserRepo(), map[string]primitive.ObjectID{"admin": adminID})

	result, errs := imp.processRow(context.Background(), userRow(2, map[string]string{
		colName:     "Alice",
		colEmail:    "alice@example.org",
		colPassword: "Secret123",
		colRoles:    "admin; ghost-role",
	}))
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(result.user.Roles) != 1 || result.user.Roles[0] != adminID {
		t.Errorf("roles = %v, want only the admin id", result.user.Roles)
	}
}
