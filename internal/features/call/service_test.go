package call

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mockCallRepo struct {
	created      []*Call
	closeExpired int64
}

func (m *mockCallRepo) Create(ctx context.Context, call *Call) error {
	m.created = append(m.created, call)
	return nil
}

func (m *mockCallRepo) FindByID(ctx context.Context, id string) (*Call, error) {
	return nil, mongo.ErrNoDocuments
}

func (m *mockCallRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int64) ([]Call, int64, error) {
	return nil, 0, nil
}

func (m *mockCallRepo) Update(ctx context.Context, id string, call *Call) error { return nil }
func (m *mockCallRepo) Delete(ctx context.Context, id string) error             { return nil }

func (m *mockCallRepo) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	return m.closeExpired, nil
}

func validCall() *Call {
	return &Call{
		ProgramID:      primitive.NewObjectID(),
		AcademicYearID: primitive.NewObjectID(),
		Title:          "Autumn Exchange 2024",
		Type:           TypeStudent,
		Modality:       ModalityLong,
		Places:         10,
		Destinations:   []string{"France"},
	}
}

func TestCreateCallDefaultsSlugAndStatus(t *testing.T) {
	repo := &mockCallRepo{}
	svc := NewCallService(repo)
	actor := primitive.NewObjectID()

	c := validCall()
	if err := svc.CreateCall(context.Background(), c, actor); err != nil {
		t.Fatalf("CreateCall() error = %v", err)
	}

	if c.Slug != "autumn-exchange-2024" {
		t.Errorf("slug = %q, want derived from the title", c.Slug)
	}
	if c.Status != StatusDraft {
		t.Errorf("status = %q, want %q", c.Status, StatusDraft)
	}
	if c.CreatedBy != actor || c.UpdatedBy != actor {
		t.Error("actor not stamped on the call")
	}
	if len(repo.created) != 1 {
		t.Fatalf("persisted %d calls, want 1", len(repo.created))
	}
}

func TestCreateCallKeepsExplicitSlug(t *testing.T) {
	svc := NewCallService(&mockCallRepo{})

	c := validCall()
	c.Slug = "custom-slug"
	if err := svc.CreateCall(context.Background(), c, primitive.NewObjectID()); err != nil {
		t.Fatalf("CreateCall() error = %v", err)
	}
	if c.Slug != "custom-slug" {
		t.Errorf("slug = %q, an explicit slug must survive", c.Slug)
	}
}

func TestCreateCallValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Call)
	}{
		{"empty title", func(c *Call) { c.Title = "" }},
		{"bad type", func(c *Call) { c.Type = "visitor" }},
		{"bad modality", func(c *Call) { c.Modality = "medium" }},
		{"zero places", func(c *Call) { c.Places = 0 }},
		{"no destinations", func(c *Call) { c.Destinations = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockCallRepo{}
			svc := NewCallService(repo)

			c := validCall()
			tt.mutate(c)
			if err := svc.CreateCall(context.Background(), c, primitive.NewObjectID()); err == nil {
				t.Error("expected a validation error")
			}
			if len(repo.created) != 0 {
				t.Error("an invalid call was persisted")
			}
		})
	}
}

func TestCloseExpiredReportsCount(t *testing.T) {
	repo := &mockCallRepo{closeExpired: 3}
	svc := NewCallService(repo)

	n, err := svc.CloseExpired(context.Background())
	if err != nil {
		t.Fatalf("CloseExpired() error = %v", err)
	}
	if n != 3 {
		t.Errorf("closed = %d, want 3", n)
	}
}
