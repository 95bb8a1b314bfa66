package call

import (
	"context"
	"errors"
	"time"

	"go-campus/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CallService interface {
	CreateCall(ctx context.Context, call *Call, actorID primitive.ObjectID) error
	GetCallByID(ctx context.Context, id string) (*Call, error)
	ListCalls(ctx context.Context, filter map[string]interface{}, page, limit int64) ([]Call, int64, error)
	UpdateCall(ctx context.Context, id string, call *Call, actorID primitive.ObjectID) error
	DeleteCall(ctx context.Context, id string) error
	CloseExpired(ctx context.Context) (int64, error)
}

type CallServiceImpl struct {
	CallRepo CallRepository
}

func NewCallService(callRepo CallRepository) CallService {
	return &CallServiceImpl{CallRepo: callRepo}
}

// CreateCall persists a call, defaulting the slug from the title when the
// caller (form or importer) left it empty.
func (s *CallServiceImpl) CreateCall(ctx context.Context, call *Call, actorID primitive.ObjectID) error {
	if call.Title == "" {
		return errors.New("call title is required")
	}
	if !ValidTypes[call.Type] {
		return errors.New("invalid call type")
	}
	if !ValidModalities[call.Modality] {
		return errors.New("invalid call modality")
	}
	if call.Places < 1 {
		return errors.New("number of places must be at least 1")
	}
	if len(call.Destinations) == 0 {
		return errors.New("at least one destination is required")
	}

	if call.Slug == "" {
		call.Slug = utils.Slugify(call.Title)
	}
	if call.Status == "" {
		call.Status = StatusDraft
	}

	if call.ID.IsZero() {
		call.ID = primitive.NewObjectID()
	}
	call.CreatedBy = actorID
	call.UpdatedBy = actorID
	call.CreatedAt = time.Now()
	call.UpdatedAt = time.Now()

	return s.CallRepo.Create(ctx, call)
}

func (s *CallServiceImpl) GetCallByID(ctx context.Context, id string) (*Call, error) {
	return s.CallRepo.FindByID(ctx, id)
}

func (s *CallServiceImpl) ListCalls(ctx context.Context, filter map[string]interface{}, page, limit int64) ([]Call, int64, error) {
	if filter == nil {
		filter = make(map[string]interface{})
	}
	offset := (page - 1) * limit
	return s.CallRepo.List(ctx, filter, limit, offset)
}

func (s *CallServiceImpl) UpdateCall(ctx context.Context, id string, call *Call, actorID primitive.ObjectID) error {
	call.UpdatedBy = actorID
	call.UpdatedAt = time.Now()
	return s.CallRepo.Update(ctx, id, call)
}

func (s *CallServiceImpl) DeleteCall(ctx context.Context, id string) error {
	return s.CallRepo.Delete(ctx, id)
}

func (s *CallServiceImpl) CloseExpired(ctx context.Context) (int64, error) {
	return s.CallRepo.CloseExpired(ctx, time.Now())
}
