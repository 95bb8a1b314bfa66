package program

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Program is a mobility program (e.g. an exchange framework) that calls
// are announced under. Code is the short human-typed identifier used in
// spreadsheet imports.
type Program struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code        string             `json:"code" bson:"code"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
