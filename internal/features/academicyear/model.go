package academicyear

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AcademicYear is the academic period a call belongs to, e.g. code
// "2024-25" with name "Academic Year 2024/2025".
type AcademicYear struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	Name      string             `json:"name" bson:"name"`
	StartDate time.Time          `json:"start_date" bson:"start_date"`
	EndDate   time.Time          `json:"end_date" bson:"end_date"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
