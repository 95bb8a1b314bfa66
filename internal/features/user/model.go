package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name" json:"name"`
	Email     string               `bson:"email" json:"email"` // stored trimmed and lower-cased
	Password  string               `bson:"password" json:"-"`  // bcrypt hash, never the plaintext
	Status    string               `bson:"status" json:"status"`
	Roles     []primitive.ObjectID `bson:"roles" json:"roles"`
	LastLogin *time.Time           `bson:"last_login,omitempty" json:"last_login,omitempty"`
	CreatedAt time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at" json:"updated_at"`
}
