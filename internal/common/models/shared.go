package models

import "time"

type ContextKey string

const (
	UserIDKey ContextKey = "user_id"
)

// Log is the shape persisted by the async zap DB writer.
type Log struct {
	Level     string    `bson:"level" json:"level"`
	Message   string    `bson:"message" json:"message"`
	Caller    string    `bson:"caller,omitempty" json:"caller,omitempty"`
	AppId     string    `bson:"app_id" json:"app_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
