package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Profile represents a user's personal-health record, keyed by the identity
// provider's UID. Email and display name are written once at registration;
// the health fields stay null until the owner sets them.
type Profile struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	UID         string        `bson:"uid"`
	Email       string        `bson:"email"`
	DisplayName string        `bson:"display_name"`
	Age         *int          `bson:"age"`
	Gender      *string       `bson:"gender"`
	Height      *float64      `bson:"height"`
	Weight      *float64      `bson:"weight"`
	CreatedAt   time.Time     `bson:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at"`
}
