package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Account represents an identity managed by the hosted identity provider.
// The UID is the opaque identity key handed out at creation time; every
// other part of the system refers to the user by this key.
type Account struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	UID          string        `bson:"uid"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password_hash"`
	DisplayName  string        `bson:"display_name"`
	CreatedAt    time.Time     `bson:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at"`
}
