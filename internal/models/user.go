package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a single account document stored in MongoDB. The email field is
// always normalized (trimmed, lowercased) before storage and lookup, and the
// password field only ever holds the bcrypt hash.
type User struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"` // never serialize
	CreatedAt time.Time          `json:"-" bson:"created_at"`
}

// RegisterRequest is the JSON body for POST /chat/api/user/register.
// Pointer fields distinguish a missing key from an empty string during
// validation.
type RegisterRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// LoginRequest is the JSON body for POST /chat/api/user/login.
type LoginRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// AuthPayload is the success payload for login, is-authenticated and logout.
type AuthPayload struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Message         string `json:"message,omitempty"`
	User            *User  `json:"user,omitempty"`
}
