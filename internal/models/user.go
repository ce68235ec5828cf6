package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserDoc es el documento tal cual vive en la colección users.
// Password guarda el hash bcrypt, nunca el plaintext, y no sale por el API.
type UserDoc struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"`
	Role     string             `json:"role,omitempty" bson:"role,omitempty"`
}
