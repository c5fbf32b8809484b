package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName string             `json:"firstName" bson:"firstName"`
	LastName  string             `json:"lastName" bson:"lastName"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"password,omitempty" bson:"password"`
	Age       int                `json:"age,omitempty" bson:"age,omitempty"`
	Gender    Gender             `json:"gender,omitempty" bson:"gender,omitempty"`
	PhotoUrl  string             `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	About     string             `json:"about,omitempty" bson:"about,omitempty"`
	Skills    []string           `json:"skills,omitempty" bson:"skills,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// SafeUser is the projection of a user that other users are allowed to see:
// never the email, never the password hash.
type SafeUser struct {
	Id        primitive.ObjectID `json:"id" bson:"_id"`
	FirstName string             `json:"firstName" bson:"firstName"`
	LastName  string             `json:"lastName" bson:"lastName"`
	Age       int                `json:"age,omitempty" bson:"age,omitempty"`
	Gender    Gender             `json:"gender,omitempty" bson:"gender,omitempty"`
	PhotoUrl  string             `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	About     string             `json:"about,omitempty" bson:"about,omitempty"`
	Skills    []string           `json:"skills,omitempty" bson:"skills,omitempty"`
}

// Safe returns the shareable projection of u.
func (u *User) Safe() SafeUser {
	return SafeUser{
		Id:        u.Id,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Age:       u.Age,
		Gender:    u.Gender,
		PhotoUrl:  u.PhotoUrl,
		About:     u.About,
		Skills:    u.Skills,
	}
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// IsValid reports whether g is one of the known gender values.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}
