package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	PasswordHash   string             `bson:"password" json:"-"`
	PhoneNumber    string             `bson:"phoneNumber" json:"phoneNumber"`
	College        string             `bson:"college" json:"college"`
	City           string             `bson:"city" json:"city"`
	State          string             `bson:"state" json:"state"`
	DepartmentName string             `bson:"departmentName" json:"departmentName"`
	DepartmentID   primitive.ObjectID `bson:"departmentId,omitempty" json:"departmentId,omitempty"`
	StartDate      time.Time          `bson:"startDate" json:"startDate"`
	EndDate        time.Time          `bson:"endDate" json:"endDate"`
	ResetToken     string             `bson:"resetToken,omitempty" json:"-"`
	ResetExpiry    time.Time          `bson:"resetTokenExpiry,omitempty" json:"-"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserResponse is the public projection returned by auth endpoints.
type UserResponse struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		Name:       u.Name,
		Email:      u.Email,
		Department: u.DepartmentName,
		StartDate:  u.StartDate,
		EndDate:    u.EndDate,
	}
}
