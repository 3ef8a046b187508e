package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Internship type markers for project overviews.
const (
	InternshipPaid   = "Paid"
	InternshipUnpaid = "Unpaid"
)

// ProjectOverview describes one department's internship project,
// keyed by its overview text.
type ProjectOverview struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Overview        string             `bson:"overview" json:"overview"`
	DepartmentName  string             `bson:"departmentName" json:"departmentName"`
	InternshipType  string             `bson:"internshipType" json:"internshipType"`
	Duration        int                `bson:"duration" json:"duration"`
	StartDate       time.Time          `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate         time.Time          `bson:"endDate,omitempty" json:"endDate,omitempty"`
	ProjectDeadline time.Time          `bson:"projectDeadline,omitempty" json:"projectDeadline,omitempty"`
	Procedure       []string           `bson:"procedure" json:"procedure"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
