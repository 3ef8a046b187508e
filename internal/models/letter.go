package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Letter is a generated PDF document (offer letter or completion
// certificate) persisted per candidate email. The rendered bytes are
// stored alongside the candidate fields so downloads never re-render.
type Letter struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	DepartmentName string             `bson:"departmentName" json:"departmentName"`
	Tenure         int                `bson:"tenure" json:"tenure"`
	StartDate      time.Time          `bson:"startDate" json:"startDate"`
	EndDate        time.Time          `bson:"endDate" json:"endDate"`
	PDFData        []byte             `bson:"pdfBuffer" json:"-"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
