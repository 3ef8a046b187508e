package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileRef is the durable pointer returned by the media store for one
// uploaded file. References are only recorded for uploads the store
// actually accepted.
type FileRef struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"publicId" json:"publicId"`
}

// Submission is the single per-user record that weekly submissions are
// merged into. Every field grows append-only; a week number appears in
// CompletedWeek at most once.
type Submission struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	Username      string             `bson:"username" json:"username"`
	DepartmentID  primitive.ObjectID `bson:"departmentId,omitempty" json:"departmentId,omitempty"`
	CompletedWeek []int              `bson:"completedWeek" json:"completedWeek"`
	Images        []FileRef          `bson:"images" json:"images"`
	PDFs          []FileRef          `bson:"pdf" json:"pdf"`
	Links         []string           `bson:"links" json:"links"`
	Notes         []string           `bson:"notes" json:"notes"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HasWeek reports whether a submission for week has already been accepted.
func (s *Submission) HasWeek(week int) bool {
	for _, w := range s.CompletedWeek {
		if w == week {
			return true
		}
	}
	return false
}

// AllFiles returns every stored reference, images first then PDFs.
func (s *Submission) AllFiles() []FileRef {
	refs := make([]FileRef, 0, len(s.Images)+len(s.PDFs))
	refs = append(refs, s.Images...)
	refs = append(refs, s.PDFs...)
	return refs
}
