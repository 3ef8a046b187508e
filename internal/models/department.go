package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Department struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	TaskID            primitive.ObjectID `bson:"taskId,omitempty" json:"taskId,omitempty"`
	ProjectOverviewID primitive.ObjectID `bson:"projectOverviewId,omitempty" json:"projectOverviewId,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}
