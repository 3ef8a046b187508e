package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskAttribute struct {
	Label           string `bson:"label" json:"label"`
	TaskDescription string `bson:"taskDescription,omitempty" json:"taskDescription,omitempty"`
}

type TaskItem struct {
	TaskTitle       string          `bson:"taskTitle" json:"taskTitle"`
	TaskDescription string          `bson:"taskDescription,omitempty" json:"taskDescription,omitempty"`
	Attributes      []TaskAttribute `bson:"attributes,omitempty" json:"attributes,omitempty"`
}

// WeeklyPlan is the assignment sheet for one internship week.
type WeeklyPlan struct {
	WeekNumber int        `bson:"weekNumber" json:"weekNumber"`
	WeekTitle  string     `bson:"weekTitle" json:"weekTitle"`
	TaskList   []TaskItem `bson:"taskList" json:"taskList"`
}

// Task holds all weekly plans for one department track, keyed by the
// lowercased main title.
type Task struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MainTitle      string             `bson:"mainTitle" json:"mainTitle"`
	Overview       string             `bson:"overview,omitempty" json:"overview,omitempty"`
	DepartmentName string             `bson:"departmentName,omitempty" json:"departmentName,omitempty"`
	WeeklyPlans    []WeeklyPlan       `bson:"weeklyPlans" json:"weeklyPlans"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
