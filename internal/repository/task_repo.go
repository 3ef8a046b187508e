package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phoneix12356/RenuHealthCare/internal/db"
	"github.com/phoneix12356/RenuHealthCare/internal/models"
)

const TasksCollection = "tasks"

type TaskRepo struct {
	coll *mongo.Collection
}

func NewTaskRepo(database *db.DB) *TaskRepo {
	return &TaskRepo{coll: database.Collection(TasksCollection)}
}

func (r *TaskRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "mainTitle", Value: 1}},
	})
	return err
}

func (r *TaskRepo) InsertMany(ctx context.Context, tasks []models.Task) ([]models.Task, error) {
	now := time.Now().UTC()
	docs := make([]any, len(tasks))
	for i := range tasks {
		tasks[i].MainTitle = strings.ToLower(tasks[i].MainTitle)
		tasks[i].CreatedAt = now
		tasks[i].UpdatedAt = now
		docs[i] = tasks[i]
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepo) FindByTitle(ctx context.Context, title string) (*models.Task, error) {
	var task models.Task
	err := r.coll.FindOne(ctx, bson.M{"mainTitle": strings.ToLower(title)}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepo) FindByDepartment(ctx context.Context, department string) (*models.Task, error) {
	var task models.Task
	err := r.coll.FindOne(ctx, bson.M{"departmentName": department}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ReplaceWeeklyPlans swaps the full plan list of one track.
func (r *TaskRepo) ReplaceWeeklyPlans(ctx context.Context, title string, plans []models.WeeklyPlan) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"mainTitle": strings.ToLower(title)},
		bson.M{"$set": bson.M{"weeklyPlans": plans, "updatedAt": time.Now().UTC()}},
	)
	return err
}
