package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/phoneix12356/RenuHealthCare/internal/db"
	"github.com/phoneix12356/RenuHealthCare/internal/models"
)

const ProjectsCollection = "overviews"

type ProjectRepo struct {
	coll *mongo.Collection
}

func NewProjectRepo(database *db.DB) *ProjectRepo {
	return &ProjectRepo{coll: database.Collection(ProjectsCollection)}
}

func (r *ProjectRepo) Create(ctx context.Context, project *models.ProjectOverview) (string, error) {
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, project)
	if err != nil {
		return "", err
	}
	id := res.InsertedID.(primitive.ObjectID)
	project.ID = id
	return id.Hex(), nil
}

func (r *ProjectRepo) FindByOverview(ctx context.Context, overview string) (*models.ProjectOverview, error) {
	var project models.ProjectOverview
	err := r.coll.FindOne(ctx, bson.M{"overview": overview}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepo) Update(ctx context.Context, overview string, project *models.ProjectOverview) (*models.ProjectOverview, error) {
	res := r.coll.FindOneAndUpdate(ctx,
		bson.M{"overview": overview},
		bson.M{"$set": bson.M{
			"internshipType":  project.InternshipType,
			"startDate":       project.StartDate,
			"endDate":         project.EndDate,
			"projectDeadline": project.ProjectDeadline,
			"procedure":       project.Procedure,
			"departmentName":  project.DepartmentName,
			"updatedAt":       time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.ProjectOverview
	err := res.Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *ProjectRepo) Delete(ctx context.Context, overview string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"overview": overview})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
