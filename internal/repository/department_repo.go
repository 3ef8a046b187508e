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

const DepartmentsCollection = "departments"

type DepartmentRepo struct {
	coll *mongo.Collection
}

func NewDepartmentRepo(database *db.DB) *DepartmentRepo {
	return &DepartmentRepo{coll: database.Collection(DepartmentsCollection)}
}

func (r *DepartmentRepo) Create(ctx context.Context, dept *models.Department) (string, error) {
	now := time.Now().UTC()
	dept.CreatedAt = now
	dept.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, dept)
	if err != nil {
		return "", err
	}
	id := res.InsertedID.(primitive.ObjectID)
	dept.ID = id
	return id.Hex(), nil
}

func (r *DepartmentRepo) FindByName(ctx context.Context, name string) (*models.Department, error) {
	var dept models.Department
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&dept)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *DepartmentRepo) FindAll(ctx context.Context) ([]models.Department, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	depts := []models.Department{}
	if err := cur.All(ctx, &depts); err != nil {
		return nil, err
	}
	return depts, nil
}

func (r *DepartmentRepo) Update(ctx context.Context, name string, dept *models.Department) (*models.Department, error) {
	res := r.coll.FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.M{"$set": bson.M{
			"name":              dept.Name,
			"taskId":            dept.TaskID,
			"projectOverviewId": dept.ProjectOverviewID,
			"updatedAt":         time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Department
	err := res.Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *DepartmentRepo) Delete(ctx context.Context, name string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
