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

const SubmissionsCollection = "submissions"

// WeekAppend is the typed per-field delta merged into an existing
// submission record for one newly completed week.
type WeekAppend struct {
	Week   int
	Images []models.FileRef
	PDFs   []models.FileRef
	Links  []string
	Notes  []string
}

type SubmissionRepo struct {
	coll *mongo.Collection
}

func NewSubmissionRepo(database *db.DB) *SubmissionRepo {
	return &SubmissionRepo{coll: database.Collection(SubmissionsCollection)}
}

func (r *SubmissionRepo) EnsureIndexes(ctx context.Context) error {
	// One record per user; the unique index turns a concurrent
	// first-submission race into a duplicate-key error instead of two
	// records.
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *SubmissionRepo) Create(ctx context.Context, sub *models.Submission) (string, error) {
	now := time.Now().UTC()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, sub)
	if err != nil {
		return "", err
	}
	id := res.InsertedID.(primitive.ObjectID)
	sub.ID = id
	return id.Hex(), nil
}

func (r *SubmissionRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Submission, error) {
	var sub models.Submission
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubmissionRepo) FindByID(ctx context.Context, id string) (*models.Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var sub models.Submission
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// FindByUserAndWeek returns submissions for a user whose completed-week
// set contains week. Absence is an empty slice, not an error.
func (r *SubmissionRepo) FindByUserAndWeek(ctx context.Context, userID primitive.ObjectID, week int) ([]models.Submission, error) {
	cur, err := r.coll.Find(ctx, bson.M{
		"userId":        userID,
		"completedWeek": bson.M{"$in": []int{week}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	subs := []models.Submission{}
	if err := cur.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// AppendWeek merges one week's delta into the user's record with an
// atomic conditional update: the filter only matches when the week is
// not yet in completedWeek, so two racing submissions for the same week
// cannot both land. Returns false when nothing matched — either the
// record does not exist or the week is already completed; the caller
// distinguishes the two with FindByUser.
func (r *SubmissionRepo) AppendWeek(ctx context.Context, userID primitive.ObjectID, delta WeekAppend) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{
			"userId":        userID,
			"completedWeek": bson.M{"$ne": delta.Week},
		},
		appendWeekUpdate(delta),
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// appendWeekUpdate builds the merge document for one week. Empty
// categories are left out entirely: the driver marshals a nil slice to
// BSON null, and the server rejects a $push whose $each is not an
// array.
func appendWeekUpdate(delta WeekAppend) bson.M {
	push := bson.M{"completedWeek": delta.Week}
	if len(delta.Images) > 0 {
		push["images"] = bson.M{"$each": delta.Images}
	}
	if len(delta.PDFs) > 0 {
		push["pdf"] = bson.M{"$each": delta.PDFs}
	}
	if len(delta.Links) > 0 {
		push["links"] = bson.M{"$each": delta.Links}
	}
	if len(delta.Notes) > 0 {
		push["notes"] = bson.M{"$each": delta.Notes}
	}
	return bson.M{
		"$push": push,
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
}

func (r *SubmissionRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// IsDuplicateKey reports whether err is the unique-index violation
// raised when two first submissions for the same user race.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
