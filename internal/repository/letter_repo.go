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

const (
	OfferLettersCollection = "offerletters"
	CertificatesCollection = "iccs"
)

// LetterRepo persists generated PDF letters, one collection per letter
// kind (offer letters, completion certificates). Records are keyed by
// candidate email.
type LetterRepo struct {
	coll *mongo.Collection
}

func NewOfferLetterRepo(database *db.DB) *LetterRepo {
	return &LetterRepo{coll: database.Collection(OfferLettersCollection)}
}

func NewCertificateRepo(database *db.DB) *LetterRepo {
	return &LetterRepo{coll: database.Collection(CertificatesCollection)}
}

func (r *LetterRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *LetterRepo) FindByEmail(ctx context.Context, email string) (*models.Letter, error) {
	var letter models.Letter
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&letter)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &letter, nil
}

func (r *LetterRepo) Create(ctx context.Context, letter *models.Letter) (string, error) {
	now := time.Now().UTC()
	letter.CreatedAt = now
	letter.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, letter)
	if err != nil {
		return "", err
	}
	id := res.InsertedID.(primitive.ObjectID)
	letter.ID = id
	return id.Hex(), nil
}

// SavePDF attaches rendered bytes to an existing record that was created
// without them.
func (r *LetterRepo) SavePDF(ctx context.Context, id primitive.ObjectID, data []byte) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"pdfBuffer": data,
		"updatedAt": time.Now().UTC(),
	}})
	return err
}
