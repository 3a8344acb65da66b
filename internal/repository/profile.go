package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vasapolrittideah/health-profile-api/internal/model"
)

// ProfileRepository defines the interface for profile document operations.
// Documents are keyed by the identity provider's UID.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error)
	GetProfileByUID(ctx context.Context, uid string) (*model.Profile, error)
	UpdateHealth(ctx context.Context, uid string, params UpdateHealthParams) (*model.Profile, error)
}

// UpdateHealthParams defines the health fields written by a profile update.
// Every field is written as given; a nil pointer is stored as null. There is
// no partial-merge behavior.
type UpdateHealthParams struct {
	Age    *int
	Gender *string
	Height *float64
	Weight *float64
}

const profileCollection = "users"

type profileMongoRepository struct {
	db *mongo.Database
}

func NewProfileMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) ProfileRepository {
	collection := db.Collection(profileCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "uid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create profile indexes")
	}

	return &profileMongoRepository{db: db}
}

func (r *profileMongoRepository) CreateProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	result, err := r.db.Collection(profileCollection).InsertOne(ctx, profile)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		profile.ID = objectID
	}

	return profile, nil
}

func (r *profileMongoRepository) GetProfileByUID(ctx context.Context, uid string) (*model.Profile, error) {
	result := r.db.Collection(profileCollection).FindOne(ctx, bson.M{"uid": uid})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var profile model.Profile
	if err := result.Decode(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileMongoRepository) UpdateHealth(
	ctx context.Context,
	uid string,
	params UpdateHealthParams,
) (*model.Profile, error) {
	// All four fields are overwritten with whatever the caller supplied,
	// absent fields included.
	updateMap := bson.M{
		"age":        params.Age,
		"gender":     params.Gender,
		"height":     params.Height,
		"weight":     params.Weight,
		"updated_at": time.Now(),
	}

	result := r.db.Collection(profileCollection).FindOneAndUpdate(
		ctx,
		bson.M{"uid": uid},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var profile model.Profile
	if err := result.Decode(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}
