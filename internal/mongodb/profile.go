package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thereayou/devconnector/internal/models"
)

func (s *Store) SaveProfile(ctx context.Context, profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = models.NewID()
	}
	if profile.Date.IsZero() {
		profile.Date = time.Now()
	}
	profile.EnsureLists()
	_, err := s.db.Collection(profilesCollection).InsertOne(ctx, profile)
	return translate(err)
}

func (s *Store) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	profile.EnsureLists()
	return s.replaceByID(ctx, profilesCollection, profile.ID, profile)
}

func (s *Store) GetProfileByUser(ctx context.Context, userID string) (*models.Profile, error) {
	return s.findProfile(ctx, bson.M{"user": userID})
}

func (s *Store) GetProfileByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	return s.findProfile(ctx, bson.M{"handle": handle})
}

func (s *Store) GetProfiles(ctx context.Context) ([]models.Profile, error) {
	cur, err := s.db.Collection(profilesCollection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, translate(err)
	}

	profiles := []models.Profile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	for i := range profiles {
		profiles[i].EnsureLists()
	}
	return profiles, nil
}

func (s *Store) findProfile(ctx context.Context, filter bson.M) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Collection(profilesCollection).FindOne(ctx, filter).Decode(&profile); err != nil {
		return nil, translate(err)
	}
	profile.EnsureLists()
	return &profile, nil
}
