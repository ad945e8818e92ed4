package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/thereayou/devconnector/internal/models"
)

func (s *Store) SaveUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = models.NewID()
	}
	if user.Date.IsZero() {
		user.Date = time.Now()
	}
	_, err := s.db.Collection(usersCollection).InsertOne(ctx, user)
	return translate(err)
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.findUser(ctx, bson.M{"_id": id})
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findUser(ctx, bson.M{"email": email})
}

func (s *Store) GetUsers(ctx context.Context, ids []string) ([]models.User, error) {
	users := []models.User{}
	if len(ids) == 0 {
		return users, nil
	}

	cur, err := s.db.Collection(usersCollection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, translate(err)
	}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteAccount без транзакции: одиночный mongod их не поддерживает
func (s *Store) DeleteAccount(ctx context.Context, userID string) error {
	if _, err := s.db.Collection(profilesCollection).DeleteOne(ctx, bson.M{"user": userID}); err != nil {
		return translate(err)
	}
	_, err := s.db.Collection(usersCollection).DeleteOne(ctx, bson.M{"_id": userID})
	return translate(err)
}

func (s *Store) findUser(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := s.db.Collection(usersCollection).FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
