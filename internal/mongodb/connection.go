package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/thereayou/devconnector/internal/services"
)

const (
	usersCollection    = "users"
	profilesCollection = "profiles"
	postsCollection    = "posts"
)

// Store реализация services.DatabaseService поверх MongoDB
type Store struct {
	db *mongo.Database
}

var _ services.DatabaseService = (*Store)(nil)

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Connect подключается к MongoDB, проверяет соединение и создает индексы
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx,
		options.Client().ApplyURI(uri),
		options.Client().SetConnectTimeout(10*time.Second),
		options.Client().SetServerSelectionTimeout(10*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}

	s := NewStore(client.Database(database))
	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

// EnsureIndexes уникальность email, handle и одного профиля на пользователя
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	if _, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}}, Options: unique,
	}); err != nil {
		return fmt.Errorf("users index: %w", err)
	}

	if _, err := s.db.Collection(profilesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "handle", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "user", Value: 1}}, Options: unique},
	}); err != nil {
		return fmt.Errorf("profiles index: %w", err)
	}

	if _, err := s.db.Collection(postsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: -1}},
	}); err != nil {
		return fmt.Errorf("posts index: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return services.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", services.ErrDuplicate, err)
	}
	return err
}

// replaceByID полностью перезаписывает документ, ErrNotFound если его нет
func (s *Store) replaceByID(ctx context.Context, collection, id string, doc interface{}) error {
	res, err := s.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}
