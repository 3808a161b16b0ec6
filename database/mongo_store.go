package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	kvCollection    = "kv"
	listsCollection = "lists"
)

type kvDoc struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

type listDoc struct {
	Key string   `bson:"_id"`
	IDs []string `bson:"ids"`
}

// MongoStore keeps values in a "kv" collection and id lists as arrays in a
// "lists" collection.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var doc kvDoc
	err := s.db.Collection(kvCollection).FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo get %s: %w", key, err)
	}
	return json.RawMessage(doc.Value), nil
}

func (s *MongoStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	_, err := s.db.Collection(kvCollection).ReplaceOne(ctx,
		bson.M{"_id": key},
		kvDoc{Key: key, Value: string(value)},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mongo set %s: %w", key, err)
	}
	return nil
}

func (s *MongoStore) ListAppend(ctx context.Context, listKey, id string) error {
	_, err := s.db.Collection(listsCollection).UpdateOne(ctx,
		bson.M{"_id": listKey},
		bson.M{"$push": bson.M{"ids": id}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mongo push %s: %w", listKey, err)
	}
	return nil
}

func (s *MongoStore) ListRange(ctx context.Context, listKey string, start, end int64) ([]string, error) {
	var doc listDoc
	err := s.db.Collection(listsCollection).FindOne(ctx, bson.M{"_id": listKey}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongo range %s: %w", listKey, err)
	}
	lo, hi, ok := rangeBounds(int64(len(doc.IDs)), start, end)
	if !ok {
		return []string{}, nil
	}
	return doc.IDs[lo:hi], nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}
