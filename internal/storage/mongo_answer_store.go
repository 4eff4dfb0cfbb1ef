package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig contains connection settings for the MongoDB answer store.
type MongoConfig struct {
	URI        string // e.g. mongodb://localhost:27017
	Database   string // e.g. aoc2024
	Collection string // e.g. answers
}

// MongoAnswerStore implements AnswerStore on MongoDB backend.
type MongoAnswerStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	ctxTimeout time.Duration
}

type answerDoc struct {
	Key    `bson:",inline"`
	Answer `bson:",inline"`
}

// NewMongoAnswerStore establishes connection and returns the store.
func NewMongoAnswerStore(ctx context.Context, cfg MongoConfig) (*MongoAnswerStore, error) {
	if cfg.URI == "" {
		cfg.URI = "mongodb://localhost:27017"
	}
	if cfg.Database == "" {
		cfg.Database = "aoc2024"
	}
	if cfg.Collection == "" {
		cfg.Collection = "answers"
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	store := &MongoAnswerStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		ctxTimeout: 5 * time.Second,
	}
	if err := store.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return store, nil
}

func (m *MongoAnswerStore) ensureIndexes(ctx context.Context) error {
	keyIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "day", Value: 1}, {Key: "part", Value: 1}, {Key: "digest", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("answer_key_unique"),
	}
	_, err := m.collection.Indexes().CreateOne(ctx, keyIdx)
	return err
}

func keyFilter(key Key) bson.M {
	return bson.M{"day": key.Day, "part": key.Part, "digest": key.Digest}
}

func mapMongoErr(err error) error {
	if errors.Is(err, mongo.ErrClientDisconnected) {
		return ErrStoreClosed
	}
	return err
}

// Load implements AnswerStore.
func (m *MongoAnswerStore) Load(ctx context.Context, key Key) (Answer, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, m.ctxTimeout)
	defer cancel()

	var doc answerDoc
	err := m.collection.FindOne(ctx, keyFilter(key)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Answer{}, false, nil
	}
	if err != nil {
		return Answer{}, false, mapMongoErr(err)
	}
	return doc.Answer, true, nil
}

// Save upserts the answer document.
func (m *MongoAnswerStore) Save(ctx context.Context, key Key, answer Answer) error {
	if err := key.Validate(); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, m.ctxTimeout)
	defer cancel()

	_, err := m.collection.ReplaceOne(ctx, keyFilter(key), answerDoc{Key: key, Answer: answer},
		options.Replace().SetUpsert(true))
	return mapMongoErr(err)
}

// Delete implements AnswerStore.
func (m *MongoAnswerStore) Delete(ctx context.Context, key Key) error {
	ctx, cancel := context.WithTimeout(ctx, m.ctxTimeout)
	defer cancel()

	_, err := m.collection.DeleteOne(ctx, keyFilter(key))
	return mapMongoErr(err)
}

// Close disconnects the client.
func (m *MongoAnswerStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), m.ctxTimeout)
	defer cancel()
	return m.client.Disconnect(ctx)
}
