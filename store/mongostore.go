package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stylelab/fitting-lab/models"
)

// MongoStore keeps the same four whole-document blobs in a MongoDB
// collection, one document per key. Saves use ReplaceOne with upsert so the
// last-write-wins, full-overwrite semantics of the file backend are
// preserved exactly.
type MongoStore struct {
	collection *mongo.Collection
}

type storeDocument struct {
	ID   string `bson:"_id"`
	Data []byte `bson:"data"`
}

// NewMongoStore uses the "documents" collection of the given database.
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{collection: client.Database(database).Collection("documents")}
}

// readInto fetches and decodes one document into v. Missing documents and
// undecodable payloads both leave v at its zero value.
func (m *MongoStore) readInto(ctx context.Context, key string, v interface{}) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var doc storeDocument
	if err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		return
	}
	if err := json.Unmarshal(doc.Data, v); err != nil {
		return
	}
}

func (m *MongoStore) write(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err = m.collection.ReplaceOne(ctx,
		bson.M{"_id": key},
		storeDocument{ID: key, Data: data},
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Load reads all four documents, defaulting each one independently.
func (m *MongoStore) Load(ctx context.Context) Snapshot {
	var snap Snapshot
	m.readInto(ctx, KeyProfiles, &snap.Profiles)
	m.readInto(ctx, KeySelections, &snap.Session)
	m.readInto(ctx, KeyOwnedItems, &snap.Wardrobe)
	m.readInto(ctx, KeyArchive, &snap.Archive)
	return snap
}

func (m *MongoStore) SaveProfiles(ctx context.Context, profiles []models.CharacterProfile) error {
	return m.write(ctx, KeyProfiles, profiles)
}

func (m *MongoStore) SaveSession(ctx context.Context, session models.UserSelections) error {
	return m.write(ctx, KeySelections, session)
}

func (m *MongoStore) SaveWardrobe(ctx context.Context, items []models.ExistingItem) error {
	return m.write(ctx, KeyOwnedItems, items)
}

func (m *MongoStore) SaveArchive(ctx context.Context, outfits []models.SavedOutfit) error {
	return m.write(ctx, KeyArchive, outfits)
}
