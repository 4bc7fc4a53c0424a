package account

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const usersCollection = "users"

// MongoStore keeps one document per steam id in the users collection.
// ReplaceOne with upsert gives the required set-by-key semantics:
// per-key atomic, idempotent, last write wins.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(usersCollection)}
}

type accountDoc struct {
	ID          string `bson:"_id"`
	SteamID     string `bson:"steamId"`
	DisplayName string `bson:"displayName"`
}

func (s *MongoStore) Upsert(ctx context.Context, acc Account) error {
	if acc.SteamID == "" {
		return errors.New("account: missing steam id")
	}

	doc := accountDoc{
		ID:          acc.SteamID,
		SteamID:     acc.SteamID,
		DisplayName: acc.DisplayName,
	}

	_, err := s.coll.ReplaceOne(
		ctx,
		bson.D{{Key: "_id", Value: acc.SteamID}},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("account: upsert %s: %w", acc.SteamID, err)
	}
	return nil
}
