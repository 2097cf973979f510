package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CouponSeqCounter names the counters document that orders coupons.
const CouponSeqCounter = "coupons"

// NextSequence atomically increments the named counter and returns the new value.
func NextSequence(ctx context.Context, database *mongo.Database, name string) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter struct {
		Value int64 `bson:"value"`
	}
	err := database.Collection(CountersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Value, nil
}

// MigrateMongo rewrites documents that still carry ObjectId _ids and then
// creates the indexes. Rewritten documents get a UUID _id and keep the old
// one in legacyId, so a rerun after a partial failure only finishes the work.
func MigrateMongo(ctx context.Context, database *mongo.Database) error {
	if err := renameLegacyPasswordField(ctx, database); err != nil {
		return err
	}

	coupons, err := convertLegacyCoupons(ctx, database)
	if err != nil {
		return err
	}
	admins, err := convertLegacyAdmins(ctx, database)
	if err != nil {
		return err
	}
	if coupons > 0 || admins > 0 {
		slog.Info("converted legacy mongo documents", "coupons", coupons, "admins", admins)
	}

	return EnsureMongoIndexes(ctx, database)
}

func EnsureMongoIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection(AdminsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create admins.username index: %w", err)
	}

	// documents without seq are legacy rows waiting for conversion
	_, err = database.Collection(CouponsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "seq", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"seq": bson.M{"$exists": true}}),
	})
	if err != nil {
		return fmt.Errorf("failed to create coupons.seq index: %w", err)
	}
	return nil
}

var legacyIDFilter = bson.M{"_id": bson.M{"$type": "objectId"}}

func convertLegacyCoupons(ctx context.Context, database *mongo.Database) (int, error) {
	coll := database.Collection(CouponsCollection)

	// ObjectIds grow with insertion time, so this keeps the listing order.
	cursor, err := coll.Find(ctx, legacyIDFilter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return 0, fmt.Errorf("failed to find legacy coupons: %w", err)
	}
	defer cursor.Close(ctx)

	converted := 0
	for cursor.Next(ctx) {
		var legacy bson.M
		if err := cursor.Decode(&legacy); err != nil {
			return converted, fmt.Errorf("failed to decode legacy coupon: %w", err)
		}
		oldID := legacy["_id"].(primitive.ObjectID)

		done, err := coll.CountDocuments(ctx, bson.M{"legacyId": oldID})
		if err != nil {
			return converted, fmt.Errorf("failed to check legacy coupon %s: %w", oldID.Hex(), err)
		}
		if done == 0 {
			seq, err := NextSequence(ctx, database, CouponSeqCounter)
			if err != nil {
				return converted, fmt.Errorf("failed to allocate coupon sequence: %w", err)
			}
			createdAt := legacyTime(legacy["createdAt"], oldID.Timestamp())
			doc := bson.M{
				"_id":        uuid.NewString(),
				"legacyId":   oldID,
				"seq":        seq,
				"offer":      legacyText(legacy["offer"]),
				"code":       legacyText(legacy["code"]),
				"link":       legacyText(legacy["link"]),
				"used":       legacyCount(legacy["used"]),
				"today":      legacyCount(legacy["today"]),
				"thumbsUp":   legacyCount(legacy["thumbsUp"]),
				"thumbsDown": legacyCount(legacy["thumbsDown"]),
				"createdAt":  createdAt,
				"updatedAt":  legacyTime(legacy["updatedAt"], createdAt),
			}
			if _, err := coll.InsertOne(ctx, doc); err != nil {
				return converted, fmt.Errorf("failed to rewrite legacy coupon %s: %w", oldID.Hex(), err)
			}
		}

		if _, err := coll.DeleteOne(ctx, bson.M{"_id": oldID}); err != nil {
			return converted, fmt.Errorf("failed to remove legacy coupon %s: %w", oldID.Hex(), err)
		}
		converted++
	}
	return converted, cursor.Err()
}

func convertLegacyAdmins(ctx context.Context, database *mongo.Database) (int, error) {
	coll := database.Collection(AdminsCollection)

	cursor, err := coll.Find(ctx, legacyIDFilter)
	if err != nil {
		return 0, fmt.Errorf("failed to find legacy admins: %w", err)
	}
	defer cursor.Close(ctx)

	converted := 0
	for cursor.Next(ctx) {
		var legacy bson.M
		if err := cursor.Decode(&legacy); err != nil {
			return converted, fmt.Errorf("failed to decode legacy admin: %w", err)
		}
		oldID := legacy["_id"].(primitive.ObjectID)

		// username is unique, so the old row goes first
		if _, err := coll.DeleteOne(ctx, bson.M{"_id": oldID}); err != nil {
			return converted, fmt.Errorf("failed to remove legacy admin %s: %w", oldID.Hex(), err)
		}

		createdAt := legacyTime(legacy["createdAt"], oldID.Timestamp())
		doc := bson.M{
			"_id":       uuid.NewString(),
			"legacyId":  oldID,
			"username":  legacyText(legacy["username"]),
			"password":  legacyText(legacy["password"]),
			"createdAt": createdAt,
			"updatedAt": legacyTime(legacy["updatedAt"], createdAt),
		}
		if _, err := coll.InsertOne(ctx, doc); err != nil {
			if _, restoreErr := coll.InsertOne(ctx, legacy); restoreErr != nil {
				slog.Error("failed to restore legacy admin", "id", oldID.Hex(), "error", restoreErr)
			}
			return converted, fmt.Errorf("failed to rewrite legacy admin %s: %w", oldID.Hex(), err)
		}
		converted++
	}
	return converted, cursor.Err()
}

func renameLegacyPasswordField(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection(AdminsCollection).UpdateMany(ctx,
		bson.M{"passwordHash": bson.M{"$exists": true}},
		bson.M{"$rename": bson.M{"passwordHash": "password"}},
	)
	if err != nil {
		return fmt.Errorf("failed to rename admins.passwordHash: %w", err)
	}
	return nil
}

func legacyText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func legacyCount(v any) int64 {
	switch x := v.(type) {
	case int32:
		return int64(x)
	case int64:
		return x
	case float64:
		return int64(x)
	default:
		return 0
	}
}

func legacyTime(v any, fallback time.Time) time.Time {
	switch x := v.(type) {
	case primitive.DateTime:
		return x.Time().UTC()
	case time.Time:
		return x.UTC()
	default:
		return fallback.UTC()
	}
}
