package mongostore

import (
	"context"
	"errors"
	"time"

	"couponhub/internal/domain/coupon"
	"couponhub/internal/infra"
	"couponhub/internal/infra/db"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var incrementFields = map[coupon.Counter]bson.M{
	coupon.CounterClick:      {"used": 1, "today": 1},
	coupon.CounterThumbsUp:   {"thumbsUp": 1},
	coupon.CounterThumbsDown: {"thumbsDown": 1},
}

type CouponRepository struct {
	database *mongo.Database
	coll     *mongo.Collection
}

func NewCouponRepository(database *mongo.Database) *CouponRepository {
	return &CouponRepository{
		database: database,
		coll:     database.Collection(db.CouponsCollection),
	}
}

func (r *CouponRepository) List(ctx context.Context) ([]*coupon.Coupon, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer cursor.Close(ctx)

	var docs []couponDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to decode coupons", err)
	}

	result := make([]*coupon.Coupon, 0, len(docs))
	for _, d := range docs {
		c, err := d.toEntity()
		if err != nil {
			return nil, infra.WrapRepoErr("invalid coupon document", err)
		}
		result = append(result, c)
	}
	return result, nil
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	// createdAt only has millisecond precision, so order comes from a counter
	seq, err := db.NextSequence(ctx, r.database, db.CouponSeqCounter)
	if err != nil {
		return infra.WrapRepoErr("failed to allocate coupon sequence", err)
	}

	if _, err := r.coll.InsertOne(ctx, newCouponDocument(c, seq)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return infra.WrapRepoErr("coupon id already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

func (r *CouponRepository) Update(ctx context.Context, id uuid.UUID, content coupon.Content, now time.Time) (*coupon.Coupon, error) {
	update := bson.M{"$set": bson.M{
		"offer":     content.Offer(),
		"code":      content.Code(),
		"link":      content.Link(),
		"updatedAt": now.UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc couponDocument
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id.String()}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update coupon", err)
	}

	c, err := doc.toEntity()
	if err != nil {
		return nil, infra.WrapRepoErr("invalid coupon document", err)
	}
	return c, nil
}

func (r *CouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()}); err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	return nil
}

func (r *CouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	var doc couponDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}

	c, err := doc.toEntity()
	if err != nil {
		return nil, infra.WrapRepoErr("invalid coupon document", err)
	}
	return c, nil
}

func (r *CouponRepository) Increment(ctx context.Context, id uuid.UUID, counter coupon.Counter) error {
	fields, ok := incrementFields[counter]
	if !ok {
		return infra.WrapRepoErr("unsupported counter "+counter.String(), coupon.ErrUnknownCounter)
	}

	// $inc without upsert: a missing id matches nothing.
	if _, err := r.coll.UpdateByID(ctx, id.String(), bson.M{"$inc": fields}); err != nil {
		return infra.WrapRepoErr("failed to increment coupon "+counter.String(), err)
	}
	return nil
}
