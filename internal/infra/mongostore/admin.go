package mongostore

import (
	"context"
	"errors"
	"time"

	"couponhub/internal/domain/admin"
	"couponhub/internal/infra"
	"couponhub/internal/infra/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AdminRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewAdminRepository(database *mongo.Database) *AdminRepository {
	return &AdminRepository{
		coll: database.Collection(db.AdminsCollection),
		now:  time.Now,
	}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username admin.Username) (*admin.Admin, error) {
	var doc adminDocument
	if err := r.coll.FindOne(ctx, bson.M{"username": username.Value()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find admin by username", err)
	}

	a, err := doc.toEntity()
	if err != nil {
		return nil, infra.WrapRepoErr("invalid admin document", err)
	}
	return a, nil
}

func (r *AdminRepository) Upsert(ctx context.Context, a *admin.Admin) (*admin.Admin, error) {
	now := r.now().UTC()
	update := bson.M{
		"$set": bson.M{
			"password":  a.PasswordHash(),
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"_id":       a.ID().String(),
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc adminDocument
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"username": a.Username().Value()}, update, opts).Decode(&doc)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert admin", err)
	}

	saved, err := doc.toEntity()
	if err != nil {
		return nil, infra.WrapRepoErr("invalid admin document", err)
	}
	return saved, nil
}
