//go:build e2e

package mongostore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"couponhub/internal/domain/admin"
	"couponhub/internal/domain/coupon"
	"couponhub/internal/infra"
	"couponhub/internal/infra/db"
	"couponhub/internal/infra/mongostore"
	"couponhub/internal/pkg/password"
	"couponhub/tests/common/dbtest"
	"couponhub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type MongoStoreTestSuite struct {
	suite.Suite
	database *mongo.Database
	coupons  *mongostore.CouponRepository
	admins   *mongostore.AdminRepository
	ctx      context.Context
}

func TestMongoStoreTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(MongoStoreTestSuite))
}

func (s *MongoStoreTestSuite) SetupSuite() {
	s.database, _ = e2e.StartMongo(s.T())
	s.coupons = mongostore.NewCouponRepository(s.database)
	s.admins = mongostore.NewAdminRepository(s.database)
	s.ctx = context.Background()
}

func (s *MongoStoreTestSuite) SetupTest() {
	s.Require().NoError(dbtest.ResetMongo(s.database))
}

func (s *MongoStoreTestSuite) newCoupon(offer string) *coupon.Coupon {
	// BSON dates keep milliseconds
	now := time.Now().UTC().Truncate(time.Millisecond)
	c := coupon.NewCoupon(coupon.NewContent(offer, "CODE", "https://shop.example"), now)
	s.Require().NoError(s.coupons.Create(s.ctx, c))
	return c
}

func (s *MongoStoreTestSuite) TestListOrderWithinSameMillisecond() {
	fixed := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var want []uuid.UUID
	for _, offer := range []string{"a", "b", "c", "d"} {
		c := coupon.NewCoupon(coupon.NewContent(offer, "", ""), fixed)
		s.Require().NoError(s.coupons.Create(s.ctx, c))
		want = append(want, c.ID())
	}

	list, err := s.coupons.List(s.ctx)
	s.Require().NoError(err)

	got := make([]uuid.UUID, 0, len(list))
	for _, c := range list {
		got = append(got, c.ID())
	}
	s.Equal(want, got)
}

func (s *MongoStoreTestSuite) TestUpdateAndFind() {
	c := s.newCoupon("old")

	updated, err := s.coupons.Update(s.ctx, c.ID(), coupon.NewContent("new", "NEW", "https://new.example"), c.CreatedAt().Add(time.Minute))
	s.Require().NoError(err)
	s.Equal(c.ID(), updated.ID())
	s.Equal("new", updated.Content().Offer())
	s.True(c.CreatedAt().Equal(updated.CreatedAt()))

	_, err = s.coupons.Update(s.ctx, uuid.New(), coupon.NewContent("", "", ""), time.Now())
	s.True(infra.IsKind(err, infra.KindNotFound))

	_, err = s.coupons.FindByID(s.ctx, uuid.New())
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *MongoStoreTestSuite) TestDelete_Idempotent() {
	c := s.newCoupon("gone")

	s.Require().NoError(s.coupons.Delete(s.ctx, c.ID()))
	s.Require().NoError(s.coupons.Delete(s.ctx, c.ID()))

	list, err := s.coupons.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *MongoStoreTestSuite) TestIncrement_Concurrent() {
	c := s.newCoupon("hot")

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers * 2)
	for range workers {
		go func() {
			defer wg.Done()
			assert.NoError(s.T(), s.coupons.Increment(s.ctx, c.ID(), coupon.CounterClick))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(s.T(), s.coupons.Increment(s.ctx, c.ID(), coupon.CounterThumbsDown))
		}()
	}
	wg.Wait()

	s.NoError(s.coupons.Increment(s.ctx, uuid.New(), coupon.CounterThumbsUp), "missing id is a no-op")

	got, err := s.coupons.FindByID(s.ctx, c.ID())
	s.Require().NoError(err)
	s.Equal(coupon.Interactions{ThumbsDown: workers, Clicks: workers}, got.Interactions())
	s.Equal(int64(workers), got.Today())

	list, err := s.coupons.List(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 1, "increments never upsert")
}

func (s *MongoStoreTestSuite) TestAdminUpsert() {
	username, err := admin.NewUsername("root")
	s.Require().NoError(err)

	_, err = s.admins.FindByUsername(s.ctx, username)
	s.True(infra.IsKind(err, infra.KindNotFound))

	first, err := s.admins.Upsert(s.ctx, admin.NewAdmin(username, "hash-1"))
	s.Require().NoError(err)
	second, err := s.admins.Upsert(s.ctx, admin.NewAdmin(username, "hash-2"))
	s.Require().NoError(err)
	s.Equal(first.ID(), second.ID())

	found, err := s.admins.FindByUsername(s.ctx, username)
	s.Require().NoError(err)
	s.Equal("hash-2", found.PasswordHash())
}

// Rows as the earlier mongoose store wrote them: ObjectId _id, __v,
// int32 counters, no seq and the bcrypt hash under "password".
func (s *MongoStoreTestSuite) seedLegacyRows(first, second primitive.ObjectID, hash string) {
	_, err := s.database.Collection(db.CouponsCollection).InsertMany(s.ctx, []any{
		bson.D{
			{Key: "_id", Value: second}, {Key: "offer", Value: "second"}, {Key: "code", Value: "B"},
			{Key: "link", Value: "https://b.example"}, {Key: "used", Value: int32(3)}, {Key: "today", Value: int32(1)},
			{Key: "thumbsUp", Value: int32(2)}, {Key: "thumbsDown", Value: int32(0)}, {Key: "__v", Value: int32(0)},
		},
		bson.D{
			{Key: "_id", Value: first}, {Key: "offer", Value: "first"}, {Key: "code", Value: nil},
			{Key: "used", Value: int32(7)}, {Key: "today", Value: 2.0},
			{Key: "thumbsUp", Value: int32(0)}, {Key: "thumbsDown", Value: int32(1)}, {Key: "__v", Value: int32(0)},
		},
	})
	s.Require().NoError(err)

	_, err = s.database.Collection(db.AdminsCollection).InsertOne(s.ctx, bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "username", Value: "admin"},
		{Key: "password", Value: hash},
		{Key: "__v", Value: int32(0)},
	})
	s.Require().NoError(err)
}

func (s *MongoStoreTestSuite) TestMigrateMongo_ConvertsLegacyRows() {
	hash, err := password.HashPasswordWithCost("s3cret-pass", bcrypt.MinCost)
	s.Require().NoError(err)

	firstAt := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	first := primitive.NewObjectIDFromTimestamp(firstAt)
	second := primitive.NewObjectIDFromTimestamp(firstAt.Add(time.Hour))
	s.seedLegacyRows(first, second, hash)

	// a second run finds nothing left to convert
	s.Require().NoError(db.MigrateMongo(s.ctx, s.database))
	s.Require().NoError(db.MigrateMongo(s.ctx, s.database))

	for _, name := range []string{db.CouponsCollection, db.AdminsCollection} {
		left, err := s.database.Collection(name).CountDocuments(s.ctx, bson.M{"_id": bson.M{"$type": "objectId"}})
		s.Require().NoError(err)
		s.Zero(left, name)
	}

	list, err := s.coupons.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)

	s.Equal(coupon.NewContent("first", "", ""), list[0].Content())
	s.Equal(int64(7), list[0].Used())
	s.Equal(int64(2), list[0].Today())
	s.Equal(coupon.Interactions{ThumbsDown: 1, Clicks: 7}, list[0].Interactions())
	s.True(firstAt.Equal(list[0].CreatedAt()), "createdAt comes from the ObjectId")

	s.Equal(coupon.NewContent("second", "B", "https://b.example"), list[1].Content())
	s.Equal(coupon.Interactions{ThumbsUp: 2, Clicks: 3}, list[1].Interactions())

	s.Run("converted rows take normal writes", func() {
		s.Require().NoError(s.coupons.Increment(s.ctx, list[1].ID(), coupon.CounterClick))
		got, err := s.coupons.FindByID(s.ctx, list[1].ID())
		s.Require().NoError(err)
		s.Equal(int64(4), got.Used())

		third := s.newCoupon("third")
		all, err := s.coupons.List(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(all, 3)
		s.Equal(third.ID(), all[2].ID())
	})

	s.Run("admin password still verifies", func() {
		username, err := admin.NewUsername("admin")
		s.Require().NoError(err)

		found, err := s.admins.FindByUsername(s.ctx, username)
		s.Require().NoError(err)
		s.NoError(password.ComparePassword(found.PasswordHash(), "s3cret-pass"))
	})
}

func (s *MongoStoreTestSuite) TestAdminUpsert_WritesPasswordField() {
	username, err := admin.NewUsername("root")
	s.Require().NoError(err)

	_, err = s.admins.Upsert(s.ctx, admin.NewAdmin(username, "hash-1"))
	s.Require().NoError(err)

	var raw bson.M
	s.Require().NoError(s.database.Collection(db.AdminsCollection).FindOne(s.ctx, bson.M{"username": "root"}).Decode(&raw))
	s.Equal("hash-1", raw["password"])
	s.NotContains(raw, "passwordHash")
}
