//go:build unit

package memstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"couponhub/internal/domain/coupon"
	"couponhub/internal/infra"
	"couponhub/internal/infra/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CouponRepositoryTestSuite struct {
	suite.Suite
	repo *memstore.CouponRepository
	ctx  context.Context
	now  time.Time
}

func (s *CouponRepositoryTestSuite) SetupTest() {
	s.repo = memstore.NewCouponRepository()
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *CouponRepositoryTestSuite) create(offer string) *coupon.Coupon {
	c := coupon.NewCoupon(coupon.NewContent(offer, "CODE", "https://shop.example"), s.now)
	s.Require().NoError(s.repo.Create(s.ctx, c))
	return c
}

func (s *CouponRepositoryTestSuite) TestList_InsertionOrder() {
	first := s.create("first")
	second := s.create("second")
	third := s.create("third")

	list, err := s.repo.List(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal(first.ID(), list[0].ID())
	s.Equal(second.ID(), list[1].ID())
	s.Equal(third.ID(), list[2].ID())
}

func (s *CouponRepositoryTestSuite) TestList_Empty() {
	list, err := s.repo.List(s.ctx)

	s.Require().NoError(err)
	s.NotNil(list)
	s.Empty(list)
}

func (s *CouponRepositoryTestSuite) TestCreate_DuplicateID() {
	c := s.create("dup")

	err := s.repo.Create(s.ctx, c)

	s.True(infra.IsKind(err, infra.KindDuplicateKey))
}

func (s *CouponRepositoryTestSuite) TestUpdate() {
	c := s.create("old")
	s.Require().NoError(s.repo.Increment(s.ctx, c.ID(), coupon.CounterThumbsUp))
	later := s.now.Add(time.Hour)

	updated, err := s.repo.Update(s.ctx, c.ID(), coupon.NewContent("new", "NEW", "https://new.example"), later)

	s.Require().NoError(err)
	s.Equal("new", updated.Content().Offer())
	s.Equal("NEW", updated.Content().Code())
	s.Equal("https://new.example", updated.Content().Link())
	s.Equal(int64(1), updated.ThumbsUp(), "counters are untouched by content updates")
	s.Equal(s.now, updated.CreatedAt())
	s.Equal(later, updated.UpdatedAt())
}

func (s *CouponRepositoryTestSuite) TestUpdate_NotFound() {
	updated, err := s.repo.Update(s.ctx, uuid.New(), coupon.NewContent("x", "y", "z"), s.now)

	s.Nil(updated)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *CouponRepositoryTestSuite) TestDelete() {
	keep := s.create("keep")
	drop := s.create("drop")

	s.Require().NoError(s.repo.Delete(s.ctx, drop.ID()))
	s.Require().NoError(s.repo.Delete(s.ctx, drop.ID()), "second delete is a no-op")

	list, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(keep.ID(), list[0].ID())

	_, err = s.repo.FindByID(s.ctx, drop.ID())
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *CouponRepositoryTestSuite) TestIncrement() {
	c := s.create("counted")

	s.Require().NoError(s.repo.Increment(s.ctx, c.ID(), coupon.CounterClick))
	s.Require().NoError(s.repo.Increment(s.ctx, c.ID(), coupon.CounterClick))
	s.Require().NoError(s.repo.Increment(s.ctx, c.ID(), coupon.CounterThumbsUp))
	s.Require().NoError(s.repo.Increment(s.ctx, c.ID(), coupon.CounterThumbsDown))

	got, err := s.repo.FindByID(s.ctx, c.ID())
	s.Require().NoError(err)
	s.Equal(int64(2), got.Used())
	s.Equal(int64(2), got.Today())
	s.Equal(int64(1), got.ThumbsUp())
	s.Equal(int64(1), got.ThumbsDown())
}

func (s *CouponRepositoryTestSuite) TestIncrement_MissingIsNoop() {
	s.NoError(s.repo.Increment(s.ctx, uuid.New(), coupon.CounterClick))
}

func (s *CouponRepositoryTestSuite) TestIncrement_UnknownCounter() {
	c := s.create("x")

	err := s.repo.Increment(s.ctx, c.ID(), coupon.Counter("views"))

	s.ErrorIs(err, coupon.ErrUnknownCounter)
}

func (s *CouponRepositoryTestSuite) TestReturnedEntitiesAreCopies() {
	c := s.create("copy")

	got, err := s.repo.FindByID(s.ctx, c.ID())
	s.Require().NoError(err)
	got.Increment(coupon.CounterClick)

	again, err := s.repo.FindByID(s.ctx, c.ID())
	s.Require().NoError(err)
	s.Equal(int64(0), again.Used())
}

func TestCouponRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CouponRepositoryTestSuite))
}

func TestCouponRepository_ConcurrentIncrements(t *testing.T) {
	repo := memstore.NewCouponRepository()
	ctx := context.Background()
	c := coupon.NewCoupon(coupon.NewContent("hot deal", "HOT", ""), time.Now())
	require.NoError(t, repo.Create(ctx, c))

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers * 2)
	for range workers {
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Increment(ctx, c.ID(), coupon.CounterClick))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Increment(ctx, c.ID(), coupon.CounterThumbsUp))
		}()
	}
	wg.Wait()

	got, err := repo.FindByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(workers), got.Used())
	assert.Equal(t, int64(workers), got.Today())
	assert.Equal(t, int64(workers), got.ThumbsUp())
	assert.Equal(t, int64(0), got.ThumbsDown())
}
