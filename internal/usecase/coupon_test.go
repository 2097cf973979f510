//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"couponhub/internal/domain/coupon"
	"couponhub/internal/infra"
	"couponhub/internal/pkg/clock"
	"couponhub/internal/pkg/errs"
	"couponhub/internal/pkg/metrics"
	"couponhub/internal/usecase"
	"couponhub/internal/usecase/readmodel"
	"couponhub/tests/common/builder"
	usecasemock "couponhub/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponUseCaseTestSuite struct {
	suite.Suite
	ctx      context.Context
	now      time.Time
	mockCtrl *gomock.Controller
	mockRepo *usecasemock.MockCouponRepository
	useCase  usecase.CouponUseCase
}

func (s *CouponUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = usecasemock.NewMockCouponRepository(s.mockCtrl)
	s.useCase = usecase.NewCouponUseCase(s.mockRepo, clock.NewMockClock(s.now))
}

func (s *CouponUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CouponUseCaseTestSuite))
}

func (s *CouponUseCaseTestSuite) TestList() {
	s.Run("maps every coupon in repository order", func() {
		a := builder.NewCouponBuilder().WithCounters(1, 1, 0, 0)
		b := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.Code = "SECOND" })
		s.mockRepo.EXPECT().List(s.ctx).Return([]*coupon.Coupon{a.BuildDomain(), b.BuildDomain()}, nil).Times(1)

		got, err := s.useCase.List(s.ctx)

		s.Require().NoError(err)
		want := []*readmodel.CouponRM{a.BuildReadModel(), b.BuildReadModel()}
		if diff := cmp.Diff(want, got); diff != "" {
			s.T().Errorf("List mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("empty store gives empty non-nil slice", func() {
		s.mockRepo.EXPECT().List(s.ctx).Return(nil, nil).Times(1)

		got, err := s.useCase.List(s.ctx)

		s.Require().NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})

	s.Run("storage failure is marked", func() {
		s.mockRepo.EXPECT().List(s.ctx).Return(nil, infra.WrapRepoErr("list", assert.AnError)).Times(1)

		_, err := s.useCase.List(s.ctx)

		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func (s *CouponUseCaseTestSuite) TestCreate() {
	content := builder.NewCouponBuilder().BuildContent()

	s.Run("new coupon has zero counters and clock timestamps", func() {
		var stored *coupon.Coupon
		s.mockRepo.EXPECT().Create(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *coupon.Coupon) error {
				stored = c
				return nil
			}).Times(1)

		got, err := s.useCase.Create(s.ctx, content)

		s.Require().NoError(err)
		s.Require().NotNil(stored)
		s.NotEqual(uuid.Nil, got.ID)
		s.Equal(stored.ID(), got.ID)
		s.Equal(content, stored.Content())
		s.Equal(coupon.Interactions{}, stored.Interactions())
		s.Zero(got.Today)
		s.Equal(s.now, got.CreatedAt)
		s.Equal(s.now, got.UpdatedAt)
	})

	s.Run("storage failure is marked", func() {
		s.mockRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(assert.AnError).Times(1)

		got, err := s.useCase.Create(s.ctx, content)

		s.Nil(got)
		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func (s *CouponUseCaseTestSuite) TestUpdate() {
	b := builder.NewCouponBuilder().WithCounters(3, 1, 2, 1)
	content := coupon.NewContent("new offer", "NEW", "https://new.example")

	s.Run("stamps updatedAt from the clock", func() {
		updated := b.BuildDomain()
		updated.UpdateContent(content, s.now)
		s.mockRepo.EXPECT().Update(s.ctx, b.ID, content, s.now).Return(updated, nil).Times(1)

		got, err := s.useCase.Update(s.ctx, b.ID, content)

		s.Require().NoError(err)
		s.Equal("new offer", got.Offer)
		s.Equal(int64(3), got.Used)
		s.Equal(b.CreatedAt, got.CreatedAt)
		s.Equal(s.now, got.UpdatedAt)
	})

	s.Run("missing coupon yields nil without error", func() {
		s.mockRepo.EXPECT().Update(s.ctx, b.ID, content, s.now).Return(nil, infra.NotFound("coupon not found")).Times(1)

		got, err := s.useCase.Update(s.ctx, b.ID, content)

		s.NoError(err)
		s.Nil(got)
	})

	s.Run("storage failure is marked", func() {
		s.mockRepo.EXPECT().Update(s.ctx, b.ID, content, s.now).Return(nil, infra.WrapRepoErr("update", assert.AnError)).Times(1)

		_, err := s.useCase.Update(s.ctx, b.ID, content)

		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func (s *CouponUseCaseTestSuite) TestDelete() {
	id := uuid.New()

	s.mockRepo.EXPECT().Delete(s.ctx, id).Return(nil).Times(1)
	s.NoError(s.useCase.Delete(s.ctx, id))

	s.mockRepo.EXPECT().Delete(s.ctx, id).Return(assert.AnError).Times(1)
	s.True(errs.Is(s.useCase.Delete(s.ctx, id), errs.ErrDatabaseOperationFailed))
}

func (s *CouponUseCaseTestSuite) TestGetInteractions() {
	b := builder.NewCouponBuilder().WithCounters(9, 4, 3, 1)

	s.Run("clicks mirror used", func() {
		s.mockRepo.EXPECT().FindByID(s.ctx, b.ID).Return(b.BuildDomain(), nil).Times(1)

		got, err := s.useCase.GetInteractions(s.ctx, b.ID)

		s.Require().NoError(err)
		s.Equal(&readmodel.InteractionsRM{ThumbsUp: 3, ThumbsDown: 1, Clicks: 9}, got)
	})

	s.Run("missing coupon", func() {
		s.mockRepo.EXPECT().FindByID(s.ctx, b.ID).Return(nil, infra.NotFound("coupon not found")).Times(1)

		_, err := s.useCase.GetInteractions(s.ctx, b.ID)

		s.True(errs.Is(err, usecase.ErrCouponNotFound))
	})

	s.Run("storage failure", func() {
		s.mockRepo.EXPECT().FindByID(s.ctx, b.ID).Return(nil, infra.WrapRepoErr("find", assert.AnError)).Times(1)

		_, err := s.useCase.GetInteractions(s.ctx, b.ID)

		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
		s.False(errs.Is(err, usecase.ErrCouponNotFound))
	})
}

func (s *CouponUseCaseTestSuite) TestRecordInteraction() {
	id := uuid.New()

	for _, counter := range []coupon.Counter{coupon.CounterClick, coupon.CounterThumbsUp, coupon.CounterThumbsDown} {
		s.Run(counter.String(), func() {
			before := testutil.ToFloat64(metrics.CouponInteractions.WithLabelValues(counter.String()))
			s.mockRepo.EXPECT().Increment(s.ctx, id, counter).Return(nil).Times(1)

			s.Require().NoError(s.useCase.RecordInteraction(s.ctx, id, counter))

			after := testutil.ToFloat64(metrics.CouponInteractions.WithLabelValues(counter.String()))
			s.InDelta(1, after-before, 0)
		})
	}

	s.Run("unknown counter never reaches storage", func() {
		err := s.useCase.RecordInteraction(s.ctx, id, coupon.Counter("views"))
		s.ErrorIs(err, coupon.ErrUnknownCounter)
	})

	s.Run("storage failure is marked and not counted", func() {
		before := testutil.ToFloat64(metrics.CouponInteractions.WithLabelValues("click"))
		s.mockRepo.EXPECT().Increment(s.ctx, id, coupon.CounterClick).Return(assert.AnError).Times(1)

		err := s.useCase.RecordInteraction(s.ctx, id, coupon.CounterClick)

		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
		s.InDelta(before, testutil.ToFloat64(metrics.CouponInteractions.WithLabelValues("click")), 0)
	})
}
