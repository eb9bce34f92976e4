package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"grocery-be/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) OrdersBetween(ctx context.Context, start, end time.Time) ([]OrderRecord, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]OrderRecord), args.Error(1)
}

func newTestService(repo Repository, now time.Time) *service {
	return &service{
		repo:    repo,
		now:     func() time.Time { return now },
		queries: metrics.NewRegistry().Counter(metrics.AnalyticsQueries),
	}
}

func TestNormalize(t *testing.T) {
	days, top, err := Normalize(MaxDays, 500)
	require.NoError(t, err)
	assert.Equal(t, MaxDays, days)
	assert.Equal(t, MaxTop, top)

	_, _, err = Normalize(MaxDays+1, 5)
	assert.ErrorIs(t, err, ErrInvalidDays)

	_, _, err = Normalize(0, 5)
	assert.ErrorIs(t, err, ErrInvalidDays)

	_, _, err = Normalize(5, 0)
	assert.ErrorIs(t, err, ErrInvalidTop)
}

func TestService_OrderReport(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, now)

		repo.On("OrdersBetween", ctx, start, now).Return([]OrderRecord{
			{ID: 1, Status: "pending", Total: 100, OrderDate: start.Add(time.Hour)},
		}, nil)

		r, err := svc.OrderReport(ctx, 2, 5)
		require.NoError(t, err)
		assert.Len(t, r.DailyOrders, 2)
		assert.Equal(t, 2, r.Period.Days)
		assert.Equal(t, start, r.Period.StartDate)
		assert.Equal(t, uint64(1), svc.queries.Load())
		repo.AssertExpectations(t)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo, now)

		repo.On("OrdersBetween", ctx, start, now).Return(nil, errors.New("db down"))

		r, err := svc.OrderReport(ctx, 2, 5)
		assert.Nil(t, r)
		assert.EqualError(t, err, "db down")
	})

	t.Run("InvalidInput", func(t *testing.T) {
		repo := new(MockRepository)
		_, err := newTestService(repo, now).OrderReport(ctx, -1, 5)
		assert.ErrorIs(t, err, ErrInvalidDays)
		repo.AssertNotCalled(t, "OrdersBetween", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("DaysOverLimit", func(t *testing.T) {
		repo := new(MockRepository)
		r, err := newTestService(repo, now).OrderReport(ctx, MaxDays+35, 5)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, ErrInvalidDays)
		repo.AssertNotCalled(t, "OrdersBetween", mock.Anything, mock.Anything, mock.Anything)
	})
}
