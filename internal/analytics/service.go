package analytics

import (
	"context"
	"time"

	"grocery-be/internal/logger"
	"grocery-be/internal/metrics"

	"go.uber.org/zap"
)

type Service interface {
	OrderReport(ctx context.Context, days, top int) (*Report, error)
}

type service struct {
	repo    Repository
	now     func() time.Time
	queries *metrics.Counter
}

func NewService(repo Repository) Service {
	return &service{
		repo:    repo,
		now:     time.Now,
		queries: metrics.Default.Counter(metrics.AnalyticsQueries),
	}
}

// Normalize validates days and clamps top to MaxTop. days outside
// [1, MaxDays] is rejected so the series always has exactly days entries.
func Normalize(days, top int) (int, int, error) {
	if days < 1 || days > MaxDays {
		return 0, 0, ErrInvalidDays
	}
	if top < 1 {
		return 0, 0, ErrInvalidTop
	}
	return days, min(top, MaxTop), nil
}

func (s *service) OrderReport(ctx context.Context, days, top int) (*Report, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "OrderReport"),
	)

	days, top, err := Normalize(days, top)
	if err != nil {
		return nil, err
	}

	timer := metrics.StartTimer()
	s.queries.Inc()

	start, end := Window(s.now(), days)
	log.Info("OrderReport started",
		zap.Int("days", days),
		zap.Int("top", top),
		zap.Time("start", start),
	)

	orders, err := s.repo.OrdersBetween(ctx, start, end)
	if err != nil {
		log.Error("failed to fetch orders", zap.Error(err))
		return nil, err
	}

	report := Aggregate(orders, start, end, top)
	report.Period = Period{Days: days, StartDate: start, EndDate: end}

	log.Info("OrderReport success",
		zap.Int("orders", report.Summary.TotalOrders),
		zap.Duration("took", timer.Duration()),
	)
	return &report, nil
}
