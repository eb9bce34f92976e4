package transaction

import (
	"context"
	"strings"
	"time"

	"grocery-be/internal/logger"
	"grocery-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, input CreateInput) (*Transaction, error)
	List(ctx context.Context, filter ListFilter) (*Page, error)
	Summary(ctx context.Context, from, to *time.Time) (*Summary, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// ParseDate accepts YYYY-MM-DD (UTC midnight) or RFC3339.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseRange parses optional from/to bounds. A date-only upper bound covers
// the whole day.
func ParseRange(fromRaw, toRaw string) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if strings.TrimSpace(fromRaw) != "" {
		f, err := ParseDate(fromRaw)
		if err != nil {
			return nil, nil, err
		}
		from = &f
	}
	if raw := strings.TrimSpace(toRaw); raw != "" {
		t, err := ParseDate(raw)
		if err != nil {
			return nil, nil, err
		}
		if len(raw) == len(time.DateOnly) {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		to = &t
	}
	return from, to, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Transaction, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateTransaction"),
	)

	t := &Transaction{
		Type:        Type(strings.ToLower(strings.TrimSpace(input.Type))),
		Category:    strings.TrimSpace(input.Category),
		Amount:      input.Amount,
		Description: strings.TrimSpace(input.Description),
		Date:        s.now(),
	}
	if !t.Type.Valid() {
		return nil, ErrInvalidType
	}
	if t.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if t.Category == "" {
		return nil, ErrEmptyCategory
	}
	if strings.TrimSpace(input.Date) != "" {
		d, err := ParseDate(input.Date)
		if err != nil {
			return nil, err
		}
		t.Date = d
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		log.Error("failed to create transaction", zap.Error(err))
		return nil, err
	}

	log.Info("CreateTransaction success", zap.Int64("transaction_id", created.ID), zap.String("type", string(created.Type)))
	return created, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) (*Page, error) {
	if filter.Type != "" && !Type(filter.Type).Valid() {
		return nil, ErrInvalidType
	}
	filter.Page, filter.Limit, _ = utils.Paging(filter.Page, filter.Limit)

	ts, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &Page{Items: ToViews(ts), Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *service) Summary(ctx context.Context, from, to *time.Time) (*Summary, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "TransactionSummary"),
	)

	ts, err := s.repo.Between(ctx, from, to)
	if err != nil {
		log.Error("failed to load transactions", zap.Error(err))
		return nil, err
	}

	sum := Summarize(ts)
	sum.From, sum.To = from, to
	return &sum, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTransactionNotFound
	}
	return nil
}
