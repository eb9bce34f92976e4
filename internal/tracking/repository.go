package tracking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"grocery-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Insert(ctx context.Context, e *Event) (*Event, error)
	List(ctx context.Context, filter ListFilter) ([]*Event, int64, error)
	Summary(ctx context.Context, since time.Time, topN int) (*Summary, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const eventColumns = `
	id, event_type, session_id, user_id, product_id, order_id,
	page_url, referrer, user_agent, ip_address, metadata, created_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*Event, error) {
	var (
		e   Event
		raw []byte
	)
	if err := row.Scan(
		&e.ID, &e.EventType, &e.SessionID, &e.UserID, &e.ProductID, &e.OrderID,
		&e.PageURL, &e.Referrer, &e.UserAgent, &e.IPAddress, &raw, &e.CreatedAt,
	); err != nil {
		return nil, err
	}
	e.Metadata = map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &e.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata of event %d: %w", e.ID, err)
		}
	}
	return &e, nil
}

func (r *repository) Insert(ctx context.Context, e *Event) (*Event, error) {
	md := e.Metadata
	if md == nil {
		md = map[string]any{}
	}
	raw, err := json.Marshal(md)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}

	created, err := scanEvent(r.db.QueryRowContext(ctx, `
		INSERT INTO tracking_events (
			event_type, session_id, user_id, product_id, order_id,
			page_url, referrer, user_agent, ip_address, metadata
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb)
		RETURNING `+eventColumns,
		e.EventType, e.SessionID, e.UserID, e.ProductID, e.OrderID,
		e.PageURL, e.Referrer, e.UserAgent, e.IPAddress, raw,
	))
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert tracking event", zap.String("event_type", string(e.EventType)), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Event, int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListEvents"),
	)

	where := []string{}
	args := []any{}
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if filter.EventType != "" {
		add("event_type = $%d", filter.EventType)
	}
	if filter.SessionID != "" {
		add("session_id = $%d", filter.SessionID)
	}
	if filter.ProductID != "" {
		add("product_id = $%d", filter.ProductID)
	}
	if filter.From != nil {
		add("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("created_at <= $%d", *filter.To)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tracking_events`+whereSQL, args...).Scan(&total); err != nil {
		log.Error("failed to count events", zap.Error(err))
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	query := `SELECT ` + eventColumns + ` FROM tracking_events` + whereSQL +
		` ORDER BY created_at DESC, id DESC` +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query events", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	events := []*Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			log.Error("failed to scan event", zap.Error(err))
			return nil, 0, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *repository) Summary(ctx context.Context, since time.Time, topN int) (*Summary, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "EventSummary"),
	)

	s := &Summary{Since: since, ByType: map[EventType]int64{}, TopProducts: []ProductViews{}}

	// 1. Counts per type
	rows, err := r.db.QueryContext(ctx, `
		SELECT event_type, COUNT(*)
		FROM tracking_events
		WHERE created_at >= $1
		GROUP BY event_type
	`, since)
	if err != nil {
		log.Error("failed to count events by type", zap.Error(err))
		return nil, err
	}
	for rows.Next() {
		var (
			t EventType
			n int64
		)
		if err := rows.Scan(&t, &n); err != nil {
			rows.Close()
			return nil, err
		}
		s.ByType[t] = n
		s.TotalEvents += n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// 2. Unique sessions
	if err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT session_id)
		FROM tracking_events
		WHERE created_at >= $1 AND session_id <> ''
	`, since).Scan(&s.UniqueSessions); err != nil {
		log.Error("failed to count sessions", zap.Error(err))
		return nil, err
	}

	// 3. Most viewed products
	rows, err = r.db.QueryContext(ctx, `
		SELECT product_id, COUNT(*) AS views
		FROM tracking_events
		WHERE created_at >= $1 AND event_type = 'page_view' AND product_id <> ''
		GROUP BY product_id
		ORDER BY views DESC, product_id
		LIMIT $2
	`, since, topN)
	if err != nil {
		log.Error("failed to rank products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var pv ProductViews
		if err := rows.Scan(&pv.ProductID, &pv.Views); err != nil {
			return nil, err
		}
		s.TopProducts = append(s.TopProducts, pv)
	}
	return s, rows.Err()
}
