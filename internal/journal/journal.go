// Package journal provides the local review history. It is purely a
// client-side record; the backend never reads it and review scheduling
// does not depend on it.
package journal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// ReviewLog represents one graded review recorded on this machine.
type ReviewLog struct {
	ID             int64     `db:"id" yaml:"id"`
	CardID         int64     `db:"card_id" yaml:"card_id"`
	DeckID         int64     `db:"deck_id" yaml:"deck_id"`
	Tag            string    `db:"tag" yaml:"tag"`
	Question       string    `db:"question" yaml:"question"`
	Result         string    `db:"result" yaml:"result"`
	ResponseTimeMs int       `db:"response_time_ms" yaml:"response_time_ms"`
	ReviewedAt     time.Time `db:"reviewed_at" yaml:"reviewed_at"`
	CreatedAt      time.Time `db:"created_at" yaml:"created_at"`
}

//go:generate mockgen -source=journal.go -destination=../mocks/journal/mock_journal.go -package=mock_journal

// Repository defines operations for the local review journal.
type Repository interface {
	Create(ctx context.Context, log *ReviewLog) error
	BatchCreate(ctx context.Context, logs []ReviewLog) error
	FindRecent(ctx context.Context, limit int) ([]ReviewLog, error)
	FindAll(ctx context.Context) ([]ReviewLog, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Create inserts a single review log.
func (r *DBRepository) Create(ctx context.Context, log *ReviewLog) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO review_logs (card_id, deck_id, tag, question, result, response_time_ms, reviewed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		log.CardID, log.DeckID, log.Tag, log.Question, log.Result,
		log.ResponseTimeMs, log.ReviewedAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert review_log) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	log.ID = id
	return nil
}

// BatchCreate inserts review logs in a single statement.
func (r *DBRepository) BatchCreate(ctx context.Context, logs []ReviewLog) error {
	if len(logs) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(logs))
	args := make([]interface{}, 0, len(logs)*7)
	for _, log := range logs {
		placeholders = append(placeholders, "(?, ?, ?, ?, ?, ?, ?)")
		args = append(args, log.CardID, log.DeckID, log.Tag, log.Question, log.Result,
			log.ResponseTimeMs, log.ReviewedAt)
	}

	query := `INSERT INTO review_logs (card_id, deck_id, tag, question, result, response_time_ms, reviewed_at)
		VALUES ` + strings.Join(placeholders, ", ")
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("db.ExecContext(insert review_logs) > %w", err)
	}
	return nil
}

// FindRecent returns the most recent review logs, newest first.
func (r *DBRepository) FindRecent(ctx context.Context, limit int) ([]ReviewLog, error) {
	var logs []ReviewLog
	if err := r.db.SelectContext(ctx, &logs,
		"SELECT * FROM review_logs ORDER BY reviewed_at DESC, id DESC LIMIT ?",
		limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(recent review_logs) > %w", err)
	}
	return logs, nil
}

// FindAll returns all review logs ordered oldest first.
func (r *DBRepository) FindAll(ctx context.Context) ([]ReviewLog, error) {
	var logs []ReviewLog
	if err := r.db.SelectContext(ctx, &logs,
		"SELECT * FROM review_logs ORDER BY reviewed_at, id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(review_logs) > %w", err)
	}
	return logs, nil
}
