package store

import (
	"context"
	"time"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
)

// CreateQuizScoreParams holds a completed quiz result for persistence.
type CreateQuizScoreParams struct {
	PlayerName string
	Category   string
	Score      int
	Total      int
	CreatedAt  time.Time
}

// CreateQuizScore inserts a completed quiz result.
func (q *Queries) CreateQuizScore(ctx context.Context, p CreateQuizScoreParams) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO quiz_scores (player_name, category, score, total, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		p.PlayerName, p.Category, p.Score, p.Total, p.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListQuizScores returns recent quiz results, newest first.
func (q *Queries) ListQuizScores(ctx context.Context, limit int64) ([]model.QuizScore, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, player_name, category, score, total, created_at
		 FROM quiz_scores ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scores []model.QuizScore
	for rows.Next() {
		var s model.QuizScore
		if err := rows.Scan(&s.ID, &s.PlayerName, &s.Category, &s.Score, &s.Total, &s.CreatedAt); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}
