package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"microblog-backend/internal/domains/follow"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) follow.Repository {
	return &postgresRepository{pool: pool}
}

// Create relies on the (user_id, author_id) primary key: concurrent identical
// requests cannot race into duplicate edges.
func (r *postgresRepository) Create(ctx context.Context, edge *follow.Follow) error {
	query := `
		INSERT INTO follows (user_id, author_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, author_id) DO NOTHING
	`

	if _, err := r.pool.Exec(ctx, query, edge.UserID, edge.AuthorID, edge.CreatedAt); err != nil {
		return fmt.Errorf("failed to create follow: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, userID, authorID uuid.UUID) error {
	query := `DELETE FROM follows WHERE user_id = $1 AND author_id = $2`

	if _, err := r.pool.Exec(ctx, query, userID, authorID); err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	return nil
}

func (r *postgresRepository) Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM follows WHERE user_id = $1 AND author_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, authorID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) CountFollowers(ctx context.Context, authorID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM follows WHERE author_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, authorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM follows WHERE user_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count following: %w", err)
	}
	return count, nil
}
