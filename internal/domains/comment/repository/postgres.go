package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"microblog-backend/internal/domains/comment"
)

type commentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a PostgreSQL-backed comment repository.
func NewCommentRepository(db *pgxpool.Pool) comment.Repository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, c *comment.Comment) error {
	query := `
		INSERT INTO comments (id, post_id, author_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	c.ID = uuid.New()
	c.CreatedAt = time.Now()

	_, err := r.db.Exec(ctx, query, c.ID, c.PostID, c.AuthorID, c.Text, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]*comment.CommentView, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, c.text, c.created_at, u.username
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC`

	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*comment.CommentView, 0)
	for rows.Next() {
		var v comment.CommentView
		if err := rows.Scan(&v.ID, &v.PostID, &v.AuthorID, &v.Text, &v.CreatedAt, &v.AuthorUsername); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}
	return comments, nil
}
