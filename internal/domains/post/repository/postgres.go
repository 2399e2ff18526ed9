package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"microblog-backend/internal/domains/post"
	"microblog-backend/pkg/database"
)

type postRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a PostgreSQL-backed post repository.
func NewPostRepository(db *pgxpool.Pool) post.Repository {
	return &postRepository{db: db}
}

// feedSelect is the projection shared by every feed query: each row carries
// the author's username and, when present, the group title and slug.
const feedSelect = `
	SELECT p.id, p.author_id, p.group_id, p.text, p.image_url,
	       p.created_at, p.updated_at,
	       u.username, g.title, g.slug
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN groups g ON g.id = p.group_id`

func (r *postRepository) Create(ctx context.Context, p *post.Post) error {
	query := `
		INSERT INTO posts (id, author_id, group_id, text, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	now := time.Now()
	p.ID = uuid.New()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		p.ID, p.AuthorID, p.GroupID, p.Text, p.ImageURL, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*post.FeedPost, error) {
	query := feedSelect + ` WHERE p.id = $1`

	fp, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return fp, nil
}

func (r *postRepository) Update(ctx context.Context, p *post.Post) error {
	query := `
		UPDATE posts
		SET group_id = $2, text = $3, updated_at = $4
		WHERE id = $1`

	p.UpdatedAt = time.Now()
	tag, err := r.db.Exec(ctx, query, p.ID, p.GroupID, p.Text, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) SetImageURL(ctx context.Context, id uuid.UUID, url string) error {
	query := `UPDATE posts SET image_url = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, url, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set post image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) (int, error) {
	return database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (int, error) {
		commentTag, err := tx.Exec(ctx, `DELETE FROM comments WHERE post_id = $1`, id)
		if err != nil {
			return 0, fmt.Errorf("failed to delete post comments: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
		if err != nil {
			return 0, fmt.Errorf("failed to delete post: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return 0, post.ErrPostNotFound
		}
		return int(commentTag.RowsAffected()), nil
	})
}

func (r *postRepository) ListAll(ctx context.Context, limit, offset int) ([]*post.FeedPost, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := feedSelect + `
	ORDER BY p.created_at DESC
	LIMIT $1 OFFSET $2`

	posts, err := r.list(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) ListByGroup(ctx context.Context, groupID uuid.UUID, limit, offset int) ([]*post.FeedPost, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE group_id = $1`, groupID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count group posts: %w", err)
	}

	query := feedSelect + `
	WHERE p.group_id = $1
	ORDER BY p.created_at DESC
	LIMIT $2 OFFSET $3`

	posts, err := r.list(ctx, query, groupID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*post.FeedPost, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE author_id = $1`, authorID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count author posts: %w", err)
	}

	query := feedSelect + `
	WHERE p.author_id = $1
	ORDER BY p.created_at DESC
	LIMIT $2 OFFSET $3`

	posts, err := r.list(ctx, query, authorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*post.FeedPost, int, error) {
	var total int
	countQuery := `
		SELECT COUNT(*)
		FROM posts p
		JOIN follows f ON f.author_id = p.author_id
		WHERE f.user_id = $1`
	if err := r.db.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count follow feed: %w", err)
	}

	query := feedSelect + `
	JOIN follows f ON f.author_id = p.author_id
	WHERE f.user_id = $1
	ORDER BY p.created_at DESC
	LIMIT $2 OFFSET $3`

	posts, err := r.list(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) list(ctx context.Context, query string, args ...any) ([]*post.FeedPost, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*post.FeedPost, 0)
	for rows.Next() {
		fp, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, fp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) scanOne(row pgx.Row) (*post.FeedPost, error) {
	var fp post.FeedPost
	err := row.Scan(
		&fp.ID, &fp.AuthorID, &fp.GroupID, &fp.Text, &fp.ImageURL,
		&fp.CreatedAt, &fp.UpdatedAt,
		&fp.AuthorUsername, &fp.GroupTitle, &fp.GroupSlug,
	)
	if err != nil {
		return nil, err
	}
	return &fp, nil
}
