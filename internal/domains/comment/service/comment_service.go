package service

import (
	"context"

	"github.com/google/uuid"

	"microblog-backend/internal/domains/comment"
	"microblog-backend/internal/domains/post"
	"microblog-backend/internal/domains/user"
)

type commentService struct {
	commentRepo comment.Repository
	postRepo    post.Repository
	userRepo    user.Repository
}

// NewCommentService wires the comment service.
func NewCommentService(commentRepo comment.Repository, postRepo post.Repository, userRepo user.Repository) comment.Service {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

func (s *commentService) Create(ctx context.Context, postID, authorID uuid.UUID, req comment.CreateCommentRequest) (*comment.CommentDTO, error) {
	// Commenting on a deleted or never-existing post is a not-found, not a
	// dangling row.
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	c := &comment.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     req.Text,
	}
	if err := s.commentRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	dto := comment.FromView(&comment.CommentView{
		Comment:        *c,
		AuthorUsername: author.Username,
	})
	return &dto, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]comment.CommentDTO, error) {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	views, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	dtos := make([]comment.CommentDTO, 0, len(views))
	for _, v := range views {
		dtos = append(dtos, comment.FromView(v))
	}
	return dtos, nil
}
