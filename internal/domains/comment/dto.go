package comment

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateCommentRequest adds a comment to a post. Only authenticated users
// reach this surface; the author comes from the access token.
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			validation.Length(1, 2000),
		),
	)
}

// CommentDTO is the rendered view of a comment.
type CommentDTO struct {
	ID             uuid.UUID `json:"id"`
	PostID         uuid.UUID `json:"post_id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

// FromView maps a joined row into the rendered view.
func FromView(v *CommentView) CommentDTO {
	return CommentDTO{
		ID:             v.ID,
		PostID:         v.PostID,
		AuthorID:       v.AuthorID,
		AuthorUsername: v.AuthorUsername,
		Text:           v.Text,
		CreatedAt:      v.CreatedAt,
	}
}
