package comment

import (
	"time"

	"github.com/google/uuid"
)

// Comment is an authored remark attached to a single post. Comments are
// append-only; there is no edit or delete surface.
type Comment struct {
	ID       uuid.UUID `json:"id"`
	PostID   uuid.UUID `json:"post_id"`
	AuthorID uuid.UUID `json:"author_id"`

	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentView is a comment joined with its author's username, the form the
// post detail page renders.
type CommentView struct {
	Comment

	AuthorUsername string `json:"author_username"`
}
