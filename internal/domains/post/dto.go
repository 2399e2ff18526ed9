package post

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"microblog-backend/internal/domains/comment"
	"microblog-backend/internal/shared/response"
)

// CreatePostRequest creates a post. Group is optional and addressed by slug,
// matching the public routing surface.
type CreatePostRequest struct {
	Text      string `json:"text" binding:"required"`
	GroupSlug string `json:"group_slug,omitempty"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			validation.Length(1, 10000),
		),
	)
}

// UpdatePostRequest edits a post's text and group tag.
type UpdatePostRequest struct {
	Text      string `json:"text" binding:"required"`
	GroupSlug string `json:"group_slug,omitempty"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			validation.Length(1, 10000),
		),
	)
}

// AuthorRef is the embedded author view in feed items.
type AuthorRef struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// GroupRef is the embedded group view in feed items.
type GroupRef struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// PostDTO is the rendered view of a post.
type PostDTO struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Preview   string    `json:"preview"`
	Author    AuthorRef `json:"author"`
	Group     *GroupRef `json:"group,omitempty"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FeedPage is one page of a feed plus its pagination metadata. It is also the
// unit stored in the response cache.
type FeedPage struct {
	Posts []PostDTO      `json:"posts"`
	Meta  *response.Meta `json:"meta"`
}

// ProfilePage is the author profile payload: the author, a page of their
// posts, and the social counts the profile view renders.
type ProfilePage struct {
	Author         AuthorRef `json:"author"`
	Bio            *string   `json:"bio,omitempty"`
	Page           FeedPage  `json:"page"`
	PostsCount     int       `json:"posts_count"`
	FollowerCount  int       `json:"follower_count"`
	FollowingCount int       `json:"following_count"`
	// Following reports whether the viewing user follows this author;
	// always false for anonymous viewers.
	Following bool `json:"following"`
}

// PostDetail is the single-post payload with the author counts the post view
// renders alongside the text. Comments are attached at the handler from the
// comment domain.
type PostDetail struct {
	Post           PostDTO `json:"post"`
	PostsCount     int     `json:"posts_count"`
	FollowerCount  int     `json:"follower_count"`
	FollowingCount int     `json:"following_count"`
	Following      bool    `json:"following"`

	Comments []comment.CommentDTO `json:"comments"`
}

// FromFeedPost maps a joined row into the rendered view.
func FromFeedPost(fp *FeedPost) PostDTO {
	dto := PostDTO{
		ID:      fp.ID,
		Text:    fp.Text,
		Preview: fp.Preview(),
		Author: AuthorRef{
			ID:       fp.AuthorID,
			Username: fp.AuthorUsername,
		},
		ImageURL:  fp.ImageURL,
		CreatedAt: fp.CreatedAt,
		UpdatedAt: fp.UpdatedAt,
	}
	if fp.GroupTitle != nil && fp.GroupSlug != nil {
		dto.Group = &GroupRef{
			Title: *fp.GroupTitle,
			Slug:  *fp.GroupSlug,
		}
	}
	return dto
}
