package post

import (
	"time"

	"github.com/google/uuid"
)

// PageSize is the fixed number of posts on every feed page.
const PageSize = 10

// Post is an authored text entry, optionally tagged to a group and carrying
// an image reference. The author is set at creation and never reassigned.
type Post struct {
	ID       uuid.UUID  `json:"id"`
	AuthorID uuid.UUID  `json:"author_id"`
	GroupID  *uuid.UUID `json:"group_id,omitempty"`

	Text     string  `json:"text"`
	ImageURL *string `json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Preview is the display form of a post: the first 15 characters of its text.
func (p *Post) Preview() string {
	runes := []rune(p.Text)
	if len(runes) <= 15 {
		return p.Text
	}
	return string(runes[:15])
}

// FeedPost is a post joined with the author and group data feed listings
// render.
type FeedPost struct {
	Post

	AuthorUsername string  `json:"author_username"`
	GroupTitle     *string `json:"group_title,omitempty"`
	GroupSlug      *string `json:"group_slug,omitempty"`
}
