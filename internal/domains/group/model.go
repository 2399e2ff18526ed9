package group

import (
	"time"

	"github.com/google/uuid"
)

// Group is a named, slugged category a post may belong to.
type Group struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`

	CreatedAt time.Time `json:"created_at"`
}

// String is the display form of a group.
func (g *Group) String() string {
	return g.Title
}
