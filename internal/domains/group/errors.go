package group

import "errors"

var (
	// Not Found
	ErrGroupNotFound = errors.New("group not found")

	// Conflict
	ErrSlugTaken = errors.New("slug already in use")
)
