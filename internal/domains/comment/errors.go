package comment

import "errors"

var (
	// ErrCommentNotFound is returned when no comment matches the lookup.
	ErrCommentNotFound = errors.New("comment not found")
)
