package post

import "errors"

var (
	// Not Found
	ErrPostNotFound = errors.New("post not found")

	// Authorization
	ErrNotPostAuthor = errors.New("only the author may modify this post")
)
