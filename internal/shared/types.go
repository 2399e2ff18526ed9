package shared

// Asynq task types
const (
	TypeProcessPostImage   = "post:process_image"
	TypeCleanupOrphanMedia = "media:cleanup_orphans"
)

// Queue names
const (
	QueueDefault = "default"
	QueueMedia   = "media"
)

// ProcessPostImagePayload carries the post whose uploaded image needs resized
// variants.
type ProcessPostImagePayload struct {
	PostID string `json:"postId"`
	Key    string `json:"key"`
}

// CleanupOrphanMediaPayload is empty; the sweep derives its work from the
// bucket listing.
type CleanupOrphanMediaPayload struct{}
