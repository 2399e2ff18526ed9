package post

import "fmt"

const (
	// IndexCacheKeyFmt keys the cached global index feed per page number, so
	// TTL staleness on page 1 never leaks into page 2.
	IndexCacheKeyFmt = "feed:index:%d"

	// IndexCachePattern matches every cached index page; used by the
	// explicit cache clear.
	IndexCachePattern = "feed:index:*"
)

func IndexCacheKey(page int) string {
	return fmt.Sprintf(IndexCacheKeyFmt, page)
}
