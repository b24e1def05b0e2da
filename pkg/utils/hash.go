package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// CacheKey derives a stable cache key from a session namespace and a query.
// The query is normalized (trimmed, lower-cased, whitespace collapsed) so
// trivially different spellings of the same request share one entry.
func CacheKey(sessionID, query string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	hash := md5.Sum([]byte(sessionID + "|" + normalized))
	return fmt.Sprintf("%x", hash)
}
