package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// FileKey generates a cache key from a file path and its stat info. Any
// change to size or mtime produces a different key, so stale content is
// never served after an edit.
func FileKey(path string, info fs.FileInfo) string {
	raw := fmt.Sprintf("%s|%d|%d", path, info.Size(), info.ModTime().UnixNano())
	hash := sha256.Sum256([]byte(raw))
	return "msgsweep:v1:" + hex.EncodeToString(hash[:])
}
