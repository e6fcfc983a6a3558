package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores entries as JSON files under a directory, sharded by
// the leading byte of the key hash. It is meant for single-user CLI runs;
// there is no cross-process locking.
type FileCache struct {
	dir string
}

// NewFileCache opens a file-backed cache rooted at dir, creating the
// directory if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// fileEntry is the on-disk form of one cached value. A zero Expires time
// means the entry never expires.
type fileEntry struct {
	Payload []byte    `json:"payload"`
	Expires time.Time `json:"expires,omitempty"`
}

// Get reads an entry, treating corrupt or expired files as misses and
// removing them.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !entry.Expires.IsZero() && time.Now().After(entry.Expires) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return entry.Payload, true, nil
}

// Set writes an entry, creating the shard directory on first use.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{Payload: data}
	if ttl > 0 {
		entry.Expires = time.Now().Add(ttl)
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// Delete removes an entry if present.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; files are closed after every operation.
func (c *FileCache) Close() error { return nil }

// Purge removes every entry under the cache directory.
func (c *FileCache) Purge() error {
	shards, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	for _, shard := range shards {
		if err := os.RemoveAll(filepath.Join(c.dir, shard.Name())); err != nil {
			return err
		}
	}
	return nil
}

// path maps a key to its file, spreading entries over 256 shard
// directories so no single directory grows unbounded.
func (c *FileCache) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	name := hex.EncodeToString(sum[:])
	return filepath.Join(c.dir, name[:2], name[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
