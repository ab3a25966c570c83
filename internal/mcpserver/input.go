package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/apidocswagger/apidoc"
)

// endpointsInput represents the two ways api_data.json can be provided to a tool.
// Exactly one of File or Content must be set.
type endpointsInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an apiDoc api_data.json file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline apiDoc endpoint array (JSON or YAML)"`
}

// projectInput supplies api_project.json. Both fields empty means no project.
type projectInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an apiDoc api_project.json file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline api_project.json content"`
}

// cacheEntry holds a cached parse result with LRU ordering and TTL expiry.
type cacheEntry struct {
	result    *apidoc.ParseResult
	insertAt  time.Time
	expiresAt time.Time
}

// endpointCacheStore provides a session-scoped cache for decoded endpoint lists.
// File inputs are keyed by (absolutePath, modTime). Content inputs are keyed
// by a SHA-256 hash. A background sweeper removes expired entries.
type endpointCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var endpointCache = &endpointCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached result or nil. Expired entries are lazily removed.
func (c *endpointCacheStore) get(key string) *apidoc.ParseResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		e.insertAt = time.Now()
		return e.result
	}
	return nil
}

// putWithTTL stores a result with a specific TTL, evicting the least recently
// used entry if at capacity.
func (c *endpointCacheStore) putWithTTL(key string, result *apidoc.ParseResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{result: result, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *endpointCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes
// expired entries. Only the first call spawns a sweeper. It stops when ctx
// is cancelled.
func (c *endpointCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *endpointCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *endpointCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given input, or "" when the input
// cannot be cached.
func makeCacheKey(in endpointsInput) string {
	switch {
	case in.File != "":
		absPath, err := filepath.Abs(in.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case in.Content != "":
		h := sha256.Sum256([]byte(in.Content))
		return "content:" + hex.EncodeToString(h[:])
	default:
		return ""
	}
}

// checkInlineSize enforces cfg.MaxInlineSize on inline content.
func checkInlineSize(content string) error {
	if int64(len(content)) > cfg.MaxInlineSize {
		return fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set APIDOCSWAGGER_MAX_INLINE_SIZE to increase",
			len(content), cfg.MaxInlineSize)
	}
	return nil
}

// resolve decodes the endpoints from whichever input was provided, using the
// cache when enabled.
func (in endpointsInput) resolve() (*apidoc.ParseResult, error) {
	if (in.File == "") == (in.Content == "") {
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
	if in.Content != "" {
		if err := checkInlineSize(in.Content); err != nil {
			return nil, err
		}
	}

	var key string
	ttl := cfg.CacheContentTTL
	if cfg.CacheEnabled {
		key = makeCacheKey(in)
		if in.File != "" {
			ttl = cfg.CacheFileTTL
		}
	}
	if key != "" {
		if cached := endpointCache.get(key); cached != nil {
			return cached, nil
		}
	}

	var source apidoc.Option
	if in.File != "" {
		source = apidoc.WithFilePath(in.File)
	} else {
		source = apidoc.WithReader(strings.NewReader(in.Content))
	}
	result, err := apidoc.ParseWithOptions(source)
	if err != nil {
		return nil, err
	}

	if key != "" {
		endpointCache.putWithTTL(key, result, ttl)
	}
	return result, nil
}

// resolve loads the project metadata. It returns nil when no project was given.
func (in projectInput) resolve() (*apidoc.Project, error) {
	switch {
	case in.File != "" && in.Content != "":
		return nil, fmt.Errorf("project: only one of file or content may be provided")
	case in.File != "":
		return apidoc.LoadProject(in.File)
	case in.Content != "":
		if err := checkInlineSize(in.Content); err != nil {
			return nil, err
		}
		return apidoc.ParseProject([]byte(in.Content))
	default:
		return nil, nil
	}
}
