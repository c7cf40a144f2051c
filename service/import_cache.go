package service

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ludo-technologies/archscan/domain"
	"github.com/ludo-technologies/archscan/internal/parser"
)

// DefaultImportCacheSize bounds the number of files whose imports are kept
const DefaultImportCacheSize = 4096

// ImportCache memoizes extracted imports by file path and content hash.
// A long-running process (the MCP server) reuses it across calls so that
// unchanged files are not re-parsed.
type ImportCache struct {
	entries *lru.Cache[string, []domain.ImportRecord]
	hits    atomic.Int64
	misses  atomic.Int64
}

// NewImportCache creates a cache holding at most size files
func NewImportCache(size int) (*ImportCache, error) {
	if size <= 0 {
		size = DefaultImportCacheSize
	}
	entries, err := lru.New[string, []domain.ImportRecord](size)
	if err != nil {
		return nil, err
	}
	return &ImportCache{entries: entries}, nil
}

func cacheKey(path string, content []byte) string {
	sum := sha256.Sum256(content)
	return path + "\x00" + hex.EncodeToString(sum[:])
}

// Imports returns the imports of content, extracting them on a miss.
// The returned slice is owned by the caller.
func (c *ImportCache) Imports(path string, content []byte) []domain.ImportRecord {
	key := cacheKey(path, content)
	if imports, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		return slices.Clone(imports)
	}

	c.misses.Add(1)
	imports := parser.ExtractImports(string(content))
	c.entries.Add(key, slices.Clone(imports))
	return imports
}

// Len returns the number of cached files
func (c *ImportCache) Len() int {
	return c.entries.Len()
}

// Stats returns the hit and miss counts since creation
func (c *ImportCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Purge drops every entry
func (c *ImportCache) Purge() {
	c.entries.Purge()
}
