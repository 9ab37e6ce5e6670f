// Package speech synthesizes lesson audio and memoizes the results so the
// same text is never synthesized twice.
package speech

import (
	"fmt"
	"time"

	"github.com/abhisek/shiksha/internal/catalog"
)

// AudioFile describes one synthesized clip on disk.
type AudioFile struct {
	ID        string               `json:"id"`
	Text      string               `json:"text"`
	Language  catalog.LanguageCode `json:"language"`
	FilePath  string               `json:"filePath"`
	Duration  float64              `json:"duration"` // seconds
	FileSize  int64                `json:"fileSize"` // bytes
	CreatedAt time.Time            `json:"createdAt"`
}

// CacheKey returns the cache key for a (language, text) pair.
func CacheKey(language catalog.LanguageCode, text string) string {
	return fmt.Sprintf("%s_%s", language, text)
}

// Cache memoizes synthesized clips by (language, text). Entries live until
// explicitly evicted; the catalog is small enough that bounding is not
// needed. Not safe for concurrent use.
type Cache struct {
	entries map[string]AudioFile
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]AudioFile)}
}

// Get returns the cached clip for the pair, if present.
func (c *Cache) Get(language catalog.LanguageCode, text string) (AudioFile, bool) {
	f, ok := c.entries[CacheKey(language, text)]
	return f, ok
}

// Put stores a clip, overwriting any prior entry for the same key.
func (c *Cache) Put(f AudioFile) {
	c.entries[CacheKey(f.Language, f.Text)] = f
}

// Evict removes the entry for key. A no-op if the key is absent.
func (c *Cache) Evict(key string) {
	delete(c.entries, key)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.entries = make(map[string]AudioFile)
}

// Len returns the number of cached clips.
func (c *Cache) Len() int {
	return len(c.entries)
}
