package speech

import (
	"context"
	"fmt"

	"github.com/abhisek/shiksha/internal/catalog"
)

// Service fronts a Synthesizer with the cache so repeated lookups for the
// same (language, text) pair hit the network at most once.
type Service struct {
	cache *Cache
	synth Synthesizer
}

// NewService wires a cache in front of a synthesizer.
func NewService(cache *Cache, synth Synthesizer) *Service {
	return &Service{cache: cache, synth: synth}
}

// Load returns the clip for the pair, synthesizing and caching on a miss.
func (s *Service) Load(ctx context.Context, text string, language catalog.LanguageCode) (AudioFile, error) {
	if f, ok := s.cache.Get(language, text); ok {
		return f, nil
	}

	f, err := s.synth.Synthesize(ctx, text, language)
	if err != nil {
		return AudioFile{}, fmt.Errorf("synthesize %q: %w", text, err)
	}
	s.cache.Put(f)
	return f, nil
}

// Cache exposes the underlying cache for explicit eviction.
func (s *Service) Cache() *Cache {
	return s.cache
}
