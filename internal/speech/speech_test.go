package speech

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/shiksha/internal/catalog"
)

func TestCache_PutGetEvict(t *testing.T) {
	c := NewCache()

	_, ok := c.Get(catalog.LangHindi, "क")
	require.False(t, ok, "empty cache should miss")

	clip := AudioFile{ID: "a1", Text: "क", Language: catalog.LangHindi, FilePath: "hi-IN/ka.wav"}
	c.Put(clip)

	got, ok := c.Get(catalog.LangHindi, "क")
	require.True(t, ok)
	assert.Equal(t, "a1", got.ID)

	// Same text in another language is a different key.
	_, ok = c.Get(catalog.LangTamil, "क")
	assert.False(t, ok, "language is part of the cache key")

	// Put overwrites.
	c.Put(AudioFile{ID: "a2", Text: "क", Language: catalog.LangHindi})
	got, _ = c.Get(catalog.LangHindi, "क")
	assert.Equal(t, "a2", got.ID)
	assert.Equal(t, 1, c.Len())

	c.Evict(CacheKey(catalog.LangHindi, "क"))
	_, ok = c.Get(catalog.LangHindi, "क")
	assert.False(t, ok, "entry should be gone after Evict")

	c.Put(clip)
	c.Put(AudioFile{ID: "a3", Text: "க", Language: catalog.LangTamil})
	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "hi-IN_नमस्ते", CacheKey(catalog.LangHindi, "नमस्ते"))
}

func TestAI4BharatClient_Synthesize(t *testing.T) {
	audio := []byte("RIFF-pretend-pcm-data")

	var gotReq ttsRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/services/inference/tts" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		resp := map[string]any{
			"audio": []map[string]string{
				{"audioContent": base64.StdEncoding.EncodeToString(audio)},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	client := NewAI4BharatClient(t.TempDir(),
		WithBaseURL(server.URL),
		withNow(func() time.Time { return now }),
	)

	clip, err := client.Synthesize(context.Background(), "नमस्ते", catalog.LangHindi)
	require.NoError(t, err)

	require.Len(t, gotReq.Input, 1)
	assert.Equal(t, "नमस्ते", gotReq.Input[0].Source)
	assert.Equal(t, "hi", gotReq.Config.Language.SourceLanguage)

	assert.Equal(t, "नमस्ते", clip.Text)
	assert.Equal(t, catalog.LangHindi, clip.Language)
	assert.Equal(t, int64(len(audio)), clip.FileSize)
	assert.True(t, clip.CreatedAt.Equal(now))
	assert.NotEmpty(t, clip.ID)
	assert.NotEmpty(t, clip.FilePath)
	assert.FileExists(t, clip.FilePath)
}

func TestAI4BharatClient_EmptyAudio(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"audio":[]}`))
	}))
	defer server.Close()

	client := NewAI4BharatClient(t.TempDir(), WithBaseURL(server.URL))
	_, err := client.Synthesize(context.Background(), "क", catalog.LangHindi)
	assert.ErrorIs(t, err, ErrEmptyAudio)
}

func TestAI4BharatClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewAI4BharatClient(t.TempDir(), WithBaseURL(server.URL))
	_, err := client.Synthesize(context.Background(), "क", catalog.LangHindi)
	assert.Error(t, err)
}

// stubSynth counts calls so the cache layer's memoization is observable.
type stubSynth struct {
	calls int
	err   error
}

func (s *stubSynth) Synthesize(_ context.Context, text string, language catalog.LanguageCode) (AudioFile, error) {
	s.calls++
	if s.err != nil {
		return AudioFile{}, s.err
	}
	return AudioFile{ID: "stub", Text: text, Language: language}, nil
}

func TestService_LoadMemoizes(t *testing.T) {
	synth := &stubSynth{}
	svc := NewService(NewCache(), synth)
	ctx := context.Background()

	first, err := svc.Load(ctx, "क", catalog.LangHindi)
	require.NoError(t, err)
	second, err := svc.Load(ctx, "क", catalog.LangHindi)
	require.NoError(t, err)

	assert.Equal(t, 1, synth.calls, "cache hit must not synthesize again")
	assert.Equal(t, first.ID, second.ID)

	// A different pair synthesizes again.
	_, err = svc.Load(ctx, "ख", catalog.LangHindi)
	require.NoError(t, err)
	assert.Equal(t, 2, synth.calls)
}

func TestService_LoadError(t *testing.T) {
	wantErr := errors.New("tts down")
	svc := NewService(NewCache(), &stubSynth{err: wantErr})

	_, err := svc.Load(context.Background(), "क", catalog.LangHindi)
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 0, svc.Cache().Len(), "a failed synthesis must not populate the cache")
}
