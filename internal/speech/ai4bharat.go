package speech

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/shiksha/internal/catalog"
)

const defaultTTSBaseURL = "https://api.dhruva.ai4bharat.org"

// ErrEmptyAudio is returned when the TTS service responds without audio
// content.
var ErrEmptyAudio = errors.New("tts response contained no audio")

// Synthesizer produces an audio clip for a piece of text in a language.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, language catalog.LanguageCode) (AudioFile, error)
}

// AI4BharatClient calls the AI4Bharat Dhruva text-to-speech service and
// writes the returned audio under a local directory.
type AI4BharatClient struct {
	baseURL      string
	apiKey       string
	audioDir     string
	samplingRate int
	client       *http.Client
	now          func() time.Time
}

// ClientOption configures an AI4BharatClient.
type ClientOption func(*AI4BharatClient)

// WithBaseURL overrides the TTS service URL.
func WithBaseURL(url string) ClientOption {
	return func(c *AI4BharatClient) { c.baseURL = url }
}

// WithAPIKey sets the Dhruva API key sent with each request.
func WithAPIKey(key string) ClientOption {
	return func(c *AI4BharatClient) { c.apiKey = key }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *AI4BharatClient) { c.client = client }
}

func withNow(now func() time.Time) ClientOption {
	return func(c *AI4BharatClient) { c.now = now }
}

// NewAI4BharatClient returns a client that stores clips under audioDir.
func NewAI4BharatClient(audioDir string, opts ...ClientOption) *AI4BharatClient {
	c := &AI4BharatClient{
		baseURL:      defaultTTSBaseURL,
		audioDir:     audioDir,
		samplingRate: 22050,
		client:       &http.Client{Timeout: 30 * time.Second},
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type ttsRequest struct {
	Input  []ttsInput `json:"input"`
	Config ttsConfig  `json:"config"`
}

type ttsInput struct {
	Source string `json:"source"`
}

type ttsConfig struct {
	Language     ttsLanguage `json:"language"`
	Gender       string      `json:"gender"`
	SamplingRate int         `json:"samplingRate"`
}

type ttsLanguage struct {
	SourceLanguage string `json:"sourceLanguage"`
}

type ttsResponse struct {
	Audio []struct {
		AudioContent string `json:"audioContent"`
	} `json:"audio"`
}

// Synthesize requests a clip for the text, writes it to disk, and returns
// its metadata.
func (c *AI4BharatClient) Synthesize(ctx context.Context, text string, language catalog.LanguageCode) (AudioFile, error) {
	payload := ttsRequest{
		Input: []ttsInput{{Source: text}},
		Config: ttsConfig{
			Language:     ttsLanguage{SourceLanguage: sourceLanguage(language)},
			Gender:       "female",
			SamplingRate: c.samplingRate,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return AudioFile{}, fmt.Errorf("marshal tts request: %w", err)
	}

	url := strings.TrimRight(c.baseURL, "/") + "/services/inference/tts"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return AudioFile{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return AudioFile{}, fmt.Errorf("tts request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return AudioFile{}, fmt.Errorf("tts request: HTTP %d", resp.StatusCode)
	}

	var decoded ttsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return AudioFile{}, fmt.Errorf("decode tts response: %w", err)
	}
	if len(decoded.Audio) == 0 || decoded.Audio[0].AudioContent == "" {
		return AudioFile{}, ErrEmptyAudio
	}

	audio, err := base64.StdEncoding.DecodeString(decoded.Audio[0].AudioContent)
	if err != nil {
		return AudioFile{}, fmt.Errorf("decode audio content: %w", err)
	}

	path, err := c.writeClip(language, text, audio)
	if err != nil {
		return AudioFile{}, err
	}

	return AudioFile{
		ID:       uuid.NewString(),
		Text:     text,
		Language: language,
		FilePath: path,
		// 16-bit mono PCM at the requested sampling rate.
		Duration:  float64(len(audio)) / float64(c.samplingRate*2),
		FileSize:  int64(len(audio)),
		CreatedAt: c.now().UTC(),
	}, nil
}

func (c *AI4BharatClient) writeClip(language catalog.LanguageCode, text string, audio []byte) (string, error) {
	dir := filepath.Join(c.audioDir, string(language))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create audio dir: %w", err)
	}

	// Text can be any script; name the file by a digest instead.
	sum := sha256.Sum256([]byte(text))
	path := filepath.Join(dir, hex.EncodeToString(sum[:8])+".wav")
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return "", fmt.Errorf("write audio file: %w", err)
	}
	return path, nil
}

// sourceLanguage maps a catalog language code to the short code the TTS
// service expects (hi-IN becomes hi).
func sourceLanguage(code catalog.LanguageCode) string {
	s := string(code)
	if i := strings.IndexByte(s, '-'); i > 0 {
		return s[:i]
	}
	return s
}
