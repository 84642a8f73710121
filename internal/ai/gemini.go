package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the hosted generative-language endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the model every request names.
	DefaultModel = "gemini-3-flash-preview"

	defaultTimeout = 60 * time.Second
)

// GeminiClient implements Gateway against the generateContent REST API.
// The API key is passed through as-is; a missing key fails at the service
// with an authentication error, not locally.
type GeminiClient struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

// Option tweaks a GeminiClient. Tests point it at a local server.
type Option func(*GeminiClient)

func WithBaseURL(u string) Option {
	return func(c *GeminiClient) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithModel(m string) Option {
	return func(c *GeminiClient) { c.model = m }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *GeminiClient) { c.http = h }
}

func NewGeminiClient(apiKey string, opts ...Option) *GeminiClient {
	c := &GeminiClient{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		model:   DefaultModel,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Wire types for models/{model}:generateContent.

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type schema struct {
	Type       string             `json:"type"`
	Properties map[string]*schema `json:"properties,omitempty"`
	Items      *schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// LookupBookInfo asks the service for metadata about a title, constrained
// to the BookInfo JSON shape.
func (c *GeminiClient) LookupBookInfo(ctx context.Context, title string) (*BookInfo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &LookupError{Err: fmt.Errorf("title is empty")}
	}

	prompt := fmt.Sprintf(
		"Find detailed information for the book: %q. Provide title, author, category, a short summary, and an estimated page count.",
		title,
	)

	cfg := &generationConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &schema{
			Type: "OBJECT",
			Properties: map[string]*schema{
				"title":     {Type: "STRING"},
				"author":    {Type: "STRING"},
				"category":  {Type: "STRING"},
				"summary":   {Type: "STRING"},
				"totalPage": {Type: "NUMBER"},
			},
			Required: []string{"title", "author", "category", "summary"},
		},
	}

	text, err := c.generate(ctx, prompt, cfg)
	if err != nil {
		return nil, &LookupError{Err: err}
	}

	var info BookInfo
	if err := json.Unmarshal([]byte(text), &info); err != nil {
		return nil, &LookupError{Err: fmt.Errorf("parse response: %w", err)}
	}
	return &info, nil
}

// Recommend asks for exactly three suggestions and returns them in the
// order the service ranked them.
func (c *GeminiClient) Recommend(ctx context.Context, genres, recentTitles []string) ([]Recommendation, error) {
	prompt := fmt.Sprintf(
		"Based on my favorite genres [%s] and recently read books [%s], recommend 3 unique books I might enjoy. Include the title, author, and a reason why I'd like it.",
		strings.Join(genres, ", "),
		strings.Join(recentTitles, ", "),
	)

	cfg := &generationConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &schema{
			Type: "ARRAY",
			Items: &schema{
				Type: "OBJECT",
				Properties: map[string]*schema{
					"title":  {Type: "STRING"},
					"author": {Type: "STRING"},
					"reason": {Type: "STRING"},
				},
			},
		},
	}

	text, err := c.generate(ctx, prompt, cfg)
	if err != nil {
		return nil, &RecommendationError{Err: err}
	}

	var recs []Recommendation
	if err := json.Unmarshal([]byte(text), &recs); err != nil {
		return nil, &RecommendationError{Err: fmt.Errorf("parse response: %w", err)}
	}
	if len(recs) == 0 {
		return nil, &RecommendationError{Err: fmt.Errorf("service returned no recommendations")}
	}
	return recs, nil
}

// Reflect returns a short unstructured comment on a reading note.
func (c *GeminiClient) Reflect(ctx context.Context, noteContent, bookTitle string) (string, error) {
	prompt := fmt.Sprintf(
		"I wrote this note while reading %q: %q. Give me a thoughtful perspective or a question to think about based on this note. Keep it brief.",
		bookTitle, noteContent,
	)

	text, err := c.generate(ctx, prompt, nil)
	if err != nil {
		return "", &ReflectionError{Err: err}
	}
	return text, nil
}

// generate performs one generateContent round-trip and returns the text of
// the first candidate.
func (c *GeminiClient) generate(ctx context.Context, prompt string, cfg *generationConfig) (string, error) {
	reqBody := generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: cfg,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("service returned %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("service returned no candidates")
	}

	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
