// Package suggest generates themed word lists with Gemini.
//
// The suggester is an optional input source for the layout engine: given a
// theme ("animals", "space") it asks Gemini for a JSON array of words, which
// can then be fed straight into a layout. It requires Vertex AI access via
// Application Default Credentials and is disabled when no GCP project is
// configured.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	defaultRegion = "europe-west1"
	defaultModel  = "gemini-2.5-flash"

	// MaxWords caps a single suggestion request.
	MaxWords = 50
)

const suggestPrompt = `Generate a list of %d English words related to the theme "%s".

Rules:
- Common nouns only, no proper nouns.
- Each word 3 to 12 letters, letters A-Z only, no spaces or hyphens.
- No duplicates.
- Respond ONLY with a JSON array of lowercase strings, no commentary or markdown.`

// Client wraps the Google GenAI client for Vertex AI.
type Client struct {
	client    *genai.Client
	modelName string
}

// NewClient creates a suggester using Application Default Credentials.
// Set GOOGLE_APPLICATION_CREDENTIALS to the service account key file path.
func NewClient(ctx context.Context, projectID, region string) (*Client, error) {
	if region == "" {
		region = defaultRegion
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{client: client, modelName: defaultModel}, nil
}

// Close releases resources held by the client.
func (c *Client) Close() error {
	return nil
}

// Suggest asks Gemini for n words on the given theme. The count is clamped
// to MaxWords.
func (c *Client) Suggest(ctx context.Context, theme string, n int) ([]string, error) {
	if strings.TrimSpace(theme) == "" {
		return nil, fmt.Errorf("theme must not be empty")
	}
	if n <= 0 {
		n = 10
	}
	if n > MaxWords {
		n = MaxWords
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.modelName,
		[]*genai.Content{{
			Role: "user",
			Parts: []*genai.Part{
				{Text: fmt.Sprintf(suggestPrompt, n, theme)},
			},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.7)),
			TopP:             genai.Ptr(float32(1)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}

	words, err := ParseWords(text, n)
	if err != nil {
		return nil, fmt.Errorf("%w\nraw response: %s", err, text)
	}
	return words, nil
}

// ParseWords decodes a JSON word array from a model response and cleans it:
// words are trimmed, deduplicated, non-alphabetic entries dropped, and the
// result truncated to limit.
func ParseWords(text string, limit int) ([]string, error) {
	var raw []string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("parse word list JSON: %w", err)
	}

	seen := make(map[string]bool, len(raw))
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || !alphabetic(w) || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
		if limit > 0 && len(words) == limit {
			break
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("no usable words in response")
	}
	return words, nil
}

func alphabetic(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
