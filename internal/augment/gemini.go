package augment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	genai "google.golang.org/genai"

	"github.com/osse101/garden-advisor/internal/domain"
	"github.com/osse101/garden-advisor/internal/logger"
)

// geminiSource generates reports through the Gemini API. It retries a small,
// bounded number of times; everything past that is the selector's problem.
type geminiSource struct {
	cli   *genai.Client
	model string
}

// NewGeminiSource creates a Gemini-backed report source
func NewGeminiSource(ctx context.Context, apiKey, model string) (Source, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &geminiSource{cli: cli, model: model}, nil
}

func (g *geminiSource) Name() string { return "gemini:" + g.model }

func (g *geminiSource) Generate(ctx context.Context, n *domain.NormalizedRequest) (*domain.Report, error) {
	prompt := buildPrompt(n)

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(baseBackoffMS*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		report, err := g.generateOnce(ctx, prompt)
		if err == nil {
			return report, nil
		}
		lastErr = err
		logger.FromContext(ctx).Warn("gemini generation attempt failed",
			"attempt", attempt+1, "error", err)
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("%w: %v", domain.ErrAugmentationUnavailable, lastErr)
}

func (g *geminiSource) generateOnce(ctx context.Context, prompt string) (*domain.Report, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrMalformedReport
	}

	text := resp.Candidates[0].Content.Parts[0].Text
	if len(text) > maxReportBytes {
		return nil, fmt.Errorf("%w: response too large", domain.ErrMalformedReport)
	}

	var report domain.Report
	if err := json.Unmarshal([]byte(text), &report); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedReport, err)
	}
	return &report, nil
}
