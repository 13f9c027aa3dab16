package advisor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"fintrack/fintrack/internal/logging"
	"fintrack/fintrack/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const systemPrompt = `You are the CFO advisor for a small business. Answer the
owner's question using the ledger summary below. Be concrete and brief.
If the owner asks you to record transactions, append a fenced code block
tagged "entries" containing a JSON array of objects with the fields
date (YYYY-MM-DD), direction (INCOME or EXPENSE), category, amount,
counterparty and memo. Only include the block when entries should be written.`

// GeminiClient implements Client against the Google Gemini API. The API
// client is created lazily on first use.
type GeminiClient struct {
	apiKey  string
	model   string
	timeout time.Duration
	logger  logging.Logger

	mu     sync.Mutex
	client *genai.Client
	gm     *genai.GenerativeModel
}

// NewGeminiClient creates a Gemini-backed advisor.
func NewGeminiClient(apiKey, model string, timeout time.Duration, logger logging.Logger) *GeminiClient {
	if logger == nil {
		logger = logging.New("info", "text")
	}
	return &GeminiClient{apiKey: apiKey, model: model, timeout: timeout, logger: logger}
}

func (c *GeminiClient) ensureClient(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		return nil
	}
	if c.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return fmt.Errorf("creating Gemini client: %w", err)
	}
	c.client = client
	c.gm = client.GenerativeModel(c.model)
	return nil
}

// Advise sends the question plus a ledger digest to the model and returns
// the reply text.
func (c *GeminiClient) Advise(ctx context.Context, question string, ledger []models.Transaction) (string, error) {
	if err := c.ensureClient(ctx); err != nil {
		return "", err
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	prompt := systemPrompt + "\n\n" + BuildDigest(ledger) + "\nQuestion: " + question
	c.logger.Debug("Sending advisor prompt", logging.Field{Key: "model", Value: c.model})

	resp, err := c.gm.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generating advisor reply: %w", err)
	}
	reply := responseText(resp)
	if reply == "" {
		return "", fmt.Errorf("advisor returned an empty reply")
	}
	return reply, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String())
}
