package vision

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

const extractionPrompt = `Extract the purchase from this receipt image.
Reply with only a JSON object with the fields date (YYYY-MM-DD),
counterparty (the merchant), category, amount (the grand total) and memo.`

// GeminiScanner implements Scanner against the Google Gemini API.
type GeminiScanner struct {
	apiKey  string
	model   string
	timeout time.Duration
	logger  logging.Logger

	mu     sync.Mutex
	client *genai.Client
	gm     *genai.GenerativeModel
}

// NewGeminiScanner creates a Gemini-backed receipt scanner.
func NewGeminiScanner(apiKey, model string, timeout time.Duration, logger logging.Logger) *GeminiScanner {
	if logger == nil {
		logger = logging.New("info", "text")
	}
	return &GeminiScanner{apiKey: apiKey, model: model, timeout: timeout, logger: logger}
}

func (s *GeminiScanner) ensureClient(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		return nil
	}
	if s.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return fmt.Errorf("creating Gemini client: %w", err)
	}
	s.client = client
	s.gm = client.GenerativeModel(s.model)
	return nil
}

// Scan sends the image and extraction prompt to the model and validates
// the reply into a draft transaction.
func (s *GeminiScanner) Scan(ctx context.Context, image []byte, mimeSubtype string) (models.Transaction, error) {
	if err := s.ensureClient(ctx); err != nil {
		return models.Transaction{}, err
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.logger.Debug("Scanning receipt", logging.Field{Key: "bytes", Value: len(image)})
	resp, err := s.gm.GenerateContent(ctx,
		genai.ImageData(mimeSubtype, image),
		genai.Text(extractionPrompt))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("scanning receipt: %w", err)
	}

	var b strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	return parseReceipt(b.String())
}

// MockScanner returns a canned reply for tests.
type MockScanner struct {
	Reply string
	Err   error
}

func (m *MockScanner) Scan(ctx context.Context, image []byte, mimeSubtype string) (models.Transaction, error) {
	if m.Err != nil {
		return models.Transaction{}, m.Err
	}
	return parseReceipt(m.Reply)
}
