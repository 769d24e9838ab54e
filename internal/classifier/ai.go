package classifier

import (
	"context"
	"fmt"
	"strings"

	"tdnguyen/vispend/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// AIClient suggests a category for text the keyword pass could not place.
// Implementations must only return names from the given candidate list.
type AIClient interface {
	SuggestCategory(ctx context.Context, text string, candidates []string) (string, error)
}

// GeminiClient implements AIClient against the Google Gemini API. It is an
// optional fallback, used only when enabled in configuration.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger logging.Logger
}

// NewGeminiClient creates a Gemini-backed AIClient.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is not set")
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(modelName),
		logger: logger.WithField(logging.FieldComponent, "gemini"),
	}, nil
}

// SuggestCategory asks the model to place the text into one of the candidate
// categories. An answer outside the candidate list is treated as no answer.
func (g *GeminiClient) SuggestCategory(ctx context.Context, text string, candidates []string) (string, error) {
	prompt := fmt.Sprintf(
		"Phân loại giao dịch sau vào đúng một danh mục.\n"+
			"Giao dịch: %q\n"+
			"Danh mục: %s\n"+
			"Chỉ trả lời tên danh mục, không giải thích.",
		text, strings.Join(candidates, ", "))

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var answer string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			answer += string(txt)
		}
	}
	answer = strings.TrimSpace(answer)

	for _, name := range candidates {
		if strings.EqualFold(answer, name) {
			g.logger.WithField(logging.FieldCategory, name).Debug("Category suggested by Gemini")
			return name, nil
		}
	}
	return "", fmt.Errorf("gemini answer %q is not a known category", answer)
}

// Close releases the underlying API client.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// ClassifyWithFallback runs the keyword pass first and, on a miss, consults
// the AI client when one is supplied. The keyword result always wins when
// present so behavior stays deterministic for recognizable text.
func (c *Classifier) ClassifyWithFallback(ctx context.Context, ai AIClient, text string) (string, bool) {
	if name, ok := c.Classify(text); ok {
		return name, true
	}
	if ai == nil {
		return "", false
	}

	candidates := make([]string, 0, len(c.taxonomy.Groups()))
	for _, g := range c.taxonomy.Groups() {
		candidates = append(candidates, g.Name)
	}

	name, err := ai.SuggestCategory(ctx, text, candidates)
	if err != nil {
		c.logger.WithError(err).Warn("AI category fallback failed")
		return "", false
	}
	return name, true
}
