package providers

import (
  "context"
  "fmt"
  "os"

  "google.golang.org/genai"

  "github.com/thinkly-edu/thinkly-backend/internal/errordata"
  "github.com/thinkly-edu/thinkly-backend/internal/logger"
  "github.com/thinkly-edu/thinkly-backend/internal/types"
  "github.com/thinkly-edu/thinkly-backend/internal/utils"
)

// GeminiProvider answers through the genai single-prompt API. Unlike the
// primary backend its failures propagate: callers surface them as upstream
// errors instead of substituting text.
type GeminiProvider struct {
  log       *logger.Logger
  client    *genai.Client
  model     string
}

func NewGeminiProvider(ctx context.Context, log *logger.Logger) (*GeminiProvider, error) {
  providerLog := log.With("service", "GeminiProvider")
  apiKey := os.Getenv("GEMINI_API_KEY")
  if apiKey == "" {
    providerLog.Warn("GEMINI_API_KEY not set; calls might fail or be unauthorized")
  }
  client, err := genai.NewClient(ctx, &genai.ClientConfig{
    APIKey: apiKey,
  })
  if err != nil {
    return nil, fmt.Errorf("failed to create genai client: %w", err)
  }
  model := utils.GetEnv("GEMINI_MODEL", "gemini-pro", providerLog)
  return &GeminiProvider{
    log:     providerLog,
    client:  client,
    model:   model,
  }, nil
}

func (p *GeminiProvider) Name() types.ModelName {
  return types.ModelGemini
}

// Complete sends only the latest user turn; the backend is prompted without
// conversation history.
func (p *GeminiProvider) Complete(ctx context.Context, messages []Message) (Reply, error) {
  if len(messages) == 0 {
    return Reply{}, fmt.Errorf("%w: no prompt to send", ErrUpstream)
  }
  prompt := messages[len(messages)-1].Content

  ctx, cancel := context.WithTimeout(ctx, requestTimeout)
  defer cancel()

  resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
  if err != nil {
    p.log.Warn("generate content failed", "error", err)
    if ed := errordata.GetErrorData(ctx); ed != nil {
      ed.SetDetail(err.Error())
    }
    return Reply{}, fmt.Errorf("%w: %v", ErrUpstream, err)
  }
  text := resp.Text()
  if text == "" {
    return Reply{}, fmt.Errorf("%w: empty generate content response", ErrUpstream)
  }
  return Reply{Content: text, Model: types.ModelGemini}, nil
}
