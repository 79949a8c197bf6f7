package services

import (
  "context"
  "encoding/json"
  "fmt"
  "strings"

  "github.com/thinkly-edu/thinkly-backend/internal/logger"
  "github.com/thinkly-edu/thinkly-backend/internal/providers"
  "github.com/thinkly-edu/thinkly-backend/internal/utils"
)

const essayPreamble = `You are an expert writing tutor and essay grader. Analyze the essay and provide detailed feedback in the following categories:
1. Grammar and mechanics
2. Coherence and organization
3. Style and voice

For each category:
- Provide a score out of 10
- List specific suggestions for improvement
- Be constructive and encouraging

Format your response as a JSON object with the following structure:
{
  "grammar": {
    "score": number,
    "suggestions": string[]
  },
  "coherence": {
    "score": number,
    "suggestions": string[]
  },
  "style": {
    "score": number,
    "suggestions": string[]
  }
}`

type CategoryFeedback struct {
  Score         float64     `json:"score"`
  Suggestions   []string    `json:"suggestions"`
}

type EssayFeedback struct {
  Grammar     CategoryFeedback    `json:"grammar"`
  Coherence   CategoryFeedback    `json:"coherence"`
  Style       CategoryFeedback    `json:"style"`
}

type EssayService interface {
  Analyze(ctx context.Context, essay string) (EssayFeedback, error)
}

type essayService struct {
  log       *logger.Logger
  client    *providers.OpenAIClient
  model     string
}

func NewEssayService(log *logger.Logger, client *providers.OpenAIClient) EssayService {
  serviceLog := log.With("service", "EssayService")
  model := utils.GetEnv("OPENAI_ESSAY_MODEL", "gpt-3.5-turbo", serviceLog)
  return &essayService{
    log:    serviceLog,
    client: client,
    model:  model,
  }
}

// Analyze grades an essay. The grader is instructed to reply with JSON; a
// reply that does not parse counts as an upstream failure.
func (es *essayService) Analyze(ctx context.Context, essay string) (EssayFeedback, error) {
  var feedback EssayFeedback
  if strings.TrimSpace(essay) == "" {
    return feedback, fmt.Errorf("%w: empty essay", ErrValidation)
  }
  req := providers.ChatCompletionRequest{
    Model: es.model,
    Messages: []providers.Message{
      {Role: "system", Content: essayPreamble},
      {Role: "user", Content: essay},
    },
    Temperature: 0.7,
    MaxTokens:   1000,
  }
  content, err := es.client.CreateChatCompletion(ctx, req)
  if err != nil {
    return feedback, err
  }
  if err := json.Unmarshal([]byte(content), &feedback); err != nil {
    es.log.Warn("essay feedback was not valid JSON", "error", err)
    return feedback, fmt.Errorf("%w: feedback was not valid JSON: %v", providers.ErrUpstream, err)
  }
  return feedback, nil
}
