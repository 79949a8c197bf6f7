package services

import (
  "context"
  "errors"
  "fmt"

  "github.com/thinkly-edu/thinkly-backend/internal/logger"
  "github.com/thinkly-edu/thinkly-backend/internal/providers"
  "github.com/thinkly-edu/thinkly-backend/internal/utils"
)

const tutorChatPreamble = `You are an expert AI tutor specializing in education. Your goal is to help students learn and understand concepts clearly.
Always provide detailed explanations and examples. Break down complex topics into simpler parts.
If a student seems frustrated, offer encouragement and alternative approaches.
Use a friendly, patient tone and ask questions to ensure understanding. Make sure to give full and correct answers.`

// TutorChatService answers a whole conversation history with one tutoring
// completion. An empty completion becomes the apology text rather than a
// failure; transport failures propagate.
type TutorChatService interface {
  Respond(ctx context.Context, messages []providers.Message) (string, error)
}

type tutorChatService struct {
  log       *logger.Logger
  client    *providers.OpenAIClient
  model     string
}

func NewTutorChatService(log *logger.Logger, client *providers.OpenAIClient) TutorChatService {
  serviceLog := log.With("service", "TutorChatService")
  model := utils.GetEnv("OPENAI_TUTOR_MODEL", "gpt-3.5-turbo", serviceLog)
  return &tutorChatService{
    log:    serviceLog,
    client: client,
    model:  model,
  }
}

func (ts *tutorChatService) Respond(ctx context.Context, messages []providers.Message) (string, error) {
  if len(messages) == 0 {
    return "", fmt.Errorf("%w: no messages", ErrValidation)
  }
  req := providers.ChatCompletionRequest{
    Model:       ts.model,
    Messages:    append([]providers.Message{{Role: "system", Content: tutorChatPreamble}}, messages...),
    Temperature: 0.7,
    MaxTokens:   500,
  }
  content, err := ts.client.CreateChatCompletion(ctx, req)
  if errors.Is(err, providers.ErrEmptyCompletion) {
    ts.log.Warn("empty tutor completion, substituting apology")
    return providers.ApologyResponse, nil
  }
  if err != nil {
    return "", err
  }
  return content, nil
}
