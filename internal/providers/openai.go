package providers

import (
  "bytes"
  "context"
  "encoding/json"
  "fmt"
  "io"
  "net/http"
  "os"
  "time"

  "github.com/thinkly-edu/thinkly-backend/internal/errordata"
  "github.com/thinkly-edu/thinkly-backend/internal/logger"
  "github.com/thinkly-edu/thinkly-backend/internal/types"
  "github.com/thinkly-edu/thinkly-backend/internal/utils"
)

// ApologyResponse is substituted whenever the primary backend cannot produce
// a usable answer and the failure policy allows suppressing the error.
const ApologyResponse = "I apologize, but I was unable to generate a response. Please try again."

const chatGPTPreamble = "You are a helpful AI tutor. Provide clear, concise, and educational responses. When explaining concepts, use examples and analogies to make them easier to understand."

// OpenAIClient is a thin chat-completions client. Callers choose the model,
// sampling and token budget per request.
type OpenAIClient struct {
  log               *logger.Logger
  client            *http.Client
  baseURL           string
  apiKey            string
}

func NewOpenAIClient(log *logger.Logger) (*OpenAIClient, error) {
  clientLog := log.With("service", "OpenAIClient")
  apiKey := os.Getenv("OPENAI_API_KEY")
  if apiKey == "" {
    clientLog.Warn("OPENAI_API_KEY not set; calls might fail or be unauthorized")
  }
  baseURL := utils.GetEnv("OPENAI_API_URL", "https://api.openai.com/v1/chat/completions", clientLog)
  httpClient := &http.Client{
    Timeout: requestTimeout,
  }
  return &OpenAIClient{
    log:      clientLog,
    client:   httpClient,
    baseURL:  baseURL,
    apiKey:   apiKey,
  }, nil
}

type ChatCompletionRequest struct {
  Model         string          `json:"model"`
  Messages      []Message       `json:"messages"`
  Temperature   float64         `json:"temperature,omitempty"`
  MaxTokens     int             `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
  Choices []struct {
    Message struct {
      Content string `json:"content"`
    } `json:"message"`
  } `json:"choices"`
}

// CreateChatCompletion runs one non-streaming completion and returns the
// first choice's content.
func (c *OpenAIClient) CreateChatCompletion(ctx context.Context, req ChatCompletionRequest) (string, error) {
  body, err := json.Marshal(req)
  if err != nil {
    return "", err
  }
  httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
  if err != nil {
    c.log.Warn("failed to build new request", "error", err)
    return "", err
  }
  httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
  httpReq.Header.Set("Content-Type", "application/json")

  resp, err := c.client.Do(httpReq)
  if err != nil {
    c.log.Warn("failed to call chat completions endpoint", "error", err)
    return "", fmt.Errorf("%w: %v", ErrUpstream, err)
  }
  defer resp.Body.Close()

  if resp.StatusCode < 200 || resp.StatusCode > 299 {
    bodyBytes, _ := io.ReadAll(resp.Body)
    c.log.Warn("chat completions endpoint responded with non-2xx", "statusCode", resp.StatusCode, "body", string(bodyBytes))
    if ed := errordata.GetErrorData(ctx); ed != nil {
      ed.SetDetail(fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(bodyBytes)))
    }
    return "", fmt.Errorf("%w: HTTP %d: %s", ErrUpstream, resp.StatusCode, string(bodyBytes))
  }
  var parsed chatCompletionResponse
  if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
    c.log.Warn("failed to decode chat completions response", "error", err)
    return "", fmt.Errorf("%w: %v", ErrUpstream, err)
  }
  if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
    return "", ErrEmptyCompletion
  }
  return parsed.Choices[0].Message.Content, nil
}

// ChatGPTProvider answers through the chat-completions client with a fixed
// tutoring preamble. Its failure policy is suppression: a dead backend turns
// into the apology response, never an error.
type ChatGPTProvider struct {
  log       *logger.Logger
  client    *OpenAIClient
  model     string
}

func NewChatGPTProvider(log *logger.Logger, client *OpenAIClient) *ChatGPTProvider {
  providerLog := log.With("service", "ChatGPTProvider")
  model := utils.GetEnv("OPENAI_CHAT_MODEL", "gpt-4", providerLog)
  return &ChatGPTProvider{
    log:     providerLog,
    client:  client,
    model:   model,
  }
}

func (p *ChatGPTProvider) Name() types.ModelName {
  return types.ModelChatGPT
}

func (p *ChatGPTProvider) Complete(ctx context.Context, messages []Message) (Reply, error) {
  start := time.Now()
  req := ChatCompletionRequest{
    Model:    p.model,
    Messages: append([]Message{{Role: "system", Content: chatGPTPreamble}}, messages...),
  }
  content, err := p.client.CreateChatCompletion(ctx, req)
  if err != nil {
    p.log.Warn("completion failed, substituting apology", "error", err, "duration", time.Since(start))
    return Reply{Content: ApologyResponse, Model: types.ModelChatGPT}, nil
  }
  p.log.Debug("completion succeeded", "duration", time.Since(start))
  return Reply{Content: content, Model: types.ModelChatGPT}, nil
}
