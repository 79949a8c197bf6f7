package providers

import (
  "context"
  "encoding/json"
  "errors"
  "net/http"
  "net/http/httptest"
  "testing"

  "github.com/thinkly-edu/thinkly-backend/internal/logger"
  "github.com/thinkly-edu/thinkly-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("failed to build logger: %v", err)
  }
  return log
}

func testClient(t *testing.T, srv *httptest.Server) *OpenAIClient {
  t.Helper()
  return &OpenAIClient{
    log:     testLogger(t),
    client:  srv.Client(),
    baseURL: srv.URL,
    apiKey:  "test-key",
  }
}

func TestCreateChatCompletion(t *testing.T) {
  var gotAuth string
  var gotReq ChatCompletionRequest
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    gotAuth = r.Header.Get("Authorization")
    if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
      t.Errorf("failed to decode request: %v", err)
    }
    w.Header().Set("Content-Type", "application/json")
    w.Write([]byte(`{"choices":[{"message":{"content":"Photosynthesis converts light into energy."}}]}`))
  }))
  defer srv.Close()

  client := testClient(t, srv)
  content, err := client.CreateChatCompletion(context.Background(), ChatCompletionRequest{
    Model:    "gpt-3.5-turbo",
    Messages: []Message{{Role: "user", Content: "what is photosynthesis"}},
  })
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if content != "Photosynthesis converts light into energy." {
    t.Fatalf("unexpected content: %q", content)
  }
  if gotAuth != "Bearer test-key" {
    t.Fatalf("unexpected auth header: %q", gotAuth)
  }
  if gotReq.Model != "gpt-3.5-turbo" || len(gotReq.Messages) != 1 {
    t.Fatalf("unexpected outbound request: %+v", gotReq)
  }
}

func TestCreateChatCompletionNon2xx(t *testing.T) {
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
  }))
  defer srv.Close()

  client := testClient(t, srv)
  _, err := client.CreateChatCompletion(context.Background(), ChatCompletionRequest{Model: "gpt-4"})
  if !errors.Is(err, ErrUpstream) {
    t.Fatalf("expected ErrUpstream, got %v", err)
  }
}

func TestCreateChatCompletionNoContent(t *testing.T) {
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    w.Write([]byte(`{"choices":[]}`))
  }))
  defer srv.Close()

  client := testClient(t, srv)
  _, err := client.CreateChatCompletion(context.Background(), ChatCompletionRequest{Model: "gpt-4"})
  if !errors.Is(err, ErrEmptyCompletion) {
    t.Fatalf("expected ErrEmptyCompletion, got %v", err)
  }
}

func TestChatGPTProviderPrependsPreamble(t *testing.T) {
  var gotReq ChatCompletionRequest
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    json.NewDecoder(r.Body).Decode(&gotReq)
    w.Header().Set("Content-Type", "application/json")
    w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
  }))
  defer srv.Close()

  provider := &ChatGPTProvider{log: testLogger(t), client: testClient(t, srv), model: "gpt-4"}
  reply, err := provider.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if reply.Model != types.ModelChatGPT || reply.Content != "ok" {
    t.Fatalf("unexpected reply: %+v", reply)
  }
  if len(gotReq.Messages) != 2 {
    t.Fatalf("expected preamble plus user turn, got %d messages", len(gotReq.Messages))
  }
  if gotReq.Messages[0].Role != "system" {
    t.Fatalf("first message should be the system preamble, got role %q", gotReq.Messages[0].Role)
  }
}

func TestChatGPTProviderSuppressesFailure(t *testing.T) {
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    http.Error(w, "boom", http.StatusInternalServerError)
  }))
  defer srv.Close()

  provider := &ChatGPTProvider{log: testLogger(t), client: testClient(t, srv), model: "gpt-4"}
  reply, err := provider.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
  if err != nil {
    t.Fatalf("suppression policy should not surface errors, got %v", err)
  }
  if reply.Content != ApologyResponse {
    t.Fatalf("expected apology substitution, got %q", reply.Content)
  }
}
