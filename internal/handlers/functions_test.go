package handlers

import (
  "context"
  "encoding/json"
  "fmt"
  "net/http"
  "net/http/httptest"
  "strings"
  "testing"

  "github.com/gin-gonic/gin"

  "github.com/thinkly-edu/thinkly-backend/internal/providers"
  "github.com/thinkly-edu/thinkly-backend/internal/services"
)

type fakeTutorChat struct {
  reply string
  err   error
}

func (f *fakeTutorChat) Respond(ctx context.Context, messages []providers.Message) (string, error) {
  if len(messages) == 0 {
    return "", fmt.Errorf("%w: no messages", services.ErrValidation)
  }
  return f.reply, f.err
}

type fakeEssay struct {
  feedback services.EssayFeedback
  err      error
}

func (f *fakeEssay) Analyze(ctx context.Context, essay string) (services.EssayFeedback, error) {
  if strings.TrimSpace(essay) == "" {
    return services.EssayFeedback{}, fmt.Errorf("%w: empty essay", services.ErrValidation)
  }
  return f.feedback, f.err
}

func functionsRouter(tutor services.TutorChatService, essay services.EssayService) *gin.Engine {
  gin.SetMode(gin.TestMode)
  router := gin.New()
  router.HandleMethodNotAllowed = true
  fh := NewFunctionsHandler(tutor, essay)
  functions := router.Group("/functions")
  functions.OPTIONS("/tutor-chat", fh.Options)
  functions.POST("/tutor-chat", fh.TutorChat)
  functions.OPTIONS("/essay-feedback", fh.Options)
  functions.POST("/essay-feedback", fh.EssayFeedback)
  return router
}

func TestTutorChatOptionsPreflight(t *testing.T) {
  router := functionsRouter(&fakeTutorChat{}, &fakeEssay{})

  req := httptest.NewRequest(http.MethodOptions, "/functions/tutor-chat", nil)
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusNoContent {
    t.Fatalf("expected 204, got %d", rec.Code)
  }
  if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
    t.Fatalf("expected permissive CORS origin, got %q", got)
  }
  if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "POST") {
    t.Fatalf("expected POST in allowed methods, got %q", got)
  }
}

func TestTutorChatMethodNotAllowed(t *testing.T) {
  router := functionsRouter(&fakeTutorChat{}, &fakeEssay{})

  req := httptest.NewRequest(http.MethodGet, "/functions/tutor-chat", nil)
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusMethodNotAllowed {
    t.Fatalf("expected 405, got %d", rec.Code)
  }
}

func TestTutorChatSuccess(t *testing.T) {
  router := functionsRouter(&fakeTutorChat{reply: "Photosynthesis converts light into chemical energy."}, &fakeEssay{})

  body := `{"messages":[{"role":"user","content":"What is photosynthesis?"}]}`
  req := httptest.NewRequest(http.MethodPost, "/functions/tutor-chat", strings.NewReader(body))
  req.Header.Set("Content-Type", "application/json")
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusOK {
    t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
  }
  var resp map[string]string
  if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
    t.Fatalf("failed to decode response: %v", err)
  }
  if resp["response"] != "Photosynthesis converts light into chemical energy." {
    t.Fatalf("expected reply under the response key, got body %s", rec.Body.String())
  }
  if _, ok := resp["content"]; ok {
    t.Fatal("reply must be keyed response, not content")
  }
}

func TestTutorChatEmptyMessages(t *testing.T) {
  router := functionsRouter(&fakeTutorChat{reply: "unused"}, &fakeEssay{})

  req := httptest.NewRequest(http.MethodPost, "/functions/tutor-chat", strings.NewReader(`{"messages":[]}`))
  req.Header.Set("Content-Type", "application/json")
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusBadRequest {
    t.Fatalf("expected 400, got %d", rec.Code)
  }
}

func TestTutorChatUpstreamFailure(t *testing.T) {
  failing := &fakeTutorChat{err: fmt.Errorf("%w: HTTP 500", providers.ErrUpstream)}
  router := functionsRouter(failing, &fakeEssay{})

  body := `{"messages":[{"role":"user","content":"hello"}]}`
  req := httptest.NewRequest(http.MethodPost, "/functions/tutor-chat", strings.NewReader(body))
  req.Header.Set("Content-Type", "application/json")
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusInternalServerError {
    t.Fatalf("expected 500, got %d", rec.Code)
  }
  var resp struct {
    Error   string `json:"error"`
    Details string `json:"details"`
  }
  if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
    t.Fatalf("failed to decode response: %v", err)
  }
  if resp.Error != "Failed to get response from AI model" {
    t.Fatalf("unexpected error message: %q", resp.Error)
  }
  if resp.Details == "" {
    t.Fatal("expected failure details in response")
  }
}

func TestEssayFeedbackSuccess(t *testing.T) {
  feedback := services.EssayFeedback{
    Grammar:   services.CategoryFeedback{Score: 8, Suggestions: []string{"Watch comma splices."}},
    Coherence: services.CategoryFeedback{Score: 7, Suggestions: []string{"Add transitions between paragraphs."}},
    Style:     services.CategoryFeedback{Score: 9, Suggestions: []string{}},
  }
  router := functionsRouter(&fakeTutorChat{}, &fakeEssay{feedback: feedback})

  body := `{"essay":"The quick brown fox jumps over the lazy dog."}`
  req := httptest.NewRequest(http.MethodPost, "/functions/essay-feedback", strings.NewReader(body))
  req.Header.Set("Content-Type", "application/json")
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusOK {
    t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
  }
  var resp services.EssayFeedback
  if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
    t.Fatalf("failed to decode response: %v", err)
  }
  if resp.Grammar.Score != 8 || resp.Coherence.Score != 7 || resp.Style.Score != 9 {
    t.Fatalf("unexpected scores: %+v", resp)
  }
}

func TestEssayFeedbackEmptyEssay(t *testing.T) {
  router := functionsRouter(&fakeTutorChat{}, &fakeEssay{})

  req := httptest.NewRequest(http.MethodPost, "/functions/essay-feedback", strings.NewReader(`{"essay":""}`))
  req.Header.Set("Content-Type", "application/json")
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusBadRequest {
    t.Fatalf("expected 400, got %d", rec.Code)
  }
}

func TestEssayFeedbackUnparseableGrade(t *testing.T) {
  failing := &fakeEssay{err: fmt.Errorf("%w: feedback was not valid JSON", providers.ErrUpstream)}
  router := functionsRouter(&fakeTutorChat{}, failing)

  body := `{"essay":"Some essay text."}`
  req := httptest.NewRequest(http.MethodPost, "/functions/essay-feedback", strings.NewReader(body))
  req.Header.Set("Content-Type", "application/json")
  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, req)

  if rec.Code != http.StatusInternalServerError {
    t.Fatalf("expected 500, got %d", rec.Code)
  }
}
