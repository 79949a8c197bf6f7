package providers

import (
  "context"
  "errors"
  "time"

  "github.com/thinkly-edu/thinkly-backend/internal/types"
)

// ErrUpstream marks a model backend failure. Handlers map it to a generic 500
// and stash the detail in the request's error data.
var ErrUpstream = errors.New("upstream model failure")

// ErrEmptyCompletion means the backend answered but carried no content.
// Some callers substitute an apology for it instead of failing the request.
var ErrEmptyCompletion = errors.New("no content in completion response")

// requestTimeout bounds every outbound model call. No retries.
const requestTimeout = 30 * time.Second

// Message is one turn of model input.
type Message struct {
  Role      string      `json:"role"`
  Content   string      `json:"content"`
}

// Reply is a backend answer normalized across model vendors.
type Reply struct {
  Content   string            `json:"content"`
  Model     types.ModelName   `json:"model"`
}

// Provider is a live model backend able to answer one prompt exchange.
type Provider interface {
  Name() types.ModelName
  Complete(ctx context.Context, messages []Message) (Reply, error)
}
