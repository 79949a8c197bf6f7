package services

import (
  "context"
  "errors"
  "fmt"
  "strings"
  "sync"

  "github.com/google/uuid"

  "github.com/thinkly-edu/thinkly-backend/internal/logger"
  "github.com/thinkly-edu/thinkly-backend/internal/providers"
  "github.com/thinkly-edu/thinkly-backend/internal/tutor"
  "github.com/thinkly-edu/thinkly-backend/internal/types"
)

var (
  ErrValidation        = errors.New("validation failure")
  ErrConversationBusy  = errors.New("conversation already has a reply in flight")
)

// Broadcaster pushes new assistant messages out to connected clients.
type Broadcaster interface {
  BroadcastToUser(ctx context.Context, userID uuid.UUID, event string, payload interface{})
}

type ChatService interface {
  StartConversation(ctx context.Context, userID uuid.UUID, title string, greeting string) (*types.Conversation, error)
  ListConversations(ctx context.Context, userID uuid.UUID) ([]*types.Conversation, error)
  GetTranscript(ctx context.Context, conversationID uuid.UUID) ([]*types.Message, error)
  SendMessage(ctx context.Context, userID uuid.UUID, conversationID uuid.UUID, content string, preferred types.ModelName) ([]*types.Message, error)

  SetBroadcaster(b Broadcaster)
}

type chatService struct {
  log           *logger.Logger
  store         ConversationStore
  backends      map[types.ModelName]providers.Provider
  broadcaster   Broadcaster
  demoMode      bool
  dualFanOut    bool

  mu            sync.Mutex
  inFlight      map[uuid.UUID]struct{}
}

// NewChatService builds the chat relay. In demo mode no backend is called:
// replies come from the arithmetic evaluator and the canned template bank,
// always one chatgpt-tagged and one gemini-tagged turn in that order. In
// connected mode only the preferred backend answers unless dualFanOut is set.
func NewChatService(log *logger.Logger, store ConversationStore, backends []providers.Provider, demoMode, dualFanOut bool) ChatService {
  byName := make(map[types.ModelName]providers.Provider, len(backends))
  for _, b := range backends {
    byName[b.Name()] = b
  }
  return &chatService{
    log:        log.With("service", "ChatService"),
    store:      store,
    backends:   byName,
    demoMode:   demoMode,
    dualFanOut: dualFanOut,
    inFlight:   make(map[uuid.UUID]struct{}),
  }
}

func (cs *chatService) SetBroadcaster(b Broadcaster) {
  cs.broadcaster = b
}

func (cs *chatService) StartConversation(ctx context.Context, userID uuid.UUID, title string, greeting string) (*types.Conversation, error) {
  if userID == uuid.Nil {
    return nil, fmt.Errorf("%w: missing user id", ErrValidation)
  }
  title = strings.TrimSpace(title)
  if title == "" {
    title = "New Conversation"
  }
  convo, err := cs.store.CreateConversation(ctx, userID, title)
  if err != nil {
    cs.log.Error("failed to create conversation", "error", err, "userID", userID)
    return nil, err
  }
  if greeting != "" {
    welcome := &types.Message{
      ConversationID: convo.ID,
      Role:           types.MessageRoleAssistant,
      Model:          types.ModelChatGPT,
      Content:        greeting,
    }
    if _, err := cs.store.AppendMessage(ctx, welcome); err != nil {
      cs.log.Error("failed to append greeting", "error", err, "conversationID", convo.ID)
      return nil, err
    }
  }
  return convo, nil
}

func (cs *chatService) ListConversations(ctx context.Context, userID uuid.UUID) ([]*types.Conversation, error) {
  return cs.store.ListConversations(ctx, userID)
}

func (cs *chatService) GetTranscript(ctx context.Context, conversationID uuid.UUID) ([]*types.Message, error) {
  return cs.store.ListMessages(ctx, conversationID)
}

// SendMessage appends the user turn, produces the assistant turn(s), appends
// them in fixed order and returns them. A nil conversation id starts a fresh
// conversation titled "New Conversation". A second submission for the same
// conversation while one is outstanding is rejected with ErrConversationBusy.
func (cs *chatService) SendMessage(ctx context.Context, userID uuid.UUID, conversationID uuid.UUID, content string, preferred types.ModelName) ([]*types.Message, error) {
  if strings.TrimSpace(content) == "" {
    return nil, fmt.Errorf("%w: empty message", ErrValidation)
  }
  if preferred != types.ModelChatGPT && preferred != types.ModelGemini {
    return nil, fmt.Errorf("%w: unknown model %q", ErrValidation, preferred)
  }

  // First message with no conversation selected starts a fresh one.
  if conversationID == uuid.Nil {
    convo, err := cs.store.CreateConversation(ctx, userID, "New Conversation")
    if err != nil {
      cs.log.Error("failed to start conversation for first message", "error", err, "userID", userID)
      return nil, err
    }
    conversationID = convo.ID
  }

  if err := cs.acquire(conversationID); err != nil {
    return nil, err
  }
  defer cs.release(conversationID)

  if _, err := cs.store.GetConversation(ctx, conversationID); err != nil {
    return nil, err
  }

  userMsg := &types.Message{
    ConversationID: conversationID,
    UserID:         &userID,
    Role:           types.MessageRoleUser,
    Model:          preferred,
    Content:        content,
  }
  if _, err := cs.store.AppendMessage(ctx, userMsg); err != nil {
    cs.log.Error("failed to append user message", "error", err, "conversationID", conversationID)
    return nil, err
  }

  var replies []providers.Reply
  var err error
  if cs.demoMode {
    replies = cs.demoReplies(content)
  } else {
    replies, err = cs.liveReplies(ctx, content, preferred)
    if err != nil {
      cs.log.Warn("backend reply failed", "error", err, "conversationID", conversationID)
      return nil, err
    }
  }

  appended := make([]*types.Message, 0, len(replies))
  for _, reply := range replies {
    msg := &types.Message{
      ConversationID: conversationID,
      Role:           types.MessageRoleAssistant,
      Model:          reply.Model,
      Content:        reply.Content,
    }
    if _, err := cs.store.AppendMessage(ctx, msg); err != nil {
      cs.log.Error("failed to append assistant message", "error", err, "conversationID", conversationID)
      return nil, err
    }
    appended = append(appended, msg)
  }
  cs.notify(ctx, userID, appended)
  return appended, nil
}

// demoReplies never fails: classification is total and unsolvable arithmetic
// turns into the apologetic narrative inside the pair.
func (cs *chatService) demoReplies(content string) []providers.Reply {
  intent := tutor.Classify(content)
  if intent == tutor.IntentMath {
    if problem, ok := tutor.ExtractProblem(content); ok {
      solution, explanation := tutor.Explain(problem)
      return []providers.Reply{
        {Content: tutor.SolutionResponse(explanation), Model: types.ModelChatGPT},
        {Content: tutor.VerificationResponse(problem, solution), Model: types.ModelGemini},
      }
    }
  }
  pair := tutor.Respond(content, intent)
  return []providers.Reply{
    {Content: pair.ChatGPT, Model: types.ModelChatGPT},
    {Content: pair.Gemini, Model: types.ModelGemini},
  }
}

func (cs *chatService) liveReplies(ctx context.Context, content string, preferred types.ModelName) ([]providers.Reply, error) {
  prompt := []providers.Message{{Role: "user", Content: content}}
  if cs.dualFanOut {
    var replies []providers.Reply
    for _, name := range []types.ModelName{types.ModelChatGPT, types.ModelGemini} {
      backend, ok := cs.backends[name]
      if !ok {
        continue
      }
      reply, err := backend.Complete(ctx, prompt)
      if err != nil {
        return nil, err
      }
      replies = append(replies, reply)
    }
    return replies, nil
  }
  backend, ok := cs.backends[preferred]
  if !ok {
    return nil, fmt.Errorf("%w: no backend for model %q", ErrValidation, preferred)
  }
  reply, err := backend.Complete(ctx, prompt)
  if err != nil {
    return nil, err
  }
  return []providers.Reply{reply}, nil
}

func (cs *chatService) notify(ctx context.Context, userID uuid.UUID, messages []*types.Message) {
  if cs.broadcaster == nil {
    return
  }
  for _, msg := range messages {
    cs.broadcaster.BroadcastToUser(ctx, userID, "message.created", msg)
  }
}

func (cs *chatService) acquire(conversationID uuid.UUID) error {
  cs.mu.Lock()
  defer cs.mu.Unlock()
  if _, busy := cs.inFlight[conversationID]; busy {
    return ErrConversationBusy
  }
  cs.inFlight[conversationID] = struct{}{}
  return nil
}

func (cs *chatService) release(conversationID uuid.UUID) {
  cs.mu.Lock()
  defer cs.mu.Unlock()
  delete(cs.inFlight, conversationID)
}
