package services

import (
  "context"
  "sort"
  "sync"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/thinkly-edu/thinkly-backend/internal/logger"
  "github.com/thinkly-edu/thinkly-backend/internal/repos"
  "github.com/thinkly-edu/thinkly-backend/internal/types"
)

// ConversationStore abstracts transcript persistence so the chat relay can
// run against Postgres or entirely in memory. Transcripts are append-only:
// there is no update and no delete.
type ConversationStore interface {
  CreateConversation(ctx context.Context, userID uuid.UUID, title string) (*types.Conversation, error)
  GetConversation(ctx context.Context, id uuid.UUID) (*types.Conversation, error)
  ListConversations(ctx context.Context, userID uuid.UUID) ([]*types.Conversation, error)
  AppendMessage(ctx context.Context, message *types.Message) (*types.Message, error)
  ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*types.Message, error)
}

type gormConversationStore struct {
  log                 *logger.Logger
  conversationRepo    repos.ConversationRepo
  messageRepo         repos.MessageRepo
}

func NewGormConversationStore(log *logger.Logger, conversationRepo repos.ConversationRepo, messageRepo repos.MessageRepo) ConversationStore {
  return &gormConversationStore{
    log:              log.With("service", "ConversationStore"),
    conversationRepo: conversationRepo,
    messageRepo:      messageRepo,
  }
}

func (gs *gormConversationStore) CreateConversation(ctx context.Context, userID uuid.UUID, title string) (*types.Conversation, error) {
  convo := &types.Conversation{
    UserID: userID,
    Title:  title,
  }
  return gs.conversationRepo.Create(ctx, nil, convo)
}

func (gs *gormConversationStore) GetConversation(ctx context.Context, id uuid.UUID) (*types.Conversation, error) {
  return gs.conversationRepo.GetByID(ctx, nil, id)
}

func (gs *gormConversationStore) ListConversations(ctx context.Context, userID uuid.UUID) ([]*types.Conversation, error) {
  return gs.conversationRepo.GetByUserID(ctx, nil, userID)
}

func (gs *gormConversationStore) AppendMessage(ctx context.Context, message *types.Message) (*types.Message, error) {
  return gs.messageRepo.Create(ctx, nil, message)
}

func (gs *gormConversationStore) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*types.Message, error) {
  return gs.messageRepo.GetByConversationID(ctx, nil, conversationID)
}

// memoryConversationStore backs demo mode and tests. It mimics the database
// store's ordering guarantees: conversations newest first, messages in
// insertion order.
type memoryConversationStore struct {
  mu              sync.RWMutex
  seq             uint64
  conversations   map[uuid.UUID]*types.Conversation
  messages        map[uuid.UUID][]*types.Message
}

func NewMemoryConversationStore() ConversationStore {
  return &memoryConversationStore{
    conversations: make(map[uuid.UUID]*types.Conversation),
    messages:      make(map[uuid.UUID][]*types.Message),
  }
}

func (ms *memoryConversationStore) CreateConversation(ctx context.Context, userID uuid.UUID, title string) (*types.Conversation, error) {
  ms.mu.Lock()
  defer ms.mu.Unlock()
  convo := &types.Conversation{
    ID:        uuid.New(),
    UserID:    userID,
    Title:     title,
    CreatedAt: time.Now(),
    UpdatedAt: time.Now(),
  }
  ms.conversations[convo.ID] = convo
  return convo, nil
}

func (ms *memoryConversationStore) GetConversation(ctx context.Context, id uuid.UUID) (*types.Conversation, error) {
  ms.mu.RLock()
  defer ms.mu.RUnlock()
  convo, ok := ms.conversations[id]
  if !ok {
    return nil, gorm.ErrRecordNotFound
  }
  return convo, nil
}

func (ms *memoryConversationStore) ListConversations(ctx context.Context, userID uuid.UUID) ([]*types.Conversation, error) {
  ms.mu.RLock()
  defer ms.mu.RUnlock()
  var convos []*types.Conversation
  for _, c := range ms.conversations {
    if c.UserID == userID {
      convos = append(convos, c)
    }
  }
  sort.Slice(convos, func(i, j int) bool {
    return convos[i].CreatedAt.After(convos[j].CreatedAt)
  })
  return convos, nil
}

func (ms *memoryConversationStore) AppendMessage(ctx context.Context, message *types.Message) (*types.Message, error) {
  ms.mu.Lock()
  defer ms.mu.Unlock()
  if _, ok := ms.conversations[message.ConversationID]; !ok {
    return nil, gorm.ErrRecordNotFound
  }
  if message.ID == uuid.Nil {
    message.ID = uuid.New()
  }
  ms.seq++
  message.Seq = ms.seq
  if message.CreatedAt.IsZero() {
    message.CreatedAt = time.Now()
  }
  ms.messages[message.ConversationID] = append(ms.messages[message.ConversationID], message)
  return message, nil
}

func (ms *memoryConversationStore) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*types.Message, error) {
  ms.mu.RLock()
  defer ms.mu.RUnlock()
  out := make([]*types.Message, len(ms.messages[conversationID]))
  copy(out, ms.messages[conversationID])
  return out, nil
}
