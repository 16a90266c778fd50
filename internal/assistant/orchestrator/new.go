package orchestrator

import (
	"context"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"wedding-assistant/internal/assistant"
	"wedding-assistant/pkg/llmprovider"
	"wedding-assistant/pkg/log"
)

// LLM is the provider surface the orchestrator drives. Satisfied by
// *llmprovider.Manager.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	StreamContent(ctx context.Context, req *llmprovider.Request) (<-chan llmprovider.StreamEvent, error)
}

// Config tunes the orchestrator.
type Config struct {
	HistoryLimit     int           // max messages kept per conversation
	MaxConversations int           // conversation store capacity
	ConversationTTL  time.Duration // idle expiry; 0 means no expiry
	Temperature      float64
	MaxTokens        int
}

// Orchestrator runs the conversational loop: prompt assembly, tool
// selection, provider calls, tool dispatch, and history upkeep. It is
// the sole owner of the in-memory conversation store.
type Orchestrator struct {
	registry      *assistant.ToolRegistry
	llm           LLM
	conversations *lru.LRU[string, *Conversation]
	cfg           Config
	l             log.Logger
}

// New creates an Orchestrator. Zero config fields fall back to defaults.
func New(registry *assistant.ToolRegistry, llm LLM, cfg Config, l log.Logger) *Orchestrator {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.MaxConversations <= 0 {
		cfg.MaxConversations = DefaultMaxConversations
	}
	return &Orchestrator{
		registry:      registry,
		llm:           llm,
		conversations: lru.NewLRU[string, *Conversation](cfg.MaxConversations, nil, cfg.ConversationTTL),
		cfg:           cfg,
		l:             l,
	}
}

// conversation returns the Conversation for id, creating it if absent.
func (o *Orchestrator) conversation(id string) *Conversation {
	if conv, ok := o.conversations.Get(id); ok {
		return conv
	}
	conv := &Conversation{ID: id}
	o.conversations.Add(id, conv)
	return conv
}

// resolveConversationID returns the supplied id or mints a new opaque one.
func resolveConversationID(supplied string) string {
	if supplied != "" {
		return supplied
	}
	return conversationIDPrefix + uuid.NewString()
}

// ClearConversation drops the history for id. Clearing an absent id is
// not an error.
func (o *Orchestrator) ClearConversation(id string) {
	o.conversations.Remove(id)
}

// GetConversationHistory returns a copy of the current window, or an
// empty slice for an unknown id.
func (o *Orchestrator) GetConversationHistory(id string) []Message {
	conv, ok := o.conversations.Get(id)
	if !ok {
		return []Message{}
	}
	conv.mu.Lock()
	defer conv.mu.Unlock()
	out := make([]Message, len(conv.messages))
	copy(out, conv.messages)
	return out
}

// append adds messages to the window and trims the oldest beyond limit.
// Caller holds conv.mu.
func (c *Conversation) append(limit int, msgs ...Message) {
	c.messages = append(c.messages, msgs...)
	if over := len(c.messages) - limit; over > 0 {
		c.messages = c.messages[over:]
	}
}
