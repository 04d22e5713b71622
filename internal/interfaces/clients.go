// Package interfaces defines service contracts for InvestIQ
package interfaces

import (
	"context"

	"github.com/bobmcallan/investiq/internal/models"
)

// ConversationStarter opens remote chat conversations.
type ConversationStarter interface {
	// StartConversation opens a conversation seeded with history and capped
	// at maxOutputTokens per reply.
	StartConversation(ctx context.Context, history []models.ChatMessage, maxOutputTokens int) (Conversation, error)
}

// Conversation is a remote chat handle that accumulates context across sends.
type Conversation interface {
	// Send submits one user message and returns the reply text.
	Send(ctx context.Context, text string) (string, error)
}
