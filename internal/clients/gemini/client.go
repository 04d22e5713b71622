// Package gemini provides a client for the Google Gemini API
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/interfaces"
	"github.com/bobmcallan/investiq/internal/models"
)

const DefaultModel = "gemini-2.0-flash"

// Compile-time interface check
var _ interfaces.ConversationStarter = (*Client)(nil)

// Client opens Gemini chat conversations
type Client struct {
	client *genai.Client
	model  string
	logger *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithModel sets the model to use
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client: genaiClient,
		model:  DefaultModel,
		logger: common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.model
}

// StartConversation opens a chat seeded with history. Replies are capped at
// maxOutputTokens.
func (c *Client) StartConversation(ctx context.Context, history []models.ChatMessage, maxOutputTokens int) (interfaces.Conversation, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxOutputTokens),
	}

	chat, err := c.client.Chats.Create(ctx, c.model, config, toContents(history))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}

	c.logger.Debug().Str("model", c.model).Int("history", len(history)).Msg("Gemini chat created")
	return &conversation{chat: chat, model: c.model, logger: c.logger}, nil
}

// conversation wraps a genai chat; the chat keeps its own history.
type conversation struct {
	chat   *genai.Chat
	model  string
	logger *common.Logger
}

// Send submits one user message and returns the reply text
func (v *conversation) Send(ctx context.Context, text string) (string, error) {
	result, err := v.chat.Send(ctx, genai.NewPartFromText(text))
	if err != nil {
		return "", fmt.Errorf("failed to send chat message: %w", err)
	}

	reply, err := extractTextFromResponse(result)
	if err != nil {
		return "", err
	}

	v.logger.Trace().Str("model", v.model).Int("reply_len", len(reply)).Msg("Gemini reply received")
	return reply, nil
}

// toContents maps transcript messages to Gemini roles: bot turns become "model".
func toContents(history []models.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := genai.Role(genai.RoleUser)
		if m.Sender == models.SenderBot {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}
	return contents
}

// extractTextFromResponse extracts text from a Gemini response
func extractTextFromResponse(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text := ""
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" && !part.Thought {
			text += part.Text
		}
	}

	if text == "" {
		return "", fmt.Errorf("no text in response")
	}
	return text, nil
}
