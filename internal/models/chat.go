package models

// Sender identifies who wrote a chat message.
type Sender string

// Chat senders.
const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one entry in a chat transcript.
type ChatMessage struct {
	Text   string `json:"text"`
	Sender Sender `json:"sender"`
}
