package model

// Chat message senders.
const (
	ChatSenderUser = "user"
	ChatSenderBot  = "bot"
)

// ChatMessage is one turn of the assistant conversation. The client owns
// the transcript and sends it back with every new message.
type ChatMessage struct {
	Sender string `json:"sender"` // user | bot
	Text   string `json:"text"`
}
