package domain

// ChatMessage is one parsed channel message from the chat transport.
type ChatMessage struct {
	User   string
	Text   string
	Badges []string
}

// ChatSender sends a plain message to the channel. Implementations divert to
// a diagnostic sink in debug mode.
type ChatSender interface {
	Send(text string)
}
