package koorchat

// ConversationEvent emitted when the server pushes a new or updated
// conversation summary.
type ConversationEvent struct {
	Conversation ConversationSummary
}

// PresenceEvent emitted when a user goes online or offline.
type PresenceEvent struct {
	UserID   string
	IsOnline bool
}

// MessageEvent emitted when a message arrives on an existing conversation.
type MessageEvent struct {
	ChatUser    ChatUser
	Message     string
	Timestamp   int64
	ContentType ContentType
}
