package koorchat

import "encoding/json"

// ContentType distinguishes the two kinds of last message a conversation
// can carry.
type ContentType string

const (
	ContentText       ContentType = "text"
	ContentAttachment ContentType = "attachment"
)

// ChatUser identifies the partner of a conversation. AgentID is the routing
// key: it builds the detail-view link and is compared against the currently
// open room.
type ChatUser struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	AgentID      string `json:"agent_id"`
	OnlineStatus bool   `json:"online_status"`
}

// Attachment describes a non-text message payload.
type Attachment struct {
	Title string `json:"title"`
}

// LastMessage is the most recent message of a conversation as the server
// summarizes it.
type LastMessage struct {
	Timestamp   int64       `json:"timestamp"`
	ContentType ContentType `json:"content_type"`
	Message     string      `json:"message"`
	Attachment  *Attachment `json:"message_attachment,omitempty"`
}

// Preview returns the text shown in the list row: the message body for text
// messages, the attachment title otherwise.
func (m *LastMessage) Preview() string {
	if m == nil {
		return ""
	}
	if m.ContentType == ContentText || m.Attachment == nil {
		return m.Message
	}
	return m.Attachment.Title
}

// ConversationSummary is the wire form of one list entry.
type ConversationSummary struct {
	ChatUser     ChatUser     `json:"chat_user"`
	LastMessage  *LastMessage `json:"last_message,omitempty"`
	UnreadCounts int          `json:"unread_counts"`
}

// messageContent is the wire form of a message push: the sender plus the
// message body and metadata.
type messageContent struct {
	ChatUser    ChatUser    `json:"chat_user"`
	Message     string      `json:"message"`
	Timestamp   int64       `json:"timestamp"`
	ContentType ContentType `json:"content_type"`
}

// FrameKind tags a decoded push frame.
type FrameKind int

const (
	FrameUnknown FrameKind = iota
	FrameConversation
	FramePresence
	FrameMessage
)

// frame is the raw envelope from the push channel. The server discriminates
// by payload shape: exactly one of the three groups is populated.
type frame struct {
	Conversation *ConversationSummary `json:"conversation,omitempty"`
	UserID       *string              `json:"user_id,omitempty"`
	Status       *bool                `json:"status,omitempty"`
	Content      *messageContent      `json:"content,omitempty"`
}

// Kind classifies the frame by which field the server populated.
func (f *frame) Kind() FrameKind {
	switch {
	case f.Conversation != nil:
		return FrameConversation
	case f.UserID != nil:
		return FramePresence
	case f.Content != nil:
		return FrameMessage
	default:
		return FrameUnknown
	}
}

func decodeFrame(data []byte) (*frame, error) {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, WrapError(ErrorSerialization, "failed to decode push frame", err)
	}
	return &f, nil
}
