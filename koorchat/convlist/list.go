// Package convlist maintains the ordered conversation list: one entry per
// chat user, newest first, reconciled from the initial history fetch and the
// live push events. All mutation goes through List under a single lock, and
// views read immutable snapshots, so ordering is testable without any
// rendering environment.
package convlist

import (
	"sync"

	"github.com/digimonkt/koor-chat-go/koorchat"
)

// Placement says where an insert lands relative to existing entries.
type Placement int

const (
	Head Placement = iota
	Tail
)

// Conversation is one in-memory list entry.
type Conversation struct {
	User        koorchat.ChatUser
	LastMessage *koorchat.LastMessage
	Unread      int
}

// List is the ordered conversation list. Keyed by chat-user id; at most one
// entry per id.
type List struct {
	mu          sync.Mutex
	entries     map[string]*Conversation
	order       []string // chat-user ids, newest first
	currentRoom string   // agent id of the conversation open in the viewport
	placeholder bool     // history returned no records
	rev         uint64

	notifier Notifier
	logger   koorchat.Logger
}

// New creates an empty list. currentRoom is the routing key of the open
// conversation; message pushes for it do not count as unread.
func New(currentRoom string) *List {
	return &List{
		entries:     make(map[string]*Conversation),
		currentRoom: currentRoom,
		logger:      koorchat.NopLogger(),
	}
}

// SetNotifier installs the received-signal hook (optional).
func (l *List) SetNotifier(n Notifier) {
	l.notifier = n
}

// SetLogger overrides the logger (optional).
func (l *List) SetLogger(lg koorchat.Logger) {
	if lg != nil {
		l.logger = lg
	}
}

// Len reports the number of entries.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.order)
}

// Revision increases on every mutation; views poll it to detect changes.
func (l *List) Revision() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rev
}

// Insert adds a conversation at the given placement. An entry with the same
// chat-user id is replaced in place instead of duplicated, keeping the
// one-entry-per-id invariant.
func (l *List) Insert(s koorchat.ConversationSummary, p Placement) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.insertLocked(s, p)
	l.rev++
}

// ApplyConversation merges a conversation push: a brand-new chat user is
// inserted at the head, an already-present one is updated in place and moved
// to the head.
func (l *List) ApplyConversation(ev koorchat.ConversationEvent) {
	l.Insert(ev.Conversation, Head)
}

// ApplyMessage merges a message push. The received signal fires for every
// message. A push for a conversation the list does not know is logged and
// dropped, never a crash: a dead handler would silently stop all updates.
func (l *List) ApplyMessage(ev koorchat.MessageEvent) {
	l.notify()

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[ev.ChatUser.ID]
	if !ok {
		l.logger.Warn("message push for unknown conversation", map[string]any{
			"user_id": ev.ChatUser.ID,
		})
		return
	}

	entry.LastMessage = &koorchat.LastMessage{
		Timestamp:   ev.Timestamp,
		ContentType: ev.ContentType,
		Message:     ev.Message,
	}

	if ev.ChatUser.AgentID == l.currentRoom {
		// The thread view already shows the message; no unread accounting.
		l.rev++
		return
	}

	entry.Unread++
	l.rev++
	l.notify()
}

// ApplyPresence merges an online/offline push. Unknown ids are a no-op.
// The second return reports whether the subject is the focused contact, so
// the caller can refresh the standalone status label.
func (l *List) ApplyPresence(ev koorchat.PresenceEvent) (applied, focused bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[ev.UserID]
	if !ok {
		return false, false
	}
	entry.User.OnlineStatus = ev.IsOnline
	l.rev++
	return true, entry.User.AgentID == l.currentRoom
}

// MarkEmpty records that history returned no conversations; the view shows
// a placeholder row until an entry arrives.
func (l *List) MarkEmpty() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.order) == 0 {
		l.placeholder = true
		l.rev++
	}
}

func (l *List) insertLocked(s koorchat.ConversationSummary, p Placement) {
	l.placeholder = false
	id := s.ChatUser.ID
	if entry, ok := l.entries[id]; ok {
		entry.User = s.ChatUser
		entry.LastMessage = s.LastMessage
		entry.Unread = s.UnreadCounts
		if p == Head {
			l.moveToHeadLocked(id)
		}
		return
	}

	l.entries[id] = &Conversation{
		User:        s.ChatUser,
		LastMessage: s.LastMessage,
		Unread:      s.UnreadCounts,
	}
	if p == Head {
		l.order = append([]string{id}, l.order...)
	} else {
		l.order = append(l.order, id)
	}
}

func (l *List) moveToHeadLocked(id string) {
	for i, v := range l.order {
		if v == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	l.order = append([]string{id}, l.order...)
}

func (l *List) notify() {
	if l.notifier == nil {
		return
	}
	if err := l.notifier.Received(); err != nil {
		l.logger.Warn("notification failed", map[string]any{"error": err.Error()})
	}
}
