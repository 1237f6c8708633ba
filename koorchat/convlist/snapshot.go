package convlist

// Row is the immutable projection of one entry, in render order.
type Row struct {
	UserID     string
	Name       string
	AgentID    string
	Online     bool
	Active     bool // this entry's conversation is open in the viewport
	Unread     int
	Preview    string
	Timestamp  int64
	HasMessage bool
}

// Snapshot is a point-in-time copy of the whole list.
type Snapshot struct {
	Rows        []Row
	Placeholder bool // history returned no records and nothing arrived since
	Revision    uint64
}

// Snapshot returns the current projection, newest first.
func (l *List) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows := make([]Row, 0, len(l.order))
	for _, id := range l.order {
		e := l.entries[id]
		row := Row{
			UserID:  e.User.ID,
			Name:    e.User.FullName,
			AgentID: e.User.AgentID,
			Online:  e.User.OnlineStatus,
			Active:  e.User.AgentID == l.currentRoom,
			Unread:  e.Unread,
		}
		if e.LastMessage != nil {
			row.HasMessage = true
			row.Preview = e.LastMessage.Preview()
			row.Timestamp = e.LastMessage.Timestamp
		}
		rows = append(rows, row)
	}
	return Snapshot{Rows: rows, Placeholder: l.placeholder, Revision: l.rev}
}
