package koorchat

// Dispatcher routes decoded push frames to registered callbacks. A frame
// that fails to decode or matches no known shape is reported through the
// error callback and otherwise dropped; the read loop keeps running.
type Dispatcher struct {
	onConversation func(ConversationEvent)
	onPresence     func(PresenceEvent)
	onMessage      func(MessageEvent)
	onError        func(error)
}

func (d *Dispatcher) SetOnConversation(fn func(ConversationEvent)) { d.onConversation = fn }
func (d *Dispatcher) SetOnPresence(fn func(PresenceEvent))         { d.onPresence = fn }
func (d *Dispatcher) SetOnMessage(fn func(MessageEvent))           { d.onMessage = fn }
func (d *Dispatcher) SetOnError(fn func(error))                    { d.onError = fn }

// DispatchRaw decodes one raw push payload and routes it.
func (d *Dispatcher) DispatchRaw(data []byte) {
	f, err := decodeFrame(data)
	if err != nil {
		d.fireError(err)
		return
	}
	d.dispatch(f)
}

func (d *Dispatcher) dispatch(f *frame) {
	switch f.Kind() {
	case FrameConversation:
		if d.onConversation == nil {
			return
		}
		d.onConversation(ConversationEvent{Conversation: *f.Conversation})
	case FramePresence:
		if d.onPresence == nil {
			return
		}
		online := f.Status != nil && *f.Status
		d.onPresence(PresenceEvent{UserID: *f.UserID, IsOnline: online})
	case FrameMessage:
		if d.onMessage == nil {
			return
		}
		c := f.Content
		d.onMessage(MessageEvent{
			ChatUser:    c.ChatUser,
			Message:     c.Message,
			Timestamp:   c.Timestamp,
			ContentType: c.ContentType,
		})
	default:
		d.fireError(NewError(ErrorSerialization, "push frame matches no known shape"))
	}
}

func (d *Dispatcher) fireError(err error) {
	if d.onError != nil && err != nil {
		d.onError(err)
	}
}
