package convlist

import "io"

// Notifier is the audible-alert hook fired when a message arrives. Errors
// are logged by the list and never block or fail a mutation.
type Notifier interface {
	Received() error
}

// BellNotifier rings the terminal bell.
type BellNotifier struct {
	W io.Writer
}

func (b BellNotifier) Received() error {
	if b.W == nil {
		return nil
	}
	_, err := b.W.Write([]byte("\a"))
	return err
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func() error

func (f NotifierFunc) Received() error {
	return f()
}
