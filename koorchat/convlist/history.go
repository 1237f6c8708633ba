package convlist

import (
	"context"

	"github.com/digimonkt/koor-chat-go/koorchat"
	"github.com/digimonkt/koor-chat-go/koorchat/rest"
)

// HistoryAPI is the slice of the REST client the loader needs.
type HistoryAPI interface {
	Conversations(ctx context.Context, url string) (*rest.ConversationsResponse, error)
}

// Loader populates a List from the paginated history endpoint. It runs once
// at startup; afterwards the push events own all mutation.
type Loader struct {
	list   *List
	api    HistoryAPI
	logger koorchat.Logger

	// MaxPages caps cursor-following; 0 means first page only, matching the
	// original single-fetch behavior.
	MaxPages int
}

// NewLoader creates a history loader feeding the given list.
func NewLoader(list *List, api HistoryAPI) *Loader {
	return &Loader{list: list, api: api, logger: koorchat.NopLogger()}
}

// SetLogger overrides the logger (optional).
func (ld *Loader) SetLogger(lg koorchat.Logger) {
	if lg != nil {
		ld.logger = lg
	}
}

// LoadPrevious fetches prior conversations and appends them to the list.
// url may be empty for the default endpoint. Pages arrive most-recent-first
// and are appended at the tail in that order, so the newest conversation
// ends nearest the head and older pages land below. An empty first page
// marks the placeholder state. On failure the error is logged and returned;
// the list keeps whatever partial state it had. No retry, no rollback.
func (ld *Loader) LoadPrevious(ctx context.Context, url string) error {
	loaded := 0
	for page := 0; ; page++ {
		resp, err := ld.api.Conversations(ctx, url)
		if err != nil {
			ld.logger.Error("history fetch failed", map[string]any{
				"url":   url,
				"error": err.Error(),
			})
			return err
		}

		for _, s := range resp.Results {
			ld.list.Insert(s, Tail)
		}
		loaded += len(resp.Results)

		if resp.Next == "" || page >= ld.MaxPages {
			break
		}
		url = resp.Next
	}

	if loaded == 0 {
		ld.list.MarkEmpty()
	}
	return nil
}
