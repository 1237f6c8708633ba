package rest

import "github.com/digimonkt/koor-chat-go/koorchat"

// ConversationsResponse is one page of the conversation-listing endpoint.
// Next is the absolute URL of the following page; empty means end of history.
type ConversationsResponse struct {
	Results []koorchat.ConversationSummary `json:"results"`
	Next    string                         `json:"next,omitempty"`
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
