package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConversationsFirstPage(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/conversations/", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [
				{"chat_user": {"id": "1", "full_name": "Ada", "agent_id": "a-1", "online_status": true},
				 "last_message": {"timestamp": 1700000000000, "content_type": "text", "message": "hi"},
				 "unread_counts": 3}
			],
			"next": ""
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/chat")
	c.SetToken("tok-123")

	resp, err := c.Conversations(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.Len(t, resp.Results, 1)
	require.Equal(t, "Ada", resp.Results[0].ChatUser.FullName)
	require.Equal(t, 3, resp.Results[0].UnreadCounts)
	require.Empty(t, resp.Next)
}

func TestConversationsCursorURL(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/chat")
	_, err := c.Conversations(context.Background(), srv.URL+"/chat/conversations/?cursor=abc")
	require.NoError(t, err)
	require.Equal(t, "cursor=abc", gotQuery)
}

func TestConversationsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "invalid token"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/chat")
	_, err := c.Conversations(context.Background(), "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid token")
	require.Contains(t, err.Error(), "401")
}

func TestConversationsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/chat")
	_, err := c.Conversations(context.Background(), "")
	require.Error(t, err)
}
