package listview

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/digimonkt/koor-chat-go/koorchat/convlist"
)

// plain disables colors so assertions can match raw text.
func plain() Styles {
	return Styles{}
}

func TestRenderRowShowsBadgeOnlyWhenUnread(t *testing.T) {
	row := convlist.Row{UserID: "1", Name: "Ada", Online: true, Unread: 0}
	out := RenderRow(plain(), row)
	require.NotContains(t, out, "0")

	row.Unread = 4
	out = RenderRow(plain(), row)
	require.Contains(t, out, "4")
}

func TestRenderRowPresenceDot(t *testing.T) {
	online := RenderRow(plain(), convlist.Row{Name: "Ada", Online: true})
	offline := RenderRow(plain(), convlist.Row{Name: "Ada", Online: false})

	require.Contains(t, online, dotOnline)
	require.NotContains(t, online, dotOffline)
	require.Contains(t, offline, dotOffline)
	require.NotContains(t, offline, dotOnline)
}

func TestRenderRowMessageMeta(t *testing.T) {
	ts := time.Date(2026, 5, 4, 9, 5, 0, 0, time.Local).UnixMilli()
	row := convlist.Row{
		Name:       "Ada",
		HasMessage: true,
		Preview:    "see you tomorrow",
		Timestamp:  ts,
	}
	out := RenderRow(plain(), row)
	require.Contains(t, out, "09:05")
	require.Contains(t, out, "see you tomorrow")
}

func TestRenderRowTruncatesLongPreview(t *testing.T) {
	row := convlist.Row{
		Name:       "Ada",
		HasMessage: true,
		Preview:    strings.Repeat("x", 100),
	}
	out := RenderRow(plain(), row)
	require.Contains(t, out, "...")
	require.NotContains(t, out, strings.Repeat("x", maxPreviewLength+1))
}

func TestRenderPlaceholder(t *testing.T) {
	out := Render(plain(), convlist.Snapshot{Placeholder: true})
	require.Equal(t, Placeholder, out)
}

func TestRenderOneLinePerRow(t *testing.T) {
	snap := convlist.Snapshot{Rows: []convlist.Row{
		{Name: "Ada"},
		{Name: "Ben"},
		{Name: "Cle"},
	}}
	out := Render(plain(), snap)
	require.Len(t, strings.Split(out, "\n"), 3)
}
